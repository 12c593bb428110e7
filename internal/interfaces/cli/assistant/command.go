// Package assistant wires the interactive assistant REPL over the live store.
package assistant

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	assistantApp "ghitdesk/internal/application/assistant"
	flowusecases "ghitdesk/internal/application/flow/usecases"
	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/infrastructure/config"
	snapshotStore "ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
	"ghitdesk/internal/store"
)

var ephemeral bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Chat with the GhitDesk assistant",
		Long:  `Start an interactive chat session with the AI assistant. The assistant can answer questions and edit the automation flow (create, delete, and connect nodes) against the live store.`,
		RunE:  run,
	}

	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Use an in-memory snapshot store (changes are not persisted)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ephemeral {
		cfg.Snapshot.Driver = "memory"
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if cfg.Gemini.APIKey == "" {
		key, err := promptAPIKey()
		if err != nil {
			return err
		}
		cfg.Gemini.APIKey = key
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snaps, err := snapshotStore.Open(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer snaps.Close()

	st, err := store.New(ctx, snaps, log)
	if err != nil {
		return fmt.Errorf("failed to build store: %w", err)
	}
	defer st.Flush()

	tools := assistantApp.FlowTools{
		CreateNode:   flowusecases.NewCreateNodeUseCase(st.Flow, log),
		DeleteNode:   flowusecases.NewDeleteNodeUseCase(st.Flow, log),
		ConnectNodes: flowusecases.NewConnectNodesUseCase(st.Flow, log),
	}
	client := ai.NewClient(cfg.Gemini, log)
	session := assistantApp.NewChatSession(client, tools, cfg.Gemini, log)

	fmt.Println("Olá! Sou o assistente IA do GhitDesk. Como posso ajudar você hoje?")
	fmt.Println("(ctrl-d para sair)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		reply, err := session.Send(ctx, message)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fmt.Printf("erro: %v\n", err)
			continue
		}
		fmt.Println(reply)
	}

	fmt.Println("\nAté logo!")
	return scanner.Err()
}

// promptAPIKey reads the Gemini key without echo when stdin is a terminal.
func promptAPIKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("gemini API key is not configured (set GHITDESK_GEMINI_API_KEY)")
	}

	fmt.Print("Gemini API key: ")
	key, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("gemini API key is required")
	}
	return string(key), nil
}
