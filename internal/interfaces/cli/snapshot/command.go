// Package snapshot provides maintenance commands over the collection blobs.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ghitdesk/internal/infrastructure/config"
	snapshotStore "ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
	"ghitdesk/internal/store"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect or reset collection snapshots",
		Long:  `Inspect the persisted collection snapshots or reset them so the next startup reseeds from the default dataset.`,
	}

	cmd.AddCommand(
		newShowCommand(),
		newResetCommand(),
	)

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [collection]",
		Short: "Print a collection snapshot as indented JSON",
		Long:  `Print the raw snapshot of one collection, or a summary of every collection when no argument is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all snapshots",
		Long:  `Delete every collection snapshot. The next startup hydrates from the seed dataset.`,
		RunE:  runReset,
	}
}

func openStore() (snapshotStore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return snapshotStore.Open(cfg.Snapshot)
}

func runShow(cmd *cobra.Command, args []string) error {
	snaps, err := openStore()
	if err != nil {
		return err
	}
	defer snaps.Close()

	ctx := context.Background()

	if len(args) == 1 {
		return showOne(ctx, snaps, args[0])
	}

	for _, key := range snapshotStore.Keys() {
		data, err := snaps.Read(ctx, key)
		if errors.Is(err, snapshotStore.ErrNotFound) {
			fmt.Printf("%-17s (no snapshot, seeds on next startup)\n", key)
			continue
		}
		if err != nil {
			return err
		}
		var entries []json.RawMessage
		count := "?"
		if json.Unmarshal(data, &entries) == nil {
			count = fmt.Sprintf("%d", len(entries))
		}
		fmt.Printf("%-17s %s entries, %d bytes\n", key, count, len(data))
	}
	return nil
}

func showOne(ctx context.Context, snaps snapshotStore.Store, key string) error {
	if !validKey(key) {
		return fmt.Errorf("unknown collection %q (one of %v)", key, snapshotStore.Keys())
	}

	data, err := snaps.Read(ctx, key)
	if errors.Is(err, snapshotStore.ErrNotFound) {
		fmt.Printf("%s has no snapshot; it seeds on next startup\n", key)
		return nil
	}
	if err != nil {
		return err
	}

	var pretty json.RawMessage = data
	if indented, err := json.MarshalIndent(pretty, "", "  "); err == nil {
		data = indented
	}
	fmt.Println(string(data))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	snaps, err := openStore()
	if err != nil {
		return err
	}
	defer snaps.Close()

	log := logger.NewLogger()
	ctx := context.Background()

	st, err := store.New(ctx, snaps, log)
	if err != nil {
		return fmt.Errorf("failed to build store: %w", err)
	}
	if err := st.Reset(ctx); err != nil {
		return err
	}

	fmt.Println("snapshots cleared")
	return nil
}

func validKey(key string) bool {
	for _, k := range snapshotStore.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
