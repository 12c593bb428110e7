package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixUser       = "usr"
	PrefixTicket     = "tk"
	PrefixMessage    = "msg"
	PrefixTask       = "task"
	PrefixSubtask    = "sub"
	PrefixContact    = "ct"
	PrefixEvent      = "ev"
	PrefixNode       = "node"
	PrefixConnection = "conn"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewTicketID generates a new ticket ID, e.g. "tk_xK9mP2vL3nQa".
func NewTicketID() string { return MustGenerateWithPrefix(PrefixTicket, DefaultLength) }

// NewMessageID generates a new message ID.
func NewMessageID() string { return MustGenerateWithPrefix(PrefixMessage, DefaultLength) }

// NewTaskID generates a new task ID.
func NewTaskID() string { return MustGenerateWithPrefix(PrefixTask, DefaultLength) }

// NewSubtaskID generates a new subtask ID.
func NewSubtaskID() string { return MustGenerateWithPrefix(PrefixSubtask, DefaultLength) }

// NewContactID generates a new contact ID.
func NewContactID() string { return MustGenerateWithPrefix(PrefixContact, DefaultLength) }

// NewEventID generates a new calendar event ID.
func NewEventID() string { return MustGenerateWithPrefix(PrefixEvent, DefaultLength) }

// NewNodeID generates a new flow node ID.
func NewNodeID() string { return MustGenerateWithPrefix(PrefixNode, DefaultLength) }

// NewConnectionID generates a new flow connection ID.
func NewConnectionID() string { return MustGenerateWithPrefix(PrefixConnection, DefaultLength) }
