// Package snapshot persists one serialized blob per collection under a stable
// key. Backends: sqlite (default), redis, and in-memory. Writes replace the
// whole blob; there is no cross-key transaction.
package snapshot

import (
	"context"
	"errors"
)

// Collection keys. Each collection serializes to exactly one blob.
const (
	KeyTickets         = "tickets"
	KeyTasks           = "tasks"
	KeyContacts        = "contacts"
	KeyEvents          = "events"
	KeyUsers           = "users"
	KeyFlowNodes       = "flow_nodes"
	KeyFlowConnections = "flow_connections"
)

// Keys lists every collection key in hydration order.
func Keys() []string {
	return []string{
		KeyUsers, KeyTickets, KeyTasks, KeyContacts, KeyEvents,
		KeyFlowNodes, KeyFlowConnections,
	}
}

// ErrNotFound is returned by Read when no blob exists under the key.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes collection blobs.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
