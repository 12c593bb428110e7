package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)

	for _, c := range id {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestGenerate_NonPositiveLengthUsesDefault(t *testing.T) {
	id, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)

	id, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix(PrefixTicket, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "tk_"))
	assert.Len(t, id, len("tk_")+DefaultLength)
}

func TestEntityConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newID  func() string
		prefix string
	}{
		{"ticket", NewTicketID, "tk_"},
		{"message", NewMessageID, "msg_"},
		{"task", NewTaskID, "task_"},
		{"subtask", NewSubtaskID, "sub_"},
		{"contact", NewContactID, "ct_"},
		{"event", NewEventID, "ev_"},
		{"node", NewNodeID, "node_"},
		{"connection", NewConnectionID, "conn_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.newID()
			assert.True(t, strings.HasPrefix(id, tt.prefix), "id %q lacks prefix %q", id, tt.prefix)
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultLength)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
