package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReadWriteDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Read(ctx, KeyTickets)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Write(ctx, KeyTickets, []byte(`[{"id":"T-1"}]`)))

	data, err := s.Read(ctx, KeyTickets)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"T-1"}]`, string(data))

	require.NoError(t, s.Delete(ctx, KeyTickets))
	_, err = s.Read(ctx, KeyTickets)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, KeyTickets))
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeyTasks, []byte("abc")))

	data, err := s.Read(ctx, KeyTasks)
	require.NoError(t, err)
	data[0] = 'x'

	again, err := s.Read(ctx, KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestKeys_CoverEveryCollection(t *testing.T) {
	keys := Keys()
	assert.ElementsMatch(t, []string{
		KeyTickets, KeyTasks, KeyContacts, KeyEvents,
		KeyUsers, KeyFlowNodes, KeyFlowConnections,
	}, keys)
}
