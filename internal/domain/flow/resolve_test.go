package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNodes() []Node {
	return []Node{
		{ID: "start-1", Type: TypeTrigger, Data: NodeData{Title: "Início"}},
		{ID: "msg-1", Type: TypeMessage, Data: NodeData{Title: "Send Message"}},
		{ID: "msg-2", Type: TypeMessage, Data: NodeData{Title: "Send Followup"}},
		{ID: "cond-1", Type: TypeCondition, Data: NodeData{Title: "Check Intent"}},
	}
}

func TestResolveNode(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expectedID string
		found      bool
	}{
		{
			name:       "exact id match",
			identifier: "cond-1",
			expectedID: "cond-1",
			found:      true,
		},
		{
			name:       "exact id wins over title substring",
			identifier: "msg-2",
			expectedID: "msg-2",
			found:      true,
		},
		{
			name:       "case-insensitive title substring",
			identifier: "send m",
			expectedID: "msg-1",
			found:      true,
		},
		{
			name:       "ambiguous substring resolves to first match",
			identifier: "Send",
			expectedID: "msg-1",
			found:      true,
		},
		{
			name:       "full title",
			identifier: "Check Intent",
			expectedID: "cond-1",
			found:      true,
		},
		{
			name:       "no match",
			identifier: "nonexistent",
			found:      false,
		},
		{
			name:       "empty identifier",
			identifier: "",
			found:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := ResolveNode(testNodes(), tt.identifier)

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expectedID, node.ID)
			}
		})
	}
}

func TestResolveNode_IDPassRunsBeforeTitlePass(t *testing.T) {
	// A node whose title contains another node's id must not shadow the
	// id match, even when it appears earlier in the slice.
	nodes := []Node{
		{ID: "a", Type: TypeMessage, Data: NodeData{Title: "node b explained"}},
		{ID: "b", Type: TypeMessage, Data: NodeData{Title: "Other"}},
	}

	node, ok := ResolveNode(nodes, "b")
	require.True(t, ok)
	assert.Equal(t, "b", node.ID)
}

func TestHasExisting(t *testing.T) {
	connections := []Connection{
		{ID: "c1", From: "a", To: "b"},
		{ID: "c2", From: "b", To: "c"},
	}

	assert.True(t, HasExisting(connections, "a", "b"))
	assert.False(t, HasExisting(connections, "b", "a"))
	assert.False(t, HasExisting(connections, "a", "c"))
	assert.False(t, HasExisting(nil, "a", "b"))
}

func TestConnection_IncidentTo(t *testing.T) {
	c := Connection{ID: "c1", From: "a", To: "b"}

	assert.True(t, c.IncidentTo("a"))
	assert.True(t, c.IncidentTo("b"))
	assert.False(t, c.IncidentTo("c"))
}
