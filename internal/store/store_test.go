package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/infrastructure/seed"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

func fixtureSeed() *seed.Data {
	agent := user.User{ID: "u1", Name: "Ana Silva", Role: user.RoleAgent, Email: "ana@ghitdesk.io"}
	customer := user.User{ID: "c1", Name: "Carlos Oliveira", Role: user.RoleCustomer}

	return &seed.Data{
		Users: []user.User{agent, customer},
		Tickets: []ticket.Ticket{{
			ID:            "T-1",
			Subject:       "Pedido não chegou",
			Customer:      customer,
			Channel:       common.ChannelWhatsApp,
			Status:        ticket.StatusOpen,
			Priority:      common.PriorityHigh,
			LastMessageAt: time.Now().Add(-time.Hour),
			Messages: []ticket.Message{
				{ID: "m1", SenderID: "c1", Content: "Meu pedido não chegou", Timestamp: time.Now().Add(-time.Hour)},
			},
			Tags:        []string{"entrega"},
			UnreadCount: 1,
			SLAStatus:   ticket.SLAAttention,
		}},
		Tasks: []task.Task{{
			ID:       "TASK-1",
			Title:    "Revisar macros de resposta",
			Status:   task.StatusTodo,
			Priority: common.PriorityMedium,
			Subtasks: []task.Subtask{
				{ID: "s1", Title: "Listar macros"},
				{ID: "s2", Title: "Revisar tom"},
				{ID: "s3", Title: "Publicar"},
			},
		}},
		Contacts: []contact.Contact{{
			ID:             "ct-1",
			Name:           "Carlos Oliveira",
			PrimaryChannel: common.ChannelWhatsApp,
			Tags:           []string{"vip"},
			Rating:         4.5,
		}},
		FlowNodes: []flow.Node{
			{ID: "start-1", Type: flow.TypeTrigger, X: 80, Y: 200, Data: flow.NodeData{Title: "Início"}},
			{ID: "msg-1", Type: flow.TypeMessage, X: 300, Y: 200, Data: flow.NodeData{Title: "Send Message"}},
			{ID: "cond-1", Type: flow.TypeCondition, X: 520, Y: 200, Data: flow.NodeData{Title: "Check Intent"}},
		},
		FlowConnections: []flow.Connection{
			{ID: "fc-1", From: "start-1", To: "msg-1"},
			{ID: "fc-2", From: "msg-1", To: "cond-1"},
		},
	}
}

func newTestStore(t *testing.T) (*Store, *snapshot.MemoryStore) {
	t.Helper()
	snaps := snapshot.NewMemoryStore()
	st := NewWithSeed(context.Background(), snaps, logger.NewNop(), fixtureSeed())
	return st, snaps
}

func TestTickets_UpdateFieldIsolation(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	before, ok := st.Tickets.Get(ctx, "T-1")
	require.True(t, ok)

	status := ticket.StatusResolved
	updated, ok := st.Tickets.Update(ctx, "T-1", ticket.Update{Status: &status})
	require.True(t, ok)
	assert.Equal(t, ticket.StatusResolved, updated.Status)

	all := st.Tickets.List(ctx)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, ticket.StatusResolved, got.Status)
	assert.Equal(t, before.Subject, got.Subject)
	assert.Equal(t, before.Customer, got.Customer)
	assert.Equal(t, before.Messages, got.Messages)
	assert.Equal(t, before.UnreadCount, got.UnreadCount)
}

func TestTickets_UpdateUnknownIDIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	status := ticket.StatusClosed
	_, ok := st.Tickets.Update(ctx, "T-999", ticket.Update{Status: &status})
	assert.False(t, ok)

	all := st.Tickets.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, ticket.StatusOpen, all[0].Status)
}

func TestTickets_AddInsertsAtHead(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	st.Tickets.Add(ctx, ticket.Ticket{
		ID:      "T-2",
		Subject: "Novo chamado",
		Customer: user.User{
			ID: "c1", Name: "Carlos Oliveira", Role: user.RoleCustomer,
		},
		Channel:       common.ChannelEmail,
		Status:        ticket.StatusOpen,
		Priority:      common.PriorityLow,
		LastMessageAt: time.Now(),
	})

	all := st.Tickets.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "T-2", all[0].ID)
	assert.Equal(t, "T-1", all[1].ID)
}

func TestTickets_DeleteIsIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, st.Tickets.Delete(ctx, "T-1"))
	assert.False(t, st.Tickets.Delete(ctx, "T-1"))
	assert.Empty(t, st.Tickets.List(ctx))
}

func TestTasks_ToggleSubtaskProgress(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	got, ok := st.Tasks.Get(ctx, "TASK-1")
	require.True(t, ok)
	assert.Equal(t, 0, got.Progress)

	got, ok = st.Tasks.ToggleSubtask(ctx, "TASK-1", "s1")
	require.True(t, ok)
	assert.Equal(t, 33, got.Progress)
	assert.Equal(t, task.Checklist{Total: 3, Completed: 1}, got.Checklist)

	_, ok = st.Tasks.ToggleSubtask(ctx, "TASK-1", "s2")
	require.True(t, ok)
	got, ok = st.Tasks.ToggleSubtask(ctx, "TASK-1", "s3")
	require.True(t, ok)
	assert.Equal(t, 100, got.Progress)

	_, ok = st.Tasks.ToggleSubtask(ctx, "TASK-1", "missing")
	assert.False(t, ok)
	_, ok = st.Tasks.ToggleSubtask(ctx, "TASK-999", "s1")
	assert.False(t, ok)
}

func TestFlow_DeleteNodeCascades(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	// msg-1 sits on both connections; deleting it must clear the graph's edges.
	ok := st.Flow.DeleteNode(ctx, "msg-1")
	require.True(t, ok)

	nodes := st.Flow.Nodes(ctx)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.NotEqual(t, "msg-1", n.ID)
	}
	assert.Empty(t, st.Flow.Connections(ctx))
}

func TestFlow_DeleteNodeUnknownIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	assert.False(t, st.Flow.DeleteNode(ctx, "ghost"))
	assert.Len(t, st.Flow.Nodes(ctx), 3)
	assert.Len(t, st.Flow.Connections(ctx), 2)
}

func TestFlow_ConnectionLifecycle(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, st.Flow.HasConnection(ctx, "start-1", "msg-1"))
	assert.False(t, st.Flow.HasConnection(ctx, "msg-1", "start-1"))

	st.Flow.AddConnection(ctx, flow.Connection{ID: "fc-3", From: "cond-1", To: "start-1"})
	assert.Len(t, st.Flow.Connections(ctx), 3)

	assert.True(t, st.Flow.DeleteConnection(ctx, "fc-3"))
	assert.False(t, st.Flow.DeleteConnection(ctx, "fc-3"))
	assert.Len(t, st.Flow.Connections(ctx), 2)
}

func TestFlow_SetNodesKeepsConnections(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	nodes := st.Flow.Nodes(ctx)
	for i := range nodes {
		nodes[i].X += 50
	}
	st.Flow.SetNodes(ctx, nodes)

	moved := st.Flow.Nodes(ctx)
	require.Len(t, moved, 3)
	assert.Equal(t, float64(130), moved[0].X)
	assert.Len(t, st.Flow.Connections(ctx), 2)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	snaps := snapshot.NewMemoryStore()
	ctx := context.Background()

	st := NewWithSeed(ctx, snaps, logger.NewNop(), fixtureSeed())

	status := ticket.StatusPending
	_, ok := st.Tickets.Update(ctx, "T-1", ticket.Update{Status: &status})
	require.True(t, ok)
	_, ok = st.Tasks.ToggleSubtask(ctx, "TASK-1", "s1")
	require.True(t, ok)
	require.True(t, st.Flow.DeleteNode(ctx, "cond-1"))
	st.Flush()

	// A second store over the same snapshots must hydrate the mutated state,
	// not the seed.
	st2 := NewWithSeed(ctx, snaps, logger.NewNop(), fixtureSeed())

	tk, ok := st2.Tickets.Get(ctx, "T-1")
	require.True(t, ok)
	assert.Equal(t, ticket.StatusPending, tk.Status)

	tsk, ok := st2.Tasks.Get(ctx, "TASK-1")
	require.True(t, ok)
	assert.Equal(t, 33, tsk.Progress)

	assert.Len(t, st2.Flow.Nodes(ctx), 2)
	require.Len(t, st2.Flow.Connections(ctx), 1)
	assert.Equal(t, "fc-1", st2.Flow.Connections(ctx)[0].ID)
}

func TestStore_MalformedSnapshotFallsBackToSeed(t *testing.T) {
	snaps := snapshot.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, snaps.Write(ctx, snapshot.KeyTickets, []byte("{not json")))

	st := NewWithSeed(ctx, snaps, logger.NewNop(), fixtureSeed())

	all := st.Tickets.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "T-1", all[0].ID)
}

func TestUsers_CurrentIsFirstDirectoryEntry(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	current, ok := st.Users.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, user.RoleAgent, current.Role)
}

func TestContacts_AddInsertsAtHead(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	st.Contacts.Add(ctx, contact.Contact{
		ID:             "ct-2",
		Name:           "Maria Santos",
		PrimaryChannel: common.ChannelEmail,
		Tags:           []string{},
	})

	all := st.Contacts.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "ct-2", all[0].ID)
}

func TestStore_Reset(t *testing.T) {
	st, snaps := newTestStore(t)
	ctx := context.Background()

	st.Tickets.Delete(ctx, "T-1")
	st.Flush()
	_, err := snaps.Read(ctx, snapshot.KeyTickets)
	require.NoError(t, err)

	require.NoError(t, st.Reset(ctx))

	for _, key := range snapshot.Keys() {
		_, err := snaps.Read(ctx, key)
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	}
}
