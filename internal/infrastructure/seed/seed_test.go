package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghitdesk/internal/domain/user"
)

func TestLoad(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	data, err := Load(now)
	require.NoError(t, err)

	assert.Len(t, data.Users, 8)
	assert.Len(t, data.Tickets, 4)
	assert.Len(t, data.Tasks, 6)
	assert.Len(t, data.Contacts, 4)
	assert.Len(t, data.Events, 2)
	assert.Len(t, data.FlowNodes, 2)
	assert.Len(t, data.FlowConnections, 1)
}

func TestLoad_FirstUserIsAgent(t *testing.T) {
	data, err := Load(time.Now())
	require.NoError(t, err)

	require.NotEmpty(t, data.Users)
	assert.Equal(t, user.RoleAgent, data.Users[0].Role)
}

func TestLoad_OffsetsResolveAgainstNow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	data, err := Load(now)
	require.NoError(t, err)

	for _, tk := range data.Tickets {
		assert.False(t, tk.LastMessageAt.IsZero(), "ticket %s has no last message time", tk.ID)
		assert.True(t, tk.LastMessageAt.Before(now), "seed ticket activity lies in the past")
		for _, m := range tk.Messages {
			assert.False(t, m.Timestamp.IsZero())
		}
	}
	for _, e := range data.Events {
		assert.True(t, e.End.After(e.Start), "event %s has inverted times", e.ID)
	}
}

func TestLoad_EveryEntityValidates(t *testing.T) {
	data, err := Load(time.Now())
	require.NoError(t, err)

	for _, u := range data.Users {
		assert.NoError(t, u.Validate(), "user %s", u.ID)
	}
	for _, tk := range data.Tickets {
		assert.NoError(t, tk.Validate(), "ticket %s", tk.ID)
	}
	for _, task := range data.Tasks {
		assert.NoError(t, task.Validate(), "task %s", task.ID)
	}
	for _, c := range data.Contacts {
		assert.NoError(t, c.Validate(), "contact %s", c.ID)
	}
	for _, n := range data.FlowNodes {
		assert.NoError(t, n.Validate(), "node %s", n.ID)
	}
	for _, conn := range data.FlowConnections {
		assert.NoError(t, conn.Validate(), "connection %s", conn.ID)
	}
}

func TestLoad_TicketCustomersResolveFromDirectory(t *testing.T) {
	data, err := Load(time.Now())
	require.NoError(t, err)

	for _, tk := range data.Tickets {
		_, found := user.FindByID(data.Users, tk.Customer.ID)
		assert.True(t, found, "ticket %s embeds a customer missing from the directory", tk.ID)
	}
}

func TestLoad_TaskProgressIsDerived(t *testing.T) {
	data, err := Load(time.Now())
	require.NoError(t, err)

	for _, task := range data.Tasks {
		recomputed := task
		recomputed.RecomputeProgress()
		assert.Equal(t, recomputed.Progress, task.Progress, "task %s progress disagrees with its subtasks", task.ID)
		assert.Equal(t, recomputed.Checklist, task.Checklist, "task %s checklist disagrees with its subtasks", task.ID)
	}
}
