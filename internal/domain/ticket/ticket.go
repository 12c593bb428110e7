// Package ticket models support conversations: the ticket aggregate, its
// ordered message history, statuses, and SLA state.
package ticket

import (
	"fmt"
	"time"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/user"
)

// Status is the ticket workflow state. No transition rules are enforced;
// any status may follow any other.
type Status string

const (
	StatusOpen             Status = "open"
	StatusPending          Status = "pending"
	StatusWaitingOnCustomer Status = "waiting_customer"
	StatusResolved         Status = "resolved"
	StatusClosed           Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPending, StatusWaitingOnCustomer, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// SLAStatus is a display-level SLA classification carried on the ticket.
type SLAStatus string

const (
	SLAOK        SLAStatus = "ok"
	SLAAttention SLAStatus = "attention"
	SLAOverdue   SLAStatus = "overdue"
)

func (s SLAStatus) IsValid() bool {
	switch s {
	case SLAOK, SLAAttention, SLAOverdue:
		return true
	}
	return false
}

// Ticket is one support conversation.
//
// Customer is embedded rather than referenced by ID, while Message.SenderID
// is a directory reference. The asymmetry is inherited from the snapshot
// schema: editing a contact does not rewrite the customer copy held here.
type Ticket struct {
	ID            string             `json:"id"`
	Subject       string             `json:"subject"`
	Description   string             `json:"description,omitempty"`
	Customer      user.User          `json:"customer"`
	Channel       common.ChannelType `json:"channel"`
	Status        Status             `json:"status"`
	Priority      common.Priority    `json:"priority"`
	LastMessageAt time.Time          `json:"lastMessageAt"`
	Assignee      *user.User         `json:"assignee,omitempty"`
	Messages      []Message          `json:"messages"`
	Tags          []string           `json:"tags"`
	UnreadCount   int                `json:"unreadCount"`
	SLAStatus     SLAStatus          `json:"slaStatus,omitempty"`
}

func (t Ticket) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("ticket ID is required")
	}
	if t.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if err := t.Customer.Validate(); err != nil {
		return fmt.Errorf("invalid customer: %w", err)
	}
	if !t.Channel.IsValid() {
		return fmt.Errorf("invalid channel: %s", t.Channel)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	if t.UnreadCount < 0 {
		return fmt.Errorf("unread count cannot be negative")
	}
	if t.SLAStatus != "" && !t.SLAStatus.IsValid() {
		return fmt.Errorf("invalid sla status: %s", t.SLAStatus)
	}
	return nil
}

// Update is a shallow partial update. Nil fields are left unchanged; slice
// fields replace the whole value when non-nil (messages and tags are passed
// whole, never diffed).
type Update struct {
	Subject       *string
	Description   *string
	Customer      *user.User
	Channel       *common.ChannelType
	Status        *Status
	Priority      *common.Priority
	LastMessageAt *time.Time
	Assignee      **user.User
	Messages      []Message
	Tags          []string
	UnreadCount   *int
	SLAStatus     *SLAStatus
}

// Apply merges the update into the ticket.
func (t *Ticket) Apply(u Update) {
	if u.Subject != nil {
		t.Subject = *u.Subject
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Customer != nil {
		t.Customer = *u.Customer
	}
	if u.Channel != nil {
		t.Channel = *u.Channel
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.LastMessageAt != nil {
		t.LastMessageAt = *u.LastMessageAt
	}
	if u.Assignee != nil {
		t.Assignee = *u.Assignee
	}
	if u.Messages != nil {
		t.Messages = u.Messages
	}
	if u.Tags != nil {
		t.Tags = u.Tags
	}
	if u.UnreadCount != nil {
		t.UnreadCount = *u.UnreadCount
	}
	if u.SLAStatus != nil {
		t.SLAStatus = *u.SLAStatus
	}
}

// AppendMessage builds the compound update for sending a message: the new
// message appended to the existing history and LastMessageAt bumped to its
// timestamp, in one Update so the pair can never be applied separately.
func (t Ticket) AppendMessage(m Message) Update {
	messages := make([]Message, 0, len(t.Messages)+1)
	messages = append(messages, t.Messages...)
	messages = append(messages, m)
	ts := m.Timestamp
	return Update{
		Messages:      messages,
		LastMessageAt: &ts,
	}
}
