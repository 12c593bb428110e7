package ticket

import (
	"fmt"
	"time"
)

// Message is one entry in a ticket's conversation history. It is owned by its
// ticket and never referenced from anywhere else. Internal messages are
// agent-only notes and must never be surfaced on the customer channel.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsInternal  bool      `json:"isInternal,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message ID is required")
	}
	if m.SenderID == "" {
		return fmt.Errorf("sender ID is required")
	}
	if m.Content == "" {
		return fmt.Errorf("content is required")
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}
