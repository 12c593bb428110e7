// Package calendar models scheduled activities. Events may soft-reference a
// ticket by ID; the reference is not enforced and consumers treat a missing
// ticket as absent.
package calendar

import (
	"fmt"
	"time"

	"ghitdesk/internal/domain/user"
)

// EventType classifies a calendar entry.
type EventType string

const (
	TypeMeeting EventType = "meeting"
	TypeCall    EventType = "call"
	TypeNote    EventType = "note"
	TypeEmail   EventType = "email"
)

func (t EventType) IsValid() bool {
	switch t {
	case TypeMeeting, TypeCall, TypeNote, TypeEmail:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Start           time.Time   `json:"start"`
	End             time.Time   `json:"end"`
	Type            EventType   `json:"type"`
	Attendees       []user.User `json:"attendees"`
	Status          EventStatus `json:"status"`
	RelatedTicketID string      `json:"relatedTicketId,omitempty"`
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event ID is required")
	}
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("start and end are required")
	}
	if !e.End.After(e.Start) {
		return fmt.Errorf("end must be after start")
	}
	if !e.Type.IsValid() {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("invalid event status: %s", e.Status)
	}
	return nil
}

// Update is a shallow partial update; nil fields are left unchanged.
type Update struct {
	Title           *string
	Description     *string
	Start           *time.Time
	End             *time.Time
	Type            *EventType
	Attendees       []user.User
	Status          *EventStatus
	RelatedTicketID *string
}

// Apply merges the update into the event.
func (e *Event) Apply(u Update) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Start != nil {
		e.Start = *u.Start
	}
	if u.End != nil {
		e.End = *u.End
	}
	if u.Type != nil {
		e.Type = *u.Type
	}
	if u.Attendees != nil {
		e.Attendees = u.Attendees
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.RelatedTicketID != nil {
		e.RelatedTicketID = *u.RelatedTicketID
	}
}
