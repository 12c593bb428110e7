// Package seed provides the default dataset used when a collection has no
// snapshot or its snapshot fails to parse. The data is embedded YAML;
// timestamps are stored as offsets from "now" so a freshly seeded store always
// looks recently active.
package seed

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Data is the full seed dataset, one slice per collection.
type Data struct {
	Users           []user.User
	Tickets         []ticket.Ticket
	Tasks           []task.Task
	Contacts        []contact.Contact
	Events          []calendar.Event
	FlowNodes       []flow.Node
	FlowConnections []flow.Connection
}

// Load parses the embedded dataset, resolving time offsets against now.
func Load(now time.Time) (*Data, error) {
	var d Data
	if err := loadFile("data/users.yaml", &d.Users); err != nil {
		return nil, err
	}

	var tickets []ticketSeed
	if err := loadFile("data/tickets.yaml", &tickets); err != nil {
		return nil, err
	}
	for _, ts := range tickets {
		t, err := ts.toDomain(now, d.Users)
		if err != nil {
			return nil, err
		}
		d.Tickets = append(d.Tickets, t)
	}

	var tasks []taskSeed
	if err := loadFile("data/tasks.yaml", &tasks); err != nil {
		return nil, err
	}
	for _, ts := range tasks {
		d.Tasks = append(d.Tasks, ts.toDomain(now))
	}

	if err := loadFile("data/contacts.yaml", &d.Contacts); err != nil {
		return nil, err
	}

	var events []eventSeed
	if err := loadFile("data/events.yaml", &events); err != nil {
		return nil, err
	}
	for _, es := range events {
		e, err := es.toDomain(now, d.Users)
		if err != nil {
			return nil, err
		}
		d.Events = append(d.Events, e)
	}

	var fl flowSeed
	if err := loadFile("data/flow.yaml", &fl); err != nil {
		return nil, err
	}
	d.FlowNodes = fl.Nodes
	d.FlowConnections = fl.Connections

	return &d, nil
}

func loadFile(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return nil
}

// offset is a time.Duration offset from "now", e.g. "-5m" or "24h".
type offset string

func (o offset) at(now time.Time) (time.Time, error) {
	if o == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseDuration(string(o))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid seed time offset %q: %w", o, err)
	}
	return now.Add(d), nil
}

type messageSeed struct {
	ID         string `yaml:"id"`
	SenderID   string `yaml:"sender_id"`
	Content    string `yaml:"content"`
	At         offset `yaml:"at"`
	IsInternal bool   `yaml:"is_internal"`
}

type ticketSeed struct {
	ID            string        `yaml:"id"`
	Subject       string        `yaml:"subject"`
	Description   string        `yaml:"description"`
	CustomerID    string        `yaml:"customer_id"`
	Channel       string        `yaml:"channel"`
	Status        string        `yaml:"status"`
	Priority      string        `yaml:"priority"`
	LastMessageAt offset        `yaml:"last_message_at"`
	AssigneeID    string        `yaml:"assignee_id"`
	Messages      []messageSeed `yaml:"messages"`
	Tags          []string      `yaml:"tags"`
	UnreadCount   int           `yaml:"unread_count"`
	SLAStatus     string        `yaml:"sla_status"`
}

func (s ticketSeed) toDomain(now time.Time, directory []user.User) (ticket.Ticket, error) {
	customer, ok := user.FindByID(directory, s.CustomerID)
	if !ok {
		return ticket.Ticket{}, fmt.Errorf("seed ticket %s references unknown customer %s", s.ID, s.CustomerID)
	}

	lastMessageAt, err := s.LastMessageAt.at(now)
	if err != nil {
		return ticket.Ticket{}, err
	}

	t := ticket.Ticket{
		ID:            s.ID,
		Subject:       s.Subject,
		Description:   s.Description,
		Customer:      customer,
		Channel:       common.ChannelType(s.Channel),
		Status:        ticket.Status(s.Status),
		Priority:      common.Priority(s.Priority),
		LastMessageAt: lastMessageAt,
		Messages:      []ticket.Message{},
		Tags:          s.Tags,
		UnreadCount:   s.UnreadCount,
		SLAStatus:     ticket.SLAStatus(s.SLAStatus),
	}

	if s.AssigneeID != "" {
		if assignee, ok := user.FindByID(directory, s.AssigneeID); ok {
			t.Assignee = &assignee
		}
	}

	for _, ms := range s.Messages {
		at, err := ms.At.at(now)
		if err != nil {
			return ticket.Ticket{}, err
		}
		t.Messages = append(t.Messages, ticket.Message{
			ID:         ms.ID,
			SenderID:   ms.SenderID,
			Content:    ms.Content,
			Timestamp:  at,
			IsInternal: ms.IsInternal,
		})
	}

	return t, t.Validate()
}

type taskSeed struct {
	ID       string         `yaml:"id"`
	Title    string         `yaml:"title"`
	Status   string         `yaml:"status"`
	Priority string         `yaml:"priority"`
	Tags     []string       `yaml:"tags"`
	Comments int            `yaml:"comments"`
	DueIn    offset         `yaml:"due_in"`
	Project  string         `yaml:"project"`
	Subtasks []task.Subtask `yaml:"subtasks"`
}

func (s taskSeed) toDomain(now time.Time) task.Task {
	t := task.Task{
		ID:        s.ID,
		Title:     s.Title,
		Status:    task.Status(s.Status),
		Priority:  common.Priority(s.Priority),
		Tags:      s.Tags,
		Assignees: []user.User{},
		Comments:  s.Comments,
		Project:   s.Project,
		Subtasks:  s.Subtasks,
	}
	if due, err := s.DueIn.at(now); err == nil && !due.IsZero() {
		t.DueDate = &due
	}
	t.RecomputeProgress()
	return t
}

type eventSeed struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Start           offset   `yaml:"start"`
	End             offset   `yaml:"end"`
	Type            string   `yaml:"type"`
	AttendeeIDs     []string `yaml:"attendee_ids"`
	Status          string   `yaml:"status"`
	RelatedTicketID string   `yaml:"related_ticket_id"`
}

func (s eventSeed) toDomain(now time.Time, directory []user.User) (calendar.Event, error) {
	start, err := s.Start.at(now)
	if err != nil {
		return calendar.Event{}, err
	}
	end, err := s.End.at(now)
	if err != nil {
		return calendar.Event{}, err
	}

	e := calendar.Event{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Start:           start,
		End:             end,
		Type:            calendar.EventType(s.Type),
		Attendees:       []user.User{},
		Status:          calendar.EventStatus(s.Status),
		RelatedTicketID: s.RelatedTicketID,
	}
	for _, id := range s.AttendeeIDs {
		if u, ok := user.FindByID(directory, id); ok {
			e.Attendees = append(e.Attendees, u)
		}
	}
	return e, e.Validate()
}

type flowSeed struct {
	Nodes       []flow.Node       `yaml:"nodes"`
	Connections []flow.Connection `yaml:"connections"`
}
