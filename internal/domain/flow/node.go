// Package flow models the automation-flow graph: typed nodes positioned on a
// canvas and directed connections between them. Flows are user-authored; the
// graph is not validated for cycles or reachability at this layer.
package flow

import "fmt"

// NodeType identifies what a node does when the flow runs.
type NodeType string

const (
	TypeTrigger      NodeType = "trigger"
	TypeMessage      NodeType = "message"
	TypeImage        NodeType = "image"
	TypeVideo        NodeType = "video"
	TypeEmbed        NodeType = "embed"
	TypeInputText    NodeType = "input_text"
	TypeInputEmail   NodeType = "input_email"
	TypeInputPhone   NodeType = "input_phone"
	TypeCondition    NodeType = "condition"
	TypeWait         NodeType = "wait"
	TypeEmailSend    NodeType = "email_send"
	TypeAgentHandoff NodeType = "agent_handoff"
	TypeWebhook      NodeType = "webhook"
)

func (t NodeType) IsValid() bool {
	switch t {
	case TypeTrigger, TypeMessage, TypeImage, TypeVideo, TypeEmbed,
		TypeInputText, TypeInputEmail, TypeInputPhone, TypeCondition,
		TypeWait, TypeEmailSend, TypeAgentHandoff, TypeWebhook:
		return true
	}
	return false
}

func (t NodeType) String() string {
	return string(t)
}

// NodeData carries the node's display fields plus the type-specific settings
// the editor exposes. Unused fields stay zero for a given node type.
type NodeData struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	IconName    string   `json:"iconName,omitempty" yaml:"icon_name,omitempty"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Variable    string   `json:"variable,omitempty" yaml:"variable,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Subject     string   `json:"subject,omitempty" yaml:"subject,omitempty"`
	To          string   `json:"to,omitempty" yaml:"to,omitempty"`
	Condition   string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Duration    int      `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Node is one step in the flow. X and Y are canvas coordinates, presentation
// metadata persisted alongside the domain fields.
type Node struct {
	ID   string   `json:"id" yaml:"id"`
	Type NodeType `json:"type" yaml:"type"`
	X    float64  `json:"x" yaml:"x"`
	Y    float64  `json:"y" yaml:"y"`
	Data NodeData `json:"data" yaml:"data"`
}

func (n Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node ID is required")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("invalid node type: %s", n.Type)
	}
	if n.Data.Title == "" {
		return fmt.Errorf("node title is required")
	}
	return nil
}

// NodeUpdate is a shallow partial update; nil fields are left unchanged.
// Data is passed whole, never field-merged.
type NodeUpdate struct {
	Type *NodeType
	X    *float64
	Y    *float64
	Data *NodeData
}

// Apply merges the update into the node.
func (n *Node) Apply(u NodeUpdate) {
	if u.Type != nil {
		n.Type = *u.Type
	}
	if u.X != nil {
		n.X = *u.X
	}
	if u.Y != nil {
		n.Y = *u.Y
	}
	if u.Data != nil {
		n.Data = *u.Data
	}
}
