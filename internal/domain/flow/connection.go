package flow

import "fmt"

// Connection is a directed edge between two nodes. Multi-edges and cycles are
// permitted; duplicate (From, To) suppression is a caller convention, not a
// store rule.
type Connection struct {
	ID   string `json:"id" yaml:"id"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

func (c Connection) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("connection ID is required")
	}
	if c.From == "" || c.To == "" {
		return fmt.Errorf("connection endpoints are required")
	}
	return nil
}

// HasExisting reports whether a connection with the same (from, to) pair is
// already present. Callers use it to skip duplicate edges before adding.
func HasExisting(connections []Connection, from, to string) bool {
	for _, c := range connections {
		if c.From == from && c.To == to {
			return true
		}
	}
	return false
}

// IncidentTo reports whether the connection touches the given node on either
// end. Deleting a node removes every incident connection.
func (c Connection) IncidentTo(nodeID string) bool {
	return c.From == nodeID || c.To == nodeID
}
