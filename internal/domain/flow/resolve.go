package flow

import "strings"

// ResolveNode resolves an identifier coming from the assistant tool surface
// to a node. Exact ID match wins over any title match; otherwise the first
// node whose title contains the identifier (case-insensitive) is chosen.
// Returns false when nothing matches.
func ResolveNode(nodes []Node, identifier string) (Node, bool) {
	if identifier == "" {
		return Node{}, false
	}
	for _, n := range nodes {
		if n.ID == identifier {
			return n, true
		}
	}
	needle := strings.ToLower(identifier)
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Data.Title), needle) {
			return n, true
		}
	}
	return Node{}, false
}
