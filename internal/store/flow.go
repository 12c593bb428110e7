package store

import (
	"context"
	"encoding/json"

	"ghitdesk/internal/domain/flow"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Flow holds the automation-flow graph: nodes and their connections, guarded
// by a single mutex so the node-delete cascade stays atomic. Each side
// persists under its own snapshot key through its own writer.
type Flow struct {
	c *graph
}

type graph struct {
	coll        *collection[flow.Node]
	connections []flow.Connection
	connWriter  *snapshotWriter
	snaps       snapshot.Store
	log         logger.Interface
}

func newFlow(snaps snapshot.Store, log logger.Interface) *Flow {
	named := log.Named("store.flow")
	return &Flow{c: &graph{
		coll:       newCollection(snapshot.KeyFlowNodes, func(n flow.Node) string { return n.ID }, snaps, log),
		connWriter: newSnapshotWriter(snapshot.KeyFlowConnections, snaps, named.Named("connections")),
		snaps:      snaps,
		log:        named,
	}}
}

// hydrate loads both sides of the graph, each falling back to its own seed.
func (s *Flow) hydrate(ctx context.Context, nodes []flow.Node, connections []flow.Connection) {
	s.c.coll.hydrate(ctx, nodes)

	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()

	data, err := g.snaps.Read(ctx, snapshot.KeyFlowConnections)
	if err == nil {
		var conns []flow.Connection
		jsonErr := json.Unmarshal(data, &conns)
		if jsonErr == nil {
			g.connections = conns
			return
		}
		g.log.Warnw("discarding malformed connections snapshot, falling back to seed data",
			"error", jsonErr)
	}
	g.connections = make([]flow.Connection, len(connections))
	copy(g.connections, connections)
}

func (s *Flow) Nodes(ctx context.Context) []flow.Node {
	return s.c.coll.list()
}

func (s *Flow) GetNode(ctx context.Context, id string) (flow.Node, bool) {
	return s.c.coll.get(id)
}

func (s *Flow) AddNode(ctx context.Context, n flow.Node) {
	s.c.coll.insertTail(n)
}

func (s *Flow) UpdateNode(ctx context.Context, id string, u flow.NodeUpdate) (flow.Node, bool) {
	return s.c.coll.update(id, func(n *flow.Node) { n.Apply(u) })
}

// SetNodes replaces the whole node set in one write. Used for bulk canvas
// position updates after a drag.
func (s *Flow) SetNodes(ctx context.Context, nodes []flow.Node) {
	s.c.coll.replaceAll(nodes)
}

// DeleteNode removes the node and every connection incident to it, on either
// end, in one atomic step. Unknown ids are a no-op with no writes.
func (s *Flow) DeleteNode(ctx context.Context, id string) bool {
	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()

	found := false
	for i := range g.coll.items {
		if g.coll.items[i].ID == id {
			g.coll.items = append(g.coll.items[:i], g.coll.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	g.coll.persistLocked()

	kept := g.connections[:0]
	removed := 0
	for _, c := range g.connections {
		if c.IncidentTo(id) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	g.connections = kept
	if removed > 0 {
		g.log.Debugw("cascade removed connections", "node", id, "count", removed)
	}
	g.persistConnectionsLocked()
	return true
}

func (s *Flow) Connections(ctx context.Context) []flow.Connection {
	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()
	out := make([]flow.Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

func (s *Flow) AddConnection(ctx context.Context, c flow.Connection) {
	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()
	g.connections = append(g.connections, c)
	g.persistConnectionsLocked()
}

// DeleteConnection removes a single edge by id. Idempotent.
func (s *Flow) DeleteConnection(ctx context.Context, id string) bool {
	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()
	for i := range g.connections {
		if g.connections[i].ID == id {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			g.persistConnectionsLocked()
			return true
		}
	}
	return false
}

// HasConnection reports whether an edge with the same (from, to) pair exists.
func (s *Flow) HasConnection(ctx context.Context, from, to string) bool {
	g := s.c
	g.coll.mu.Lock()
	defer g.coll.mu.Unlock()
	return flow.HasExisting(g.connections, from, to)
}

// ResolveNode finds a node by exact id, then by case-insensitive title
// substring. The bool reports whether anything matched.
func (s *Flow) ResolveNode(ctx context.Context, identifier string) (flow.Node, bool) {
	return flow.ResolveNode(s.c.coll.list(), identifier)
}

func (g *graph) persistConnectionsLocked() {
	data, err := json.Marshal(g.connections)
	if err != nil {
		g.log.Errorw("failed to serialize connections", "error", err)
		return
	}
	g.connWriter.write(data)
}

func (s *Flow) flush() {
	s.c.coll.flush()
	s.c.connWriter.flush()
}
