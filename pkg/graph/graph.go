// Package graph owns the canvas data model: placed nodes, their port
// lists, and the connections between them. One Graph holds the state of
// one open project. All mutation happens synchronously on the UI thread;
// there is no locking.
package graph

import (
	"github.com/google/uuid"

	"github.com/osland/oscanvas/pkg/catalog"
)

// Node is a placed instance of a catalog template. The template is
// copied by value at creation so a node's ports and visual identity are
// independent of later catalog edits.
type Node struct {
	ID         string
	Template   catalog.Template
	X, Y       float64
	CustomName string
}

// Connection is a directed edge from an output port of one node to an
// input port of another.
type Connection struct {
	ID       string
	FromNode string
	FromPort string
	ToNode   string
	ToPort   string
}

// Graph holds all nodes and connections in insertion order.
type Graph struct {
	nodes       []*Node
	connections []*Connection
	byID        map[string]*Node

	onNodeAdded       []func(*Node)
	onNodeUpdated     []func(*Node)
	onNodeRemoved     []func(string)
	onConnectionAdded []func(*Connection)
	onCleared         []func()
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{byID: make(map[string]*Node)}
}

// ── Observers ──

// OnNodeAdded registers a callback fired after a node is inserted.
func (g *Graph) OnNodeAdded(fn func(*Node)) { g.onNodeAdded = append(g.onNodeAdded, fn) }

// OnNodeUpdated registers a callback fired after a node moves or is renamed.
func (g *Graph) OnNodeUpdated(fn func(*Node)) { g.onNodeUpdated = append(g.onNodeUpdated, fn) }

// OnNodeRemoved registers a callback fired after a node is removed.
func (g *Graph) OnNodeRemoved(fn func(string)) { g.onNodeRemoved = append(g.onNodeRemoved, fn) }

// OnConnectionAdded registers a callback fired after a connection is appended.
func (g *Graph) OnConnectionAdded(fn func(*Connection)) {
	g.onConnectionAdded = append(g.onConnectionAdded, fn)
}

// OnCleared registers a callback fired after Clear.
func (g *Graph) OnCleared(fn func()) { g.onCleared = append(g.onCleared, fn) }

func (g *Graph) emitNodeUpdated(n *Node) {
	for _, fn := range g.onNodeUpdated {
		fn(n)
	}
}

// ── Node operations ──

// AddNode places a new instance of template at (x, y), allocating a
// fresh id. The template's port lists are deep-copied. Never fails.
func (g *Graph) AddNode(t catalog.Template, x, y float64) *Node {
	n := &Node{
		ID:         uuid.NewString(),
		Template:   copyTemplate(t),
		X:          x,
		Y:          y,
		CustomName: t.Name,
	}
	g.insertNode(n)
	return n
}

// Restore appends a node as-is, keeping its id. Used by project import,
// which must not regenerate ids.
func (g *Graph) Restore(n *Node) {
	g.insertNode(n)
}

// RestoreConnection appends a connection as-is, keeping its id.
func (g *Graph) RestoreConnection(c *Connection) {
	g.insertConnection(c)
}

// insertNode appends a node as-is, keeping its id. Shared by AddNode and
// Restore.
func (g *Graph) insertNode(n *Node) {
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	for _, fn := range g.onNodeAdded {
		fn(n)
	}
}

// RemoveNode removes the node and every connection touching it, so no
// connection dangles afterwards. Unknown ids are a no-op.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.byID[id]; !ok {
		return
	}
	delete(g.byID, id)
	for i, n := range g.nodes {
		if n.ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}

	filtered := g.connections[:0]
	for _, c := range g.connections {
		if c.FromNode != id && c.ToNode != id {
			filtered = append(filtered, c)
		}
	}
	g.connections = filtered

	for _, fn := range g.onNodeRemoved {
		fn(id)
	}
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	return g.byID[id]
}

// Nodes returns all nodes in insertion order. The slice is shared; do
// not mutate it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// MoveNode sets a node's position and fires the updated callback.
func (g *Graph) MoveNode(id string, x, y float64) {
	if n, ok := g.byID[id]; ok {
		n.X = x
		n.Y = y
		g.emitNodeUpdated(n)
	}
}

// RenameNode sets a node's custom name and fires the updated callback.
func (g *Graph) RenameNode(id, name string) {
	if n, ok := g.byID[id]; ok {
		n.CustomName = name
		g.emitNodeUpdated(n)
	}
}

// ── Connection operations ──

// AddConnection appends a connection with a fresh id. Matching the
// observed editor behavior it does not reject duplicates or endpoints it
// cannot resolve; callers wanting strictness run ValidateConnection
// first. Dangling connections are dropped silently at render and
// serialization time.
func (g *Graph) AddConnection(fromNode, fromPort, toNode, toPort string) *Connection {
	c := &Connection{
		ID:       uuid.NewString(),
		FromNode: fromNode,
		FromPort: fromPort,
		ToNode:   toNode,
		ToPort:   toPort,
	}
	g.insertConnection(c)
	return c
}

// insertConnection appends a connection as-is, keeping its id.
func (g *Graph) insertConnection(c *Connection) {
	g.connections = append(g.connections, c)
	for _, fn := range g.onConnectionAdded {
		fn(c)
	}
}

// Connections returns all connections in insertion order. The slice is
// shared; do not mutate it.
func (g *Graph) Connections() []*Connection {
	return g.connections
}

// ConnectionsTouching returns every connection with the node as either
// endpoint.
func (g *Graph) ConnectionsTouching(nodeID string) []*Connection {
	var result []*Connection
	for _, c := range g.connections {
		if c.FromNode == nodeID || c.ToNode == nodeID {
			result = append(result, c)
		}
	}
	return result
}

// Clear empties the graph. Used before project import and on new project.
func (g *Graph) Clear() {
	g.nodes = nil
	g.connections = nil
	g.byID = make(map[string]*Node)
	for _, fn := range g.onCleared {
		fn()
	}
}

// copyTemplate deep-copies the port lists so the node's lists never
// alias the catalog's.
func copyTemplate(t catalog.Template) catalog.Template {
	if t.Inputs != nil {
		t.Inputs = append([]string(nil), t.Inputs...)
	}
	if t.Outputs != nil {
		t.Outputs = append([]string(nil), t.Outputs...)
	}
	return t
}
