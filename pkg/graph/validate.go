package graph

import (
	"errors"
	"fmt"
)

// Validation is opt-in: AddConnection itself stays permissive to match
// the reference editors, but callers that want strictness (the
// interaction layer, the validate CLI command) can run these checks
// before committing.

var (
	ErrSelfLoop    = errors.New("connection endpoints are the same node")
	ErrUnknownNode = errors.New("unknown node")
	ErrUnknownPort = errors.New("port not in node template")
)

// ValidateConnection checks that both endpoints exist, the port names
// resolve in the right direction, and the connection is not a self-loop.
func (g *Graph) ValidateConnection(fromNode, fromPort, toNode, toPort string) error {
	if fromNode == toNode {
		return ErrSelfLoop
	}
	from := g.byID[fromNode]
	if from == nil {
		return fmt.Errorf("from %q: %w", fromNode, ErrUnknownNode)
	}
	to := g.byID[toNode]
	if to == nil {
		return fmt.Errorf("to %q: %w", toNode, ErrUnknownNode)
	}
	if !hasPort(from.Template.Outputs, fromPort) {
		return fmt.Errorf("output %q on %q: %w", fromPort, fromNode, ErrUnknownPort)
	}
	if !hasPort(to.Template.Inputs, toPort) {
		return fmt.Errorf("input %q on %q: %w", toPort, toNode, ErrUnknownPort)
	}
	return nil
}

// Dangling reports whether a connection fails to resolve against the
// current graph. Dangling connections are skipped at render and
// serialization time, never surfaced as errors.
func (g *Graph) Dangling(c *Connection) bool {
	_, _, fromOK := g.ResolvePort(PortRef{NodeID: c.FromNode, Port: c.FromPort, Dir: DirOut})
	_, _, toOK := g.ResolvePort(PortRef{NodeID: c.ToNode, Port: c.ToPort, Dir: DirIn})
	return !fromOK || !toOK
}

func hasPort(names []string, port string) bool {
	for _, n := range names {
		if n == port {
			return true
		}
	}
	return false
}
