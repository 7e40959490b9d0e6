// Package interact implements the pointer-driven select/place/connect
// tool behavior over a graph. Hosts normalize mouse and touch input to
// the three pointer events (down, move, up) and call them synchronously
// on the UI thread; every operation is total and invalid gestures are
// no-ops.
package interact

import (
	"github.com/osland/oscanvas/pkg/catalog"
	"github.com/osland/oscanvas/pkg/graph"
)

// State is the current interactive operation. Entering one state is
// mutually exclusive with the others; releasing the pointer always
// returns to Idle.
type State int

const (
	Idle State = iota
	Dragging
	Connecting
)

// Tool is the active tool mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPlace
	ToolConnect
)

// Session drives one canvas. It holds only transient references into the
// graph (selection, drag target); the graph owns the entities.
type Session struct {
	graph *graph.Graph

	tool    Tool
	pending *catalog.Template

	state            State
	selected         string
	dragID           string
	dragOffX         float64
	dragOffY         float64
	connectFrom      graph.PortRef
	cursorX, cursorY float64

	onNodeSelected []func(*graph.Node)
}

// NewSession creates an idle session over the graph.
func NewSession(g *graph.Graph) *Session {
	return &Session{graph: g}
}

// OnNodeSelected registers a callback fired whenever the selection
// changes; it receives nil on deselect. Consumed by property panels.
func (s *Session) OnNodeSelected(fn func(*graph.Node)) {
	s.onNodeSelected = append(s.onNodeSelected, fn)
}

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// SetTool switches tools and cancels any in-progress operation.
func (s *Session) SetTool(t Tool) {
	s.tool = t
	s.state = Idle
	if t != ToolPlace {
		s.pending = nil
	}
}

// SetPending arms the place tool with a catalog template. The template
// stays pending so repeated clicks place repeated nodes.
func (s *Session) SetPending(t catalog.Template) {
	s.pending = &t
	s.tool = ToolPlace
	s.state = Idle
}

// Pending returns the armed template, or nil.
func (s *Session) Pending() *catalog.Template { return s.pending }

// State returns the current interactive state.
func (s *Session) State() State { return s.state }

// Selected returns the selected node, or nil. The pointer is only valid
// until the graph removes the node.
func (s *Session) Selected() *graph.Node {
	if s.selected == "" {
		return nil
	}
	return s.graph.NodeByID(s.selected)
}

// ConnectOrigin returns the port the in-progress connection started
// from; ok is false unless the session is Connecting.
func (s *Session) ConnectOrigin() (graph.PortRef, bool) {
	return s.connectFrom, s.state == Connecting
}

// Cursor returns the last pointer position, used for the rubber-band
// line while Connecting.
func (s *Session) Cursor() (x, y float64) { return s.cursorX, s.cursorY }

// PointerDown begins a drag, places a pending node, or starts a
// connection, depending on the active tool and what is under the cursor.
func (s *Session) PointerDown(x, y float64) {
	s.cursorX, s.cursorY = x, y

	switch {
	case s.tool == ToolPlace && s.pending != nil:
		// Center the new node on the cursor, like the reference editors.
		n := s.graph.AddNode(*s.pending, x-graph.NodeWidth/2, y-graph.NodeHeight/2)
		s.setSelected(n.ID)

	case s.tool == ToolConnect:
		if ref, ok := s.graph.PortAt(x, y); ok {
			s.connectFrom = ref
			s.state = Connecting
		}

	default: // ToolSelect
		if n := s.graph.NodeAt(x, y); n != nil {
			s.state = Dragging
			s.dragID = n.ID
			s.dragOffX = x - n.X
			s.dragOffY = y - n.Y
			s.setSelected(n.ID)
		} else {
			s.setSelected("")
		}
	}
}

// PointerMove updates the drag target's position (cursor minus the
// grab offset, unconstrained) or the rubber-band endpoint.
func (s *Session) PointerMove(x, y float64) {
	s.cursorX, s.cursorY = x, y
	if s.state == Dragging {
		s.graph.MoveNode(s.dragID, x-s.dragOffX, y-s.dragOffY)
	}
	// Connecting: no model mutation, the renderer tracks the cursor.
}

// PointerUp ends the current operation. A connection commits only when
// released over a port on a different node; in every case the session
// returns to Idle.
func (s *Session) PointerUp(x, y float64) {
	s.cursorX, s.cursorY = x, y

	if s.state == Connecting {
		if ref, ok := s.graph.PortAt(x, y); ok && ref.NodeID != s.connectFrom.NodeID {
			s.graph.AddConnection(s.connectFrom.NodeID, s.connectFrom.Port, ref.NodeID, ref.Port)
		}
	}
	s.state = Idle
	s.dragID = ""
}

// DeleteSelected removes the selected node (connections cascade in the
// model) and clears the selection. No-op without a selection.
func (s *Session) DeleteSelected() {
	if s.selected == "" {
		return
	}
	s.graph.RemoveNode(s.selected)
	s.setSelected("")
}

// Cancel aborts any in-progress operation and disarms the place tool.
func (s *Session) Cancel() {
	s.state = Idle
	s.dragID = ""
	s.pending = nil
	s.tool = ToolSelect
}

func (s *Session) setSelected(id string) {
	if s.selected == id {
		return
	}
	s.selected = id
	n := s.Selected()
	for _, fn := range s.onNodeSelected {
		fn(n)
	}
}
