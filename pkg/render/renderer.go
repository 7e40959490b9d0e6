package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osland/oscanvas/pkg/graph"
)

// Palette holds the fixed colors shared by every node; the node fill
// itself comes from the template.
type Palette struct {
	Border     string
	NameText   string
	TypeText   string
	InputPort  string
	OutputPort string
	Connection string
	Preview    string
}

// DefaultPalette matches the reference editors: grey connection lines,
// white labels, green input / blue output markers.
func DefaultPalette() Palette {
	return Palette{
		Border:     "#000000",
		NameText:   "#ffffff",
		TypeText:   "#e0e0e0",
		InputPort:  "#4caf50",
		OutputPort: "#2196f3",
		Connection: "#969696",
		Preview:    "#969696",
	}
}

// Scene is everything the renderer needs: the model plus the transient
// interaction state.
type Scene struct {
	Graph       *graph.Graph
	SelectedID  string
	ConnectFrom *graph.PortRef // origin of the in-progress connection, or nil
	CursorX     float64
	CursorY     float64
}

// Renderer draws scenes. It is a pure function of its input; the only
// state is the palette.
type Renderer struct {
	palette Palette
}

// New creates a renderer with the given palette.
func New(p Palette) *Renderer {
	return &Renderer{palette: p}
}

// Draw emits the scene onto the surface: connections first, then nodes
// with their ports on top, then the in-progress rubber-band line.
func (r *Renderer) Draw(s Surface, sc Scene) {
	g := sc.Graph

	for _, c := range g.Connections() {
		fx, fy, fromOK := g.ResolvePort(graph.PortRef{NodeID: c.FromNode, Port: c.FromPort, Dir: graph.DirOut})
		tx, ty, toOK := g.ResolvePort(graph.PortRef{NodeID: c.ToNode, Port: c.ToPort, Dir: graph.DirIn})
		if !fromOK || !toOK {
			continue // dangling, dropped silently
		}
		s.DrawLine(fx, fy, tx, ty, r.palette.Connection)
	}

	for _, n := range g.Nodes() {
		r.drawNode(s, n, n.ID == sc.SelectedID)
	}

	if sc.ConnectFrom != nil {
		if ox, oy, ok := g.ResolvePort(*sc.ConnectFrom); ok {
			s.DrawDashedLine(ox, oy, sc.CursorX, sc.CursorY, r.palette.Preview)
		}
	}
}

func (r *Renderer) drawNode(s Surface, n *graph.Node, selected bool) {
	fill := n.Template.Color
	if selected {
		fill = Darken(fill, 0.7)
	}
	s.FillRect(n.X, n.Y, graph.NodeWidth, graph.NodeHeight, fill)
	s.StrokeRect(n.X, n.Y, graph.NodeWidth, graph.NodeHeight, r.palette.Border)

	s.DrawText(n.X+graph.NodeWidth/2, n.Y+graph.NodeHeight*0.4, n.CustomName, r.palette.NameText)
	s.DrawText(n.X+graph.NodeWidth/2, n.Y+graph.NodeHeight*0.7, n.Template.Type, r.palette.TypeText)

	for i := range n.Template.Inputs {
		px, py := n.InputPos(i)
		s.FillCircle(px, py, graph.PortHitRadius, r.palette.InputPort)
	}
	for i := range n.Template.Outputs {
		px, py := n.OutputPos(i)
		s.FillCircle(px, py, graph.PortHitRadius, r.palette.OutputPort)
	}
}

// Darken scales a "#rrggbb" color toward black by factor (0..1).
// Malformed input is returned unchanged.
func Darken(hex string, factor float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return hex
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return hex
	}
	scale := func(c uint64) uint64 {
		d := uint64(float64(c) * factor)
		if d > 255 {
			d = 255
		}
		return d
	}
	red := scale(v >> 16 & 0xff)
	green := scale(v >> 8 & 0xff)
	blue := scale(v & 0xff)
	return fmt.Sprintf("#%02x%02x%02x", red, green, blue)
}
