package canvasui

import (
	"image"
	"testing"

	"github.com/osland/oscanvas/pkg/catalog"
	"github.com/osland/oscanvas/pkg/graph"
	"github.com/osland/oscanvas/pkg/render"
)

// ── coordinate mapping ──

func TestToCellScale(t *testing.T) {
	s := newCellSurface(80, 24, 0, 0, canvasBG)

	cases := []struct {
		x, y     float64
		cx, cy   int
	}{
		{0, 0, 0, 0},
		{100, 50, 25, 10},   // one node span
		{4, 5, 1, 1},        // one cell
		{15, 15, 4, 3},      // port spacing lands on row 3
	}
	for _, tc := range cases {
		cx, cy := s.toCell(tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("toCell(%v,%v): expected (%d,%d), got (%d,%d)",
				tc.x, tc.y, tc.cx, tc.cy, cx, cy)
		}
	}
}

func TestToCellCamera(t *testing.T) {
	s := newCellSurface(80, 24, 40, 25, canvasBG)
	cx, cy := s.toCell(40, 25)
	if cx != 0 || cy != 0 {
		t.Errorf("camera origin: expected (0,0), got (%d,%d)", cx, cy)
	}
	cx, cy = s.toCell(140, 75)
	if cx != 25 || cy != 10 {
		t.Errorf("camera offset point: expected (25,10), got (%d,%d)", cx, cy)
	}
}

// ── primitives ──

func TestFillRect(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.FillRect(0, 0, 100, 50, "#ff9f40")

	if got := s.cellAt(0, 0).bg; got != "#ff9f40" {
		t.Errorf("inside fill: expected #ff9f40, got %q", got)
	}
	if got := s.cellAt(24, 9).bg; got != "#ff9f40" {
		t.Errorf("bottom-right inside: expected #ff9f40, got %q", got)
	}
	if got := s.cellAt(25, 10).bg; got != canvasBG {
		t.Errorf("outside fill: expected canvas bg, got %q", got)
	}
}

func TestStrokeRectCorners(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.StrokeRect(0, 0, 100, 50, "#000000")

	checks := []struct {
		cx, cy int
		ch     rune
	}{
		{0, 0, '┌'},
		{24, 0, '┐'},
		{0, 9, '└'},
		{24, 9, '┘'},
		{12, 0, '─'},
		{0, 5, '│'},
	}
	for _, tc := range checks {
		if got := s.cellAt(tc.cx, tc.cy).ch; got != tc.ch {
			t.Errorf("stroke at (%d,%d): expected %q, got %q", tc.cx, tc.cy, tc.ch, got)
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.DrawLine(0, 25, 100, 25, "#969696")

	for cx := 0; cx <= 25; cx++ {
		cell := s.cellAt(cx, 5)
		if cell.ch != '─' || cell.fg != "#969696" {
			t.Fatalf("line cell (%d,5): got %q fg=%q", cx, cell.ch, cell.fg)
		}
	}
}

func TestDrawDashedLineSkipsCells(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.DrawDashedLine(0, 0, 100, 0, "#969696")

	drawn, gaps := 0, 0
	for cx := 0; cx <= 25; cx++ {
		if s.cellAt(cx, 0).ch == '─' {
			drawn++
		} else {
			gaps++
		}
	}
	if gaps == 0 {
		t.Error("dashed line has no gaps")
	}
	if drawn == 0 {
		t.Error("dashed line drew nothing")
	}
}

func TestFillCircleMarker(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.FillCircle(40, 25, 5, "#4caf50")

	cell := s.cellAt(10, 5)
	if cell.ch != '●' || cell.fg != "#4caf50" {
		t.Errorf("port marker: got %q fg=%q", cell.ch, cell.fg)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := newCellSurface(40, 20, 0, 0, canvasBG)
	s.DrawText(40, 25, "CPU", "#ffffff")

	// Center cell is (10,5); "CPU" starts one cell left of it.
	want := map[int]rune{9: 'C', 10: 'P', 11: 'U'}
	for cx, ch := range want {
		if got := s.cellAt(cx, 5).ch; got != ch {
			t.Errorf("text cell (%d,5): expected %q, got %q", cx, ch, got)
		}
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := newCellSurface(10, 5, 0, 0, canvasBG)
	// None of these may panic.
	s.FillRect(-100, -100, 50, 50, "#111111")
	s.DrawLine(-40, -40, 400, 400, "#222222")
	s.DrawText(1e6, 1e6, "far", "#333333")
	s.FillCircle(-10, -10, 5, "#444444")
}

// ── full scene raster ──

func TestSceneNodeRaster(t *testing.T) {
	g := graph.New()
	n := g.AddNode(catalog.Template{
		ID: "cpu", Name: "CPU", Type: "processor", Color: "#ff9f40",
		Inputs: []string{"in"}, Outputs: []string{"out"},
	}, 20, 10)

	surf := newCellSurface(60, 20, 0, 0, canvasBG)
	render.New(render.DefaultPalette()).Draw(surf, render.Scene{Graph: g})

	// Node interior is filled with the template color.
	if got := surf.cellAt(10, 5).bg; got != "#ff9f40" {
		t.Errorf("node fill: expected #ff9f40, got %q", got)
	}

	// Output port marker sits on the right edge.
	px, py := n.OutputPos(0)
	cx, cy := surf.toCell(px, py)
	if got := surf.cellAt(cx, cy).ch; got != '●' {
		t.Errorf("output port at (%d,%d): expected marker, got %q", cx, cy, got)
	}
}

func TestSceneRenderNonEmpty(t *testing.T) {
	g := graph.New()
	g.AddNode(catalog.Template{ID: "ram", Name: "RAM", Type: "memory", Color: "#4a90e2"}, 0, 0)

	surf := newCellSurface(30, 10, 0, 0, canvasBG)
	render.New(render.DefaultPalette()).Draw(surf, render.Scene{Graph: g})

	out := surf.Render()
	if out == "" {
		t.Fatal("expected rendered output")
	}
}

// ── screen/world mapping ──

func TestScreenToWorld(t *testing.T) {
	rect := image.Rect(24, 1, 70, 23)

	wx, wy := screenToWorld(24, 1, rect, 0, 0)
	if wx != 0 || wy != 0 {
		t.Errorf("canvas origin: expected (0,0), got (%v,%v)", wx, wy)
	}

	wx, wy = screenToWorld(34, 6, rect, 0, 0)
	if wx != 40 || wy != 25 {
		t.Errorf("10 cells right, 5 down: expected (40,25), got (%v,%v)", wx, wy)
	}

	wx, wy = screenToWorld(24, 1, rect, 80, 45)
	if wx != 80 || wy != 45 {
		t.Errorf("with camera: expected (80,45), got (%v,%v)", wx, wy)
	}
}
