package canvasui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

// Logical canvas units per terminal cell. A node (100×50 units) comes
// out as a 25×10 cell box and the 15-unit port spacing as 3 rows, which
// keeps adjacent port markers on distinct lines.
const (
	cellUnitW = 4.0
	cellUnitH = 5.0
)

type surfCell struct {
	ch rune
	fg string
	bg string
}

// cellSurface rasterizes logical-unit draw calls into a terminal cell
// grid. It implements render.Surface; the camera offset is applied here
// so the renderer itself stays camera-agnostic.
type cellSurface struct {
	w, h       int
	camX, camY float64
	background string
	cells      []surfCell
}

func newCellSurface(w, h int, camX, camY float64, background string) *cellSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &cellSurface{
		w: w, h: h,
		camX: camX, camY: camY,
		background: background,
		cells:      make([]surfCell, w*h),
	}
	for i := range s.cells {
		s.cells[i] = surfCell{ch: ' ', bg: background}
	}
	return s
}

// toCell converts logical coordinates to cell coordinates.
func (s *cellSurface) toCell(x, y float64) (int, int) {
	return int(math.Round((x - s.camX) / cellUnitW)),
		int(math.Round((y - s.camY) / cellUnitH))
}

func (s *cellSurface) inBounds(cx, cy int) bool {
	return cx >= 0 && cx < s.w && cy >= 0 && cy < s.h
}

// set writes a glyph, keeping the existing background when bg is empty.
func (s *cellSurface) set(cx, cy int, ch rune, fg, bg string) {
	if !s.inBounds(cx, cy) {
		return
	}
	c := &s.cells[cy*s.w+cx]
	c.ch = ch
	c.fg = fg
	if bg != "" {
		c.bg = bg
	}
}

func (s *cellSurface) FillRect(x, y, w, h float64, color string) {
	cx0, cy0 := s.toCell(x, y)
	cx1, cy1 := s.toCell(x+w, y+h)
	for cy := cy0; cy < cy1; cy++ {
		for cx := cx0; cx < cx1; cx++ {
			s.set(cx, cy, ' ', "", color)
		}
	}
}

func (s *cellSurface) StrokeRect(x, y, w, h float64, color string) {
	cx0, cy0 := s.toCell(x, y)
	cx1, cy1 := s.toCell(x+w, y+h)
	cx1--
	cy1--
	if cx1 <= cx0 || cy1 <= cy0 {
		return
	}
	for cx := cx0 + 1; cx < cx1; cx++ {
		s.set(cx, cy0, '─', color, "")
		s.set(cx, cy1, '─', color, "")
	}
	for cy := cy0 + 1; cy < cy1; cy++ {
		s.set(cx0, cy, '│', color, "")
		s.set(cx1, cy, '│', color, "")
	}
	s.set(cx0, cy0, '┌', color, "")
	s.set(cx1, cy0, '┐', color, "")
	s.set(cx0, cy1, '└', color, "")
	s.set(cx1, cy1, '┘', color, "")
}

func (s *cellSurface) DrawLine(x1, y1, x2, y2 float64, color string) {
	s.line(x1, y1, x2, y2, color, false)
}

func (s *cellSurface) DrawDashedLine(x1, y1, x2, y2 float64, color string) {
	s.line(x1, y1, x2, y2, color, true)
}

// line rasterizes with Bresenham's algorithm; dashed lines skip every
// third cell.
func (s *cellSurface) line(x1, y1, x2, y2 float64, color string, dashed bool) {
	cx0, cy0 := s.toCell(x1, y1)
	cx1, cy1 := s.toCell(x2, y2)

	dx := cx1 - cx0
	dy := cy1 - cy0
	ch := lineChar(dx, dy)

	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	sx := 1
	if dx < 0 {
		sx = -1
	}
	sy := 1
	if dy < 0 {
		sy = -1
	}

	err := adx - ady
	x, y := cx0, cy0
	for i := 0; i <= adx+ady+1; i++ {
		if !dashed || i%3 != 2 {
			s.set(x, y, ch, color, "")
		}
		if x == cx1 && y == cy1 {
			break
		}
		e2 := 2 * err
		if e2 > -ady {
			err -= ady
			x += sx
		}
		if e2 < adx {
			err += adx
			y += sy
		}
	}
}

// lineChar picks the glyph for a line with direction (dx, dy).
func lineChar(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// FillCircle draws a single marker cell. Port markers are small enough
// (5-unit radius, barely over one cell) that a glyph reads better than a
// rasterized disc.
func (s *cellSurface) FillCircle(cx, cy, r float64, color string) {
	x, y := s.toCell(cx, cy)
	s.set(x, y, '●', color, "")
}

func (s *cellSurface) DrawText(x, y float64, text, color string) {
	cx, cy := s.toCell(x, y)
	runes := []rune(text)
	start := cx - len(runes)/2
	for i, ch := range runes {
		s.set(start+i, cy, ch, color, "")
	}
}

// Render converts the grid into a styled string. Consecutive cells with
// the same fg/bg pair are merged into runs and rendered with a single
// Style.Render call per run.
func (s *cellSurface) Render() string {
	if s.w == 0 || s.h == 0 {
		return ""
	}

	styleCache := make(map[string]lipgloss.Style)
	styleFor := func(fg, bg string) lipgloss.Style {
		key := fg + "/" + bg
		if st, ok := styleCache[key]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		if fg != "" {
			st = st.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			st = st.Background(lipgloss.Color(bg))
		}
		styleCache[key] = st
		return st
	}

	lines := make([]string, s.h)
	for y := 0; y < s.h; y++ {
		var sb strings.Builder
		row := s.cells[y*s.w : (y+1)*s.w]

		runStart := 0
		runFg, runBg := row[0].fg, row[0].bg
		flush := func(end int) {
			chunk := make([]rune, end-runStart)
			for i := runStart; i < end; i++ {
				chunk[i-runStart] = row[i].ch
			}
			sb.WriteString(styleFor(runFg, runBg).Render(string(chunk)))
		}
		for x := 1; x < s.w; x++ {
			if row[x].fg != runFg || row[x].bg != runBg {
				flush(x)
				runStart = x
				runFg, runBg = row[x].fg, row[x].bg
			}
		}
		flush(s.w)
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// cellAt returns the cell at (cx, cy), for tests.
func (s *cellSurface) cellAt(cx, cy int) surfCell {
	if !s.inBounds(cx, cy) {
		return surfCell{}
	}
	return s.cells[cy*s.w+cx]
}
