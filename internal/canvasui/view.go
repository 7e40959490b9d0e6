package canvasui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/osland/oscanvas/pkg/interact"
	"github.com/osland/oscanvas/pkg/render"
	"github.com/osland/oscanvas/pkg/tealayout"
)

// toolNames maps Tool to display name.
var toolNames = map[interact.Tool]string{
	interact.ToolSelect:  "SELECT",
	interact.ToolPlace:   "PLACE",
	interact.ToolConnect: "CONNECT",
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("status", 1).
		LeftFixed("catalog", catalogWidth).
		RightFixed("props", propsWidth).
		Remaining("canvas").
		Build()

	canvasRegion := layout.Get("canvas")
	catRegion := layout.Get("catalog")
	propsRegion := layout.Get("props")

	var layers []*lipgloss.Layer

	// Toolbar
	toolStr := toolNames[m.Session.Tool()]
	if p := m.Session.Pending(); p != nil {
		toolStr = fmt.Sprintf("PLACE [%s]", p.Name)
	}
	if m.Session.State() == interact.Connecting {
		toolStr = "CONNECT → release on a port"
	}
	tbContent := fmt.Sprintf(" OSCANVAS  %s  │  %s  │  [q]uit", m.ProjectName, toolStr)
	layers = append(layers, tealayout.BarLayer(tbContent, m.Width, 0, toolbarStyle, "toolbar"))

	// Canvas: rasterize the scene through the cell surface
	layers = append(layers, m.buildCanvasLayer(canvasRegion))

	// Side panels with separators
	layers = append(layers,
		tealayout.FillLayer(catRegion, panelBGStyle, "catalog-bg", 0),
		tealayout.FillLayer(propsRegion, panelBGStyle, "props-bg", 0),
		m.buildCatalogPanelLayer(catRegion.Rect.Min.X, catRegion.Rect.Min.Y,
			catRegion.Rect.Dx(), catRegion.Rect.Dy()),
		m.buildPropsPanelLayer(propsRegion.Rect.Min.X, propsRegion.Rect.Min.Y,
			propsRegion.Rect.Dx(), propsRegion.Rect.Dy()),
		tealayout.VerticalSeparator(catRegion.Rect.Max.X-1, catRegion.Rect.Min.Y,
			catRegion.Rect.Dy(), sepStyle),
	)

	// Status bar
	status := m.Status
	if status == "" {
		selStr := "none"
		if sel := m.Session.Selected(); sel != nil {
			selStr = sel.CustomName
		}
		status = fmt.Sprintf("sel: %s  │  nodes: %d  conns: %d  │  cam: (%.0f, %.0f)",
			selStr, len(m.Graph.Nodes()), len(m.Graph.Connections()), m.CamX, m.CamY)
	}
	layers = append(layers, tealayout.BarLayer(" "+status, m.Width, m.Height-1, statusStyle, "status"))

	if m.RenameOpen {
		layers = append(layers, m.buildRenameModalLayer())
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// buildCanvasLayer draws the graph scene into a cell surface sized to
// the canvas region.
func (m Model) buildCanvasLayer(region tealayout.Region) *lipgloss.Layer {
	rect := region.Rect
	surf := newCellSurface(rect.Dx(), rect.Dy(), m.CamX, m.CamY, canvasBG)

	scene := render.Scene{Graph: m.Graph}
	if sel := m.Session.Selected(); sel != nil {
		scene.SelectedID = sel.ID
	}
	if ref, ok := m.Session.ConnectOrigin(); ok {
		from := ref
		scene.ConnectFrom = &from
		scene.CursorX, scene.CursorY = m.Session.Cursor()
	}
	m.Renderer.Draw(surf, scene)

	return lipgloss.NewLayer(surf.Render()).
		X(rect.Min.X).Y(rect.Min.Y).Z(0).ID("canvas")
}
