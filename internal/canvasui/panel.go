package canvasui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/osland/oscanvas/pkg/graph"
)

const (
	catalogWidth = 24
	propsWidth   = 30
)

// padLine right-pads an already-styled line with background-styled
// spaces to the given visible width.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	if pad := width - vis; pad > 0 {
		s += panelBGStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// padToHeight pads with empty full-width lines and truncates to height.
func padToHeight(lines []string, width, height int) []string {
	if height < 0 {
		height = 0
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lines
}

// buildCatalogPanelLayer renders the component catalog grouped by
// category, with the cursor row highlighted.
func (m Model) buildCatalogPanelLayer(x, y, width, height int) *lipgloss.Layer {
	var lines []string
	lines = append(lines, panelTitleStyle.Render(" COMPONENTS"))
	lines = append(lines, panelDimStyle.Render(strings.Repeat("─", width)))

	idx := 0
	for _, cat := range m.Catalog.Categories() {
		lines = append(lines, panelDimStyle.Render(" "+cat))
		for _, t := range m.Catalog.ByCategory(cat) {
			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.Color)).
				Background(colorPanelBG).
				Render("■")
			label := " " + t.Name
			if idx == m.CatIndex {
				lines = append(lines, swatch+panelSelStyle.Render("▸"+label))
			} else {
				lines = append(lines, swatch+panelTextStyle.Render(" "+label))
			}
			idx++
		}
	}

	content := strings.Join(padToHeight(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-catalog")
}

// buildPropsPanelLayer renders the selected node's properties, the tail
// of the kernel output, and the key help.
func (m Model) buildPropsPanelLayer(x, y, width, height int) *lipgloss.Layer {
	var lines []string
	lines = append(lines, panelTitleStyle.Render(" PROPERTIES"))
	lines = append(lines, panelDimStyle.Render(strings.Repeat("─", width)))

	if sel := m.Session.Selected(); sel != nil {
		lines = append(lines, nodePropLines(m.Graph, sel)...)
	} else {
		lines = append(lines, panelDimStyle.Render("  (nothing selected)"))
	}

	helpLines := []string{
		panelTitleStyle.Render(" KEYS"),
		panelDimStyle.Render(strings.Repeat("─", width)),
		panelKeyStyle.Render("  s") + panelTextStyle.Render(" select  ") + panelKeyStyle.Render("c") + panelTextStyle.Render(" connect"),
		panelKeyStyle.Render("  ↑↓ enter") + panelTextStyle.Render(" place from list"),
		panelKeyStyle.Render("  r") + panelTextStyle.Render(" rename  ") + panelKeyStyle.Render("d") + panelTextStyle.Render(" delete"),
		panelKeyStyle.Render("  hjkl") + panelTextStyle.Render(" pan canvas"),
		panelKeyStyle.Render("  ^s") + panelTextStyle.Render(" save  ") + panelKeyStyle.Render("^o") + panelTextStyle.Render(" open"),
		panelKeyStyle.Render("  ^r") + panelTextStyle.Render(" run   ") + panelKeyStyle.Render("^b") + panelTextStyle.Render(" build"),
	}

	// Kernel section takes whatever is left between props and help.
	kernelH := height - len(lines) - len(helpLines) - 2
	if kernelH >= 3 {
		lines = append(lines, panelTitleStyle.Render(" KERNEL"))
		lines = append(lines, panelDimStyle.Render(strings.Repeat("─", width)))
		tail := m.KernelLines
		if len(tail) > kernelH-2 {
			tail = tail[len(tail)-(kernelH-2):]
		}
		for _, l := range tail {
			if len(l) > width-3 {
				l = l[:width-3]
			}
			lines = append(lines, panelTextStyle.Render("  "+l))
		}
	}

	pre := padToHeight(lines, width, height-len(helpLines))
	post := padToHeight(helpLines, width, len(helpLines))
	content := strings.Join(append(pre, post...), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-props")
}

func nodePropLines(g *graph.Graph, n *graph.Node) []string {
	prop := func(k, v string) string {
		return panelDimStyle.Render("  "+k+" ") + panelTextStyle.Render(v)
	}
	lines := []string{
		prop("name", n.CustomName),
		prop("comp", n.Template.Name),
		prop("type", n.Template.Type),
		prop("pos ", fmt.Sprintf("(%.0f, %.0f)", n.X, n.Y)),
		prop("in  ", strings.Join(n.Template.Inputs, ", ")),
		prop("out ", strings.Join(n.Template.Outputs, ", ")),
		prop("conn", fmt.Sprintf("%d", len(g.ConnectionsTouching(n.ID)))),
	}
	return lines
}
