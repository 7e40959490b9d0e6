package canvasui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// canvasBG is the canvas background, shared with the cell surface as a
// plain hex string.
const canvasBG = "#1e1e1e"

// Chrome colors — dark editor chrome around the canvas.
var (
	colorChrome  = c("#252526")
	colorPanelBG = c("#2d2d30")

	toolbarStyle = lipgloss.NewStyle().
			Background(colorChrome).
			Foreground(c("#e8e8e8")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(colorChrome).
			Foreground(c("#9a9a9a"))

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#3c3c3c")).
			Background(colorPanelBG)

	panelBGStyle = lipgloss.NewStyle().
			Background(colorPanelBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#e8e8e8")).
			Background(colorPanelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#6a6a6a")).
			Background(colorPanelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#c8c8c8")).
			Background(colorPanelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#d7ba7d")).
			Background(colorPanelBG)

	panelSelStyle = lipgloss.NewStyle().
			Foreground(c("#ffffff")).
			Background(c("#094771")).
			Bold(true)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#4a90e2")).
			Background(colorPanelBG).
			Width(44).
			Padding(1, 2)
)
