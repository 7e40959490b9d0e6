package canvasui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/osland/oscanvas/pkg/tealayout"
)

// openRenameModal opens the rename input for the selected node.
func (m Model) openRenameModal() (tea.Model, tea.Cmd) {
	sel := m.Session.Selected()
	if sel == nil {
		return m, nil
	}

	m.RenameOpen = true
	m.RenameInput = textinput.New()
	m.RenameInput.Prompt = ""
	m.RenameInput.CharLimit = 40
	m.RenameInput.SetValue(sel.CustomName)

	cmd := m.RenameInput.Focus()
	return m, cmd
}

// handleRenameKeys processes keys while the rename modal is open.
func (m Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.RenameOpen = false
		return m, nil

	case "enter":
		if sel := m.Session.Selected(); sel != nil {
			name := strings.TrimSpace(m.RenameInput.Value())
			if name != "" {
				m.Graph.RenameNode(sel.ID, name)
			}
		}
		m.RenameOpen = false
		return m, nil

	default:
		var cmd tea.Cmd
		m.RenameInput, cmd = m.RenameInput.Update(msg)
		return m, cmd
	}
}

// buildRenameModalLayer renders the rename modal as a centered overlay.
func (m Model) buildRenameModalLayer() *lipgloss.Layer {
	title := lipgloss.NewStyle().
		Foreground(c("#e8e8e8")).
		Background(colorPanelBG).
		Bold(true).
		Render("Rename node")

	hint := panelDimStyle.Render("[enter] save  [esc] cancel")

	content := strings.Join([]string{
		title,
		"",
		m.RenameInput.View(),
		"",
		hint,
	}, "\n")

	return tealayout.ModalLayer(content, m.Width, m.Height, modalBoxStyle)
}
