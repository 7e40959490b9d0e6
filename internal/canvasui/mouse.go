package canvasui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// screenToWorld converts a terminal cell position to logical canvas
// coordinates, accounting for the canvas region origin and the camera.
func screenToWorld(cellX, cellY int, canvasRect image.Rectangle, camX, camY float64) (float64, float64) {
	wx := float64(cellX-canvasRect.Min.X)*cellUnitW + camX
	wy := float64(cellY-canvasRect.Min.Y)*cellUnitH + camY
	return wx, wy
}

// handleMouse normalizes terminal mouse events into the session's
// pointer-down / move / up protocol.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	inside := image.Pt(mouse.X, mouse.Y).In(canvasRect)
	wx, wy := screenToWorld(mouse.X, mouse.Y, canvasRect, m.CamX, m.CamY)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft && inside {
			m.Session.PointerDown(wx, wy)
		}

	case tea.MouseMotionMsg:
		// Drags may leave the canvas region; positions are unconstrained.
		m.Session.PointerMove(wx, wy)

	case tea.MouseReleaseMsg:
		m.Session.PointerUp(wx, wy)
	}

	return m, nil
}
