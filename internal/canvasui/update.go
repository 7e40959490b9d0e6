package canvasui

import (
	"context"
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/osland/oscanvas/pkg/interact"
	"github.com/osland/oscanvas/pkg/project"
)

// Camera pan step per keypress, in logical units (two cells each way).
const (
	panStepX = 2 * cellUnitW
	panStepY = 2 * cellUnitH
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case kernelLineMsg:
		m.KernelLines = append(m.KernelLines, string(msg))
		if len(m.KernelLines) > maxKernelLines {
			m.KernelLines = m.KernelLines[len(m.KernelLines)-maxKernelLines:]
		}
		return m, listenKernel(m.kernelCh)

	case tea.KeyMsg:
		if m.RenameOpen {
			return m.handleRenameKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input outside the rename modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Kernel.Stop()
		return m, tea.Quit

	// Camera panning
	case "h":
		m.CamX -= panStepX
	case "l":
		m.CamX += panStepX
	case "k":
		m.CamY -= panStepY
	case "j":
		m.CamY += panStepY

	// Tools
	case "s":
		m.Session.SetTool(interact.ToolSelect)
	case "c":
		m.Session.SetTool(interact.ToolConnect)

	// Catalog navigation; enter arms the place tool with the entry
	case "up":
		if m.CatIndex > 0 {
			m.CatIndex--
		}
	case "down":
		if m.CatIndex < len(m.Catalog.All())-1 {
			m.CatIndex++
		}
	case "enter":
		all := m.Catalog.All()
		if m.CatIndex >= 0 && m.CatIndex < len(all) {
			m.Session.SetPending(all[m.CatIndex])
			m.Status = fmt.Sprintf("place: %s (click canvas)", all[m.CatIndex].Name)
		}

	case "r":
		return m.openRenameModal()

	case "d", "delete", "backspace":
		m.Session.DeleteSelected()

	case "esc", "escape":
		m.Session.Cancel()
		m.Status = ""

	// Project save/load
	case "ctrl+s":
		doc := project.Export(m.Graph, m.ProjectName)
		if err := project.Save(doc, m.ProjectPath); err != nil {
			m.Log.Error("save failed", "path", m.ProjectPath, "err", err)
			m.Status = "save failed: " + err.Error()
		} else {
			m.Status = "saved " + m.ProjectPath
		}

	case "ctrl+o":
		doc, err := project.Load(m.ProjectPath)
		if err != nil {
			m.Log.Error("load failed", "path", m.ProjectPath, "err", err)
			m.Status = "load failed: " + err.Error()
		} else {
			project.Import(doc, m.Graph)
			m.ProjectName = doc.Name
			m.Status = fmt.Sprintf("loaded %s (%d nodes)", m.ProjectPath, len(m.Graph.Nodes()))
		}

	// Kernel
	case "ctrl+r":
		m = m.kernelCommand("run")
	case "ctrl+b":
		m = m.kernelCommand("build")
	}

	return m, nil
}

// kernelCommand saves the project, makes sure the kernel is up, points
// it at the saved file and issues run or build.
func (m Model) kernelCommand(cmd string) Model {
	doc := project.Export(m.Graph, m.ProjectName)
	if err := project.Save(doc, m.ProjectPath); err != nil {
		m.Status = "save failed: " + err.Error()
		return m
	}

	if !m.Kernel.IsRunning() {
		if err := m.Kernel.Start(context.Background()); err != nil {
			m.Log.Error("kernel start failed", "err", err)
			m.Status = "kernel: " + err.Error()
			return m
		}
	}

	var err error
	if err = m.Kernel.Load(m.ProjectPath); err == nil {
		switch cmd {
		case "run":
			err = m.Kernel.Run()
		case "build":
			err = m.Kernel.Build()
		}
	}
	if err != nil {
		m.Status = "kernel: " + err.Error()
		return m
	}
	m.Status = "kernel: " + cmd
	return m
}

// canvasRect computes the canvas region. Must match the layout in View.
func (m Model) canvasRect() image.Rectangle {
	return image.Rect(catalogWidth, 1, m.Width-propsWidth, m.Height-1)
}
