// Package canvasui is the terminal host for the canvas engine: a
// Bubbletea v2 model that feeds mouse input to an interact.Session,
// rasterizes the graph through a cell-grid Surface, and surrounds the
// canvas with catalog and property panels.
package canvasui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/osland/oscanvas/pkg/catalog"
	"github.com/osland/oscanvas/pkg/graph"
	"github.com/osland/oscanvas/pkg/interact"
	"github.com/osland/oscanvas/pkg/kernel"
	"github.com/osland/oscanvas/pkg/render"
)

// kernelLineMsg delivers one kernel stdout line to the update loop.
type kernelLineMsg string

// maxKernelLines caps the kernel output buffer shown in the panel.
const maxKernelLines = 200

// Options configures the editor model.
type Options struct {
	Catalog     *catalog.Catalog
	ProjectPath string // save/load target
	KernelPath  string // kernel binary; defaults inside pkg/kernel
	KernelArgs  []string
	Logger      *slog.Logger
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     float64 // camera offset in logical units

	Catalog  *catalog.Catalog
	Graph    *graph.Graph
	Session  *interact.Session
	Renderer *render.Renderer
	Kernel   *kernel.Client
	Log      *slog.Logger

	ProjectPath string
	ProjectName string

	// Catalog panel cursor (index into Catalog.All()).
	CatIndex int

	Status      string
	KernelLines []string
	kernelCh    chan string

	// Rename modal state
	RenameOpen  bool
	RenameInput textinput.Model
}

// NewModel creates the initial editor state with an empty graph.
func NewModel(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Builtin()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ProjectPath == "" {
		opts.ProjectPath = "project.json"
	}

	g := graph.New()
	kernelCh := make(chan string, 64)
	kc := kernel.New(kernel.Options{
		Path:   opts.KernelPath,
		Args:   opts.KernelArgs,
		Logger: opts.Logger,
		OnMessage: func(line string) {
			select {
			case kernelCh <- line:
			default: // drop when the UI falls behind
			}
		},
	})

	return Model{
		Catalog:     opts.Catalog,
		Graph:       g,
		Session:     interact.NewSession(g),
		Renderer:    render.New(render.DefaultPalette()),
		Kernel:      kc,
		Log:         opts.Logger,
		ProjectPath: opts.ProjectPath,
		ProjectName: "Untitled Project",
		kernelCh:    kernelCh,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return listenKernel(m.kernelCh)
}

// listenKernel waits for the next kernel stdout line.
func listenKernel(ch chan string) tea.Cmd {
	return func() tea.Msg {
		return kernelLineMsg(<-ch)
	}
}
