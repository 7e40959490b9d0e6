// Package cli wires the oscanvas commands: the default terminal editor
// plus headless project validation and kernel passthrough commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/osland/oscanvas/internal/canvasui"
	"github.com/osland/oscanvas/internal/config"
	"github.com/osland/oscanvas/pkg/catalog"
)

var version = "1.0.0"

var (
	flagProject string
	flagKernel  string
)

var rootCmd = &cobra.Command{
	Use:   "oscanvas",
	Short: "oscanvas — terminal node-graph editor for OSland projects",
	Long: brand.Sprint("oscanvas") + " — place OS components on a canvas, wire their ports,\n" +
		subtle.Sprint("and hand the project to the OSland kernel to build and run."),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		project := flagProject
		if project == "" {
			project = cfg.Editor.DefaultProject
		}
		kernelPath := flagKernel
		if kernelPath == "" {
			kernelPath = cfg.Kernel.Path
		}

		logger, closeLog, err := fileLogger(cfg.Editor.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		m := canvasui.NewModel(canvasui.Options{
			Catalog:     catalog.LoadDir(cfg.Catalog.Dir),
			ProjectPath: project,
			KernelPath:  kernelPath,
			KernelArgs:  cfg.Kernel.Args,
			Logger:      logger,
		})

		p := tea.NewProgram(m)
		_, err = p.Run()
		return err
	},
}

// fileLogger builds a slog logger writing to path; the TUI owns the
// terminal, so logs never go to stdout.
func fileLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { f.Close() }, nil
}

func init() {
	rootCmd.SetVersionTemplate("oscanvas {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project file to open")
	rootCmd.PersistentFlags().StringVar(&flagKernel, "kernel", "", "Path to the osland kernel binary")

	rootCmd.AddCommand(
		validateCmd(),
		runCmd(),
		buildCmd(),
		versionCmd(),
	)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		bad.Fprintf(os.Stderr, "oscanvas: %v\n", err)
		os.Exit(1)
	}
}
