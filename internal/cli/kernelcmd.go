package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/osland/oscanvas/internal/config"
	"github.com/osland/oscanvas/pkg/kernel"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <project.json>",
		Short: "Load a project into the OSland kernel and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return kernelPassthrough(args[0], "run")
		},
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <project.json>",
		Short: "Load a project into the OSland kernel and build it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return kernelPassthrough(args[0], "build")
		},
	}
}

// kernelPassthrough spawns the kernel, points it at the project file,
// issues one command and streams its output until the kernel exits.
func kernelPassthrough(path, command string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("project file: %w", err)
	}

	cfg := config.Load()
	kernelPath := flagKernel
	if kernelPath == "" {
		kernelPath = cfg.Kernel.Path
	}

	client := kernel.New(kernel.Options{
		Path:   kernelPath,
		Args:   cfg.Kernel.Args,
		Logger: slog.New(slog.DiscardHandler),
		OnMessage: func(line string) {
			fmt.Println(line)
		},
		OnError: func(err error) {
			bad.Fprintf(os.Stderr, "kernel: %v\n", err)
		},
	})

	if err := client.Start(context.Background()); err != nil {
		return err
	}
	if err := client.Load(path); err != nil {
		return err
	}
	switch command {
	case "run":
		if err := client.Run(); err != nil {
			return err
		}
	case "build":
		if err := client.Build(); err != nil {
			return err
		}
	}

	// Closing stdin signals the kernel there is nothing more coming; Stop
	// then drains the remaining output before returning.
	return client.Stop()
}
