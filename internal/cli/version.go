package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/osland/oscanvas/internal/config"
	"github.com/osland/oscanvas/pkg/kernel"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the oscanvas version and, when reachable, the kernel's",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("oscanvas %s\n", version)

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
					fmt.Printf("kernel %s\n", line)
				},
			})
			if err := client.Start(context.Background()); err != nil {
				subtle.Println("kernel not reachable")
				return
			}
			if err := client.Version(); err != nil {
				subtle.Println("kernel not reachable")
			}
			client.Stop()
		},
	}
}
