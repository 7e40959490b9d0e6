package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osland/oscanvas/pkg/graph"
	"github.com/osland/oscanvas/pkg/project"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <project.json>",
		Short: "Check a project file and report what a best-effort import would keep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := project.Load(path)
			if err != nil {
				return err
			}

			g := graph.New()
			project.Import(doc, g)

			keptNodes := len(g.Nodes())
			keptConns := len(g.Connections())
			skippedNodes := len(doc.Nodes) - keptNodes
			skippedConns := len(doc.Connections) - keptConns

			fmt.Printf("%s %s\n", brand.Sprint(doc.Name), subtle.Sprintf("(format %s)", doc.Version))
			good.Printf("  %d nodes, %d connections imported\n", keptNodes, keptConns)
			if skippedNodes > 0 {
				warn.Printf("  %d malformed or duplicate nodes skipped\n", skippedNodes)
			}
			if skippedConns > 0 {
				warn.Printf("  %d dangling connections dropped\n", skippedConns)
			}

			for _, c := range g.Connections() {
				if g.Dangling(c) {
					warn.Printf("  connection %s references a missing port\n", c.ID)
				}
			}

			if skippedNodes == 0 && skippedConns == 0 {
				good.Println("  project is clean")
			}
			return nil
		},
	}
}
