package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/osland/oscanvas/pkg/catalog"
)

// TestGraphProperties checks the model invariants over randomly built
// graphs rather than hand-picked cases.
func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("node ids stay unique", prop.ForAll(
		func(positions []int) bool {
			g := New()
			seen := make(map[string]bool)
			for _, p := range positions {
				n := g.AddNode(cpuTemplate(), float64(p), float64(p))
				if seen[n.ID] {
					return false
				}
				seen[n.ID] = true
			}
			return len(g.Nodes()) == len(positions)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("removal leaves no touching connection", prop.ForAll(
		func(nodeCount int, pairs []int) bool {
			if nodeCount < 2 {
				return true
			}
			g := New()
			tpl := catalog.Template{
				ID: "cpu", Name: "CPU", Type: "processor",
				Inputs: []string{"in"}, Outputs: []string{"out"},
			}
			ids := make([]string, nodeCount)
			for i := range nodeCount {
				ids[i] = g.AddNode(tpl, float64(i)*120, 0).ID
			}
			for i := 0; i+1 < len(pairs); i += 2 {
				from := ids[abs(pairs[i])%nodeCount]
				to := ids[abs(pairs[i+1])%nodeCount]
				g.AddConnection(from, "out", to, "in")
			}

			victim := ids[0]
			g.RemoveNode(victim)

			for _, c := range g.Connections() {
				if c.FromNode == victim || c.ToNode == victim {
					return false
				}
			}
			return len(g.ConnectionsTouching(victim)) == 0
		},
		gen.IntRange(2, 8),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
