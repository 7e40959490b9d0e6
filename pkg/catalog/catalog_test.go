package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLookup(t *testing.T) {
	c := Builtin()
	cpu := c.Get("cpu")
	if cpu == nil {
		t.Fatal("cpu template missing from builtin catalog")
	}
	if cpu.Type != "processor" || cpu.Category != "Processors" {
		t.Errorf("cpu: unexpected type/category %q/%q", cpu.Type, cpu.Category)
	}
	if len(cpu.Inputs) != 1 || len(cpu.Outputs) != 1 {
		t.Errorf("cpu: expected 1 input and 1 output, got %d/%d", len(cpu.Inputs), len(cpu.Outputs))
	}
}

func TestGetUnknown(t *testing.T) {
	if Builtin().Get("flux_capacitor") != nil {
		t.Error("expected nil for unknown template id")
	}
}

func TestByCategory(t *testing.T) {
	kernel := Builtin().ByCategory("Kernel")
	if len(kernel) != 5 {
		t.Errorf("expected 5 kernel templates, got %d", len(kernel))
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Builtin().Categories()
	want := []string{"Processors", "Memory", "Storage", "Network", "Peripherals", "Kernel"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, c := range cats {
		if c != want[i] {
			t.Errorf("category %d: expected %q, got %q", i, want[i], c)
		}
	}
}

func TestSearch(t *testing.T) {
	results := Builtin().Search("memory")
	// memory_manager by id, RAM/ROM by type
	if len(results) < 3 {
		t.Errorf("expected at least 3 matches for %q, got %d", "memory", len(results))
	}
}

func TestLoadDirMergesAndOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "extra.toml")
	content := `
[[components]]
id = "fpga"
name = "FPGA"
type = "processor"
category = "Processors"
color = "#aabbcc"
inputs = ["in"]
outputs = ["out"]

[[components]]
id = "cpu"
name = "Custom CPU"
type = "processor"
category = "Processors"
color = "#112233"
inputs = ["a", "b"]
outputs = ["out"]
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := LoadDir(dir)
	if c.Get("fpga") == nil {
		t.Error("fpga from user file should be present")
	}
	cpu := c.Get("cpu")
	if cpu == nil {
		t.Fatal("cpu should still be present")
	}
	if cpu.Name != "Custom CPU" || len(cpu.Inputs) != 2 {
		t.Error("user cpu definition should override the builtin one")
	}
}

func TestLoadDirMissing(t *testing.T) {
	c := LoadDir("/nonexistent/path")
	if len(c.All()) != len(Builtin().All()) {
		t.Error("missing dir should fall back to the builtin set")
	}
}
