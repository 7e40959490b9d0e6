package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// templateFile is the on-disk shape of a catalog TOML file.
type templateFile struct {
	Components []Template `toml:"components"`
}

// LoadFile parses a single catalog TOML file.
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf templateFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	return tf.Components, nil
}

// LoadDir merges the built-in component set with every *.toml file in dir.
// A missing directory is fine; unreadable or malformed files are skipped.
// User templates override built-ins with the same id.
func LoadDir(dir string) *Catalog {
	templates := Builtin().All()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return New(templates)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		loaded, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		templates = append(templates, loaded...)
	}

	return New(dedup(templates))
}

// dedup removes duplicate templates by id, keeping the last occurrence.
func dedup(templates []Template) []Template {
	last := make(map[string]int, len(templates))
	for i, t := range templates {
		last[t.ID] = i
	}
	result := make([]Template, 0, len(last))
	for i, t := range templates {
		if last[t.ID] == i {
			result = append(result, t)
		}
	}
	return result
}
