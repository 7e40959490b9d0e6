// Package config reads and writes the oscanvas TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds oscanvas configuration.
type Config struct {
	Kernel  KernelConfig  `toml:"kernel"`
	Catalog CatalogConfig `toml:"catalog"`
	Editor  EditorConfig  `toml:"editor"`
}

// KernelConfig locates the external kernel process.
type KernelConfig struct {
	Path string   `toml:"path"`
	Args []string `toml:"args"`
}

// CatalogConfig controls user component templates.
type CatalogConfig struct {
	// Dir with extra *.toml component files merged over the built-ins.
	Dir string `toml:"dir"`
}

// EditorConfig controls editor behavior.
type EditorConfig struct {
	// LogFile receives structured logs; the TUI owns the terminal.
	LogFile string `toml:"log_file"`
	// DefaultProject is the save/load target when none is given.
	DefaultProject string `toml:"default_project"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Kernel: KernelConfig{
			Path: "osland",
			Args: []string{"--headless"},
		},
		Catalog: CatalogConfig{
			Dir: filepath.Join(ConfigDir(), "components"),
		},
		Editor: EditorConfig{
			LogFile:        filepath.Join(ConfigDir(), "oscanvas.log"),
			DefaultProject: "project.json",
		},
	}
}

// ConfigDir returns the oscanvas config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "oscanvas")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't
// exist or doesn't parse.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
