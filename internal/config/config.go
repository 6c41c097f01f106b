package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all kitnet configuration.
type Config struct {
	Selection  SelectionConfig  `toml:"selection"`
	Project    ProjectConfig    `toml:"project"`
	Viewer     ViewerConfig     `toml:"viewer"`
	Appearance AppearanceConfig `toml:"appearance"`
	Prices     PriceOverrides   `toml:"prices"`
}

// SelectionConfig holds the choices the page opens with.
type SelectionConfig struct {
	Construction string `toml:"construction"`
	Roof         string `toml:"roof"`
	Deck         bool   `toml:"deck"`
	PVC          bool   `toml:"pvc"`
	Roofing      bool   `toml:"roofing"`
}

// ProjectConfig points at user-supplied data files.
type ProjectConfig struct {
	Catalog   string   `toml:"catalog,omitempty"`
	Model     string   `toml:"model,omitempty"`
	LaborCost *float64 `toml:"labor_cost,omitempty"`
}

// ViewerConfig holds 3D camera settings.
type ViewerConfig struct {
	FOV float64 `toml:"fov,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Selection: SelectionConfig{
			Construction: "bloco",
			Roof:         "laje",
			Roofing:      true,
		},
		Viewer: ViewerConfig{
			FOV: 50,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kitnet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kitnet")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// CatalogPath returns the catalog file from env var or config, in that order.
// An empty result means the embedded catalog.
func CatalogPath(cfg Config) string {
	if p := os.Getenv("KITNET_CATALOG"); p != "" {
		return p
	}
	return cfg.Project.Catalog
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
