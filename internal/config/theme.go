package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme defines the configurable colors of the terminal client
type Theme struct {
	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
}

// ClientConfig is the terminal client configuration file
type ClientConfig struct {
	// ServerURL is the base URL of the tablero server
	ServerURL string `yaml:"server_url"`
	Theme     Theme  `yaml:"theme"`
}

// DefaultTheme returns the stock color scheme
func DefaultTheme() Theme {
	return Theme{
		Accent:         "99",
		ColumnBorder:   "240",
		CardBorder:     "238",
		SelectedBorder: "99",
		Title:          "255",
		Subtle:         "243",
		Normal:         "252",
	}
}

// DefaultClientConfig returns the configuration used when no file exists
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: "http://localhost:8080",
		Theme:     DefaultTheme(),
	}
}

// LoadClient loads the terminal client config from the user's config
// directory, falling back to defaults when the file is missing.
func LoadClient() (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	path, err := clientConfigPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	fillTheme(&cfg.Theme)
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientConfig().ServerURL
	}
	return cfg, nil
}

func clientConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tablero", "config.yaml"), nil
}

// fillTheme replaces unset fields with their defaults so a partial
// theme file only overrides what it names.
func fillTheme(t *Theme) {
	def := DefaultTheme()
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.ColumnBorder == "" {
		t.ColumnBorder = def.ColumnBorder
	}
	if t.CardBorder == "" {
		t.CardBorder = def.CardBorder
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = def.SelectedBorder
	}
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Subtle == "" {
		t.Subtle = def.Subtle
	}
	if t.Normal == "" {
		t.Normal = def.Normal
	}
}
