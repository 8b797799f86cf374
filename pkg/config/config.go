// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/mediakit/pkg/ports"
	"github.com/user/mediakit/pkg/scene"
)

// Config represents the full configuration for mediakit.
type Config struct {
	// Window
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Content
	ImagePath string `yaml:"image"`
	Text      string `yaml:"text"`
	FontPath  string `yaml:"font"`
	FontSize  int    `yaml:"font_size"`

	// Style
	Theme  ThemeConfig `yaml:"theme"`
	Margin int         `yaml:"margin"`

	// Backend
	Driver   string `yaml:"driver"`    // soft or x11
	FrameDir string `yaml:"frame_dir"` // where the soft driver saves presented frames

	// Logging
	LogLevel string `yaml:"log_level"`
}

// ThemeConfig represents theming options.
type ThemeConfig struct {
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	AccentColor     string `yaml:"accent_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Title:  "mediakit",
		Width:  640,
		Height: 480,

		FontSize: 24,

		Theme: ThemeConfig{
			BackgroundColor: "#1a1a2e",
			TextColor:       "#ffffff",
			AccentColor:     "#4ade80",
		},
		Margin: 20,

		Driver:   "soft",
		FrameDir: "./frames",

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string into a ports.Color.
func ParseColor(hex string) ports.Color {
	if len(hex) == 0 {
		return ports.Color{A: 255}
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return ports.Color{A: 255}
	}

	return ports.Color{
		R: hexValue(hex[0])<<4 | hexValue(hex[1]),
		G: hexValue(hex[2])<<4 | hexValue(hex[3]),
		B: hexValue(hex[4])<<4 | hexValue(hex[5]),
		A: 255,
	}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToSceneConfig converts Config to scene.Config.
func (c Config) ToSceneConfig() scene.Config {
	return scene.Config{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,

		ImagePath: c.ImagePath,
		Text:      c.Text,
		FontPath:  c.FontPath,
		FontSize:  c.FontSize,

		BackgroundColor: ParseColor(c.Theme.BackgroundColor),
		TextColor:       ParseColor(c.Theme.TextColor),
		AccentColor:     ParseColor(c.Theme.AccentColor),
		Margin:          c.Margin,
	}
}
