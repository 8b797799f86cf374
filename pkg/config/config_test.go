package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/mediakit/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("unexpected default window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Driver != "soft" {
		t.Errorf("expected soft driver by default, got %q", cfg.Driver)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level by default, got %q", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mediakit.yaml")
	data := []byte(`
title: demo
width: 800
height: 600
text: "hello"
font: fonts/regular.ttf
driver: x11
theme:
  background_color: "#000000"
  accent_color: "#ff0000"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Title != "demo" || cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("unexpected window config: %+v", cfg)
	}
	if cfg.Driver != "x11" {
		t.Errorf("expected x11 driver, got %q", cfg.Driver)
	}
	// Unset fields keep their defaults.
	if cfg.FontSize != 24 {
		t.Errorf("expected default font size, got %d", cfg.FontSize)
	}
	if cfg.Theme.TextColor != "#ffffff" {
		t.Errorf("expected default text color, got %q", cfg.Theme.TextColor)
	}
	if cfg.Theme.AccentColor != "#ff0000" {
		t.Errorf("expected accent override, got %q", cfg.Theme.AccentColor)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want ports.Color
	}{
		{"#ff8000", ports.Color{R: 255, G: 128, B: 0, A: 255}},
		{"4ade80", ports.Color{R: 0x4a, G: 0xde, B: 0x80, A: 255}},
		{"#FFFFFF", ports.Color{R: 255, G: 255, B: 255, A: 255}},
		{"", ports.Color{A: 255}},
		{"#abc", ports.Color{A: 255}},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.hex); got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestToSceneConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Text = "caption"
	sc := cfg.ToSceneConfig()
	if sc.Width != cfg.Width || sc.Height != cfg.Height {
		t.Error("scene config should carry the window size")
	}
	if sc.Text != "caption" {
		t.Errorf("expected caption to carry over, got %q", sc.Text)
	}
	if sc.BackgroundColor != (ports.Color{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}) {
		t.Errorf("unexpected background color %+v", sc.BackgroundColor)
	}
}
