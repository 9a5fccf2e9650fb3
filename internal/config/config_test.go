package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window is %dx%d, expected 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Grid.CellSize != 5 {
		t.Errorf("default cell size is %d, expected 5", cfg.Grid.CellSize)
	}
	if cfg.Draw.DebugDelayMS != 50 {
		t.Errorf("default debug delay is %d, expected 50", cfg.Draw.DebugDelayMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file returned %+v, expected defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  width: 1024
  title: Lines
grid:
  cell_size: 10
draw:
  foreground: "#00FF00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("window width is %d, expected the override 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("window height is %d, expected the default 600", cfg.Window.Height)
	}
	if cfg.Window.Title != "Lines" {
		t.Errorf("window title is %q, expected the override", cfg.Window.Title)
	}
	if cfg.Grid.CellSize != 10 {
		t.Errorf("cell size is %d, expected the override 10", cfg.Grid.CellSize)
	}

	palette, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if palette.Foreground != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("foreground is %v, expected green", palette.Foreground)
	}
	if palette.Marker != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("marker is %v, expected the default red", palette.Marker)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad yaml", "window: ["},
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"negative delay", "draw:\n  debug_delay_ms: -1\n"},
		{"bad color", "draw:\n  marker: \"red\"\n"},
		{"zero window", "window:\n  width: 0\n"},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", c.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"#D3D3D3", color.RGBA{211, 211, 211, 255}},
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
		{"#F00", color.RGBA{255, 0, 0, 255}},
		{"#abc", color.RGBA{170, 187, 204, 255}},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %v, expected %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "red", "#", "#12", "#12345", "#1234567", "#GGHHII"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) accepted an invalid color", bad)
		}
	}
}
