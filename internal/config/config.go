// Package config loads application settings from a YAML file and
// watches it for changes.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Draw   DrawConfig   `yaml:"draw"`
}

// WindowConfig defines the initial window geometry.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig defines the cell grid appearance.
type GridConfig struct {
	CellSize   int    `yaml:"cell_size"`  // Cell edge in pixels
	LineColor  string `yaml:"line_color"` // Grid line color, hex
	Background string `yaml:"background"` // Canvas background, hex
}

// DrawConfig defines drawing colors and debug pacing.
type DrawConfig struct {
	Foreground   string `yaml:"foreground"`     // Line color, hex
	Marker       string `yaml:"marker"`         // Click marker color, hex
	DebugDelayMS int    `yaml:"debug_delay_ms"` // Delay between cells in debug mode
}

// Palette is the parsed color set of a valid Config.
type Palette struct {
	LineColor  color.RGBA
	Background color.RGBA
	Foreground color.RGBA
	Marker     color.RGBA
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Drawing App",
		},
		Grid: GridConfig{
			CellSize:   5,
			LineColor:  "#D3D3D3",
			Background: "#FFFFFF",
		},
		Draw: DrawConfig{
			Foreground:   "#000000",
			Marker:       "#FF0000",
			DebugDelayMS: 50,
		},
	}
}

// Load reads the configuration at path, applying it on top of the
// defaults. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and color syntax.
func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d: both dimensions must be at least 1", c.Window.Width, c.Window.Height)
	}
	if c.Grid.CellSize < 1 {
		return fmt.Errorf("cell_size %d: must be at least 1", c.Grid.CellSize)
	}
	if c.Draw.DebugDelayMS < 0 {
		return fmt.Errorf("debug_delay_ms %d: must not be negative", c.Draw.DebugDelayMS)
	}
	_, err := c.Palette()
	return err
}

// Palette parses the configured colors.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	for _, entry := range []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"grid.line_color", c.Grid.LineColor, &p.LineColor},
		{"grid.background", c.Grid.Background, &p.Background},
		{"draw.foreground", c.Draw.Foreground, &p.Foreground},
		{"draw.marker", c.Draw.Marker, &p.Marker},
	} {
		clr, err := ParseHexColor(entry.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.dst = clr
	}
	return p, nil
}

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}
	hex := s[1:]

	channel := func(sub string) (uint8, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return uint8(v), nil
	}

	var parts [3]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = string([]byte{hex[i], hex[i]})
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = hex[2*i : 2*i+2]
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", s)
	}

	var out color.RGBA
	var err error
	if out.R, err = channel(parts[0]); err != nil {
		return color.RGBA{}, err
	}
	if out.G, err = channel(parts[1]); err != nil {
		return color.RGBA{}, err
	}
	if out.B, err = channel(parts[2]); err != nil {
		return color.RGBA{}, err
	}
	out.A = 0xFF
	return out, nil
}
