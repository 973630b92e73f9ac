// Package config loads the YAML settings of the scene viewer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"glscene/common/logger"
	"glscene/mesh"
)

const ShapeCount = 7

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Render struct {
	// Tessellation is the sphere subdivision p.
	Tessellation int        `yaml:"tessellation"`
	ClearColor   [4]float32 `yaml:"clear_color"`
	Light        [3]float32 `yaml:"light"`
	Light2       [3]float32 `yaml:"light2"`
	FovY         float32    `yaml:"fov_y"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	Eye          [3]float32 `yaml:"eye"`
	Stars        int        `yaml:"stars"`
	TextureSize  int        `yaml:"texture_size"`
}

type Text struct {
	Font string  `yaml:"font"`
	Size float64 `yaml:"size"`
}

type Assets struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

type State struct {
	File string `yaml:"file"`
}

// Shape is the initial state of one shape slot.
type Shape struct {
	Kind       string     `yaml:"kind"`
	Visible    bool       `yaml:"visible"`
	Blend      bool       `yaml:"blend"`
	Grid       bool       `yaml:"grid"`
	Light      bool       `yaml:"light"`
	Diffuse    bool       `yaml:"diffuse"`
	Texture    bool       `yaml:"texture"`
	Start      [3]float32 `yaml:"start"`
	Speed      float32    `yaml:"speed"`
	Radius     float32    `yaml:"radius"`
	PulseAmp   float32    `yaml:"pulse_amp"`
	PulseSpeed float32    `yaml:"pulse_speed"`
	Asset      int        `yaml:"asset"`
}

type Config struct {
	Window Window         `yaml:"window"`
	Render Render         `yaml:"render"`
	Text   Text           `yaml:"text"`
	Assets Assets         `yaml:"assets"`
	State  State          `yaml:"state"`
	Log    logger.Options `yaml:"log"`
	Shapes Shapes         `yaml:"shapes"`
}

// Shapes are the configured shape slots. A YAML entry only overrides the
// keys it sets; the rest come from the default shape at the same index.
type Shapes []Shape

func (s *Shapes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: shapes must be a list", node.Line)
	}
	defaults := defaultShapes()
	shapes := make(Shapes, len(node.Content))
	for i, item := range node.Content {
		shapes[i] = defaults[min(i, len(defaults)-1)]
		if err := item.Decode(&shapes[i]); err != nil {
			return err
		}
	}
	*s = shapes
	return nil
}

func defaultShapes() Shapes {
	shapes := make(Shapes, ShapeCount)
	for i := range shapes {
		x := float32(i-ShapeCount/2) * 2.5
		shapes[i] = Shape{
			Kind:       "sphere",
			Visible:    i < 3,
			Light:      true,
			Diffuse:    true,
			Texture:    true,
			Start:      [3]float32{x, 1, 0},
			Speed:      30,
			Radius:     1,
			PulseAmp:   0,
			PulseSpeed: 1,
			Asset:      i,
		}
	}
	shapes[ShapeCount-1].Kind = "cube"
	return shapes
}

func Default() *Config {
	return &Config{
		Window: Window{Width: 1024, Height: 768, Title: "glscene", VSync: true},
		Render: Render{
			Tessellation: 50,
			ClearColor:   [4]float32{0, 0, 0.1, 1},
			Light:        [3]float32{0, 6, 4},
			Light2:       [3]float32{-6, 4, -4},
			FovY:         45,
			Near:         0.1,
			Far:          100,
			Eye:          [3]float32{0, 4, 14},
			Stars:        200,
			TextureSize:  256,
		},
		Text:   Text{Size: 18},
		Assets: Assets{Dir: "assets", Watch: true},
		State:  State{File: "glscene.state"},
		Log:    logger.Options{Level: "info", Encoding: "console", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7},
		Shapes: defaultShapes(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	p := c.Render.Tessellation
	if p < mesh.MinTessellation || p > mesh.MaxTessellation {
		return fmt.Errorf("render.tessellation %d not in [%d,%d]", p, mesh.MinTessellation, mesh.MaxTessellation)
	}
	if c.Render.FovY <= 0 || c.Render.FovY >= 180 {
		return fmt.Errorf("render.fov_y %v not in (0,180)", c.Render.FovY)
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		return fmt.Errorf("render near/far %v/%v invalid", c.Render.Near, c.Render.Far)
	}
	if c.Render.Stars < 0 {
		return fmt.Errorf("render.stars %d is negative", c.Render.Stars)
	}
	if c.Render.TextureSize <= 0 {
		return fmt.Errorf("render.texture_size %d must be positive", c.Render.TextureSize)
	}
	if c.Text.Size <= 0 {
		return fmt.Errorf("text.size %v must be positive", c.Text.Size)
	}
	if len(c.Shapes) > ShapeCount {
		return fmt.Errorf("%d shapes configured, at most %d", len(c.Shapes), ShapeCount)
	}
	for i, s := range c.Shapes {
		switch s.Kind {
		case "", "sphere", "cube":
		default:
			return fmt.Errorf("shapes[%d].kind %q unknown", i, s.Kind)
		}
		if s.Radius <= 0 {
			return fmt.Errorf("shapes[%d].radius %v must be positive", i, s.Radius)
		}
		if s.Asset < 0 {
			return fmt.Errorf("shapes[%d].asset %d is negative", i, s.Asset)
		}
	}
	return nil
}
