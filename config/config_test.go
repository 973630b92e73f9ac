package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Render.Tessellation)
	assert.Len(t, cfg.Shapes, ShapeCount)
	assert.Equal(t, "cube", cfg.Shapes[ShapeCount-1].Kind)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 640
render:
  tessellation: 12
log:
  level: debug
shapes:
  - kind: cube
    visible: true
    start: [1, 2, 3]
`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, 12, cfg.Render.Tessellation)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Shapes, 1)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Shapes[0].Start)
	assert.Equal(t, float32(1), cfg.Shapes[0].Radius, "unset shape keys keep defaults")
}

func TestLoadPartialShapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shapes:
  - visible: false
  - radius: 2.5
  - {}
`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Shapes, 3)
	def := Default().Shapes

	want := def[0]
	want.Visible = false
	assert.Equal(t, want, cfg.Shapes[0])
	assert.Equal(t, float32(2.5), cfg.Shapes[1].Radius)
	assert.Equal(t, def[1].PulseSpeed, cfg.Shapes[1].PulseSpeed)
	assert.Equal(t, def[1].Start, cfg.Shapes[1].Start)
	assert.Equal(t, def[2], cfg.Shapes[2])
}

func TestLoadRejects(t *testing.T) {
	for name, body := range map[string]string{
		"tessellation": "render: {tessellation: 256}",
		"zero p":       "render: {tessellation: 0}",
		"kind":         "shapes: [{kind: torus}]",
		"radius":       "shapes: [{radius: 0}]",
		"shapes map":   "shapes: {kind: cube}",
		"fov":          "render: {fov_y: 180}",
		"syntax":       "window: [",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := Default()
	cfg.Window.Title = "saved"
	require.NoError(t, cfg.Save(path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
