package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	// Default config
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := t.TempDir()

	// single file only overrides what it names
	{
		path := writeFile(t, dir, "window.yaml", `
window:
  width: 1024
  title: "cube"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1024, cfg.Window.Width)
		assert.Equal(t, 600, cfg.Window.Height)
		assert.Equal(t, "cube", cfg.Window.Title)
		assert.Equal(t, Default().Camera, cfg.Camera)
	}

	// later files win
	{
		first := writeFile(t, dir, "first.yaml", `
camera:
  move_speed: 4
  fov: 60
`)
		second := writeFile(t, dir, "second.yaml", `
camera:
  move_speed: 2.5
input:
  pointer_mode: relative
render:
  clear_color: [0, 0, 0, 1]
`)
		cfg, err := Load(first, second)
		require.NoError(t, err)
		assert.Equal(t, float32(2.5), cfg.Camera.MoveSpeed)
		assert.Equal(t, float32(60), cfg.Camera.FOV)
		assert.Equal(t, PointerRelative, cfg.Input.PointerMode)
		assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.Render.ClearColor)
	}

	// empty file
	{
		cfg, err := Load(writeFile(t, dir, "empty.yaml", ""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "unknown.yaml", "window:\n  colour: red\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "broken.yaml", "window: [\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "invalid.yaml", "camera:\n  pitch_limit: 120\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":        func(c *Config) { c.Window.Width = 0 },
		"negative height":   func(c *Config) { c.Window.Height = -1 },
		"negative speed":    func(c *Config) { c.Camera.MoveSpeed = -1 },
		"zero sensitivity":  func(c *Config) { c.Camera.Sensitivity = 0 },
		"pitch limit zero":  func(c *Config) { c.Camera.PitchLimit = 0 },
		"pitch limit large": func(c *Config) { c.Camera.PitchLimit = 91 },
		"fov":               func(c *Config) { c.Camera.FOV = 180 },
		"near after far":    func(c *Config) { c.Camera.Near = 200 },
		"pointer mode":      func(c *Config) { c.Input.PointerMode = "grab" },
		"one shader":        func(c *Config) { c.Render.VertexShader = "cube.vert" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "pointer_mode: warp")

	path := writeFile(t, t.TempDir(), "dump.yaml", string(data))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
