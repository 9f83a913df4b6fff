// Package config loads the viewer configuration. Files are YAML and are
// applied in order over the built-in defaults, so a file only needs the keys
// it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leterax/cubeview/pkg/camera"
	"github.com/leterax/cubeview/pkg/scene"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// Pointer modes
const (
	// PointerWarp hides the cursor and recentres it after every move
	PointerWarp = "warp"
	// PointerRelative disables the cursor and reads unbounded motion, for
	// platforms that cannot warp the pointer
	PointerRelative = "relative"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
	// ShowFPS appends the frame rate to the title once per second
	ShowFPS bool `yaml:"show_fps"`
}

type CameraConfig struct {
	// MoveSpeed is in world units per second
	MoveSpeed float32 `yaml:"move_speed"`
	// Sensitivity is in degrees per pixel
	Sensitivity float32 `yaml:"sensitivity"`
	PitchLimit  float32 `yaml:"pitch_limit"`
	FOV         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

type InputConfig struct {
	PointerMode string `yaml:"pointer_mode"`
}

type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color,flow"`
	// Texture is an optional PNG or JPEG file; empty uses the built-in texture
	Texture string `yaml:"texture"`
	// VertexShader and FragmentShader optionally replace the built-in GLSL
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "cubeview",
			VSync:   true,
			ShowFPS: true,
		},
		Camera: CameraConfig{
			MoveSpeed:   camera.DefaultMoveSpeed,
			Sensitivity: camera.DefaultSensitivity,
			PitchLimit:  camera.DefaultPitchLimit,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Input: InputConfig{
			PointerMode: PointerWarp,
		},
		Render: RenderConfig{
			ClearColor: [4]float32(scene.ClearColor),
		},
	}
}

// Load reads the given files in order over the defaults and validates the
// result
func Load(paths ...string) (*Config, error) {
	cfg := Default()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}

		if err := cfg.merge(data); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	if errors.Is(err, io.EOF) {
		// empty file
		return nil
	}
	return err
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Camera.MoveSpeed < 0:
		return invalid("camera.move_speed must not be negative")
	case c.Camera.Sensitivity <= 0:
		return invalid("camera.sensitivity must be positive")
	case c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit > 90:
		return invalid("camera.pitch_limit must be in (0, 90], got %g", c.Camera.PitchLimit)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return invalid("camera.fov must be in (0, 180), got %g", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return invalid("camera.near and camera.far must satisfy 0 < near < far")
	case c.Input.PointerMode != PointerWarp && c.Input.PointerMode != PointerRelative:
		return invalid("input.pointer_mode must be %q or %q, got %q", PointerWarp, PointerRelative, c.Input.PointerMode)
	case (c.Render.VertexShader == "") != (c.Render.FragmentShader == ""):
		return invalid("render.vertex_shader and render.fragment_shader must be set together")
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Marshal encodes c as YAML
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
