package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leterax/cubeview/internal/config"
	"github.com/leterax/cubeview/internal/openglhelper"
	"github.com/leterax/cubeview/pkg/camera"
	"github.com/leterax/cubeview/pkg/clock"
	"github.com/leterax/cubeview/pkg/loop"
	"github.com/leterax/cubeview/pkg/render"
)

func init() {
	// This is needed to ensure that the OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	View struct {
		Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order." type:"path"`

		Width   int    `help:"Window width, overrides the config files."`
		Height  int    `help:"Window height, overrides the config files."`
		Pointer string `help:"Pointer mode: warp or relative."`
		Texture string `help:"PNG or JPEG file to use as the cube texture." type:"path"`
	} `cmd:"" default:"withargs" help:"Open the viewer."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	log.Error().Err(err).Msg("cubeview failed")
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("cubeview"),
		kong.Description("fly around a textured cube"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "config":
		if err := configCommand(os.Stdout); err != nil {
			writeError(err)
		}
	default:
		if err := viewCommand(); err != nil {
			writeError(err)
		}
	}
}

func configCommand(out io.Writer) error {
	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.View.Configs...)
	if err != nil {
		return nil, err
	}

	if CLI.View.Width > 0 {
		cfg.Window.Width = CLI.View.Width
	}
	if CLI.View.Height > 0 {
		cfg.Window.Height = CLI.View.Height
	}
	if CLI.View.Pointer != "" {
		cfg.Input.PointerMode = CLI.View.Pointer
	}
	if CLI.View.Texture != "" {
		cfg.Render.Texture = CLI.View.Texture
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func viewCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	window, err := openglhelper.NewWindow(openglhelper.WindowSettings{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Title:       cfg.Window.Title,
		VSync:       cfg.Window.VSync,
		PointerWarp: cfg.Input.PointerMode == config.PointerWarp,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()

	renderer, err := render.NewCubeRenderer(window, render.Options{
		TexturePath:        cfg.Render.Texture,
		VertexShaderPath:   cfg.Render.VertexShader,
		FragmentShaderPath: cfg.Render.FragmentShader,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Delete()

	cam := camera.NewController(
		camera.WithSensitivity(cfg.Camera.Sensitivity),
		camera.WithPitchLimit(cfg.Camera.PitchLimit),
	)

	driver := loop.NewDriver(window, renderer, cam, clock.New(window.Time()), loop.Settings{
		MoveSpeed:  cfg.Camera.MoveSpeed,
		FOV:        cfg.Camera.FOV,
		Near:       cfg.Camera.Near,
		Far:        cfg.Camera.Far,
		ClearColor: mgl32.Vec4(cfg.Render.ClearColor),
	})

	if cfg.Window.ShowFPS {
		var fps clock.Counter
		driver.SetFrameHook(func(dT float32) {
			if n, ok := fps.Add(dT); ok {
				window.SetTitle(fmt.Sprintf("%s | FPS: %d", window.Title(), n))
			}
		})
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Str("pointer", cfg.Input.PointerMode).
		Msg("viewer started")

	if err := driver.Run(runCtx); err != nil {
		return err
	}

	log.Info().Msg("viewer closed")
	return nil
}
