// Command viewport opens a window and renders the lit cube scene with a fly camera.
//
// Controls: W/A/S/D or the arrow keys move, the mouse looks around, the scroll wheel zooms
// and Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

type config struct {
	width, height int
	title         string
	vsync         bool
	msaa          bool
	profile       bool
	cubes         int
	orbit         float64
	speed         float64
	sensitivity   float64
	debug         bool
	software      bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("viewport", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 1280, "initial window width")
	fs.IntVar(&cfg.height, "height", 720, "initial window height")
	fs.StringVar(&cfg.title, "title", "oxy viewport", "window title")
	fs.BoolVar(&cfg.vsync, "vsync", true, "wait for vertical blank when presenting")
	fs.BoolVar(&cfg.msaa, "msaa", false, "enable 4x multisampling")
	fs.BoolVar(&cfg.profile, "profile", false, "log frame statistics")
	fs.IntVar(&cfg.cubes, "cubes", len(scene.DefaultCubePositions), "number of lit cubes")
	fs.Float64Var(&cfg.orbit, "orbit", 0, "light orbit speed in radians per second, 0 keeps the light still")
	fs.Float64Var(&cfg.speed, "speed", 10, "camera movement speed in units per second")
	fs.Float64Var(&cfg.sensitivity, "sensitivity", 0.1, "mouse-look degrees per pointer unit")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cfg.software, "software", false, "force the fallback (software) adapter")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	common.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("viewport stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	win, err := window.NewWindow(
		window.WithTitle(cfg.title),
		window.WithWidth(cfg.width),
		window.WithHeight(cfg.height),
		window.WithCursorCaptured(true),
	)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	presentMode := renderer.PresentModeVSync
	if !cfg.vsync {
		presentMode = renderer.PresentModeUncapped
	}
	msaa := renderer.MSAAOff
	if cfg.msaa {
		msaa = renderer.MSAA4x
	}
	r, err := renderer.NewRenderer(win.SurfaceDescriptor(),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithClearColor(0, 0, 0, 1),
		renderer.WithForceSoftwareRenderer(cfg.software),
	)
	if err != nil {
		_ = win.Close()
		return fmt.Errorf("create renderer: %w", err)
	}

	l := light.NewPointLight()
	p := l.Position()
	sc, err := scene.NewScene(r, l,
		scene.WithCubeCount(cfg.cubes),
		scene.WithLightOrbit(mgl32.Vec2{p.X(), p.Z()}.Len(), float32(cfg.orbit)),
	)
	if err != nil {
		r.Release()
		_ = win.Close()
		return fmt.Errorf("build scene: %w", err)
	}

	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithDevice(r),
		engine.WithLight(l),
		engine.WithCameraOptions(
			camera.WithSpeed(float32(cfg.speed)),
			camera.WithMouseSensitivity(float32(cfg.sensitivity)),
		),
		engine.WithUpdateCallback(sc.Update),
		engine.WithReleaseCallback(sc.Release),
		engine.WithProfiling(cfg.profile),
	)
	if err != nil {
		sc.Release()
		r.Release()
		_ = win.Close()
		return fmt.Errorf("start engine: %w", err)
	}
	return eng.Run()
}
