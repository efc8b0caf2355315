package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ramp-basket/config"
	"github.com/lixenwraith/ramp-basket/engine"
	"github.com/lixenwraith/ramp-basket/game"
	"github.com/lixenwraith/ramp-basket/gui"
	"github.com/lixenwraith/ramp-basket/logging"
	"github.com/lixenwraith/ramp-basket/physics"
	"github.com/lixenwraith/ramp-basket/render"
	"github.com/lixenwraith/ramp-basket/status"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Enable file logging and the metrics overlay")
	seedFlag   = flag.Int64("seed", 0, "Basket placement seed (0 uses the config or the clock)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ramp-basket-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, closeLog, err := logging.Setup(cfg.Log, *debugFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := render.CheckIcons(); err != nil {
		return err
	}

	metrics := status.NewRegistry()
	frames := engine.NewFrameScheduler(time.Second / time.Duration(ebiten.DefaultTPS))
	ctrl := game.NewController(game.Options{
		Config:  cfg,
		World:   physics.NewBox2DWorld(cfg.Physics.Gravity),
		Frames:  frames,
		Log:     logger,
		Metrics: metrics,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Ramp Basket")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("started", zap.Int64("seed", cfg.Seed), zap.Int("curve_points", cfg.Curve.Points))

	g := gui.NewGame(ctrl, frames, render.NewDebugRenderer(metrics, *debugFlag), logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
