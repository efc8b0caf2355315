package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ramp-basket/config"
	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/core"
	"github.com/lixenwraith/ramp-basket/engine"
	"github.com/lixenwraith/ramp-basket/game"
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
		fmt.Fprintf(os.Stderr, "ramp-basket: %v\n", err)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault)

	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	metrics := status.NewRegistry()
	frames := engine.NewFrameScheduler(cfg.Terminal.FrameInterval)
	ctrl := game.NewController(game.Options{
		Config:  cfg,
		World:   physics.NewBox2DWorld(cfg.Physics.Gravity),
		Frames:  frames,
		Log:     logger,
		Metrics: metrics,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
	})
	a := newApp(screen, cfg, ctrl, frames, render.NewDebugRenderer(metrics, *debugFlag), logger)

	logger.Info("started",
		zap.Int64("seed", cfg.Seed),
		zap.Int("curve_points", cfg.Curve.Points),
		zap.Float64("gravity", cfg.Physics.Gravity),
	)

	events := make(chan tcell.Event, constants.EventQueueSize)
	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(base)

	// Input polling; PollEvent returns nil once the screen is finalized
	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	g.Go(core.Guard(func() error {
		defer cancel()
		defer fini()

		ticker := time.NewTicker(frames.Interval())
		defer ticker.Stop()

		a.draw()
		for {
			select {
			case ev := <-events:
				if !a.handleEvent(ev) {
					logger.Info("quit", zap.Uint64("frames", frames.Frame()))
					return nil
				}
			case <-ticker.C:
				a.tick()
			case <-ctx.Done():
				return nil
			}
		}
	}))

	return g.Wait()
}
