package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ramp-basket/config"
	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/engine"
	"github.com/lixenwraith/ramp-basket/game"
	"github.com/lixenwraith/ramp-basket/input"
	"github.com/lixenwraith/ramp-basket/render"
)

// app binds one tcell screen to the controller. All methods run on the loop goroutine
type app struct {
	screen       tcell.Screen
	cfg          config.Config
	ctrl         *game.Controller
	frames       *engine.FrameScheduler
	decoder      *input.Decoder
	canvas       *render.TerminalCanvas
	orchestrator *render.RenderOrchestrator
	debug        *render.DebugRenderer
	log          *zap.Logger

	dirty bool
}

func newApp(screen tcell.Screen, cfg config.Config, ctrl *game.Controller, frames *engine.FrameScheduler, debug *render.DebugRenderer, log *zap.Logger) *app {
	surface := &input.Node{OffsetTop: constants.InstructionRows}
	a := &app{
		screen:       screen,
		cfg:          cfg,
		ctrl:         ctrl,
		frames:       frames,
		decoder:      input.NewDecoder(surface, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight),
		canvas:       render.NewTerminalCanvas(screen, 0, constants.InstructionRows, 0, 0, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight),
		orchestrator: render.NewDefaultOrchestrator(debug),
		debug:        debug,
		log:          log,
	}
	a.resize(screen.Size())
	return a
}

// resize fits the surface to the terminal, in whole cells
func (a *app) resize(cols, rows int) {
	cw, ch := a.cfg.Terminal.CellWidth, a.cfg.Terminal.CellHeight
	w, h := input.SurfaceSize(float64(cols)*cw, float64(rows)*ch, constants.InstructionRows*ch)

	a.canvas.Resize(int(math.Floor(w/cw)), int(math.Floor(h/ch)))
	sw, sh := a.canvas.Size()
	a.ctrl.Resize(sw, sh)
	a.screen.Clear()
	a.dirty = true
}

// handleEvent applies one terminal event. Returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize(ev.Size())
		a.screen.Sync()

	case *tcell.EventMouse:
		pe, ok := a.decoder.Decode(ev)
		if !ok {
			return true
		}
		switch pe.Action {
		case input.PointerDown:
			a.dirty = a.ctrl.PointerDown(pe.Pos) || a.dirty
		case input.PointerMove:
			if a.decoder.Pressed() {
				a.dirty = a.ctrl.PointerMove(pe.Pos) || a.dirty
			}
		case input.PointerUp:
			a.dirty = a.ctrl.PointerUp() || a.dirty
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case '1', '2', '3':
		mode := game.ToolbarModes[r-'1']
		a.dirty = a.ctrl.SelectMode(mode) || a.dirty
	case 'd':
		a.debug.Toggle()
		a.dirty = true
	}
	return true
}

// tick runs due frame callbacks and redraws when anything changed
func (a *app) tick() {
	ran := a.frames.RunFrame()
	if ran == 0 && !a.dirty && !a.debug.IsVisible() {
		return
	}
	a.draw()
	a.dirty = false
}

func (a *app) draw() {
	st := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for col, r := range []rune(constants.InstructionText) {
		a.screen.SetContent(col, 0, r, nil, st)
	}
	a.orchestrator.RenderFrame(a.ctrl.Snapshot(), a.canvas)
	a.screen.Show()
}
