// Package gui runs the game in a desktop window on ebiten. It shares the controller
// and render layers with the terminal front-end and only adds a vector canvas and
// mouse/keyboard polling.
package gui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/engine"
	"github.com/lixenwraith/ramp-basket/game"
	"github.com/lixenwraith/ramp-basket/input"
	"github.com/lixenwraith/ramp-basket/render"
)

// instructionHeight is one line of the debug font
const instructionHeight = 16

// Game implements ebiten.Game
type Game struct {
	ctrl         *game.Controller
	frames       *engine.FrameScheduler
	orchestrator *render.RenderOrchestrator
	debug        *render.DebugRenderer
	log          *zap.Logger

	surface  input.Node
	canvas   Canvas
	viewW    int
	viewH    int
	lastX    int
	lastY    int
	pressing bool
}

func NewGame(ctrl *game.Controller, frames *engine.FrameScheduler, debug *render.DebugRenderer, log *zap.Logger) *Game {
	return &Game{
		ctrl:         ctrl,
		frames:       frames,
		orchestrator: render.NewDefaultOrchestrator(debug),
		debug:        debug,
		log:          log,
		surface:      input.Node{OffsetTop: instructionHeight},
	}
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.log.Info("quit", zap.Uint64("frames", g.frames.Frame()))
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.ctrl.SelectMode(game.ModeCurve)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.ctrl.SelectMode(game.ModeControl)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.ctrl.SelectMode(game.ModePlay)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug.Toggle()
	}

	x, y := ebiten.CursorPosition()
	p := g.toSurface(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressing = true
		g.ctrl.PointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pressing = false
		g.ctrl.PointerUp()
	case g.pressing && (x != g.lastX || y != g.lastY):
		g.ctrl.PointerMove(p)
	}
	g.lastX, g.lastY = x, y

	g.frames.RunFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	ebitenutil.DebugPrintAt(screen, constants.InstructionText, int(constants.HUDTextLeft), 0)

	snap := g.ctrl.Snapshot()
	g.canvas.bind(screen, instructionHeight, snap.Width, snap.Height)
	g.orchestrator.RenderFrame(snap, &g.canvas)
}

// Layout keeps a 1:1 pixel mapping and resizes the surface when the window changes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		w, h := input.SurfaceSize(float64(outsideWidth), float64(outsideHeight), instructionHeight)
		g.ctrl.Resize(math.Floor(w), math.Floor(h))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) toSurface(x, y int) curve.Point {
	lx, ly := g.surface.ToLocal(float64(x), float64(y))
	return curve.Pt(lx, ly)
}
