package render

import (
	"slices"

	"github.com/lixenwraith/ramp-basket/game"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator runs the registered layers in priority order onto a canvas
type RenderOrchestrator struct {
	renderers []rendererEntry
}

func NewRenderOrchestrator() *RenderOrchestrator {
	return &RenderOrchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a layer at priority. Equal priorities draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority}

	pos := slices.IndexFunc(o.renderers, func(e rendererEntry) bool {
		return e.priority > priority
	})
	if pos < 0 {
		pos = len(o.renderers)
	}
	o.renderers = slices.Insert(o.renderers, pos, entry)
}

// RenderFrame clears the canvas and draws every visible layer
func (o *RenderOrchestrator) RenderFrame(snap game.Snapshot, c Canvas) {
	c.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(snap, c)
	}
}

// NewDefaultOrchestrator registers the game's standard layers
func NewDefaultOrchestrator(debug *DebugRenderer) *RenderOrchestrator {
	o := NewRenderOrchestrator()
	o.Register(CurveRenderer{}, PriorityCurve)
	o.Register(ControlsRenderer{}, PriorityControls)
	o.Register(BasketRenderer{}, PriorityBasket)
	o.Register(BallRenderer{}, PriorityBall)
	o.Register(HUDRenderer{}, PriorityUI)
	o.Register(ToolbarRenderer{}, PriorityUI)
	if debug != nil {
		o.Register(debug, PriorityDebug)
	}
	return o
}
