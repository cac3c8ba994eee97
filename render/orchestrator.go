package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/status"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the layer pipeline and implements engine.RenderSink
type RenderOrchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
	debugHUD bool

	statFrames *status.Counter
}

var _ engine.RenderSink = (*RenderOrchestrator)(nil)

// NewRenderOrchestrator creates an orchestrator with no layers
func NewRenderOrchestrator(screen tcell.Screen, debugHUD bool, reg *status.Registry) *RenderOrchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &RenderOrchestrator{
		screen:     screen,
		layers:     make([]layerEntry, 0, 8),
		debugHUD:   debugHUD,
		statFrames: reg.Counter("render.frames"),
	}
}

// NewRenderer builds the standard pipeline: border, actors, overlay, status bar and the optional debug HUD
func NewRenderer(screen tcell.Screen, debugHUD bool, reg *status.Registry) *RenderOrchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	o := NewRenderOrchestrator(screen, debugHUD, reg)
	o.Register(borderLayer{}, PriorityBorder)
	o.Register(newActorLayer(), PriorityEntities)
	o.Register(overlayLayer{}, PriorityOverlay)
	o.Register(statusLayer{}, PriorityUI)
	o.Register(&debugLayer{reg: reg, visible: debugHUD}, PriorityDebug)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Sync forces a full redraw after a terminal resize
func (o *RenderOrchestrator) Sync() {
	o.screen.Sync()
}

// Render executes the pipeline: clear, draw all visible layers, show
// A hidden frame only clears
func (o *RenderOrchestrator) Render(f engine.Frame) {
	o.screen.Clear()
	o.statFrames.Add(1)

	if f.Hidden {
		o.screen.Show()
		return
	}

	w, h := o.screen.Size()
	ctx := NewRenderContext(f, w, h, o.debugHUD)

	if !ctx.Fits() {
		drawText(o.screen, 0, 0, w, constants.TooSmallMessage, tcell.StyleDefault)
		o.screen.Show()
		return
	}

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
