package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/metro-sim/simulation"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen   tcell.Screen
	mode     ColorMode
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen in the given color mode
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen: screen,
		mode:   mode,
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard metro layers
func NewDefaultOrchestrator(screen tcell.Screen, mode ColorMode) (*RenderOrchestrator, *PanelLayer) {
	o := NewRenderOrchestrator(screen, mode)
	panel := NewPanelLayer()
	o.Register(&BackgroundLayer{}, PriorityBackground)
	o.Register(&TrackLayer{}, PriorityTrack)
	o.Register(&PlatformLayer{}, PriorityPlatform)
	o.Register(&HeatmapLayer{}, PriorityHeatmap)
	o.Register(&CrowdLayer{}, PriorityCrowd)
	o.Register(&TrainLayer{}, PriorityTrain)
	o.Register(&MarkerLayer{}, PriorityMarker)
	o.Register(panel, PriorityUI)
	return o, panel
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

// Resize resyncs the screen after a terminal size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// Context builds the frame context for the current screen size
func (o *RenderOrchestrator) Context(snap *simulation.Snapshot, insp *simulation.Inspection) RenderContext {
	w, h := o.screen.Size()
	return NewRenderContext(snap, insp, o.mode, w, h)
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(snap *simulation.Snapshot, insp *simulation.Inspection) {
	ctx := o.Context(snap, insp)

	o.screen.Clear()
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.screen)
	}
	o.screen.Show()
}
