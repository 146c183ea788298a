package render

import (
	"math"

	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/simulation"
	"github.com/lixenwraith/metro-sim/vmath"
)

// Projection maps the world ground plane onto the map area of the screen
// X runs left to right, Z runs bottom to top, height is ignored
type Projection struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	Extent  float64
}

// NewProjection fits the world square into a width x height cell area
func NewProjection(width, height int) Projection {
	return Projection{
		Width:  max(width, 1),
		Height: max(height, 1),
		Extent: parameter.WorldExtent,
	}
}

// Project converts a world position to a screen cell
func (p Projection) Project(v vmath.Vec3F) (col, row int) {
	span := 2 * p.Extent
	col = p.OffsetX + int(math.Round((v.X+p.Extent)/span*float64(p.Width-1)))
	row = p.OffsetY + int(math.Round((p.Extent-v.Z)/span*float64(p.Height-1)))
	return col, row
}

// Unproject converts a screen cell back to ground plane coordinates
func (p Projection) Unproject(col, row int) (x, z float64) {
	span := 2 * p.Extent
	x = float64(col-p.OffsetX)/float64(max(p.Width-1, 1))*span - p.Extent
	z = p.Extent - float64(row-p.OffsetY)/float64(max(p.Height-1, 1))*span
	return x, z
}

// Rect projects a square of side size centered at v to an inclusive cell rectangle
func (p Projection) Rect(v vmath.Vec3F, size float64) (x0, y0, x1, y1 int) {
	half := size / 2
	x0, y0 = p.Project(vmath.Vec3F{X: v.X - half, Z: v.Z + half})
	x1, y1 = p.Project(vmath.Vec3F{X: v.X + half, Z: v.Z - half})
	return x0, y0, x1, y1
}

// Contains reports whether a cell lies inside the map area
func (p Projection) Contains(col, row int) bool {
	return col >= p.OffsetX && col < p.OffsetX+p.Width && row >= p.OffsetY && row < p.OffsetY+p.Height
}

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Snap *simulation.Snapshot
	// Inspection is the active info panel result, nil when none is showing
	Inspection *simulation.Inspection

	Proj Projection
	Mode ColorMode

	ScreenWidth  int
	ScreenHeight int
	// PanelX is the first column of the info panel
	PanelX int
}

// NewRenderContext lays out map and panel for the given screen size
func NewRenderContext(snap *simulation.Snapshot, insp *simulation.Inspection, mode ColorMode, width, height int) RenderContext {
	mapWidth := width - parameter.PanelWidth
	if mapWidth < parameter.MinMapSize {
		mapWidth = 0
	}
	return RenderContext{
		Snap:         snap,
		Inspection:   insp,
		Proj:         NewProjection(mapWidth, height),
		Mode:         mode,
		ScreenWidth:  width,
		ScreenHeight: height,
		PanelX:       mapWidth,
	}
}

// HasMap reports whether the screen is wide enough for the map area
func (ctx RenderContext) HasMap() bool {
	return ctx.PanelX > 0
}
