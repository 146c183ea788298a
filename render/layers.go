package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/simulation"
	"github.com/lixenwraith/metro-sim/vmath"
)

// tint replaces the background of a cell, keeping its glyph and foreground
func tint(screen tcell.Screen, x, y int, bg tcell.Color) {
	r, comb, style, _ := screen.GetContent(x, y)
	screen.SetContent(x, y, r, comb, style.Background(bg))
}

// glyph replaces the rune and foreground of a cell, keeping its background
func glyph(screen tcell.Screen, x, y int, r rune, fg tcell.Color, bold bool) {
	_, _, style, _ := screen.GetContent(x, y)
	screen.SetContent(x, y, r, nil, style.Foreground(fg).Bold(bold))
}

// fillRect tints every map cell of an inclusive rectangle
func fillRect(ctx RenderContext, screen tcell.Screen, x0, y0, x1, y1 int, bg tcell.Color) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if ctx.Proj.Contains(x, y) {
				tint(screen, x, y, bg)
			}
		}
	}
}

// BackgroundLayer paints the whole screen with the base color
type BackgroundLayer struct{}

func (l *BackgroundLayer) Render(ctx RenderContext, screen tcell.Screen) {
	style := tcell.StyleDefault.Background(Color(RgbBackground, ctx.Mode)).Foreground(Color(RgbPanelText, ctx.Mode))
	for y := 0; y < ctx.ScreenHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// TrackLayer draws every line as a straight run between its waypoints
type TrackLayer struct{}

func (l *TrackLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() {
		return
	}
	for _, line := range network.Lines {
		fg := Color(LineColor(line.Color), ctx.Mode)
		for i := 0; i+1 < len(line.Waypoints); i++ {
			drawTrack(ctx, screen, line.Waypoints[i], line.Waypoints[i+1], line.Elevated, fg)
		}
	}
}

func drawTrack(ctx RenderContext, screen tcell.Screen, from, to vmath.Vec3F, elevated bool, fg tcell.Color) {
	x0, y0 := ctx.Proj.Project(from)
	x1, y1 := ctx.Proj.Project(to)

	horizontal := abs(x1-x0) >= abs(y1-y0)
	r := '│'
	switch {
	case horizontal && elevated:
		r = '═'
	case horizontal:
		r = '─'
	case elevated:
		r = '║'
	}

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := x0 + int(math.Round(float64(x1-x0)*t))
		y := y0 + int(math.Round(float64(y1-y0)*t))
		if ctx.Proj.Contains(x, y) {
			glyph(screen, x, y, r, fg, false)
		}
	}
}

// PlatformLayer shades station footprints and labels them
type PlatformLayer struct{}

func (l *PlatformLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() {
		return
	}
	labelStyle := tcell.StyleDefault.Background(Color(RgbBackground, ctx.Mode)).Foreground(Color(RgbPanelLabel, ctx.Mode))

	for _, st := range ctx.Snap.Stations {
		bg := RgbPlatform
		if st.Elevated {
			bg = RgbPlatformHi
		}
		x0, y0, x1, y1 := ctx.Proj.Rect(st.Position, st.Footprint)
		fillRect(ctx, screen, x0, y0, x1, y1, Color(bg, ctx.Mode))

		// Interchange halves overlap, only the lower deck carries the shared label
		if st.Interchange && st.Elevated {
			continue
		}
		name := st.Name
		if st.Interchange {
			name = parameter.InterchangeLabel
		}
		drawText(screen, x0, y1+1, ctx.Proj.OffsetX+ctx.Proj.Width, name, labelStyle)
	}
}

// HeatmapLayer colors each station tile by crowd density while the heatmap is active
type HeatmapLayer struct{}

func (l *HeatmapLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() || !ctx.Snap.Heatmap {
		return
	}
	for _, st := range ctx.Snap.Stations {
		size := network.TileSize(st.Interchange)
		for _, tile := range st.Tiles {
			x0, y0, x1, y1 := ctx.Proj.Rect(tile.Center, size)
			fillRect(ctx, screen, x0, y0, x1, y1, Color(tile.Color, ctx.Mode))
		}
	}
}

// CrowdLayer draws humans as dots, stacking counts where several share a cell
// Hidden while the heatmap is active
type CrowdLayer struct{}

func (l *CrowdLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() || ctx.Snap.Heatmap {
		return
	}
	fg := Color(RgbHuman, ctx.Mode)
	for _, st := range ctx.Snap.Stations {
		cells := make(map[[2]int]int, len(st.Occupants))
		for _, pos := range st.Occupants {
			x, y := ctx.Proj.Project(pos)
			cells[[2]int{x, y}]++
		}
		for cell, n := range cells {
			if ctx.Proj.Contains(cell[0], cell[1]) {
				glyph(screen, cell[0], cell[1], crowdRune(n), fg, n > 1)
			}
		}
	}
}

func crowdRune(n int) rune {
	switch {
	case n <= 1:
		return '•'
	case n <= 9:
		return rune('0' + n)
	default:
		return '+'
	}
}

// TrainLayer draws each train as a heading arrow in its line color
type TrainLayer struct{}

func (l *TrainLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() {
		return
	}
	for _, tr := range ctx.Snap.Trains {
		x, y := ctx.Proj.Project(tr.Position)
		if !ctx.Proj.Contains(x, y) {
			continue
		}
		glyph(screen, x, y, headingRune(tr.Heading), Color(LineColor(lineColorName(tr)), ctx.Mode), true)
	}
}

// headingRune maps a ground plane heading (0 toward +Z, clockwise toward +X) to an arrow
func headingRune(heading float64) rune {
	sector := int(math.Round(heading/(math.Pi/2))) & 3
	return [4]rune{'▲', '▶', '▼', '◀'}[sector]
}

func lineColorName(tr simulation.TrainView) string {
	for _, line := range network.Lines {
		if line.ID == tr.ID {
			return line.Color
		}
	}
	return ""
}

// MarkerLayer draws the pulsing crowding indicator above busy stations
type MarkerLayer struct{}

func (l *MarkerLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if !ctx.HasMap() {
		return
	}
	fg := Color(RgbIndicator, ctx.Mode)
	for _, st := range ctx.Snap.Stations {
		if !st.Indicator {
			continue
		}
		x0, y0, x1, _ := ctx.Proj.Rect(st.Position, st.Footprint)
		x := x1
		if st.Interchange && !st.Elevated {
			x = x0
		}
		if ctx.Proj.Contains(x, y0) {
			r := '!'
			if st.Pulse >= 1.5 {
				r = '‼'
			}
			glyph(screen, x, y0, r, fg, st.Pulse >= 1.5)
		}
	}
}

// drawText writes s from x up to but excluding limit, returning the next column
func drawText(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
