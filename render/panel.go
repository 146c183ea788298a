package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PanelLayer draws the clock, totals, per-object counts and the active inspection
type PanelLayer struct {
	visible bool
}

// NewPanelLayer creates a visible panel
func NewPanelLayer() *PanelLayer {
	return &PanelLayer{visible: true}
}

func (p *PanelLayer) IsVisible() bool {
	return p.visible
}

// Toggle flips panel visibility and returns the new value
func (p *PanelLayer) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

func (p *PanelLayer) Render(ctx RenderContext, screen tcell.Screen) {
	bg := Color(RgbBackground, ctx.Mode)
	text := tcell.StyleDefault.Background(bg).Foreground(Color(RgbPanelText, ctx.Mode))
	label := tcell.StyleDefault.Background(bg).Foreground(Color(RgbPanelLabel, ctx.Mode)).Bold(true)
	peak := tcell.StyleDefault.Background(bg).Foreground(Color(RgbPeak, ctx.Mode)).Bold(true)
	paused := tcell.StyleDefault.Background(bg).Foreground(Color(RgbPaused, ctx.Mode)).Bold(true)
	inspect := tcell.StyleDefault.Background(bg).Foreground(Color(RgbInspectText, ctx.Mode)).Bold(true)

	x := ctx.PanelX + 1
	limit := ctx.ScreenWidth
	y := 0
	line := func(s string, style tcell.Style) {
		if y < ctx.ScreenHeight {
			drawText(screen, x, y, limit, s, style)
		}
		y++
	}

	snap := ctx.Snap
	line("METRO", label)
	next := drawText(screen, x, y, limit, "Time "+snap.Clock, text)
	if snap.Peak {
		next = drawText(screen, next+1, y, limit, "PEAK", peak)
	}
	if snap.Paused {
		drawText(screen, next+1, y, limit, "PAUSED", paused)
	}
	y++
	mode := "crowd"
	if snap.Heatmap {
		mode = "heatmap"
	}
	line("View "+mode, text)
	line(fmt.Sprintf("Humans %d  Riders %d", snap.TotalHumans, snap.TotalPassengers), text)
	y++

	line("Stations", label)
	for _, st := range snap.Stations {
		line(fmt.Sprintf("%-18s %2d/%d", st.Name, st.Count, st.Capacity), text)
	}
	y++

	line("Trains", label)
	for _, tr := range snap.Trains {
		line(fmt.Sprintf("%-4s %-8s %2d", tr.ID, tr.State, tr.Passengers), text)
	}
	y++

	if ctx.Inspection != nil {
		for _, s := range strings.Split(ctx.Inspection.String(), "\n") {
			line(s, inspect)
		}
		y++
	}

	if ctx.ScreenHeight > y {
		drawText(screen, x, ctx.ScreenHeight-1, limit, "h heat  tab inspect  spc pause  q quit", label)
	}
}
