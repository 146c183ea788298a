package render

import "github.com/gdamore/tcell/v2"

// Layer draws one aspect of the snapshot onto the screen
type Layer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
