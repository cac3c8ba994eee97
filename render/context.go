package render

import (
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/engine"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Frame engine.Frame

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Arena box including border, in screen cells
	ArenaX      int
	ArenaY      int
	ArenaWidth  int
	ArenaHeight int

	// Row of the status bar, and of the debug HUD when enabled
	StatusY int
	DebugY  int
}

// NewRenderContext lays out the arena for a screen of w×h cells
// The debug HUD row, when enabled, sits above the arena; the status bar below
func NewRenderContext(f engine.Frame, w, h int, debugHUD bool) RenderContext {
	ctx := RenderContext{
		Frame:        f,
		ScreenWidth:  w,
		ScreenHeight: h,
		StatusY:      h - constants.StatusBarHeight,
		DebugY:       -1,
	}

	top := 0
	if debugHUD {
		ctx.DebugY = 0
		top = constants.DebugHUDHeight
	}

	ctx.ArenaX = 0
	ctx.ArenaY = top
	ctx.ArenaWidth = w
	ctx.ArenaHeight = ctx.StatusY - top
	return ctx
}

// InnerWidth is the drawable arena width inside the border
func (c RenderContext) InnerWidth() int {
	return c.ArenaWidth - 2*constants.BorderSize
}

// InnerHeight is the drawable arena height inside the border
func (c RenderContext) InnerHeight() int {
	return c.ArenaHeight - 2*constants.BorderSize
}

// Fits reports whether the arena has at least one interior cell
func (c RenderContext) Fits() bool {
	return c.InnerWidth() >= 1 && c.InnerHeight() >= 1
}

// ToScreen maps a logical field position to the screen cell containing it
func (c RenderContext) ToScreen(p component.Vec2) (x, y int) {
	f := c.Frame.Field
	iw, ih := c.InnerWidth(), c.InnerHeight()

	col := min(max(int(p.X/f.Width*float64(iw)), 0), iw-1)
	row := min(max(int(p.Y/f.Height*float64(ih)), 0), ih-1)

	return c.ArenaX + constants.BorderSize + col, c.ArenaY + constants.BorderSize + row
}

// CellCenter returns the logical position of the center of interior cell (col, row)
func (c RenderContext) CellCenter(col, row int) component.Vec2 {
	f := c.Frame.Field
	return component.Vec2{
		X: (float64(col) + 0.5) * f.Width / float64(c.InnerWidth()),
		Y: (float64(row) + 0.5) * f.Height / float64(c.InnerHeight()),
	}
}
