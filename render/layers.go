package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/status"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	debugStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// drawText writes s from (x, y), truncated to maxW cells
func drawText(screen tcell.Screen, x, y, maxW int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		if n >= maxW {
			break
		}
		screen.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}

// drawCentered writes s centered in [x, x+w)
func drawCentered(screen tcell.Screen, x, y, w int, s string, style tcell.Style) {
	n := len([]rune(s))
	start := x + max((w-n)/2, 0)
	drawText(screen, start, y, w-(start-x), s, style)
}

type borderLayer struct{}

func (borderLayer) Render(ctx RenderContext, screen tcell.Screen) {
	x0, y0 := ctx.ArenaX, ctx.ArenaY
	x1, y1 := x0+ctx.ArenaWidth-1, y0+ctx.ArenaHeight-1

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, borderStyle)
		screen.SetContent(x, y1, '─', nil, borderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, borderStyle)
		screen.SetContent(x1, y, '│', nil, borderStyle)
	}
	screen.SetContent(x0, y0, '┌', nil, borderStyle)
	screen.SetContent(x1, y0, '┐', nil, borderStyle)
	screen.SetContent(x0, y1, '└', nil, borderStyle)
	screen.SetContent(x1, y1, '┘', nil, borderStyle)
}

// actorLayer fills every interior cell whose center lies inside an actor's disc
type actorLayer struct {
	colors map[string]tcell.Color
}

func newActorLayer() *actorLayer {
	return &actorLayer{colors: make(map[string]tcell.Color)}
}

func (l *actorLayer) color(name string) tcell.Color {
	if c, ok := l.colors[name]; ok {
		return c
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		c = tcell.ColorWhite
	}
	l.colors[name] = c
	return c
}

func (l *actorLayer) Render(ctx RenderContext, screen tcell.Screen) {
	f := ctx.Frame.Field
	iw, ih := ctx.InnerWidth(), ctx.InnerHeight()
	ox, oy := ctx.ArenaX+constants.BorderSize, ctx.ArenaY+constants.BorderSize

	for _, a := range ctx.Frame.Actors {
		style := tcell.StyleDefault.Foreground(l.color(a.Color))

		// Cell range covering the disc's bounding box
		c0 := max(int((a.Pos.X-a.Radius)/f.Width*float64(iw)), 0)
		c1 := min(int((a.Pos.X+a.Radius)/f.Width*float64(iw)), iw-1)
		r0 := max(int((a.Pos.Y-a.Radius)/f.Height*float64(ih)), 0)
		r1 := min(int((a.Pos.Y+a.Radius)/f.Height*float64(ih)), ih-1)

		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				c := ctx.CellCenter(col, row)
				if math.Hypot(c.X-a.Pos.X, c.Y-a.Pos.Y) <= a.Radius {
					screen.SetContent(ox+col, oy+row, constants.ActorGlyph, nil, style)
				}
			}
		}

		// Small terminals: the center cell is always drawn
		x, y := ctx.ToScreen(a.Pos)
		screen.SetContent(x, y, constants.ActorGlyph, nil, style)
	}
}

// overlayLayer draws the idle hint and the game-over banner inside the arena
type overlayLayer struct{}

func (overlayLayer) Render(ctx RenderContext, screen tcell.Screen) {
	x := ctx.ArenaX + constants.BorderSize
	w := ctx.InnerWidth()
	mid := ctx.ArenaY + ctx.ArenaHeight/2

	switch ctx.Frame.Phase {
	case engine.PhaseNotStarted:
		drawCentered(screen, x, ctx.ArenaY+ctx.ArenaHeight-1-constants.BorderSize, w, constants.NotStartedHint, hintStyle)
	case engine.PhaseOver:
		drawCentered(screen, x, mid, w, constants.GameOverBanner, bannerStyle)
		if mid+1 < ctx.ArenaY+ctx.ArenaHeight-constants.BorderSize {
			drawCentered(screen, x, mid+1, w, constants.RestartHint, hintStyle)
		}
	}
}

// statusLayer is the bottom line: phase, survival time, proximity meter
type statusLayer struct{}

func (statusLayer) Render(ctx RenderContext, screen tcell.Screen) {
	fr := ctx.Frame
	text := fmt.Sprintf(" %s  %s  time %ds  vol ", strings.ToUpper(fr.Phase.String()), actorLegend(fr.Actors), fr.Elapsed)
	n := drawText(screen, 0, ctx.StatusY, ctx.ScreenWidth, text, tcell.StyleDefault)

	full := VolumeCells(fr.Volume)
	for i := 0; i < constants.VolumeBarWidth && n+i < ctx.ScreenWidth; i++ {
		glyph := constants.VolumeGlyphEmpty
		if i < full {
			glyph = constants.VolumeGlyphFull
		}
		screen.SetContent(n+i, ctx.StatusY, glyph, nil, tcell.StyleDefault)
	}
}

func actorLegend(actors component.Actors) string {
	parts := make([]string, 0, len(actors))
	for _, a := range actors {
		parts = append(parts, a.ID.String()+":"+a.Color)
	}
	return strings.Join(parts, " ")
}

// VolumeCells converts a proximity volume to filled meter cells
func VolumeCells(v float64) int {
	n := int(math.Round(v / constants.ProximityMaxVolume * constants.VolumeBarWidth))
	return min(max(n, 0), constants.VolumeBarWidth)
}

// debugLayer prints every registered metric on one row
type debugLayer struct {
	reg     *status.Registry
	visible bool
}

func (l *debugLayer) IsVisible() bool { return l.visible && l.reg != nil }

func (l *debugLayer) Render(ctx RenderContext, screen tcell.Screen) {
	if ctx.DebugY < 0 {
		return
	}
	drawText(screen, 0, ctx.DebugY, ctx.ScreenWidth, strings.Join(l.reg.Lines(), "  "), debugStyle)
}
