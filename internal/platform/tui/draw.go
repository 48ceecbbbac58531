package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// Glyphs per entity kind.
var kindGlyph = map[brickpong.Kind]rune{
	brickpong.KindPaddle: '█',
	brickpong.KindBall:   '●',
	brickpong.KindWall:   '▒',
	brickpong.KindBlock:  '▓',
}

// Viewport projects y-up world coordinates onto a y-down cell grid placed
// below the HUD.
type Viewport struct {
	Cols, Rows int
	WorldW     float64
	WorldH     float64
}

// NewViewport fits a world of the given extent to a screen, leaving the HUD rows free.
func NewViewport(screenW, screenH int, worldW, worldH float64) Viewport {
	return Viewport{
		Cols:   max(screenW, 1),
		Rows:   max(screenH-hudRows, 1),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// col maps a world x to a fractional column.
func (v Viewport) col(x float64) float64 {
	return (x + v.WorldW/2) / v.WorldW * float64(v.Cols)
}

// row maps a world y to a fractional row, counted from the top of the arena.
func (v Viewport) row(y float64) float64 {
	return (v.WorldH/2 - y) / v.WorldH * float64(v.Rows)
}

// Cell returns the screen cell containing world point p.
func (v Viewport) Cell(p core.Vec2) (int, int) {
	x := core.Clamp(int(math.Floor(v.col(p.X))), 0, v.Cols-1)
	y := core.Clamp(int(math.Floor(v.row(p.Y))), 0, v.Rows-1)
	return x, y + hudRows
}

// Span returns the screen cells covered by a box, at least one cell.
func (v Viewport) Span(center, size core.Vec2) core.Rect {
	x0 := int(math.Floor(v.col(center.X - size.X/2)))
	x1 := int(math.Ceil(v.col(center.X + size.X/2)))
	y0 := int(math.Floor(v.row(center.Y + size.Y/2)))
	y1 := int(math.Ceil(v.row(center.Y - size.Y/2)))

	x0 = core.Clamp(x0, 0, v.Cols-1)
	y0 = core.Clamp(y0, 0, v.Rows-1)
	x1 = core.Clamp(x1, x0+1, v.Cols)
	y1 = core.Clamp(y1, y0+1, v.Rows)
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// playButton is the menu's clickable Play button, centered on the screen.
func playButton(w, h int) core.Rect {
	const bw, bh = 14, 3
	return core.NewRect((w-bw)/2, h/2, bw, bh)
}

// DrawSnapshot renders snap onto screen: menu, arena with HUD, and the
// pause overlay.
func DrawSnapshot(screen *core.Screen, snap brickpong.Snapshot) {
	screen.Clear()

	if snap.State == brickpong.StateMenu {
		drawMenu(screen)
		return
	}

	vp := NewViewport(screen.Width(), screen.Height(), snap.Width, snap.Height)
	for _, e := range snap.Entities {
		glyph := kindGlyph[e.Kind]
		if e.Kind == brickpong.KindBall {
			x, y := vp.Cell(e.Pos)
			screen.SetColored(x, y, glyph, e.Color)
			continue
		}
		screen.DrawRect(vp.Span(e.Pos, e.Size), glyph, e.Color)
	}

	drawHUD(screen, snap)

	if snap.State == brickpong.StatePaused {
		drawPause(screen)
	}
}

// hudText is the score line.
func hudText(s1, s2 uint) (p1, p2 string) {
	return fmt.Sprintf("Player 1: %d", s1), fmt.Sprintf("Player 2: %d", s2)
}

func drawHUD(screen *core.Screen, snap brickpong.Snapshot) {
	p1, p2 := hudText(snap.Score1, snap.Score2)
	const gap = "  "
	width := len(p1) + len(gap) + len(p2)
	x := (screen.Width() - width) / 2
	screen.DrawTextColored(x, 0, p1, brickpong.Paddle1Color)
	screen.DrawTextColored(x+len(p1)+len(gap), 0, p2, brickpong.Paddle2Color)
}

func drawMenu(screen *core.Screen) {
	w, h := screen.Width(), screen.Height()
	screen.DrawTextCentered(h/2-3, "B R I C K   P O N G", brickpong.Paddle1Color)
	screen.DrawTextCentered(h/2-2, "Player 1: ↑/↓   Player 2: W/S", core.ColorGray)

	btn := playButton(w, h)
	screen.DrawBox(btn, core.ColorGreen)
	screen.DrawTextCentered(btn.Y+1, "Play", core.ColorBrightWhite)
}

func drawPause(screen *core.Screen) {
	w, h := screen.Width(), screen.Height()
	box := core.NewRect((w-24)/2, h/2-2, 24, 4)
	screen.DrawRect(box, ' ', core.ColorDefault)
	screen.DrawBox(box, core.ColorYellow)
	screen.DrawTextCentered(box.Y+1, "PAUSED", core.ColorBrightYellow)
	screen.DrawTextCentered(box.Y+2, "space to resume", core.ColorGray)
}
