package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// hudHeight is the band above the arena holding the scores.
const hudHeight = 40

var (
	background    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	textColor     = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	buttonNormal  = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	buttonHovered = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	buttonText    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	overlay       = color.RGBA{A: 140}
)

// palette maps core colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 38, G: 38, B: 38, A: 255},
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 130, G: 90, B: 195, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightBlue:    {R: 207, G: 194, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 251, G: 160, B: 255, A: 255},
	core.ColorGray:          {R: 204, G: 204, B: 204, A: 255},
	core.ColorLavender:      {R: 230, G: 184, B: 255, A: 255},
	core.ColorPurple:        {R: 190, G: 124, B: 230, A: 255},
	core.ColorPink:          {R: 251, G: 160, B: 227, A: 255},
}

// rgb returns the RGB value of c, falling back to the default color.
func rgb(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// Layout maps y-up world coordinates, origin at the arena center, onto
// y-down screen pixels below the HUD band. One world unit is one pixel.
type Layout struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewLayout sizes the screen for an arena of the given extent.
func NewLayout(worldW, worldH float64) Layout {
	return Layout{
		WorldW:  worldW,
		WorldH:  worldH,
		ScreenW: int(worldW),
		ScreenH: int(worldH) + hudHeight,
	}
}

// Rect returns the screen rectangle (x, y, w, h) of a world box.
func (l Layout) Rect(center, size core.Vec2) (x, y, w, h float32) {
	x = float32(center.X - size.X/2 + l.WorldW/2)
	y = float32(hudHeight + l.WorldH/2 - center.Y - size.Y/2)
	return x, y, float32(size.X), float32(size.Y)
}

// PlayButton is the menu button's screen rectangle.
func (l Layout) PlayButton() image.Rectangle {
	const w, h = 200, 64
	x := (l.ScreenW - w) / 2
	y := l.ScreenH/2 + 20
	return image.Rect(x, y, x+w, y+h)
}

// OverPlayButton reports whether the screen point lies on the Play button.
func (l Layout) OverPlayButton(x, y int) bool {
	return image.Pt(x, y).In(l.PlayButton())
}

func (g *Game) drawSnapshot(screen *ebiten.Image, snap brickpong.Snapshot) {
	screen.Fill(background)

	if snap.State == brickpong.StateMenu {
		g.drawMenu(screen)
		return
	}

	for _, e := range snap.Entities {
		x, y, w, h := g.layout.Rect(e.Pos, e.Size)
		vector.FillRect(screen, x, y, w, h, rgb(e.Color), e.Kind == brickpong.KindBall)
	}

	g.drawText(screen, fmt.Sprintf("Player 1: %d", snap.Score1), g.hudFace,
		float64(g.layout.ScreenW)*0.75, hudHeight/2, rgb(brickpong.Paddle1Color))
	g.drawText(screen, fmt.Sprintf("Player 2: %d", snap.Score2), g.hudFace,
		float64(g.layout.ScreenW)*0.25, hudHeight/2, rgb(brickpong.Paddle2Color))

	if snap.State == brickpong.StatePaused {
		vector.FillRect(screen, 0, 0, float32(g.layout.ScreenW), float32(g.layout.ScreenH), overlay, false)
		g.drawText(screen, "PAUSED", g.bigFace,
			float64(g.layout.ScreenW)/2, float64(g.layout.ScreenH)/2, buttonText)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	cx := float64(g.layout.ScreenW) / 2
	g.drawText(screen, "BrickPong", g.bigFace, cx, float64(g.layout.ScreenH)/2-80, rgb(brickpong.Paddle1Color))
	g.drawText(screen, "Player 1: arrows    Player 2: W/S    Space: pause", g.hudFace,
		cx, float64(g.layout.ScreenH)/2-30, textColor)

	btn := g.layout.PlayButton()
	fill := buttonNormal
	if g.layout.OverPlayButton(ebiten.CursorPosition()) {
		fill = buttonHovered
	}
	vector.FillRect(screen, float32(btn.Min.X), float32(btn.Min.Y),
		float32(btn.Dx()), float32(btn.Dy()), fill, false)

	center := btn.Min.Add(btn.Size().Div(2))
	g.drawText(screen, "Play", g.bigFace, float64(center.X), float64(center.Y), buttonText)
}

// drawText draws s centered on (cx, cy).
func (g *Game) drawText(screen *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
