package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// heldKeys are sampled every Update with ebiten.IsKeyPressed.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionP1Up:   {ebiten.KeyArrowUp},
	core.ActionP1Down: {ebiten.KeyArrowDown},
	core.ActionP2Up:   {ebiten.KeyW},
	core.ActionP2Down: {ebiten.KeyS},
}

// pressKeys trigger once per press.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionBack:    {ebiten.KeyEscape},
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// sampleInput reads the keyboard and mouse into an input frame.
func sampleInput(state brickpong.State, l Layout) core.InputFrame {
	in := core.NewInputFrame()

	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Hold(action)
			}
		}
	}
	for action, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(action)
			}
		}
	}

	if state == brickpong.StateMenu && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if l.OverPlayButton(ebiten.CursorPosition()) {
			in.Set(core.ActionConfirm)
		}
	}
	return in
}
