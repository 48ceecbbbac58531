package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// loadFace builds a Go Regular face of the given point size.
func loadFace(size float64) (text.Face, error) {
	data, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font: %w", err)
	}

	face, err := opentype.NewFace(data, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("window: cannot create font face: %w", err)
	}
	return text.NewGoXFace(face), nil
}
