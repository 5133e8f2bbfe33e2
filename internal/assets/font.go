package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// FontFace returns a text face at the given size, backed by the bundled
// Go Regular typeface.
func FontFace(size float64) *text.GoTextFace {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("parse font: %v", err)
		}
		fontSource = src
	})
	return &text.GoTextFace{Source: fontSource, Size: size}
}
