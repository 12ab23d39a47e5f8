package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	loadOnce sync.Once
	regular  *text.GoTextFaceSource
	bold     *text.GoTextFaceSource
)

func load() {
	regular = mustSource("goregular", goregular.TTF)
	bold = mustSource("gobold", gobold.TTF)
}

// mustSource parses a TTF into a text/v2 face source. The fonts are compiled
// in, so a failure here means a broken build.
func mustSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Fatalf("Failed to parse font '%s': %v", name, err)
	}
	return src
}

// Regular returns the body face at the given pixel size.
func Regular(size float64) *text.GoTextFace {
	loadOnce.Do(load)
	return &text.GoTextFace{Source: regular, Size: size}
}

// Bold returns the heading face at the given pixel size.
func Bold(size float64) *text.GoTextFace {
	loadOnce.Do(load)
	return &text.GoTextFace{Source: bold, Size: size}
}
