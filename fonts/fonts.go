package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Mono  FontName = "mono"
	Title FontName = "title"
	Body  FontName = "body"
)

// Get returns the loaded face for drawing with ebiten's text package
func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]*text.GoXFace{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = text.NewGoXFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

// LoadDefaults loads the Go fonts at the given sizes: mono for the toggle,
// regular for the page title and body
func LoadDefaults(monoSize, titleSize, bodySize float64) error {
	if err := LoadFontWithSize(Mono, gomono.TTF, monoSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, goregular.TTF, titleSize); err != nil {
		return err
	}
	return LoadFontWithSize(Body, goregular.TTF, bodySize)
}

// loaded reports whether name has been loaded
func loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) *text.GoXFace {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
