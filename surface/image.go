package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Image is a Canvas backed by an offscreen ebiten image
type Image struct {
	img *ebiten.Image
}

// NewImage creates an offscreen canvas. A zero size defers allocation until Resize.
func NewImage(width, height int) Canvas {
	i := &Image{}
	i.Resize(width, height)
	return i
}

// Resize reallocates the backing image. ebiten images cannot change size in place.
func (i *Image) Resize(width, height int) {
	if i.img != nil {
		if w, h := i.img.Bounds().Dx(), i.img.Bounds().Dy(); w == width && h == height {
			return
		}
		i.img.Deallocate()
		i.img = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	i.img = ebiten.NewImage(width, height)
}

func (i *Image) Size() (int, int) {
	if i.img == nil {
		return 0, 0
	}
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

func (i *Image) Clear() {
	if i.img != nil {
		i.img.Clear()
	}
}

func (i *Image) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if i.img == nil {
		return
	}
	vector.StrokeLine(i.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (i *Image) FillCircle(cx, cy, r float64, clr color.Color) {
	if i.img == nil {
		return
	}
	vector.FillCircle(i.img, float32(cx), float32(cy), float32(r), clr, true)
}

// Composite draws the surface onto dst at the given opacity
func (i *Image) Composite(dst *ebiten.Image, opacity float64) {
	if i.img == nil || opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity))
	dst.DrawImage(i.img, op)
}

// Dispose releases the backing image
func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
		i.img = nil
	}
}
