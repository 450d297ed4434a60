package chart

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// NoResults is drawn when a filter leaves nothing to plot.
const NoResults = "No results for the current filters"

// Empty writes a blank PNG with msg centred on it.
func Empty(w io.Writer, size Size, msg string) error {
	size = size.orDefault()
	b := image.Rect(0, 0, size.Width, size.Height)
	img := image.NewRGBA(b)
	draw.Draw(img, b, image.NewUniform(color.RGBA{R: 250, G: 250, B: 250, A: 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 110, G: 110, B: 110, A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(msg).Ceil()
	x := (size.Width - tw) / 2
	y := (size.Height + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(max(x, 4)), Y: fixed.I(y)}
	dr.DrawString(msg)

	return png.Encode(w, img)
}
