// Package icon holds launcher icon bitmaps and the color filters applied to
// them when a theme tints icons.
package icon

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Drawable is an icon bitmap with an optional color filter. The filter is
// applied lazily by Render so the source pixels are never altered.
//
// Drawables returned by an icon resolver may be cached and shared; call
// Mutate before changing the filter.
type Drawable struct {
	pix    *image.NRGBA
	filter ColorFilter
}

// NewDrawable copies src into a private buffer.
func NewDrawable(src image.Image) *Drawable {
	return &Drawable{pix: copyNRGBA(src)}
}

// Mutate returns a private copy of the drawable, pixels and filter included.
func (d *Drawable) Mutate() *Drawable {
	return &Drawable{pix: copyNRGBA(d.pix), filter: d.filter}
}

// SetColorFilter replaces the filter. A nil filter clears it.
func (d *Drawable) SetColorFilter(f ColorFilter) {
	d.filter = f
}

// ColorFilter returns the current filter or nil.
func (d *Drawable) ColorFilter() ColorFilter {
	return d.filter
}

// Bounds returns the bitmap bounds.
func (d *Drawable) Bounds() image.Rectangle {
	return d.pix.Bounds()
}

// Image returns the unfiltered pixels. The result must not be modified.
func (d *Drawable) Image() image.Image {
	return d.pix
}

// Render returns a new bitmap with the filter applied.
func (d *Drawable) Render() *image.NRGBA {
	if d.filter == nil {
		return copyNRGBA(d.pix)
	}

	bounds := d.pix.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetNRGBA(x, y, d.At(x, y))
		}
	}
	return out
}

// Scaled renders the drawable and resamples it to size x size.
func (d *Drawable) Scaled(size int) *image.NRGBA {
	rendered := d.Render()
	if size <= 0 || (rendered.Bounds().Dx() == size && rendered.Bounds().Dy() == size) {
		return rendered
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), rendered, rendered.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the rendered drawable, resampled when size > 0.
func (d *Drawable) EncodePNG(w io.Writer, size int) error {
	return png.Encode(w, d.Scaled(size))
}

// At returns the filtered color at (x, y).
func (d *Drawable) At(x, y int) color.NRGBA {
	c := d.pix.NRGBAAt(x, y)
	if d.filter != nil {
		c = d.filter.Apply(c)
	}
	return c
}

func copyNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
