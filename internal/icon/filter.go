package icon

import (
	"image/color"
	"math"

	"github.com/launchtime/launchtheme/internal/argb"
)

// ColorFilter transforms a single unpremultiplied pixel.
type ColorFilter interface {
	Apply(c color.NRGBA) color.NRGBA
}

// ColorMatrix is a 4x5 row-major matrix over 0..255 channel values, laid out
// as [R, G, B, A, offset] for each output channel R', G', B', A'.
type ColorMatrix [20]float32

// identityMatrix returns a matrix that leaves colors unchanged.
func identityMatrix() ColorMatrix {
	var m ColorMatrix
	m[0], m[6], m[12], m[18] = 1, 1, 1, 1
	return m
}

// SetSaturation replaces the matrix with a saturation adjustment. 0 maps every
// color to its luminance, 1 is the identity.
func (m *ColorMatrix) SetSaturation(sat float32) {
	inv := 1 - sat
	r := 0.213 * inv
	g := 0.715 * inv
	b := 0.072 * inv

	*m = ColorMatrix{}
	m[0], m[1], m[2] = r+sat, g, b
	m[5], m[6], m[7] = r, g+sat, b
	m[10], m[11], m[12] = r, g, b+sat
	m[18] = 1
}

// MatrixFilter applies a ColorMatrix.
type MatrixFilter struct {
	Matrix ColorMatrix
}

// Grayscale returns a fully desaturating filter.
func Grayscale() *MatrixFilter {
	f := &MatrixFilter{}
	f.Matrix.SetSaturation(0)
	return f
}

func (f *MatrixFilter) Apply(c color.NRGBA) color.NRGBA {
	m := &f.Matrix
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	row := func(i int) uint8 {
		return clamp8(m[i]*r + m[i+1]*g + m[i+2]*b + m[i+3]*a + m[i+4])
	}
	return color.NRGBA{R: row(0), G: row(5), B: row(10), A: row(15)}
}

// BlendMode selects how a BlendFilter combines its color with each pixel.
type BlendMode int

const (
	// Multiply yields [Sa*Da, Sc*Dc].
	Multiply BlendMode = iota
	// srcAtop yields [Da, Sc*Da + (1-Sa)*Dc].
	srcAtop
)

func (m BlendMode) String() string {
	switch m {
	case Multiply:
		return "multiply"
	case srcAtop:
		return "src_atop"
	default:
		return "unknown"
	}
}

// BlendFilter blends a single color over every pixel.
type BlendFilter struct {
	Color argb.Color
	Mode  BlendMode
}

// NewBlendFilter returns a filter blending c with mode.
func NewBlendFilter(c argb.Color, mode BlendMode) *BlendFilter {
	return &BlendFilter{Color: c, Mode: mode}
}

func (f *BlendFilter) Apply(d color.NRGBA) color.NRGBA {
	sa := unit(f.Color.Alpha())
	da := unit(d.A)
	src := [3]float64{unit(f.Color.Red()), unit(f.Color.Green()), unit(f.Color.Blue())}
	dst := [3]float64{unit(d.R), unit(d.G), unit(d.B)}

	var out [3]float64
	var alpha float64
	switch f.Mode {
	case srcAtop:
		alpha = da
		for i := range out {
			out[i] = sa*src[i] + (1-sa)*dst[i]
		}
	default:
		// Premultiplied Sc*Dc divided by Sa*Da leaves s*d.
		alpha = sa * da
		for i := range out {
			out[i] = src[i] * dst[i]
		}
	}

	if alpha == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: byte255(out[0]),
		G: byte255(out[1]),
		B: byte255(out[2]),
		A: byte255(alpha),
	}
}

func unit(v uint8) float64 {
	return float64(v) / 255
}

func byte255(v float64) uint8 {
	return clamp8(float32(math.Round(v * 255)))
}

func clamp8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
