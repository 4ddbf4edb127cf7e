package icons

import (
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/launchtime/launchtheme/internal/theme"
)

var placeholderColors = []color.NRGBA{
	{R: 0x5c, G: 0x6b, B: 0xc0, A: 0xff},
	{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff},
	{R: 0xef, G: 0x6c, B: 0x00, A: 0xff},
	{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff},
	{R: 0xab, G: 0x47, B: 0xbc, A: 0xff},
	{R: 0x78, G: 0x90, B: 0x9c, A: 0xff},
}

var (
	fontOnce sync.Once
	boldFont *truetype.Font
)

func placeholderFont() *truetype.Font {
	fontOnce.Do(func() {
		// The embedded Go font always parses.
		boldFont, _ = truetype.Parse(gobold.TTF)
	})
	return boldFont
}

// Placeholder draws a rounded square in a color chosen from pkg, labelled with
// the first letter of the last package segment.
func Placeholder(pkg string, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSize
	}
	s := float64(size)
	inset := s / 16

	dc := gg.NewContext(size, size)
	dc.SetColor(placeholderColors[theme.PaletteIndex(pkg, len(placeholderColors))])
	dc.DrawRoundedRectangle(inset, inset, s-2*inset, s-2*inset, s*0.2)
	dc.Fill()

	if f := placeholderFont(); f != nil {
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: s * 0.5}))
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(initial(pkg), s/2, s/2, 0.5, 0.35)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out
}

func initial(pkg string) string {
	segment := pkg
	if i := strings.LastIndex(pkg, "."); i >= 0 {
		segment = pkg[i+1:]
	}
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}
