package icon

import (
	"fmt"
	"image"
	"io"

	// Icon sources found in launcher icon caches and icon packs.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads an icon bitmap in any registered format.
func Decode(r io.Reader) (*Drawable, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode icon: empty %s image", format)
	}
	return NewDrawable(img), nil
}
