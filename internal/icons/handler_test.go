package icons

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/launchtime/launchtheme/internal/icon"
	"github.com/launchtime/launchtheme/internal/prefs"
)

func newTestHandler(t *testing.T, store prefs.Store, cache bool) *Handler {
	t.Helper()
	h, err := NewHandler(context.Background(), Options{
		Store:  store,
		Size:   64,
		Cache:  cache,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	return h
}

func writePNG(t *testing.T, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

var chrome = icon.ComponentName{Package: "com.android.chrome", Class: "com.google.android.apps.chrome.Main"}

func TestIconsPackDefaultsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()

	h := newTestHandler(t, store, false)
	require.Equal(t, "default", h.IconsPackPackageName())

	require.NoError(t, h.SetIconsPack(ctx, "termcap"))
	require.Equal(t, "termcap", h.IconsPackPackageName())

	stored, err := store.GetString(ctx, KeyIconsPack, "")
	require.NoError(t, err)
	require.Equal(t, "termcap", stored)

	// A fresh handler picks up the stored selection.
	require.Equal(t, "termcap", newTestHandler(t, store, false).IconsPackPackageName())

	require.Error(t, h.SetIconsPack(ctx, " "))
}

func TestDefaultAppDrawableDecodesFiles(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	path := writePNG(t, red)
	h := newTestHandler(t, prefs.NewMemory(), false)

	d, err := h.DefaultAppDrawable(chrome, path)
	require.NoError(t, err)
	require.Equal(t, red, d.At(1, 1))

	d, err = h.DefaultAppDrawable(chrome, "file://"+path)
	require.NoError(t, err)
	require.Equal(t, red, d.At(2, 2))
}

func TestDefaultAppDrawableFallsBackToPlaceholder(t *testing.T) {
	h := newTestHandler(t, prefs.NewMemory(), false)

	for _, uri := range []string{"", "/does/not/exist.png", "https://example.com/icon.png"} {
		d, err := h.DefaultAppDrawable(chrome, uri)
		require.NoError(t, err, uri)
		require.Equal(t, image.Rect(0, 0, 64, 64), d.Bounds(), uri)
	}

	_, err := h.DefaultAppDrawable(icon.ComponentName{}, "")
	require.Error(t, err)
}

func TestDefaultAppDrawableCaches(t *testing.T) {
	path := writePNG(t, color.NRGBA{G: 0xff, A: 0xff})

	cached := newTestHandler(t, prefs.NewMemory(), true)
	first, err := cached.DefaultAppDrawable(chrome, path)
	require.NoError(t, err)
	second, err := cached.DefaultAppDrawable(chrome, path)
	require.NoError(t, err)
	require.Same(t, first, second)

	uncached := newTestHandler(t, prefs.NewMemory(), false)
	first, err = uncached.DefaultAppDrawable(chrome, path)
	require.NoError(t, err)
	second, err = uncached.DefaultAppDrawable(chrome, path)
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestPlaceholderShape(t *testing.T) {
	img := Placeholder("com.example.mail", 64)
	require.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	// Corners fall outside the rounded square.
	require.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	// The left edge at mid height is solid background.
	require.Equal(t, uint8(0xff), img.NRGBAAt(6, 32).A)

	// Same package, same color.
	other := Placeholder("com.example.mail", 64)
	require.Equal(t, img.NRGBAAt(6, 32), other.NRGBAAt(6, 32))
}

func TestInitial(t *testing.T) {
	require.Equal(t, "C", initial("com.android.chrome"))
	require.Equal(t, "M", initial("mail"))
	require.Equal(t, "2", initial("org.app.2048"))
	require.Equal(t, "?", initial("com.example._"))
}
