package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

var testResources = theme.StaticResources{
	theme.ResCatTabBackground: 0xff303030,
	theme.ResTextColor:        argb.White,
}

func TestRenderSwatch(t *testing.T) {
	require.Contains(t, RenderSwatch(0xff112233, ""), "#ff112233")
	require.Contains(t, RenderSwatch(0xff112233, "text"), "text")
	require.Contains(t, RenderSwatch(argb.Transparent, ""), "transparent")
}

func TestRenderPaletteMonochrome(t *testing.T) {
	registry := theme.MustRegistry("Default")
	bw, _ := registry.Get("bw")

	out := RenderPalette(styles.DefaultStyles(), bw, testResources)
	require.Contains(t, out, "BW")
	require.Contains(t, out, "[mono]")
	for _, slot := range theme.Slots() {
		require.Contains(t, out, slot.String())
	}
}

func TestRenderPaletteDefaultShowsResources(t *testing.T) {
	registry := theme.MustRegistry("Default")
	def, _ := registry.Get(theme.DefaultPack)

	out := RenderPalette(styles.DefaultStyles(), def, testResources)
	require.Contains(t, out, "[stock]")
	require.Contains(t, out, "uses resource colors")
	require.Contains(t, out, "#ff303030")
}

func TestRenderPalettePolychrome(t *testing.T) {
	d := theme.NewPolychrome("prism", "Prism", []argb.Color{0xffe53935, 0xff1e88e5}, 0xff121212)

	out := RenderPalette(styles.DefaultStyles(), d, testResources)
	require.Contains(t, out, "[poly]")
	require.Contains(t, out, "#ffe53935")
	require.Contains(t, out, "#ff1e88e5")
	require.Contains(t, out, "#ff121212")
}

func TestRenderColorValuesMarksCustom(t *testing.T) {
	out := RenderColorValues(styles.DefaultStyles(), []theme.ColorValue{
		{Pref: theme.PrefTextColor, Color: argb.White},
		{Pref: theme.PrefWallpaperColor, Color: 0xff00ff00, Custom: true},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.NotContains(t, lines[0], "custom")
	require.Contains(t, lines[1], "custom")
}
