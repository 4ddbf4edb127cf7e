package theme

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/icon"
	"github.com/launchtime/launchtheme/internal/prefs"
)

var testResources = StaticResources{
	ResCatTabBackground:         0xff303030,
	ResCatTabSelectedBackground: 0xff505050,
	ResCatTabSelectedText:       0xfffffffe,
	ResTextColor:                0xffeeeeee,
	ResTextColorInv:             0xff111111,
}

type fakePack struct {
	key string
}

func (p *fakePack) IconsPackPackageName() string { return p.key }

func (p *fakePack) SetIconsPack(ctx context.Context, key string) error {
	p.key = key
	return nil
}

type fakeIcons struct {
	cached *icon.Drawable
	calls  int
}

func newFakeIcons() *fakeIcons {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 40, B: 10, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 220, B: 90, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 60, G: 70, B: 250, A: 180})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return &fakeIcons{cached: icon.NewDrawable(img)}
}

func (f *fakeIcons) DefaultAppDrawable(component icon.ComponentName, uri string) (*icon.Drawable, error) {
	f.calls++
	return f.cached, nil
}

type recorded struct {
	action Action
	key    string
}

type fakeRecorder struct {
	events []recorded
}

func (r *fakeRecorder) Record(ctx context.Context, action Action, key string) error {
	r.events = append(r.events, recorded{action: action, key: key})
	return nil
}

type bridgeFixture struct {
	bridge   *Bridge
	pack     *fakePack
	app      *prefs.Memory
	snaps    *prefs.Memory
	recorder *fakeRecorder
}

func newBridgeFixture(t *testing.T, active string, extra ...*Descriptor) *bridgeFixture {
	t.Helper()

	registry, err := NewRegistry("Default", extra...)
	require.NoError(t, err)

	f := &bridgeFixture{
		pack:     &fakePack{key: active},
		app:      prefs.NewMemory(),
		snaps:    prefs.NewMemory(),
		recorder: &fakeRecorder{},
	}
	f.bridge, err = NewBridge(BridgeOptions{
		Registry:   registry,
		Active:     f.pack,
		Resources:  testResources,
		AppPrefs:   f.app,
		ThemePrefs: f.snaps,
		Recorder:   f.recorder,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)
	return f
}

func (f *bridgeFixture) live(t *testing.T) map[string]argb.Color {
	t.Helper()
	out := make(map[string]argb.Color)
	for _, pref := range ColorPreferences() {
		v, err := f.app.GetInt(context.Background(), pref, -1)
		require.NoError(t, err)
		out[pref] = argb.Color(uint32(v))
	}
	return out
}

func TestRegistryBuiltins(t *testing.T) {
	r := MustRegistry("Stock")

	require.Equal(t, []string{"default", "bw", "bwicon", "termcap", "coolblue", "redplanet", "ladypink"}, r.Keys())
	require.Equal(t, 7, r.Len())

	d, ok := r.Get(DefaultPack)
	require.True(t, ok)
	require.Equal(t, "Stock", d.Name())
	require.Equal(t, KindDefault, d.Kind())
	require.False(t, d.HasColors())

	for _, d := range r.Themes()[1:] {
		require.Equal(t, KindMonochrome, d.Kind(), d.Key())
		require.True(t, d.HasColors(), d.Key())
		require.NotEmpty(t, d.Name(), d.Key())
	}

	missing, ok := r.Get("com.example.iconpack")
	require.False(t, ok)
	require.Nil(t, missing)
	require.False(t, r.IsBuiltin("com.example.iconpack"))
	require.True(t, r.IsBuiltin("termcap"))
}

func TestRegistryIsImmutable(t *testing.T) {
	r := MustRegistry("")

	themes := r.Themes()
	themes[0] = nil
	require.NotNil(t, r.Themes()[0])

	d, _ := r.Get("coolblue")
	palette := d.Palette()
	palette[SlotMask] = argb.Black
	require.Equal(t, argb.MustParse("#ff1111ff"), d.Color(SlotMask))
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	tests := []struct {
		name string
		d    *Descriptor
		want error
	}{
		{name: "empty key", d: NewDefault("", "Nameless"), want: ErrInvalidDescriptor},
		{name: "empty name", d: NewDefault("nameless", " "), want: ErrInvalidDescriptor},
		{name: "no mask", d: NewMonochrome("nomask", "No Mask", Palette{SlotText: argb.White}), want: ErrInvalidDescriptor},
		{name: "no foreground", d: NewPolychrome("empty", "Empty", nil, argb.Black), want: ErrInvalidDescriptor},
		{name: "duplicate", d: NewDefault("bw", "Again"), want: ErrDuplicateTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry("", tt.d)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistryAcceptsPolychromeExtras(t *testing.T) {
	poly := NewPolychrome("rainbow", "Rainbow", []argb.Color{0xffff0000, 0xff00ff00}, argb.Black)
	r, err := NewRegistry("", poly)
	require.NoError(t, err)
	require.Equal(t, "rainbow", r.Keys()[r.Len()-1])
	require.True(t, r.IsBuiltin("rainbow"))
	require.False(t, poly.HasColors())
}

func TestColorForUnsetSlotIsBlack(t *testing.T) {
	d := NewMonochrome("partial", "Partial", Palette{SlotMask: argb.White})
	require.Equal(t, argb.Black, d.Color(SlotAltText))
}

func TestCurrentThemeColorWithPalette(t *testing.T) {
	f := newBridgeFixture(t, "coolblue")
	d, _ := f.bridge.Registry().Get("coolblue")

	want := map[string]Slot{
		PrefCatTabBackground:         SlotAltBackground,
		PrefCatTabSelectedBackground: SlotAltBackground,
		PrefCatTabSelectedText:       SlotAltText,
		PrefCatTabTextColor:          SlotText,
		PrefCatTabTextColorInv:       SlotBackground,
		PrefWallpaperColor:           SlotBackground,
		PrefTextColor:                SlotText,
	}
	require.Len(t, ColorPreferences(), len(want))

	for pref, slot := range want {
		got, err := f.bridge.CurrentThemeColor(pref)
		require.NoError(t, err, pref)
		require.Equal(t, d.Color(slot), got, pref)

		mapped, err := SlotFor(pref)
		require.NoError(t, err)
		require.Equal(t, slot, mapped)
	}
}

func TestCurrentThemeColorFallsBackToResources(t *testing.T) {
	want := map[string]argb.Color{
		PrefCatTabBackground:         0xff303030,
		PrefCatTabSelectedBackground: 0xff505050,
		PrefCatTabSelectedText:       0xfffffffe,
		PrefCatTabTextColor:          0xffeeeeee,
		PrefCatTabTextColorInv:       0xff111111,
		PrefWallpaperColor:           argb.Transparent,
		PrefTextColor:                0xffeeeeee,
	}

	// The default theme has no palette; an external pack is not registered.
	for _, active := range []string{DefaultPack, "com.example.iconpack"} {
		f := newBridgeFixture(t, active)
		for pref, c := range want {
			got, err := f.bridge.CurrentThemeColor(pref)
			require.NoError(t, err)
			require.Equal(t, c, got, "%s/%s", active, pref)
		}
	}
}

func TestCurrentThemeColorRejectsUnknownPreference(t *testing.T) {
	for _, active := range []string{DefaultPack, "bw"} {
		f := newBridgeFixture(t, active)

		_, err := f.bridge.CurrentThemeColor("iconcolor")
		if !errors.Is(err, ErrInvalidPreference) {
			t.Fatalf("CurrentThemeColor(iconcolor) error = %v, want ErrInvalidPreference", err)
		}
		require.Panics(t, func() { f.bridge.MustCurrentThemeColor("") })
	}
}

func TestResetThenRestoreReportsNoSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "termcap")

	require.NoError(t, f.bridge.SaveUserColors(ctx))
	require.NoError(t, f.bridge.ResetUserColors(ctx))
	require.Empty(t, f.snaps.Keys())

	restored, err := f.bridge.RestoreUserColors(ctx)
	require.NoError(t, err)
	require.False(t, restored)

	d, _ := f.bridge.Registry().Get("termcap")
	require.Equal(t, d.Color(SlotText), f.live(t)[PrefTextColor])
}

func TestResetOnlyDropsActiveSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "bw")
	require.NoError(t, f.bridge.SaveUserColors(ctx))

	f.pack.key = "ladypink"
	require.NoError(t, f.bridge.SaveUserColors(ctx))
	require.NoError(t, f.bridge.ResetUserColors(ctx))

	ok, err := f.snaps.Contains(ctx, "theme_bw_cattab_background")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.snaps.Contains(ctx, "theme_ladypink_cattab_background")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "redplanet")

	custom := map[string]argb.Color{}
	for i, pref := range ColorPreferences() {
		c := argb.Color(0xff000000 | uint32(i+1)*0x010203)
		custom[pref] = c
		require.NoError(t, f.bridge.SetUserColor(ctx, pref, c))
	}

	require.NoError(t, f.bridge.SaveUserColors(ctx))

	d, _ := f.bridge.Registry().Get("redplanet")
	require.NoError(t, f.bridge.ApplyTheme(ctx, d))
	require.NotEqual(t, custom, f.live(t))

	restored, err := f.bridge.RestoreUserColors(ctx)
	require.NoError(t, err)
	require.True(t, restored)
	require.Equal(t, custom, f.live(t))
}

func TestSaveUsesThemeColorsForUnsetPreferences(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "ladypink")
	require.NoError(t, f.bridge.SaveUserColors(ctx))

	v, err := f.snaps.GetInt(ctx, "theme_ladypink_cattabselected_text", 0)
	require.NoError(t, err)
	require.Equal(t, argb.MustParse("#eeffc0cb"), argb.Color(uint32(v)))
}

func TestApplyTheme(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, DefaultPack)
	r := f.bridge.Registry()

	bw, _ := r.Get("bw")
	require.NoError(t, f.bridge.ApplyTheme(ctx, bw))
	live := f.live(t)
	require.Equal(t, argb.MustParse("#ff222222"), live[PrefCatTabBackground])
	require.Equal(t, argb.Black, live[PrefWallpaperColor])
	require.Equal(t, argb.White, live[PrefTextColor])

	def, _ := r.Get(DefaultPack)
	require.NoError(t, f.bridge.ApplyTheme(ctx, def))
	live = f.live(t)
	require.Equal(t, argb.Color(0xff303030), live[PrefCatTabBackground])
	require.Equal(t, argb.Transparent, live[PrefWallpaperColor])

	require.ErrorIs(t, f.bridge.ApplyTheme(ctx, nil), ErrThemeNotFound)
}

func TestSwitchThemeSavesAndRestores(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, DefaultPack)

	require.NoError(t, f.bridge.SetUserColor(ctx, PrefTextColor, 0xff123456))

	restored, err := f.bridge.SwitchTheme(ctx, f.pack, "coolblue")
	require.NoError(t, err)
	require.False(t, restored)
	require.Equal(t, "coolblue", f.bridge.ActiveKey())

	coolblue, _ := f.bridge.Registry().Get("coolblue")
	require.Equal(t, coolblue.Color(SlotText), f.live(t)[PrefTextColor])

	restored, err = f.bridge.SwitchTheme(ctx, f.pack, DefaultPack)
	require.NoError(t, err)
	require.True(t, restored)
	require.Equal(t, argb.Color(0xff123456), f.live(t)[PrefTextColor])

	// Coming back to coolblue finds the snapshot saved on the way out.
	restored, err = f.bridge.SwitchTheme(ctx, f.pack, "coolblue")
	require.NoError(t, err)
	require.True(t, restored)
}

func TestSwitchThemeToExternalPackUsesDefaults(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "bw")

	restored, err := f.bridge.SwitchTheme(ctx, f.pack, "com.example.iconpack")
	require.NoError(t, err)
	require.False(t, restored)
	require.Equal(t, argb.Color(0xffeeeeee), f.live(t)[PrefTextColor])

	_, err = f.bridge.SwitchTheme(ctx, f.pack, "")
	require.ErrorIs(t, err, ErrThemeNotFound)
}

func TestBridgeRecordsActions(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "bw")

	require.NoError(t, f.bridge.SaveUserColors(ctx))
	_, err := f.bridge.RestoreUserColors(ctx)
	require.NoError(t, err)
	require.NoError(t, f.bridge.ResetUserColors(ctx))
	require.NoError(t, f.bridge.SetUserColor(ctx, PrefTextColor, argb.White))

	require.Equal(t, []recorded{
		{action: ActionSaved, key: "bw"},
		{action: ActionRestored, key: "bw"},
		{action: ActionReset, key: "bw"},
		{action: ActionColorSet, key: "bw"},
	}, f.recorder.events)
}

func TestSnapshotMarksCustomValues(t *testing.T) {
	ctx := context.Background()
	f := newBridgeFixture(t, "bw")
	require.NoError(t, f.bridge.SetUserColor(ctx, PrefWallpaperColor, 0xff00ff00))

	values, err := f.bridge.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, values, 7)
	for _, v := range values {
		require.Equal(t, v.Pref == PrefWallpaperColor, v.Custom, v.Pref)
	}

	require.ErrorIs(t, f.bridge.SetUserColor(ctx, "nope", argb.Black), ErrInvalidPreference)
}

func TestNewBridgeRequiresCollaborators(t *testing.T) {
	_, err := NewBridge(BridgeOptions{})
	require.Error(t, err)
}

func TestDefaultDrawableIsPassthrough(t *testing.T) {
	icons := newFakeIcons()
	d, _ := MustRegistry("").Get(DefaultPack)

	out, err := d.Drawable(icons, icon.ComponentName{Package: "com.example"}, "")
	require.NoError(t, err)
	require.Same(t, icons.cached, out)
}

func TestMonochromeTransparentMaskReturnsSameIcon(t *testing.T) {
	icons := newFakeIcons()
	bw, _ := MustRegistry("").Get("bw")

	out, err := bw.Drawable(icons, icon.ComponentName{Package: "com.example"}, "")
	require.NoError(t, err)
	require.Same(t, icons.cached, out)
	require.Nil(t, out.ColorFilter())
}

func TestMonochromeWhiteMaskIsGrayscale(t *testing.T) {
	icons := newFakeIcons()
	bwicon, _ := MustRegistry("").Get("bwicon")

	out, err := bwicon.Drawable(icons, icon.ComponentName{Package: "com.example"}, "")
	require.NoError(t, err)
	require.NotSame(t, icons.cached, out)
	require.Nil(t, icons.cached.ColorFilter())

	rendered := out.Render()
	b := rendered.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := rendered.NRGBAAt(x, y)
			require.Equal(t, px.R, px.G)
			require.Equal(t, px.G, px.B)
		}
	}
}

func TestMonochromeColorMaskMultiplies(t *testing.T) {
	icons := newFakeIcons()
	red := NewMonochrome("red", "Red", Palette{SlotMask: 0xffff0000})

	out, err := red.Drawable(icons, icon.ComponentName{Package: "com.example"}, "")
	require.NoError(t, err)
	require.NotSame(t, icons.cached, out)
	require.Nil(t, icons.cached.ColorFilter())

	filter, ok := out.ColorFilter().(*icon.BlendFilter)
	require.True(t, ok)
	require.Equal(t, argb.Color(0xffff0000), filter.Color)
	require.Equal(t, icon.Multiply, filter.Mode)

	px := out.At(0, 0)
	require.Equal(t, color.NRGBA{R: 200, A: 255}, px)
}

func TestPolychromeIsDeterministic(t *testing.T) {
	fg := []argb.Color{0xffff0000, 0xff00ff00, 0xff0000ff, 0xffffff00, 0xff00ffff}
	poly := NewPolychrome("rainbow", "Rainbow", fg, argb.Black)
	icons := newFakeIcons()

	for _, pkg := range []string{"com.android.chrome", "com.example.mail", "org.fdroid.fdroid", "polygenelubricants"} {
		want := fg[PaletteIndex(pkg, len(fg))]
		for i := 0; i < 3; i++ {
			out, err := poly.Drawable(icons, icon.ComponentName{Package: pkg}, "")
			require.NoError(t, err)
			require.NotSame(t, icons.cached, out)
			filter := out.ColorFilter().(*icon.BlendFilter)
			require.Equal(t, want, filter.Color, pkg)
			require.Equal(t, icon.Multiply, filter.Mode)
		}
	}
	require.Nil(t, icons.cached.ColorFilter())
}

func TestJavaStringHash(t *testing.T) {
	tests := []struct {
		in    string
		hash  int32
		index int
	}{
		{in: "", hash: 0, index: 0},
		{in: "hello", hash: 99162322, index: 2},
		{in: "com.android.chrome", hash: 256457446, index: 1},
		{in: "com.example.mail", hash: 813720328, index: 3},
		{in: "polygenelubricants", hash: -2147483648, index: 3},
	}

	for _, tt := range tests {
		require.Equal(t, tt.hash, javaStringHash(tt.in), tt.in)
		require.Equal(t, tt.index, PaletteIndex(tt.in, 5), tt.in)
	}
	require.Equal(t, 0, PaletteIndex("hello", 0))
}

func TestParseSlotAndKind(t *testing.T) {
	for _, s := range Slots() {
		parsed, err := ParseSlot(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}
	slot, err := ParseSlot("Alt-Background")
	require.NoError(t, err)
	require.Equal(t, SlotAltBackground, slot)

	_, err = ParseSlot("accent")
	require.Error(t, err)

	kind, err := ParseKind("Polychrome")
	require.NoError(t, err)
	require.Equal(t, KindPolychrome, kind)
	_, err = ParseKind("gradient")
	require.Error(t, err)
}
