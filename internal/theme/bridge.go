package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/launchtime/launchtheme/internal/argb"
	"github.com/launchtime/launchtheme/internal/prefs"
)

// ActivePack reports the icon pack currently selected by the user.
type ActivePack interface {
	IconsPackPackageName() string
}

// PackSetter changes the selected icon pack.
type PackSetter interface {
	SetIconsPack(ctx context.Context, key string) error
}

// Action names a recorded bridge operation.
type Action string

const (
	ActionApplied  Action = "theme.applied"
	ActionSwitched Action = "theme.switched"
	ActionSaved    Action = "colors.saved"
	ActionRestored Action = "colors.restored"
	ActionReset    Action = "colors.reset"
	ActionColorSet Action = "colors.set"
)

// Recorder receives a note of each completed bridge operation.
type Recorder interface {
	Record(ctx context.Context, action Action, themeKey string) error
}

// BridgeOptions wires a Bridge to its collaborators.
type BridgeOptions struct {
	Registry  *Registry
	Active    ActivePack
	Resources ResourceColors

	// AppPrefs holds the live color preferences.
	AppPrefs prefs.Store

	// ThemePrefs holds per-theme snapshots.
	ThemePrefs prefs.Store

	// Recorder is optional.
	Recorder Recorder

	Logger zerolog.Logger
}

// Bridge moves colors between themes, the live preferences and the per-theme
// snapshot store.
type Bridge struct {
	registry   *Registry
	active     ActivePack
	resources  ResourceColors
	appPrefs   prefs.Store
	themePrefs prefs.Store
	recorder   Recorder
	logger     zerolog.Logger
}

// NewBridge validates opts and builds a Bridge.
func NewBridge(opts BridgeOptions) (*Bridge, error) {
	switch {
	case opts.Registry == nil:
		return nil, errors.New("theme registry is required")
	case opts.Active == nil:
		return nil, errors.New("active pack source is required")
	case opts.Resources == nil:
		return nil, errors.New("resource colors are required")
	case opts.AppPrefs == nil:
		return nil, errors.New("app preference store is required")
	case opts.ThemePrefs == nil:
		return nil, errors.New("theme preference store is required")
	}
	return &Bridge{
		registry:   opts.Registry,
		active:     opts.Active,
		resources:  opts.Resources,
		appPrefs:   opts.AppPrefs,
		themePrefs: opts.ThemePrefs,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
	}, nil
}

// Registry returns the theme registry.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// ActiveKey returns the selected pack key.
func (b *Bridge) ActiveKey() string {
	return b.active.IconsPackPackageName()
}

// ActiveTheme returns the registered theme for the selected pack, if any.
// External icon packs have no descriptor.
func (b *Bridge) ActiveTheme() (*Descriptor, bool) {
	return b.registry.Get(b.ActiveKey())
}

// CurrentThemeColor returns the color the active theme assigns to pref, or
// the resource default when the theme has no palette.
func (b *Bridge) CurrentThemeColor(pref string) (argb.Color, error) {
	i, err := prefIndex(pref)
	if err != nil {
		return 0, err
	}
	d, _ := b.ActiveTheme()
	return themeColors(d, b.resources)[i], nil
}

// MustCurrentThemeColor is CurrentThemeColor for callers passing one of the
// fixed preference names. Any other name panics.
func (b *Bridge) MustCurrentThemeColor(pref string) argb.Color {
	c, err := b.CurrentThemeColor(pref)
	if err != nil {
		panic(err)
	}
	return c
}

// snapshotKey names the snapshot entry of pref for the active pack.
func (b *Bridge) snapshotKey(pref string) string {
	return snapshotKey(b.ActiveKey(), pref)
}

func snapshotKey(pack, pref string) string {
	return "theme_" + pack + "_" + pref
}

// ResetUserColors overwrites the live preferences with the active theme's
// colors and drops the active theme's snapshot.
func (b *Bridge) ResetUserColors(ctx context.Context) error {
	d, _ := b.ActiveTheme()
	colors := themeColors(d, b.resources)

	appEdit := b.appPrefs.Edit()
	themeEdit := b.themePrefs.Edit()
	for i, p := range colorPrefs {
		appEdit.PutInt(p.name, int64(colors[i]))
		themeEdit.Remove(b.snapshotKey(p.name))
	}

	err := errors.Join(appEdit.Apply(ctx), themeEdit.Apply(ctx))
	if err != nil {
		return fmt.Errorf("reset user colors: %w", err)
	}
	b.logger.Debug().Str("theme", b.ActiveKey()).Msg("user colors reset")
	b.record(ctx, ActionReset)
	return nil
}

// SaveUserColors copies the live preferences into the active theme's
// snapshot. Unset preferences are saved as the theme color.
func (b *Bridge) SaveUserColors(ctx context.Context) error {
	d, _ := b.ActiveTheme()
	colors := themeColors(d, b.resources)

	themeEdit := b.themePrefs.Edit()
	for i, p := range colorPrefs {
		v, err := b.appPrefs.GetInt(ctx, p.name, int64(colors[i]))
		if err != nil {
			return fmt.Errorf("read %s: %w", p.name, err)
		}
		themeEdit.PutInt(b.snapshotKey(p.name), v)
	}

	if err := themeEdit.Apply(ctx); err != nil {
		return fmt.Errorf("save user colors: %w", err)
	}
	b.logger.Debug().Str("theme", b.ActiveKey()).Msg("user colors saved")
	b.record(ctx, ActionSaved)
	return nil
}

// RestoreUserColors copies the active theme's snapshot into the live
// preferences, using theme colors for missing entries. It reports whether a
// snapshot existed, judged by the first tracked preference.
func (b *Bridge) RestoreUserColors(ctx context.Context) (bool, error) {
	d, _ := b.ActiveTheme()
	colors := themeColors(d, b.resources)

	appEdit := b.appPrefs.Edit()
	for i, p := range colorPrefs {
		v, err := b.themePrefs.GetInt(ctx, b.snapshotKey(p.name), int64(colors[i]))
		if err != nil {
			return false, fmt.Errorf("read snapshot %s: %w", p.name, err)
		}
		appEdit.PutInt(p.name, v)
	}
	if err := appEdit.Apply(ctx); err != nil {
		return false, fmt.Errorf("restore user colors: %w", err)
	}

	existed, err := b.themePrefs.Contains(ctx, b.snapshotKey(colorPrefs[0].name))
	if err != nil {
		return false, fmt.Errorf("check snapshot: %w", err)
	}
	b.logger.Debug().Str("theme", b.ActiveKey()).Bool("snapshot", existed).Msg("user colors restored")
	b.record(ctx, ActionRestored)
	return existed, nil
}

// ApplyTheme writes d's palette, or the resource defaults when d has none,
// into the live preferences.
func (b *Bridge) ApplyTheme(ctx context.Context, d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("apply theme: %w", ErrThemeNotFound)
	}
	colors := themeColors(d, b.resources)

	appEdit := b.appPrefs.Edit()
	for i, p := range colorPrefs {
		appEdit.PutInt(p.name, int64(colors[i]))
	}
	if err := appEdit.Apply(ctx); err != nil {
		return fmt.Errorf("apply theme %s: %w", d.key, err)
	}
	b.logger.Info().Str("theme", d.key).Bool("palette", d.HasColors()).Msg("theme applied")
	b.recordFor(ctx, ActionApplied, d.key)
	return nil
}

// SwitchTheme moves the user to the pack key: the outgoing theme's colors
// are saved, the pack is selected, and the incoming theme's snapshot is
// restored. Without a snapshot the incoming palette is applied instead. The
// result reports whether a snapshot was restored.
func (b *Bridge) SwitchTheme(ctx context.Context, setter PackSetter, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("switch theme: %w: empty key", ErrThemeNotFound)
	}
	from := b.ActiveKey()

	if err := b.SaveUserColors(ctx); err != nil {
		return false, err
	}
	if err := setter.SetIconsPack(ctx, key); err != nil {
		return false, fmt.Errorf("select pack %s: %w", key, err)
	}

	restored, err := b.RestoreUserColors(ctx)
	if err != nil {
		return false, err
	}
	if !restored {
		d, ok := b.registry.Get(key)
		if !ok {
			// External packs carry no palette.
			d = NewDefault(key, key)
		}
		if err := b.ApplyTheme(ctx, d); err != nil {
			return false, err
		}
	}

	b.logger.Info().Str("from", from).Str("to", key).Bool("restored", restored).Msg("theme switched")
	b.recordFor(ctx, ActionSwitched, key)
	return restored, nil
}

// ColorValue is one live color preference.
type ColorValue struct {
	Pref  string     `json:"pref"`
	Slot  Slot       `json:"slot"`
	Color argb.Color `json:"color"`

	// Custom is true when the live value differs from the theme color.
	Custom bool `json:"custom"`
}

// Snapshot returns the live values of the tracked preferences.
func (b *Bridge) Snapshot(ctx context.Context) ([]ColorValue, error) {
	d, _ := b.ActiveTheme()
	colors := themeColors(d, b.resources)

	out := make([]ColorValue, 0, len(colorPrefs))
	for i, p := range colorPrefs {
		v, err := b.appPrefs.GetInt(ctx, p.name, int64(colors[i]))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.name, err)
		}
		c := argb.Color(uint32(v))
		out = append(out, ColorValue{Pref: p.name, Slot: p.slot, Color: c, Custom: c != colors[i]})
	}
	return out, nil
}

// SetUserColor stores a user override for one tracked preference.
func (b *Bridge) SetUserColor(ctx context.Context, pref string, c argb.Color) error {
	if _, err := prefIndex(pref); err != nil {
		return err
	}
	if err := b.appPrefs.Edit().PutInt(pref, int64(c)).Apply(ctx); err != nil {
		return fmt.Errorf("set %s: %w", pref, err)
	}
	b.record(ctx, ActionColorSet)
	return nil
}

func (b *Bridge) record(ctx context.Context, action Action) {
	b.recordFor(ctx, action, b.ActiveKey())
}

func (b *Bridge) recordFor(ctx context.Context, action Action, key string) {
	if b.recorder == nil {
		return
	}
	if err := b.recorder.Record(ctx, action, key); err != nil {
		b.logger.Warn().Err(err).Str("action", string(action)).Msg("failed to record theme event")
	}
}
