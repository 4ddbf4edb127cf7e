package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/db"
	"github.com/launchtime/launchtheme/internal/events"
	"github.com/launchtime/launchtheme/internal/icons"
	"github.com/launchtime/launchtheme/internal/logging"
	"github.com/launchtime/launchtheme/internal/packs"
	"github.com/launchtime/launchtheme/internal/prefs"
	"github.com/launchtime/launchtheme/internal/theme"
)

// defaultThemeName labels the passthrough theme.
const defaultThemeName = "Default"

// app holds the services a command works with.
type app struct {
	db        *db.DB
	prefRepo  *db.PreferenceRepository
	eventRepo *db.EventRepository
	icons     *icons.Handler
	registry  *theme.Registry
	resources theme.StaticResources
	bridge    *theme.Bridge
}

// openApp opens the database and wires the theme bridge. Events recorded by
// the bridge carry the invoking command path.
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := GetConfig()

	colors, err := cfg.ResourceColors()
	if err != nil {
		return nil, err
	}
	resources := theme.StaticResources(colors)

	registry, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	database, err := openDatabase()
	if err != nil {
		return nil, err
	}

	prefRepo := db.NewPreferenceRepository(database)
	eventRepo := db.NewEventRepository(database)
	appPrefs := prefRepo.Store(prefs.NamespaceApp)

	handler, err := icons.NewHandler(ctx, icons.Options{
		Store:       appPrefs,
		DefaultPack: cfg.Icons.Pack,
		Size:        cfg.Icons.Size,
		Cache:       cfg.Icons.Cache,
		Logger:      logging.Component("icons"),
	})
	if err != nil {
		database.Close()
		return nil, err
	}

	recorder := events.NewRecorder(eventRepo)
	recorder.Metadata = map[string]string{"command": cmd.CommandPath()}

	bridge, err := theme.NewBridge(theme.BridgeOptions{
		Registry:   registry,
		Active:     handler,
		Resources:  resources,
		AppPrefs:   appPrefs,
		ThemePrefs: prefRepo.Store(prefs.NamespaceTheme),
		Recorder:   recorder,
		Logger:     logging.Component("theme"),
	})
	if err != nil {
		database.Close()
		return nil, err
	}

	return &app{
		db:        database,
		prefRepo:  prefRepo,
		eventRepo: eventRepo,
		icons:     handler,
		registry:  registry,
		resources: resources,
		bridge:    bridge,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// loadRegistry registers the built-in themes and every theme pack found on
// the search path.
func loadRegistry() (*theme.Registry, error) {
	found, err := packs.LoadFromSearchPaths(projectDir(), GetConfig().Themes.Dirs...)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme packs: %w", err)
	}
	return packs.BuildRegistry(defaultThemeName, found, logging.Component("packs"))
}

// findPack returns the pack that registered key, or nil for built-in themes.
// A pack shadowing a built-in key is never registered, so it is not reported.
func findPack(key string) (*packs.Pack, error) {
	if theme.MustRegistry(defaultThemeName).IsBuiltin(key) {
		return nil, nil
	}
	pack, err := packs.FindPack(projectDir(), key, GetConfig().Themes.Dirs...)
	if errors.Is(err, packs.ErrPackNotFound) {
		return nil, nil
	}
	return pack, err
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}

// descriptorFor returns the registered theme for key. Unregistered keys are
// external icon packs and map to a passthrough theme.
func (a *app) descriptorFor(key string) (*theme.Descriptor, bool) {
	if d, ok := a.registry.Get(key); ok {
		return d, true
	}
	return theme.NewDefault(key, key), false
}
