// Package icons resolves application icons and tracks the selected icon pack.
package icons

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/launchtime/launchtheme/internal/icon"
	"github.com/launchtime/launchtheme/internal/prefs"
	"github.com/launchtime/launchtheme/internal/theme"
)

// KeyIconsPack is the app preference holding the selected pack.
const KeyIconsPack = "icons-pack"

// DefaultSize is the placeholder edge length when none is configured.
const DefaultSize = 96

// Options configures a Handler.
type Options struct {
	// Store is the app preference store the selected pack lives in.
	Store prefs.Store

	// DefaultPack is reported until a pack has been stored.
	DefaultPack string

	// Size is the edge length of placeholder icons.
	Size int

	// Cache keeps resolved drawables for the life of the handler.
	Cache bool

	Logger zerolog.Logger
}

// Handler resolves source icons and the active pack. It is safe for
// concurrent use.
type Handler struct {
	store  prefs.Store
	size   int
	cache  bool
	logger zerolog.Logger

	mu       sync.Mutex
	pack     string
	drawable map[string]*icon.Drawable
}

var (
	_ theme.IconResolver = (*Handler)(nil)
	_ theme.ActivePack   = (*Handler)(nil)
	_ theme.PackSetter   = (*Handler)(nil)
)

// NewHandler reads the stored pack selection and returns a Handler.
func NewHandler(ctx context.Context, opts Options) (*Handler, error) {
	if opts.Store == nil {
		return nil, errors.New("icons: preference store is required")
	}
	defaultPack := opts.DefaultPack
	if defaultPack == "" {
		defaultPack = theme.DefaultPack
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	pack, err := opts.Store.GetString(ctx, KeyIconsPack, defaultPack)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyIconsPack, err)
	}

	return &Handler{
		store:    opts.Store,
		size:     size,
		cache:    opts.Cache,
		logger:   opts.Logger,
		pack:     pack,
		drawable: make(map[string]*icon.Drawable),
	}, nil
}

// IconsPackPackageName returns the selected pack key.
func (h *Handler) IconsPackPackageName() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pack
}

// SetIconsPack persists key as the selected pack.
func (h *Handler) SetIconsPack(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("icons: pack key is required")
	}
	if err := h.store.Edit().PutString(KeyIconsPack, key).Apply(ctx); err != nil {
		return fmt.Errorf("store %s: %w", KeyIconsPack, err)
	}

	h.mu.Lock()
	h.pack = key
	h.mu.Unlock()
	h.logger.Debug().Str("pack", key).Msg("icon pack selected")
	return nil
}

// DefaultAppDrawable returns the untransformed icon of component. uri may be
// a file path or a file:// URI; when it is empty or unreadable a placeholder
// is drawn. Cached drawables are shared, so callers must Mutate before
// changing them.
func (h *Handler) DefaultAppDrawable(component icon.ComponentName, uri string) (*icon.Drawable, error) {
	if component.Package == "" {
		return nil, errors.New("icons: component package is required")
	}
	key := component.String() + "|" + uri

	if h.cache {
		h.mu.Lock()
		d, ok := h.drawable[key]
		h.mu.Unlock()
		if ok {
			return d, nil
		}
	}

	d, err := h.load(uri)
	if err != nil {
		h.logger.Debug().Err(err).Str("component", component.String()).Msg("using placeholder icon")
		d = icon.NewDrawable(Placeholder(component.Package, h.size))
	}

	if h.cache {
		h.mu.Lock()
		if cached, ok := h.drawable[key]; ok {
			d = cached
		} else {
			h.drawable[key] = d
		}
		h.mu.Unlock()
	}
	return d, nil
}

func (h *Handler) load(uri string) (*icon.Drawable, error) {
	path, err := iconPath(uri)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return icon.Decode(f)
}

func iconPath(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", errors.New("no icon uri")
	}
	if !strings.Contains(uri, "://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse icon uri: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported icon uri scheme %q", u.Scheme)
	}
	return u.Path, nil
}
