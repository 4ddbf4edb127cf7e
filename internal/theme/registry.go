package theme

import "fmt"

// DefaultPack is the key of the passthrough theme.
const DefaultPack = "default"

// Registry is an ordered, read-only set of themes.
type Registry struct {
	order []*Descriptor
	byKey map[string]*Descriptor
}

// NewRegistry seeds the built-in themes, then appends extra descriptors such
// as user theme packs. defaultName labels the passthrough theme.
func NewRegistry(defaultName string, extra ...*Descriptor) (*Registry, error) {
	r := &Registry{byKey: make(map[string]*Descriptor)}

	for _, d := range builtinThemes(defaultName) {
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	for _, d := range extra {
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is NewRegistry for the built-in set, which always validates.
func MustRegistry(defaultName string) *Registry {
	r, err := NewRegistry(defaultName)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(d *Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, exists := r.byKey[d.key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTheme, d.key)
	}
	r.byKey[d.key] = d
	r.order = append(r.order, d)
	return nil
}

// Get returns the theme registered under key.
func (r *Registry) Get(key string) (*Descriptor, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// IsBuiltin reports whether key is registered, either as a built-in theme
// or as an extra descriptor such as a loaded pack.
func (r *Registry) IsBuiltin(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Themes returns the registered themes in registration order.
func (r *Registry) Themes() []*Descriptor {
	return append([]*Descriptor(nil), r.order...)
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	for i, d := range r.order {
		keys[i] = d.key
	}
	return keys
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.order)
}
