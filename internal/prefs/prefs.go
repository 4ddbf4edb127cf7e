// Package prefs defines the key/value preference stores the launcher reads
// and writes colors through.
package prefs

import "context"

// Logical store names.
const (
	// NamespaceApp holds the live application preferences.
	NamespaceApp = "app"
	// NamespaceTheme holds per-theme snapshots of user colors.
	NamespaceTheme = "theme"
)

// Store is a key/value preference store. Reads return def when a key is
// absent. Writes go through an Editor and become visible on Apply.
type Store interface {
	GetInt(ctx context.Context, key string, def int64) (int64, error)
	GetString(ctx context.Context, key string, def string) (string, error)
	Contains(ctx context.Context, key string) (bool, error)
	Edit() Editor
}

// Editor stages changes for one edit session. Apply commits every staged put
// and remove together; removes staged after a put of the same key win, and
// vice versa.
type Editor interface {
	PutInt(key string, value int64) Editor
	PutString(key string, value string) Editor
	Remove(key string) Editor
	Apply(ctx context.Context) error
}

// Change is a single staged edit.
type Change struct {
	Key    string
	Remove bool
	Int    *int64
	String *string
}

// Changes accumulates staged edits in order, keeping only the last edit per
// key. Store implementations embed it in their editors.
type Changes struct {
	order []string
	byKey map[string]Change
}

func (c *Changes) stage(change Change) {
	if c.byKey == nil {
		c.byKey = make(map[string]Change)
	}
	if _, ok := c.byKey[change.Key]; !ok {
		c.order = append(c.order, change.Key)
	}
	c.byKey[change.Key] = change
}

// StageInt records an int put.
func (c *Changes) StageInt(key string, value int64) {
	c.stage(Change{Key: key, Int: &value})
}

// StageString records a string put.
func (c *Changes) StageString(key string, value string) {
	c.stage(Change{Key: key, String: &value})
}

// StageRemove records a remove.
func (c *Changes) StageRemove(key string) {
	c.stage(Change{Key: key, Remove: true})
}

// List returns staged edits in first-staged order.
func (c *Changes) List() []Change {
	out := make([]Change, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// Reset drops all staged edits.
func (c *Changes) Reset() {
	c.order = nil
	c.byKey = nil
}
