package theme

import "errors"

var (
	// ErrInvalidPreference is returned for a preference name outside the
	// fixed color table. It signals a programming error.
	ErrInvalidPreference = errors.New("no such preference")
	// ErrThemeNotFound is returned when a theme key is not registered.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrInvalidDescriptor is returned for descriptors missing a key or name,
	// or carrying an unusable palette.
	ErrInvalidDescriptor = errors.New("invalid theme descriptor")
	// ErrDuplicateTheme is returned when two descriptors share a key.
	ErrDuplicateTheme = errors.New("duplicate theme key")
)
