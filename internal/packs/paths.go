package packs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/launchtime/launchtheme/internal/theme"
)

// SearchPaths returns theme pack directories in precedence order. extraDirs
// come first, then the project, user and system directories.
func SearchPaths(projectDir string, extraDirs ...string) []string {
	paths := make([]string, 0, len(extraDirs)+3)
	for _, dir := range extraDirs {
		if dir != "" {
			paths = append(paths, dir)
		}
	}

	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".launchtheme", "themes"))
	}

	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, "launchtheme", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "launchtheme", "themes"))
	return paths
}

// LoadFromDirs loads packs from dirs, then the builtin packs, with first-hit
// precedence by key.
func LoadFromDirs(dirs []string) ([]*Pack, error) {
	seen := make(map[string]*Pack)
	order := make([]string, 0)

	for _, dir := range dirs {
		packs, err := LoadPacksFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, pack := range packs {
			if _, exists := seen[pack.Key]; exists {
				continue
			}
			seen[pack.Key] = pack
			order = append(order, pack.Key)
		}
	}

	builtins, err := LoadBuiltinPacks()
	if err != nil {
		return nil, err
	}
	for _, pack := range builtins {
		if _, exists := seen[pack.Key]; exists {
			continue
		}
		seen[pack.Key] = pack
		order = append(order, pack.Key)
	}

	resolved := make([]*Pack, 0, len(order))
	for _, key := range order {
		resolved = append(resolved, seen[key])
	}
	return resolved, nil
}

// LoadFromSearchPaths loads packs from SearchPaths with first-hit precedence.
func LoadFromSearchPaths(projectDir string, extraDirs ...string) ([]*Pack, error) {
	return LoadFromDirs(SearchPaths(projectDir, extraDirs...))
}

// FindPack loads a specific pack by key.
func FindPack(projectDir, key string, extraDirs ...string) (*Pack, error) {
	packs, err := LoadFromSearchPaths(projectDir, extraDirs...)
	if err != nil {
		return nil, err
	}
	for _, pack := range packs {
		if pack.Key == key {
			return pack, nil
		}
	}
	return nil, ErrPackNotFound
}

// BuildRegistry registers packs after the built-in themes. Packs reusing a
// built-in key are skipped with a warning.
func BuildRegistry(defaultName string, packs []*Pack, logger zerolog.Logger) (*theme.Registry, error) {
	builtin := theme.MustRegistry(defaultName)

	extra := make([]*theme.Descriptor, 0, len(packs))
	for _, pack := range packs {
		if builtin.IsBuiltin(pack.Key) {
			logger.Warn().Str("pack", pack.Key).Str("source", pack.Source).Msg("theme pack shadows a built-in theme, skipping")
			continue
		}
		d, err := pack.ToDescriptor()
		if err != nil {
			return nil, fmt.Errorf("theme pack %s: %w", pack.Source, err)
		}
		extra = append(extra, d)
	}
	return theme.NewRegistry(defaultName, extra...)
}
