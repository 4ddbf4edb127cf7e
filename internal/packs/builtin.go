package packs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinPacks returns the theme packs bundled with launchtheme.
func LoadBuiltinPacks() ([]*Pack, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin theme packs: %w", err)
	}

	packs := make([]*Pack, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin theme pack %s: %w", entry.Name(), err)
		}
		pack, err := parsePack(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme pack %s: %w", entry.Name(), err)
		}
		pack.Source = "builtin"
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Key < packs[j].Key
	})

	return packs, nil
}
