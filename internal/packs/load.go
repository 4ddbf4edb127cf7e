package packs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPack reads a single theme pack from disk.
func LoadPack(path string) (*Pack, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme pack path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme pack %s: %w", path, err)
	}

	pack, err := parsePack(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme pack %s: %w", path, err)
	}
	pack.Source = path
	return pack, nil
}

// LoadPacksFromDir loads all theme packs from a directory. A missing
// directory yields no packs.
func LoadPacksFromDir(dir string) ([]*Pack, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Pack{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Pack{}, nil
		}
		return nil, fmt.Errorf("read theme packs dir %s: %w", dir, err)
	}

	packs := make([]*Pack, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		pack, err := LoadPack(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Key < packs[j].Key
	})

	return packs, nil
}

func parsePack(data []byte) (*Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, err
	}

	pack.Key = strings.TrimSpace(pack.Key)
	if err := pack.Validate(); err != nil {
		return nil, err
	}

	return &pack, nil
}
