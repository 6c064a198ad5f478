// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan finds candidate notebooks under a root directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/nbtranslate/pkg/types"
)

// ErrNotDir is returned when the scan root is not a directory.
var ErrNotDir = errors.New("not a directory")

// Scan walks root and returns the paths of files ending in cfg.Extension
// whose name does not contain cfg.Marker. A directory below root whose path
// relative to root contains the marker or any cfg.Exclude token is pruned:
// nothing beneath it is visited.
//
// Paths are returned in walk order. A missing or unreadable root is returned
// as an error; an unreadable entry below root is skipped with a warning on
// stderr.
func Scan(root string, cfg types.ScanConfig) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: %w", root, ErrNotDir)
	}

	ext := cfg.Extension
	if ext == "" {
		ext = types.DefaultExtension
	}
	tokens := excludeTokens(cfg)

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if containsAny(rel, tokens) {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, ext) {
			return nil
		}
		if cfg.Marker != "" && strings.Contains(name, cfg.Marker) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return paths, nil
}

func excludeTokens(cfg types.ScanConfig) []string {
	tokens := make([]string, 0, len(cfg.Exclude)+1)
	if cfg.Marker != "" {
		tokens = append(tokens, cfg.Marker)
	}
	for _, t := range cfg.Exclude {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
