//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Translate builds the CLI and translates the tree at $NBTRANSLATE_ROOT_DIR
// (default: the working directory).
func Translate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "translate", rootDir())
}

// Preview builds the CLI and lists what Translate would do without writing files.
func Preview() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "translate", "--dry-run", rootDir())
}

// Phrases writes the built-in phrase table to phrases.yaml as a starting
// point for a custom table.
func Phrases() error {
	mg.Deps(Build)
	out, err := sh.Output(filepath.Join(binDir, binName), "phrases", "--yaml")
	if err != nil {
		return err
	}
	return os.WriteFile("phrases.yaml", []byte(out+"\n"), 0o644)
}

func rootDir() string {
	if dir := os.Getenv("NBTRANSLATE_ROOT_DIR"); dir != "" {
		return dir
	}
	return "."
}
