// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phrase holds the ordered source-to-target substitution table used
// to translate notebook markdown. A Table is built once, either from the
// built-in defaults or from a phrase file, and is read-only afterwards.
//
// Order is part of the table's behavior: entries are applied in definition
// order, so an earlier entry can consume text a later entry would have matched.
package phrase

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrEmptySource is returned when a phrase file has an entry with no source text.
	ErrEmptySource = errors.New("phrase has empty source")
	// ErrEmptyTable is returned when a phrase file defines no entries.
	ErrEmptyTable = errors.New("phrase file defines no phrases")
	// ErrUnknownFormat is returned for phrase files with an unsupported extension.
	ErrUnknownFormat = errors.New("unsupported phrase file format")
)

// Phrase is one literal substitution.
type Phrase struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// Table is an immutable, ordered list of phrases.
type Table struct {
	phrases []Phrase
}

// file is the on-disk shape shared by the YAML and TOML formats.
type file struct {
	Phrases []Phrase `yaml:"phrases" toml:"phrases"`
}

// New builds a table from phrases in the given order. The slice is copied.
func New(phrases ...Phrase) *Table {
	p := make([]Phrase, len(phrases))
	copy(p, phrases)
	return &Table{phrases: p}
}

// Default returns the built-in table.
func Default() *Table {
	return New(defaultPhrases...)
}

// Phrases returns a copy of the entries in application order.
func (t *Table) Phrases() []Phrase {
	p := make([]Phrase, len(t.phrases))
	copy(p, t.phrases)
	return p
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.phrases)
}

// Apply replaces every occurrence of each source with its target, entry by
// entry, on the running text.
func (t *Table) Apply(text string) string {
	for _, p := range t.phrases {
		text = strings.ReplaceAll(text, p.Source, p.Target)
	}
	return text
}

// Load reads a phrase file. The format is chosen by extension: .yaml and .yml
// are YAML, .toml is TOML. Both hold a "phrases" list of {source, target}.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading phrase file %s: %w", path, err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing YAML phrase file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing TOML phrase file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownFormat, ext, path)
	}

	if len(f.Phrases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}
	for i, p := range f.Phrases {
		if p.Source == "" {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, ErrEmptySource)
		}
	}
	return New(f.Phrases...), nil
}

// WriteYAML writes the table in the phrase file format accepted by Load.
func (t *Table) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(file{Phrases: t.phrases})
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
