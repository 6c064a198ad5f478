// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform applies a phrase table to single lines of markdown text.
// Code fence markers and lines carrying URLs are passed through unchanged.
package transform

import (
	"strings"

	"github.com/pdiddy/nbtranslate/internal/phrase"
)

// urlToken marks a line as carrying a link. The check is a case-sensitive
// substring match anywhere in the line.
const urlToken = "http"

// fenceMarkers open or close a fenced code block.
var fenceMarkers = []string{"```", "~~~"}

// Transformer rewrites lines with a fixed phrase table. It holds no mutable
// state and is safe to reuse.
type Transformer struct {
	table *phrase.Table
}

// New returns a Transformer over table.
func New(table *phrase.Table) *Transformer {
	return &Transformer{table: table}
}

// Line returns line with every phrase substituted, or line itself when it is
// a fence marker or contains a URL.
func (t *Transformer) Line(line string) string {
	if IsFence(line) || HasURL(line) {
		return line
	}
	return t.table.Apply(line)
}

// IsFence reports whether the trimmed line starts with a code fence marker.
func IsFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, m := range fenceMarkers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

// HasURL reports whether line contains a URL scheme token.
func HasURL(line string) bool {
	return strings.Contains(line, urlToken)
}
