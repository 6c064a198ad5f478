// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook loads Jupyter notebooks, rewrites the text of their
// markdown cells line by line, and serializes them back.
//
// Only the "source" of markdown cells is ever modified. Every other field of
// the notebook and of each cell is carried as raw JSON and written back with
// the same value. Output is indented with two spaces, keys are sorted (the
// form Jupyter itself writes), and non-ASCII text is written literally.
package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	cellsKey    = "cells"
	cellTypeKey = "cell_type"
	sourceKey   = "source"

	// MarkdownType is the cell_type whose source is translated.
	MarkdownType = "markdown"
)

var (
	// ErrNotObject is returned when the document's top level is not a JSON object.
	ErrNotObject = errors.New("notebook is not a JSON object")
	// ErrCellsNotArray is returned when "cells" is present but is not an array.
	ErrCellsNotArray = errors.New(`notebook "cells" is not an array`)
	// ErrCellNotObject is returned when an entry of "cells" is not a JSON object.
	ErrCellNotObject = errors.New("cell is not a JSON object")
	// ErrInvalidUTF8 is returned when the document is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("notebook is not valid UTF-8")
)

// LineTransformer rewrites a single line of markdown text.
type LineTransformer interface {
	Line(line string) string
}

// Body is the resolved shape of a cell's "source" value. It is one of
// LinesBody, BlobBody, or RawBody.
type Body interface {
	isBody()
}

// Line is one entry of a LinesBody. Entries that are not JSON strings keep
// their raw value in Raw and are passed through untouched.
type Line struct {
	Text string
	Raw  json.RawMessage
}

// IsText reports whether the entry is a string.
func (l Line) IsText() bool {
	return l.Raw == nil
}

// LinesBody is a source stored as an array of lines.
type LinesBody []Line

// BlobBody is a source stored as a single string.
type BlobBody string

// RawBody is a source of any other JSON type. It is never modified.
type RawBody json.RawMessage

func (LinesBody) isBody() {}
func (BlobBody) isBody()  {}
func (RawBody) isBody()   {}

// Cell is one notebook cell.
type Cell struct {
	// Type is the cell_type value, or "" when absent or not a string.
	Type string
	// Body is the resolved source, or nil when the cell has no source.
	Body Body

	fields map[string]json.RawMessage
}

// IsMarkdown reports whether the cell's source is subject to translation.
func (c *Cell) IsMarkdown() bool {
	return c.Type == MarkdownType
}

// Notebook is a parsed notebook document.
type Notebook struct {
	Cells []*Cell

	fields   map[string]json.RawMessage
	hasCells bool
}

// Parse decodes a notebook. A document without "cells" is valid and has no
// cells; it is written back without adding the key.
func Parse(data []byte) (*Notebook, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	fields, err := decodeObject(data)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		return nil, fmt.Errorf("decoding notebook: %w", err)
	}
	if fields == nil {
		return nil, ErrNotObject
	}

	nb := &Notebook{fields: fields}
	rawCells, ok := fields[cellsKey]
	if !ok {
		return nb, nil
	}
	delete(fields, cellsKey)
	nb.hasCells = true

	var entries []json.RawMessage
	if isNull(rawCells) {
		return nil, ErrCellsNotArray
	}
	if err := json.Unmarshal(rawCells, &entries); err != nil {
		return nil, ErrCellsNotArray
	}

	nb.Cells = make([]*Cell, 0, len(entries))
	for i, raw := range entries {
		c, err := parseCell(raw)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		nb.Cells = append(nb.Cells, c)
	}
	return nb, nil
}

func parseCell(raw json.RawMessage) (*Cell, error) {
	fields, err := decodeObject(raw)
	if err != nil || fields == nil {
		return nil, ErrCellNotObject
	}

	c := &Cell{fields: fields}
	if rawType, ok := fields[cellTypeKey]; ok {
		// A non-string cell_type is kept verbatim and never matches markdown.
		var typ string
		if json.Unmarshal(rawType, &typ) == nil {
			c.Type = typ
		}
	}
	if rawSource, ok := fields[sourceKey]; ok {
		c.Body = resolveBody(rawSource)
	}
	return c, nil
}

// resolveBody picks the Body variant for a raw source value once, so later
// stages never inspect the JSON again.
func resolveBody(raw json.RawMessage) Body {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return RawBody(raw)
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return RawBody(raw)
		}
		return BlobBody(s)
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return RawBody(raw)
		}
		lines := make(LinesBody, len(entries))
		for i, e := range entries {
			var s string
			if bytes.HasPrefix(bytes.TrimSpace(e), []byte(`"`)) && json.Unmarshal(e, &s) == nil {
				lines[i] = Line{Text: s}
			} else {
				lines[i] = Line{Raw: e}
			}
		}
		return lines
	default:
		return RawBody(raw)
	}
}

// Translate passes the text of every markdown cell through tr and returns the
// number of markdown cells visited. Line bodies are transformed entry by
// entry with non-text entries kept in place; a blob body is transformed as a
// single line. Other cells are untouched.
func (nb *Notebook) Translate(tr LineTransformer) int {
	visited := 0
	for _, c := range nb.Cells {
		if !c.IsMarkdown() {
			continue
		}
		visited++
		switch body := c.Body.(type) {
		case LinesBody:
			out := make(LinesBody, len(body))
			for i, l := range body {
				if l.IsText() {
					out[i] = Line{Text: tr.Line(l.Text)}
				} else {
					out[i] = l
				}
			}
			c.Body = out
		case BlobBody:
			c.Body = BlobBody(tr.Line(string(body)))
		}
	}
	return visited
}

// Marshal serializes the notebook.
func (nb *Notebook) Marshal() ([]byte, error) {
	doc := make(map[string]any, len(nb.fields)+1)
	for k, v := range nb.fields {
		doc[k] = v
	}
	if nb.hasCells {
		cells := make([]any, len(nb.Cells))
		for i, c := range nb.Cells {
			cells[i] = c.value()
		}
		doc[cellsKey] = cells
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Cell) value() map[string]any {
	m := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		m[k] = v
	}
	if c.Body != nil {
		m[sourceKey] = bodyValue(c.Body)
	}
	return m
}

func bodyValue(b Body) any {
	switch body := b.(type) {
	case LinesBody:
		out := make([]any, len(body))
		for i, l := range body {
			if l.IsText() {
				out[i] = l.Text
			} else {
				out[i] = l.Raw
			}
		}
		return out
	case BlobBody:
		return string(body)
	case RawBody:
		return json.RawMessage(body)
	}
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
