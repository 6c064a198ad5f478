// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notebook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nbtranslate/internal/phrase"
	"github.com/pdiddy/nbtranslate/internal/transform"
)

// upperTransformer upper-cases every line it is given and records the calls.
type upperTransformer struct {
	calls []string
}

func (u *upperTransformer) Line(line string) string {
	u.calls = append(u.calls, line)
	return strings.ToUpper(line)
}

const sampleNotebook = `{
  "cells": [
    {
      "cell_type": "markdown",
      "metadata": {},
      "source": ["# Welcome to the Tutorial\n", "See https://example.com/Tutorial\n", "` + "```" + `\n", "Data <b>&</b>"]
    },
    {
      "cell_type": "code",
      "execution_count": 1,
      "metadata": {"tags": ["Welcome"]},
      "outputs": [],
      "source": ["print('Welcome')\n"]
    },
    {
      "cell_type": "markdown",
      "metadata": {},
      "source": "Chapter 1: Overview"
    }
  ],
  "metadata": {"kernelspec": {"display_name": "Python 3", "name": "python3"}},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func TestParse(t *testing.T) {
	nb, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 3)

	assert.True(t, nb.Cells[0].IsMarkdown())
	assert.False(t, nb.Cells[1].IsMarkdown())
	assert.Equal(t, "code", nb.Cells[1].Type)

	lines, ok := nb.Cells[0].Body.(LinesBody)
	require.True(t, ok, "first cell body should be LinesBody, got %T", nb.Cells[0].Body)
	require.Len(t, lines, 4)
	assert.Equal(t, "# Welcome to the Tutorial\n", lines[0].Text)

	blob, ok := nb.Cells[2].Body.(BlobBody)
	require.True(t, ok, "third cell body should be BlobBody, got %T", nb.Cells[2].Body)
	assert.Equal(t, BlobBody("Chapter 1: Overview"), blob)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		errMsg  string
	}{
		{name: "top-level array", input: `[]`, wantErr: ErrNotObject},
		{name: "top-level null", input: `null`, wantErr: ErrNotObject},
		{name: "top-level string", input: `"nb"`, wantErr: ErrNotObject},
		{name: "syntax error", input: `{"cells": [`, errMsg: "decoding notebook"},
		{name: "empty file", input: ``, errMsg: "decoding notebook"},
		{name: "invalid utf-8", input: "{\"cells\": [{\"cell_type\": \"markdown\", \"source\": [\"Welcome \xff\xfe end\"]}]}", wantErr: ErrInvalidUTF8},
		{name: "cells is object", input: `{"cells": {}}`, wantErr: ErrCellsNotArray},
		{name: "cells is null", input: `{"cells": null}`, wantErr: ErrCellsNotArray},
		{name: "cell is string", input: `{"cells": ["x"]}`, wantErr: ErrCellNotObject, errMsg: "cell 0"},
		{name: "second cell is null", input: `{"cells": [{}, null]}`, wantErr: ErrCellNotObject, errMsg: "cell 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestParseWithoutCells(t *testing.T) {
	nb, err := Parse([]byte(`{"nbformat": 4}`))
	require.NoError(t, err)
	assert.Empty(t, nb.Cells)

	out, err := nb.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"nbformat": 4}`, string(out))
	assert.NotContains(t, string(out), "cells")
}

func TestResolveBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Body
	}{
		{"lines", `["a\n", "b"]`, LinesBody{{Text: "a\n"}, {Text: "b"}}},
		{"mixed lines", `["a", 7, null]`, LinesBody{{Text: "a"}, {Raw: json.RawMessage(`7`)}, {Raw: json.RawMessage(`null`)}}},
		{"empty lines", `[]`, LinesBody{}},
		{"blob", `"text"`, BlobBody("text")},
		{"null", `null`, RawBody(`null`)},
		{"number", `42`, RawBody(`42`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveBody(json.RawMessage(tt.raw)))
		})
	}
}

func TestTranslate(t *testing.T) {
	nb, err := Parse([]byte(`{"cells": [
		{"cell_type": "markdown", "source": ["one\n", 2, "three"]},
		{"cell_type": "code", "source": ["code"]},
		{"cell_type": "markdown", "source": "blob"},
		{"cell_type": "markdown", "source": null},
		{"cell_type": "markdown"},
		{"cell_type": ["markdown"], "source": ["odd type"]}
	]}`))
	require.NoError(t, err)

	tr := &upperTransformer{}
	visited := nb.Translate(tr)

	assert.Equal(t, 4, visited)
	assert.Equal(t, []string{"one\n", "three", "blob"}, tr.calls)

	assert.Equal(t, LinesBody{{Text: "ONE\n"}, {Raw: json.RawMessage(`2`)}, {Text: "THREE"}}, nb.Cells[0].Body)
	assert.Equal(t, LinesBody{{Text: "code"}}, nb.Cells[1].Body)
	assert.Equal(t, BlobBody("BLOB"), nb.Cells[2].Body)
	assert.Equal(t, RawBody(`null`), nb.Cells[3].Body)
	assert.Nil(t, nb.Cells[4].Body)
	assert.Equal(t, LinesBody{{Text: "odd type"}}, nb.Cells[5].Body)

	out, err := nb.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"cells": [
		{"cell_type": "markdown", "source": ["ONE\n", 2, "THREE"]},
		{"cell_type": "code", "source": ["code"]},
		{"cell_type": "markdown", "source": "BLOB"},
		{"cell_type": "markdown", "source": null},
		{"cell_type": "markdown"},
		{"cell_type": ["markdown"], "source": ["odd type"]}
	]}`, string(out))
}

func TestMarshalWithoutMarkdownIsValueIdentical(t *testing.T) {
	input := `{
		"cells": [
			{"cell_type": "code", "execution_count": 3, "metadata": {"collapsed": false},
			 "outputs": [{"output_type": "stream", "name": "stdout", "text": ["Welcome\n"]}],
			 "source": ["x = 1  # Welcome <b>\n", "print(x)"]},
			{"cell_type": "raw", "metadata": {}, "source": "Tutorial"}
		],
		"metadata": {"language_info": {"name": "python", "version": "3.11.4"}},
		"nbformat": 4,
		"nbformat_minor": 5
	}`

	nb, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, 0, nb.Translate(transform.New(phrase.Default())))

	out, err := nb.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestMarshalFormatting(t *testing.T) {
	nb, err := Parse([]byte(`{"cells":[{"cell_type":"markdown","source":["Welcome <a> & b"]}],"z":{"n":12345678901234567890}}`))
	require.NoError(t, err)
	nb.Translate(transform.New(phrase.Default()))

	out, err := nb.Marshal()
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "欢迎 <a> & b", "non-ASCII and HTML characters should be written literally")
	assert.NotContains(t, s, `\u`)
	assert.Contains(t, s, "\n  \"cells\": [", "output should use two-space indentation")
	assert.Contains(t, s, "12345678901234567890", "numbers should keep their original text")
	assert.True(t, strings.HasSuffix(s, "}\n"))
	assert.Less(t, strings.Index(s, `"cells"`), strings.Index(s, `"z"`), "keys should be sorted")
}

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "0.0_Welcome.ipynb")
	out := filepath.Join(dir, "0.0_Welcome_cn.ipynb")
	require.NoError(t, os.WriteFile(in, []byte(sampleNotebook), 0o644))

	require.NoError(t, TranslateFile(transform.New(phrase.Default()), in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got struct {
		Cells []struct {
			CellType string          `json:"cell_type"`
			Source   json.RawMessage `json:"source"`
		} `json:"cells"`
		Metadata json.RawMessage `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Cells, 3)

	var first []string
	require.NoError(t, json.Unmarshal(got.Cells[0].Source, &first))
	assert.Equal(t, []string{
		"# 欢迎 to the 教程\n",
		"See https://example.com/Tutorial\n",
		"```\n",
		"数据 <b>&</b>",
	}, first)

	assert.JSONEq(t, `["print('Welcome')\n"]`, string(got.Cells[1].Source))
	assert.JSONEq(t, `"章节 1: 概述"`, string(got.Cells[2].Source))
	assert.JSONEq(t, `{"kernelspec": {"display_name": "Python 3", "name": "python3"}}`, string(got.Metadata))

	// Input is untouched.
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, sampleNotebook, string(orig))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(outputPerm), info.Mode().Perm())
}

func TestTranslateFileFailures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T, dir string) (in, out string)
		errMsg string
	}{
		{
			name: "missing input",
			setup: func(t *testing.T, dir string) (string, string) {
				return filepath.Join(dir, "missing.ipynb"), filepath.Join(dir, "missing_cn.ipynb")
			},
			errMsg: "reading notebook",
		},
		{
			name: "malformed input",
			setup: func(t *testing.T, dir string) (string, string) {
				in := filepath.Join(dir, "bad.ipynb")
				require.NoError(t, os.WriteFile(in, []byte(`{"cells": [`), 0o644))
				return in, filepath.Join(dir, "bad_cn.ipynb")
			},
			errMsg: "parsing notebook",
		},
		{
			name: "invalid utf-8 input",
			setup: func(t *testing.T, dir string) (string, string) {
				in := filepath.Join(dir, "latin1.ipynb")
				body := []byte("{\"cells\": [{\"cell_type\": \"markdown\", \"source\": [\"Welcome \xff\xfe end\"]}]}")
				require.NoError(t, os.WriteFile(in, body, 0o644))
				return in, filepath.Join(dir, "latin1_cn.ipynb")
			},
			errMsg: "not valid UTF-8",
		},
		{
			name: "output directory missing",
			setup: func(t *testing.T, dir string) (string, string) {
				in := filepath.Join(dir, "ok.ipynb")
				require.NoError(t, os.WriteFile(in, []byte(`{"cells": []}`), 0o644))
				return in, filepath.Join(dir, "gone", "ok_cn.ipynb")
			},
			errMsg: "writing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in, out := tt.setup(t, dir)

			err := TranslateFile(transform.New(phrase.Default()), in, out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "no output should be left behind")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			for _, e := range entries {
				assert.False(t, strings.HasPrefix(e.Name(), ".nbtranslate-"), "temp file %s left behind", e.Name())
			}
		})
	}
}
