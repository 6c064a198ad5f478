// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate drives a batch run: it scans a tree for notebooks,
// derives a sibling output path for each, skips notebooks whose output
// already exists, translates the rest, and reports the tallies.
package translate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/nbtranslate/internal/notebook"
	"github.com/pdiddy/nbtranslate/internal/phrase"
	"github.com/pdiddy/nbtranslate/internal/report"
	"github.com/pdiddy/nbtranslate/internal/scan"
	"github.com/pdiddy/nbtranslate/internal/transform"
	"github.com/pdiddy/nbtranslate/pkg/types"
)

// Translator writes a translated copy of the notebook at inputPath to
// outputPath. NotebookTranslator is the production implementation; tests
// substitute fakes.
type Translator interface {
	Translate(inputPath, outputPath string) error
}

// NotebookTranslator translates notebook markdown cells with a phrase table.
type NotebookTranslator struct {
	tr *transform.Transformer
}

// NewNotebookTranslator returns a Translator over table.
func NewNotebookTranslator(table *phrase.Table) *NotebookTranslator {
	return &NotebookTranslator{tr: transform.New(table)}
}

// Translate implements Translator.
func (n *NotebookTranslator) Translate(inputPath, outputPath string) error {
	return notebook.TranslateFile(n.tr, inputPath, outputPath)
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Found      int      `json:"found"`
	Translated int      `json:"translated"`
	Skipped    int      `json:"skipped"`
	Failed     []string `json:"failed"`
}

// Total returns the number of notebooks processed.
func (r BatchResult) Total() int {
	return r.Translated + r.Skipped + len(r.Failed)
}

// HasFailures reports whether any notebook failed translation.
func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// OutputPath returns the sibling path for input with marker inserted before
// the extension: dir/0.0_Welcome.ipynb becomes dir/0.0_Welcome_cn.ipynb.
func OutputPath(input, marker string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), stem+marker+ext)
}

// TranslateFile translates a single notebook and prints one status line to w.
// If the output already exists the translator is not called and the outcome
// is skipped.
func TranslateFile(t Translator, input, marker string, w io.Writer) types.Outcome {
	out := types.Outcome{Input: input, Output: OutputPath(input, marker)}

	if _, err := os.Stat(out.Output); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", out.Output)
		out.Status = types.TranslationSkipped
		return out
	}

	if err := t.Translate(out.Input, out.Output); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", out.Input, err)
		out.Status = types.TranslationFailed
		out.Err = err
		return out
	}

	fmt.Fprintf(w, "translated: %s -> %s\n", out.Input, out.Output)
	out.Status = types.TranslationDone
	return out
}

// TranslateBatch processes inputs in order, printing per-file status to w and
// returning a summary. A failed notebook never stops the batch.
func TranslateBatch(t Translator, inputs []string, marker string, w io.Writer) BatchResult {
	result := BatchResult{Found: len(inputs)}
	fmt.Fprintf(w, "Found %d notebooks to translate\n", len(inputs))

	for _, in := range inputs {
		o := TranslateFile(t, in, marker, w)
		switch {
		case o.OK():
			result.Translated++
		case o.Status == types.TranslationSkipped:
			result.Skipped++
		default:
			result.Failed = append(result.Failed, o.Input)
		}
	}

	printSummary(w, result)
	return result
}

func printSummary(w io.Writer, result BatchResult) {
	fmt.Fprintf(w, "\nBatch summary: %d translated, %d skipped, %d failed (total: %d)\n",
		result.Translated, result.Skipped, len(result.Failed), result.Total())
	if result.HasFailures() {
		fmt.Fprintln(w, "\nFailed files:")
		for _, f := range result.Failed {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
}

// Plan reports what a run over inputs would do without writing anything.
// Each outcome is either skipped (output exists) or pending.
func Plan(inputs []string, marker string, w io.Writer) []types.Outcome {
	outcomes := make([]types.Outcome, 0, len(inputs))
	for _, in := range inputs {
		o := types.Outcome{Input: in, Output: OutputPath(in, marker), Status: types.TranslationPending}
		if _, err := os.Stat(o.Output); err == nil {
			o.Status = types.TranslationSkipped
			fmt.Fprintf(w, "would skip: %s (already exists)\n", o.Output)
		} else {
			fmt.Fprintf(w, "would translate: %s -> %s\n", o.Input, o.Output)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// Run scans cfg.RootDir, translates every candidate with t, and writes the
// report file under the root. A scan failure (missing or unreadable root)
// aborts the run before any notebook is touched. In a dry run nothing is
// written; the returned result counts found and skipped notebooks only.
func Run(cfg types.TranslateConfig, t Translator, w io.Writer) (BatchResult, error) {
	cfg = cfg.WithDefaults()

	inputs, err := scan.Scan(cfg.RootDir, cfg.ScanConfig)
	if err != nil {
		return BatchResult{}, err
	}

	if cfg.DryRun {
		result := BatchResult{Found: len(inputs)}
		for _, o := range Plan(inputs, cfg.Marker, w) {
			if o.Status == types.TranslationSkipped {
				result.Skipped++
			}
		}
		fmt.Fprintf(w, "\nDry run: %d found, %d would be translated, %d skipped\n",
			result.Found, result.Found-result.Skipped, result.Skipped)
		return result, nil
	}

	result := TranslateBatch(t, inputs, cfg.Marker, w)

	path, err := report.Write(cfg.RootDir, cfg.ReportFile)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(w, "\nWrote report: %s\n", path)
	return result, nil
}
