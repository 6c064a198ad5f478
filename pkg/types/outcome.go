// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the nbtranslate batch:
// run configuration and the per-notebook outcome reported by the driver.
package types

// TranslationStatus indicates what happened to one candidate notebook.
type TranslationStatus string

const (
	TranslationDone    TranslationStatus = "translated"
	TranslationSkipped TranslationStatus = "skipped"
	TranslationFailed  TranslationStatus = "failed"
	// TranslationPending marks a planned translation in a dry run.
	TranslationPending TranslationStatus = "pending"
)

// Outcome records the result of processing a single notebook. Outcomes live
// for the duration of one run; they are aggregated into a summary and never
// persisted.
type Outcome struct {
	// Input is the source notebook path.
	Input string `json:"input" yaml:"input"`

	// Output is the derived sibling path (stem + marker + extension).
	Output string `json:"output" yaml:"output"`

	// Status is translated, skipped, or failed.
	Status TranslationStatus `json:"status" yaml:"status"`

	// Err holds the failure reason when Status is TranslationFailed.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the notebook was translated.
func (o Outcome) OK() bool {
	return o.Status == TranslationDone
}
