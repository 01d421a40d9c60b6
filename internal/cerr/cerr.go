// Package cerr holds the two fatal error kinds shared by every
// resource-loading and scoring package in this module (§7). It exists
// so that tokenizer, feature, and model — which the root commentcode
// package imports — can all report the same error shapes without
// importing commentcode themselves.
package cerr

import "fmt"

// ResourceLoadFailure wraps any failure to read or parse one of the
// three bundled data files (merge table, vocabulary, model). It is
// fatal for the analysis run.
type ResourceLoadFailure struct {
	Resource string // "merges", "vocabulary", or "model"
	Path     string
	Err      error
}

func (e *ResourceLoadFailure) Error() string {
	return fmt.Sprintf("commentcode: load %s %s: %s", e.Resource, e.Path, e.Err)
}

func (e *ResourceLoadFailure) Unwrap() error {
	return e.Err
}

// ShapeMismatch indicates the model's coefficient vector and the
// extracted feature vector have different lengths — a mismatched data
// bundle. Fatal; not silently tolerated.
type ShapeMismatch struct {
	FeatureLen, CoefficientLen int
}

func (e *ShapeMismatch) Error() string {
	return fmt.Sprintf("commentcode: feature vector length %d does not match coefficient vector length %d", e.FeatureLen, e.CoefficientLen)
}
