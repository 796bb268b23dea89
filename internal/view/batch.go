package view

import (
	"strings"

	"toolvision/internal/models"
)

// IsArchive reports whether a declared MIME type names a ZIP archive.
func IsArchive(mime string) bool {
	return strings.Contains(strings.ToLower(mime), "zip")
}

// IsBatchMode: archive input or more than one result.
func IsBatchMode(mime string, resultCount int) bool {
	return IsArchive(mime) || resultCount > 1
}

// Outcome is one analyze call's payload: exactly one of Single and Batch is set.
type Outcome struct {
	Single *models.AnalysisResult
	Batch  *models.BatchResult
}

func (o Outcome) Empty() bool {
	return o.Single == nil && o.Batch == nil
}

// Results flattens the payload into the ordered result sequence.
func (o Outcome) Results() []models.AnalysisResult {
	switch {
	case o.Batch != nil:
		return o.Batch.Results
	case o.Single != nil:
		return []models.AnalysisResult{*o.Single}
	default:
		return nil
	}
}

// Current returns the result shown at index; nil when there is nothing to show.
func (o Outcome) Current(index int) *models.AnalysisResult {
	if o.Batch == nil {
		return o.Single
	}
	results := o.Batch.Results
	if len(results) == 0 {
		return nil
	}
	return &results[NewNavigator(len(results), index).Index()]
}

// AnnotatedPath prefers the per-result path over the nested config one.
func AnnotatedPath(r *models.AnalysisResult) string {
	if r == nil {
		return ""
	}
	if r.AnnotatedImagePath != "" {
		return r.AnnotatedImagePath
	}
	if r.Config != nil {
		return r.Config.AnnotatedImagePath
	}
	return ""
}
