package view

import (
	"fmt"

	"toolvision/internal/models"
)

const UnknownMIME = "не определён"

func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}

func FormatSizeMiB(size int64) string {
	return fmt.Sprintf("%.2f МБ", float64(size)/1024/1024)
}

func FormatMIME(mime string) string {
	if mime == "" {
		return UnknownMIME
	}
	return mime
}

func FormatParam(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDetected renders "<found> из <expected>", defaulting expected.
func FormatDetected(r *models.AnalysisResult, defaultExpected int) string {
	expected := defaultExpected
	if r.ExpectedCount != nil {
		expected = *r.ExpectedCount
	}
	return fmt.Sprintf("%d из %d", r.TotalDetections, expected)
}

func FormatPosition(index, count int) string {
	return fmt.Sprintf("Изображение %d из %d", index+1, count)
}
