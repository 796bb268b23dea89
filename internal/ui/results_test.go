package ui

import (
	"context"
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"toolvision/internal/models"
	"toolvision/internal/view"
	"toolvision/processing/capture"
	processing "toolvision/processing/detector"
)

type fakeLoader struct {
	fail    map[string]bool
	fetched []string
}

func (f *fakeLoader) ResolveAssetURL(path string) (string, bool) {
	return processing.ResolveAssetURL("http://backend", path)
}

func (f *fakeLoader) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	f.fetched = append(f.fetched, imageURL)
	if f.fail[imageURL] {
		return nil, errors.New("status code 404")
	}
	return image.NewGray(image.Rect(0, 0, 4, 3)), nil
}

func newTestResults(t *testing.T, loader ImageLoader, onIndex func(int)) *ResultsView {
	t.Helper()
	test.NewTempApp(t)
	r := NewResultsView(context.Background(), loader, 11, onIndex)
	r.async = func(f func()) { f() }
	r.onMain = func(f func()) { f() }
	return r
}

func analyzed(t *testing.T, fake processing.Analyzer, file *capture.File) *processing.Processor {
	t.Helper()
	p := processing.NewProcessor(fake, models.DefaultParams())
	_, err := p.SelectFile(file)
	require.NoError(t, err)
	_, err = p.Analyze(context.Background())
	require.NoError(t, err)
	return p
}

type stubAnalyzer struct {
	single *models.AnalysisResult
	batch  *models.BatchResult
}

func (s stubAnalyzer) AnalyzeOne(context.Context, *capture.File, models.Params) (*models.AnalysisResult, error) {
	return s.single, nil
}

func (s stubAnalyzer) AnalyzeBatch(context.Context, *capture.File, models.Params) (*models.BatchResult, error) {
	return s.batch, nil
}

func TestResultsView_SingleCompleteJPEG(t *testing.T) {
	loader := &fakeLoader{}
	r := newTestResults(t, loader, nil)

	single := &models.AnalysisResult{
		Status:          models.StatusComplete,
		TotalDetections: 11,
		Detections:      []models.Detection{{ClassName: "pliers", Confidence: 0.9134}},
		Config:          &models.AnalysisConfig{AnnotatedImagePath: `results\tools_annotated.jpg`},
	}
	p := analyzed(t, stubAnalyzer{single: single}, &capture.File{Name: "tools.jpg", MIME: "image/jpeg"})
	r.Update(p.State())

	require.True(t, r.body.Visible())
	require.False(t, r.batchBox.Visible())
	require.Equal(t, view.ColorGreen, view.StatusColor(r.badge.Status()))
	require.Equal(t, "Обнаружено: 11 из 11", r.detected.Text)
	require.Equal(t, "Не хватает: 0", r.missing.Text)
	require.Len(t, r.detections.Objects, 1)
	require.Equal(t, []string{"http://backend/tools/images/tools_annotated.jpg"}, loader.fetched)
	require.True(t, r.annotated.ImageVisible())
}

func TestResultsView_ZipWithThreeResults(t *testing.T) {
	loader := &fakeLoader{}
	var p *processing.Processor
	var r *ResultsView
	r = newTestResults(t, loader, func(i int) {
		r.Update(p.SelectIndex(i))
	})

	batch := &models.BatchResult{Results: []models.AnalysisResult{
		{Filename: "1.jpg", Status: models.StatusComplete, TotalDetections: 11, AnnotatedImagePath: "results/b/1.jpg"},
		{Filename: "2.jpg", Status: models.StatusMissing, TotalDetections: 10, MissingTools: []string{"wrench"}, AnnotatedImagePath: "results/b/2.jpg"},
		{Filename: "3.jpg", Status: models.StatusDuplicatesOnly, TotalDetections: 12, AnnotatedImagePath: "results/b/3.jpg"},
	}}
	p = analyzed(t, stubAnalyzer{batch: batch}, &capture.File{Name: "set.zip", MIME: "application/zip"})
	r.Update(p.State())

	require.True(t, r.batchBox.Visible())
	require.Equal(t, 3, r.strip.Len())
	require.Equal(t, 0, r.strip.Index())
	require.Equal(t, "Изображение 1 из 3", r.strip.Caption())
	require.Contains(t, r.summary.Text, "Дубликаты: 1")
	require.Equal(t, "1.jpg", r.filename.Text)

	test.Tap(r.strip.Thumb(1))
	require.Equal(t, 1, p.State().Index)
	require.Equal(t, "2.jpg", r.filename.Text)
	require.Equal(t, "Не хватает: 1", r.missing.Text)
	require.Contains(t, r.toolLists.Text, "wrench")
	require.Equal(t, "Изображение 2 из 3", r.strip.Caption())
}

func TestResultsView_ImageFailureShowsPath(t *testing.T) {
	loader := &fakeLoader{fail: map[string]bool{"http://backend/tools/images/gone.jpg": true}}
	r := newTestResults(t, loader, nil)

	single := &models.AnalysisResult{Status: models.StatusMissing, AnnotatedImagePath: "results/gone.jpg"}
	p := analyzed(t, stubAnalyzer{single: single}, &capture.File{Name: "a.png", MIME: "image/png"})

	require.NotPanics(t, func() { r.Update(p.State()) })
	require.False(t, r.annotated.ImageVisible())
	require.True(t, r.annotated.FallbackVisible())
	require.Contains(t, r.annotated.FallbackText(), "results/gone.jpg")
}

func TestResultsView_EmptyStateShowsPlaceholder(t *testing.T) {
	r := newTestResults(t, nil, nil)
	r.Update(processing.State{})

	require.True(t, r.placeholder.Visible())
	require.False(t, r.body.Visible())
}

func batchOf(dir string, names ...string) *models.BatchResult {
	b := &models.BatchResult{}
	for _, n := range names {
		b.Results = append(b.Results, models.AnalysisResult{
			Filename:           n,
			Status:             models.StatusComplete,
			AnnotatedImagePath: "results/" + dir + "/" + n,
		})
	}
	return b
}

func TestResultsView_LoadingHidesPreviousBatch(t *testing.T) {
	loader := &fakeLoader{}
	var taps []int
	r := newTestResults(t, loader, func(i int) { taps = append(taps, i) })

	fake := stubAnalyzer{batch: batchOf("b1", "1.jpg", "2.jpg", "3.jpg")}
	p := analyzed(t, fake, &capture.File{Name: "set.zip", MIME: "application/zip"})
	r.Update(p.State())
	require.True(t, r.batchBox.Visible())

	state, err := p.Begin()
	require.NoError(t, err)
	r.SetEnabled(!state.Loading)
	r.Update(state)

	require.False(t, r.body.Visible())
	require.True(t, r.placeholder.Visible())
	require.Equal(t, msgAnalyzing, r.placeholder.Text)

	test.Tap(r.strip.Thumb(2))
	require.Empty(t, taps)

	state, err = p.Run(context.Background())
	require.NoError(t, err)
	r.SetEnabled(!state.Loading)
	r.Update(state)
	require.True(t, r.body.Visible())
	require.Equal(t, msgIdle, r.placeholder.Text)

	test.Tap(r.strip.Thumb(2))
	require.Equal(t, []int{2}, taps)
}

func TestResultsView_StaleThumbnailIgnored(t *testing.T) {
	loader := &fakeLoader{}
	r := newTestResults(t, loader, nil)
	var queued []func()
	r.async = func(f func()) { queued = append(queued, f) }

	first := analyzed(t, stubAnalyzer{batch: batchOf("b1", "1.jpg", "2.jpg")}, &capture.File{Name: "one.zip", MIME: "application/zip"})
	r.Update(first.State())
	stale := queued
	queued = nil

	second := analyzed(t, stubAnalyzer{batch: batchOf("b2", "x.jpg", "y.jpg")}, &capture.File{Name: "two.zip", MIME: "application/zip"})
	r.Update(second.State())

	for _, f := range stale {
		f()
	}
	require.False(t, r.strip.Thumb(0).HasImage())
	require.False(t, r.strip.Thumb(1).HasImage())
	require.False(t, r.annotated.ImageVisible())

	for _, f := range queued {
		f()
	}
	require.True(t, r.strip.Thumb(0).HasImage())
	require.True(t, r.strip.Thumb(1).HasImage())
	require.True(t, r.annotated.ImageVisible())
}
