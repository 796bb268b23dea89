package ui

import (
	"context"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"toolvision/internal/logger"
	"toolvision/internal/models"
	"toolvision/internal/ui/cwidget"
	"toolvision/internal/view"
	processing "toolvision/processing/detector"
)

const (
	msgIdle      = "Выберите файл и нажмите «Анализировать»"
	msgAnalyzing = "Выполняется анализ…"
)

type ImageLoader interface {
	ResolveAssetURL(path string) (string, bool)
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)
}

// ResultsView renders one State: status badge, counts, tool lists,
// the annotated image and, in batch mode, the summary and the strip.
type ResultsView struct {
	ctx             context.Context
	loader          ImageLoader
	defaultExpected int

	// async and onMain are swapped in tests to run fetches inline.
	async  func(func())
	onMain func(func())

	root        *fyne.Container
	placeholder *widget.Label
	body        *fyne.Container

	badge      *cwidget.StatusBadge
	filename   *widget.Label
	message    *widget.Label
	detected   *widget.Label
	missing    *widget.Label
	extra      *widget.Label
	toolLists  *widget.Label
	detections *fyne.Container
	annotated  *cwidget.AssetImage
	currentURL string

	batchBox *fyne.Container
	summary  *widget.Label
	strip    *cwidget.BatchStrip
	items    []models.AnalysisResult
}

func NewResultsView(ctx context.Context, loader ImageLoader, defaultExpected int, onIndex func(int)) *ResultsView {
	r := &ResultsView{
		ctx:             ctx,
		loader:          loader,
		defaultExpected: defaultExpected,
		async:           func(f func()) { go f() },
		onMain:          fyne.Do,
	}

	r.placeholder = widget.NewLabel(msgIdle)
	r.badge = cwidget.NewStatusBadge()
	r.filename = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	r.message = widget.NewLabel("")
	r.message.Wrapping = fyne.TextWrapWord
	r.detected = widget.NewLabel("")
	r.missing = widget.NewLabel("")
	r.extra = widget.NewLabel("")
	r.toolLists = widget.NewLabel("")
	r.toolLists.Wrapping = fyne.TextWrapWord
	r.detections = container.NewVBox()
	r.annotated = cwidget.NewAssetImage(fyne.NewSize(480, 360))

	r.summary = widget.NewLabel("")
	r.strip = cwidget.NewBatchStrip(onIndex)
	r.batchBox = container.NewVBox(
		widget.NewCard("Сводка по архиву", "", r.summary),
		r.strip,
	)
	r.batchBox.Hide()

	counts := container.NewGridWithColumns(3, r.detected, r.missing, r.extra)
	r.body = container.NewVBox(
		r.batchBox,
		container.NewHBox(r.badge, r.filename),
		r.message,
		counts,
		r.toolLists,
		widget.NewCard("Обнаруженные инструменты", "", r.detections),
		r.annotated,
	)
	r.body.Hide()

	r.root = container.NewVBox(r.placeholder, r.body)
	return r
}

func (r *ResultsView) Container() fyne.CanvasObject {
	return container.NewVScroll(r.root)
}

// SetEnabled locks batch navigation while an analyze call is running.
func (r *ResultsView) SetEnabled(enabled bool) {
	r.strip.SetEnabled(enabled)
}

func (r *ResultsView) Update(s processing.State) {
	if s.Outcome.Empty() {
		r.items = nil
		r.currentURL = ""
		r.annotated.Clear()
		if s.Loading {
			r.placeholder.SetText(msgAnalyzing)
		} else {
			r.placeholder.SetText(msgIdle)
		}
		r.placeholder.Show()
		r.body.Hide()
		return
	}
	r.placeholder.Hide()
	r.body.Show()

	if s.BatchMode {
		r.showBatch(s)
	} else {
		r.items = nil
		r.batchBox.Hide()
	}

	r.showResult(s.Current(), batchMessage(s))
}

func batchMessage(s processing.State) string {
	if s.Outcome.Batch != nil && len(s.Outcome.Batch.Results) == 0 {
		return s.Outcome.Batch.Message
	}
	return ""
}

func (r *ResultsView) showBatch(s processing.State) {
	results := s.Outcome.Results()
	if !sameItems(r.items, results) {
		r.items = results
		items := make([]cwidget.ThumbItem, len(results))
		for i, res := range results {
			items[i] = cwidget.ThumbItem{Label: thumbLabel(i, res), Color: view.StatusColor(res.Status.Normalize())}
		}
		r.strip.SetItems(items)
		for i := range results {
			r.loadThumb(i, view.AnnotatedPath(&results[i]))
		}
	}
	r.strip.SetIndex(s.Index)

	sum := view.Summarize(s.Outcome.Batch)
	r.summary.SetText(fmt.Sprintf(
		"Всего: %d · Полный комплект: %d · Недостача: %d · Лишние: %d · Смешанные: %d · Дубликаты: %d · Ошибки: %d",
		sum.Total, sum.Complete, sum.Missing, sum.Extra, sum.Mixed, sum.Duplicates, sum.Errors,
	))
	r.batchBox.Show()
}

func sameItems(a, b []models.AnalysisResult) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

func thumbLabel(i int, res models.AnalysisResult) string {
	if res.Filename != "" {
		return res.Filename
	}
	return fmt.Sprintf("#%d", i+1)
}

func (r *ResultsView) showResult(res *models.AnalysisResult, fallbackMessage string) {
	if res == nil {
		r.badge.SetStatus(models.StatusUnknown)
		r.filename.SetText("")
		r.message.SetText(fallbackMessage)
		r.detected.SetText("")
		r.missing.SetText("")
		r.extra.SetText("")
		r.toolLists.SetText("")
		r.detections.Objects = nil
		r.detections.Refresh()
		r.currentURL = ""
		r.annotated.Clear()
		return
	}

	r.badge.SetStatus(res.Status.Normalize())
	r.filename.SetText(res.Filename)
	r.message.SetText(res.Message)
	r.detected.SetText("Обнаружено: " + view.FormatDetected(res, r.defaultExpected))
	r.missing.SetText(fmt.Sprintf("Не хватает: %d", len(res.MissingTools)))
	r.extra.SetText(fmt.Sprintf("Лишние: %d", len(res.ExtraTools)))
	r.toolLists.SetText(toolLists(res))

	rows := make([]fyne.CanvasObject, 0, len(res.Detections))
	for _, d := range res.Detections {
		rows = append(rows, widget.NewLabel(fmt.Sprintf("%s — %s", d.ClassName, view.FormatConfidence(d.Confidence))))
	}
	if len(rows) == 0 {
		rows = append(rows, widget.NewLabel("Нет обнаружений"))
	}
	r.detections.Objects = rows
	r.detections.Refresh()

	r.loadAnnotated(view.AnnotatedPath(res))
}

func toolLists(res *models.AnalysisResult) string {
	var parts []string
	if len(res.MissingTools) > 0 {
		parts = append(parts, "Отсутствуют: "+strings.Join(res.MissingTools, ", "))
	}
	if len(res.ExtraTools) > 0 {
		parts = append(parts, "Лишние: "+strings.Join(res.ExtraTools, ", "))
	}
	return strings.Join(parts, "\n")
}

func (r *ResultsView) loadAnnotated(path string) {
	u, ok := r.resolve(path)
	if !ok {
		r.currentURL = ""
		r.annotated.Clear()
		return
	}
	if u == r.currentURL {
		return
	}
	r.currentURL = u
	r.annotated.Clear()

	r.fetch(u, path, func(img image.Image, err error) {
		if u != r.currentURL {
			return
		}
		if err != nil {
			r.annotated.ShowFallback(path)
			return
		}
		r.annotated.SetImage(img)
	})
}

func (r *ResultsView) loadThumb(i int, path string) {
	u, ok := r.resolve(path)
	if !ok {
		return
	}
	items := r.items
	r.fetch(u, path, func(img image.Image, err error) {
		if err != nil || !sameItems(items, r.items) {
			return
		}
		r.strip.SetThumbImage(i, img)
	})
}

func (r *ResultsView) resolve(path string) (string, bool) {
	if r.loader == nil {
		return "", false
	}
	return r.loader.ResolveAssetURL(path)
}

// fetch loads off the UI goroutine and applies the outcome on it. Failures
// are logged and handed to apply; they never propagate further.
func (r *ResultsView) fetch(u, path string, apply func(image.Image, error)) {
	r.async(func() {
		img, err := r.loader.FetchImage(r.ctx, u)
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"url":  u,
				"path": path,
			}).Warn("Failed to load result image")
		}
		r.onMain(func() { apply(img, err) })
	})
}
