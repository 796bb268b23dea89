package cwidget

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"toolvision/internal/models"
	"toolvision/internal/view"
	"toolvision/processing/capture"
)

func TestParamPanel_ReportsFullReplacement(t *testing.T) {
	test.NewTempApp(t)

	var got []models.Params
	panel := NewParamPanel(models.DefaultParams(), func(p models.Params) {
		got = append(got, p)
	})

	panel.confidence.sliderWidget.OnChanged(0.6000000000000001)
	panel.iou.sliderWidget.OnChanged(0.3)
	panel.iou.sliderWidget.OnChanged(0.31)

	require.Equal(t, []models.Params{
		{Confidence: 0.6, IoU: models.DefaultIoU},
		{Confidence: 0.6, IoU: 0.3},
	}, got)
	require.Equal(t, "Порог уверенности: 0.60", panel.confidence.labelWidget.Text)
}

func TestParamPanel_SetParamsIsSilent(t *testing.T) {
	test.NewTempApp(t)

	calls := 0
	panel := NewParamPanel(models.DefaultParams(), func(models.Params) { calls++ })
	panel.SetParams(models.Params{Confidence: 0.9, IoU: 0.1})

	require.Zero(t, calls)
	require.Equal(t, 0.9, panel.confidence.Value)
	require.Equal(t, "Порог IoU: 0.10", panel.iou.labelWidget.Text)
}

func stripWith(t *testing.T, n int) (*BatchStrip, *[]int) {
	t.Helper()
	var requests []int
	var strip *BatchStrip
	strip = NewBatchStrip(func(i int) {
		requests = append(requests, i)
		strip.SetIndex(i)
	})
	items := make([]ThumbItem, n)
	for i := range items {
		items[i] = ThumbItem{Label: "img", Color: view.ColorGreen}
	}
	strip.SetItems(items)
	return strip, &requests
}

func TestBatchStrip_Boundaries(t *testing.T) {
	test.NewTempApp(t)
	strip, requests := stripWith(t, 3)

	require.Equal(t, 3, strip.Len())
	require.Equal(t, "Изображение 1 из 3", strip.caption.Text)
	require.True(t, strip.prevButton.Disabled())
	require.False(t, strip.nextButton.Disabled())

	test.Tap(strip.prevButton)
	require.Empty(t, *requests)

	test.Tap(strip.nextButton)
	test.Tap(strip.nextButton)
	require.Equal(t, []int{1, 2}, *requests)
	require.Equal(t, 2, strip.Index())
	require.True(t, strip.nextButton.Disabled())
	require.False(t, strip.prevButton.Disabled())
	require.Equal(t, "Изображение 3 из 3", strip.caption.Text)
	require.True(t, strip.thumbs[2].Active())
	require.False(t, strip.thumbs[0].Active())
}

func TestBatchStrip_ThumbnailJump(t *testing.T) {
	test.NewTempApp(t)
	strip, requests := stripWith(t, 4)

	test.Tap(strip.thumbs[3])
	require.Equal(t, []int{3}, *requests)
	require.Equal(t, 3, strip.Index())

	strip.SetIndex(42)
	require.Equal(t, 3, strip.Index())
	strip.SetIndex(-1)
	require.Equal(t, 0, strip.Index())

	strip.SetThumbImage(1, image.NewGray(image.Rect(0, 0, 1, 1)))
	strip.SetThumbImage(9, nil)
	require.NotNil(t, strip.thumbs[1].img.Image)
}

func TestBatchStrip_SingleItemDisablesBoth(t *testing.T) {
	test.NewTempApp(t)
	strip, _ := stripWith(t, 1)

	require.True(t, strip.prevButton.Disabled())
	require.True(t, strip.nextButton.Disabled())
}

func TestBatchStrip_DisabledIgnoresRequests(t *testing.T) {
	test.NewTempApp(t)
	strip, requests := stripWith(t, 3)
	strip.SetIndex(1)
	*requests = nil

	strip.SetEnabled(false)
	require.True(t, strip.prevButton.Disabled())
	require.True(t, strip.nextButton.Disabled())

	test.Tap(strip.nextButton)
	test.Tap(strip.thumbs[2])
	require.Empty(t, *requests)
	require.Equal(t, 1, strip.Index())

	strip.SetItems([]ThumbItem{
		{Label: "a", Color: view.ColorGreen},
		{Label: "b", Color: view.ColorGreen},
		{Label: "c", Color: view.ColorGreen},
		{Label: "d", Color: view.ColorGreen},
	})
	require.True(t, strip.nextButton.Disabled())

	strip.SetEnabled(true)
	require.True(t, strip.prevButton.Disabled())
	require.False(t, strip.nextButton.Disabled())
	test.Tap(strip.thumbs[3])
	require.Equal(t, []int{3}, *requests)
}

func TestBatchStrip_ScrollsActiveIntoView(t *testing.T) {
	test.NewTempApp(t)
	strip, _ := stripWith(t, 12)

	w := test.NewWindow(strip)
	defer w.Close()
	w.Resize(fyne.NewSize(600, 300))

	const viewport = float32(392)
	strip.scroll.Resize(fyne.NewSize(viewport, strip.scroll.Size().Height))
	strip.row.Resize(strip.row.MinSize())
	require.Zero(t, strip.scroll.Offset.X)

	span := func(i int) (float32, float32) {
		th := strip.thumbs[i]
		return th.Position().X, th.Position().X + th.Size().Width
	}
	limit := strip.row.MinSize().Width - viewport

	strip.SetIndex(1)
	require.Zero(t, strip.scroll.Offset.X, "visible thumbnail does not move the rail")

	strip.SetIndex(5)
	_, right := span(5)
	require.Equal(t, right-viewport+view.ScrollMargin, strip.scroll.Offset.X)

	strip.SetIndex(11)
	require.Equal(t, limit, strip.scroll.Offset.X, "offset is clamped to the content end")

	strip.SetIndex(3)
	left, _ := span(3)
	require.Equal(t, left-view.ScrollMargin, strip.scroll.Offset.X)

	strip.SetIndex(0)
	require.Zero(t, strip.scroll.Offset.X)
}

func TestFileIntake_ShowsMetadata(t *testing.T) {
	test.NewTempApp(t)
	in := NewFileIntake(nil, nil)

	in.SetFile(&capture.File{Name: "set.zip", MIME: "application/zip", Size: 3 * 1024 * 1024})
	require.Equal(t, "set.zip", in.nameLabel.Text)
	require.Equal(t, "Тип: application/zip", in.typeLabel.Text)
	require.Equal(t, "Размер: 3.00 МБ", in.sizeLabel.Text)

	in.SetFile(&capture.File{Name: "blob", Size: 0})
	require.Equal(t, "Тип: "+view.UnknownMIME, in.typeLabel.Text)

	in.SetFile(nil)
	require.Equal(t, msgNoFile, in.nameLabel.Text)
}

func TestStatusBadge(t *testing.T) {
	test.NewTempApp(t)
	b := NewStatusBadge()

	b.SetStatus(models.StatusComplete)
	require.Equal(t, view.ColorGreen, b.background.FillColor)
	require.Equal(t, view.StatusLabel(models.StatusComplete), b.Text())

	b.SetStatus("weird")
	require.Equal(t, view.ColorGray, b.background.FillColor)
}

func TestAssetImage_Fallback(t *testing.T) {
	test.NewTempApp(t)
	a := NewAssetImage(ThumbnailSize)

	a.ShowFallback("results/a.jpg")
	require.True(t, a.FallbackVisible())
	require.False(t, a.ImageVisible())
	require.Equal(t, msgImageUnavailable+"results/a.jpg", a.FallbackText())

	a.SetImage(image.NewGray(image.Rect(0, 0, 1, 1)))
	require.False(t, a.FallbackVisible())
	require.True(t, a.ImageVisible())
}
