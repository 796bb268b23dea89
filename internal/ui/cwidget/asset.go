package cwidget

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const msgImageUnavailable = "Изображение недоступно: "

// AssetImage shows a remote image, or the stored path as text when the
// image could not be loaded.
type AssetImage struct {
	widget.BaseWidget

	img      *canvas.Image
	fallback *widget.Label
}

func NewAssetImage(minSize fyne.Size) *AssetImage {
	a := &AssetImage{
		img:      canvas.NewImageFromImage(nil),
		fallback: widget.NewLabel(""),
	}
	a.img.FillMode = canvas.ImageFillContain
	a.img.SetMinSize(minSize)
	a.fallback.Wrapping = fyne.TextWrapBreak
	a.fallback.Hide()
	a.ExtendBaseWidget(a)
	return a
}

func (a *AssetImage) SetImage(img image.Image) {
	a.fallback.Hide()
	a.img.Image = img
	a.img.Show()
	a.img.Refresh()
}

func (a *AssetImage) ShowFallback(path string) {
	a.img.Image = nil
	a.img.Hide()
	a.fallback.SetText(msgImageUnavailable + path)
	a.fallback.Show()
}

func (a *AssetImage) Clear() {
	a.fallback.Hide()
	a.img.Image = nil
	a.img.Show()
	a.img.Refresh()
}

func (a *AssetImage) FallbackVisible() bool { return a.fallback.Visible() }
func (a *AssetImage) FallbackText() string  { return a.fallback.Text }
func (a *AssetImage) ImageVisible() bool    { return a.img.Visible() && a.img.Image != nil }

func (a *AssetImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(a.img, a.fallback))
}
