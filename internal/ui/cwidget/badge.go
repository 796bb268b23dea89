package cwidget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolvision/internal/models"
	"toolvision/internal/view"
)

type StatusBadge struct {
	widget.BaseWidget

	status     models.Status
	background *canvas.Rectangle
	text       *canvas.Text
}

func NewStatusBadge() *StatusBadge {
	b := &StatusBadge{
		background: canvas.NewRectangle(view.ColorGray),
		text:       canvas.NewText("", color.White),
	}
	b.background.CornerRadius = theme.InputRadiusSize()
	b.text.TextStyle = fyne.TextStyle{Bold: true}
	b.SetStatus(models.StatusUnknown)
	b.ExtendBaseWidget(b)
	return b
}

func (b *StatusBadge) SetStatus(s models.Status) {
	b.status = s
	b.background.FillColor = view.StatusColor(s)
	b.text.Text = view.StatusLabel(s)
	b.background.Refresh()
	b.text.Refresh()
}

func (b *StatusBadge) Status() models.Status { return b.status }
func (b *StatusBadge) Text() string           { return b.text.Text }

func (b *StatusBadge) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, container.NewPadded(b.text)))
}
