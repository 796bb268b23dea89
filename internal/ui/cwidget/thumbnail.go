package cwidget

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var ThumbnailSize = fyne.NewSize(96, 72)

type ThumbItem struct {
	Label string
	Color color.Color
}

// Thumbnail is one tappable cell of the batch strip.
type Thumbnail struct {
	widget.BaseWidget

	frame  *canvas.Rectangle
	bar    *canvas.Rectangle
	img    *canvas.Image
	label  *widget.Label
	active bool

	OnTapped func()
}

func NewThumbnail(item ThumbItem, onTapped func()) *Thumbnail {
	t := &Thumbnail{
		frame:    canvas.NewRectangle(color.Transparent),
		bar:      canvas.NewRectangle(item.Color),
		img:      canvas.NewImageFromImage(nil),
		label:    widget.NewLabel(item.Label),
		OnTapped: onTapped,
	}
	t.frame.StrokeWidth = 2
	t.frame.StrokeColor = color.Transparent
	t.bar.SetMinSize(fyne.NewSize(ThumbnailSize.Width, 4))
	t.img.FillMode = canvas.ImageFillContain
	t.img.SetMinSize(ThumbnailSize)
	t.label.Alignment = fyne.TextAlignCenter
	t.label.Truncation = fyne.TextTruncateEllipsis
	t.ExtendBaseWidget(t)
	return t
}

func (t *Thumbnail) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

func (t *Thumbnail) SetImage(img image.Image) {
	t.img.Image = img
	t.img.Refresh()
}

func (t *Thumbnail) SetActive(active bool) {
	t.active = active
	if active {
		t.frame.StrokeColor = theme.Color(theme.ColorNamePrimary)
	} else {
		t.frame.StrokeColor = color.Transparent
	}
	t.frame.Refresh()
}

func (t *Thumbnail) Active() bool   { return t.active }
func (t *Thumbnail) HasImage() bool { return t.img.Image != nil }

func (t *Thumbnail) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewBorder(nil, container.NewVBox(t.bar, t.label), nil, nil, t.img)
	return widget.NewSimpleRenderer(container.NewStack(t.frame, container.NewPadded(body)))
}
