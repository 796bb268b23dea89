package cwidget

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolvision/internal/view"
)

// BatchStrip is the thumbnail rail with prev/next controls. It never owns
// the index: every request goes through OnIndexChanged and the owner calls
// SetIndex with the clamped result.
type BatchStrip struct {
	widget.BaseWidget

	prevButton *widget.Button
	nextButton *widget.Button
	caption    *widget.Label
	row        *fyne.Container
	scroll     *container.Scroll
	thumbs     []*Thumbnail
	nav        view.Navigator
	disabled   bool

	OnIndexChanged func(int)
}

func NewBatchStrip(onIndexChanged func(int)) *BatchStrip {
	s := &BatchStrip{OnIndexChanged: onIndexChanged}
	s.prevButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		s.request(s.nav.Prev().Index())
	})
	s.nextButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		s.request(s.nav.Next().Index())
	})
	s.caption = widget.NewLabel("")
	s.caption.Alignment = fyne.TextAlignCenter
	s.row = container.NewHBox()
	s.scroll = container.NewHScroll(s.row)
	s.scroll.SetMinSize(fyne.NewSize(ThumbnailSize.Width*3, ThumbnailSize.Height+48))
	s.ExtendBaseWidget(s)
	s.updateControls()
	return s
}

func (s *BatchStrip) request(i int) {
	if !s.disabled && s.OnIndexChanged != nil {
		s.OnIndexChanged(s.nav.Jump(i).Index())
	}
}

func (s *BatchStrip) SetItems(items []ThumbItem) {
	s.thumbs = make([]*Thumbnail, len(items))
	objects := make([]fyne.CanvasObject, len(items))
	for i, item := range items {
		idx := i
		s.thumbs[i] = NewThumbnail(item, func() { s.request(idx) })
		objects[i] = s.thumbs[i]
	}
	s.row.Objects = objects
	s.row.Refresh()
	s.scroll.Offset = fyne.NewPos(0, 0)
	s.scroll.Refresh()
	s.nav = view.NewNavigator(len(items), 0)
	s.apply()
}

func (s *BatchStrip) SetThumbImage(i int, img image.Image) {
	if i < 0 || i >= len(s.thumbs) {
		return
	}
	s.thumbs[i].SetImage(img)
}

func (s *BatchStrip) SetIndex(i int) {
	previous := s.nav.Index()
	s.nav = s.nav.Jump(i)
	s.apply()
	if s.nav.Index() != previous {
		s.scrollIntoView()
	}
}

// SetEnabled blocks prev/next and thumbnail taps while false.
func (s *BatchStrip) SetEnabled(enabled bool) {
	s.disabled = !enabled
	s.updateControls()
}

func (s *BatchStrip) Index() int      { return s.nav.Index() }
func (s *BatchStrip) Len() int        { return len(s.thumbs) }
func (s *BatchStrip) Caption() string { return s.caption.Text }

func (s *BatchStrip) Thumb(i int) *Thumbnail {
	if i < 0 || i >= len(s.thumbs) {
		return nil
	}
	return s.thumbs[i]
}

func (s *BatchStrip) apply() {
	for i, t := range s.thumbs {
		t.SetActive(i == s.nav.Index())
	}
	s.updateControls()
}

func (s *BatchStrip) updateControls() {
	if !s.disabled && s.nav.CanPrev() {
		s.prevButton.Enable()
	} else {
		s.prevButton.Disable()
	}
	if !s.disabled && s.nav.CanNext() {
		s.nextButton.Enable()
	} else {
		s.nextButton.Disable()
	}
	if s.nav.Count() > 0 {
		s.caption.SetText(view.FormatPosition(s.nav.Index(), s.nav.Count()))
	} else {
		s.caption.SetText("")
	}
}

// scrollIntoView brings the active thumbnail fully into the visible part
// of the rail, moving only as far as needed plus the margin.
func (s *BatchStrip) scrollIntoView() {
	if len(s.thumbs) == 0 {
		return
	}
	active := s.thumbs[s.nav.Index()]
	offset := s.scroll.Offset
	viewport := view.Span{Left: offset.X, Right: offset.X + s.scroll.Size().Width}
	target := view.Span{Left: active.Position().X, Right: active.Position().X + active.Size().Width}

	delta := view.ScrollDelta(viewport, target, view.ScrollMargin)
	if delta == 0 {
		return
	}

	x := offset.X + delta
	if limit := s.row.MinSize().Width - s.scroll.Size().Width; x > limit {
		x = limit
	}
	if x < 0 {
		x = 0
	}
	s.scroll.Offset = fyne.NewPos(x, offset.Y)
	s.scroll.Refresh()
}

func (s *BatchStrip) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewBorder(nil, nil, s.prevButton, s.nextButton, s.caption)
	return widget.NewSimpleRenderer(container.NewVBox(controls, s.scroll))
}
