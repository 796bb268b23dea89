package cwidget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolvision/internal/view"
	"toolvision/processing/capture"
)

const (
	msgDropHint    = "Нажмите, чтобы выбрать файл, или перетащите его в окно"
	msgFormatsHint = "Поддерживаемые форматы: JPG, JPEG, PNG, ZIP"
	msgNoFile      = "Файл не выбран"
)

// FileIntake picks exactly one file. Drops are wired at the window level and
// land in the same OnPicked callback.
type FileIntake struct {
	widget.BaseWidget

	window fyne.Window

	pickButton *widget.Button
	nameLabel  *widget.Label
	typeLabel  *widget.Label
	sizeLabel  *widget.Label

	OnPicked func(fyne.URI)
}

func NewFileIntake(w fyne.Window, onPicked func(fyne.URI)) *FileIntake {
	in := &FileIntake{window: w, OnPicked: onPicked}

	in.pickButton = widget.NewButtonWithIcon("Выбрать файл", theme.FolderOpenIcon(), in.openDialog)
	in.nameLabel = widget.NewLabel(msgNoFile)
	in.nameLabel.Truncation = fyne.TextTruncateEllipsis
	in.typeLabel = widget.NewLabel("")
	in.sizeLabel = widget.NewLabel("")

	in.ExtendBaseWidget(in)
	return in
}

func (in *FileIntake) openDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		uri := reader.URI()
		reader.Close()
		in.Pick(uri)
	}, in.window)
}

// Pick reports an acquired file; drops call it directly.
func (in *FileIntake) Pick(uri fyne.URI) {
	if uri == nil || in.OnPicked == nil {
		return
	}
	in.OnPicked(uri)
}

func (in *FileIntake) SetFile(f *capture.File) {
	if f == nil {
		in.nameLabel.SetText(msgNoFile)
		in.typeLabel.SetText("")
		in.sizeLabel.SetText("")
		return
	}
	in.nameLabel.SetText(f.Name)
	in.typeLabel.SetText("Тип: " + view.FormatMIME(f.MIME))
	in.sizeLabel.SetText("Размер: " + view.FormatSizeMiB(f.Size))
}

func (in *FileIntake) SetEnabled(enabled bool) {
	if enabled {
		in.pickButton.Enable()
	} else {
		in.pickButton.Disable()
	}
}

func (in *FileIntake) CreateRenderer() fyne.WidgetRenderer {
	hint := widget.NewLabel(msgFormatsHint)
	hint.Importance = widget.LowImportance

	drop := widget.NewLabel(msgDropHint)
	drop.Wrapping = fyne.TextWrapWord

	return widget.NewSimpleRenderer(container.NewVBox(
		widget.NewLabelWithStyle("Файл", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		in.pickButton,
		drop,
		hint,
		widget.NewSeparator(),
		in.nameLabel,
		in.typeLabel,
		in.sizeLabel,
	))
}
