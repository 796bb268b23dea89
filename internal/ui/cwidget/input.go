package cwidget

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"toolvision/internal/models"
	"toolvision/internal/view"
)

// ParamSlider is a labelled slider over [0,1] with a 0.05 step.
type ParamSlider struct {
	widget.BaseWidget

	labelWidget  *widget.Label
	sliderWidget *widget.Slider

	LabelText string
	Value     float64

	OnChanged func(float64)
}

func NewParamSlider(label string, value float64, onChanged func(float64)) *ParamSlider {
	input := &ParamSlider{
		LabelText: label,
		Value:     models.SnapParam(value),
		OnChanged: onChanged,
	}

	input.labelWidget = widget.NewLabel(input.formatLabel())
	input.labelWidget.TextStyle = fyne.TextStyle{Bold: true}

	input.sliderWidget = widget.NewSlider(models.ParamMin, models.ParamMax)
	input.sliderWidget.Step = models.ParamStep
	input.sliderWidget.Value = input.Value
	input.sliderWidget.OnChanged = input.changed

	input.ExtendBaseWidget(input)

	return input
}

func (item *ParamSlider) changed(v float64) {
	v = models.SnapParam(v)
	if v == item.Value {
		return
	}
	item.Value = v
	item.labelWidget.SetText(item.formatLabel())
	if item.OnChanged != nil {
		item.OnChanged(v)
	}
}

func (item *ParamSlider) formatLabel() string {
	return fmt.Sprintf("%s: %s", item.LabelText, view.FormatParam(item.Value))
}

// SetValue moves the slider without reporting a change.
func (item *ParamSlider) SetValue(v float64) {
	item.Value = models.SnapParam(v)
	item.sliderWidget.Value = item.Value
	item.sliderWidget.Refresh()
	item.labelWidget.SetText(item.formatLabel())
}

func (item *ParamSlider) SetEnabled(enabled bool) {
	if enabled {
		item.sliderWidget.Enable()
	} else {
		item.sliderWidget.Disable()
	}
}

func (item *ParamSlider) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewVBox(
		item.labelWidget,
		item.sliderWidget,
	)

	return widget.NewSimpleRenderer(c)
}
