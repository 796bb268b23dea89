package cwidget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"toolvision/internal/models"
)

// ParamPanel is fully controlled: every slider move reports a complete
// replacement Params with one field changed.
type ParamPanel struct {
	widget.BaseWidget

	params     models.Params
	confidence *ParamSlider
	iou        *ParamSlider

	OnChanged func(models.Params)
}

func NewParamPanel(params models.Params, onChanged func(models.Params)) *ParamPanel {
	p := &ParamPanel{params: params, OnChanged: onChanged}
	p.confidence = NewParamSlider("Порог уверенности", params.Confidence, p.onConfidence)
	p.iou = NewParamSlider("Порог IoU", params.IoU, p.onIoU)
	p.ExtendBaseWidget(p)
	return p
}

func (p *ParamPanel) onConfidence(v float64) {
	p.report(p.params.WithConfidence(v))
}

func (p *ParamPanel) onIoU(v float64) {
	p.report(p.params.WithIoU(v))
}

func (p *ParamPanel) report(next models.Params) {
	p.params = next
	if p.OnChanged != nil {
		p.OnChanged(next)
	}
}

func (p *ParamPanel) SetParams(params models.Params) {
	p.params = params
	p.confidence.SetValue(params.Confidence)
	p.iou.SetValue(params.IoU)
}

func (p *ParamPanel) SetEnabled(enabled bool) {
	p.confidence.SetEnabled(enabled)
	p.iou.SetEnabled(enabled)
}

func (p *ParamPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(
		widget.NewLabelWithStyle("Параметры анализа", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.confidence,
		p.iou,
	))
}
