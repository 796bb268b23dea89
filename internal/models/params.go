package models

import "math"

const (
	DefaultConfidence = 0.25
	DefaultIoU        = 0.45

	ParamMin  = 0.0
	ParamMax  = 1.0
	ParamStep = 0.05
)

// Params are the two inference thresholds sent verbatim with every analyze call.
type Params struct {
	Confidence float64 `json:"confidence"`
	IoU        float64 `json:"iou"`
}

func DefaultParams() Params {
	return Params{Confidence: DefaultConfidence, IoU: DefaultIoU}
}

func (p Params) WithConfidence(v float64) Params {
	p.Confidence = clampParam(v)
	return p
}

func (p Params) WithIoU(v float64) Params {
	p.IoU = clampParam(v)
	return p
}

func clampParam(v float64) float64 {
	if v < ParamMin {
		return ParamMin
	}
	if v > ParamMax {
		return ParamMax
	}
	return v
}

// SnapParam rounds a raw slider value onto the 0.05 grid.
func SnapParam(v float64) float64 {
	snapped := math.Round(v/ParamStep) * ParamStep
	return clampParam(math.Round(snapped*100) / 100)
}
