package view

const ScrollMargin float32 = 10

// Span is a horizontal extent in the scroll content's coordinate space.
type Span struct {
	Left  float32
	Right float32
}

// ScrollDelta returns how far to move the scroll offset so target is fully
// inside viewport. Left overflow is checked first; only one side is ever
// corrected per call.
func ScrollDelta(viewport, target Span, margin float32) float32 {
	if target.Left < viewport.Left {
		return -(viewport.Left - target.Left + margin)
	}
	if target.Right > viewport.Right {
		return target.Right - viewport.Right + margin
	}
	return 0
}
