package folio

// ViewState is the pan and zoom of a mounted gallery. Offset and Zoom are
// the rendered values; TargetOffset and TargetZoom are set instantly by
// interaction and approached every frame by Step.
type ViewState struct {
	Offset       Vec2
	TargetOffset Vec2
	Zoom         float64
	TargetZoom   float64
}

// NewViewState returns the initial view: no offset, zoom 1.
func NewViewState() ViewState {
	return ViewState{Zoom: 1, TargetZoom: 1}
}

// Reset restores the initial view.
func (v *ViewState) Reset() {
	*v = NewViewState()
}

// Step moves the rendered values a fraction lerp of the remaining distance
// toward their targets. For 0 < lerp < 1 the approach is monotonic and never
// overshoots.
func (v *ViewState) Step(lerp float64) {
	v.Offset.X += (v.TargetOffset.X - v.Offset.X) * lerp
	v.Offset.Y += (v.TargetOffset.Y - v.Offset.Y) * lerp
	v.Zoom += (v.TargetZoom - v.Zoom) * lerp
}

// Settled reports whether the rendered values are within eps of the targets.
func (v ViewState) Settled(eps float64) bool {
	return abs(v.TargetOffset.X-v.Offset.X) <= eps &&
		abs(v.TargetOffset.Y-v.Offset.Y) <= eps &&
		abs(v.TargetZoom-v.Zoom) <= eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
