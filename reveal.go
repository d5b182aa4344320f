package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// reveal fades the grid in over the background once atlases are bound.
// Until started, Value is 0.
type reveal struct {
	tween   *gween.Tween
	value   float64
	started bool
	done    bool
}

// start begins the fade. A non-positive duration completes immediately.
func (r *reveal) start(duration float32) {
	r.started = true
	if duration <= 0 {
		r.value = 1
		r.done = true
		return
	}
	r.tween = gween.New(0, 1, duration, ease.OutCubic)
	r.value = 0
	r.done = false
}

// update advances the fade by dt seconds and returns the current alpha.
func (r *reveal) update(dt float32) float64 {
	if !r.started || r.done {
		return r.value
	}
	v, finished := r.tween.Update(dt)
	r.value = clamp01(float64(v))
	if finished {
		r.value = 1
		r.done = true
	}
	return r.value
}

// reset returns to the unstarted state.
func (r *reveal) reset() {
	*r = reveal{}
}
