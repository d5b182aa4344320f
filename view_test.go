package folio

import (
	"math"
	"testing"
)

func TestViewStateDefaults(t *testing.T) {
	v := NewViewState()
	if v.Offset != (Vec2{}) || v.TargetOffset != (Vec2{}) || v.Zoom != 1 || v.TargetZoom != 1 {
		t.Errorf("NewViewState = %+v", v)
	}
	v.Offset = Vec2{X: 3}
	v.TargetZoom = 2
	v.Reset()
	if v != NewViewState() {
		t.Errorf("Reset = %+v", v)
	}
}

func TestViewStateConverges(t *testing.T) {
	lerp := DefaultConfig().LerpFactor
	v := NewViewState()
	v.TargetOffset = Vec2{X: 10, Y: 10}

	const maxTicks = 100
	prevX, prevY := v.Offset.X, v.Offset.Y
	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		if math.Abs(v.Offset.X-10) <= 0.01 && math.Abs(v.Offset.Y-10) <= 0.01 {
			break
		}
		v.Step(lerp)
		if v.Offset.X < prevX || v.Offset.Y < prevY {
			t.Fatalf("tick %d: offset moved backwards to %+v", ticks, v.Offset)
		}
		if v.Offset.X > 10 || v.Offset.Y > 10 {
			t.Fatalf("tick %d: overshoot to %+v", ticks, v.Offset)
		}
		prevX, prevY = v.Offset.X, v.Offset.Y
	}
	if ticks == maxTicks {
		t.Fatalf("offset %+v did not reach (10,10) within %d ticks", v.Offset, maxTicks)
	}
}

func TestViewStateZoomMonotonic(t *testing.T) {
	v := NewViewState()
	v.TargetZoom = 1.25
	prev := v.Zoom
	for i := 0; i < 200; i++ {
		v.Step(0.075)
		if v.Zoom < prev || v.Zoom > 1.25 {
			t.Fatalf("tick %d: zoom %v after %v", i, v.Zoom, prev)
		}
		prev = v.Zoom
	}

	v.TargetZoom = 1
	for i := 0; i < 200; i++ {
		v.Step(0.075)
		if v.Zoom > prev || v.Zoom < 1 {
			t.Fatalf("tick %d: zoom %v after %v", i, v.Zoom, prev)
		}
		prev = v.Zoom
	}
}

func TestViewStateSettled(t *testing.T) {
	v := NewViewState()
	if !v.Settled(1e-9) {
		t.Error("initial view should be settled")
	}
	v.TargetOffset.X = 1
	if v.Settled(0.01) {
		t.Error("view with distant target reported settled")
	}
	for i := 0; i < 200; i++ {
		v.Step(0.075)
	}
	if !v.Settled(0.01) {
		t.Errorf("view not settled after 200 steps: %+v", v)
	}
}
