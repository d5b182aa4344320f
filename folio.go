package folio

import (
	"errors"
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at shader submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for image fills.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// vec4 returns the straight-alpha components as shader uniform values.
func (c Color) vec4() []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a kind of host input event delivered to a Container.
type EventKind uint8

const (
	EventPointerDown  EventKind = iota // mouse button pressed
	EventPointerMove                   // mouse moved (pressed or hovering)
	EventPointerUp                     // mouse button released
	EventPointerLeave                  // cursor left the container
	EventTouchStart                    // first finger down
	EventTouchMove                     // tracked finger moved
	EventTouchEnd                      // tracked finger lifted
	EventResize                        // container dimensions changed
	eventKindCount
)

// String returns the event kind name, used in debug output.
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	case EventPointerLeave:
		return "pointerleave"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// PointerState is the state of the interaction state machine.
type PointerState uint8

const (
	StateIdle         PointerState = iota // no active gesture
	StatePressed                          // pressed, movement within the drag threshold
	StateDragging                         // pressed and moved beyond the drag threshold
	StateClickPending                     // released as a click, awaiting resolution
)

// String returns the state name.
func (s PointerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateClickPending:
		return "click-pending"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by mount and construction paths.
var (
	ErrEmptyCatalog     = errors.New("folio: catalog is empty")
	ErrNoDevice         = errors.New("folio: no rendering device")
	ErrNoRaster         = errors.New("folio: no label raster font")
	ErrDeviceReleased   = errors.New("folio: device already released")
	ErrInvalidUniforms  = errors.New("folio: invalid uniform set")
	ErrNoMountContainer = errors.New("folio: no mount container")
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
