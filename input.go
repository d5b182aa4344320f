package folio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputPoller turns Ebitengine's polled mouse and touch state into
// container events. Only the first active touch is tracked, matching
// single-pointer galleries.
type inputPoller struct {
	inside    bool
	mouseDown bool
	lastX     float64
	lastY     float64
	havePos   bool
	touching  bool
	touchID   ebiten.TouchID
	touchX    float64
	touchY    float64
	touchBuf  []ebiten.TouchID
}

// poll dispatches the events observed since the previous call.
func (p *inputPoller) poll(c *Container, now time.Time) {
	p.pollMouse(c, now)
	p.pollTouch(c, now)
}

// pollMouse handles the left mouse button and cursor position.
func (p *inputPoller) pollMouse(c *Container, now time.Time) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	w, h := c.Size()
	in := Rect{Width: float64(w), Height: float64(h)}.Contains(x, y)

	moved := !p.havePos || x != p.lastX || y != p.lastY
	p.lastX, p.lastY, p.havePos = x, y, true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && in {
		p.mouseDown = true
		c.Dispatch(InputEvent{Kind: EventPointerDown, X: x, Y: y, Time: now})
	}

	// A held drag keeps panning outside the container until released.
	if moved && (in || p.mouseDown) {
		c.Dispatch(InputEvent{Kind: EventPointerMove, X: x, Y: y, Time: now})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && p.mouseDown {
		p.mouseDown = false
		c.Dispatch(InputEvent{Kind: EventPointerUp, X: x, Y: y, Time: now})
	}

	if p.inside && !in {
		p.mouseDown = false
		c.Dispatch(InputEvent{Kind: EventPointerLeave, X: x, Y: y, Time: now})
	}
	p.inside = in
}

// pollTouch tracks the first touch from start to end.
func (p *inputPoller) pollTouch(c *Container, now time.Time) {
	if !p.touching {
		p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
		if len(p.touchBuf) == 0 {
			return
		}
		p.touching = true
		p.touchID = p.touchBuf[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		p.touchX, p.touchY = float64(tx), float64(ty)
		c.Dispatch(InputEvent{Kind: EventTouchStart, X: p.touchX, Y: p.touchY, Time: now})
		return
	}

	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		c.Dispatch(InputEvent{Kind: EventTouchEnd, X: p.touchX, Y: p.touchY, Time: now})
		return
	}

	tx, ty := ebiten.TouchPosition(p.touchID)
	x, y := float64(tx), float64(ty)
	if x != p.touchX || y != p.touchY {
		p.touchX, p.touchY = x, y
		c.Dispatch(InputEvent{Kind: EventTouchMove, X: x, Y: y, Time: now})
	}
}
