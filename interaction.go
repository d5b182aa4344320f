package folio

import "time"

// Session is the per-gesture state of a press. It is created on press,
// mutated on move and discarded on release.
type Session struct {
	Active     bool
	StillClick bool
	Start      time.Time
	Previous   Vec2
	// HoldFired is set once the press-hold zoom has been applied.
	HoldFired bool
}

// Interaction is the pointer state machine:
//
//	Idle → Pressed → (Dragging | ClickPending) → Idle
//
// It mutates the targets of a ViewState and never touches rendered values.
// Only one session exists at a time; a new press overwrites the old one.
type Interaction struct {
	panSensitivity   float64
	dragThreshold    float64
	clickMaxDuration time.Duration
	pressHoldDelay   time.Duration
	hoverZoom        float64

	state   PointerState
	session Session
	click   Vec2
}

// NewInteraction creates an idle state machine using cfg's input constants.
func NewInteraction(cfg Config) *Interaction {
	return &Interaction{
		panSensitivity:   cfg.PanSensitivity,
		dragThreshold:    cfg.DragThreshold,
		clickMaxDuration: cfg.ClickMaxDuration,
		pressHoldDelay:   cfg.PressHoldDelay,
		hoverZoom:        cfg.HoverZoom,
	}
}

// State returns the current machine state.
func (m *Interaction) State() PointerState {
	return m.state
}

// Session returns a copy of the active session.
func (m *Interaction) Session() Session {
	return m.session
}

// pressed reports whether a press is held.
func (m *Interaction) pressed() bool {
	return m.state == StatePressed || m.state == StateDragging
}

// Press starts a new session at (x, y). Non-finite positions are ignored.
func (m *Interaction) Press(x, y float64, now time.Time) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	m.state = StatePressed
	m.session = Session{
		Active:     true,
		StillClick: true,
		Start:      now,
		Previous:   Vec2{X: x, Y: y},
	}
	m.click = Vec2{}
}

// Move pans the view by the inverse pointer delta. It reports whether this
// move turned the press into a drag.
func (m *Interaction) Move(x, y float64, view *ViewState) bool {
	if !m.pressed() || !isFinite(x) || !isFinite(y) {
		return false
	}
	dx := x - m.session.Previous.X
	dy := y - m.session.Previous.Y

	started := false
	if abs(dx) > m.dragThreshold || abs(dy) > m.dragThreshold {
		m.session.StillClick = false
		if m.state == StatePressed {
			m.state = StateDragging
			started = true
		}
		if view.TargetZoom == 1 {
			view.TargetZoom = m.hoverZoom
		}
	}

	view.TargetOffset.X -= dx * m.panSensitivity
	view.TargetOffset.Y += dy * m.panSensitivity

	m.session.Previous = Vec2{X: x, Y: y}
	return started
}

// Tick applies the press-hold zoom once the hold delay has elapsed.
func (m *Interaction) Tick(now time.Time, view *ViewState) {
	if !m.pressed() || m.session.HoldFired {
		return
	}
	if now.Sub(m.session.Start) >= m.pressHoldDelay {
		m.session.HoldFired = true
		view.TargetZoom = m.hoverZoom
	}
}

// Release ends the session. The zoom target always returns to 1. A release
// within the click window that never crossed the drag threshold moves the
// machine to ClickPending and returns true; the point is collected with
// TakeClick. A release without a finite position never produces a click.
func (m *Interaction) Release(x, y float64, now time.Time, view *ViewState) bool {
	view.TargetZoom = 1
	if !m.pressed() {
		return false
	}
	s := m.session
	m.session = Session{}

	if s.StillClick && now.Sub(s.Start) < m.clickMaxDuration && isFinite(x) && isFinite(y) {
		m.state = StateClickPending
		m.click = Vec2{X: x, Y: y}
		return true
	}
	m.state = StateIdle
	return false
}

// TakeClick returns the pending click point and moves the machine to Idle.
func (m *Interaction) TakeClick() (Vec2, bool) {
	if m.state != StateClickPending {
		return Vec2{}, false
	}
	p := m.click
	m.click = Vec2{}
	m.state = StateIdle
	return p, true
}

// Reset discards any session and returns to Idle.
func (m *Interaction) Reset() {
	m.state = StateIdle
	m.session = Session{}
	m.click = Vec2{}
}
