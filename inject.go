package folio

import "time"

// syntheticPointerEvent represents a single injected pointer event in
// container coordinates.
type syntheticPointerEvent struct {
	x, y float64
	kind EventKind
}

// InjectPress queues a pointer press at the given container coordinates.
// The event is consumed on the next frame's processInput call.
func (a *App) InjectPress(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, kind: EventPointerDown})
}

// InjectMove queues a pointer move. Between InjectPress and InjectRelease
// it drags; otherwise it hovers.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, kind: EventPointerMove})
}

// InjectRelease queues a pointer release at the given container coordinates.
func (a *App) InjectRelease(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, kind: EventPointerUp})
}

// InjectLeave queues the pointer leaving the container.
func (a *App) InjectLeave() {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: NoPosition, y: NoPosition, kind: EventPointerLeave})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (a *App) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	a.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it to the container. Returns true if an event was consumed (real input
// should be skipped).
func (a *App) processInjectedInput(now time.Time) bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	a.container.Dispatch(InputEvent{Kind: evt.kind, X: evt.x, Y: evt.y, Time: now})
	return true
}
