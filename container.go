package folio

import (
	"math"
	"time"
)

// InputEvent is a host event delivered to a Container.
// X and Y are container-relative logical pixels; NaN means the event
// carries no position. Width and Height are set for EventResize.
type InputEvent struct {
	Kind          EventKind
	X, Y          float64
	Width, Height int
	Time          time.Time
}

// HasPosition reports whether X and Y are usable.
func (e InputEvent) HasPosition() bool {
	return isFinite(e.X) && isFinite(e.Y)
}

// NoPosition is the coordinate value of events without a position.
var NoPosition = math.NaN()

type listenerEntry struct {
	id uint32
	fn func(InputEvent)
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id   uint32
	c    *Container
	kind EventKind
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.c == nil || h.kind >= eventKindCount {
		return
	}
	list := h.c.listeners[h.kind]
	for i, e := range list {
		if e.id == h.id {
			h.c.listeners[h.kind] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Container is the mount point of a gallery: a sized region that holds draw
// surfaces and dispatches input events to listeners.
type Container struct {
	ID string

	width, height int
	listeners     [eventKindCount][]listenerEntry
	nextID        uint32
	surfaces      []Surface
}

// NewContainer creates a container of w x h logical pixels.
func NewContainer(id string, w, h int) *Container {
	return &Container{ID: id, width: w, height: h}
}

// Size returns the container size in logical pixels.
func (c *Container) Size() (w, h int) {
	return c.width, c.height
}

// Resize changes the container size and dispatches EventResize when it
// differs from the current size.
func (c *Container) Resize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.Dispatch(InputEvent{Kind: EventResize, X: NoPosition, Y: NoPosition, Width: w, Height: h, Time: time.Now()})
}

// AddListener registers fn for events of kind.
func (c *Container) AddListener(kind EventKind, fn func(InputEvent)) ListenerHandle {
	if kind >= eventKindCount || fn == nil {
		return ListenerHandle{}
	}
	c.nextID++
	id := c.nextID
	c.listeners[kind] = append(c.listeners[kind], listenerEntry{id: id, fn: fn})
	return ListenerHandle{id: id, c: c, kind: kind}
}

// ListenerCount returns the number of listeners for kind.
func (c *Container) ListenerCount(kind EventKind) int {
	if kind >= eventKindCount {
		return 0
	}
	return len(c.listeners[kind])
}

// TotalListeners returns the number of registered listeners of all kinds.
func (c *Container) TotalListeners() int {
	n := 0
	for i := range c.listeners {
		n += len(c.listeners[i])
	}
	return n
}

// Dispatch delivers e to every listener registered for its kind. Listeners
// added or removed during dispatch take effect for the next event.
func (c *Container) Dispatch(e InputEvent) {
	if e.Kind >= eventKindCount {
		return
	}
	list := c.listeners[e.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.fn(e)
	}
}

// Append attaches a surface. Attaching the same surface twice is a no-op.
func (c *Container) Append(s Surface) {
	if s == nil || c.Contains(s) {
		return
	}
	c.surfaces = append(c.surfaces, s)
}

// Remove detaches a surface.
func (c *Container) Remove(s Surface) {
	for i, cur := range c.surfaces {
		if cur == s {
			c.surfaces = append(c.surfaces[:i], c.surfaces[i+1:]...)
			return
		}
	}
}

// Contains reports whether s is attached.
func (c *Container) Contains(s Surface) bool {
	for _, cur := range c.surfaces {
		if cur == s {
			return true
		}
	}
	return false
}

// Surfaces returns the attached surfaces in attach order.
func (c *Container) Surfaces() []Surface {
	return c.surfaces
}

// HasSurface reports whether any surface is attached.
func (c *Container) HasSurface() bool {
	return len(c.surfaces) > 0
}
