package folio

import (
	"log"
	"time"
)

// maxFrameDelta caps the reveal step after stalls.
const maxFrameDelta = 0.25

// listen registers every container listener the gallery needs and records
// the handles on r so teardown can remove them.
func (g *Gallery) listen(r *resources) {
	add := func(kind EventKind, fn func(InputEvent)) {
		r.handles = append(r.handles, g.container.AddListener(kind, fn))
	}
	add(EventPointerDown, g.onPress)
	add(EventTouchStart, g.onPress)
	add(EventPointerMove, g.onMove)
	add(EventTouchMove, g.onMove)
	add(EventPointerUp, g.onRelease)
	add(EventTouchEnd, g.onRelease)
	add(EventPointerLeave, g.onLeave)
	add(EventResize, g.onResize)
}

func (g *Gallery) onPress(e InputEvent) {
	g.input.Press(e.X, e.Y, eventTime(e))
}

func (g *Gallery) onMove(e InputEvent) {
	if e.Kind == EventPointerMove && e.HasPosition() {
		g.mouse = Vec2{X: e.X, Y: e.Y}
	}
	if g.input.Move(e.X, e.Y, &g.view) {
		g.emit(GalleryEvent{Type: GalleryDragStart, Index: -1, X: e.X, Y: e.Y})
	}
}

func (g *Gallery) onLeave(e InputEvent) {
	g.mouse = Vec2{X: -1, Y: -1}
	g.onRelease(e)
}

// onRelease ends the gesture and, for a click, resolves the item under the
// release point and requests navigation.
func (g *Gallery) onRelease(e InputEvent) {
	dragging := g.input.State() == StateDragging
	if !g.input.Release(e.X, e.Y, eventTime(e), &g.view) {
		if dragging {
			g.emit(GalleryEvent{Type: GalleryDragEnd, Index: -1, X: e.X, Y: e.Y})
		}
		return
	}
	p, ok := g.input.TakeClick()
	if !ok {
		return
	}
	idx := g.ItemAt(p.X, p.Y)
	item := g.catalog[idx]
	g.emit(GalleryEvent{Type: GalleryClick, Index: idx, Item: item, X: p.X, Y: p.Y})

	if item.Href == "" || g.nav == nil {
		return
	}
	g.nav.Navigate(NavigationRequest{Index: idx, Item: item, Destination: item.Href})
	g.emit(GalleryEvent{Type: GalleryNavigate, Index: idx, Item: item, X: p.X, Y: p.Y})
}

// onResize resizes the surface at the current pixel ratio and updates the
// resolution uniform. View and interaction state are untouched.
func (g *Gallery) onResize(e InputEvent) {
	r := g.res
	if r == nil || r.surface == nil {
		return
	}
	w, h := e.Width, e.Height
	if w == 0 && h == 0 {
		w, h = g.container.Size()
	}
	ratio := g.ratio()
	r.surface.Resize(physical(w, ratio), physical(h, ratio))
	r.uniforms.Resolution = Vec2{X: float64(w), Y: float64(h)}
	r.uniforms.PixelRatio = ratio
}

// animate is the per-refresh callback. It re-requests itself before doing
// any work.
func (g *Gallery) animate(now time.Time) {
	r := g.res
	if r == nil {
		return
	}
	r.frame = g.frames.RequestFrame(g.animate)

	start := time.Now()
	g.drainAtlases()
	g.input.Tick(now, &g.view)
	g.view.Step(g.cfg.LerpFactor)

	var dt float32
	if !g.lastFrame.IsZero() {
		dt = float32(min(now.Sub(g.lastFrame).Seconds(), maxFrameDelta))
		dt = max(dt, 0)
	}
	g.lastFrame = now
	g.stats.stepTime = time.Since(start)

	start = time.Now()
	g.render(g.res, dt)
	g.stats.drawTime = time.Since(start)
	g.stats.frame++
	g.debugLog(g.stats)
}

// render pushes the view into the uniforms and issues one draw. Without a
// surface or bound atlases the surface is cleared to the background and the
// draw is skipped.
func (g *Gallery) render(r *resources, dt float32) {
	if r == nil || r.uniforms == nil {
		return
	}
	u := r.uniforms
	u.Offset = g.view.Offset
	u.Zoom = g.view.Zoom
	u.MousePos = g.mouse
	u.Alpha = g.reveal.update(dt)

	if r.surface == nil {
		g.stats.skipped++
		return
	}
	if !u.Bound() {
		r.surface.Clear(g.cfg.BackgroundColor)
		g.stats.skipped++
		return
	}
	if err := r.device.Draw(r.surface, r.geometry, r.program, u); err != nil {
		if g.stats.drawErrors == 0 {
			log.Printf("folio: draw failed: %v", err)
		}
		g.stats.drawErrors++
		return
	}
	g.stats.draws++
}

func eventTime(e InputEvent) time.Time {
	if e.Time.IsZero() {
		return time.Now()
	}
	return e.Time
}
