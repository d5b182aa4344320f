package folio

import "math"

// Mapper converts pointer positions into catalog indices. It mirrors the
// gallery shader: screen → clip space → lens correction → world → grid cell →
// staggered wrap onto the catalog.
type Mapper struct {
	// CellSize is the world-space period of the grid.
	CellSize float64
	// Distortion is the radial coefficient k in 1 - k*r².
	Distortion float64
	// Stagger multiplies the cell row before folding, so adjacent rows
	// rarely repeat the same item.
	Stagger float64
	// Count is the catalog size.
	Count int
}

// ScreenToClip maps container pixels to clip space in [-1, 1] with Y up.
// Non-positive viewport dimensions are treated as 1.
func ScreenToClip(screenX, screenY, viewportW, viewportH float64) Vec2 {
	if !(viewportW > 0) {
		viewportW = 1
	}
	if !(viewportH > 0) {
		viewportH = 1
	}
	return Vec2{
		X: screenX/viewportW*2 - 1,
		Y: -(screenY/viewportH*2 - 1),
	}
}

// ClipToWorld applies the lens correction and the view transform.
func (m Mapper) ClipToWorld(clip Vec2, aspect float64, view ViewState) Vec2 {
	r2 := clip.X*clip.X + clip.Y*clip.Y
	d := 1 - m.Distortion*r2
	return Vec2{
		X: clip.X*d*aspect*view.Zoom + view.Offset.X,
		Y: clip.Y*d*view.Zoom + view.Offset.Y,
	}
}

// WorldToCell quantizes a world position to its grid cell.
func (m Mapper) WorldToCell(world Vec2) (cellX, cellY float64) {
	return math.Floor(world.X / m.CellSize), math.Floor(world.Y / m.CellSize)
}

// CellIndex folds a grid cell onto the catalog. The result is always in
// [0, Count) when Count > 0; non-finite cells fold to 0.
func (m Mapper) CellIndex(cellX, cellY float64) int {
	if m.Count <= 0 {
		return 0
	}
	n := float64(m.Count)
	idx := math.Floor(math.Mod(cellX+cellY*m.Stagger, n))
	if !isFinite(idx) {
		return 0
	}
	if idx < 0 {
		idx += n
	}
	i := int(idx)
	if i < 0 || i >= m.Count {
		return 0
	}
	return i
}

// ItemAt resolves the catalog index under a pointer at (screenX, screenY)
// inside a viewport of the given size.
func (m Mapper) ItemAt(screenX, screenY, viewportW, viewportH float64, view ViewState) int {
	if !(viewportW > 0) {
		viewportW = 1
	}
	if !(viewportH > 0) {
		viewportH = 1
	}
	clip := ScreenToClip(screenX, screenY, viewportW, viewportH)
	world := m.ClipToWorld(clip, viewportW/viewportH, view)
	return m.CellIndex(m.WorldToCell(world))
}
