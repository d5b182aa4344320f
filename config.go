package folio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds the build-time constants of a gallery. Start from
// DefaultConfig and override fields as needed.
type Config struct {
	// CellSize is the world-space period of the tiled grid.
	CellSize float64
	// HoverZoom is the zoom target while a press is held or dragged.
	HoverZoom float64
	// LerpFactor is the per-frame damping factor for offset and zoom, in (0, 1).
	LerpFactor float64

	BorderColor     Color
	BackgroundColor Color
	TextColor       Color
	HoverColor      Color

	// PanSensitivity converts pointer pixels to world units while dragging.
	PanSensitivity float64
	// ClickMaxDuration is the longest press that still counts as a click.
	ClickMaxDuration time.Duration
	// DragThreshold is the per-move pixel delta (either axis) that turns a
	// press into a drag.
	DragThreshold float64
	// PressHoldDelay is how long a press is held before the hover zoom lifts.
	PressHoldDelay time.Duration
	// Distortion is the radial lens coefficient k in 1 - k*r².
	Distortion float64
	// Stagger is the row multiplier used to fold grid cells onto the catalog.
	Stagger float64

	// CellPixels is the edge length of one atlas cell in pixels.
	CellPixels int
	// LabelWidth and LabelHeight size the per-item label canvas.
	LabelWidth, LabelHeight int
	// LabelFontSize is the label font size in points at 72 DPI.
	LabelFontSize float64
	// LabelMargin is the horizontal inset of title and year.
	LabelMargin int

	// LoadTimeout bounds a single image fetch.
	LoadTimeout time.Duration
	// LoadWorkers bounds concurrent image fetches.
	LoadWorkers int
	// RevealDuration is the fade-in length in seconds once atlases are bound.
	// Zero shows the gallery immediately.
	RevealDuration float32
}

// DefaultConfig returns the gallery defaults.
func DefaultConfig() Config {
	return Config{
		CellSize:         0.75,
		HoverZoom:        1.25,
		LerpFactor:       0.075,
		BorderColor:      mustParseRGBA("rgba(255, 255, 255, 0.15)"),
		BackgroundColor:  mustParseRGBA("rgba(0, 0, 0, 1)"),
		TextColor:        mustParseRGBA("rgba(128, 128, 128, 1)"),
		HoverColor:       mustParseRGBA("rgba(255, 255, 255, 0)"),
		PanSensitivity:   0.003,
		ClickMaxDuration: 200 * time.Millisecond,
		DragThreshold:    2,
		PressHoldDelay:   150 * time.Millisecond,
		Distortion:       0.08,
		Stagger:          3,
		CellPixels:       512,
		LabelWidth:       2048,
		LabelHeight:      256,
		LabelFontSize:    80,
		LabelMargin:      30,
		LoadTimeout:      30 * time.Second,
		LoadWorkers:      4,
		RevealDuration:   0.6,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case !(c.CellSize > 0):
		return fmt.Errorf("folio: CellSize must be positive, got %v", c.CellSize)
	case !(c.LerpFactor > 0 && c.LerpFactor < 1):
		return fmt.Errorf("folio: LerpFactor must be in (0, 1), got %v", c.LerpFactor)
	case !(c.HoverZoom > 0):
		return fmt.Errorf("folio: HoverZoom must be positive, got %v", c.HoverZoom)
	case c.DragThreshold < 0:
		return fmt.Errorf("folio: DragThreshold must not be negative, got %v", c.DragThreshold)
	case c.CellPixels <= 0:
		return fmt.Errorf("folio: CellPixels must be positive, got %d", c.CellPixels)
	case c.LabelWidth <= 0 || c.LabelHeight <= 0:
		return fmt.Errorf("folio: label canvas must be positive, got %dx%d", c.LabelWidth, c.LabelHeight)
	case !(c.LabelFontSize > 0):
		return fmt.Errorf("folio: LabelFontSize must be positive, got %v", c.LabelFontSize)
	case c.LoadWorkers <= 0:
		return fmt.Errorf("folio: LoadWorkers must be positive, got %d", c.LoadWorkers)
	}
	return nil
}

// mapper returns the coordinate mapper for a catalog of n items.
func (c Config) mapper(n int) Mapper {
	return Mapper{
		CellSize:   c.CellSize,
		Distortion: c.Distortion,
		Stagger:    c.Stagger,
		Count:      n,
	}
}

// ParseRGBA parses a CSS-style "rgba(r, g, b, a)" or "rgb(r, g, b)" string.
// Channels are 0-255, alpha is 0-1.
func ParseRGBA(s string) (Color, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("folio: invalid color %q", s)
	}
	fn := strings.TrimSpace(s[:open])
	if fn != "rgb" && fn != "rgba" {
		return Color{}, fmt.Errorf("folio: invalid color function %q", fn)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("folio: color %q needs 3 or 4 components", s)
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("folio: color %q component %d: %w", s, i, err)
		}
		if i < 3 {
			f /= 255
		}
		v[i] = clamp01(f)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func mustParseRGBA(s string) Color {
	c, err := ParseRGBA(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}
