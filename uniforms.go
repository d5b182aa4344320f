package folio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Uniforms is the typed uniform set of the gallery shader. Field names
// match the shader variables; textures are bound as source images.
type Uniforms struct {
	Offset Vec2
	// Resolution is the surface size in logical pixels.
	Resolution Vec2
	PixelRatio float64

	BorderColor     Color
	HoverColor      Color
	BackgroundColor Color

	// MousePos is the hover position in logical pixels, (-1, -1) when the
	// pointer is outside the surface.
	MousePos Vec2

	Zoom         float64
	CellSize     float64
	TextureCount int
	Distortion   float64
	Stagger      float64
	// Alpha is the reveal factor: 0 shows only the background, 1 the grid.
	Alpha float64

	ImageAtlas  Texture
	LabelAtlas  Texture
	AtlasSide   int
	CellPixels  int
	ImageFilter ebiten.Filter
	LabelFilter ebiten.Filter
}

// NewUniforms builds the initial uniform set for a catalog of count items
// on a w x h surface. No atlases are bound.
func NewUniforms(cfg Config, count int, w, h int, pixelRatio float64) (*Uniforms, error) {
	u := &Uniforms{
		Resolution:      Vec2{X: float64(w), Y: float64(h)},
		PixelRatio:      pixelRatio,
		BorderColor:     cfg.BorderColor,
		HoverColor:      cfg.HoverColor,
		BackgroundColor: cfg.BackgroundColor,
		MousePos:        Vec2{X: -1, Y: -1},
		Zoom:            1,
		CellSize:        cfg.CellSize,
		TextureCount:    count,
		Distortion:      cfg.Distortion,
		Stagger:         cfg.Stagger,
		Alpha:           1,
		CellPixels:      cfg.CellPixels,
		ImageFilter:     ebiten.FilterLinear,
		LabelFilter:     ebiten.FilterNearest,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the invariants the shader relies on.
func (u *Uniforms) Validate() error {
	switch {
	case u.TextureCount <= 0:
		return fmt.Errorf("%w: texture count %d", ErrInvalidUniforms, u.TextureCount)
	case !(u.CellSize > 0):
		return fmt.Errorf("%w: cell size %v", ErrInvalidUniforms, u.CellSize)
	case !(u.PixelRatio > 0):
		return fmt.Errorf("%w: pixel ratio %v", ErrInvalidUniforms, u.PixelRatio)
	case u.Resolution.X < 0 || u.Resolution.Y < 0:
		return fmt.Errorf("%w: resolution %vx%v", ErrInvalidUniforms, u.Resolution.X, u.Resolution.Y)
	case !isFinite(u.Zoom) || !isFinite(u.Offset.X) || !isFinite(u.Offset.Y):
		return fmt.Errorf("%w: non-finite view", ErrInvalidUniforms)
	}
	return nil
}

// BindAtlases attaches both atlas textures. Both must come from the same
// AtlasSet so their layouts agree.
func (u *Uniforms) BindAtlases(images, labels Texture, set *AtlasSet) {
	u.ImageAtlas = images
	u.LabelAtlas = labels
	u.AtlasSide = set.Images.Side
	u.CellPixels = set.Images.CellPixels
	u.ImageFilter = set.Images.Filter()
	u.LabelFilter = set.Labels.Filter()
}

// Bound reports whether both atlases are attached.
func (u *Uniforms) Bound() bool {
	return u.ImageAtlas != nil && u.LabelAtlas != nil
}

// releaseTextures disposes every texture uniform and detaches it.
func (u *Uniforms) releaseTextures() int {
	n := 0
	if u.ImageAtlas != nil {
		u.ImageAtlas.Dispose()
		u.ImageAtlas = nil
		n++
	}
	if u.LabelAtlas != nil {
		u.LabelAtlas.Dispose()
		u.LabelAtlas = nil
		n++
	}
	return n
}

// shaderMap converts the set into Ebitengine uniform values.
func (u *Uniforms) shaderMap() map[string]any {
	return map[string]any{
		"Offset":          []float32{float32(u.Offset.X), float32(u.Offset.Y)},
		"Resolution":      []float32{float32(u.Resolution.X), float32(u.Resolution.Y)},
		"PixelRatio":      float32(u.PixelRatio),
		"BorderColor":     u.BorderColor.vec4(),
		"HoverColor":      u.HoverColor.vec4(),
		"BackgroundColor": u.BackgroundColor.vec4(),
		"MousePos":        []float32{float32(u.MousePos.X), float32(u.MousePos.Y)},
		"Zoom":            float32(u.Zoom),
		"CellSize":        float32(u.CellSize),
		"TextureCount":    float32(u.TextureCount),
		"AtlasSide":       float32(u.AtlasSide),
		"CellPixels":      float32(u.CellPixels),
		"Distortion":      float32(u.Distortion),
		"Stagger":         float32(u.Stagger),
		"ImageLinear":     filterFlag(u.ImageFilter),
		"LabelLinear":     filterFlag(u.LabelFilter),
		"Alpha":           float32(u.Alpha),
	}
}

func filterFlag(f ebiten.Filter) float32 {
	if f == ebiten.FilterLinear {
		return 1
	}
	return 0
}
