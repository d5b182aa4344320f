package folio

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// LabelRenderer rasterizes the title and year strip of each gallery item.
// The face caches glyphs and is not safe for concurrent use.
type LabelRenderer struct {
	face   font.Face
	width  int
	height int
	margin int
	color  image.Image
}

// NewLabelRenderer creates a label renderer using the built-in Go Mono face.
func NewLabelRenderer(cfg Config) (*LabelRenderer, error) {
	return NewLabelRendererFont(cfg, gomono.TTF)
}

// NewLabelRendererFont creates a label renderer from TrueType data. A font
// that cannot be parsed is reported as ErrNoRaster: without it no label can
// be drawn and the mount must fail.
func NewLabelRendererFont(cfg Config, ttfData []byte) (*LabelRenderer, error) {
	if cfg.LabelWidth <= 0 || cfg.LabelHeight <= 0 {
		return nil, fmt.Errorf("%w: label canvas %dx%d", ErrNoRaster, cfg.LabelWidth, cfg.LabelHeight)
	}
	f, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRaster, err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    cfg.LabelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &LabelRenderer{
		face:   face,
		width:  cfg.LabelWidth,
		height: cfg.LabelHeight,
		margin: cfg.LabelMargin,
		color:  image.NewUniform(cfg.TextColor.toRGBA()),
	}, nil
}

// Size returns the label canvas dimensions.
func (r *LabelRenderer) Size() (w, h int) {
	return r.width, r.height
}

// Render draws item's uppercased title left-aligned and its year
// right-aligned on a transparent canvas, both centred vertically.
func (r *LabelRenderer) Render(item Item) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	m := r.face.Metrics()
	baseline := (fixed.I(r.height) + m.Ascent - m.Descent) / 2

	d := &font.Drawer{Dst: dst, Src: r.color, Face: r.face}

	d.Dot = fixed.Point26_6{X: fixed.I(r.margin), Y: baseline}
	d.DrawString(strings.ToUpper(item.Title))

	year := strings.ToUpper(strconv.Itoa(item.Year))
	adv := d.MeasureString(year)
	d.Dot = fixed.Point26_6{X: fixed.I(r.width-r.margin) - adv, Y: baseline}
	d.DrawString(year)

	return dst
}

// Close releases the face.
func (r *LabelRenderer) Close() error {
	if r.face == nil {
		return nil
	}
	err := r.face.Close()
	r.face = nil
	return err
}
