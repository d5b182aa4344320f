package folio

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// AtlasKind distinguishes the two atlases of a gallery.
type AtlasKind uint8

const (
	AtlasImages AtlasKind = iota // photos over an opaque black background
	AtlasLabels                  // title/year strips over a transparent background
)

// String returns the atlas kind name.
func (k AtlasKind) String() string {
	switch k {
	case AtlasImages:
		return "images"
	case AtlasLabels:
		return "labels"
	default:
		return "unknown"
	}
}

// AtlasSide returns the number of cells per atlas edge for n items:
// the smallest s with s*s >= n.
func AtlasSide(n int) int {
	if n <= 0 {
		return 0
	}
	s := 1
	for s*s < n {
		s++
	}
	return s
}

// TextureAtlas is a square CPU raster of Side x Side cells, each CellPixels
// wide. Cell i holds item i at column i%Side, row i/Side.
type TextureAtlas struct {
	Kind       AtlasKind
	Side       int
	CellPixels int
	Count      int
	Pixels     *image.RGBA
}

// Filter returns the sampling filter the shader uses for this atlas:
// linear for photos, nearest for text.
func (a *TextureAtlas) Filter() ebiten.Filter {
	if a.Kind == AtlasLabels {
		return ebiten.FilterNearest
	}
	return ebiten.FilterLinear
}

// CellRect returns the pixel bounds of cell i.
func (a *TextureAtlas) CellRect(i int) image.Rectangle {
	if a.Side == 0 {
		return image.Rectangle{}
	}
	x := (i % a.Side) * a.CellPixels
	y := (i / a.Side) * a.CellPixels
	return image.Rect(x, y, x+a.CellPixels, y+a.CellPixels)
}

// Cell returns a view of cell i sharing the atlas pixels.
func (a *TextureAtlas) Cell(i int) *image.RGBA {
	return a.Pixels.SubImage(a.CellRect(i)).(*image.RGBA)
}

// ComposeAtlas packs rasters into a new atlas in catalog order. Each raster
// is stretched over its whole cell. Nil rasters leave the cell as background.
func ComposeAtlas(kind AtlasKind, rasters []image.Image, cellPixels int) *TextureAtlas {
	side := AtlasSide(len(rasters))
	a := &TextureAtlas{
		Kind:       kind,
		Side:       side,
		CellPixels: cellPixels,
		Count:      len(rasters),
		Pixels:     image.NewRGBA(image.Rect(0, 0, side*cellPixels, side*cellPixels)),
	}

	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if kind == AtlasImages {
		xdraw.Draw(a.Pixels, a.Pixels.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)
		scaler = xdraw.ApproxBiLinear
	}

	for i, r := range rasters {
		if r == nil {
			continue
		}
		scaler.Scale(a.Pixels, a.CellRect(i), r, r.Bounds(), xdraw.Over, nil)
	}
	return a
}

// LoadFailure records an item whose image could not be loaded.
type LoadFailure struct {
	Index  int
	Source string
	Err    error
}

// AtlasSet is the output of one atlas build. Images and Labels always share
// the same side and cell layout.
type AtlasSet struct {
	Images   *TextureAtlas
	Labels   *TextureAtlas
	Failures []LoadFailure
}

// Failed returns the indices of items whose cell in the image atlas is blank.
func (s *AtlasSet) Failed() []int {
	out := make([]int, len(s.Failures))
	for i, f := range s.Failures {
		out[i] = f.Index
	}
	return out
}

// errNoImageSource is recorded for items with an empty image path.
var errNoImageSource = errors.New("no image source")

// AtlasBuilder loads catalog images and composes the image and label atlases.
type AtlasBuilder struct {
	Loader ImageLoader
	// Labels draws the label strips. Nil leaves the label atlas empty.
	Labels *LabelRenderer
	// CellPixels is the atlas cell edge. Zero uses 512.
	CellPixels int
	// Workers bounds concurrent loads. Zero or less uses 4.
	Workers int
	// Timeout bounds each load. Zero means no per-item limit.
	Timeout time.Duration
}

// Build loads every item and composes both atlases. A failed load is logged,
// recorded in Failures and leaves that cell blank; it never fails the build.
// Build returns only after every item has loaded or failed. The only error
// is ctx's, when the build was cancelled.
func (b *AtlasBuilder) Build(ctx context.Context, items Catalog) (*AtlasSet, error) {
	cellPixels := b.CellPixels
	if cellPixels <= 0 {
		cellPixels = 512
	}
	workers := b.Workers
	if workers <= 0 {
		workers = 4
	}

	images := make([]image.Image, len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, it := range items {
		g.Go(func() error {
			images[i], errs[i] = b.load(ctx, it.Image)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := &AtlasSet{}
	for i, err := range errs {
		if err == nil {
			continue
		}
		log.Printf("folio: failed to load image %q: %v", items[i].Image, err)
		set.Failures = append(set.Failures, LoadFailure{Index: i, Source: items[i].Image, Err: err})
	}

	labels := make([]image.Image, len(items))
	if b.Labels != nil {
		for i, it := range items {
			labels[i] = b.Labels.Render(it)
		}
	}

	set.Images = ComposeAtlas(AtlasImages, images, cellPixels)
	set.Labels = ComposeAtlas(AtlasLabels, labels, cellPixels)
	return set, nil
}

func (b *AtlasBuilder) load(ctx context.Context, source string) (image.Image, error) {
	if source == "" {
		return nil, errNoImageSource
	}
	if b.Loader == nil {
		return nil, errors.New("no image loader")
	}
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	return b.Loader.Load(ctx, source)
}
