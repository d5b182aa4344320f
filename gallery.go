package folio

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// Options configures a Gallery. Only Catalog is required.
type Options struct {
	// Config holds the gallery constants. Nil uses DefaultConfig.
	Config *Config
	Catalog Catalog
	// Loader fetches item images. Nil uses a SourceLoader rooted at ".".
	Loader ImageLoader
	// Navigator receives resolved clicks on items with a destination.
	Navigator Navigator
	// Events receives lifecycle and interaction events.
	Events EventSink
	// Device creates the rendering device on each mount. Nil uses EbitenDevice.
	Device DeviceFactory
	// PixelRatio returns the display scale. Nil means 1.
	PixelRatio func() float64
	// LabelFont is TrueType data for the labels. Nil uses Go Mono.
	LabelFont []byte
}

// resources is the GPU resource set of one mount. It is created only by
// Mount and released only by teardown.
type resources struct {
	generation uint64
	device     Device
	surface    Surface
	geometry   Geometry
	program    Program
	uniforms   *Uniforms
	handles    []ListenerHandle
	frame      FrameID
	cancel     context.CancelFunc
}

type atlasResult struct {
	generation uint64
	set        *AtlasSet
	err        error
}

// Gallery is an infinitely tiled, pannable grid of catalog items rendered
// by one shader draw per frame. A Gallery can be mounted and unmounted any
// number of times; each mount owns a fresh resource set.
//
// All methods must be called from the host update goroutine.
type Gallery struct {
	container  *Container
	frames     FrameScheduler
	cfg        Config
	catalog    Catalog
	loader     ImageLoader
	nav        Navigator
	events     EventSink
	newDevice  DeviceFactory
	pixelRatio func() float64
	labelFont  []byte
	mapper     Mapper

	view   ViewState
	input  *Interaction
	mouse  Vec2
	reveal reveal

	res        *resources
	results    chan atlasResult
	generation uint64
	lastFrame  time.Time

	debug bool
	stats frameStats
}

// NewGallery creates an unmounted gallery for container, driven by frames.
func NewGallery(container *Container, frames FrameScheduler, opts Options) (*Gallery, error) {
	if container == nil {
		return nil, ErrNoMountContainer
	}
	if frames == nil {
		return nil, fmt.Errorf("folio: nil frame scheduler")
	}
	if len(opts.Catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Gallery{
		container:  container,
		frames:     frames,
		cfg:        cfg,
		catalog:    opts.Catalog,
		loader:     opts.Loader,
		nav:        opts.Navigator,
		events:     opts.Events,
		newDevice:  opts.Device,
		pixelRatio: opts.PixelRatio,
		labelFont:  opts.LabelFont,
		mapper:     cfg.mapper(len(opts.Catalog)),
		view:       NewViewState(),
		input:      NewInteraction(cfg),
		mouse:      Vec2{X: -1, Y: -1},
		results:    make(chan atlasResult, 4),
	}
	if g.loader == nil {
		g.loader = NewSourceLoader(".")
	}
	if g.newDevice == nil {
		g.newDevice = EbitenDevice
	}
	return g, nil
}

// Mount creates the resource set, attaches the draw surface, registers
// listeners, starts loading atlases and requests the first frame. It is a
// no-op when the container already holds a surface. On error nothing is
// left attached or allocated.
func (g *Gallery) Mount() error {
	if g.res != nil || g.container.HasSurface() {
		return nil
	}

	dev, err := g.newDevice()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	if dev == nil {
		return ErrNoDevice
	}

	g.generation++
	r := &resources{generation: g.generation, device: dev}
	mounted := false
	defer func() {
		if !mounted {
			g.teardown(r)
			g.generation++
		}
	}()

	w, h := g.container.Size()
	ratio := g.ratio()
	if r.surface, err = dev.NewSurface(physical(w, ratio), physical(h, ratio)); err != nil {
		return fmt.Errorf("folio: create surface: %w", err)
	}
	r.surface.Clear(g.cfg.BackgroundColor)

	labels, err := g.newLabels()
	if err != nil {
		return err
	}

	if r.geometry, err = dev.NewGeometry(); err != nil {
		_ = labels.Close()
		return fmt.Errorf("folio: create geometry: %w", err)
	}
	if r.program, err = dev.NewProgram([]byte(galleryShaderSrc)); err != nil {
		_ = labels.Close()
		return err
	}
	if r.uniforms, err = NewUniforms(g.cfg, len(g.catalog), w, h, ratio); err != nil {
		_ = labels.Close()
		return err
	}

	g.container.Append(r.surface)
	g.listen(r)

	g.view.Reset()
	g.input.Reset()
	g.mouse = Vec2{X: -1, Y: -1}
	g.reveal.reset()
	g.lastFrame = time.Time{}

	g.res = r
	mounted = true

	g.build(r, labels)
	r.frame = g.frames.RequestFrame(g.animate)
	g.emit(GalleryEvent{Type: GalleryMounted, Index: -1})
	return nil
}

// Unmount removes every listener, cancels the pending frame, detaches the
// surface, releases every GPU resource and the device, cancels in-flight
// loads and resets view and interaction state. Unmounting an unmounted
// gallery is a no-op.
func (g *Gallery) Unmount() {
	r := g.res
	if r == nil {
		return
	}
	g.teardown(r)
	g.res = nil

	g.view.Reset()
	g.input.Reset()
	g.mouse = Vec2{X: -1, Y: -1}
	g.reveal.reset()
	g.lastFrame = time.Time{}
	g.generation++

	g.emit(GalleryEvent{Type: GalleryUnmounted, Index: -1})
}

// teardown releases r in dependency order. Every step tolerates a missing
// resource.
func (g *Gallery) teardown(r *resources) {
	for _, h := range r.handles {
		h.Remove()
	}
	r.handles = nil

	if r.frame != 0 {
		g.frames.CancelFrame(r.frame)
		r.frame = 0
	}

	if r.surface != nil {
		g.container.Remove(r.surface)
	}

	if r.geometry != nil {
		r.geometry.Dispose()
		r.geometry = nil
	}
	if r.program != nil {
		r.program.Dispose()
		r.program = nil
	}
	if r.uniforms != nil {
		r.uniforms.releaseTextures()
		r.uniforms = nil
	}

	if r.surface != nil {
		r.surface.Dispose()
		r.surface = nil
	}
	if r.device != nil {
		_ = r.device.Release()
		r.device = nil
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Mounted reports whether the gallery currently owns a resource set.
func (g *Gallery) Mounted() bool {
	return g.res != nil
}

// View returns the current view state.
func (g *Gallery) View() ViewState {
	return g.view
}

// State returns the interaction state.
func (g *Gallery) State() PointerState {
	return g.input.State()
}

// MousePos returns the hover position, (-1, -1) when outside.
func (g *Gallery) MousePos() Vec2 {
	return g.mouse
}

// Uniforms returns the live uniform set, or nil when unmounted.
func (g *Gallery) Uniforms() *Uniforms {
	if g.res == nil {
		return nil
	}
	return g.res.uniforms
}

// Surface returns the draw surface, or nil when unmounted.
func (g *Gallery) Surface() Surface {
	if g.res == nil {
		return nil
	}
	return g.res.surface
}

// Catalog returns the gallery's items.
func (g *Gallery) Catalog() Catalog {
	return g.catalog
}

// ItemAt resolves the item index under a container position using the
// current view.
func (g *Gallery) ItemAt(x, y float64) int {
	w, h := g.container.Size()
	return g.mapper.ItemAt(x, y, float64(w), float64(h), g.view)
}

// SetDebugMode enables per-frame stats on stderr.
func (g *Gallery) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// build starts the atlas build for r in the background. The result is
// applied on the update goroutine by the frame callback.
func (g *Gallery) build(r *resources, labels *LabelRenderer) {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	b := &AtlasBuilder{
		Loader:     g.loader,
		Labels:     labels,
		CellPixels: g.cfg.CellPixels,
		Workers:    g.cfg.LoadWorkers,
		Timeout:    g.cfg.LoadTimeout,
	}
	items := g.catalog
	gen := r.generation
	results := g.results

	go func() {
		defer labels.Close()
		set, err := b.Build(ctx, items)
		select {
		case results <- atlasResult{generation: gen, set: set, err: err}:
		case <-ctx.Done():
		}
	}()
}

// drainAtlases applies finished builds. Results from an earlier mount are
// dropped.
func (g *Gallery) drainAtlases() {
	for {
		select {
		case res := <-g.results:
			g.applyAtlas(res)
		default:
			return
		}
	}
}

func (g *Gallery) applyAtlas(res atlasResult) {
	r := g.res
	if r == nil || res.generation != r.generation {
		return
	}
	if res.err != nil {
		log.Printf("folio: atlas build failed: %v", res.err)
		return
	}

	for _, f := range res.set.Failures {
		g.emit(GalleryEvent{Type: GalleryItemFailed, Index: f.Index, Item: g.catalog[f.Index], Err: f.Err})
	}

	img, err := r.device.NewTexture(res.set.Images)
	if err != nil {
		log.Printf("folio: failed to upload image atlas: %v", err)
		return
	}
	lbl, err := r.device.NewTexture(res.set.Labels)
	if err != nil {
		img.Dispose()
		log.Printf("folio: failed to upload label atlas: %v", err)
		return
	}

	r.uniforms.releaseTextures()
	r.uniforms.BindAtlases(img, lbl, res.set)
	g.reveal.start(g.cfg.RevealDuration)

	g.emit(GalleryEvent{Type: GalleryAtlasReady, Index: -1})
}

func (g *Gallery) newLabels() (*LabelRenderer, error) {
	if g.labelFont == nil {
		return NewLabelRenderer(g.cfg)
	}
	return NewLabelRendererFont(g.cfg, g.labelFont)
}

// ratio returns the current display scale, falling back to 1.
func (g *Gallery) ratio() float64 {
	if g.pixelRatio == nil {
		return 1
	}
	r := g.pixelRatio()
	if !(r > 0) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

func (g *Gallery) emit(e GalleryEvent) {
	if g.events != nil {
		g.events.EmitEvent(e)
	}
}

// physical converts a logical length to device pixels.
func physical(v int, ratio float64) int {
	return int(math.Round(float64(v) * ratio))
}
