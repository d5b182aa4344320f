package folio

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device creates and draws the GPU resources of one mounted gallery.
// Every resource it returns must be disposed before Release.
type Device interface {
	// NewSurface creates a draw surface of w x h physical pixels.
	NewSurface(w, h int) (Surface, error)
	// NewTexture uploads an atlas.
	NewTexture(a *TextureAtlas) (Texture, error)
	// NewProgram compiles a fragment shader.
	NewProgram(src []byte) (Program, error)
	// NewGeometry creates the full-surface quad.
	NewGeometry() (Geometry, error)
	// Draw renders geo with prog into dst using u. It is one draw call.
	Draw(dst Surface, geo Geometry, prog Program, u *Uniforms) error
	// Release drops the device. Later calls fail with ErrDeviceReleased.
	Release() error
}

// Surface is a draw target attached to a Container.
type Surface interface {
	// Size returns the surface size in physical pixels.
	Size() (w, h int)
	// Resize reallocates the surface. Contents are lost.
	Resize(w, h int)
	// Clear fills the surface with c.
	Clear(c Color)
	Dispose()
}

// Texture is an uploaded atlas.
type Texture interface {
	Size() (w, h int)
	Dispose()
}

// Program is a compiled shader.
type Program interface {
	Dispose()
}

// Geometry is a vertex and index buffer.
type Geometry interface {
	Dispose()
}

// DeviceFactory creates a fresh device for a mount.
type DeviceFactory func() (Device, error)

// EbitenDevice is the factory for the Ebitengine-backed device.
func EbitenDevice() (Device, error) {
	return &ebitenDevice{}, nil
}

// --- Ebitengine implementation ---

type ebitenDevice struct {
	released bool
}

type ebitenSurface struct {
	img *ebiten.Image
}

type ebitenTexture struct {
	img *ebiten.Image
}

type ebitenProgram struct {
	shader *ebiten.Shader
}

// ebitenGeometry is a two-triangle quad. Positions are refreshed to the
// target size at draw time.
type ebitenGeometry struct {
	vertices [4]ebiten.Vertex
	indices  [6]uint16
}

// ImageSurface is implemented by surfaces backed by an ebiten.Image.
type ImageSurface interface {
	Surface
	Image() *ebiten.Image
}

func (d *ebitenDevice) NewSurface(w, h int) (Surface, error) {
	if d.released {
		return nil, ErrDeviceReleased
	}
	return &ebitenSurface{img: ebiten.NewImage(max(w, 1), max(h, 1))}, nil
}

func (d *ebitenDevice) NewTexture(a *TextureAtlas) (Texture, error) {
	if d.released {
		return nil, ErrDeviceReleased
	}
	if a == nil || a.Pixels == nil || a.Pixels.Bounds().Empty() {
		return nil, errors.New("folio: empty atlas")
	}
	return &ebitenTexture{img: ebiten.NewImageFromImage(a.Pixels)}, nil
}

func (d *ebitenDevice) NewProgram(src []byte) (Program, error) {
	if d.released {
		return nil, ErrDeviceReleased
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("folio: failed to compile gallery shader: %w", err)
	}
	return &ebitenProgram{shader: s}, nil
}

func (d *ebitenDevice) NewGeometry() (Geometry, error) {
	if d.released {
		return nil, ErrDeviceReleased
	}
	g := &ebitenGeometry{indices: [6]uint16{0, 1, 2, 1, 3, 2}}
	for i := range g.vertices {
		g.vertices[i] = ebiten.Vertex{ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	}
	return g, nil
}

func (d *ebitenDevice) Draw(dst Surface, geo Geometry, prog Program, u *Uniforms) error {
	if d.released {
		return ErrDeviceReleased
	}
	s, ok1 := dst.(*ebitenSurface)
	g, ok2 := geo.(*ebitenGeometry)
	p, ok3 := prog.(*ebitenProgram)
	img, ok4 := u.ImageAtlas.(*ebitenTexture)
	lbl, ok5 := u.LabelAtlas.(*ebitenTexture)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return errors.New("folio: resource from a different device")
	}

	w, h := s.Size()
	sw, sh := img.Size()
	g.layout(float32(w), float32(h), float32(sw), float32(sh))

	var op ebiten.DrawTrianglesShaderOptions
	op.Uniforms = u.shaderMap()
	op.Images[0] = img.img
	op.Images[1] = lbl.img
	s.img.DrawTrianglesShader(g.vertices[:], g.indices[:], p.shader, &op)
	return nil
}

func (d *ebitenDevice) Release() error {
	if d.released {
		return ErrDeviceReleased
	}
	d.released = true
	return nil
}

func (s *ebitenSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (s *ebitenSurface) Clear(c Color) {
	if s.img != nil {
		s.img.Fill(c.toRGBA())
	}
}

func (s *ebitenSurface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

func (s *ebitenSurface) Image() *ebiten.Image {
	return s.img
}

func (t *ebitenTexture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ebitenTexture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

func (p *ebitenProgram) Dispose() {
	if p.shader != nil {
		p.shader.Deallocate()
		p.shader = nil
	}
}

func (g *ebitenGeometry) Dispose() {}

// layout maps the quad onto a w x h target, sourcing the whole sw x sh atlas.
func (g *ebitenGeometry) layout(w, h, sw, sh float32) {
	g.vertices[0].DstX, g.vertices[0].DstY = 0, 0
	g.vertices[1].DstX, g.vertices[1].DstY = w, 0
	g.vertices[2].DstX, g.vertices[2].DstY = 0, h
	g.vertices[3].DstX, g.vertices[3].DstY = w, h
	g.vertices[0].SrcX, g.vertices[0].SrcY = 0, 0
	g.vertices[1].SrcX, g.vertices[1].SrcY = sw, 0
	g.vertices[2].SrcX, g.vertices[2].SrcY = 0, sh
	g.vertices[3].SrcX, g.vertices[3].SrcY = sw, sh
}
