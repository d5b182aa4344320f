package folio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size. Zero uses the container
	// size.
	Width, Height int
	// Resizable lets the user resize the window; the container follows.
	Resizable bool
	// ShowFPS enables a small FPS/TPS overlay in the top-left corner.
	ShowFPS bool
}

// App hosts a Container in an Ebitengine window. It implements
// ebiten.Game: each Update polls input into the container and runs one
// frame of the FrameQueue; each Draw composites the container's surfaces.
type App struct {
	container *Container
	frames    *FrameQueue

	// ClearColor fills the screen behind the container's surfaces.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	poller          inputPoller
	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	testRunner      *TestRunner
	updateFunc      func() error

	layoutW, layoutH int
	fps              *fpsOverlay
}

// NewApp creates an app whose container is w x h logical pixels.
func NewApp(id string, w, h int) *App {
	return &App{
		container:     NewContainer(id, w, h),
		frames:        NewFrameQueue(),
		ClearColor:    Color{A: 1},
		ScreenshotDir: "screenshots",
	}
}

// Container returns the app's mount point.
func (a *App) Container() *Container {
	return a.container
}

// Frames returns the app's frame scheduler.
func (a *App) Frames() *FrameQueue {
	return a.frames
}

// SetUpdateFunc sets a callback invoked once per Update after input has
// been dispatched and before the frame callbacks run.
func (a *App) SetUpdateFunc(fn func() error) {
	a.updateFunc = fn
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	now := time.Now()
	if a.layoutW > 0 && a.layoutH > 0 {
		a.container.Resize(a.layoutW, a.layoutH)
	}
	if a.testRunner != nil {
		a.testRunner.step(a)
	}
	a.processInput(now)
	if a.updateFunc != nil {
		if err := a.updateFunc(); err != nil {
			return err
		}
	}
	a.frames.RunFrame(now)
	if a.fps != nil {
		a.fps.update()
	}
	return nil
}

// processInput dispatches one injected event if any are queued, otherwise
// the real mouse and touch state.
func (a *App) processInput(now time.Time) {
	if a.processInjectedInput(now) {
		return
	}
	a.poller.poll(a.container, now)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.ClearColor.toRGBA())

	cw, ch := a.container.Size()
	for _, s := range a.container.Surfaces() {
		is, ok := s.(ImageSurface)
		if !ok || is.Image() == nil {
			continue
		}
		sw, sh := is.Size()
		if sw == 0 || sh == 0 {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(cw)/float64(sw), float64(ch)/float64(sh))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(is.Image(), &op)
	}

	if a.fps != nil {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The new size is applied to the container
// on the next Update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW, a.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs app until the window is closed or an update
// returns an error.
func Run(app *App, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = app.container.Size()
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		app.fps = newFPSOverlay()
	}
	return ebiten.RunGame(app)
}

// DeviceScale returns the scale factor of the monitor the window is on.
func DeviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}
