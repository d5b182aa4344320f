// Package folio renders an infinitely tiled, pannable project gallery for
// [Ebitengine].
//
// A [Gallery] draws a repeating grid of catalog items (photo plus a title
// and year strip) with a single Kage shader pass. Users drag to pan, hold
// to lift the view, and click a cell to request navigation to its item.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop around an [App]:
//
//	app := folio.NewApp("gallery", 1280, 800)
//	g, err := folio.NewGallery(app.Container(), app.Frames(), folio.Options{
//		Catalog:   folio.DefaultCatalog(),
//		Navigator: folio.NavigatorFunc(func(r folio.NavigationRequest) { ... }),
//	})
//	if err != nil { ... }
//	if err := g.Mount(); err != nil { ... }
//	folio.Run(app, folio.RunConfig{Title: "Gallery"})
//
// # Pieces
//
// The gallery is built from small parts that can be used on their own:
//
//   - [AtlasBuilder] loads item images concurrently and packs them, with
//     labels drawn by [LabelRenderer], into two [TextureAtlas] rasters.
//   - [Mapper] converts a pointer position into the catalog index of the
//     cell under it, matching the shader's lens distortion.
//   - [Interaction] is the pointer state machine that separates clicks from
//     drags and sets the [ViewState] targets.
//   - [Device] owns GPU resources. [EbitenDevice] is the default; tests
//     supply their own.
//   - [Container] is the mount point: it holds draw surfaces and dispatches
//     [InputEvent]s to listeners.
//   - [FrameQueue] runs per-refresh callbacks.
//
// Mount and Unmount may be called any number of times. Unmount releases
// every listener, texture, shader and surface the matching Mount created.
//
// Gallery events can be bridged into a [Donburi] world with the adapter in
// folio/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package folio
