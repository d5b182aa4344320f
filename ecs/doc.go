// Package ecs provides ECS adapters for folio's gallery events.
//
// The primary adapter is [NewDonburiSink], which bridges gallery events
// (mount, atlas ready, drag, click, navigate) into a [Donburi] world as
// typed events. Subscribe to [GalleryEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	g, err := folio.NewGallery(container, frames, folio.Options{
//		Catalog: folio.DefaultCatalog(),
//		Events:  sink,
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
