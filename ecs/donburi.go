package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GalleryEventType is the Donburi event type for folio gallery events.
var GalleryEventType = events.NewEventType[folio.GalleryEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gallery events are published to GalleryEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) folio.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event folio.GalleryEvent) {
	GalleryEventType.Publish(s.world, event)
}
