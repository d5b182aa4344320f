package ecs

import (
	"testing"

	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []folio.GalleryEvent
	GalleryEventType.Subscribe(world, func(w donburi.World, e folio.GalleryEvent) {
		received = append(received, e)
	})

	item := folio.Item{Title: "Motion Study", Year: 2024, Href: "./p.html"}
	sink.EmitEvent(folio.GalleryEvent{Type: folio.GalleryClick, Index: 3, Item: item, X: 100, Y: 200})
	sink.EmitEvent(folio.GalleryEvent{Type: folio.GalleryNavigate, Index: 3, Item: item})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	GalleryEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != folio.GalleryClick || e0.Index != 3 || e0.Item.Title != "Motion Study" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	if received[1].Type != folio.GalleryNavigate {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink folio.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GalleryEventType.Subscribe(world, func(w donburi.World, e folio.GalleryEvent) {
		count1++
	})
	GalleryEventType.Subscribe(world, func(w donburi.World, e folio.GalleryEvent) {
		count2++
	})

	sink.EmitEvent(folio.GalleryEvent{Type: folio.GalleryAtlasReady, Index: -1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
