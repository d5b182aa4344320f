package folio

// GalleryEventType identifies a gallery lifecycle or interaction event.
type GalleryEventType uint8

const (
	GalleryMounted    GalleryEventType = iota // surface attached and listeners registered
	GalleryUnmounted                          // every resource released
	GalleryAtlasReady                         // atlases uploaded and bound
	GalleryItemFailed                         // an item's image failed to load
	GalleryDragStart                          // a press crossed the drag threshold
	GalleryDragEnd                            // a drag was released
	GalleryClick                              // a release resolved to an item
	GalleryNavigate                           // a navigation request was issued
)

// String returns the event type name.
func (t GalleryEventType) String() string {
	switch t {
	case GalleryMounted:
		return "mounted"
	case GalleryUnmounted:
		return "unmounted"
	case GalleryAtlasReady:
		return "atlas-ready"
	case GalleryItemFailed:
		return "item-failed"
	case GalleryDragStart:
		return "drag-start"
	case GalleryDragEnd:
		return "drag-end"
	case GalleryClick:
		return "click"
	case GalleryNavigate:
		return "navigate"
	default:
		return "unknown"
	}
}

// GalleryEvent carries event data to an EventSink. Index and Item are set
// for item events; X and Y for pointer events.
type GalleryEvent struct {
	Type  GalleryEventType
	Index int
	Item  Item
	X, Y  float64
	Err   error
}

// EventSink receives gallery events. When set on a Gallery, events are
// forwarded as they happen, on the host update goroutine.
type EventSink interface {
	EmitEvent(event GalleryEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(GalleryEvent)

// EmitEvent calls f.
func (f EventSinkFunc) EmitEvent(event GalleryEvent) {
	f(event)
}

// NavigationRequest asks the host to navigate to an item's destination.
type NavigationRequest struct {
	Index       int
	Item        Item
	Destination string
}

// Navigator performs navigation for resolved clicks. The gallery never
// routes by itself.
type Navigator interface {
	Navigate(req NavigationRequest)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(NavigationRequest)

// Navigate calls f.
func (f NavigatorFunc) Navigate(req NavigationRequest) {
	f(req)
}
