package folio

import "time"

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// FrameScheduler runs callbacks once on the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func(now time.Time)
}

// FrameQueue is a FrameScheduler driven by the host loop calling RunFrame
// once per refresh. Callbacks requested while a frame runs are deferred to
// the next frame.
type FrameQueue struct {
	pending []frameRequest
	running []frameRequest
	nextID  FrameID
	frames  uint64
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame drops a pending callback. Unknown IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// RunFrame invokes every callback pending at the time of the call.
func (q *FrameQueue) RunFrame(now time.Time) {
	q.frames++
	q.running, q.pending = q.pending, q.running[:0]
	for _, r := range q.running {
		r.fn(now)
	}
	clear(q.running)
	q.running = q.running[:0]
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns the number of frames run.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}
