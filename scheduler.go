package deskview

import "time"

// FrameFunc is one frame of work. now is the time since the scheduler
// started.
type FrameFunc func(now time.Duration)

type FrameID uint64

// FrameScheduler hands out display-synchronised callbacks, one shot each.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameScheduler driven by whoever calls Step, normally the
// ebiten host once per tick. It is not safe for concurrent use.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
	due     []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a waiting callback. Cancelling one that is due in the
// Step currently running also works. Unknown IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.due {
		if q.due[i].id == id {
			q.due[i].fn = nil
			return
		}
	}
}

// Step runs every callback requested before the call. Callbacks requested
// while stepping wait for the next Step. It returns how many ran.
func (q *FrameQueue) Step(now time.Duration) int {
	q.due = q.pending
	q.pending = nil
	ran := 0
	for i := 0; i < len(q.due); i++ {
		fn := q.due[i].fn
		if fn == nil {
			continue
		}
		q.due[i].fn = nil
		fn(now)
		ran++
	}
	q.due = nil
	return ran
}

// Pending is the number of callbacks waiting for the next Step.
func (q *FrameQueue) Pending() int { return len(q.pending) }
