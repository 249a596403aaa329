package frame

import "time"

// Handle identifies a requested callback. The zero Handle is never issued.
type Handle uint64

// Callback receives the scheduler time of the frame it runs in.
type Callback func(now time.Duration)

// Scheduler runs callbacks once on the next frame.
type Scheduler interface {
	Request(cb Callback) Handle
	Cancel(h Handle)
}

// Interval converts a frame rate into a tick interval. Non-positive rates fall back to 60.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// queue keeps pending callbacks in request order.
type queue struct {
	next    Handle
	order   []Handle
	pending map[Handle]Callback
}

func (q *queue) push(cb Callback) Handle {
	if q.pending == nil {
		q.pending = make(map[Handle]Callback)
	}
	q.next++
	q.order = append(q.order, q.next)
	q.pending[q.next] = cb
	return q.next
}

func (q *queue) cancel(h Handle) bool {
	if _, ok := q.pending[h]; !ok {
		return false
	}
	delete(q.pending, h)
	return true
}

// drain detaches the handles due this frame. Requests made afterwards
// land in the next batch.
func (q *queue) drain() []Handle {
	batch := q.order
	q.order = nil
	return batch
}

// pop removes and returns the callback for h if it is still pending.
func (q *queue) pop(h Handle) (Callback, bool) {
	cb, ok := q.pending[h]
	if ok {
		delete(q.pending, h)
	}
	return cb, ok
}

func (q *queue) len() int { return len(q.pending) }
