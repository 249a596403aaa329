package frame

import (
	"context"
	"time"
)

// Ticker is a fixed-tick scheduler advanced by explicit Step calls.
type Ticker struct {
	interval time.Duration
	now      time.Duration
	q        queue
	frames   int
	canceled int
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = Interval(0)
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) Request(cb Callback) Handle {
	return t.q.push(cb)
}

func (t *Ticker) Cancel(h Handle) {
	if t.q.cancel(h) {
		t.canceled++
	}
}

// Step advances time by one interval and runs every callback that was
// pending when the tick began. It returns the number of callbacks run.
func (t *Ticker) Step() int {
	t.now += t.interval
	t.frames++

	ran := 0
	for _, h := range t.q.drain() {
		cb, ok := t.q.pop(h)
		if !ok {
			continue
		}
		cb(t.now)
		ran++
	}
	return ran
}

// Run steps n ticks, or until nothing is pending when n <= 0. It stops early
// when ctx is done or the queue empties.
func (t *Ticker) Run(ctx context.Context, n int) (int, error) {
	steps := 0
	for n <= 0 || steps < n {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if t.q.len() == 0 {
			break
		}
		t.Step()
		steps++
	}
	return steps, nil
}

func (t *Ticker) Pending() int { return t.q.len() }

func (t *Ticker) Now() time.Duration { return t.now }

func (t *Ticker) Frames() int { return t.frames }

// Canceled returns how many pending callbacks were canceled.
func (t *Ticker) Canceled() int { return t.canceled }
