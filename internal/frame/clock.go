package frame

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock runs requested callbacks on a real-time tick.
type Clock struct {
	interval time.Duration

	mu    sync.Mutex
	q     queue
	start time.Time

	frames atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = Interval(0)
	}
	return &Clock{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (c *Clock) Request(cb Callback) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.push(cb)
}

func (c *Clock) Cancel(h Handle) {
	c.mu.Lock()
	c.q.cancel(h)
	c.mu.Unlock()
}

func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.len()
}

// Frames returns the number of ticks processed so far.
func (c *Clock) Frames() uint64 { return c.frames.Load() }

// Start begins the tick loop. Calling it twice, or after Stop, has no effect.
func (c *Clock) Start() {
	select {
	case <-c.stopChan:
		return
	default:
	}
	if c.running.CompareAndSwap(false, true) {
		c.start = time.Now()
		c.wg.Add(1)
		go c.loop()
	}
}

// Stop halts the loop and waits for the in-flight frame to finish.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	c.running.Store(false)
}

func (c *Clock) loop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case now := <-ticker.C:
			c.tick(now.Sub(c.start))
		}
	}
}

func (c *Clock) tick(now time.Duration) {
	c.frames.Add(1)

	c.mu.Lock()
	batch := c.q.drain()
	c.mu.Unlock()

	for _, h := range batch {
		c.mu.Lock()
		cb, ok := c.q.pop(h)
		c.mu.Unlock()
		if ok {
			cb(now)
		}
	}
}
