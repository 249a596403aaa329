package frame

import (
	"context"
	"testing"
	"time"
)

func TestTickerRunsOncePerRequest(t *testing.T) {
	tk := NewTicker(time.Second / 60)
	calls := 0
	tk.Request(func(time.Duration) { calls++ })

	if ran := tk.Step(); ran != 1 {
		t.Errorf("expected 1 callback, got %d", ran)
	}
	if ran := tk.Step(); ran != 0 {
		t.Errorf("expected 0 callbacks, got %d", ran)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestTickerDefersSelfRequests(t *testing.T) {
	tk := NewTicker(10 * time.Millisecond)
	var times []time.Duration

	var loop Callback
	loop = func(now time.Duration) {
		times = append(times, now)
		tk.Request(loop)
	}
	tk.Request(loop)

	for i := 0; i < 3; i++ {
		if ran := tk.Step(); ran != 1 {
			t.Fatalf("tick %d: expected 1 callback, got %d", i, ran)
		}
	}

	expected := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}
	for i, want := range expected {
		if times[i] != want {
			t.Errorf("tick %d: expected %v, got %v", i, want, times[i])
		}
	}
	if tk.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", tk.Pending())
	}
}

func TestTickerCancel(t *testing.T) {
	tk := NewTicker(0)
	called := false
	h := tk.Request(func(time.Duration) { called = true })
	tk.Cancel(h)
	tk.Cancel(h)
	tk.Step()

	if called {
		t.Error("canceled callback ran")
	}
	if tk.Canceled() != 1 {
		t.Errorf("expected 1 cancel, got %d", tk.Canceled())
	}
}

func TestTickerCancelWithinFrame(t *testing.T) {
	tk := NewTicker(0)
	var second Handle
	secondRan := false

	tk.Request(func(time.Duration) { tk.Cancel(second) })
	second = tk.Request(func(time.Duration) { secondRan = true })

	if ran := tk.Step(); ran != 1 {
		t.Errorf("expected 1 callback, got %d", ran)
	}
	if secondRan {
		t.Error("callback canceled earlier in the frame still ran")
	}
}

func TestTickerRun(t *testing.T) {
	tk := NewTicker(0)
	remaining := 5
	var loop Callback
	loop = func(time.Duration) {
		remaining--
		if remaining > 0 {
			tk.Request(loop)
		}
	}
	tk.Request(loop)

	steps, err := tk.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if steps != 5 {
		t.Errorf("expected 5 steps, got %d", steps)
	}
	if tk.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", tk.Frames())
	}
}

func TestTickerRunCanceledContext(t *testing.T) {
	tk := NewTicker(0)
	tk.Request(func(time.Duration) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps, err := tk.Run(ctx, 10)
	if err == nil {
		t.Error("expected context error")
	}
	if steps != 0 {
		t.Errorf("expected 0 steps, got %d", steps)
	}
}

func TestInterval(t *testing.T) {
	if Interval(0) != time.Second/60 {
		t.Errorf("expected default 60fps interval, got %v", Interval(0))
	}
	if Interval(30) != time.Second/30 {
		t.Errorf("expected 30fps interval, got %v", Interval(30))
	}
}
