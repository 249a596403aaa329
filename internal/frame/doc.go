// Package frame provides the frame signal that drives animation sessions.
//
// A [Scheduler] runs a callback once on the next frame, mirroring a display
// refresh request: a callback that wants to keep animating requests itself
// again. Two implementations exist:
//
//   - [Ticker] is a fixed-tick loop stepped explicitly, for headless runs and tests
//   - [Clock] is a real-time loop on a time.Ticker goroutine
//
// Callbacks requested while a frame is running execute on the following
// frame, never on the current one.
//
// # Thread Safety
//
// Ticker is NOT thread-safe. Clock may be used from any goroutine, but all of
// its callbacks run sequentially on its loop goroutine.
package frame
