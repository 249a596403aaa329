// Package engine runs one animation session per page section.
//
// The [Engine] is the lifecycle manager. [Engine.Start] looks up each
// registered section's canvas on the page, sizes it from the layout, seeds
// the section's particle system and requests the first frame from a
// [frame.Scheduler]. Every frame a session advances its system, redraws its
// surface and requests the next frame, until [Engine.Stop] cancels it.
//
// Session states:
//
//	Uninitialized -> Running -> Stopped
//
// Sections whose canvas is missing never leave Uninitialized and are skipped
// without error. [Engine.Resize] re-measures every running canvas in place;
// entity state is untouched and the next frame's boundary policy pulls
// entities back inside.
//
// # Example
//
//	ticker := frame.NewTicker(frame.Interval(60))
//	eng := engine.New(ticker, scene.NewRegistry(scene.DefaultCaps()).All())
//	n, err := eng.Start(pg)
//	...
//	ticker.Run(ctx, 600)
//	eng.Stop()
//
// # Thread Safety
//
// Engine methods are safe to call from any goroutine. Frame callbacks run on
// the scheduler's goroutine; the frame hook runs without the engine lock
// held, so it may call Stop. [Session] accessors take the engine lock and
// may be read from any goroutine, the frame hook included.
package engine
