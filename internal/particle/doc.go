// Package particle provides the simulation primitives shared by every
// decorative section animation.
//
// All seven entity flavours (particles, books, nodes, code blocks, molecules,
// trophies and medals, message waves and rings) use the same [Entity] shape.
// A [Population] owns a collection of entities together with the [Rule] that
// advances them once per frame:
//
//   - [Boundary]: wrap, bounce or none
//   - [Expiry]: what happens to an entity whose lifetime ran out
//   - insertion by per-frame chance or fixed cadence, bounded by a cap
//
// Visual breathing effects are derived from the entity phase with [Pulse];
// proximity lines between entities come from [Links].
//
// # Example
//
//	rng := rand.New(rand.NewSource(1))
//	b := particle.Bounds{W: 800, H: 600}
//	pop := particle.NewPopulation("dots", 50, spawn, particle.Rule{Boundary: particle.BoundaryWrap}, rng, b)
//	for {
//	    pop.Advance(rng, b)
//	}
//
// # Thread Safety
//
// Populations are NOT thread-safe. Each one belongs to exactly one section
// session and is only touched from the frame callback of that session.
package particle
