// Package heart generates and animates the heart-shaped particle system.
//
// A Simulation owns a fixed-size Store of particles. Every frame Advance moves
// logical time forward by a constant step and Update recomputes, for each
// particle, a breathing pulse around its home point on the heart curve, its
// phase in the disintegration cycle, a smoothed position and a fresh color and
// size drawn from the active theme palette.
//
// Randomness comes from a single *rand.Rand so a seeded Simulation is
// reproducible; brightness and size are deliberately re-drawn on every call,
// which reads as shimmer on screen.
package heart
