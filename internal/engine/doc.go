// Package engine holds the timing and randomness primitives every time-gated
// behavior of the game is built on: the Cooldown timer, the Clock it reads,
// and the injectable Rand source used by AI and spawn logic.
//
// Nothing in this package is safe for concurrent use; the frame loop is
// single-threaded and owns every value created here.
package engine
