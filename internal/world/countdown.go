// Package world implements the runner simulation: scrolling scenery, the
// obstacle spawner, the runner's jump arc and collision detection.
//
// The package is deterministic for a given Rand and performs no I/O. Frontends
// drive it one tick at a time and read snapshots back for rendering.
package world

import "fmt"

// Rand is the random source threaded through every generation step.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// Range is a half-open interval [Min, Max) that countdowns are reseeded from.
type Range struct {
	Min uint
	Max uint
}

// Valid reports whether the range is non-empty and excludes zero.
// A zero reseed would make the countdown decrement past zero.
func (r Range) Valid() bool {
	return r.Min > 0 && r.Max > r.Min
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v uint) bool {
	return v >= r.Min && v < r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}

func (r Range) draw(rng Rand) uint {
	return r.Min + uint(rng.Intn(int(r.Max-r.Min)))
}

// Countdown counts ticks until the next marker. Each tick observes the
// current value first and decrements afterwards; an observed zero triggers a
// reseed before the decrement, so the counter never goes below zero.
type Countdown struct {
	remaining uint
	reseed    Range
}

// NewCountdown returns a countdown at zero that reseeds from r.
func NewCountdown(r Range) Countdown {
	return Countdown{reseed: r}
}

// Seed draws a fresh starting value from the reseed range.
func (c *Countdown) Seed(rng Rand) {
	c.remaining = c.reseed.draw(rng)
}

// Remaining returns the value the next Tick will observe.
func (c *Countdown) Remaining() uint {
	return c.remaining
}

// Tick returns the observed value and advances the countdown by one.
func (c *Countdown) Tick(rng Rand) uint {
	observed := c.remaining
	if observed == 0 {
		c.remaining = c.reseed.draw(rng)
	}
	if c.remaining == 0 {
		panic(fmt.Sprintf("world: countdown reseeded to zero from %v", c.reseed))
	}
	c.remaining--
	return observed
}

// Marker is a countdown paired with a mapping from the observed value to the
// cell it emits. Scenery lines, the ground and the spawner are all markers.
type Marker[T any] struct {
	Countdown
	emit func(observed uint) T
}

// NewMarker builds a marker reseeding from r and emitting through emit.
func NewMarker[T any](r Range, emit func(observed uint) T) Marker[T] {
	return Marker[T]{Countdown: NewCountdown(r), emit: emit}
}

// Next advances the countdown and returns the emitted cell.
func (m *Marker[T]) Next(rng Rand) T {
	return m.emit(m.Tick(rng))
}
