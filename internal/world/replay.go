package world

import "math/rand"

// Recording holds everything needed to rebuild a run: the seed that drove
// the random source, the fixed viewport and settings, and the steady-state
// ticks (1-based, counted after Initiate) at which a jump was accepted.
type Recording struct {
	Seed     int64
	Viewport Viewport
	Settings Settings
	Jumps    []int
	Ticks    int // steady-state ticks played
}

// NewSource returns the random source a recorded run uses.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Outcome is the result of replaying a recording.
type Outcome struct {
	Ticks   int  // ticks actually simulated
	Crashed bool // whether the last tick ended in a collision
}

// Replay rebuilds the world described by rec and runs it for rec.Ticks ticks,
// or until the first collision.
func Replay(rec Recording) Outcome {
	p := NewPlayback(rec)
	for !p.Done() {
		p.Step()
	}
	return p.Outcome()
}

// Playback steps a recorded run one tick at a time so a frontend can draw it.
type Playback struct {
	rec     Recording
	world   *World
	next    int // index into rec.Jumps
	ticks   int
	crashed bool
}

// NewPlayback initiates a fresh world from rec.
func NewPlayback(rec Recording) *Playback {
	w := New(rec.Viewport, rec.Settings, NewSource(rec.Seed))
	w.Initiate()
	return &Playback{rec: rec, world: w}
}

// Step runs the next tick, applying the recorded jump if one is due. It
// returns whether the tick accepted a jump.
func (p *Playback) Step() (jumped bool) {
	if p.Done() {
		return false
	}
	p.ticks++
	for p.next < len(p.rec.Jumps) && p.rec.Jumps[p.next] <= p.ticks {
		if p.rec.Jumps[p.next] == p.ticks {
			jumped = p.world.Jump()
		}
		p.next++
	}
	p.crashed = p.world.Tick()
	return jumped
}

// Done reports whether playback reached the recorded length or a collision.
func (p *Playback) Done() bool {
	return p.crashed || p.ticks >= p.rec.Ticks
}

// World returns the world being replayed.
func (p *Playback) World() *World {
	return p.world
}

// Ticks returns how many ticks have been replayed.
func (p *Playback) Ticks() int {
	return p.ticks
}

// Outcome summarises the playback so far.
func (p *Playback) Outcome() Outcome {
	return Outcome{Ticks: p.ticks, Crashed: p.crashed}
}
