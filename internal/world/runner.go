package world

import "github.com/vovakirdan/trex-runner/internal/core"

// RunnerStatus is the runner's vertical motion state.
type RunnerStatus int

const (
	OnGround RunnerStatus = iota
	Rising
	Falling
)

func (s RunnerStatus) String() string {
	switch s {
	case OnGround:
		return "OnGround"
	case Rising:
		return "Rising"
	case Falling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Part identifies which piece of the runner a sprite cell draws.
type Part int

const (
	PartLegs Part = iota
	PartBody
	PartHead
)

// SpriteSize is the number of cells in the runner sprite.
const SpriteSize = 7

// SpriteCell is one entry of the sprite template.
type SpriteCell struct {
	Offset core.Point // relative to the runner origin
	Part   Part
}

// Sprite is the runner template, anchored at the origin (body row, left column):
//
//	  ██    head row:  body (2,-1), head (3,-1)
//	███     body row:  (0,0) (1,0) (2,0)
//	▙ ▙     legs row:  (0,1) (2,1)
var Sprite = [SpriteSize]SpriteCell{
	{Offset: core.Pt(2, 1), Part: PartLegs},
	{Offset: core.Pt(0, 1), Part: PartLegs},
	{Offset: core.Pt(0, 0), Part: PartBody},
	{Offset: core.Pt(1, 0), Part: PartBody},
	{Offset: core.Pt(2, 0), Part: PartBody},
	{Offset: core.Pt(2, -1), Part: PartBody},
	{Offset: core.Pt(3, -1), Part: PartHead},
}

// Runner is the player figure. Jumps follow a fixed arc: one cell up per tick
// until maxHeight, one tick to turn, one cell down per tick, one tick to land.
type Runner struct {
	pixels    [SpriteSize]core.Point
	status    RunnerStatus
	height    int
	maxHeight int
	origin    core.Point
}

// NewRunner places a grounded runner with its sprite anchored at origin.
func NewRunner(origin core.Point, maxHeight int) Runner {
	r := Runner{
		status:    OnGround,
		maxHeight: maxHeight,
		origin:    origin,
	}
	for i, c := range Sprite {
		r.pixels[i] = origin.Add(c.Offset)
	}
	return r
}

// Jump starts a rise. It is accepted only on the ground.
func (r *Runner) Jump() bool {
	if r.status != OnGround {
		return false
	}
	r.status = Rising
	return true
}

// Tick advances the motion state machine by one step.
func (r *Runner) Tick() {
	switch r.status {
	case Rising:
		if r.height < r.maxHeight {
			r.shift(-1)
		} else {
			r.status = Falling
		}
	case Falling:
		if r.height > 0 {
			r.shift(1)
		} else {
			r.status = OnGround
		}
	}
}

// shift moves the sprite vertically; dy < 0 is up.
func (r *Runner) shift(dy int) {
	r.height -= dy
	for i := range r.pixels {
		r.pixels[i].Y += dy
	}
}

// Pixels returns the sprite cells at the current height, in Sprite order.
func (r Runner) Pixels() [SpriteSize]core.Point {
	return r.pixels
}

// Status returns the motion state.
func (r Runner) Status() RunnerStatus {
	return r.status
}

// Height returns the current rise above the ground.
func (r Runner) Height() int {
	return r.height
}

// MaxHeight returns the rise ceiling.
func (r Runner) MaxHeight() int {
	return r.maxHeight
}

// Origin returns the grounded anchor of the sprite.
func (r Runner) Origin() core.Point {
	return r.origin
}

// Occupies reports whether p is one of the sprite cells.
func (r Runner) Occupies(p core.Point) bool {
	for _, px := range r.pixels {
		if px == p {
			return true
		}
	}
	return false
}
