package world

import (
	"slices"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// Viewport is the terminal size the world is laid out for. It is fixed for
// the lifetime of a World.
type Viewport struct {
	Width  int
	Height int
}

// Settings are the tunables fixed at construction time.
type Settings struct {
	MaxHeight   int   // jump ceiling in cells
	RunnerX     int   // left column of the runner sprite
	TopStone    Range // ticks between stones on the top line
	BottomStone Range // ticks between stones on the bottom line
	Grain       Range // ticks between ground grains
	Obstacle    Range // ticks between obstacle clusters
}

// DefaultSettings returns the reference tuning.
func DefaultSettings() Settings {
	return Settings{
		MaxHeight:   10,
		RunnerX:     2,
		TopStone:    Range{Min: 50, Max: 100},
		BottomStone: Range{Min: 50, Max: 100},
		Grain:       Range{Min: 10, Max: 20},
		Obstacle:    Range{Min: 100, Max: 200},
	}
}

// Rows of the scenery relative to the viewport height.
const (
	TopLineOffset    = 3 // top line drawn at Height-3
	GroundOffset     = 2 // ground strip drawn at Height-2
	BottomLineOffset = 1 // bottom line drawn at Height-1
)

// Counters is a snapshot of every countdown, as the next tick will observe it.
type Counters struct {
	TopStone    uint
	BottomStone uint
	Grain       uint
	Obstacle    uint
}

// World owns all simulation state for one run. It is not safe for concurrent
// use; a single loop drives it.
type World struct {
	vp       Viewport
	settings Settings
	rng      Rand

	scenery scenery
	spawner spawner
	runner  Runner
	frames  int
}

// New creates an empty world. Call Initiate before the first frame.
func New(vp Viewport, settings Settings, rng Rand) *World {
	w := &World{vp: vp, settings: settings, rng: rng}
	w.Reset()
	return w
}

// Reset discards all state and rebuilds it from the settings. The viewport
// and random source are kept.
func (w *World) Reset() {
	w.scenery = newScenery(w.settings, w.vp.Width)
	w.spawner = newSpawner(w.settings.Obstacle)
	w.runner = NewRunner(core.Pt(w.settings.RunnerX, w.vp.Height-TopLineOffset), w.settings.MaxHeight)
	w.frames = 0
}

// Initiate resets the world, seeds every countdown and runs Width frames
// without trimming so the scrolling buffers start full.
func (w *World) Initiate() {
	w.Reset()
	w.scenery.seed(w.rng)
	w.spawner.due.Seed(w.rng)
	for i := 0; i < w.vp.Width; i++ {
		w.NextFrame()
	}
}

// NextFrame advances the simulation by one tick: top line, bottom line,
// ground, obstacles, then the runner. It never trims.
func (w *World) NextFrame() {
	w.scenery.generate(w.rng)
	w.spawner.shift()
	w.spawner.generate(w.vp, w.rng)
	w.runner.Tick()
	w.frames++
}

// Trim drops the oldest column of each scrolling buffer and prunes obstacle
// cells at or past the left edge. Call it after every steady-state NextFrame.
func (w *World) Trim() {
	w.scenery.trim()
	w.spawner.prune()
}

// Collision reports whether any obstacle cell sits exactly on a runner cell.
func (w *World) Collision() bool {
	for _, c := range w.spawner.cells {
		if w.runner.Occupies(c) {
			return true
		}
	}
	return false
}

// Tick runs one steady-state step (NextFrame then Trim) and reports a collision.
func (w *World) Tick() bool {
	w.NextFrame()
	w.Trim()
	return w.Collision()
}

// Jump forwards a jump intent to the runner. It reports whether the runner
// accepted it; a runner already in the air ignores it.
func (w *World) Jump() bool {
	return w.runner.Jump()
}

// Viewport returns the fixed dimensions.
func (w *World) Viewport() Viewport {
	return w.vp
}

// Settings returns the construction settings.
func (w *World) Settings() Settings {
	return w.settings
}

// Frames returns how many frames ran since the last reset, warm-up included.
func (w *World) Frames() int {
	return w.frames
}

// TopLine returns a copy of the top scrolling line, oldest column first.
func (w *World) TopLine() []LineCell {
	return slices.Clone(w.scenery.topLine)
}

// BottomLine returns a copy of the bottom scrolling line.
func (w *World) BottomLine() []LineCell {
	return slices.Clone(w.scenery.bottomLine)
}

// Ground returns a copy of the ground strip; true marks a grain.
func (w *World) Ground() []bool {
	return slices.Clone(w.scenery.ground)
}

// Obstacles returns a copy of the obstacle cells in no particular order.
func (w *World) Obstacles() []core.Point {
	return slices.Clone(w.spawner.cells)
}

// Runner returns a copy of the runner state.
func (w *World) Runner() Runner {
	return w.runner
}

// Counters returns the current countdown values.
func (w *World) Counters() Counters {
	return Counters{
		TopStone:    w.scenery.topStone.Remaining(),
		BottomStone: w.scenery.bottomStone.Remaining(),
		Grain:       w.scenery.grain.Remaining(),
		Obstacle:    w.spawner.due.Remaining(),
	}
}
