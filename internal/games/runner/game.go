// Package runner implements the T-Rex runner session: the run status
// machine, scoring, and recording on top of the world simulation.
package runner

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/world"
)

// ID is the registry identifier of the runner.
const ID = "runner"

// Status is the lifecycle state of a run.
type Status int

const (
	StatusBeginning Status = iota // waiting for the first jump
	StatusRunning
	StatusPaused
	StatusOver
	StatusClosed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusBeginning:
		return "Beginning"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusOver:
		return "Over"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Message returns the banner shown for the status, or "" if none.
func (s Status) Message() string {
	switch s {
	case StatusBeginning:
		return "Press Space to Start!"
	case StatusPaused:
		return "Game is Paused"
	case StatusOver:
		return "Game is Over"
	default:
		return ""
	}
}

// Game is one interactive session. Score is the number of ticks survived in
// the current run; best is the highest score since the process started.
type Game struct {
	settings world.Settings
	replay   *world.Recording

	config   core.RuntimeConfig
	rng      *rand.Rand
	world    *world.World
	playback *world.Playback

	status  Status
	score   int
	best    int
	crashed bool
	rec     world.Recording
}

// New creates a runner session. A zero Settings selects the defaults; a
// non-nil Replay plays that recording back instead of reading jumps.
func New(opts registry.Options) *Game {
	settings := opts.Settings
	if settings == (world.Settings{}) {
		settings = world.DefaultSettings()
	}
	g := &Game{settings: settings}
	if opts.Replay != nil {
		rec := *opts.Replay
		rec.Jumps = slices.Clone(rec.Jumps)
		g.replay = &rec
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "T-Rex Runner"
}

// Reset builds a fresh world for the configured screen and seed and waits
// for the first jump. The best score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.score = 0
	g.crashed = false

	if g.replay != nil {
		g.playback = world.NewPlayback(*g.replay)
		g.world = g.playback.World()
		g.rec = *g.replay
		g.status = StatusRunning
		return
	}

	vp := world.Viewport{Width: cfg.ScreenW, Height: cfg.ScreenH}
	if g.world == nil || g.world.Viewport() != vp {
		g.rng = world.NewSource(cfg.Seed)
		g.world = world.New(vp, g.settings, g.rng)
	} else {
		g.rng.Seed(cfg.Seed)
		g.world.Reset()
	}
	g.world.Initiate()

	g.rec = world.Recording{Seed: cfg.Seed, Viewport: vp, Settings: g.settings}
	g.status = StatusBeginning
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch {
	case g.status == StatusClosed:
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionQuit):
		g.status = StatusClosed
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionFocusLost) && g.status == StatusRunning:
		g.status = StatusPaused
		return core.StepResult{State: g.State()}
	}

	switch g.status {
	case StatusBeginning:
		if in.Has(core.ActionJump) {
			g.status = StatusRunning
		}

	case StatusPaused:
		if in.Has(core.ActionPause) {
			g.status = StatusRunning
		}

	case StatusOver:
		if in.Has(core.ActionRestart) && g.replay == nil {
			g.restart()
			events = append(events, core.EventRestart)
		}

	case StatusRunning:
		if in.Has(core.ActionPause) {
			g.status = StatusPaused
			break
		}
		events = g.advance(in.Has(core.ActionJump))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// advance runs one steady-state tick of the world.
func (g *Game) advance(jump bool) []core.Event {
	var events []core.Event
	var crashed, done bool

	if g.playback != nil {
		if g.playback.Step() {
			events = append(events, core.EventJump)
		}
		g.score = g.playback.Ticks()
		crashed = g.playback.Outcome().Crashed
		done = g.playback.Done()
	} else {
		tick := g.score + 1
		if jump && g.world.Jump() {
			g.rec.Jumps = append(g.rec.Jumps, tick)
			events = append(events, core.EventJump)
		}
		crashed = g.world.Tick()
		g.score = tick
		done = crashed
	}

	g.best = max(g.best, g.score)
	if crashed {
		g.crashed = true
		events = append(events, core.EventCrash)
	}
	if done {
		g.rec.Ticks = g.score
		g.status = StatusOver
	}
	return events
}

// restart starts a new run with a seed drawn from the current source, so a
// whole session stays reproducible from its first seed.
func (g *Game) restart() {
	cfg := g.config
	cfg.Seed = g.rng.Int63()
	g.Reset(cfg)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.status == StatusOver,
		Paused:   g.status == StatusPaused,
		Waiting:  g.status == StatusBeginning,
		Closed:   g.status == StatusClosed,
	}
}

// Status returns the run status.
func (g *Game) Status() Status {
	return g.status
}

// Replaying reports whether the session plays back a recording.
func (g *Game) Replaying() bool {
	return g.replay != nil
}

// Recording returns the replay log of the current run. Ticks is only final
// once the run is over.
func (g *Game) Recording() world.Recording {
	rec := g.rec
	rec.Jumps = slices.Clone(g.rec.Jumps)
	if g.status != StatusOver {
		rec.Ticks = g.score
	}
	return rec
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}
