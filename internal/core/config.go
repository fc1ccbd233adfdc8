package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Ticks survived in the current run
	Best     int  // Highest score reached in this process
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Waiting  bool // Whether the game waits for the first jump
	Closed   bool // Whether the player asked to leave
}

// Event is a notable thing that happened during a tick.
// Frontends use events for side effects such as sound cues and logging.
type Event int

const (
	EventJump Event = iota + 1
	EventCrash
	EventRestart
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
