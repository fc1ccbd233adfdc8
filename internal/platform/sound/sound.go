// Package sound defines how frontends hand tick events to an audio backend.
package sound

import "github.com/vovakirdan/trex-runner/internal/core"

// Player reacts to the events of a simulation tick.
type Player interface {
	Play(events []core.Event)
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play([]core.Event) {}
