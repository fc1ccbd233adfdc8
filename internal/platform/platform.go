// Package platform holds what the terminal frontends share: the options a
// session is started with and the journaling of finished runs.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/platform/sound"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

// Options wires a session into a frontend. Only Game is required.
type Options struct {
	Game       registry.Game
	Store      *storage.Store // finished runs are journaled here when set
	Config     core.RuntimeConfig
	World      config.WorldConfig // used to vet terminal resizes
	Difficulty *config.DifficultyManager
	Sound      sound.Player
	Logger     *log.Logger
}

// WithDefaults fills in the optional collaborators.
func (o Options) WithDefaults() Options {
	if o.Config.Seed == 0 {
		o.Config.Seed = time.Now().UnixNano()
	}
	if o.Config.TickRate <= 0 {
		o.Config.TickRate = core.DefaultConfig().TickRate
	}
	if o.Difficulty == nil {
		o.Difficulty = config.NewDifficultyManager(config.DifficultyConfig{})
	}
	if o.Sound == nil {
		o.Sound = sound.Silent{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Replaying reports whether g plays back a journaled run.
func Replaying(g registry.Game) bool {
	r, ok := g.(registry.Recorder)
	return ok && r.Replaying()
}

// Journal tracks whether the current run was saved, so a finished run is
// stored exactly once.
type Journal struct {
	store  *storage.Store
	logger *log.Logger
	saved  bool
}

// NewJournal creates a journal writing to store, which may be nil.
func NewJournal(store *storage.Store, logger *log.Logger) *Journal {
	return &Journal{store: store, logger: logger}
}

// Observe inspects the result of a tick: it logs run transitions and saves
// the run the first time it is seen over.
func (j *Journal) Observe(g registry.Game, res core.StepResult) {
	if res.Has(core.EventRestart) {
		j.saved = false
		j.logger.Info("run restarted")
	}
	if res.Has(core.EventCrash) {
		j.logger.Info("run over", "score", res.State.Score, "best", res.State.Best)
	}
	if res.State.GameOver && !j.saved {
		j.save(g, res.Has(core.EventCrash))
		j.saved = true
	}
}

// save stores the finished run; failures are logged and play continues.
func (j *Journal) save(g registry.Game, crashed bool) {
	r, ok := g.(registry.Recorder)
	if !ok || r.Replaying() || j.store == nil {
		return
	}
	rec := r.Recording()
	id, err := j.store.SaveRun(g.ID(), rec, crashed)
	if err != nil {
		j.logger.Error("cannot journal run", "err", err)
		return
	}
	j.logger.Info("run journaled", "id", id, "seed", rec.Seed, "ticks", rec.Ticks, "jumps", len(rec.Jumps))
}
