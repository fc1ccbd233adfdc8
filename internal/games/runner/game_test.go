package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/world"
)

var testConfig = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 20,
	Seed:     42,
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newStarted(t *testing.T) *Game {
	t.Helper()
	g := New(registry.Options{})
	g.Reset(testConfig)
	g.Step(input(core.ActionJump))
	if g.Status() != StatusRunning {
		t.Fatalf("Status() = %v after first jump, expected Running", g.Status())
	}
	return g
}

// playUntilOver steps g, jumping every period ticks, until the run ends.
func playUntilOver(t *testing.T, g *Game, period, limit int) core.StepResult {
	t.Helper()
	var res core.StepResult
	for i := 1; i <= limit; i++ {
		in := core.NewInputFrame()
		if period > 0 && i%period == 0 {
			in.Set(core.ActionJump)
		}
		res = g.Step(in)
		if res.State.GameOver {
			return res
		}
	}
	t.Fatalf("run did not end within %d ticks", limit)
	return res
}

func TestNewUsesDefaultSettings(t *testing.T) {
	g := New(registry.Options{})
	if g.settings != world.DefaultSettings() {
		t.Errorf("settings = %+v, expected defaults", g.settings)
	}

	custom := world.DefaultSettings()
	custom.MaxHeight = 4
	g = New(registry.Options{Settings: custom})
	if g.settings != custom {
		t.Errorf("settings = %+v, expected %+v", g.settings, custom)
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID, registry.Options{})
	if err != nil {
		t.Fatalf("registry.Create() error = %v", err)
	}
	if g.ID() != ID {
		t.Errorf("ID() = %q, expected %q", g.ID(), ID)
	}
	if _, ok := g.(registry.Recorder); !ok {
		t.Error("runner should implement registry.Recorder")
	}
}

func TestResetWaitsForFirstJump(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testConfig)

	if g.Status() != StatusBeginning {
		t.Fatalf("Status() = %v, expected Beginning", g.Status())
	}
	if !g.State().Waiting {
		t.Error("State().Waiting = false, expected true")
	}
	if got := g.world.Frames(); got != testConfig.ScreenW {
		t.Errorf("Frames() = %d after reset, expected %d", got, testConfig.ScreenW)
	}

	for range 10 {
		g.Step(input(core.ActionPause))
	}
	if g.Status() != StatusBeginning || g.world.Frames() != testConfig.ScreenW {
		t.Error("world should stay frozen until the first jump")
	}

	g.Step(input(core.ActionJump))
	if g.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected Running", g.Status())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, the starting jump should not advance the world", g.State().Score)
	}
}

func TestRunningScoresTicks(t *testing.T) {
	g := newStarted(t)
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if got := g.State().Score; got != 10 {
		t.Errorf("Score = %d, expected 10", got)
	}
	if got := g.State().Best; got != 10 {
		t.Errorf("Best = %d, expected 10", got)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newStarted(t)
	g.Step(core.NewInputFrame())

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused = false after P, expected true")
	}
	frames := g.world.Frames()
	for range 5 {
		g.Step(input(core.ActionJump))
	}
	if g.world.Frames() != frames {
		t.Error("world advanced while paused")
	}
	if g.world.Runner().Status() != world.OnGround {
		t.Error("jump applied while paused")
	}

	g.Step(input(core.ActionPause))
	if g.Status() != StatusRunning {
		t.Errorf("Status() = %v after second P, expected Running", g.Status())
	}
}

func TestFocusLostPauses(t *testing.T) {
	g := newStarted(t)
	res := g.Step(input(core.ActionFocusLost, core.ActionPause))
	if !res.State.Paused {
		t.Error("focus loss should force a pause")
	}

	// Focus loss outside a run changes nothing.
	g = New(registry.Options{})
	g.Reset(testConfig)
	g.Step(input(core.ActionFocusLost))
	if g.Status() != StatusBeginning {
		t.Errorf("Status() = %v, expected Beginning", g.Status())
	}
}

func TestQuitCloses(t *testing.T) {
	for _, start := range []bool{false, true} {
		g := New(registry.Options{})
		g.Reset(testConfig)
		if start {
			g.Step(input(core.ActionJump))
		}
		res := g.Step(input(core.ActionQuit))
		if !res.State.Closed {
			t.Errorf("start=%v: State().Closed = false after quit", start)
		}
		res = g.Step(input(core.ActionJump))
		if !res.State.Closed {
			t.Errorf("start=%v: closed session should stay closed", start)
		}
	}
}

func TestCrashEndsRun(t *testing.T) {
	g := newStarted(t)
	res := playUntilOver(t, g, 0, 1000)

	if !res.Has(core.EventCrash) {
		t.Error("final step should report EventCrash")
	}
	if !g.crashed {
		t.Error("crashed = false, expected true")
	}
	if res.State.Best != res.State.Score {
		t.Errorf("Best = %d, expected %d", res.State.Best, res.State.Score)
	}

	// The world is frozen after the crash.
	frames := g.world.Frames()
	for range 5 {
		g.Step(input(core.ActionJump))
	}
	if g.world.Frames() != frames || g.State().Score != res.State.Score {
		t.Error("world advanced after game over")
	}
	if got := g.Recording().Ticks; got != res.State.Score {
		t.Errorf("Recording().Ticks = %d, expected %d", got, res.State.Score)
	}
}

func TestJumpEvents(t *testing.T) {
	g := newStarted(t)
	res := g.Step(input(core.ActionJump))
	if !res.Has(core.EventJump) {
		t.Error("accepted jump should report EventJump")
	}
	res = g.Step(input(core.ActionJump))
	if res.Has(core.EventJump) {
		t.Error("jump in the air should be ignored")
	}
	if got := g.Recording().Jumps; len(got) != 1 || got[0] != 1 {
		t.Errorf("Recording().Jumps = %v, expected [1]", got)
	}
}

func TestRestartKeepsBest(t *testing.T) {
	g := newStarted(t)
	over := playUntilOver(t, g, 0, 1000)
	oldSeed := g.Recording().Seed

	res := g.Step(input(core.ActionRestart))
	if !res.Has(core.EventRestart) {
		t.Error("restart should report EventRestart")
	}
	if g.Status() != StatusBeginning {
		t.Errorf("Status() = %v after restart, expected Beginning", g.Status())
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d after restart, expected 0", res.State.Score)
	}
	if res.State.Best != over.State.Score {
		t.Errorf("Best = %d after restart, expected %d", res.State.Best, over.State.Score)
	}
	if g.crashed {
		t.Error("crash flag should clear on restart")
	}
	rec := g.Recording()
	if rec.Seed == oldSeed {
		t.Error("restart should draw a new seed")
	}
	if len(rec.Jumps) != 0 {
		t.Errorf("Jumps = %v after restart, expected none", rec.Jumps)
	}
	if got := g.world.Frames(); got != testConfig.ScreenW {
		t.Errorf("Frames() = %d after restart, expected %d", got, testConfig.ScreenW)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newStarted(t)
	g.Step(core.NewInputFrame())
	res := g.Step(input(core.ActionRestart))
	if res.Has(core.EventRestart) || g.Status() != StatusRunning {
		t.Error("restart should only apply after game over")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, world.Recording) {
		g := newStarted(t)
		res := playUntilOver(t, g, 9, 20000)
		return res.State, g.Recording()
	}

	s1, r1 := run()
	s2, r2 := run()
	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if len(r1.Jumps) != len(r2.Jumps) {
		t.Errorf("Determinism failed: jump counts differ. Run1=%d, Run2=%d", len(r1.Jumps), len(r2.Jumps))
	}
}

func TestRecordingReplays(t *testing.T) {
	g := newStarted(t)
	res := playUntilOver(t, g, 11, 20000)
	rec := g.Recording()

	if rec.Seed != testConfig.Seed {
		t.Errorf("Recording().Seed = %d, expected %d", rec.Seed, testConfig.Seed)
	}
	want := world.Outcome{Ticks: res.State.Score, Crashed: true}
	if got := world.Replay(rec); got != want {
		t.Errorf("world.Replay() = %+v, expected %+v", got, want)
	}
}

func TestReplaySession(t *testing.T) {
	g := newStarted(t)
	res := playUntilOver(t, g, 11, 20000)
	rec := g.Recording()

	r := New(registry.Options{Replay: &rec})
	r.Reset(testConfig)
	if !r.Replaying() || r.Status() != StatusRunning {
		t.Fatalf("replay should start running, got %v", r.Status())
	}

	var last core.StepResult
	for i := 0; i < res.State.Score+10 && !last.State.GameOver; i++ {
		// Live input is ignored during playback.
		last = r.Step(input(core.ActionJump))
	}
	if !last.State.GameOver || !last.Has(core.EventCrash) {
		t.Fatalf("replay should end with the recorded crash, got %+v", last)
	}
	if last.State.Score != res.State.Score {
		t.Errorf("replay Score = %d, expected %d", last.State.Score, res.State.Score)
	}

	r.Step(input(core.ActionRestart))
	if r.Status() != StatusOver {
		t.Error("restart should be ignored during replay")
	}
}

func TestRender(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testConfig)
	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)

	h := testConfig.ScreenH
	for _, y := range []int{h - world.TopLineOffset, h - world.BottomLineOffset} {
		// The runner body shares the top line row.
		for x, r := range []rune(screen.Row(y)) {
			if !strings.ContainsRune("_/-\\█", r) {
				t.Errorf("cell (%d,%d) = %q, expected a line or sprite glyph", x, y, r)
			}
		}
	}

	legs := g.world.Runner().Pixels()[0]
	if cell := screen.GetCell(legs.X, legs.Y); cell.Rune != LegsChar || cell.Color != RunnerColor {
		t.Errorf("legs cell = %+v, expected %q in RunnerColor", cell, LegsChar)
	}
	if !strings.Contains(screen.Row(0), "Score: 00000") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.String(), StatusBeginning.Message()) {
		t.Error("beginning banner not rendered")
	}
}

func TestRenderCrashColor(t *testing.T) {
	g := newStarted(t)
	playUntilOver(t, g, 0, 1000)

	screen := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(screen)
	head := g.world.Runner().Pixels()[world.SpriteSize-1]
	if cell := screen.GetCell(head.X, head.Y); cell.Color != CrashColor {
		t.Errorf("head color = %v, expected CrashColor", cell.Color)
	}
	if !strings.Contains(screen.String(), StatusOver.Message()) {
		t.Error("game over banner not rendered")
	}
}

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusBeginning, "Press Space to Start!"},
		{StatusRunning, ""},
		{StatusPaused, "Game is Paused"},
		{StatusOver, "Game is Over"},
		{StatusClosed, ""},
	}
	for _, tt := range tests {
		if got := tt.status.Message(); got != tt.want {
			t.Errorf("%v.Message() = %q, expected %q", tt.status, got, tt.want)
		}
	}
}
