// Package rawterm drives a session directly on a tcell screen, without the
// Bubble Tea runtime. It suits terminals where the alternate-screen renderer
// flickers at high tick rates.
package rawterm

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/platform"
)

// palette maps core.Color to tcell colors.
var palette = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorReset,
	core.ColorRed:     tcell.ColorMaroon,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorOlive,
	core.ColorCyan:    tcell.ColorTeal,
	core.ColorWhite:   tcell.ColorSilver,
	core.ColorGray:    tcell.ColorGray,
}

// Style returns the tcell style for a palette color.
func Style(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		fg = tcell.ColorReset
	}
	return tcell.StyleDefault.Foreground(fg)
}

// MapKey translates a tcell key event to an action.
func MapKey(e *tcell.EventKey) core.Action {
	switch e.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ', 'w':
			return core.ActionJump
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Blit copies a core screen onto a tcell screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			c := src.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
}

// Run opens the terminal and plays the session until it closes.
func Run(opts platform.Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	return Loop(s, opts)
}

// Loop plays the session on an initialized screen until the player quits.
func Loop(s tcell.Screen, opts platform.Options) error {
	opts = opts.WithDefaults()
	game := opts.Game
	logger := opts.Logger
	journal := platform.NewJournal(opts.Store, logger)

	s.HideCursor()
	s.EnableFocus()
	s.Clear()

	game.Reset(opts.Config)
	logger.Info("session started",
		"backend", "tcell",
		"seed", opts.Config.Seed,
		"width", opts.Config.ScreenW,
		"height", opts.Config.ScreenH,
	)

	screen := core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH)
	draw := func() {
		game.Render(screen)
		Blit(s, screen)
		s.Show()
	}
	draw()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	interval := func(rate int) time.Duration {
		return time.Second / time.Duration(max(rate, 1))
	}
	ticker := time.NewTicker(interval(opts.Config.TickRate))
	defer ticker.Stop()

	in := core.NewInputFrame()
	ticks := 0
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				a := MapKey(e)
				if a == core.ActionNone {
					continue
				}
				in.Set(a)
				if a == core.ActionQuit {
					game.Step(in)
					logger.Info("session closed", "best", game.State().Best)
					return nil
				}
			case *tcell.EventFocus:
				if !e.Focused {
					in.Set(core.ActionFocusLost)
				}
			case *tcell.EventResize:
				s.Sync()
			}

		case <-ticker.C:
			result := game.Step(in)
			in.Clear()
			ticks++

			opts.Sound.Play(result.Events)
			journal.Observe(game, result)
			if result.State.Closed {
				return nil
			}
			draw()

			ticker.Reset(interval(opts.Difficulty.TickRate(opts.Config.TickRate, result.State.Score, ticks)))
		}
	}
}
