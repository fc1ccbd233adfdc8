package runner

import (
	"fmt"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/world"
)

// Visual characters for rendering
const (
	LineChar        = '_'
	StoneStartChar  = '/'
	StoneMiddleChar = '-'
	StoneEndChar    = '\\'
	GrainChar       = '.'
	ObstacleChar    = '█'
	LegsChar        = '▙'
	BodyChar        = '█'
)

// Palette
const (
	LineColor     = core.ColorWhite
	GrainColor    = core.ColorGray
	ObstacleColor = core.ColorGreen
	RunnerColor   = core.ColorCyan
	CrashColor    = core.ColorRed
	HUDColor      = core.ColorYellow
)

var lineGlyphs = map[world.LineCell]rune{
	world.Plain:       LineChar,
	world.StoneStart:  StoneStartChar,
	world.StoneMiddle: StoneMiddleChar,
	world.StoneEnd:    StoneEndChar,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	h := g.world.Viewport().Height
	drawLine(dst, h-world.TopLineOffset, g.world.TopLine())
	drawLine(dst, h-world.BottomLineOffset, g.world.BottomLine())

	for x, grain := range g.world.Ground() {
		if grain {
			dst.SetColored(x, h-world.GroundOffset, GrainChar, GrainColor)
		}
	}

	for _, p := range g.world.Obstacles() {
		dst.SetColored(p.X, p.Y, ObstacleChar, ObstacleColor)
	}

	g.drawRunner(dst)
	g.drawHUD(dst)

	switch g.status {
	case StatusBeginning:
		g.drawCenteredMessage(dst, g.status.Message(), "Space jump  |  P pause  |  Q quit")
	case StatusPaused:
		g.drawCenteredMessage(dst, g.status.Message(), "Press P to resume")
	case StatusOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		if g.replay != nil {
			sub = fmt.Sprintf("Replay ended at tick %d  |  Press Q to leave", g.score)
		}
		g.drawCenteredMessage(dst, g.status.Message(), sub)
	}
}

func drawLine(dst *core.Screen, y int, cells []world.LineCell) {
	for x, c := range cells {
		dst.SetColored(x, y, lineGlyphs[c], LineColor)
	}
}

// drawRunner draws the sprite; it turns red after a crash.
func (g *Game) drawRunner(dst *core.Screen) {
	color := RunnerColor
	if g.crashed {
		color = CrashColor
	}

	r := g.world.Runner()
	for i, p := range r.Pixels() {
		ch := BodyChar
		if world.Sprite[i].Part == world.PartLegs {
			ch = LegsChar
		}
		dst.SetColored(p.X, p.Y, ch, color)
	}
}

// drawHUD draws the score line on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %05d  Best: %05d ", g.score, g.best)
	if g.replay != nil {
		hud = fmt.Sprintf(" REPLAY  Tick: %05d/%05d ", g.score, g.replay.Ticks)
	}
	dst.DrawTextColored(2, 0, hud, HUDColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), HUDColor)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
