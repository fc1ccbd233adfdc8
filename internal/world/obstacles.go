package world

import "github.com/vovakirdan/trex-runner/internal/core"

// ShapeID names an obstacle cluster in the catalog.
type ShapeID int

const (
	ShapeSingle ShapeID = iota + 1
	ShapeMirrored
	ShapeDouble
)

// Shape is an obstacle cluster: cell offsets relative to the spawn anchor
// (viewport width, viewport height). Negative dy lifts a cell off the bottom.
type Shape struct {
	ID      ShapeID
	Offsets []core.Point
}

// Catalog lists the cluster shapes the spawner picks from uniformly.
var Catalog = []Shape{
	{
		ID: ShapeSingle,
		Offsets: []core.Point{
			{X: 1, Y: -2}, {X: 1, Y: -3}, {X: 1, Y: -4}, {X: 1, Y: -5},
			{X: 2, Y: -3},
			{X: 3, Y: -3}, {X: 3, Y: -4},
		},
	},
	{
		ID: ShapeMirrored,
		Offsets: []core.Point{
			{X: 4, Y: -2}, {X: 4, Y: -3}, {X: 4, Y: -4}, {X: 4, Y: -5},
			{X: 3, Y: -3},
			{X: 2, Y: -3}, {X: 2, Y: -4},
		},
	},
	{
		ID: ShapeDouble,
		Offsets: []core.Point{
			{X: 4, Y: -2}, {X: 4, Y: -3}, {X: 4, Y: -4}, {X: 4, Y: -5},
			{X: 3, Y: -3},
			{X: 2, Y: -3}, {X: 2, Y: -4},
			{X: 5, Y: -3},
			{X: 6, Y: -3}, {X: 6, Y: -4},
		},
	},
}

// spawner owns the obstacle field and the countdown to the next cluster.
type spawner struct {
	due   Marker[bool]
	cells []core.Point
}

func newSpawner(r Range) spawner {
	return spawner{
		due: NewMarker(r, func(observed uint) bool { return observed == 0 }),
	}
}

// shift scrolls every obstacle cell one column left.
func (s *spawner) shift() {
	for i := range s.cells {
		s.cells[i].X--
	}
}

// generate appends a random cluster just past the right edge when due. The
// shape is drawn before the countdown reseeds.
func (s *spawner) generate(vp Viewport, rng Rand) {
	if s.due.Remaining() == 0 {
		shape := Catalog[rng.Intn(len(Catalog))]
		anchor := core.Pt(vp.Width, vp.Height)
		for _, off := range shape.Offsets {
			s.cells = append(s.cells, anchor.Add(off))
		}
	}
	s.due.Next(rng)
}

// prune drops cells that scrolled onto or past the left edge.
func (s *spawner) prune() {
	live := s.cells[:0]
	for _, c := range s.cells {
		if c.X > 0 {
			live = append(live, c)
		}
	}
	s.cells = live
}
