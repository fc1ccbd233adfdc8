package world

import (
	"testing"

	"github.com/vovakirdan/trex-runner/internal/core"
)

func TestRunnerSpriteTemplate(t *testing.T) {
	r := NewRunner(core.Pt(2, 21), 10)

	expected := [SpriteSize]core.Point{
		{X: 4, Y: 22}, {X: 2, Y: 22}, // legs
		{X: 2, Y: 21}, {X: 3, Y: 21}, {X: 4, Y: 21}, {X: 4, Y: 20}, // body
		{X: 5, Y: 20}, // head
	}
	if r.Pixels() != expected {
		t.Errorf("Pixels() = %v, expected %v", r.Pixels(), expected)
	}
	if r.Status() != OnGround || r.Height() != 0 {
		t.Errorf("new runner should be grounded at height 0, got %v/%d", r.Status(), r.Height())
	}
}

func TestRunnerArc(t *testing.T) {
	for _, maxHeight := range []int{1, 3, 10} {
		r := NewRunner(core.Pt(2, 40), maxHeight)
		ground := r.Pixels()

		if !r.Jump() {
			t.Fatalf("maxHeight %d: Jump() from the ground should be accepted", maxHeight)
		}

		ticks := 0
		for r.Status() != OnGround {
			r.Tick()
			ticks++
			if r.Height() < 0 || r.Height() > maxHeight {
				t.Fatalf("maxHeight %d: height %d out of bounds at tick %d", maxHeight, r.Height(), ticks)
			}
			for i, p := range r.Pixels() {
				if p.X != ground[i].X {
					t.Fatalf("maxHeight %d: sprite cell %d moved horizontally", maxHeight, i)
				}
				if ground[i].Y-p.Y != r.Height() {
					t.Fatalf("maxHeight %d: sprite cell %d not shifted by height", maxHeight, i)
				}
			}
			if ticks > 4*maxHeight+10 {
				t.Fatalf("maxHeight %d: runner never landed", maxHeight)
			}
		}

		if ticks != 2*maxHeight+2 {
			t.Errorf("maxHeight %d: arc took %d ticks, expected %d", maxHeight, ticks, 2*maxHeight+2)
		}
		if r.Height() != 0 || r.Pixels() != ground {
			t.Errorf("maxHeight %d: runner should land where it started", maxHeight)
		}
	}
}

func TestRunnerTransitions(t *testing.T) {
	r := NewRunner(core.Pt(2, 21), 10)
	r.Jump()

	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if r.Status() != Rising || r.Height() != 10 {
		t.Fatalf("after 10 ticks expected Rising at 10, got %v at %d", r.Status(), r.Height())
	}

	r.Tick()
	if r.Status() != Falling || r.Height() != 10 {
		t.Fatalf("turning tick should flip to Falling without moving, got %v at %d", r.Status(), r.Height())
	}

	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if r.Status() != Falling || r.Height() != 0 {
		t.Fatalf("after falling expected Falling at 0, got %v at %d", r.Status(), r.Height())
	}

	r.Tick()
	if r.Status() != OnGround {
		t.Fatalf("landing tick should flip to OnGround, got %v", r.Status())
	}
}

func TestRunnerNoDoubleJump(t *testing.T) {
	r := NewRunner(core.Pt(2, 21), 10)

	if !r.Jump() {
		t.Fatal("first Jump() should be accepted")
	}
	for r.Status() != OnGround {
		if r.Jump() {
			t.Fatalf("Jump() accepted while %v", r.Status())
		}
		r.Tick()
	}
	if !r.Jump() {
		t.Error("Jump() should be accepted again after landing")
	}
}

func TestRunnerGroundedTickIsNoop(t *testing.T) {
	r := NewRunner(core.Pt(2, 21), 10)
	before := r.Pixels()

	for i := 0; i < 5; i++ {
		r.Tick()
	}
	if r.Pixels() != before || r.Status() != OnGround {
		t.Error("a grounded runner should not move")
	}
}
