package engine

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// contactSlop is how far a body may already overlap a solid on an axis
// and still be treated as touching its surface.
const contactSlop = 0.01

// Collidable is anything colliders and overlaps can be registered on.
type Collidable interface {
	Bodies() []*Body
}

// PairFunc handles a contact between a body of the first registered
// collidable and a body of the second, in that order.
type PairFunc func(a, b *Body)

type pairing struct {
	a, b    Collidable
	fn      PairFunc
	overlap bool
}

// side reports whether body belongs to side a (1), side b (2) or neither (0).
func (p *pairing) side(body *Body) int {
	for _, x := range p.a.Bodies() {
		if x == body {
			return 1
		}
	}
	for _, x := range p.b.Bodies() {
		if x == body {
			return 2
		}
	}
	return 0
}

// World integrates bodies under gravity and resolves their contacts.
type World struct {
	space   *resolv.Space
	Gravity float64
	Bounds  core.Box

	bodies   []*Body
	pairings []*pairing
	paused   bool
}

// NewWorld creates a world of the given size whose collision space is
// partitioned into square cells of cellSize units.
func NewWorld(width, height float64, cellSize int) *World {
	if cellSize <= 0 {
		cellSize = 16
	}
	// Round up so the last partial row and column still get cells
	cols := int(math.Ceil(width / float64(cellSize)))
	rows := int(math.Ceil(height / float64(cellSize)))
	return &World{
		space:  resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		Bounds: core.Box{X: 0, Y: 0, W: width, H: height},
	}
}

// NewBody creates an enabled body centered at (x, y).
func (w *World) NewBody(x, y, width, height float64, tags ...string) *Body {
	obj := resolv.NewObject(x-width/2, y-height/2, width, height, tags...)
	b := &Body{
		obj:          obj,
		world:        w,
		AllowGravity: true,
		enabled:      true,
	}
	obj.Data = b
	w.space.Add(obj)
	w.bodies = append(w.bodies, b)
	return b
}

// NewStaticBody creates an immovable body that ignores gravity.
func (w *World) NewStaticBody(x, y, width, height float64, tags ...string) *Body {
	b := w.NewBody(x, y, width, height, tags...)
	b.Immovable = true
	b.AllowGravity = false
	return b
}

// Collide registers a solid collision between a and b. The moving side is
// stopped at the other's surface; fn, when non-nil, runs for every contact.
func (w *World) Collide(a, b Collidable, fn PairFunc) {
	w.pairings = append(w.pairings, &pairing{a: a, b: b, fn: fn})
}

// Overlap registers a sensor pair: fn runs for every step in which an
// enabled body of a intersects an enabled body of b. Motion is unaffected.
func (w *World) Overlap(a, b Collidable, fn PairFunc) {
	w.pairings = append(w.pairings, &pairing{a: a, b: b, fn: fn, overlap: true})
}

// Pause stops all stepping until Resume.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts stepping after Pause.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w.paused {
		return
	}

	for _, b := range w.bodies {
		if !b.enabled || b.Immovable {
			continue
		}
		b.TouchingDown, b.BlockedDown = false, false

		if b.AllowGravity {
			b.VY += w.Gravity * dt
		}
		w.moveAxis(b, b.VX*dt, true)
		w.moveAxis(b, b.VY*dt, false)
		if b.CollideWorldBounds {
			w.clampToBounds(b)
		}
		b.obj.Update()

		// A contact handler may have frozen the world mid-step
		if w.paused {
			return
		}
	}

	w.processOverlaps()
}

type contact struct {
	other *Body
	p     *pairing
}

// moveAxis moves b by delta along one axis, stopping at the nearest solid
// it would cross, then bounces and fires collider callbacks.
func (w *World) moveAxis(b *Body, delta float64, horizontal bool) {
	if delta == 0 {
		return
	}

	// resolv's cell bounds exclude the far edge unit, so probe one further
	probe := delta + math.Copysign(1, delta)
	var check *resolv.Collision
	if horizontal {
		check = b.obj.Check(probe, 0)
	} else {
		check = b.obj.Check(0, probe)
	}

	limit := delta
	var hits []contact
	if check != nil {
		box := b.Box()
		for _, o := range check.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b || !other.enabled {
				continue
			}
			p := w.solidPairing(b, other)
			if p == nil {
				continue
			}
			gap, crosses := gapTo(box, other.Box(), delta, horizontal)
			if !crosses {
				continue
			}
			switch {
			case math.Abs(gap) < math.Abs(limit)-1e-9:
				limit = gap
				hits = append(hits[:0], contact{other: other, p: p})
			case math.Abs(gap-limit) <= 1e-9:
				hits = append(hits, contact{other: other, p: p})
			}
		}
	}

	if horizontal {
		b.obj.X += limit
	} else {
		b.obj.Y += limit
	}
	if len(hits) == 0 {
		return
	}

	if horizontal {
		b.VX = -b.VX * b.Bounce
	} else {
		if delta > 0 {
			b.TouchingDown = true
		}
		b.VY = -b.VY * b.Bounce
	}
	b.obj.Update()

	for _, h := range hits {
		if h.p.fn == nil {
			continue
		}
		if h.p.side(b) == 1 {
			h.p.fn(b, h.other)
		} else {
			h.p.fn(h.other, b)
		}
	}
}

// gapTo returns the signed distance box can travel along the axis before
// touching other, and whether a move of delta would reach it.
func gapTo(box, other core.Box, delta float64, horizontal bool) (float64, bool) {
	if horizontal {
		if !box.OverlapsY(other) {
			return 0, false
		}
		if delta > 0 && box.Right() <= other.X+contactSlop && box.Right()+delta > other.X {
			return math.Max(other.X-box.Right(), 0), true
		}
		if delta < 0 && box.X >= other.Right()-contactSlop && box.X+delta < other.Right() {
			return math.Min(other.Right()-box.X, 0), true
		}
		return 0, false
	}

	if !box.OverlapsX(other) {
		return 0, false
	}
	if delta > 0 && box.Bottom() <= other.Y+contactSlop && box.Bottom()+delta > other.Y {
		return math.Max(other.Y-box.Bottom(), 0), true
	}
	if delta < 0 && box.Y >= other.Bottom()-contactSlop && box.Y+delta < other.Bottom() {
		return math.Min(other.Bottom()-box.Y, 0), true
	}
	return 0, false
}

// solidPairing returns the collider registered between the two bodies.
func (w *World) solidPairing(a, b *Body) *pairing {
	for _, p := range w.pairings {
		if p.overlap {
			continue
		}
		sa, sb := p.side(a), p.side(b)
		if sa != 0 && sb != 0 && sa != sb {
			return p
		}
	}
	return nil
}

// clampToBounds keeps b inside the world, bouncing off the edges.
func (w *World) clampToBounds(b *Body) {
	box := b.Box()
	maxX := w.Bounds.Right() - box.W
	maxY := w.Bounds.Bottom() - box.H

	if box.X < w.Bounds.X {
		b.obj.X = w.Bounds.X
		b.VX = -b.VX * b.Bounce
	} else if box.X > maxX {
		b.obj.X = maxX
		b.VX = -b.VX * b.Bounce
	}

	if box.Y < w.Bounds.Y {
		b.obj.Y = w.Bounds.Y
		b.VY = -b.VY * b.Bounce
	} else if box.Y >= maxY {
		b.obj.Y = maxY
		b.BlockedDown = true
		if b.VY > 0 {
			b.VY = -b.VY * b.Bounce
		}
	}
}

// processOverlaps runs sensor callbacks for intersecting enabled bodies.
// Bodies disabled by an earlier callback in the same pass are skipped.
func (w *World) processOverlaps() {
	for _, p := range w.pairings {
		if !p.overlap || p.fn == nil {
			continue
		}
		for _, a := range p.a.Bodies() {
			for _, b := range p.b.Bodies() {
				if a == b || !a.enabled || !b.enabled {
					continue
				}
				if a.Box().Overlaps(b.Box()) {
					p.fn(a, b)
				}
				if w.paused {
					return
				}
			}
		}
	}
}
