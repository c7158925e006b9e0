package engine

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// Body is an arcade physics body backed by an object in the world's
// collision space. Positions are world units, velocities units per second.
type Body struct {
	obj   *resolv.Object
	world *World

	VX, VY float64

	Bounce             float64 // Fraction of velocity kept, reversed, after a contact
	AllowGravity       bool
	Immovable          bool // Static bodies never move and never integrate
	CollideWorldBounds bool

	// Contact flags, recomputed on every step the body moves.
	TouchingDown bool // Resting on another body
	BlockedDown  bool // Resting on the world's bottom bound

	enabled bool
	owner   *Sprite
}

// Box returns the body's current bounds.
func (b *Body) Box() core.Box {
	return core.Box{X: b.obj.X, Y: b.obj.Y, W: b.obj.W, H: b.obj.H}
}

// Center returns the body's center point.
func (b *Body) Center() (float64, float64) {
	return b.obj.X + b.obj.W/2, b.obj.Y + b.obj.H/2
}

// SetCenter moves the body so its center is at (x, y).
func (b *Body) SetCenter(x, y float64) {
	b.obj.X = x - b.obj.W/2
	b.obj.Y = y - b.obj.H/2
	b.obj.Update()
}

// SetSize resizes the body around its current center.
func (b *Body) SetSize(w, h float64) {
	cx, cy := b.Center()
	b.obj.W = w
	b.obj.H = h
	b.SetCenter(cx, cy)
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX, b.VY = vx, vy
}

// SetVelocityX sets the horizontal velocity.
func (b *Body) SetVelocityX(vx float64) {
	b.VX = vx
}

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(vy float64) {
	b.VY = vy
}

// Enabled reports whether the body takes part in the simulation.
func (b *Body) Enabled() bool {
	return b.enabled
}

// Grounded reports whether the body rests on something below it.
func (b *Body) Grounded() bool {
	return b.TouchingDown
}

// Owner returns the sprite the body belongs to.
func (b *Body) Owner() *Sprite {
	return b.owner
}

// Disable removes the body from collision detection. Disabling a
// disabled body does nothing.
func (b *Body) Disable() {
	if !b.enabled {
		return
	}
	b.enabled = false
	b.world.space.Remove(b.obj)
}

// Enable puts the body back into collision detection at the given center
// with zero velocity.
func (b *Body) Enable(x, y float64) {
	b.VX, b.VY = 0, 0
	b.TouchingDown, b.BlockedDown = false, false
	b.SetCenter(x, y)
	if b.enabled {
		return
	}
	b.enabled = true
	b.world.space.Add(b.obj)
}

// Bodies implements Collidable.
func (b *Body) Bodies() []*Body {
	return []*Body{b}
}
