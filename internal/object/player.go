package object

import (
	"math"

	"github.com/tomz197/irondome/internal/physics"
)

const (
	// PlayerSpeed is the steering speed in units per reference frame.
	PlayerSpeed = 5.0
	// PlayerTrailLength is the number of trail points kept for the player missile.
	PlayerTrailLength = 12
	// PlayerWidth and PlayerHeight are the sprite extents used for clamping.
	PlayerWidth  = 50.0
	PlayerHeight = 100.0
)

// diagonalFactor keeps diagonal steering at the same overall speed.
const diagonalFactor = 1 / math.Sqrt2

// PlayerMissile is the keyboard-steered defender.
type PlayerMissile struct {
	Pos       physics.Vector
	Vel       physics.Vector
	Speed     float64
	Angle     float64 // Heading in radians, 0 = +x; starts pointing up
	Width     float64
	Height    float64
	Trail     Trail
	destroyed bool
}

// NewPlayerMissile creates a player missile at pos pointing up.
func NewPlayerMissile(pos physics.Vector) *PlayerMissile {
	return &PlayerMissile{
		Pos:    pos,
		Speed:  PlayerSpeed,
		Angle:  -math.Pi / 2,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Trail:  NewTrail(PlayerTrailLength),
	}
}

// Position returns the current position.
func (p *PlayerMissile) Position() physics.Vector {
	return p.Pos
}

// MarkDestroyed marks the missile for removal.
func (p *PlayerMissile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the missile is marked for destruction.
func (p *PlayerMissile) IsDestroyed() bool {
	return p.destroyed
}

// Steer sets the velocity from the held directions. Opposite directions
// cancel. The heading only changes while moving.
func (p *PlayerMissile) Steer(d Directions) {
	var v physics.Vector
	if d.Up {
		v.Y -= p.Speed
	}
	if d.Down {
		v.Y += p.Speed
	}
	if d.Left {
		v.X -= p.Speed
	}
	if d.Right {
		v.X += p.Speed
	}
	if v.X != 0 && v.Y != 0 {
		v = v.Scale(diagonalFactor)
	}

	p.Vel = v
	if !v.IsZero() {
		p.Angle = v.Angle()
	}
}

// Update moves the missile, keeps its sprite inside the field and records the trail.
func (p *PlayerMissile) Update(ctx UpdateContext) {
	p.Pos = p.Pos.Add(p.Vel.Scale(ctx.Step()))
	p.Pos.X = physics.Clamp(p.Pos.X, p.Width/2, ctx.Field.Width-p.Width/2)
	p.Pos.Y = physics.Clamp(p.Pos.Y, p.Height/2, ctx.Field.Height-p.Height/2)
	p.Trail.Push(p.Pos)
}
