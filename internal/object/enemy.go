package object

import "github.com/tomz197/irondome/internal/physics"

// EnemyTrailLength is the number of trail points kept for enemy missiles.
const EnemyTrailLength = 10

// EnemyMissile descends toward the ground in a straight line.
type EnemyMissile struct {
	Pos       physics.Vector
	Vel       physics.Vector // Units per reference frame
	Trail     Trail
	destroyed bool
}

// NewEnemyMissile creates a missile at pos heading toward target at speed.
// A target equal to pos yields a stationary missile.
func NewEnemyMissile(pos, target physics.Vector, speed float64) *EnemyMissile {
	dir, _ := physics.Direction(pos, target)
	return &EnemyMissile{
		Pos:   pos,
		Vel:   dir.Scale(speed),
		Trail: NewTrail(EnemyTrailLength),
	}
}

// Position returns the current position.
func (m *EnemyMissile) Position() physics.Vector {
	return m.Pos
}

// MarkDestroyed marks the missile for removal.
func (m *EnemyMissile) MarkDestroyed() {
	m.destroyed = true
}

// IsDestroyed returns true if the missile is marked for destruction.
func (m *EnemyMissile) IsDestroyed() bool {
	return m.destroyed
}

// Update records the trail and moves the missile.
// Returns true when the missile has reached the ground line.
func (m *EnemyMissile) Update(ctx UpdateContext) bool {
	m.Trail.Push(m.Pos)
	m.Pos = m.Pos.Add(m.Vel.Scale(ctx.Step()))
	return m.Pos.Y >= ctx.Field.GroundY()
}
