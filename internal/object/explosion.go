package object

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tomz197/irondome/internal/physics"
)

const (
	// ExplosionParticles is the number of particles in a burst.
	ExplosionParticles = 15
	// ExplosionLife is how long a burst lasts, in seconds.
	ExplosionLife = 1.0
	// ParticleGravity is added to each particle's vertical speed per reference frame.
	ParticleGravity = 0.1

	particleMinSpeed   = 1.0
	particleSpeedRange = 3.0
)

// Tint is a 24-bit RGB color, 0xRRGGBB.
type Tint uint32

// Explosion tints.
const (
	TintImpact       Tint = 0xff4444 // Enemy missile hit the ground
	TintIntercept    Tint = 0xffff44 // Defender destroyed an enemy
	TintSelfDestruct Tint = 0x4444ff // Interceptor reached its target or left the field
)

// RGB splits the tint into its channels.
func (t Tint) RGB() (r, g, b uint8) {
	return uint8(t >> 16), uint8(t >> 8), uint8(t)
}

// Hex returns the tint as "#rrggbb".
func (t Tint) Hex() string {
	return fmt.Sprintf("#%06x", uint32(t)&0xffffff)
}

// Particle is one fragment of an explosion.
type Particle struct {
	Pos   physics.Vector
	Vel   physics.Vector
	Alpha float64
	Tint  Tint
}

// Explosion is a short-lived particle burst.
type Explosion struct {
	Particles []Particle
	Life      float64 // Seconds remaining
}

// NewExplosion creates a burst of evenly spread particles at pos.
func NewExplosion(pos physics.Vector, tint Tint, rng *rand.Rand) *Explosion {
	e := &Explosion{
		Particles: make([]Particle, ExplosionParticles),
		Life:      ExplosionLife,
	}
	for i := range e.Particles {
		angle := 2 * math.Pi * float64(i) / ExplosionParticles
		speed := particleMinSpeed + rng.Float64()*particleSpeedRange
		e.Particles[i] = Particle{
			Pos:   pos,
			Vel:   physics.FromAngle(angle, speed),
			Alpha: 1,
			Tint:  tint,
		}
	}
	return e
}

// Update advances every particle and ages the burst.
// Returns true once the burst has expired.
func (e *Explosion) Update(ctx UpdateContext) bool {
	step := ctx.Step()
	secs := ctx.Seconds()
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(step))
		p.Vel.Y += ParticleGravity * step
		p.Alpha -= secs
	}
	e.Life -= secs
	return e.Life <= 0
}

// MarkDestroyed expires the burst immediately.
func (e *Explosion) MarkDestroyed() {
	e.Life = 0
}

// IsDestroyed returns true once the burst has expired.
func (e *Explosion) IsDestroyed() bool {
	return e.Life <= 0
}
