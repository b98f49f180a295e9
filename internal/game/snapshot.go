package game

import (
	"time"

	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// EnemyView is a read-only copy of an enemy missile.
type EnemyView struct {
	Pos   physics.Vector
	Vel   physics.Vector
	Trail []physics.Vector // Oldest first
}

// PlayerView is a read-only copy of the player missile.
type PlayerView struct {
	Pos    physics.Vector
	Vel    physics.Vector
	Angle  float64
	Width  float64
	Height float64
	Trail  []physics.Vector
}

// InterceptorView is a read-only copy of an interceptor.
type InterceptorView struct {
	Pos    physics.Vector
	Target physics.Vector
	Vel    physics.Vector
	Angle  float64
	Width  float64
	Height float64
	Trail  []physics.Vector
}

// ExplosionView is a read-only copy of an explosion.
type ExplosionView struct {
	Particles []object.Particle
	Life      float64
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the session.
type Snapshot struct {
	Mode          Mode
	Control       ControlMode
	Stats         Stats
	Field         object.Field
	GroundY       float64
	HitRadius     float64
	SpawnInterval time.Duration

	Enemies      []EnemyView
	Players      []PlayerView // Zero or one
	Interceptors []InterceptorView
	Explosions   []ExplosionView
}

// Snapshot copies the renderable state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:          s.mode,
		Control:       s.control,
		Stats:         s.stats,
		Field:         s.field,
		GroundY:       s.field.GroundY(),
		HitRadius:     s.defenders().HitRadius(),
		SpawnInterval: s.spawner.interval,
	}

	for _, e := range s.enemies {
		if e.IsDestroyed() {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			Pos:   e.Pos,
			Vel:   e.Vel,
			Trail: e.Trail.Points(),
		})
	}

	if p := s.slot.missile; p != nil && !p.IsDestroyed() {
		snap.Players = append(snap.Players, PlayerView{
			Pos:    p.Pos,
			Vel:    p.Vel,
			Angle:  p.Angle,
			Width:  p.Width,
			Height: p.Height,
			Trail:  p.Trail.Points(),
		})
	}

	for _, ic := range s.swarm.interceptors {
		if ic.IsDestroyed() {
			continue
		}
		snap.Interceptors = append(snap.Interceptors, InterceptorView{
			Pos:    ic.Pos,
			Target: ic.Target,
			Vel:    ic.Vel,
			Angle:  ic.Angle,
			Width:  ic.Width,
			Height: ic.Height,
			Trail:  ic.Trail.Points(),
		})
	}

	for _, e := range s.explosions {
		if e.IsDestroyed() {
			continue
		}
		particles := make([]object.Particle, len(e.Particles))
		copy(particles, e.Particles)
		snap.Explosions = append(snap.Explosions, ExplosionView{
			Particles: particles,
			Life:      e.Life,
		})
	}

	return snap
}
