package game

import (
	"time"

	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// spawner paces enemy launches. The interval shrinks with every launch
// until it reaches MinSpawnInterval.
type spawner struct {
	interval time.Duration
	timer    time.Duration
}

func newSpawner() spawner {
	return spawner{interval: InitialSpawnInterval}
}

// advance accumulates dt and reports whether an enemy is due.
func (sp *spawner) advance(dt time.Duration) bool {
	sp.timer += dt
	if sp.timer < sp.interval {
		return false
	}
	sp.timer = 0
	sp.interval -= SpawnIntervalStep
	if sp.interval < MinSpawnInterval {
		sp.interval = MinSpawnInterval
	}
	return true
}

// spawnEnemy launches a missile from a random point on the top edge toward
// a random point on the bottom edge.
func (s *Session) spawnEnemy() {
	start := physics.Vec(s.rng.Float64()*s.field.Width, 0)
	target := physics.Vec(s.rng.Float64()*s.field.Width, s.field.Height)
	speed := EnemyMinSpeed + s.rng.Float64()*(EnemyMaxSpeed-EnemyMinSpeed)
	s.enemies = append(s.enemies, object.NewEnemyMissile(start, target, speed))
}
