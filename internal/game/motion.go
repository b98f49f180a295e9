package game

import (
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// advanceEnemies moves every enemy missile and resolves ground impacts.
// Once the match is lost no further impacts are counted.
func (s *Session) advanceEnemies(ctx object.UpdateContext) {
	for _, e := range s.enemies {
		if e.IsDestroyed() || !e.Update(ctx) {
			continue
		}

		e.MarkDestroyed()
		s.explode(e.Pos, object.TintImpact)
		s.stats.Hits++
		s.audio.Play(CueImpact)
		s.ui.StatsChanged(s.stats)

		if s.stats.Hits >= MaxHits {
			s.transition(triggerDefeat)
			return
		}
	}
}

// advanceExplosions ages every explosion. Expired ones are dropped by the sweep.
func (s *Session) advanceExplosions(ctx object.UpdateContext) {
	for _, e := range s.explosions {
		e.Update(ctx)
	}
}

func (s *Session) explode(pos physics.Vector, tint object.Tint) {
	s.explosions = append(s.explosions, object.NewExplosion(pos, tint, s.rng))
}
