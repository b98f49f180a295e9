package game

import "github.com/tomz197/irondome/internal/object"

// checkCollisions matches each enemy, newest first, against the newest live
// defender within range. Both are destroyed, so neither can be matched
// twice. Stops as soon as the match is won.
func (s *Session) checkCollisions() {
	set := s.defenders()
	if set.Len() == 0 {
		return
	}
	set.Prepare()

	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		if e.IsDestroyed() {
			continue
		}
		d := set.FirstWithin(e.Pos)
		if d == nil {
			continue
		}

		e.MarkDestroyed()
		d.MarkDestroyed()
		s.explode(e.Pos.Midpoint(d.Position()), object.TintIntercept)
		s.stats.Score += InterceptScore
		s.stats.Intercepts++
		s.audio.Play(CueIntercept)
		s.ui.StatsChanged(s.stats)

		if s.stats.Intercepts >= TargetIntercepts {
			s.transition(triggerVictory)
			return
		}
	}
}
