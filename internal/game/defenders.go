package game

import (
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// DefenderSet is the collection of projectiles the player defends with.
// The keyboard uses a single steered missile, the pointer any number of
// interceptors; collision handling is the same for both.
type DefenderSet interface {
	// Advance launches and moves defenders for one frame.
	Advance(s *Session, ctx object.UpdateContext)
	// Prepare readies the set for FirstWithin queries.
	Prepare()
	// FirstWithin returns the newest live defender closer than HitRadius
	// to p, or nil.
	FirstWithin(p physics.Vector) object.Collider
	// HitRadius is the collision distance against enemy missiles.
	HitRadius() float64
	// Len returns the number of defenders, destroyed ones included until Sweep.
	Len() int
	// Sweep drops destroyed defenders.
	Sweep()
	// Reset removes every defender.
	Reset()
}

// slotSet holds at most one player missile, relaunched whenever empty.
type slotSet struct {
	missile *object.PlayerMissile
	radius  float64
}

func newSlotSet(radius float64) *slotSet {
	return &slotSet{radius: radius}
}

func (p *slotSet) Advance(s *Session, ctx object.UpdateContext) {
	if p.missile == nil {
		p.missile = object.NewPlayerMissile(ctx.Field.LaunchPoint())
		s.audio.Play(CueLaunch)
	}
	p.missile.Steer(s.held)
	p.missile.Update(ctx)
}

func (p *slotSet) Prepare() {}

func (p *slotSet) FirstWithin(pos physics.Vector) object.Collider {
	if p.missile == nil || p.missile.IsDestroyed() {
		return nil
	}
	if !physics.Within(pos, p.missile.Pos, p.radius) {
		return nil
	}
	return p.missile
}

func (p *slotSet) HitRadius() float64 { return p.radius }

func (p *slotSet) Len() int {
	if p.missile == nil {
		return 0
	}
	return 1
}

func (p *slotSet) Sweep() {
	if p.missile != nil && p.missile.IsDestroyed() {
		p.missile = nil
	}
}

func (p *slotSet) Reset() {
	p.missile = nil
}

// swarmSet holds interceptors launched toward queued aim points.
type swarmSet struct {
	interceptors []*object.Interceptor
	pending      []physics.Vector
	grid         *physics.SpatialGrid
}

func newSwarmSet(field object.Field) *swarmSet {
	return &swarmSet{
		grid: physics.NewSpatialGrid(field.Width, field.Height, InterceptorHitRadius),
	}
}

func (w *swarmSet) Advance(s *Session, ctx object.UpdateContext) {
	origin := ctx.Field.LaunchPoint()
	for _, target := range w.pending {
		if ic, ok := object.NewInterceptor(origin, target); ok {
			w.interceptors = append(w.interceptors, ic)
			s.audio.Play(CueLaunch)
		}
	}
	w.pending = w.pending[:0]

	for _, ic := range w.interceptors {
		if ic.IsDestroyed() {
			continue
		}
		if ic.Update(ctx) {
			ic.MarkDestroyed()
			s.explode(ic.Pos, object.TintSelfDestruct)
		}
	}
	w.Sweep()
}

func (w *swarmSet) Prepare() {
	w.grid.Clear()
	for i, ic := range w.interceptors {
		if !ic.IsDestroyed() {
			w.grid.Insert(ic.Pos.X, ic.Pos.Y, i)
		}
	}
}

func (w *swarmSet) FirstWithin(pos physics.Vector) object.Collider {
	if w.grid.Len() == 0 {
		return nil
	}
	idx := w.grid.HighestAround(pos.X, pos.Y, func(i int) bool {
		ic := w.interceptors[i]
		return !ic.IsDestroyed() && physics.Within(pos, ic.Pos, InterceptorHitRadius)
	})
	if idx < 0 {
		return nil
	}
	return w.interceptors[idx]
}

func (w *swarmSet) HitRadius() float64 { return InterceptorHitRadius }

func (w *swarmSet) Len() int { return len(w.interceptors) }

func (w *swarmSet) Sweep() {
	w.interceptors = object.Compact(w.interceptors)
}

func (w *swarmSet) Reset() {
	w.interceptors = nil
	w.pending = w.pending[:0]
	w.grid.Clear()
}
