package object

import "github.com/tomz197/irondome/internal/physics"

const (
	// InterceptorSpeed is the flight speed in units per reference frame.
	InterceptorSpeed = 6.0
	// InterceptorTrailLength is the number of trail points kept for interceptors.
	InterceptorTrailLength = 8
	// InterceptorArrivalRadius is how close to its target an interceptor self-destructs.
	InterceptorArrivalRadius = 20.0
	// InterceptorWidth and InterceptorHeight are the sprite extents.
	InterceptorWidth  = 35.0
	InterceptorHeight = 70.0
)

// Interceptor flies from the launch point toward a fixed target.
type Interceptor struct {
	Pos       physics.Vector
	Target    physics.Vector
	Vel       physics.Vector
	Angle     float64
	Width     float64
	Height    float64
	Trail     Trail
	destroyed bool
}

// NewInterceptor creates an interceptor at origin aimed at target.
// Returns false when target coincides with origin.
func NewInterceptor(origin, target physics.Vector) (*Interceptor, bool) {
	dir, ok := physics.Direction(origin, target)
	if !ok {
		return nil, false
	}
	vel := dir.Scale(InterceptorSpeed)
	return &Interceptor{
		Pos:    origin,
		Target: target,
		Vel:    vel,
		Angle:  vel.Angle(),
		Width:  InterceptorWidth,
		Height: InterceptorHeight,
		Trail:  NewTrail(InterceptorTrailLength),
	}, true
}

// Position returns the current position.
func (i *Interceptor) Position() physics.Vector {
	return i.Pos
}

// MarkDestroyed marks the interceptor for removal.
func (i *Interceptor) MarkDestroyed() {
	i.destroyed = true
}

// IsDestroyed returns true if the interceptor is marked for destruction.
func (i *Interceptor) IsDestroyed() bool {
	return i.destroyed
}

// Update records the trail and moves the interceptor.
// Returns true when it reached its target or left the field.
func (i *Interceptor) Update(ctx UpdateContext) bool {
	i.Trail.Push(i.Pos)
	i.Pos = i.Pos.Add(i.Vel.Scale(ctx.Step()))

	if physics.Within(i.Pos, i.Target, InterceptorArrivalRadius) {
		return true
	}
	return !ctx.Field.Contains(i.Pos)
}
