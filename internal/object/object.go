// Package object defines the projectiles and effects that live on the play field.
package object

import (
	"time"

	"github.com/tomz197/irondome/internal/physics"
)

// ReferenceFrame is the frame length that per-frame speeds are expressed in.
const ReferenceFrame = time.Second / 60

const (
	// GroundOffset is the height of the defended ground line above the bottom edge.
	GroundOffset = 80.0
	// LaunchOffset is the height of the launch point above the bottom edge.
	LaunchOffset = 100.0
)

// Field is the logical play field. Y grows downward.
type Field struct {
	Width  float64
	Height float64
}

// GroundY returns the y coordinate of the ground line.
func (f Field) GroundY() float64 {
	return f.Height - GroundOffset
}

// LaunchPoint returns where defenders are launched from.
func (f Field) LaunchPoint() physics.Vector {
	return physics.Vec(f.Width/2, f.Height-LaunchOffset)
}

// Contains reports whether p lies inside the field, edges included.
func (f Field) Contains(p physics.Vector) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta time.Duration
	Field Field
}

// Step returns Delta measured in reference frames.
func (c UpdateContext) Step() float64 {
	return float64(c.Delta) / float64(ReferenceFrame)
}

// Seconds returns Delta in seconds.
func (c UpdateContext) Seconds() float64 {
	return c.Delta.Seconds()
}

// Directions holds which steering directions are currently held.
type Directions struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next sweep.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Collider is a destructible object with a position.
type Collider interface {
	Destructible
	Position() physics.Vector
}

// Compact removes destroyed objects in place, preserving order.
func Compact[T Destructible](objs []T) []T {
	kept := objs[:0]
	for _, o := range objs {
		if !o.IsDestroyed() {
			kept = append(kept, o)
		}
	}
	var zero T
	for i := len(kept); i < len(objs); i++ {
		objs[i] = zero
	}
	return kept
}
