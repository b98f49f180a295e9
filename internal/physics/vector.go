package physics

import "math"

// Vector is a 2D vector in play-field units.
type Vector struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// Distance returns the distance between two vectors
func (v Vector) Distance(other Vector) float64 {
	return Distance(v.X, v.Y, other.X, other.Y)
}

// Angle returns the angle of the vector in radians
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Midpoint returns the point halfway between v and other.
func (v Vector) Midpoint(other Vector) Vector {
	return Vector{X: (v.X + other.X) / 2, Y: (v.Y + other.Y) / 2}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle, magnitude float64) Vector {
	return Vector{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// Direction returns the unit vector pointing from one point to another, and
// false when the points coincide.
func Direction(from, to Vector) (Vector, bool) {
	d := to.Sub(from)
	if d.IsZero() {
		return Vector{}, false
	}
	return d.Normalize(), true
}
