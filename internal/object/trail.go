package object

import "github.com/tomz197/irondome/internal/physics"

// Trail is a bounded FIFO of recent positions, oldest first.
type Trail struct {
	points []physics.Vector
	max    int
}

// NewTrail creates an empty trail holding at most max points.
func NewTrail(max int) Trail {
	return Trail{points: make([]physics.Vector, 0, max+1), max: max}
}

// Push appends p and drops the oldest point when over capacity.
func (t *Trail) Push(p physics.Vector) {
	t.points = append(t.points, p)
	if len(t.points) > t.max {
		n := copy(t.points, t.points[len(t.points)-t.max:])
		t.points = t.points[:n]
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the stored points, oldest first.
func (t *Trail) Points() []physics.Vector {
	out := make([]physics.Vector, len(t.points))
	copy(out, t.points)
	return out
}
