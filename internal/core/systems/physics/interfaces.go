package physics

// Circle-body abstractions shared by the step functions.
// Bodies own their state; the functions here only read it or return new values.

// Body is a circle in the plane.
type Body interface {
	Center() Vec2
	Extent() float64
}
