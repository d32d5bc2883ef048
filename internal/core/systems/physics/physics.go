package physics

import "math"

// Vec2 is a point or displacement in canvas coordinates.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{X: -v.X, Y: -v.Y} }
func (v Vec2) Len() float64    { return math.Hypot(v.X, v.Y) }

// Bounds is the axis-aligned box [0,Width]×[0,Height].
type Bounds struct {
	Width, Height float64
}

// OutsideX reports whether a circle at x with radius r pokes past a vertical wall.
func (b Bounds) OutsideX(x, r float64) bool { return x-r < 0 || x+r > b.Width }

// OutsideY reports whether a circle at y with radius r pokes past a horizontal wall.
func (b Bounds) OutsideY(y, r float64) bool { return y-r < 0 || y+r > b.Height }

// Distance computes Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Integrate advances a position by one unit-time Euler step.
func Integrate(pos, dir Vec2) Vec2 { return pos.Add(dir) }

// Reflect returns the direction after bouncing off the bounds. Each axis is
// checked on its own, so a circle in a corner flips both components.
// Position is never clamped.
func Reflect(pos Vec2, radius float64, dir Vec2, b Bounds) Vec2 {
	if b.OutsideX(pos.X, radius) {
		dir.X = -dir.X
	}
	if b.OutsideY(pos.Y, radius) {
		dir.Y = -dir.Y
	}
	return dir
}

// Overlaps reports whether two circles intersect. Touching circles do not.
func Overlaps(a, b Body) bool {
	return Distance(a.Center(), b.Center()) < a.Extent()+b.Extent()
}
