package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type disc struct {
	c Vec2
	r float64
}

func (d disc) Center() Vec2    { return d.c }
func (d disc) Extent() float64 { return d.r }

func TestIntegrate(t *testing.T) {
	got := Integrate(Vec2{X: 10, Y: 20}, Vec2{X: 0.25, Y: -0.5})
	assert.Equal(t, Vec2{X: 10.25, Y: 19.5}, got)
}

func TestReflect(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}
	cases := []struct {
		name string
		pos  Vec2
		r    float64
		dir  Vec2
		want Vec2
	}{
		{"inside", Vec2{X: 50, Y: 25}, 10, Vec2{X: 0.3, Y: 0.2}, Vec2{X: 0.3, Y: 0.2}},
		{"left wall", Vec2{X: 5, Y: 25}, 10, Vec2{X: -0.3, Y: 0.2}, Vec2{X: 0.3, Y: 0.2}},
		{"right wall", Vec2{X: 95, Y: 25}, 10, Vec2{X: 0.3, Y: 0.2}, Vec2{X: -0.3, Y: 0.2}},
		{"top wall", Vec2{X: 50, Y: 3}, 10, Vec2{X: 0.3, Y: -0.2}, Vec2{X: 0.3, Y: 0.2}},
		{"corner", Vec2{X: 99, Y: 49}, 10, Vec2{X: 0.3, Y: 0.2}, Vec2{X: -0.3, Y: -0.2}},
		{"flush with wall", Vec2{X: 10, Y: 10}, 10, Vec2{X: -0.3, Y: -0.2}, Vec2{X: -0.3, Y: -0.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Reflect(tc.pos, tc.r, tc.dir, b))
		})
	}
}

func TestReflectDoesNotClamp(t *testing.T) {
	pos := Vec2{X: -3, Y: 25}
	dir := Reflect(pos, 10, Vec2{X: -0.4, Y: 0}, Bounds{Width: 100, Height: 50})
	assert.Equal(t, 0.4, dir.X)
	assert.Equal(t, Vec2{X: -3, Y: 25}, pos)

	next := Integrate(pos, dir)
	unreflected := Integrate(pos, Vec2{X: -0.4, Y: 0})
	assert.Greater(t, next.X, unreflected.X)
}

func TestOverlaps(t *testing.T) {
	a := disc{c: Vec2{X: 0, Y: 0}, r: 5}
	assert.True(t, Overlaps(a, disc{c: Vec2{X: 0, Y: 0}, r: 1}))
	assert.True(t, Overlaps(a, disc{c: Vec2{X: 6, Y: 0}, r: 2}))
	assert.False(t, Overlaps(a, disc{c: Vec2{X: 3, Y: 4}, r: 0}), "distance 5 equals radii sum")
	assert.False(t, Overlaps(a, disc{c: Vec2{X: 20, Y: 0}, r: 2}))
}

func TestVecHelpers(t *testing.T) {
	v := Vec2{X: 3, Y: -4}
	assert.Equal(t, 5.0, v.Len())
	assert.Equal(t, Vec2{X: -3, Y: 4}, v.Neg())
	assert.Equal(t, Vec2{X: 2, Y: -5}, v.Sub(Vec2{X: 1, Y: 1}))
	assert.Equal(t, 5.0, Distance(Vec2{}, v))
}
