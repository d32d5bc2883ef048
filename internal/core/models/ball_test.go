package models

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBallRanges(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		v := Variants[i%len(Variants)]
		b, err := NewBall(v, 800, 600, src)
		require.NoError(t, err)

		assert.Equal(t, v, b.Variant)
		assert.GreaterOrEqual(t, b.Radius, 10.0)
		assert.Less(t, b.Radius, 20.0)
		assert.Equal(t, float64(int(b.Radius)), b.Radius)
		assert.GreaterOrEqual(t, b.Position.X, 0.0)
		assert.Less(t, b.Position.X, 800.0)
		assert.GreaterOrEqual(t, b.Position.Y, 0.0)
		assert.Less(t, b.Position.Y, 600.0)
		assert.GreaterOrEqual(t, b.Direction.X, -0.5)
		assert.Less(t, b.Direction.X, 0.5)
		assert.GreaterOrEqual(t, b.Direction.Y, -0.5)
		assert.Less(t, b.Direction.Y, 0.5)
		assert.False(t, b.Depleted())
	}
}

func TestNewMonsterIsStationary(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		b, err := NewBall(Monster, 100, 100, src)
		require.NoError(t, err)
		assert.Zero(t, b.Direction.X)
		assert.Zero(t, b.Direction.Y)
	}
}

func TestNewBallIsReproducible(t *testing.T) {
	a, err := NewBall(Regular, 800, 600, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	b, err := NewBall(Regular, 800, 600, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type brokenSource struct{ *rand.Rand }

func (brokenSource) Read([]byte) (int, error) { return 0, errors.New("entropy gone") }

func TestNewBallErrors(t *testing.T) {
	_, err := NewBall(Regular, 10, 10, brokenSource{rand.New(rand.NewSource(1))})
	assert.ErrorIs(t, err, ErrRandomSource)

	_, err = NewBall(Variant(9), 10, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = NewBall(Regular, 0, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmptyBounds)
}

func TestColorBlend(t *testing.T) {
	a := Color{R: 200, G: 0, B: 99}
	b := Color{R: 0, G: 255, B: 100}

	assert.Equal(t, Color{R: 100, G: 127, B: 99}, a.Blend(b, 1, 1))
	assert.Equal(t, Color{R: 150, G: 63, B: 99}, a.Blend(b, 3, 1))
	assert.Equal(t, a, a.Blend(b, 0, 0))
	assert.Equal(t, "#c80063", a.String())
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "regular", Regular.String())
	assert.Equal(t, "monster", Monster.String())
	assert.Equal(t, "repellent", Repellent.String())
	assert.Equal(t, "variant(7)", Variant(7).String())
}
