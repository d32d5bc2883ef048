package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zeusync/ballpit/internal/core/systems/physics"
)

const (
	minSpawnRadius = 10
	maxSpawnRadius = 20 // exclusive
)

// Ball is a circular entity on the canvas. A Radius of zero marks it depleted;
// the canvas drops depleted balls at the start of the following tick.
type Ball struct {
	ID        EntityID
	Variant   Variant
	Radius    float64
	Position  physics.Vec2
	Color     Color
	Direction physics.Vec2
}

var _ physics.Body = (*Ball)(nil)

// NewBall draws a ball of the given variant from src. Radius is an integer in
// [10,20), position an integer point inside width×height, each direction
// component in [-0.5,0.5). Monsters never move.
func NewBall(variant Variant, width, height int, src Source) (*Ball, error) {
	if variant > Repellent {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, variant)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyBounds, width, height)
	}

	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	b := &Ball{
		ID:      id,
		Variant: variant,
		Radius:  float64(minSpawnRadius + src.Intn(maxSpawnRadius-minSpawnRadius)),
		Position: physics.Vec2{
			X: float64(src.Intn(width)),
			Y: float64(src.Intn(height)),
		},
		Color: Color{
			R: uint8(src.Intn(256)),
			G: uint8(src.Intn(256)),
			B: uint8(src.Intn(256)),
		},
		Direction: physics.Vec2{
			X: src.Float64() - 0.5,
			Y: src.Float64() - 0.5,
		},
	}
	if variant == Monster {
		b.Direction = physics.Vec2{}
	}
	return b, nil
}

func (b *Ball) Center() physics.Vec2 { return b.Position }
func (b *Ball) Extent() float64      { return b.Radius }

// Depleted reports whether the ball has been emptied by a collision.
func (b *Ball) Depleted() bool { return b.Radius == 0 }

func (b *Ball) String() string {
	return fmt.Sprintf("%s %s r=%.2f at (%.2f, %.2f)",
		b.Variant, b.ID.String()[:8], b.Radius, b.Position.X, b.Position.Y)
}
