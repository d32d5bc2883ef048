package world

import "errors"

var (
	ErrInvalidBounds     = errors.New("canvas width and height must be positive")
	ErrNilBall           = errors.New("ball is nil")
	ErrInvalidPopulation = errors.New("population counts must not be negative")
)
