package models

import "errors"

var (
	ErrRandomSource   = errors.New("random source unavailable")
	ErrUnknownVariant = errors.New("unknown ball variant")
	ErrEmptyBounds    = errors.New("canvas bounds must be positive")
)
