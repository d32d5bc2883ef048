package models

import (
	"fmt"

	"github.com/google/uuid"
)

type EntityID = uuid.UUID

// Variant selects a ball's collision behavior.
type Variant uint8

const (
	Regular Variant = iota
	Monster
	Repellent
)

// Variants lists every variant in seeding order.
var Variants = [...]Variant{Regular, Monster, Repellent}

func (v Variant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Monster:
		return "monster"
	case Repellent:
		return "repellent"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Source is the random stream balls are drawn from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
	Read(p []byte) (n int, err error)
}
