package models

import "fmt"

// Outcome names the rule that fired for one side of a collision.
type Outcome uint8

const (
	OutcomeNone     Outcome = iota
	OutcomeMerged           // regular absorbed a smaller or equal regular
	OutcomeFed              // regular was swallowed by the monster it hit
	OutcomeRepelled         // regular recolored a repellent and bounced back
	OutcomeDevoured         // monster swallowed a regular or repellent
	OutcomeSwapped          // two repellents traded colors
	OutcomeHalved           // repellent lost half its radius to a monster
)

var outcomeNames = [...]string{
	OutcomeNone:     "none",
	OutcomeMerged:   "merged",
	OutcomeFed:      "fed",
	OutcomeRepelled: "repelled",
	OutcomeDevoured: "devoured",
	OutcomeSwapped:  "swapped",
	OutcomeHalved:   "halved",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// OnCollision applies b's side of a collision with other. The rule is chosen by
// the ordered pair (b.Variant, other.Variant); the canvas calls it once in each
// direction for every overlapping pair, and the rules rely on that.
// Pairs without a rule are a silent no-op.
func (b *Ball) OnCollision(other *Ball) Outcome {
	if other == nil {
		panic("models: OnCollision with nil ball")
	}

	switch b.Variant {
	case Regular:
		switch other.Variant {
		case Regular:
			// The smaller side does nothing; the reverse call does the merge.
			if b.Radius < other.Radius {
				return OutcomeNone
			}
			b.Color = b.Color.Blend(other.Color, b.Radius, other.Radius)
			b.Radius += other.Radius
			other.Radius = 0
			return OutcomeMerged
		case Monster:
			other.Radius += b.Radius
			b.Radius = 0
			return OutcomeFed
		case Repellent:
			other.Color = b.Color
			b.Direction = b.Direction.Neg()
			return OutcomeRepelled
		}
	case Monster:
		if other.Variant == Regular || other.Variant == Repellent {
			b.Radius += other.Radius
			other.Radius = 0
			return OutcomeDevoured
		}
	case Repellent:
		switch other.Variant {
		case Repellent:
			b.Color, other.Color = other.Color, b.Color
			return OutcomeSwapped
		case Monster:
			b.Radius /= 2
			return OutcomeHalved
		}
	}
	return OutcomeNone
}
