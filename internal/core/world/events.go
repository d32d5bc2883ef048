package world

import "github.com/zeusync/ballpit/internal/core/models"

// Event types published by a Canvas on its bus.
const (
	EventTick      = "canvas.tick"
	EventCollision = "canvas.collision"
	EventPruned    = "canvas.pruned"
)

const eventSource = "canvas"

// TickEvent is published once per Step after all phases have run.
type TickEvent struct {
	Tick       uint64
	Census     Census
	Collisions int
	Finished   bool
}

// CollisionEvent describes one overlapping pair and what each side did.
type CollisionEvent struct {
	Tick     uint64
	A, B     models.EntityID
	AVariant models.Variant
	BVariant models.Variant
	AOutcome models.Outcome
	BOutcome models.Outcome
}

// PrunedEvent lists the depleted balls dropped at the start of a tick.
type PrunedEvent struct {
	Tick uint64
	IDs  []models.EntityID
}
