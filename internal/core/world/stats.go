package world

import (
	"maps"

	"github.com/zeusync/ballpit/internal/core/models"
)

// Stats accumulates counters over the lifetime of a canvas.
type Stats struct {
	Ticks        uint64
	PairsChecked uint64
	Collisions   uint64
	Pruned       uint64
	Outcomes     map[models.Outcome]uint64
}

func (s Stats) clone() Stats {
	s.Outcomes = maps.Clone(s.Outcomes)
	return s
}
