package world

import "github.com/zeusync/ballpit/internal/core/models"

// Census counts the balls currently held by a canvas. Depleted balls that have
// not been pruned yet are counted under their variant and again in Depleted.
type Census struct {
	Regular   int `json:"regular" yaml:"regular"`
	Monster   int `json:"monster" yaml:"monster"`
	Repellent int `json:"repellent" yaml:"repellent"`
	Depleted  int `json:"depleted" yaml:"depleted"`
}

func (c *Census) add(b *models.Ball) {
	switch b.Variant {
	case models.Regular:
		c.Regular++
	case models.Monster:
		c.Monster++
	case models.Repellent:
		c.Repellent++
	}
	if b.Depleted() {
		c.Depleted++
	}
}

// Population is how many balls of each variant to seed.
type Population struct {
	Regular   int `json:"regular" yaml:"regular"`
	Monster   int `json:"monster" yaml:"monster"`
	Repellent int `json:"repellent" yaml:"repellent"`
}

// DefaultPopulation mirrors the classic 10/2/3 setup.
func DefaultPopulation() Population {
	return Population{Regular: 10, Monster: 2, Repellent: 3}
}

func (p Population) Count(v models.Variant) int {
	switch v {
	case models.Regular:
		return p.Regular
	case models.Monster:
		return p.Monster
	case models.Repellent:
		return p.Repellent
	default:
		return 0
	}
}

func (p Population) Total() int { return p.Regular + p.Monster + p.Repellent }
