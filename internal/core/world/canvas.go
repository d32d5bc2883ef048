package world

import (
	"fmt"
	"sync"

	"github.com/zeusync/ballpit/internal/core/events/bus"
	"github.com/zeusync/ballpit/internal/core/models"
	"github.com/zeusync/ballpit/internal/core/observability/log"
	"github.com/zeusync/ballpit/internal/core/systems/physics"
)

// Canvas owns a bounded set of balls and advances them one tick at a time.
//
// Every method takes the canvas lock, so a Step is never observed half done.
// Events are published after the lock is released; handlers may read from the
// canvas but must not expect to see the state of the tick they were fired for
// if another goroutine steps it in between.
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int
	bounds physics.Bounds
	balls  []*models.Ball
	stats  Stats

	bus    bus.EventBus
	logger log.Log
}

type Option func(*Canvas)

// WithEventBus makes the canvas publish tick, collision and prune events.
func WithEventBus(b bus.EventBus) Option {
	return func(c *Canvas) { c.bus = b }
}

func WithLogger(l log.Log) Option {
	return func(c *Canvas) { c.logger = l }
}

// NewCanvas creates an empty canvas of the given size.
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		bounds: physics.Bounds{Width: float64(width), Height: float64(height)},
		stats:  Stats{Outcomes: make(map[models.Outcome]uint64)},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Nop()
	}
	c.logger = c.logger.With(log.String("component", "canvas"))
	return c, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Add appends a ball to the end of the collection.
func (c *Canvas) Add(b *models.Ball) error {
	if b == nil {
		return ErrNilBall
	}
	c.mu.Lock()
	c.balls = append(c.balls, b)
	c.mu.Unlock()
	return nil
}

// Seed draws a population from src and adds it in variant order: regular,
// monster, repellent.
func (c *Canvas) Seed(pop Population, src models.Source) error {
	if pop.Regular < 0 || pop.Monster < 0 || pop.Repellent < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidPopulation, pop)
	}
	seeded := make([]*models.Ball, 0, pop.Total())
	for _, v := range models.Variants {
		for i := 0; i < pop.Count(v); i++ {
			b, err := models.NewBall(v, c.width, c.height, src)
			if err != nil {
				return fmt.Errorf("seed %s ball %d: %w", v, i, err)
			}
			seeded = append(seeded, b)
		}
	}

	c.mu.Lock()
	c.balls = append(c.balls, seeded...)
	c.mu.Unlock()

	c.logger.Debug("canvas seeded",
		log.Int("regular", pop.Regular),
		log.Int("monster", pop.Monster),
		log.Int("repellent", pop.Repellent))
	return nil
}

// Len is the number of balls held, depleted ones included.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.balls)
}

// Balls returns a copy of every ball in collection order.
func (c *Canvas) Balls() []models.Ball {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Ball, len(c.balls))
	for i, b := range c.balls {
		out[i] = *b
	}
	return out
}

// Tick is the number of completed steps.
func (c *Canvas) Tick() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.Ticks
}

func (c *Canvas) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.clone()
}

func (c *Canvas) Census() Census {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.censusLocked()
}

// IsSimulationFinished reports whether no regular ball is left. A regular ball
// depleted during the last tick still counts until the next prune.
func (c *Canvas) IsSimulationFinished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finishedLocked()
}

// Prune drops depleted balls immediately, keeping the order of the rest, and
// returns how many were removed. Step does this itself at the start of a tick.
func (c *Canvas) Prune() int {
	c.mu.Lock()
	ids := c.pruneLocked()
	tick := c.stats.Ticks
	c.mu.Unlock()

	c.publishPruned(tick, ids)
	return len(ids)
}

// Step advances the simulation by one tick: prune, move, reflect, then
// resolve every overlapping pair.
func (c *Canvas) Step() {
	c.mu.Lock()
	c.stats.Ticks++
	tick := c.stats.Ticks

	pruned := c.pruneLocked()
	c.moveLocked()
	collisions := c.collideLocked(tick)

	report := TickEvent{
		Tick:       tick,
		Census:     c.censusLocked(),
		Collisions: len(collisions),
		Finished:   c.finishedLocked(),
	}
	c.mu.Unlock()

	c.publishPruned(tick, pruned)
	for _, ev := range collisions {
		c.publish(EventCollision, ev)
	}
	c.publish(EventTick, report)
}

func (c *Canvas) pruneLocked() []models.EntityID {
	var ids []models.EntityID
	live := c.balls[:0]
	for _, b := range c.balls {
		if b.Depleted() {
			ids = append(ids, b.ID)
			continue
		}
		live = append(live, b)
	}
	// clear the tail so dropped balls can be collected
	for i := len(live); i < len(c.balls); i++ {
		c.balls[i] = nil
	}
	c.balls = live
	c.stats.Pruned += uint64(len(ids))
	return ids
}

func (c *Canvas) moveLocked() {
	for _, b := range c.balls {
		b.Position = physics.Integrate(b.Position, b.Direction)
	}
	for _, b := range c.balls {
		b.Direction = physics.Reflect(b.Position, b.Radius, b.Direction, c.bounds)
	}
}

// collideLocked checks every unordered pair once. Both sides of a colliding
// pair always get their callback, even when the first one depleted a ball.
func (c *Canvas) collideLocked(tick uint64) []CollisionEvent {
	var events []CollisionEvent
	n := len(c.balls)
	for i := 0; i < n; i++ {
		a := c.balls[i]
		for j := i + 1; j < n; j++ {
			b := c.balls[j]
			c.stats.PairsChecked++
			if !physics.Overlaps(a, b) {
				continue
			}
			ao := a.OnCollision(b)
			bo := b.OnCollision(a)

			c.stats.Collisions++
			c.stats.Outcomes[ao]++
			c.stats.Outcomes[bo]++

			c.logger.Debug("collision",
				log.Uint64("tick", tick),
				log.Stringer("a", a),
				log.Stringer("b", b),
				log.Stringer("a_outcome", ao),
				log.Stringer("b_outcome", bo))

			events = append(events, CollisionEvent{
				Tick:     tick,
				A:        a.ID,
				B:        b.ID,
				AVariant: a.Variant,
				BVariant: b.Variant,
				AOutcome: ao,
				BOutcome: bo,
			})
		}
	}
	return events
}

func (c *Canvas) censusLocked() Census {
	var census Census
	for _, b := range c.balls {
		census.add(b)
	}
	return census
}

func (c *Canvas) finishedLocked() bool {
	for _, b := range c.balls {
		if b.Variant == models.Regular {
			return false
		}
	}
	return true
}

func (c *Canvas) publishPruned(tick uint64, ids []models.EntityID) {
	if len(ids) == 0 {
		return
	}
	c.logger.Debug("pruned depleted balls", log.Uint64("tick", tick), log.Int("count", len(ids)))
	c.publish(EventPruned, PrunedEvent{Tick: tick, IDs: ids})
}

func (c *Canvas) publish(eventType string, data any) {
	if c.bus == nil || !c.bus.HasSubscribers(eventType) {
		return
	}
	if err := c.bus.Publish(bus.NewEvent(eventType, eventSource, data)); err != nil {
		c.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}
