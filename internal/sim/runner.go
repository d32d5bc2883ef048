package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zeusync/ballpit/internal/config"
	"github.com/zeusync/ballpit/internal/core/events/bus"
	"github.com/zeusync/ballpit/internal/core/observability/log"
	"github.com/zeusync/ballpit/internal/core/world"
	"github.com/zeusync/ballpit/pkg/concurrent"
)

// Result summarizes one simulation run.
type Result struct {
	Run         int
	Seed        int64
	Ticks       uint64
	Finished    bool
	Census      world.Census
	Stats       world.Stats
	Fingerprint uint64
	Elapsed     time.Duration
}

type subscriber struct {
	eventType string
	handler   bus.EventHandler
}

// Runner seeds canvases from a config and steps them until no regular ball
// is left. Every run gets its own canvas, bus and random source.
type Runner struct {
	cfg         config.Config
	logger      log.Log
	subscribers []subscriber
	observers   []bus.EventBusObserver
}

// NewRunner validates cfg and returns a runner. A nil logger discards output.
func NewRunner(cfg config.Config, logger log.Log) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Runner{
		cfg:    cfg,
		logger: logger.With(log.String("component", "runner")),
	}, nil
}

// OnEvent subscribes handler to eventType on the bus of every later run.
// Handlers of parallel runs are called from different goroutines.
func (r *Runner) OnEvent(eventType string, handler bus.EventHandler) {
	r.subscribers = append(r.subscribers, subscriber{eventType: eventType, handler: handler})
}

// Observe attaches obs to the bus of every later run.
func (r *Runner) Observe(obs bus.EventBusObserver) {
	r.observers = append(r.observers, obs)
}

// Run performs a single simulation with the given seed. It returns
// ErrTickLimit alongside a partial result if MaxTicks runs out, and ctx.Err()
// if the context is cancelled between ticks.
func (r *Runner) Run(ctx context.Context, run int, seed int64) (Result, error) {
	logger := r.logger.With(log.Int("run", run), log.Int64("seed", seed))
	res := Result{Run: run, Seed: seed}

	eb := bus.New()
	for _, obs := range r.observers {
		eb.AddObserver(obs)
	}
	for _, s := range r.subscribers {
		if _, err := eb.Subscribe(s.eventType, s.handler); err != nil {
			return res, fmt.Errorf("subscribe %s: %w", s.eventType, err)
		}
	}
	if _, err := eb.Subscribe(world.EventTick, r.reporter(logger)); err != nil {
		return res, fmt.Errorf("subscribe progress: %w", err)
	}

	canvas, err := world.NewCanvas(r.cfg.Canvas.Width, r.cfg.Canvas.Height,
		world.WithEventBus(eb),
		world.WithLogger(logger))
	if err != nil {
		return res, err
	}
	if err = canvas.Seed(r.cfg.Population, rand.New(rand.NewSource(seed))); err != nil {
		return res, err
	}

	logger.Info("simulation started",
		log.Int("width", canvas.Width()),
		log.Int("height", canvas.Height()),
		log.Int("balls", canvas.Len()))

	start := time.Now()
	err = r.loop(ctx, canvas)

	res.Elapsed = time.Since(start)
	res.Ticks = canvas.Tick()
	res.Finished = canvas.IsSimulationFinished()
	res.Census = canvas.Census()
	res.Stats = canvas.Stats()
	res.Fingerprint = canvas.Fingerprint()

	summary := []log.Field{
		log.Uint64("ticks", res.Ticks),
		log.Uint64("collisions", res.Stats.Collisions),
		log.Int("monsters", res.Census.Monster),
		log.Int("repellents", res.Census.Repellent),
		log.Hex("fingerprint", res.Fingerprint),
		log.Duration("elapsed", res.Elapsed),
	}
	switch {
	case err == nil:
		logger.Info("simulation finished, all regular balls have been absorbed", summary...)
	case errors.Is(err, ErrTickLimit):
		logger.Warn("simulation stopped at tick limit",
			append(summary, log.Int("regulars", res.Census.Regular))...)
	default:
		logger.Warn("simulation interrupted", append(summary, log.Error(err))...)
	}
	return res, err
}

func (r *Runner) loop(ctx context.Context, canvas *world.Canvas) error {
	for !canvas.IsSimulationFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.cfg.MaxTicks > 0 && canvas.Tick() >= r.cfg.MaxTicks {
			return fmt.Errorf("%w: %d ticks", ErrTickLimit, r.cfg.MaxTicks)
		}
		canvas.Step()
	}
	return nil
}

func (r *Runner) reporter(logger log.Log) bus.EventHandler {
	every := r.cfg.ReportEvery
	return func(e bus.Event) error {
		tick, ok := e.Data().(world.TickEvent)
		if !ok {
			return nil
		}
		logger.Debug("update", log.Uint64("tick", tick.Tick), log.Int("collisions", tick.Collisions))
		if every > 0 && tick.Tick%every == 0 {
			logger.Info("progress",
				log.Uint64("tick", tick.Tick),
				log.Int("regular", tick.Census.Regular),
				log.Int("monster", tick.Census.Monster),
				log.Int("repellent", tick.Census.Repellent))
		}
		return nil
	}
}

// RunBatch performs cfg.Runs simulations with seeds seed, seed+1, ... using at
// most cfg.Parallel goroutines. Runs that hit the tick limit do not stop the
// others; their errors are joined into the returned error. Any other error
// cancels the batch.
func (r *Runner) RunBatch(ctx context.Context, seed int64) ([]Result, error) {
	seeds := make([]int64, r.cfg.Runs)
	for i := range seeds {
		seeds[i] = seed + int64(i)
	}

	limited := make([]error, len(seeds))
	results, err := concurrent.Map(ctx, seeds, r.cfg.Parallel, func(ctx context.Context, i int, s int64) (Result, error) {
		res, err := r.Run(ctx, i, s)
		if errors.Is(err, ErrTickLimit) {
			limited[i] = fmt.Errorf("run %d: %w", i, err)
			return res, nil
		}
		return res, err
	})
	if err != nil {
		return results, err
	}

	if len(results) > 1 {
		finished := 0
		var ticks uint64
		for _, res := range results {
			if res.Finished {
				finished++
			}
			ticks += res.Ticks
		}
		r.logger.Info("batch finished",
			log.Int("runs", len(results)),
			log.Int("finished", finished),
			log.Float64("mean_ticks", float64(ticks)/float64(len(results))))
	}
	return results, errors.Join(limited...)
}
