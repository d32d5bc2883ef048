package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs fn for every input with at most limit calls in flight and returns
// the results in input order. The first error cancels ctx for the remaining
// calls and is returned; results of calls that did not finish are zero.
func Map[T any, R any](ctx context.Context, in []T, limit int, fn func(context.Context, int, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, i, v)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}

	return out, g.Wait()
}

// ForEach is Map without results.
func ForEach[T any](ctx context.Context, in []T, limit int, fn func(context.Context, int, T) error) error {
	_, err := Map(ctx, in, limit, func(ctx context.Context, i int, v T) (struct{}, error) {
		return struct{}{}, fn(ctx, i, v)
	})
	return err
}
