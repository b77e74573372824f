package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two lookups concurrently. The first error cancels the other
// lookup's context and is returned unwrapped with zero results, so callers
// keep their own error wrapping.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		r1, err = fn1(gctx)

		return err
	})

	g.Go(func() error {
		var err error

		r2, err = fn2(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, err
	}

	return r1, r2, nil
}
