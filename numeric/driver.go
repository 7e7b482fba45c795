package numeric

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/symbolic"
)

// Factor runs numeric multifrontal factorization of a against sym (spec
// §4.4, §6's numeric_factor). nproc == 1 (the default) walks the
// elimination tree sequentially; nproc > 1 forks sibling subtrees as
// errgroup tasks bounded by a semaphore of weight nproc, per spec §5.
func Factor[T ccs.Number](a *ccs.Matrix[T], sym *symbolic.Symbolic, opts ...Option) (*frontal.BlockedFactor[T], error) {
	if a.N != sym.N {
		return nil, ErrDimensionMismatch
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	e := newEngine(a, sym, options)

	if options.NProc <= 1 {
		for s := 0; s < sym.NumSupercolumns; s++ {
			if err := e.factorOne(s); err != nil {
				return nil, err
			}
		}
	} else {
		sem := semaphore.NewWeighted(int64(options.NProc))
		g, ctx := errgroup.WithContext(context.Background())
		for _, root := range sym.Roots {
			root := root
			g.Go(func() error { return processSubtree(ctx, e, sem, root, 0) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return frontal.NewBlockedFactor(a.N, a.N, a.Kind, e.blocks), nil
}

// processSubtree factors s's children — concurrently, bounded by sem,
// while depth is below opt.MaxDepth (0 means unbounded) — joins them, then
// factors s itself. A node's children all precede it in postorder, so
// recursing down from each root and factoring on the way back up respects
// spec §5's "a supercolumn is factored only after all its descendants ...
// are ready" ordering guarantee.
func processSubtree[T ccs.Number](ctx context.Context, e *engine[T], sem *semaphore.Weighted, s, depth int) error {
	children := e.children(s)
	spawn := len(children) > 0 && (e.opt.MaxDepth == 0 || depth < e.opt.MaxDepth)

	if spawn {
		g, gctx := errgroup.WithContext(ctx)
		for _, c := range children {
			c := c
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			g.Go(func() error {
				defer sem.Release(1)

				return processSubtree(gctx, e, sem, c, depth+1)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, c := range children {
			if err := processSubtree(ctx, e, sem, c, depth+1); err != nil {
				return err
			}
		}
	}

	return e.factorOne(s)
}
