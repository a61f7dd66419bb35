package expr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ReduceConcurrent is the optional concurrent variant of Reduce noted
// in the design: when both sides of a node are non-terminal, they are
// reduced in parallel goroutines instead of sequentially. Nothing in
// the evaluator contract forbids this — each side's reduction is a
// pure function of that side alone — and the final integer returned by
// EvaluateConcurrent is identical to Evaluate's.
func ReduceConcurrent(ctx context.Context, ev Evaluator, e *Expr) (*Expr, error) {
	if e.IsValue() {
		return e, nil
	}
	if e.Left.IsValue() && e.Right.IsValue() {
		v, err := primitive(ctx, ev, e.Kind, e.Left.Val, e.Right.Val)
		if err != nil {
			return nil, err
		}
		return NewValue(v), nil
	}
	if e.Left.IsValue() || e.Right.IsValue() {
		// Only one side benefits from recursion; no concurrency win.
		return Reduce(ctx, ev, e)
	}

	var left, right *Expr
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = ReduceConcurrent(gctx, ev, e.Left)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = ReduceConcurrent(gctx, ev, e.Right)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewOp(e.Kind, left, right), nil
}

// EvaluateConcurrent is Evaluate built on ReduceConcurrent.
func EvaluateConcurrent(ctx context.Context, ev Evaluator, e *Expr) (int32, error) {
	cur := e
	for !cur.IsValue() {
		next, err := ReduceConcurrent(ctx, ev, cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return cur.Val, nil
}
