package expr

import (
	"context"
	"errors"
)

// ErrDivisionByZero is returned by an Evaluator's Div method when the
// second operand is zero. Every service surfaces it transparently,
// whether it originates locally (the divider) or arrives from a peer.
var ErrDivisionByZero = errors.New("expr: division by zero")

// Evaluator supplies the four primitive operations that parameterize
// Reduce and Evaluate. A service implements Evaluator by making its
// owned operation local and forwarding the other three to peers; this
// interface is the "parameter object" mentioned in the design notes,
// standing in for a class hierarchy.
type Evaluator interface {
	Add(ctx context.Context, first, second int32) (int32, error)
	Sub(ctx context.Context, first, second int32) (int32, error)
	Mul(ctx context.Context, first, second int32) (int32, error)
	Div(ctx context.Context, first, second int32) (int32, error)
}

func primitive(ctx context.Context, ev Evaluator, kind Kind, first, second int32) (int32, error) {
	switch kind {
	case Add:
		return ev.Add(ctx, first, second)
	case Sub:
		return ev.Sub(ctx, first, second)
	case Mul:
		return ev.Mul(ctx, first, second)
	case Div:
		return ev.Div(ctx, first, second)
	default:
		return 0, errDomain("reduce", kind)
	}
}

func errDomain(op string, kind Kind) error {
	return &domainError{op: op, kind: kind}
}

type domainError struct {
	op   string
	kind Kind
}

func (e *domainError) Error() string {
	return "expr: cannot " + e.op + " a " + e.kind.String() + " node"
}

// Reduce performs a single rewrite step:
//
//   - Value(v) is already a fixed point and is returned unchanged.
//   - Op(Value(a), Value(b)) invokes the matching primitive and
//     collapses to Value(prim(a, b)).
//   - Op(l, r) where at least one side is non-terminal reduces both
//     sides (order is unspecified) and returns Op(reduce(l), reduce(r)).
func Reduce(ctx context.Context, ev Evaluator, e *Expr) (*Expr, error) {
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
	left, err := Reduce(ctx, ev, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := Reduce(ctx, ev, e.Right)
	if err != nil {
		return nil, err
	}
	return NewOp(e.Kind, left, right), nil
}

// Evaluate repeatedly applies Reduce until the result is a Value,
// returning its integer. On a finite tree this converges in at most
// depth(e) outer iterations: each round, any subtree with two Value
// leaves collapses, so the non-terminal node count strictly decreases
// until none remain.
func Evaluate(ctx context.Context, ev Evaluator, e *Expr) (int32, error) {
	cur := e
	for !cur.IsValue() {
		next, err := Reduce(ctx, ev, cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return cur.Val, nil
}
