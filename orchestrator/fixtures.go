package orchestrator

import (
	"slices"

	"github.com/Shearerbeard/PESA-equation-services/expr"
)

// Fixtures is a named registry of example expressions, grounded on the
// teacher's registry.Registry map-plus-sorted-Names shape
// (registry/registry.go) but holding *expr.Expr values instead of
// Computation implementations. cmd/orchestrator uses it to let an
// operator pick a scenario by name from the command line instead of
// constructing an expression by hand.
var Fixtures = map[string]*expr.Expr{
	// (2 + 3) * (10 - 4) = 30: the multiplier owns the root and
	// delegates to the adder and the subtractor (no division involved).
	"nested": expr.NewOp(expr.Mul,
		expr.NewOp(expr.Add, expr.NewValue(2), expr.NewValue(3)),
		expr.NewOp(expr.Sub, expr.NewValue(10), expr.NewValue(4)),
	),

	// A bare value, resolved without any RPC at all.
	"literal": expr.NewValue(42),

	// A single hop to the Adder: 1 + 2 = 3.
	"single-add": expr.NewOp(expr.Add, expr.NewValue(1), expr.NewValue(2)),

	// Division by zero, surfaced as classify.DivisionByZero end to end.
	"div-by-zero": expr.NewOp(expr.Div, expr.NewValue(9), expr.NewValue(0)),

	// Signed 32-bit overflow wraps rather than panicking: MaxInt32 + 1.
	"overflow": expr.NewOp(expr.Add, expr.NewValue(2147483647), expr.NewValue(1)),
}

// FixtureNames lists Fixtures' keys ordered ascendingly, for the
// unknown-fixture error message of cmd/orchestrator.
func FixtureNames() []string {
	names := make([]string, 0, len(Fixtures))
	for name := range Fixtures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
