package expr

import (
	"encoding/json"
	"fmt"
)

// wireExpr is the JSON-on-the-wire shape of an Expr: a self-describing
// discriminated union. Value nodes carry "value" only; operator nodes
// carry "left" and "right" only.
type wireExpr struct {
	Kind  string    `json:"kind"`
	Value *int32    `json:"value,omitempty"`
	Left  *wireExpr `json:"left,omitempty"`
	Right *wireExpr `json:"right,omitempty"`
}

func kindToWire(k Kind) (string, error) {
	switch k {
	case Value:
		return "value", nil
	case Add:
		return "add", nil
	case Sub:
		return "subtract", nil
	case Mul:
		return "multiply", nil
	case Div:
		return "divide", nil
	default:
		return "", fmt.Errorf("expr: unknown kind %d", k)
	}
}

func kindFromWire(s string) (Kind, error) {
	switch s {
	case "value":
		return Value, nil
	case "add":
		return Add, nil
	case "subtract":
		return Sub, nil
	case "multiply":
		return Mul, nil
	case "divide":
		return Div, nil
	default:
		return 0, fmt.Errorf("expr: unknown wire kind %q", s)
	}
}

func toWire(e *Expr) (*wireExpr, error) {
	if e == nil {
		return nil, fmt.Errorf("expr: nil node")
	}
	kind, err := kindToWire(e.Kind)
	if err != nil {
		return nil, err
	}
	w := &wireExpr{Kind: kind}
	if e.Kind == Value {
		v := e.Val
		w.Value = &v
		return w, nil
	}
	left, err := toWire(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := toWire(e.Right)
	if err != nil {
		return nil, err
	}
	w.Left, w.Right = left, right
	return w, nil
}

func fromWire(w *wireExpr) (*Expr, error) {
	if w == nil {
		return nil, fmt.Errorf("expr: nil wire node")
	}
	kind, err := kindFromWire(w.Kind)
	if err != nil {
		return nil, err
	}
	if kind == Value {
		if w.Value == nil {
			return nil, fmt.Errorf("expr: value node missing \"value\"")
		}
		return NewValue(*w.Value), nil
	}
	if w.Left == nil || w.Right == nil {
		return nil, fmt.Errorf("expr: %s node missing operands", w.Kind)
	}
	left, err := fromWire(w.Left)
	if err != nil {
		return nil, err
	}
	right, err := fromWire(w.Right)
	if err != nil {
		return nil, err
	}
	return NewOp(kind, left, right), nil
}

// Encode serializes e into the self-describing textual encoding shared
// by every edge of the fleet: decode(encode(e)) == e for every finite
// e, and the encoding of a Value(v) node contains exactly v.
func Encode(e *Expr) (string, error) {
	w, err := toWire(e)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses the textual encoding produced by Encode back into an
// Expr. It returns an error if s is not well-formed.
func Decode(s string) (*Expr, error) {
	var w wireExpr
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("expr: decode: %w", err)
	}
	return fromWire(&w)
}
