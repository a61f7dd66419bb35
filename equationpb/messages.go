// Package equationpb defines the wire messages and service stubs for
// the four operator services, in the shape protoc-gen-go-grpc would
// emit from the .proto contract in spec.md §6. No protoc invocation is
// available in this environment, so these files are hand-authored;
// see DESIGN.md for why a custom JSON-backed codec stands in for
// protobuf wire encoding here.
package equationpb

// CalculationRequest carries the two operands of an operator RPC. Each
// field holds one JSON-encoded Expr (see package expr's Encode/Decode).
type CalculationRequest struct {
	FirstArg  string `json:"first_arg"`
	SecondArg string `json:"second_arg"`
}

// CalculationResponse carries the integer result of a fully evaluated
// expression.
type CalculationResponse struct {
	Result int32 `json:"result"`
}

// Empty is the argument and return type of the term RPC.
type Empty struct{}
