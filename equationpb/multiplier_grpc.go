package equationpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	Multiplier_ServiceName    = "equation.Multiplier"
	Multiplier_Multiply_FullMethod = "/equation.Multiplier/Multiply"
	Multiplier_Term_FullMethod     = "/equation.Multiplier/Term"
)

// MultiplierClient is the client API for the Multiplier service.
type MultiplierClient interface {
	Multiply(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error)
	Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type multiplierClient struct {
	cc grpc.ClientConnInterface
}

// NewMultiplierClient wraps an established connection in the Multiplier client API.
func NewMultiplierClient(cc grpc.ClientConnInterface) MultiplierClient {
	return &multiplierClient{cc}
}

func (c *multiplierClient) Multiply(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error) {
	out := new(CalculationResponse)
	if err := c.cc.Invoke(ctx, Multiplier_Multiply_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *multiplierClient) Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Multiplier_Term_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MultiplierServer is the server API for the Multiplier service.
type MultiplierServer interface {
	Multiply(context.Context, *CalculationRequest) (*CalculationResponse, error)
	Term(context.Context, *Empty) (*Empty, error)
}

// RegisterMultiplierServer registers srv as the implementation backing s.
func RegisterMultiplierServer(s grpc.ServiceRegistrar, srv MultiplierServer) {
	s.RegisterService(&Multiplier_ServiceDesc, srv)
}

func _Multiplier_Multiply_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MultiplierServer).Multiply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Multiplier_Multiply_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MultiplierServer).Multiply(ctx, req.(*CalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Multiplier_Term_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MultiplierServer).Term(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Multiplier_Term_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MultiplierServer).Term(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Multiplier_ServiceDesc is the grpc.ServiceDesc for the Multiplier service.
var Multiplier_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Multiplier_ServiceName,
	HandlerType: (*MultiplierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Multiply", Handler: _Multiplier_Multiply_Handler},
		{MethodName: "Term", Handler: _Multiplier_Term_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "multiplier.proto",
}
