package equationpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	Adder_ServiceName   = "equation.Adder"
	Adder_Add_FullMethod  = "/equation.Adder/Add"
	Adder_Term_FullMethod = "/equation.Adder/Term"
)

// AdderClient is the client API for the Adder service.
type AdderClient interface {
	Add(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error)
	Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type adderClient struct {
	cc grpc.ClientConnInterface
}

// NewAdderClient wraps an established connection in the Adder client API.
func NewAdderClient(cc grpc.ClientConnInterface) AdderClient {
	return &adderClient{cc}
}

func (c *adderClient) Add(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error) {
	out := new(CalculationResponse)
	if err := c.cc.Invoke(ctx, Adder_Add_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adderClient) Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Adder_Term_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AdderServer is the server API for the Adder service.
type AdderServer interface {
	Add(context.Context, *CalculationRequest) (*CalculationResponse, error)
	Term(context.Context, *Empty) (*Empty, error)
}

// RegisterAdderServer registers srv as the implementation backing s.
func RegisterAdderServer(s grpc.ServiceRegistrar, srv AdderServer) {
	s.RegisterService(&Adder_ServiceDesc, srv)
}

func _Adder_Add_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdderServer).Add(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Adder_Add_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdderServer).Add(ctx, req.(*CalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Adder_Term_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdderServer).Term(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Adder_Term_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdderServer).Term(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Adder_ServiceDesc is the grpc.ServiceDesc for the Adder service.
var Adder_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Adder_ServiceName,
	HandlerType: (*AdderServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Add", Handler: _Adder_Add_Handler},
		{MethodName: "Term", Handler: _Adder_Term_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adder.proto",
}
