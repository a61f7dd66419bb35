package equationpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	Subtractor_ServiceName    = "equation.Subtractor"
	Subtractor_Subtract_FullMethod = "/equation.Subtractor/Subtract"
	Subtractor_Term_FullMethod     = "/equation.Subtractor/Term"
)

// SubtractorClient is the client API for the Subtractor service.
type SubtractorClient interface {
	Subtract(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error)
	Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type subtractorClient struct {
	cc grpc.ClientConnInterface
}

// NewSubtractorClient wraps an established connection in the Subtractor client API.
func NewSubtractorClient(cc grpc.ClientConnInterface) SubtractorClient {
	return &subtractorClient{cc}
}

func (c *subtractorClient) Subtract(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error) {
	out := new(CalculationResponse)
	if err := c.cc.Invoke(ctx, Subtractor_Subtract_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *subtractorClient) Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Subtractor_Term_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SubtractorServer is the server API for the Subtractor service.
type SubtractorServer interface {
	Subtract(context.Context, *CalculationRequest) (*CalculationResponse, error)
	Term(context.Context, *Empty) (*Empty, error)
}

// RegisterSubtractorServer registers srv as the implementation backing s.
func RegisterSubtractorServer(s grpc.ServiceRegistrar, srv SubtractorServer) {
	s.RegisterService(&Subtractor_ServiceDesc, srv)
}

func _Subtractor_Subtract_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SubtractorServer).Subtract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Subtractor_Subtract_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SubtractorServer).Subtract(ctx, req.(*CalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Subtractor_Term_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SubtractorServer).Term(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Subtractor_Term_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SubtractorServer).Term(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Subtractor_ServiceDesc is the grpc.ServiceDesc for the Subtractor service.
var Subtractor_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Subtractor_ServiceName,
	HandlerType: (*SubtractorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Subtract", Handler: _Subtractor_Subtract_Handler},
		{MethodName: "Term", Handler: _Subtractor_Term_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "subtractor.proto",
}
