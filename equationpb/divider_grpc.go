package equationpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	Divider_ServiceName  = "equation.Divider"
	Divider_Divide_FullMethod = "/equation.Divider/Divide"
	Divider_Term_FullMethod   = "/equation.Divider/Term"
)

// DividerClient is the client API for the Divider service.
type DividerClient interface {
	Divide(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error)
	Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type dividerClient struct {
	cc grpc.ClientConnInterface
}

// NewDividerClient wraps an established connection in the Divider client API.
func NewDividerClient(cc grpc.ClientConnInterface) DividerClient {
	return &dividerClient{cc}
}

func (c *dividerClient) Divide(ctx context.Context, in *CalculationRequest, opts ...grpc.CallOption) (*CalculationResponse, error) {
	out := new(CalculationResponse)
	if err := c.cc.Invoke(ctx, Divider_Divide_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dividerClient) Term(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Divider_Term_FullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DividerServer is the server API for the Divider service.
type DividerServer interface {
	Divide(context.Context, *CalculationRequest) (*CalculationResponse, error)
	Term(context.Context, *Empty) (*Empty, error)
}

// RegisterDividerServer registers srv as the implementation backing s.
func RegisterDividerServer(s grpc.ServiceRegistrar, srv DividerServer) {
	s.RegisterService(&Divider_ServiceDesc, srv)
}

func _Divider_Divide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DividerServer).Divide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Divider_Divide_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DividerServer).Divide(ctx, req.(*CalculationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Divider_Term_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DividerServer).Term(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Divider_Term_FullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DividerServer).Term(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Divider_ServiceDesc is the grpc.ServiceDesc for the Divider service.
var Divider_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Divider_ServiceName,
	HandlerType: (*DividerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Divide", Handler: _Divider_Divide_Handler},
		{MethodName: "Term", Handler: _Divider_Term_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "divider.proto",
}
