package inventoryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	FulfillmentServiceCreateFulfillmentMethod       = "/omnipos.inventory.v1.FulfillmentService/CreateFulfillment"
	FulfillmentServiceUpdateFulfillmentStatusMethod = "/omnipos.inventory.v1.FulfillmentService/UpdateFulfillmentStatus"
	FulfillmentServiceGetFulfillmentMethod          = "/omnipos.inventory.v1.FulfillmentService/GetFulfillment"
	FulfillmentServiceListOrderFulfillmentsMethod   = "/omnipos.inventory.v1.FulfillmentService/ListOrderFulfillments"
)

type FulfillmentServiceServer interface {
	CreateFulfillment(context.Context, *CreateFulfillmentRequest) (*Fulfillment, error)
	UpdateFulfillmentStatus(context.Context, *UpdateFulfillmentStatusRequest) (*Fulfillment, error)
	GetFulfillment(context.Context, *GetFulfillmentRequest) (*Fulfillment, error)
	ListOrderFulfillments(context.Context, *ListOrderFulfillmentsRequest) (*ListOrderFulfillmentsResponse, error)
}

// UnimplementedFulfillmentServiceServer can be embedded to stay forward compatible.
type UnimplementedFulfillmentServiceServer struct{}

func (UnimplementedFulfillmentServiceServer) CreateFulfillment(context.Context, *CreateFulfillmentRequest) (*Fulfillment, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFulfillment not implemented")
}

func (UnimplementedFulfillmentServiceServer) UpdateFulfillmentStatus(context.Context, *UpdateFulfillmentStatusRequest) (*Fulfillment, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateFulfillmentStatus not implemented")
}

func (UnimplementedFulfillmentServiceServer) GetFulfillment(context.Context, *GetFulfillmentRequest) (*Fulfillment, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFulfillment not implemented")
}

func (UnimplementedFulfillmentServiceServer) ListOrderFulfillments(context.Context, *ListOrderFulfillmentsRequest) (*ListOrderFulfillmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOrderFulfillments not implemented")
}

func RegisterFulfillmentServiceServer(s grpc.ServiceRegistrar, srv FulfillmentServiceServer) {
	s.RegisterService(&FulfillmentServiceDesc, srv)
}

func fulfillmentServiceCreateFulfillmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFulfillmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FulfillmentServiceServer).CreateFulfillment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FulfillmentServiceCreateFulfillmentMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FulfillmentServiceServer).CreateFulfillment(ctx, req.(*CreateFulfillmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func fulfillmentServiceUpdateFulfillmentStatusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFulfillmentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FulfillmentServiceServer).UpdateFulfillmentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FulfillmentServiceUpdateFulfillmentStatusMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FulfillmentServiceServer).UpdateFulfillmentStatus(ctx, req.(*UpdateFulfillmentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func fulfillmentServiceGetFulfillmentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFulfillmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FulfillmentServiceServer).GetFulfillment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FulfillmentServiceGetFulfillmentMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FulfillmentServiceServer).GetFulfillment(ctx, req.(*GetFulfillmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func fulfillmentServiceListOrderFulfillmentsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOrderFulfillmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FulfillmentServiceServer).ListOrderFulfillments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FulfillmentServiceListOrderFulfillmentsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FulfillmentServiceServer).ListOrderFulfillments(ctx, req.(*ListOrderFulfillmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var FulfillmentServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.inventory.v1.FulfillmentService",
	HandlerType: (*FulfillmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateFulfillment", Handler: fulfillmentServiceCreateFulfillmentHandler},
		{MethodName: "UpdateFulfillmentStatus", Handler: fulfillmentServiceUpdateFulfillmentStatusHandler},
		{MethodName: "GetFulfillment", Handler: fulfillmentServiceGetFulfillmentHandler},
		{MethodName: "ListOrderFulfillments", Handler: fulfillmentServiceListOrderFulfillmentsHandler},
	},
	Streams: []grpc.StreamDesc{},
}

type FulfillmentServiceClient interface {
	CreateFulfillment(ctx context.Context, in *CreateFulfillmentRequest, opts ...grpc.CallOption) (*Fulfillment, error)
	UpdateFulfillmentStatus(ctx context.Context, in *UpdateFulfillmentStatusRequest, opts ...grpc.CallOption) (*Fulfillment, error)
	GetFulfillment(ctx context.Context, in *GetFulfillmentRequest, opts ...grpc.CallOption) (*Fulfillment, error)
	ListOrderFulfillments(ctx context.Context, in *ListOrderFulfillmentsRequest, opts ...grpc.CallOption) (*ListOrderFulfillmentsResponse, error)
}

type fulfillmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFulfillmentServiceClient(cc grpc.ClientConnInterface) FulfillmentServiceClient {
	return &fulfillmentServiceClient{cc: cc}
}

func (c *fulfillmentServiceClient) CreateFulfillment(ctx context.Context, in *CreateFulfillmentRequest, opts ...grpc.CallOption) (*Fulfillment, error) {
	out := new(Fulfillment)
	if err := c.cc.Invoke(ctx, FulfillmentServiceCreateFulfillmentMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fulfillmentServiceClient) UpdateFulfillmentStatus(ctx context.Context, in *UpdateFulfillmentStatusRequest, opts ...grpc.CallOption) (*Fulfillment, error) {
	out := new(Fulfillment)
	if err := c.cc.Invoke(ctx, FulfillmentServiceUpdateFulfillmentStatusMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fulfillmentServiceClient) GetFulfillment(ctx context.Context, in *GetFulfillmentRequest, opts ...grpc.CallOption) (*Fulfillment, error) {
	out := new(Fulfillment)
	if err := c.cc.Invoke(ctx, FulfillmentServiceGetFulfillmentMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fulfillmentServiceClient) ListOrderFulfillments(ctx context.Context, in *ListOrderFulfillmentsRequest, opts ...grpc.CallOption) (*ListOrderFulfillmentsResponse, error) {
	out := new(ListOrderFulfillmentsResponse)
	if err := c.cc.Invoke(ctx, FulfillmentServiceListOrderFulfillmentsMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
