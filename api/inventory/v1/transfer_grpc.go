package inventoryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	TransferServiceCreateTransferMethod   = "/omnipos.inventory.v1.TransferService/CreateTransfer"
	TransferServiceCompleteTransferMethod = "/omnipos.inventory.v1.TransferService/CompleteTransfer"
	TransferServiceCancelTransferMethod   = "/omnipos.inventory.v1.TransferService/CancelTransfer"
	TransferServiceGetTransferMethod      = "/omnipos.inventory.v1.TransferService/GetTransfer"
	TransferServiceListTransfersMethod    = "/omnipos.inventory.v1.TransferService/ListTransfers"
)

type TransferServiceServer interface {
	CreateTransfer(context.Context, *CreateTransferRequest) (*Transfer, error)
	CompleteTransfer(context.Context, *TransferIDRequest) (*Transfer, error)
	CancelTransfer(context.Context, *TransferIDRequest) (*Transfer, error)
	GetTransfer(context.Context, *TransferIDRequest) (*Transfer, error)
	ListTransfers(context.Context, *ListTransfersRequest) (*ListTransfersResponse, error)
}

// UnimplementedTransferServiceServer can be embedded to stay forward compatible.
type UnimplementedTransferServiceServer struct{}

func (UnimplementedTransferServiceServer) CreateTransfer(context.Context, *CreateTransferRequest) (*Transfer, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTransfer not implemented")
}

func (UnimplementedTransferServiceServer) CompleteTransfer(context.Context, *TransferIDRequest) (*Transfer, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteTransfer not implemented")
}

func (UnimplementedTransferServiceServer) CancelTransfer(context.Context, *TransferIDRequest) (*Transfer, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelTransfer not implemented")
}

func (UnimplementedTransferServiceServer) GetTransfer(context.Context, *TransferIDRequest) (*Transfer, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTransfer not implemented")
}

func (UnimplementedTransferServiceServer) ListTransfers(context.Context, *ListTransfersRequest) (*ListTransfersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTransfers not implemented")
}

func RegisterTransferServiceServer(s grpc.ServiceRegistrar, srv TransferServiceServer) {
	s.RegisterService(&TransferServiceDesc, srv)
}

func transferServiceCreateTransferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).CreateTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TransferServiceCreateTransferMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).CreateTransfer(ctx, req.(*CreateTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func transferServiceCompleteTransferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).CompleteTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TransferServiceCompleteTransferMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).CompleteTransfer(ctx, req.(*TransferIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func transferServiceCancelTransferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).CancelTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TransferServiceCancelTransferMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).CancelTransfer(ctx, req.(*TransferIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func transferServiceGetTransferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).GetTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TransferServiceGetTransferMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).GetTransfer(ctx, req.(*TransferIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func transferServiceListTransfersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTransfersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).ListTransfers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TransferServiceListTransfersMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).ListTransfers(ctx, req.(*ListTransfersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var TransferServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.inventory.v1.TransferService",
	HandlerType: (*TransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateTransfer", Handler: transferServiceCreateTransferHandler},
		{MethodName: "CompleteTransfer", Handler: transferServiceCompleteTransferHandler},
		{MethodName: "CancelTransfer", Handler: transferServiceCancelTransferHandler},
		{MethodName: "GetTransfer", Handler: transferServiceGetTransferHandler},
		{MethodName: "ListTransfers", Handler: transferServiceListTransfersHandler},
	},
	Streams: []grpc.StreamDesc{},
}

type TransferServiceClient interface {
	CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*Transfer, error)
	CompleteTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error)
	CancelTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error)
	GetTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error)
	ListTransfers(ctx context.Context, in *ListTransfersRequest, opts ...grpc.CallOption) (*ListTransfersResponse, error)
}

type transferServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransferServiceClient(cc grpc.ClientConnInterface) TransferServiceClient {
	return &transferServiceClient{cc: cc}
}

func (c *transferServiceClient) CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*Transfer, error) {
	out := new(Transfer)
	if err := c.cc.Invoke(ctx, TransferServiceCreateTransferMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transferServiceClient) CompleteTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error) {
	out := new(Transfer)
	if err := c.cc.Invoke(ctx, TransferServiceCompleteTransferMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transferServiceClient) CancelTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error) {
	out := new(Transfer)
	if err := c.cc.Invoke(ctx, TransferServiceCancelTransferMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transferServiceClient) GetTransfer(ctx context.Context, in *TransferIDRequest, opts ...grpc.CallOption) (*Transfer, error) {
	out := new(Transfer)
	if err := c.cc.Invoke(ctx, TransferServiceGetTransferMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transferServiceClient) ListTransfers(ctx context.Context, in *ListTransfersRequest, opts ...grpc.CallOption) (*ListTransfersResponse, error) {
	out := new(ListTransfersResponse)
	if err := c.cc.Invoke(ctx, TransferServiceListTransfersMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
