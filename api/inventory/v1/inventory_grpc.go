package inventoryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryServiceGetStockMethod        = "/omnipos.inventory.v1.InventoryService/GetStock"
	InventoryServiceListStockMethod       = "/omnipos.inventory.v1.InventoryService/ListStock"
	InventoryServiceListLowStockMethod    = "/omnipos.inventory.v1.InventoryService/ListLowStock"
	InventoryServiceAdjustStockMethod     = "/omnipos.inventory.v1.InventoryService/AdjustStock"
	InventoryServiceInitializeStockMethod = "/omnipos.inventory.v1.InventoryService/InitializeStock"
	InventoryServiceReserveStockMethod    = "/omnipos.inventory.v1.InventoryService/ReserveStock"
	InventoryServiceReleaseStockMethod    = "/omnipos.inventory.v1.InventoryService/ReleaseStock"
	InventoryServiceRetireStockMethod     = "/omnipos.inventory.v1.InventoryService/RetireStock"
	InventoryServiceSetBackorderMethod    = "/omnipos.inventory.v1.InventoryService/SetBackorder"
	InventoryServiceListMovementsMethod   = "/omnipos.inventory.v1.InventoryService/ListMovements"
	InventoryServiceReconcileStockMethod  = "/omnipos.inventory.v1.InventoryService/ReconcileStock"
)

type InventoryServiceServer interface {
	GetStock(context.Context, *GetStockRequest) (*StockRecord, error)
	ListStock(context.Context, *ListStockRequest) (*ListStockResponse, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListStockResponse, error)
	AdjustStock(context.Context, *AdjustStockRequest) (*StockRecord, error)
	InitializeStock(context.Context, *InitializeStockRequest) (*StockRecord, error)
	ReserveStock(context.Context, *ReserveStockRequest) (*StockRecord, error)
	ReleaseStock(context.Context, *ReserveStockRequest) (*StockRecord, error)
	RetireStock(context.Context, *RetireStockRequest) (*StockRecord, error)
	SetBackorder(context.Context, *SetBackorderRequest) (*SetBackorderResponse, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
	ReconcileStock(context.Context, *ReconcileStockRequest) (*ReconcileStockResponse, error)
}

// UnimplementedInventoryServiceServer can be embedded to stay forward compatible.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) GetStock(context.Context, *GetStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStock not implemented")
}

func (UnimplementedInventoryServiceServer) ListStock(context.Context, *ListStockRequest) (*ListStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStock not implemented")
}

func (UnimplementedInventoryServiceServer) ListLowStock(context.Context, *ListLowStockRequest) (*ListStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLowStock not implemented")
}

func (UnimplementedInventoryServiceServer) AdjustStock(context.Context, *AdjustStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustStock not implemented")
}

func (UnimplementedInventoryServiceServer) InitializeStock(context.Context, *InitializeStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method InitializeStock not implemented")
}

func (UnimplementedInventoryServiceServer) ReserveStock(context.Context, *ReserveStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method ReserveStock not implemented")
}

func (UnimplementedInventoryServiceServer) ReleaseStock(context.Context, *ReserveStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method ReleaseStock not implemented")
}

func (UnimplementedInventoryServiceServer) RetireStock(context.Context, *RetireStockRequest) (*StockRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method RetireStock not implemented")
}

func (UnimplementedInventoryServiceServer) SetBackorder(context.Context, *SetBackorderRequest) (*SetBackorderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetBackorder not implemented")
}

func (UnimplementedInventoryServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

func (UnimplementedInventoryServiceServer) ReconcileStock(context.Context, *ReconcileStockRequest) (*ReconcileStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReconcileStock not implemented")
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

func inventoryServiceGetStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).GetStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceGetStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).GetStock(ctx, req.(*GetStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceListStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceListStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListStock(ctx, req.(*ListStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceListLowStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLowStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListLowStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceListLowStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListLowStock(ctx, req.(*ListLowStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceAdjustStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdjustStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).AdjustStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceAdjustStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).AdjustStock(ctx, req.(*AdjustStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceInitializeStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).InitializeStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceInitializeStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).InitializeStock(ctx, req.(*InitializeStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceReserveStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReserveStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ReserveStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceReserveStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ReserveStock(ctx, req.(*ReserveStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceReleaseStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReserveStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ReleaseStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceReleaseStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ReleaseStock(ctx, req.(*ReserveStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceRetireStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetireStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).RetireStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceRetireStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).RetireStock(ctx, req.(*RetireStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceSetBackorderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetBackorderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).SetBackorder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceSetBackorderMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).SetBackorder(ctx, req.(*SetBackorderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceListMovementsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListMovements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceListMovementsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListMovements(ctx, req.(*ListMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func inventoryServiceReconcileStockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReconcileStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ReconcileStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryServiceReconcileStockMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ReconcileStock(ctx, req.(*ReconcileStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.inventory.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStock", Handler: inventoryServiceGetStockHandler},
		{MethodName: "ListStock", Handler: inventoryServiceListStockHandler},
		{MethodName: "ListLowStock", Handler: inventoryServiceListLowStockHandler},
		{MethodName: "AdjustStock", Handler: inventoryServiceAdjustStockHandler},
		{MethodName: "InitializeStock", Handler: inventoryServiceInitializeStockHandler},
		{MethodName: "ReserveStock", Handler: inventoryServiceReserveStockHandler},
		{MethodName: "ReleaseStock", Handler: inventoryServiceReleaseStockHandler},
		{MethodName: "RetireStock", Handler: inventoryServiceRetireStockHandler},
		{MethodName: "SetBackorder", Handler: inventoryServiceSetBackorderHandler},
		{MethodName: "ListMovements", Handler: inventoryServiceListMovementsHandler},
		{MethodName: "ReconcileStock", Handler: inventoryServiceReconcileStockHandler},
	},
	Streams: []grpc.StreamDesc{},
}

type InventoryServiceClient interface {
	GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	ListStock(ctx context.Context, in *ListStockRequest, opts ...grpc.CallOption) (*ListStockResponse, error)
	ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListStockResponse, error)
	AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	InitializeStock(ctx context.Context, in *InitializeStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	ReleaseStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	RetireStock(ctx context.Context, in *RetireStockRequest, opts ...grpc.CallOption) (*StockRecord, error)
	SetBackorder(ctx context.Context, in *SetBackorderRequest, opts ...grpc.CallOption) (*SetBackorderResponse, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
	ReconcileStock(ctx context.Context, in *ReconcileStockRequest, opts ...grpc.CallOption) (*ReconcileStockResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceGetStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListStock(ctx context.Context, in *ListStockRequest, opts ...grpc.CallOption) (*ListStockResponse, error) {
	out := new(ListStockResponse)
	if err := c.cc.Invoke(ctx, InventoryServiceListStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListStockResponse, error) {
	out := new(ListStockResponse)
	if err := c.cc.Invoke(ctx, InventoryServiceListLowStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceAdjustStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) InitializeStock(ctx context.Context, in *InitializeStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceInitializeStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceReserveStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ReleaseStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceReleaseStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) RetireStock(ctx context.Context, in *RetireStockRequest, opts ...grpc.CallOption) (*StockRecord, error) {
	out := new(StockRecord)
	if err := c.cc.Invoke(ctx, InventoryServiceRetireStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) SetBackorder(ctx context.Context, in *SetBackorderRequest, opts ...grpc.CallOption) (*SetBackorderResponse, error) {
	out := new(SetBackorderResponse)
	if err := c.cc.Invoke(ctx, InventoryServiceSetBackorderMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	out := new(ListMovementsResponse)
	if err := c.cc.Invoke(ctx, InventoryServiceListMovementsMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ReconcileStock(ctx context.Context, in *ReconcileStockRequest, opts ...grpc.CallOption) (*ReconcileStockResponse, error) {
	out := new(ReconcileStockResponse)
	if err := c.cc.Invoke(ctx, InventoryServiceReconcileStockMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
