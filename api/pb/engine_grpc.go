package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Engine service bindings, kept in the shape protoc-gen-go-grpc emits
// so the hand-maintained messages plug into grpc-go unchanged.

const (
	Engine_PlaceOrder_FullMethodName   = "/helix.Engine/PlaceOrder"
	Engine_CancelOrder_FullMethodName  = "/helix.Engine/CancelOrder"
	Engine_GetSnapshot_FullMethodName  = "/helix.Engine/GetSnapshot"
	Engine_GetPoolStats_FullMethodName = "/helix.Engine/GetPoolStats"
)

type EngineClient interface {
	PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error)
	CancelOrder(ctx context.Context, in *CancelOrderRequest, opts ...grpc.CallOption) (*CancelOrderResponse, error)
	GetSnapshot(ctx context.Context, in *SnapshotRequest, opts ...grpc.CallOption) (*SnapshotResponse, error)
	GetPoolStats(ctx context.Context, in *PoolStatsRequest, opts ...grpc.CallOption) (*PoolStatsResponse, error)
}

type engineClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineClient(cc grpc.ClientConnInterface) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error) {
	out := new(PlaceOrderResponse)
	if err := c.cc.Invoke(ctx, Engine_PlaceOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) CancelOrder(ctx context.Context, in *CancelOrderRequest, opts ...grpc.CallOption) (*CancelOrderResponse, error) {
	out := new(CancelOrderResponse)
	if err := c.cc.Invoke(ctx, Engine_CancelOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) GetSnapshot(ctx context.Context, in *SnapshotRequest, opts ...grpc.CallOption) (*SnapshotResponse, error) {
	out := new(SnapshotResponse)
	if err := c.cc.Invoke(ctx, Engine_GetSnapshot_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) GetPoolStats(ctx context.Context, in *PoolStatsRequest, opts ...grpc.CallOption) (*PoolStatsResponse, error) {
	out := new(PoolStatsResponse)
	if err := c.cc.Invoke(ctx, Engine_GetPoolStats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type EngineServer interface {
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
	CancelOrder(context.Context, *CancelOrderRequest) (*CancelOrderResponse, error)
	GetSnapshot(context.Context, *SnapshotRequest) (*SnapshotResponse, error)
	GetPoolStats(context.Context, *PoolStatsRequest) (*PoolStatsResponse, error)
}

// UnimplementedEngineServer provides forward-compatible defaults.
type UnimplementedEngineServer struct{}

func (UnimplementedEngineServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceOrder not implemented")
}

func (UnimplementedEngineServer) CancelOrder(context.Context, *CancelOrderRequest) (*CancelOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelOrder not implemented")
}

func (UnimplementedEngineServer) GetSnapshot(context.Context, *SnapshotRequest) (*SnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSnapshot not implemented")
}

func (UnimplementedEngineServer) GetPoolStats(context.Context, *PoolStatsRequest) (*PoolStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPoolStats not implemented")
}

func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&Engine_ServiceDesc, srv)
}

func _Engine_PlaceOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlaceOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).PlaceOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_PlaceOrder_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).PlaceOrder(ctx, req.(*PlaceOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_CancelOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).CancelOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_CancelOrder_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).CancelOrder(ctx, req.(*CancelOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_GetSnapshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).GetSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_GetSnapshot_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).GetSnapshot(ctx, req.(*SnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_GetPoolStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PoolStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).GetPoolStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Engine_GetPoolStats_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).GetPoolStats(ctx, req.(*PoolStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Engine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "helix.Engine",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PlaceOrder", Handler: _Engine_PlaceOrder_Handler},
		{MethodName: "CancelOrder", Handler: _Engine_CancelOrder_Handler},
		{MethodName: "GetSnapshot", Handler: _Engine_GetSnapshot_Handler},
		{MethodName: "GetPoolStats", Handler: _Engine_GetPoolStats_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/pb/engine.proto",
}
