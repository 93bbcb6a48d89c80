// Package grpcserver adapts OrderService to the Engine gRPC API.
package grpcserver

import (
	"context"
	"errors"
	"log"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "helix/api/pb"
	"helix/domain/orderbook"
	"helix/service"
)

// Server adapts OrderService to gRPC. grpc-go serves unary calls
// concurrently while the engine is single-writer, so mutating commands
// serialize on mu; queries stay lock-free behind the epoch readers.
type Server struct {
	pb.UnimplementedEngineServer
	svc *service.OrderService

	mu sync.Mutex
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *pb.PlaceOrderRequest,
) (*pb.PlaceOrderResponse, error) {
	side := toSide(req.Side)
	otype := toType(req.Type)

	s.mu.Lock()
	seq, filled, err := s.svc.PlaceOrder(ctx, req.UserId, side, otype, req.Price, req.Qty)
	s.mu.Unlock()
	switch {
	case errors.Is(err, service.ErrPoolExhausted):
		return nil, status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, service.ErrInvalidOrder):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf(
		"[gRPC] PlaceOrder side=%v type=%v price=%d qty=%d seq=%d filled=%d",
		side, otype, req.Price, req.Qty, seq, filled,
	)

	return &pb.PlaceOrderResponse{
		Status: "ok",
		SeqId:  seq,
		Filled: filled,
	}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	s.mu.Lock()
	ok, err := s.svc.CancelOrder(req.OrderId, toSide(req.Side), req.Price)
	s.mu.Unlock()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no resting order %d at price %d", req.OrderId, req.Price)
	}

	log.Printf("[gRPC] CancelOrder id=%d price=%d", req.OrderId, req.Price)

	return &pb.CancelOrderResponse{Status: "ok"}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	return s.svc.Snapshot(), nil
}

func (s *Server) GetPoolStats(
	ctx context.Context,
	req *pb.PoolStatsRequest,
) (*pb.PoolStatsResponse, error) {
	return s.svc.PoolStats(), nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func toType(t pb.OrderType) orderbook.OrderType {
	switch t {
	case pb.OrderType_MARKET:
		return orderbook.Market
	case pb.OrderType_IOC:
		return orderbook.IOC
	case pb.OrderType_FOK:
		return orderbook.FOK
	case pb.OrderType_POST_ONLY:
		return orderbook.PostOnly
	default:
		return orderbook.Limit
	}
}
