// Package pb holds the wire types for the engine API and its durable
// payloads. The messages are hand-maintained in the legacy struct-tag
// form (see engine.proto for the schema); the protobuf runtime derives
// their descriptors at runtime, so no generated code is checked in.
// Marshal/Unmarshal adapt them to the protobuf v2 API.
package pb

import (
	"strconv"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// Marshal encodes a message to the protobuf wire format.
func Marshal(m protoadapt.MessageV1) ([]byte, error) {
	return proto.Marshal(protoadapt.MessageV2Of(m))
}

// Unmarshal decodes protobuf wire bytes into m.
func Unmarshal(b []byte, m protoadapt.MessageV1) error {
	return proto.Unmarshal(b, protoadapt.MessageV2Of(m))
}

func text(m protoadapt.MessageV1) string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}

type Side int32

const (
	Side_BID Side = 0
	Side_ASK Side = 1
)

var Side_name = map[int32]string{
	0: "BID",
	1: "ASK",
}

func (x Side) String() string {
	if s, ok := Side_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

type OrderType int32

const (
	OrderType_LIMIT     OrderType = 0
	OrderType_MARKET    OrderType = 1
	OrderType_IOC       OrderType = 2
	OrderType_FOK       OrderType = 3
	OrderType_POST_ONLY OrderType = 4
)

var OrderType_name = map[int32]string{
	0: "LIMIT",
	1: "MARKET",
	2: "IOC",
	3: "FOK",
	4: "POST_ONLY",
}

func (x OrderType) String() string {
	if s, ok := OrderType_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

type PlaceOrderRequest struct {
	UserId uint64    `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Side   Side      `protobuf:"varint,2,opt,name=side,proto3,enum=helix.Side" json:"side,omitempty"`
	Type   OrderType `protobuf:"varint,3,opt,name=type,proto3,enum=helix.OrderType" json:"type,omitempty"`
	Price  int64     `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Qty    int64     `protobuf:"varint,5,opt,name=qty,proto3" json:"qty,omitempty"`
}

func (m *PlaceOrderRequest) Reset()         { *m = PlaceOrderRequest{} }
func (m *PlaceOrderRequest) String() string { return text(m) }
func (*PlaceOrderRequest) ProtoMessage()    {}

type PlaceOrderResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	SeqId  uint64 `protobuf:"varint,2,opt,name=seq_id,json=seqId,proto3" json:"seq_id,omitempty"`
	Filled int64  `protobuf:"varint,3,opt,name=filled,proto3" json:"filled,omitempty"`
}

func (m *PlaceOrderResponse) Reset()         { *m = PlaceOrderResponse{} }
func (m *PlaceOrderResponse) String() string { return text(m) }
func (*PlaceOrderResponse) ProtoMessage()    {}

type CancelOrderRequest struct {
	OrderId uint64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side    Side   `protobuf:"varint,2,opt,name=side,proto3,enum=helix.Side" json:"side,omitempty"`
	Price   int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
}

func (m *CancelOrderRequest) Reset()         { *m = CancelOrderRequest{} }
func (m *CancelOrderRequest) String() string { return text(m) }
func (*CancelOrderRequest) ProtoMessage()    {}

type CancelOrderResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *CancelOrderResponse) Reset()         { *m = CancelOrderResponse{} }
func (m *CancelOrderResponse) String() string { return text(m) }
func (*CancelOrderResponse) ProtoMessage()    {}

type SnapshotRequest struct{}

func (m *SnapshotRequest) Reset()         { *m = SnapshotRequest{} }
func (m *SnapshotRequest) String() string { return text(m) }
func (*SnapshotRequest) ProtoMessage()    {}

type OrderEntry struct {
	Id     uint64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Side   Side      `protobuf:"varint,2,opt,name=side,proto3,enum=helix.Side" json:"side,omitempty"`
	Type   OrderType `protobuf:"varint,3,opt,name=type,proto3,enum=helix.OrderType" json:"type,omitempty"`
	Price  int64     `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Qty    int64     `protobuf:"varint,5,opt,name=qty,proto3" json:"qty,omitempty"`
	Filled int64     `protobuf:"varint,6,opt,name=filled,proto3" json:"filled,omitempty"`
}

func (m *OrderEntry) Reset()         { *m = OrderEntry{} }
func (m *OrderEntry) String() string { return text(m) }
func (*OrderEntry) ProtoMessage()    {}

type SnapshotResponse struct {
	LastSeq uint64        `protobuf:"varint,1,opt,name=last_seq,json=lastSeq,proto3" json:"last_seq,omitempty"`
	Orders  []*OrderEntry `protobuf:"bytes,2,rep,name=orders,proto3" json:"orders,omitempty"`
}

func (m *SnapshotResponse) Reset()         { *m = SnapshotResponse{} }
func (m *SnapshotResponse) String() string { return text(m) }
func (*SnapshotResponse) ProtoMessage()    {}

type PoolStatsRequest struct{}

func (m *PoolStatsRequest) Reset()         { *m = PoolStatsRequest{} }
func (m *PoolStatsRequest) String() string { return text(m) }
func (*PoolStatsRequest) ProtoMessage()    {}

type PoolStatsResponse struct {
	Allocated      int64 `protobuf:"varint,1,opt,name=allocated,proto3" json:"allocated,omitempty"`
	Capacity       int64 `protobuf:"varint,2,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Exhausted      bool  `protobuf:"varint,3,opt,name=exhausted,proto3" json:"exhausted,omitempty"`
	PendingReclaim int64 `protobuf:"varint,4,opt,name=pending_reclaim,json=pendingReclaim,proto3" json:"pending_reclaim,omitempty"`
}

func (m *PoolStatsResponse) Reset()         { *m = PoolStatsResponse{} }
func (m *PoolStatsResponse) String() string { return text(m) }
func (*PoolStatsResponse) ProtoMessage()    {}

// OrderIntent is the WAL payload for a place command.
type OrderIntent struct {
	UserId uint64    `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Side   Side      `protobuf:"varint,2,opt,name=side,proto3,enum=helix.Side" json:"side,omitempty"`
	Type   OrderType `protobuf:"varint,3,opt,name=type,proto3,enum=helix.OrderType" json:"type,omitempty"`
	Price  int64     `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Qty    int64     `protobuf:"varint,5,opt,name=qty,proto3" json:"qty,omitempty"`
}

func (m *OrderIntent) Reset()         { *m = OrderIntent{} }
func (m *OrderIntent) String() string { return text(m) }
func (*OrderIntent) ProtoMessage()    {}

// CancelIntent is the WAL payload for a cancel command.
type CancelIntent struct {
	OrderId uint64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side    Side   `protobuf:"varint,2,opt,name=side,proto3,enum=helix.Side" json:"side,omitempty"`
	Price   int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
}

func (m *CancelIntent) Reset()         { *m = CancelIntent{} }
func (m *CancelIntent) String() string { return text(m) }
func (*CancelIntent) ProtoMessage()    {}

// Execution is the outbox payload broadcast after a trade.
type Execution struct {
	Seq     uint64 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	TakerId uint64 `protobuf:"varint,2,opt,name=taker_id,json=takerId,proto3" json:"taker_id,omitempty"`
	Price   int64  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Qty     int64  `protobuf:"varint,4,opt,name=qty,proto3" json:"qty,omitempty"`
	Time    int64  `protobuf:"varint,5,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *Execution) Reset()         { *m = Execution{} }
func (m *Execution) String() string { return text(m) }
func (*Execution) ProtoMessage()    {}

// Tick is the best-effort public market-data message.
type Tick struct {
	Price int64  `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	Qty   int64  `protobuf:"varint,2,opt,name=qty,proto3" json:"qty,omitempty"`
	Seq   uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	Time  int64  `protobuf:"varint,4,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *Tick) Reset()         { *m = Tick{} }
func (m *Tick) String() string { return text(m) }
func (*Tick) ProtoMessage()    {}
