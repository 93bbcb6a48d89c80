package orderbook

import "helix/infra/slotpool"

type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "BID"
	}
	return "ASK"
}

type OrderType uint8

const (
	Limit OrderType = iota
	Market
	IOC
	FOK
	PostOnly
)

type Status uint8

const (
	Active Status = iota
	Inactive
)

// Order is the pooled domain object. Every live order occupies one
// slot-pool slot; guard is the handle that owns it. next/prev link the
// order into its price level's FIFO queue.
type Order struct {
	ID     uint64
	Price  int64
	Qty    int64 // remaining quantity
	Filled int64
	SeqID  uint64
	Side   Side
	Type   OrderType
	Status Status

	guard *slotpool.Guard[Order]
	next  *Order
	prev  *Order
}

// Bind attaches the guard owning this order's slot. The service sets it
// right after acquiring the slot, before the order enters the book.
func (o *Order) Bind(g *slotpool.Guard[Order]) { o.guard = g }

// Guard returns the slot guard; the reclaimer releases it once no
// snapshot reader can still see the order.
func (o *Order) Guard() *slotpool.Guard[Order] { return o.guard }

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() int64 { return o.Qty }

// Next returns the queue successor within the price level.
func (o *Order) Next() *Order { return o.next }
