package orderbook

import "sync/atomic"

// RetireSink receives orders that left the book (filled, cancelled, or
// rejected). The sink forwards their guards to the reclaimer; the book
// itself never releases a slot.
type RetireSink interface {
	Retire(*Order)
}

// Book is the single-writer order book: one level tree per side.
type Book struct {
	Bids    *LevelTree
	Asks    *LevelTree
	LastSeq atomic.Uint64

	sink RetireSink
}

// NewBook creates an empty book that hands departing orders to sink.
func NewBook(sink RetireSink) *Book {
	return &Book{
		Bids: NewLevelTree(),
		Asks: NewLevelTree(),
		sink: sink,
	}
}

// Place matches the incoming order against the opposite side and rests
// the remainder according to its type. The order must be bound to its
// guard and Active. After Place returns, o.Filled holds the executed
// quantity and the placing writer may still read it; if the order did
// not rest it has been handed to the retire sink and must not be
// mutated or kept.
func (b *Book) Place(o *Order) {
	b.LastSeq.Store(o.SeqID)

	// PostOnly never takes liquidity: reject instead of crossing.
	if o.Type == PostOnly && b.wouldCross(o) {
		b.retire(o)
		return
	}
	// FOK fills completely or not at all.
	if o.Type == FOK && b.availableAgainst(o) < o.Qty {
		b.retire(o)
		return
	}

	b.match(o)

	switch {
	case o.Qty == 0:
		b.retire(o)
	case o.Type == Limit || o.Type == PostOnly:
		b.rest(o)
	default: // Market, IOC; FOK cannot have a remainder here
		b.retire(o)
	}
}

// Cancel removes the resting order with the given identity. It reports
// false when no such order rests at that level.
func (b *Book) Cancel(id uint64, side Side, price int64) bool {
	tree := b.treeFor(side)
	lvl := tree.Find(price)
	if lvl == nil {
		return false
	}
	for o := lvl.Head(); o != nil; o = o.next {
		if o.ID != id {
			continue
		}
		lvl.unlink(o)
		if lvl.OrderCount == 0 {
			tree.Delete(price)
		}
		b.retire(o)
		return true
	}
	return false
}

// BestBid returns the highest bid level, or nil.
func (b *Book) BestBid() *PriceLevel { return b.Bids.Max() }

// BestAsk returns the lowest ask level, or nil.
func (b *Book) BestAsk() *PriceLevel { return b.Asks.Min() }

// SnapshotActive visits every resting order, bids from the top of the
// book downward, then asks upward.
func (b *Book) SnapshotActive(visit func(price int64, o *Order)) {
	walk := func(lvl *PriceLevel) bool {
		for o := lvl.Head(); o != nil; o = o.next {
			if o.Status == Active {
				visit(lvl.Price, o)
			}
		}
		return true
	}
	b.Bids.Descending(walk)
	b.Asks.Ascending(walk)
}

// ---------- matching ----------

func (b *Book) match(o *Order) {
	opposite := b.treeFor(o.Side.other())
	for o.Qty > 0 {
		lvl := b.bestOpposite(o)
		if lvl == nil || !crosses(o, lvl.Price) {
			return
		}
		head := lvl.Head()
		trade := min64(o.Qty, head.Qty)

		o.Qty -= trade
		o.Filled += trade
		head.Qty -= trade
		head.Filled += trade
		lvl.reduce(trade)

		if head.Qty == 0 {
			lvl.unlink(head)
			if lvl.OrderCount == 0 {
				opposite.Delete(lvl.Price)
			}
			b.retire(head)
		}
	}
}

func (b *Book) rest(o *Order) {
	b.treeFor(o.Side).Upsert(o.Price).enqueue(o)
}

func (b *Book) retire(o *Order) {
	o.Status = Inactive
	b.sink.Retire(o)
}

func (b *Book) wouldCross(o *Order) bool {
	lvl := b.bestOpposite(o)
	return lvl != nil && crosses(o, lvl.Price)
}

// availableAgainst sums crossing liquidity on the opposite side, up to
// the order's own quantity.
func (b *Book) availableAgainst(o *Order) int64 {
	var sum int64
	scan := func(lvl *PriceLevel) bool {
		if !crosses(o, lvl.Price) {
			return false
		}
		sum += lvl.TotalQty
		return sum < o.Qty
	}
	if o.Side == Bid {
		b.Asks.Ascending(scan)
	} else {
		b.Bids.Descending(scan)
	}
	return sum
}

func (b *Book) bestOpposite(o *Order) *PriceLevel {
	if o.Side == Bid {
		return b.Asks.Min()
	}
	return b.Bids.Max()
}

func (b *Book) treeFor(s Side) *LevelTree {
	if s == Bid {
		return b.Bids
	}
	return b.Asks
}

func (s Side) other() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// crosses reports whether o would trade at the opposite price.
func crosses(o *Order, oppositePrice int64) bool {
	if o.Type == Market {
		return true
	}
	if o.Side == Bid {
		return oppositePrice <= o.Price
	}
	return oppositePrice >= o.Price
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
