package orderbook

import (
	"testing"

	"helix/infra/slotpool"
)

type captureSink struct {
	retired []*Order
}

func (s *captureSink) Retire(o *Order) { s.retired = append(s.retired, o) }

func newTestBook(t *testing.T) (*Book, *slotpool.Pool[Order], *captureSink) {
	t.Helper()
	pool, err := slotpool.New[Order](256)
	if err != nil {
		t.Fatal(err)
	}
	sink := &captureSink{}
	return NewBook(sink), pool, sink
}

var seqCounter uint64

func place(t *testing.T, b *Book, pool *slotpool.Pool[Order], side Side, otype OrderType, price, qty int64, id uint64) *Order {
	t.Helper()
	g, ok := pool.Acquire()
	if !ok {
		t.Fatal("test pool exhausted")
	}
	seqCounter++
	o := g.Value()
	*o = Order{
		ID:     id,
		Price:  price,
		Qty:    qty,
		SeqID:  seqCounter,
		Side:   side,
		Type:   otype,
		Status: Active,
	}
	o.Bind(g)
	b.Place(o)
	return o
}

func TestLimitMatchEmptiesBook(t *testing.T) {
	b, pool, sink := newTestBook(t)
	place(t, b, pool, Bid, Limit, 100, 5, 1)
	ask := place(t, b, pool, Ask, Limit, 100, 5, 2)

	if b.Bids.Size() != 0 || b.Asks.Size() != 0 {
		t.Error("full cross should empty both sides")
	}
	if ask.Filled != 5 {
		t.Errorf("incoming Filled=%d, want 5", ask.Filled)
	}
	if len(sink.retired) != 2 {
		t.Errorf("retired %d orders, want both legs", len(sink.retired))
	}
	for _, o := range sink.retired {
		if o.Status != Inactive {
			t.Error("retired order should be Inactive")
		}
	}
}

func TestPartialFillRests(t *testing.T) {
	b, pool, _ := newTestBook(t)
	place(t, b, pool, Ask, Limit, 100, 3, 1)
	bid := place(t, b, pool, Bid, Limit, 100, 10, 2)

	if bid.Filled != 3 || bid.Qty != 7 {
		t.Errorf("Filled=%d Qty=%d, want 3/7", bid.Filled, bid.Qty)
	}
	if b.Asks.Size() != 0 {
		t.Error("ask side should be empty")
	}
	lvl := b.BestBid()
	if lvl == nil || lvl.Price != 100 || lvl.TotalQty != 7 {
		t.Errorf("remainder should rest at 100 with qty 7, got %+v", lvl)
	}
}

func TestPriceTimePriority(t *testing.T) {
	b, pool, _ := newTestBook(t)
	first := place(t, b, pool, Ask, Limit, 100, 5, 1)
	second := place(t, b, pool, Ask, Limit, 100, 5, 2)
	place(t, b, pool, Ask, Limit, 99, 5, 3) // better price, later in time

	place(t, b, pool, Bid, Limit, 100, 8, 4)

	// Better price trades first, then FIFO at 100.
	if first.Filled != 3 {
		t.Errorf("first ask at 100 Filled=%d, want 3", first.Filled)
	}
	if second.Filled != 0 {
		t.Errorf("second ask at 100 Filled=%d, want 0", second.Filled)
	}
	if lvl := b.BestAsk(); lvl == nil || lvl.TotalQty != 7 {
		t.Errorf("ask side should hold 7 remaining, got %+v", lvl)
	}
}

func TestIOCRemainderDoesNotRest(t *testing.T) {
	b, pool, sink := newTestBook(t)
	place(t, b, pool, Ask, Limit, 100, 3, 1)
	ioc := place(t, b, pool, Bid, IOC, 100, 10, 2)

	if ioc.Filled != 3 {
		t.Errorf("Filled=%d, want 3", ioc.Filled)
	}
	if b.Bids.Size() != 0 {
		t.Error("IOC remainder must not rest")
	}
	found := false
	for _, o := range sink.retired {
		if o == ioc {
			found = true
		}
	}
	if !found {
		t.Error("IOC order should have been retired")
	}
}

func TestFOKAllOrNothing(t *testing.T) {
	b, pool, _ := newTestBook(t)
	resting := place(t, b, pool, Ask, Limit, 100, 3, 1)

	// Insufficient liquidity: nothing trades, book untouched.
	fok := place(t, b, pool, Bid, FOK, 100, 10, 2)
	if fok.Filled != 0 {
		t.Errorf("unfillable FOK Filled=%d, want 0", fok.Filled)
	}
	if resting.Qty != 3 {
		t.Errorf("resting ask disturbed: Qty=%d, want 3", resting.Qty)
	}

	// Add depth across two levels; now 10 is coverable.
	place(t, b, pool, Ask, Limit, 101, 7, 3)
	fok2 := place(t, b, pool, Bid, FOK, 101, 10, 4)
	if fok2.Filled != 10 || fok2.Qty != 0 {
		t.Errorf("fillable FOK Filled=%d Qty=%d, want 10/0", fok2.Filled, fok2.Qty)
	}
	if b.Asks.Size() != 0 {
		t.Error("both ask levels should be consumed")
	}
}

func TestPostOnlyNeverTakes(t *testing.T) {
	b, pool, sink := newTestBook(t)
	resting := place(t, b, pool, Ask, Limit, 100, 5, 1)

	crossing := place(t, b, pool, Bid, PostOnly, 100, 5, 2)
	if crossing.Filled != 0 {
		t.Errorf("crossing post-only Filled=%d, want 0", crossing.Filled)
	}
	if resting.Qty != 5 {
		t.Error("resting ask must be untouched by rejected post-only")
	}
	if len(sink.retired) != 1 || sink.retired[0] != crossing {
		t.Error("rejected post-only should be retired")
	}

	passive := place(t, b, pool, Bid, PostOnly, 99, 5, 3)
	if passive.Status != Active || b.Bids.Size() != 1 {
		t.Error("non-crossing post-only should rest")
	}
}

func TestMarketWalksLevels(t *testing.T) {
	b, pool, _ := newTestBook(t)
	place(t, b, pool, Ask, Limit, 100, 2, 1)
	place(t, b, pool, Ask, Limit, 105, 2, 2)
	place(t, b, pool, Ask, Limit, 110, 2, 3)

	mkt := place(t, b, pool, Bid, Market, 0, 5, 4)
	if mkt.Filled != 5 {
		t.Errorf("market Filled=%d, want 5", mkt.Filled)
	}
	lvl := b.BestAsk()
	if lvl == nil || lvl.Price != 110 || lvl.TotalQty != 1 {
		t.Errorf("one unit should remain at 110, got %+v", lvl)
	}
}

func TestCancel(t *testing.T) {
	b, pool, sink := newTestBook(t)
	place(t, b, pool, Bid, Limit, 100, 5, 7)

	if b.Cancel(99, Bid, 100) {
		t.Error("cancel of unknown id should report false")
	}
	if !b.Cancel(7, Bid, 100) {
		t.Fatal("cancel of resting order failed")
	}
	if b.Bids.Size() != 0 {
		t.Error("emptied level should be deleted from the tree")
	}
	if len(sink.retired) != 1 || sink.retired[0].ID != 7 {
		t.Error("cancelled order should be retired")
	}
	if b.Cancel(7, Bid, 100) {
		t.Error("second cancel should report false")
	}
}

func TestSnapshotActiveOrdering(t *testing.T) {
	b, pool, _ := newTestBook(t)
	place(t, b, pool, Bid, Limit, 98, 1, 1)
	place(t, b, pool, Bid, Limit, 99, 1, 2)
	place(t, b, pool, Ask, Limit, 101, 1, 3)
	place(t, b, pool, Ask, Limit, 102, 1, 4)

	var prices []int64
	b.SnapshotActive(func(price int64, o *Order) {
		prices = append(prices, price)
	})
	want := []int64{99, 98, 101, 102} // bids top-down, then asks bottom-up
	if len(prices) != len(want) {
		t.Fatalf("visited %v, want %v", prices, want)
	}
	for i := range want {
		if prices[i] != want[i] {
			t.Fatalf("visited %v, want %v", prices, want)
		}
	}
}

func TestPoolSlotsRecycleThroughBook(t *testing.T) {
	pool, err := slotpool.New[Order](2)
	if err != nil {
		t.Fatal(err)
	}
	sink := &captureSink{}
	b := NewBook(sink)

	// Fill the book and cross it repeatedly; releasing retired guards
	// keeps the tiny pool sufficient forever.
	for round := uint64(0); round < 100; round++ {
		place(t, b, pool, Bid, Limit, 100, 1, round*2)
		place(t, b, pool, Ask, Limit, 100, 1, round*2+1)
		for _, o := range sink.retired {
			o.Guard().Release()
		}
		sink.retired = sink.retired[:0]
	}
	if pool.Allocated() != 0 {
		t.Errorf("allocated=%d after all rounds, want 0", pool.Allocated())
	}
}
