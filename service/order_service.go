package service

import (
	"context"
	"errors"
	"log"
	"time"

	"helix/api/pb"
	"helix/domain/orderbook"
	"helix/infra/outbox"
	"helix/infra/reclaim"
	"helix/infra/sequence"
	"helix/infra/slotpool"
	"helix/infra/wal"
	"helix/snapshot"
)

var (
	// ErrPoolExhausted means every order slot is live. The caller should
	// back off; capacity is fixed at boot.
	ErrPoolExhausted = errors.New("service: order pool exhausted")

	// ErrInvalidOrder rejects orders before they cost a sequence number.
	ErrInvalidOrder = errors.New("service: invalid order")
)

// TickSink publishes best-effort public market data. kafka.TickPublisher
// satisfies it; tests plug in a recorder.
type TickSink interface {
	Publish(ctx context.Context, tick *pb.Tick) error
}

// reclaimSink adapts the reclaimer to the book's retire contract: a
// departing order's slot is queued for deferred release, never freed
// inline, so an in-flight snapshot can still walk through it.
type reclaimSink struct {
	rec *reclaim.Reclaimer
}

func (s reclaimSink) Retire(o *orderbook.Order) {
	s.rec.Retire(o.Guard())
}

// NewBook builds a book whose retired orders flow into rec.
func NewBook(rec *reclaim.Reclaimer) *orderbook.Book {
	return orderbook.NewBook(reclaimSink{rec})
}

// OrderService is the single writer. All coordination between the
// domain, the durability layer, and the delivery layer happens here.
type OrderService struct {
	book   *orderbook.Book
	pool   *slotpool.Pool[orderbook.Order]
	rec    *reclaim.Reclaimer
	reader *snapshot.Reader
	seqGen *sequence.Sequencer
	wal    *wal.WAL
	outbox *outbox.Outbox
	ticks  TickSink
}

// NewOrderService wires all dependencies. ticks may be nil when no
// market-data feed is configured.
func NewOrderService(
	book *orderbook.Book,
	pool *slotpool.Pool[orderbook.Order],
	rec *reclaim.Reclaimer,
	seqGen *sequence.Sequencer,
	w *wal.WAL,
	ob *outbox.Outbox,
	ticks TickSink,
) *OrderService {
	return &OrderService{
		book:   book,
		pool:   pool,
		rec:    rec,
		reader: snapshot.NewReader(rec),
		seqGen: seqGen,
		wal:    w,
		outbox: ob,
		ticks:  ticks,
	}
}

// PlaceOrder runs the full write path: sequence, acquire a slot, log
// the intent, match, and hand any execution to the outbox. The
// returned sequence is the order's identity for later cancels.
func (s *OrderService) PlaceOrder(
	ctx context.Context,
	userID uint64,
	side orderbook.Side,
	otype orderbook.OrderType,
	price int64,
	qty int64,
) (seq uint64, filled int64, err error) {
	if qty <= 0 || (otype != orderbook.Market && price <= 0) {
		return 0, 0, ErrInvalidOrder
	}

	g, ok := s.pool.Acquire()
	if !ok {
		return 0, 0, ErrPoolExhausted
	}
	seq = s.seqGen.Next()

	// The slot is reused as-is: every field is overwritten here, so
	// whatever the previous occupant left behind never leaks.
	o := g.Value()
	*o = orderbook.Order{
		ID:     seq,
		SeqID:  seq,
		Side:   side,
		Type:   otype,
		Price:  price,
		Qty:    qty,
		Status: orderbook.Active,
	}
	o.Bind(g)

	intent, err := pb.Marshal(&pb.OrderIntent{
		UserId: userID,
		Side:   pb.Side(side),
		Type:   pb.OrderType(otype),
		Price:  price,
		Qty:    qty,
	})
	if err != nil {
		g.Release()
		return 0, 0, err
	}
	if err := s.wal.Append(wal.NewRecord(wal.RecordPlace, seq, intent)); err != nil {
		// The order never reached the book; the slot goes straight back.
		g.Release()
		return 0, 0, err
	}

	s.book.Place(o)
	filled = o.Filled

	if filled > 0 {
		if err := s.recordExecution(ctx, seq, price, filled); err != nil {
			return seq, filled, err
		}
	}
	return seq, filled, nil
}

// CancelOrder logs the intent and removes the resting order. It reports
// false when nothing rests under that identity.
func (s *OrderService) CancelOrder(id uint64, side orderbook.Side, price int64) (bool, error) {
	intent, err := pb.Marshal(&pb.CancelIntent{
		OrderId: id,
		Side:    pb.Side(side),
		Price:   price,
	})
	if err != nil {
		return false, err
	}
	seq := s.seqGen.Next()
	if err := s.wal.Append(wal.NewRecord(wal.RecordCancel, seq, intent)); err != nil {
		return false, err
	}
	return s.book.Cancel(id, side, price), nil
}

// Snapshot returns every resting order, bids from the top of the book
// downward, then asks upward. The reader bracket keeps retired slots
// alive for the duration of the walk.
func (s *OrderService) Snapshot() *pb.SnapshotResponse {
	s.reader.Begin()
	defer s.reader.End()

	resp := &pb.SnapshotResponse{
		LastSeq: s.seqGen.Current(),
		Orders:  make([]*pb.OrderEntry, 0, 1024),
	}
	s.book.SnapshotActive(func(price int64, o *orderbook.Order) {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			Id:     o.ID,
			Side:   pb.Side(o.Side),
			Type:   pb.OrderType(o.Type),
			Price:  price,
			Qty:    o.Qty,
			Filled: o.Filled,
		})
	})
	return resp
}

// PoolStats reports slot occupancy and the reclaim backlog.
func (s *OrderService) PoolStats() *pb.PoolStatsResponse {
	return &pb.PoolStatsResponse{
		Allocated:      int64(s.pool.Allocated()),
		Capacity:       int64(s.pool.Capacity()),
		Exhausted:      s.pool.IsExhausted(),
		PendingReclaim: int64(s.rec.Pending()),
	}
}

// AdvanceEpoch performs one reclamation pass. Intended to be called
// periodically by a background job.
func (s *OrderService) AdvanceEpoch() {
	s.rec.Advance()
}

// StartEpochJob runs AdvanceEpoch on a ticker until ctx is done.
func (s *OrderService) StartEpochJob(ctx context.Context, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.AdvanceEpoch()
			}
		}
	}()
}

// Sync flushes the WAL to stable storage.
func (s *OrderService) Sync() error { return s.wal.Sync() }

func (s *OrderService) recordExecution(ctx context.Context, seq uint64, price, qty int64) error {
	now := time.Now().UnixNano()
	payload, err := pb.Marshal(&pb.Execution{
		Seq:     seq,
		TakerId: seq,
		Price:   price,
		Qty:     qty,
		Time:    now,
	})
	if err != nil {
		return err
	}
	if err := s.outbox.Append(seq, payload); err != nil {
		return err
	}

	if s.ticks != nil {
		// Fire-and-forget: a dropped tick never fails the write path.
		tick := &pb.Tick{Price: price, Qty: qty, Seq: seq, Time: now}
		if err := s.ticks.Publish(ctx, tick); err != nil {
			log.Printf("tick publish failed (seq=%d): %v", seq, err)
		}
	}
	return nil
}
