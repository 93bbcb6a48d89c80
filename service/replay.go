package service

import (
	"fmt"
	"log"

	"helix/api/pb"
	"helix/domain/orderbook"
	"helix/infra/sequence"
	"helix/infra/slotpool"
	"helix/infra/wal"
)

// ReplayFromWAL rebuilds in-memory state from the intent log. Records
// at or below `after` are already covered by the snapshot and are
// skipped. It MUST run before the engine accepts traffic: nothing here
// re-appends to the WAL or the outbox.
func ReplayFromWAL(
	walDir string,
	after uint64,
	book *orderbook.Book,
	pool *slotpool.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
) error {
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= after {
			return nil
		}
		switch rec.Type {
		case wal.RecordPlace:
			var intent pb.OrderIntent
			if err := pb.Unmarshal(rec.Data, &intent); err != nil {
				return err
			}
			g, ok := pool.Acquire()
			if !ok {
				return fmt.Errorf("replay seq %d: %w", rec.Seq, ErrPoolExhausted)
			}
			o := g.Value()
			*o = orderbook.Order{
				ID:     rec.Seq,
				SeqID:  rec.Seq,
				Side:   orderbook.Side(intent.Side),
				Type:   orderbook.OrderType(intent.Type),
				Price:  intent.Price,
				Qty:    intent.Qty,
				Status: orderbook.Active,
			}
			o.Bind(g)
			book.Place(o)

		case wal.RecordCancel:
			var intent pb.CancelIntent
			if err := pb.Unmarshal(rec.Data, &intent); err != nil {
				return err
			}
			book.Cancel(intent.OrderId, orderbook.Side(intent.Side), intent.Price)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing after the last applied command.
	if lastSeq > after {
		seqGen.Reset(lastSeq)
	} else {
		seqGen.Reset(after)
	}
	log.Printf("wal replay complete (last seq = %d)", seqGen.Current())
	return nil
}
