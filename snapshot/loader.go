package snapshot

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"

	"helix/domain/orderbook"
	"helix/infra/slotpool"
)

// ErrPoolTooSmall means the snapshot holds more resting orders than
// the configured pool capacity.
var ErrPoolTooSmall = errors.New("snapshot: pool exhausted during restore")

// Load rebuilds the book from the snapshot in dir and returns the
// covered sequence. A missing snapshot is a fresh start, not an error.
// Each restored order takes a pool slot; a pool smaller than the
// snapshot is a configuration error.
func Load(dir string, book *orderbook.Book, pool *slotpool.Pool[orderbook.Order]) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		g, ok := pool.Acquire()
		if !ok {
			return 0, ErrPoolTooSmall
		}
		o := g.Value()
		*o = orderbook.Order{
			ID:     e.ID,
			SeqID:  e.SeqID,
			Side:   orderbook.Side(e.Side),
			Type:   orderbook.OrderType(e.Type),
			Price:  e.Price,
			Qty:    e.Qty,
			Status: orderbook.Active,
		}
		o.Bind(g)
		book.Place(o)
	}
	return s.Seq, nil
}
