package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"helix/domain/orderbook"
)

const fileName = "snapshot.bin"

type Writer struct {
	Dir string
}

// Write persists every resting order. The caller brackets this with a
// Reader (Begin/End) when the book has concurrent mutators.
func (w *Writer) Write(seq uint64, book *orderbook.Book) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}
	book.SnapshotActive(func(price int64, o *orderbook.Order) {
		s.Orders = append(s.Orders, OrderEntry{
			ID:    o.ID,
			SeqID: o.SeqID,
			Side:  int(o.Side),
			Type:  int(o.Type),
			Price: price,
			Qty:   o.Qty,
		})
	})

	// Write to a temp file first so a crash never leaves a half
	// snapshot under the real name.
	tmp, err := os.CreateTemp(w.Dir, fileName+".tmp-*")
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(tmp).Encode(&s); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(w.Dir, fileName))
}
