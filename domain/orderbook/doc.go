// Package orderbook implements the in-memory limit order book: two
// red-black trees of price levels (bids and asks) with FIFO order
// queues per level, and the matching loop for limit, market, and
// special order types.
//
// The book is a single-writer structure. Orders live in slot-pool
// arena slots and carry the guard that owns their slot; when an order
// leaves the book it is handed to a retire sink rather than released
// inline, because lock-free snapshot readers may still be traversing
// it.
package orderbook
