// Package service orchestrates the core components of the engine —
// order book, slot pool, reclaimer, WAL, outbox, and market data.
//
// It is the only write entry point. Transports such as gRPC call into
// it and never touch the domain packages directly.
package service
