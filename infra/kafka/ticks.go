// Package kafka publishes best-effort public market data. Ticks are
// fire-and-forget: a dropped tick is acceptable, a stalled matching
// path is not, so the writer runs async with a short batch window.
package kafka

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/segmentio/kafka-go"

	"helix/api/pb"
)

type TickPublisher struct {
	writer *kafka.Writer
}

func NewTickPublisher(brokers []string, topic string) *TickPublisher {
	return &TickPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 5 * time.Millisecond,
		},
	}
}

// Publish enqueues one tick, keyed by sequence so per-partition order
// follows the engine's order.
func (p *TickPublisher) Publish(ctx context.Context, tick *pb.Tick) error {
	value, err := pb.Marshal(tick)
	if err != nil {
		return err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tick.Seq)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (p *TickPublisher) Close() error {
	return p.writer.Close()
}
