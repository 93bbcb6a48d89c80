// Package broadcaster drains the execution outbox to Kafka with
// at-least-once semantics: records are published from durable storage
// and advanced through SENT/ACKED only after the broker confirms.
package broadcaster

import (
	"context"
	"encoding/binary"
	"log"
	"time"

	"github.com/IBM/sarama"

	"helix/infra/outbox"
)

const maxRetries = 5

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// New wires a broadcaster around an existing producer; tests inject a
// mock here.
func New(producer sarama.SyncProducer, ob *outbox.Outbox, topic string, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}
}

// Connect dials the brokers with full-durability settings and returns
// a broadcaster on top.
func Connect(brokers []string, ob *outbox.Outbox, topic string, interval time.Duration) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return New(producer, ob, topic, interval), nil
}

// Run sweeps the outbox until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[broadcaster] stopped")
			return
		case <-ticker.C:
			if err := b.Sweep(); err != nil {
				log.Printf("[broadcaster] sweep failed: %v", err)
			}
		}
	}
}

// Sweep publishes every NEW record and retries FAILED ones below the
// retry cap. Delivered records are acknowledged and removed.
func (b *Broadcaster) Sweep() error {
	if err := b.publishState(outbox.StateNew); err != nil {
		return err
	}
	return b.publishState(outbox.StateFailed)
}

func (b *Broadcaster) publishState(state outbox.State) error {
	return b.outbox.ScanState(state, func(seq uint64, rec outbox.Record) error {
		if state == outbox.StateFailed && rec.Retries >= maxRetries {
			return nil // parked for operator attention
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.ByteEncoder(key),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			log.Printf("[broadcaster] seq %d: %v", seq, err)
			return b.outbox.Advance(seq, outbox.StateFailed, rec.Retries+1)
		}
		if err := b.outbox.Advance(seq, outbox.StateAcked, rec.Retries); err != nil {
			return err
		}
		return b.outbox.Delete(seq)
	})
}

// Close shuts the underlying producer down.
func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
