package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"auction-house/utils"

	"github.com/nats-io/nats.go/jetstream"
)

// Mailer renders and sends one envelope.
type Mailer interface {
	Deliver(ctx context.Context, env Envelope) error
}

const defaultSeenCapacity = 10000

// Dispatcher delivers envelopes to a Mailer at most once per envelope id,
// which makes redelivery from an at-least-once queue harmless.
type Dispatcher struct {
	mailer Mailer

	mu       sync.Mutex
	seen     map[string]struct{}
	order    []string // FIFO eviction of seen ids
	capacity int
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	return &Dispatcher{
		mailer:   mailer,
		seen:     make(map[string]struct{}),
		capacity: defaultSeenCapacity,
	}
}

// claim marks id as handled and reports whether this caller won it.
func (d *Dispatcher) claim(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return false
	}
	d.seen[id] = struct{}{}
	d.order = append(d.order, id)
	if len(d.order) > d.capacity {
		delete(d.seen, d.order[0])
		d.order = d.order[1:]
	}
	return true
}

func (d *Dispatcher) release(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, id)
}

// Handle decodes and delivers one envelope. A failed delivery releases the id
// so a redelivered copy is attempted again.
func (d *Dispatcher) Handle(ctx context.Context, data []byte) error {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("notify: decode envelope: %w", err)
	}
	if env.ID == "" {
		return fmt.Errorf("notify: envelope without id")
	}

	if !d.claim(env.ID) {
		utils.Debug("duplicate notification dropped", map[string]any{"envelope_id": env.ID, "kind": env.Kind})
		return nil
	}

	if err := d.mailer.Deliver(ctx, env); err != nil {
		d.release(env.ID)
		return fmt.Errorf("notify: deliver %s %s: %w", env.Kind, env.ID, err)
	}
	return nil
}

// Consume attaches the dispatcher to the notification stream with a durable
// pull consumer. Messages are acked after delivery and nak'ed on failure.
func (d *Dispatcher) Consume(ctx context.Context, js jetstream.JetStream, prefix, durable string) (jetstream.ConsumeContext, error) {
	cons, err := js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: prefix + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    5,
		AckWait:       30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := cons.Consume(func(msg jetstream.Msg) {
		handleCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := d.Handle(handleCtx, msg.Data()); err != nil {
			utils.Error("notification delivery failed", map[string]any{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to consume: %w", err)
	}
	return cc, nil
}
