// Package broadcast publishes live bid events for the real-time collaborator.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"auction-house/utils"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mock_broadcast.go -package=broadcast auction-house/internal/broadcast Broadcaster

// BidEvent is the payload of a "new bid" live update.
type BidEvent struct {
	EventID   string    `json:"event_id"`
	AdvertID  string    `json:"advert_id"`
	Amount    int64     `json:"amount"`
	UserID    string    `json:"user_id"`
	BidID     string    `json:"bid_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster delivers bid events to listeners of an advert.
type Broadcaster interface {
	PublishBidEvent(ctx context.Context, event BidEvent) error
}

// Channel returns the Pub/Sub channel for an advert: "bid_events:{advertID}".
func Channel(advertID string) string {
	return fmt.Sprintf("bid_events:%s", advertID)
}

// RedisPublisher publishes bid events over Redis Pub/Sub.
type RedisPublisher struct {
	client redis.UniversalClient
}

func NewRedisPublisher(client redis.UniversalClient) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishBidEvent(ctx context.Context, event BidEvent) error {
	if event.EventID == "" {
		event.EventID = utils.GenerateID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("broadcast: marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, Channel(event.AdvertID), payload).Err(); err != nil {
		return fmt.Errorf("broadcast: publish to %s: %w", Channel(event.AdvertID), err)
	}
	return nil
}

// Recorder keeps published events in memory. It backs single-node runs
// without Redis and lets tests assert on what was broadcast.
type Recorder struct {
	mu     sync.Mutex
	events []BidEvent
}

func (r *Recorder) PublishBidEvent(_ context.Context, event BidEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	utils.Debug("bid event recorded", map[string]any{"advert_id": event.AdvertID, "bid_id": event.BidID})
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []BidEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]BidEvent(nil), r.events...)
}
