// Package sweep runs the periodic pass that closes auctions and announces winners.
package sweep

//go:generate mockgen -destination=mock_sweep.go -package=sweep auction-house/internal/sweep WinnerAnnouncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const defaultInterval = time.Minute

// ErrTickInProgress is returned when a tick is requested while another is running.
var ErrTickInProgress = errors.New("sweep tick already in progress")

// WinnerAnnouncer closes an advert in favour of its highest bidder.
type WinnerAnnouncer interface {
	AnnounceWinner(ctx context.Context, advertID, winnerID string, amount int64) error
}

type Dependencies struct {
	Adverts   repository.AuctionDB
	Users     repository.UserDirectory
	Announcer WinnerAnnouncer
}

// TickSummary counts what one tick did with each advert it examined.
type TickSummary struct {
	Examined       int   `json:"examined"`
	Announced      int   `json:"announced"`
	NoBids         int   `json:"skipped_no_bids"`
	Inactive       int   `json:"skipped_inactive"`
	NotExpired     int   `json:"skipped_not_expired"`
	MissingWinner  int   `json:"skipped_missing_winner"`
	Failed         int   `json:"failed"`
	DurationMillis int64 `json:"duration_ms"`
}

type Scheduler struct {
	adverts   repository.AuctionDB
	users     repository.UserDirectory
	announcer WinnerAnnouncer

	interval      time.Duration
	requireExpiry bool
	now           func() time.Time

	running  sync.Mutex
	stopChan chan struct{}
	stopOnce sync.Once
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option { return func(s *Scheduler) { s.now = now } }

func WithInterval(d time.Duration) Option { return func(s *Scheduler) { s.interval = d } }

// WithRequireExpiry makes the sweep leave adverts alone until their end time has passed.
func WithRequireExpiry(require bool) Option { return func(s *Scheduler) { s.requireExpiry = require } }

func NewScheduler(deps Dependencies, opts ...Option) *Scheduler {
	s := &Scheduler{
		adverts:   deps.Adverts,
		users:     deps.Users,
		announcer: deps.Announcer,
		interval:  defaultInterval,
		now:       func() time.Time { return time.Now().UTC() },
		stopChan:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs a tick every interval until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	utils.Info("starting auction sweep", map[string]any{"interval": s.interval.String(), "require_expiry": s.requireExpiry})

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.RunTick(ctx); err != nil {
				utils.Error("sweep tick failed", map[string]any{"error": err.Error()})
			}
		case <-s.stopChan:
			utils.Info("stopping auction sweep", nil)
			return
		case <-ctx.Done():
			utils.Info("context cancelled, stopping auction sweep", nil)
			return
		}
	}
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// RunTick evaluates every advert once. Ticks never overlap: a call made while
// another tick runs returns ErrTickInProgress. A failure on one advert is
// logged and counted and the tick moves on.
func (s *Scheduler) RunTick(ctx context.Context) (TickSummary, error) {
	if !s.running.TryLock() {
		metrics.SweepSkipped.WithLabelValues("overlap").Inc()
		return TickSummary{}, ErrTickInProgress
	}
	defer s.running.Unlock()

	start := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(start).Seconds()) }()

	all, err := s.adverts.ListAdvertsWithBids(ctx)
	if err != nil {
		return TickSummary{}, fmt.Errorf("sweep: failed to list adverts: %w", err)
	}

	var summary TickSummary
	now := s.now()
	for _, awb := range all {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		summary.Examined++
		s.evaluate(ctx, awb, now, &summary)
	}

	summary.DurationMillis = time.Since(start).Milliseconds()
	utils.Info("sweep tick finished", map[string]any{
		"examined":               summary.Examined,
		"announced":              summary.Announced,
		"skipped_no_bids":        summary.NoBids,
		"skipped_inactive":       summary.Inactive,
		"skipped_not_expired":    summary.NotExpired,
		"skipped_missing_winner": summary.MissingWinner,
		"failed":                 summary.Failed,
		"duration_ms":            summary.DurationMillis,
	})
	return summary, nil
}

func (s *Scheduler) evaluate(ctx context.Context, awb model.AdvertWithBids, now time.Time, summary *TickSummary) {
	advert := awb.Advert
	fields := map[string]any{"advert_id": advert.AdvertID}

	if len(awb.Bids) == 0 {
		summary.NoBids++
		metrics.SweepSkipped.WithLabelValues("no_bids").Inc()
		utils.Debug("sweep skipped advert without bids", fields)
		return
	}

	highest, ok := ledger.HighestBid(awb.Bids)
	if !ok || advert.Status != model.AdvertStatusActive {
		summary.Inactive++
		metrics.SweepSkipped.WithLabelValues("inactive").Inc()
		utils.Debug("sweep skipped inactive advert", fields)
		return
	}

	if s.requireExpiry && !ledger.IsExpired(advert, now) {
		summary.NotExpired++
		metrics.SweepSkipped.WithLabelValues("not_expired").Inc()
		utils.Debug("sweep skipped running advert", fields)
		return
	}

	if _, err := s.users.GetUser(ctx, highest.UserID); err != nil {
		if errors.Is(err, biddingerrors.ErrUserNotFound) {
			summary.MissingWinner++
			metrics.SweepSkipped.WithLabelValues("missing_winner").Inc()
			utils.Warn("sweep skipped advert with unknown winner", map[string]any{"advert_id": advert.AdvertID, "user_id": highest.UserID})
			return
		}
		summary.Failed++
		utils.Error("sweep winner lookup failed", map[string]any{"advert_id": advert.AdvertID, "error": err.Error()})
		return
	}

	if err := s.announcer.AnnounceWinner(ctx, advert.AdvertID, highest.UserID, highest.Amount); err != nil {
		if errors.Is(err, biddingerrors.ErrAuctionNotActive) {
			// closed by someone else since the listing was read
			summary.Inactive++
			metrics.SweepSkipped.WithLabelValues("inactive").Inc()
			utils.Debug("sweep skipped advert closed concurrently", fields)
			return
		}
		summary.Failed++
		utils.Error("sweep winner announcement failed", map[string]any{
			"advert_id": advert.AdvertID,
			"user_id":   highest.UserID,
			"error":     err.Error(),
		})
		return
	}
	summary.Announced++
}
