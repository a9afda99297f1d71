// Package metrics holds the Prometheus collectors shared by the auction services.
package metrics

import (
	"errors"

	"auction-house/internal/biddingerrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auction_http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "path"},
	)

	BidsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bids_placed_total",
			Help: "Bids accepted, by origin (direct or intent)",
		},
		[]string{"origin"},
	)

	BidsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bids_rejected_total",
			Help: "Bids rejected by a placement rule",
		},
		[]string{"reason"},
	)

	IntentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_bid_intents_created_total",
		Help: "Deposit intents issued",
	})

	IntentsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_bid_intents_reconciled_total",
		Help: "Deposit intents converted into bids after payment confirmation",
	})

	WinnersAnnounced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_winners_announced_total",
		Help: "Adverts closed with a winner",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "auction_sweep_tick_duration_seconds",
		Help:    "Duration of a sweep tick",
		Buckets: prometheus.DefBuckets,
	})

	SweepSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_sweep_skipped_total",
			Help: "Adverts skipped by the sweep, by reason",
		},
		[]string{"reason"},
	)

	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_side_effect_failures_total",
			Help: "Swallowed notification, broadcast or payment failures",
		},
		[]string{"kind"},
	)

	WalletOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_wallet_operations_total",
			Help: "Wallet operations by type and outcome",
		},
		[]string{"type", "outcome"},
	)
)

// RejectReason maps a placement error to a low-cardinality label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, biddingerrors.ErrUserNotFound), errors.Is(err, biddingerrors.ErrAdvertNotFound):
		return "not_found"
	case errors.Is(err, biddingerrors.ErrRateLimited), errors.Is(err, biddingerrors.ErrEmailNotVerified):
		return "email_not_verified"
	case errors.Is(err, biddingerrors.ErrSelfBidForbidden):
		return "self_bid"
	case errors.Is(err, biddingerrors.ErrAuctionExpired):
		return "expired"
	case errors.Is(err, biddingerrors.ErrAuctionNotActive):
		return "not_active"
	case errors.Is(err, biddingerrors.ErrAuctionNotStarted):
		return "not_started"
	case errors.Is(err, biddingerrors.ErrInsufficientWalletBalance):
		return "wallet_balance"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return "too_low"
	default:
		return "other"
	}
}
