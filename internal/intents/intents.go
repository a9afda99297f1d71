// Package intents issues deposit-backed bid intents and turns them into bids
// once the payment provider confirms the deposit.
package intents

//go:generate mockgen -destination=mock_intents.go -package=intents auction-house/internal/intents BidPlacer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/broadcast"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/notify"
	"auction-house/internal/payments"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const (
	defaultTTL        = 15 * time.Minute
	defaultDepositPct = 10
)

// BidPlacer places the face amount of a paid intent.
type BidPlacer interface {
	PlaceBidForIntent(ctx context.Context, intent model.BidIntent) (model.Bid, error)
}

type Dependencies struct {
	Intents     repository.IntentStore
	Adverts     repository.AuctionDB
	Users       repository.UserDirectory
	Documents   repository.DocumentStore
	Provider    payments.Provider
	Notifier    notify.Notifier
	Broadcaster broadcast.Broadcaster
	Bids        BidPlacer
}

type Service struct {
	intents     repository.IntentStore
	adverts     repository.AuctionDB
	users       repository.UserDirectory
	documents   repository.DocumentStore
	provider    payments.Provider
	notifier    notify.Notifier
	broadcaster broadcast.Broadcaster
	bids        BidPlacer

	ttl        time.Duration
	depositPct float64
	currency   string
	now        func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithTTL sets how long an unpaid intent blocks a new one.
func WithTTL(d time.Duration) Option { return func(s *Service) { s.ttl = d } }

// WithDefaultDepositPct applies to adverts created without a deposit percentage.
func WithDefaultDepositPct(pct float64) Option { return func(s *Service) { s.depositPct = pct } }

func WithCurrency(currency string) Option { return func(s *Service) { s.currency = currency } }

func NewService(deps Dependencies, opts ...Option) *Service {
	s := &Service{
		intents:     deps.Intents,
		adverts:     deps.Adverts,
		users:       deps.Users,
		documents:   deps.Documents,
		provider:    deps.Provider,
		notifier:    deps.Notifier,
		broadcaster: deps.Broadcaster,
		bids:        deps.Bids,
		ttl:         defaultTTL,
		depositPct:  defaultDepositPct,
		currency:    money.DefaultCurrency,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBidIntent reserves a bid of faceAmount on an advert and asks the user
// to pay the advert's deposit share of it. The bid is only placed once the
// payment is reconciled.
func (s *Service) CreateBidIntent(ctx context.Context, advertID, userID string, faceAmount int64) (model.BidIntent, error) {
	if faceAmount <= 0 {
		return model.BidIntent{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrValidation)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return model.BidIntent{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}
	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		return model.BidIntent{}, fmt.Errorf("service: failed to load advert %s: %w", advertID, err)
	}

	now := s.now()
	existing, err := s.intents.FindIntent(ctx, advertID, userID)
	switch {
	case err == nil && !existing.IsExpired(now):
		s.remindExisting(ctx, user, advert, existing, now)
		return model.BidIntent{}, fmt.Errorf("service: %w - complete the pending deposit for advert %s before %s",
			biddingerrors.ErrDuplicateIntent, advertID, existing.ExpiresAt.Format(time.RFC3339))
	case err == nil:
		s.discardExpired(ctx, existing)
	case !errors.Is(err, biddingerrors.ErrIntentNotFound):
		return model.BidIntent{}, fmt.Errorf("service: failed to look up intent: %w", err)
	}

	if err := s.checkIdentity(ctx, userID); err != nil {
		return model.BidIntent{}, err
	}

	currency := advert.Currency
	if currency == "" {
		currency = s.currency
	}
	face := money.FromMinorUnits(faceAmount, currency)
	if faceAmount < advert.MinBidAmount {
		return model.BidIntent{}, fmt.Errorf("service: %w - needs at least %s, you offered %s",
			biddingerrors.ErrBidBelowMinimum, money.FromMinorUnits(advert.MinBidAmount, currency).Format(), face.Format())
	}

	pct := advert.DepositPercentage
	if pct <= 0 {
		pct = s.depositPct
	}
	deposit, err := face.Percentage(pct)
	if err != nil {
		return model.BidIntent{}, fmt.Errorf("service: %w - deposit for %s: %v", biddingerrors.ErrValidation, face.Format(), err)
	}
	if !deposit.IsPositive() {
		return model.BidIntent{}, fmt.Errorf("service: %w - deposit for %s rounds to zero", biddingerrors.ErrValidation, face.Format())
	}

	charge, err := s.provider.CreateDepositCharge(ctx, deposit, fmt.Sprintf("Deposit for %s", advert.Title), map[string]string{
		"advertId": advertID,
		"userId":   userID,
	})
	if err != nil {
		return model.BidIntent{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrExternalProvider, err)
	}

	intent := model.BidIntent{
		IntentID:      utils.GenerateID(),
		AdvertID:      advertID,
		UserID:        userID,
		BidAmount:     faceAmount,
		Amount:        deposit.Cents(),
		ProviderPrice: charge.PriceRef,
		ProviderLink:  charge.LinkRef,
		PayableURL:    charge.PayableURL,
		ExpiresAt:     now.Add(s.ttl),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.intents.CreateIntent(ctx, intent); err != nil {
		s.deactivate(ctx, intent)
		if errors.Is(err, biddingerrors.ErrAlreadyExists) {
			return model.BidIntent{}, fmt.Errorf("service: %w - advert %s", biddingerrors.ErrDuplicateIntent, advertID)
		}
		return model.BidIntent{}, fmt.Errorf("service: failed to store intent: %w", err)
	}
	metrics.IntentsCreated.Inc()

	if err := s.notifier.SendBidIntentEmail(ctx, user, notify.BidIntentPayload{
		AdvertID:      advertID,
		AdvertTitle:   advert.Title,
		FaceAmount:    face.Format(),
		DepositAmount: deposit.Format(),
		PayableURL:    intent.PayableURL,
		ExpiresAt:     intent.ExpiresAt,
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("bid intent email failed", map[string]any{"intent_id": intent.IntentID, "error": err.Error()})
	}

	utils.Info("bid intent created", map[string]any{
		"intent_id":  intent.IntentID,
		"advert_id":  advertID,
		"user_id":    userID,
		"bid_amount": faceAmount,
		"deposit":    intent.Amount,
		"expires_at": intent.ExpiresAt,
	})
	return intent, nil
}

// checkIdentity requires an approved photo id. A pending one is reported
// separately so the user knows review is underway.
func (s *Service) checkIdentity(ctx context.Context, userID string) error {
	approved, err := s.documents.HasApprovedPhotoID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: failed to check identity documents: %w", err)
	}
	if approved {
		return nil
	}

	pending, err := s.documents.HasPendingPhotoID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: failed to check identity documents: %w", err)
	}
	if pending {
		return fmt.Errorf("service: %w - photo id for user %s is awaiting review", biddingerrors.ErrIdentityNotApproved, userID)
	}
	return fmt.Errorf("service: %w - upload a photo id before bidding", biddingerrors.ErrIdentityRequired)
}

func (s *Service) remindExisting(ctx context.Context, user model.User, advert model.Advert, intent model.BidIntent, now time.Time) {
	minutes := int(math.Ceil(intent.ExpiresAt.Sub(now).Minutes()))
	if err := s.notifier.SendExistingIntentEmail(ctx, user, notify.ExistingIntentPayload{
		AdvertID:         advert.AdvertID,
		AdvertTitle:      advert.Title,
		PayableURL:       intent.PayableURL,
		MinutesRemaining: minutes,
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("existing intent email failed", map[string]any{"intent_id": intent.IntentID, "error": err.Error()})
	}
}

// discardExpired frees the (advert, user) slot held by a lapsed intent.
func (s *Service) discardExpired(ctx context.Context, intent model.BidIntent) {
	s.deactivate(ctx, intent)
	if err := s.intents.DeleteIntent(ctx, intent.IntentID); err != nil && !errors.Is(err, biddingerrors.ErrIntentNotFound) {
		utils.Warn("expired intent cleanup failed", map[string]any{"intent_id": intent.IntentID, "error": err.Error()})
	}
}

func (s *Service) deactivate(ctx context.Context, intent model.BidIntent) {
	if intent.ProviderLink == "" {
		return
	}
	if err := s.provider.DeactivateLink(ctx, intent.ProviderLink); err != nil {
		metrics.SideEffectFailures.WithLabelValues("payment_link").Inc()
		utils.Warn("payment link deactivation failed", map[string]any{
			"intent_id": intent.IntentID,
			"link":      intent.ProviderLink,
			"error":     err.Error(),
		})
	}
}

// ReconcileConfirmedPayment converts the paid intent for (advert, user) into a
// bid. The intent is consumed, so a repeated confirmation finds nothing.
func (s *Service) ReconcileConfirmedPayment(ctx context.Context, advertID, userID string) (model.Bid, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	intent, err := s.intents.FindIntent(ctx, advertID, userID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to find intent for advert %s and user %s: %w", advertID, userID, err)
	}

	bid, err := s.bids.PlaceBidForIntent(ctx, intent)
	if err != nil {
		return model.Bid{}, err
	}

	if err := s.intents.DeleteIntent(ctx, intent.IntentID); err != nil {
		// A concurrent confirmation already consumed it; the bid upsert is per user so nothing doubled.
		utils.Warn("intent already consumed", map[string]any{"intent_id": intent.IntentID, "error": err.Error()})
	}
	metrics.IntentsReconciled.Inc()

	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		utils.Warn("advert lookup after reconcile failed", map[string]any{"advert_id": advertID, "error": err.Error()})
	}
	currency := advert.Currency
	if currency == "" {
		currency = s.currency
	}
	if err := s.notifier.SendDepositConfirmedEmail(ctx, user, notify.DepositConfirmedPayload{
		AdvertID:      advertID,
		AdvertTitle:   advert.Title,
		FaceAmount:    money.FromMinorUnits(intent.BidAmount, currency).Format(),
		DepositAmount: money.FromMinorUnits(intent.Amount, currency).Format(),
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("deposit confirmation email failed", map[string]any{"intent_id": intent.IntentID, "error": err.Error()})
	}

	if err := s.broadcaster.PublishBidEvent(ctx, broadcast.BidEvent{
		EventID:   utils.GenerateID(),
		AdvertID:  advertID,
		Amount:    bid.Amount,
		UserID:    userID,
		BidID:     bid.BidID,
		Timestamp: s.now(),
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues("broadcast").Inc()
		utils.Warn("bid broadcast failed", map[string]any{"bid_id": bid.BidID, "error": err.Error()})
	}

	utils.Info("bid intent reconciled", map[string]any{
		"intent_id": intent.IntentID,
		"bid_id":    bid.BidID,
		"advert_id": advertID,
		"user_id":   userID,
	})
	return bid, nil
}

// ListUserIntents returns the user's intents. Payment links of intents past
// their expiry are switched off on the way out.
func (s *Service) ListUserIntents(ctx context.Context, userID string) ([]model.BidIntent, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrValidation)
	}

	list, err := s.intents.ListIntentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list intents for user %s: %w", userID, err)
	}

	now := s.now()
	for _, intent := range list {
		if intent.IsExpired(now) {
			s.deactivate(ctx, intent)
		}
	}
	return list, nil
}
