package bidding

//go:generate mockgen -destination=mock_deposit.go -package=bidding auction-house/internal/biddingService DepositCollector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/notify"
	"auction-house/internal/ratelimit"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const (
	defaultMinIncrementPct      = 5
	defaultVerificationCooldown = 10 * time.Minute

	originDirect = "direct"
	originIntent = "intent"
)

// DepositCollector requests an advert's initial deposit from a bidder.
type DepositCollector interface {
	CollectDeposit(ctx context.Context, advert model.Advert, userID string, amount money.Money) error
}

// Dependencies are the collaborators a BiddingService reads from and writes to.
type Dependencies struct {
	Adverts  repository.AuctionDB
	Users    repository.UserDirectory
	Wallets  repository.WalletStore
	Notifier notify.Notifier
	Limiter  ratelimit.Limiter
	Deposits DepositCollector
}

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	adverts  repository.AuctionDB
	users    repository.UserDirectory
	wallets  repository.WalletStore
	notifier notify.Notifier
	limiter  ratelimit.Limiter
	deposits DepositCollector

	minIncrementPct      float64
	verificationCooldown time.Duration
	currency             string
	websiteURL           string
	now                  func() time.Time
}

type Option func(*BiddingService)

func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// WithMinIncrementPct sets how far above the current highest bid a new bid must be.
func WithMinIncrementPct(pct float64) Option {
	return func(s *BiddingService) { s.minIncrementPct = pct }
}

// WithVerificationCooldown sets the resend window for verification emails.
func WithVerificationCooldown(d time.Duration) Option {
	return func(s *BiddingService) { s.verificationCooldown = d }
}

func WithCurrency(currency string) Option {
	return func(s *BiddingService) { s.currency = currency }
}

func WithWebsiteURL(url string) Option {
	return func(s *BiddingService) { s.websiteURL = url }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(deps Dependencies, opts ...Option) *BiddingService {
	s := &BiddingService{
		adverts:              deps.Adverts,
		users:                deps.Users,
		wallets:              deps.Wallets,
		notifier:             deps.Notifier,
		limiter:              deps.Limiter,
		deposits:             deps.Deposits,
		minIncrementPct:      defaultMinIncrementPct,
		verificationCooldown: defaultVerificationCooldown,
		currency:             money.DefaultCurrency,
		now:                  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a user's bid on an advert. A user holds at
// most one bid per advert, so a repeat bid replaces the previous amount.
func (s *BiddingService) PlaceBid(ctx context.Context, advertID, bidderID string, amount int64) (model.Bid, error) {
	return s.placeBid(ctx, advertID, bidderID, amount, "")
}

// PlaceBidForIntent places the face amount of a paid deposit intent and links
// the resulting bid to it.
func (s *BiddingService) PlaceBidForIntent(ctx context.Context, intent model.BidIntent) (model.Bid, error) {
	return s.placeBid(ctx, intent.AdvertID, intent.UserID, intent.BidAmount, intent.IntentID)
}

func (s *BiddingService) placeBid(ctx context.Context, advertID, bidderID string, amount int64, intentID string) (model.Bid, error) {
	origin := originDirect
	if intentID != "" {
		origin = originIntent
	}

	bid, previous, advert, err := s.validateAndRecord(ctx, advertID, bidderID, amount, intentID)
	if err != nil {
		metrics.BidsRejected.WithLabelValues(metrics.RejectReason(err)).Inc()
		utils.Info("bid rejected", map[string]any{
			"advert_id": advertID,
			"user_id":   bidderID,
			"amount":    amount,
			"error":     err.Error(),
		})
		return model.Bid{}, err
	}
	metrics.BidsPlaced.WithLabelValues(origin).Inc()

	if previous != nil && amount > previous.Amount && previous.UserID != bidderID {
		s.notifyOutbid(ctx, advert, *previous, amount)
	}

	// Intent bids were paid for before they reached us.
	if intentID == "" && advert.InitialDepositAmount != nil && *advert.InitialDepositAmount > 0 && s.deposits != nil {
		deposit := money.FromMinorUnits(*advert.InitialDepositAmount, s.advertCurrency(advert))
		if err := s.deposits.CollectDeposit(ctx, advert, bidderID, deposit); err != nil {
			metrics.SideEffectFailures.WithLabelValues("deposit").Inc()
			utils.Warn("initial deposit collection failed", map[string]any{
				"advert_id": advertID,
				"user_id":   bidderID,
				"error":     err.Error(),
			})
		}
	}

	utils.Info("bid placed", map[string]any{
		"bid_id":    bid.BidID,
		"advert_id": advertID,
		"user_id":   bidderID,
		"amount":    amount,
		"origin":    origin,
	})
	return bid, nil
}

// validateAndRecord runs the placement preconditions in order and upserts the
// bid. It returns the highest bid seen before the write, if any.
func (s *BiddingService) validateAndRecord(ctx context.Context, advertID, bidderID string, amount int64, intentID string) (model.Bid, *model.Bid, model.Advert, error) {
	if advertID == "" || bidderID == "" {
		return model.Bid{}, nil, model.Advert{}, fmt.Errorf("service: %w - missing advertID or bidderID", biddingerrors.ErrValidation)
	}
	if amount <= 0 {
		return model.Bid{}, nil, model.Advert{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrValidation)
	}

	bidder, err := s.users.GetUser(ctx, bidderID)
	if err != nil {
		return model.Bid{}, nil, model.Advert{}, fmt.Errorf("service: failed to load bidder %s: %w", bidderID, err)
	}
	if !bidder.EmailVerified {
		return model.Bid{}, nil, model.Advert{}, s.requireVerification(ctx, bidder)
	}

	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		return model.Bid{}, nil, model.Advert{}, fmt.Errorf("service: failed to load advert %s: %w", advertID, err)
	}
	if err := s.checkAdvert(advert, bidderID); err != nil {
		return model.Bid{}, nil, advert, err
	}
	if err := s.checkWallet(ctx, advert, bidderID); err != nil {
		return model.Bid{}, nil, advert, err
	}

	bids, err := s.adverts.GetBidsByAdvert(ctx, advertID)
	if err != nil {
		return model.Bid{}, nil, advert, fmt.Errorf("service: failed to get bids for advert %s: %w", advertID, err)
	}

	currency := s.advertCurrency(advert)
	offered := money.FromMinorUnits(amount, currency)

	var previous *model.Bid
	if highest, ok := ledger.HighestBid(bids); ok {
		previous = &highest
		current := money.FromMinorUnits(highest.Amount, currency)
		increment, err := current.Percentage(s.minIncrementPct)
		if err != nil {
			return model.Bid{}, nil, advert, fmt.Errorf("service: %w - minimum increment: %v", biddingerrors.ErrValidation, err)
		}
		required, err := current.Add(increment)
		if err != nil {
			return model.Bid{}, nil, advert, err
		}
		if offered.Cents() < required.Cents() {
			return model.Bid{}, nil, advert, fmt.Errorf("service: %w - current highest bid is %s, needs at least %s, you offered %s",
				biddingerrors.ErrBidTooLow, current.Format(), required.Format(), offered.Format())
		}
	} else if amount < advert.MinBidAmount {
		return model.Bid{}, nil, advert, fmt.Errorf("service: %w - needs at least %s, you offered %s",
			biddingerrors.ErrBidTooLow, money.FromMinorUnits(advert.MinBidAmount, currency).Format(), offered.Format())
	}

	now := s.now()
	bid, err := s.adverts.UpsertBid(ctx, model.Bid{
		BidID:       utils.GenerateID(),
		AdvertID:    advertID,
		UserID:      bidderID,
		Amount:      amount,
		Active:      true,
		BidIntentID: intentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Bid{}, nil, advert, fmt.Errorf("service: failed to record bid for advert %s by user %s: %w", advertID, bidderID, err)
	}
	return bid, previous, advert, nil
}

// checkAdvert applies the ownership and timing rules in their fixed order.
func (s *BiddingService) checkAdvert(advert model.Advert, bidderID string) error {
	now := s.now()
	switch {
	case advert.OwnerID == bidderID:
		return fmt.Errorf("service: %w - user %s owns advert %s", biddingerrors.ErrSelfBidForbidden, bidderID, advert.AdvertID)
	case ledger.IsExpired(advert, now):
		return fmt.Errorf("service: %w - advert %s ended at %s", biddingerrors.ErrAuctionExpired, advert.AdvertID, advert.EndsAt.Format(time.RFC3339))
	case advert.Status != model.AdvertStatusActive:
		return fmt.Errorf("service: %w - advert %s is %s", biddingerrors.ErrAuctionNotActive, advert.AdvertID, advert.Status)
	case ledger.IsNotYetStarted(advert, now):
		return fmt.Errorf("service: %w - advert %s starts at %s", biddingerrors.ErrAuctionNotStarted, advert.AdvertID, advert.StartsAt.Format(time.RFC3339))
	}
	return nil
}

// checkWallet enforces the larger of the advert's wallet minimum and its
// initial deposit. A bidder without a wallet has a zero balance.
func (s *BiddingService) checkWallet(ctx context.Context, advert model.Advert, bidderID string) error {
	var threshold int64
	if advert.MinimumWalletBalance != nil {
		threshold = *advert.MinimumWalletBalance
	}
	if advert.InitialDepositAmount != nil && *advert.InitialDepositAmount > threshold {
		threshold = *advert.InitialDepositAmount
	}
	if threshold <= 0 {
		return nil
	}

	var balance int64
	wallet, err := s.wallets.GetWalletByUser(ctx, bidderID)
	switch {
	case err == nil:
		balance = wallet.Balance
	case !errors.Is(err, biddingerrors.ErrWalletNotFound):
		return fmt.Errorf("service: failed to load wallet for user %s: %w", bidderID, err)
	}

	if balance < threshold {
		currency := s.advertCurrency(advert)
		return fmt.Errorf("service: %w - need %s, have %s", biddingerrors.ErrInsufficientWalletBalance,
			money.FromMinorUnits(threshold, currency).Format(), money.FromMinorUnits(balance, currency).Format())
	}
	return nil
}

// requireVerification resends the verification email unless one went out
// within the cooldown. The bid is refused either way.
func (s *BiddingService) requireVerification(ctx context.Context, user model.User) error {
	allowed, wait, err := s.limiter.Allow(ctx, "verification:"+user.UserID, s.verificationCooldown)
	if err != nil {
		utils.Error("verification cooldown check failed", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return fmt.Errorf("service: %w - verify %s before bidding", biddingerrors.ErrEmailNotVerified, user.Email)
	}
	if !allowed {
		return fmt.Errorf("service: %w: %w - verification email already sent, retry in %s",
			biddingerrors.ErrEmailNotVerified, biddingerrors.ErrRateLimited, wait.Round(time.Second))
	}

	if err := s.notifier.SendVerificationEmail(ctx, user.Email, user.FirstName); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("verification email failed", map[string]any{"user_id": user.UserID, "error": err.Error()})
	}
	return fmt.Errorf("service: %w - verification email sent to %s", biddingerrors.ErrEmailNotVerified, user.Email)
}

func (s *BiddingService) notifyOutbid(ctx context.Context, advert model.Advert, previous model.Bid, newAmount int64) {
	loser, err := s.users.GetUser(ctx, previous.UserID)
	if err != nil {
		utils.Warn("outbid user lookup failed", map[string]any{"user_id": previous.UserID, "error": err.Error()})
		return
	}

	currency := s.advertCurrency(advert)
	payload := notify.OutbidPayload{
		AdvertID:    advert.AdvertID,
		AdvertTitle: advert.Title,
		NewAmount:   money.FromMinorUnits(newAmount, currency).Format(),
		OldAmount:   money.FromMinorUnits(previous.Amount, currency).Format(),
	}
	if s.websiteURL != "" {
		payload.AdvertURL = fmt.Sprintf("%s/adverts/%s", s.websiteURL, advert.Slug)
	}
	if err := s.notifier.SendOutbidEmail(ctx, loser, payload); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("outbid email failed", map[string]any{
			"advert_id": advert.AdvertID,
			"user_id":   loser.UserID,
			"error":     err.Error(),
		})
	}
}

func (s *BiddingService) advertCurrency(advert model.Advert) string {
	if advert.Currency != "" {
		return advert.Currency
	}
	return s.currency
}

// GetBidsForAdvert returns all bids for a specific advert
func (s *BiddingService) GetBidsForAdvert(ctx context.Context, advertID string) ([]model.Bid, error) {
	if advertID == "" {
		return nil, fmt.Errorf("service: %w - empty advert ID", biddingerrors.ErrValidation)
	}

	bids, err := s.adverts.GetBidsByAdvert(ctx, advertID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for advert %s: %w", advertID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific advert
func (s *BiddingService) GetWinningBid(ctx context.Context, advertID string) (model.Bid, error) {
	bids, err := s.GetBidsForAdvert(ctx, advertID)
	if err != nil {
		return model.Bid{}, err
	}

	highest, ok := ledger.HighestBid(bids)
	if !ok {
		return model.Bid{}, fmt.Errorf("service: %w - advert %s", biddingerrors.ErrNoBids, advertID)
	}
	return highest, nil
}

// GetAdvertsByUser returns all adverts a user has placed bids on
func (s *BiddingService) GetAdvertsByUser(ctx context.Context, userID string) ([]model.Advert, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrValidation)
	}

	adverts, err := s.adverts.GetAdvertsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get adverts for user %s: %w", userID, err)
	}

	return adverts, nil
}
