// Package adverts manages the lifecycle of auction listings: creation, likes,
// closing and the winner announcement, plus the computed ledger views.
package adverts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/notify"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// MinimumAmount is the smallest listing price and initial deposit, in cents.
const MinimumAmount int64 = 100

const maxTitleLength = 150

// DepositTable maps a listing's state to the deposit percentage charged on bid intents.
type DepositTable interface {
	DepositPercentage(state string) float64
}

type Dependencies struct {
	Adverts   repository.AuctionDB
	Users     repository.UserDirectory
	Documents repository.DocumentStore
	Notifier  notify.Notifier
	Deposits  DepositTable
}

type Service struct {
	adverts   repository.AuctionDB
	users     repository.UserDirectory
	documents repository.DocumentStore
	notifier  notify.Notifier
	deposits  DepositTable
	currency  string
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithCurrency(currency string) Option { return func(s *Service) { s.currency = currency } }

func NewService(deps Dependencies, opts ...Option) *Service {
	s := &Service{
		adverts:   deps.Adverts,
		users:     deps.Users,
		documents: deps.Documents,
		notifier:  deps.Notifier,
		deposits:  deps.Deposits,
		currency:  money.DefaultCurrency,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAdvertInput carries the owner-supplied fields of a new listing. Amounts are cents.
type CreateAdvertInput struct {
	Title                string
	State                string
	Amount               int64
	MinBidAmount         int64
	ReservePrice         *int64
	InitialDepositAmount *int64
	MinimumWalletBalance *int64
	StartsAt             time.Time
	EndsAt               time.Time
}

func (in CreateAdvertInput) validate(currency string) error {
	var problems []string
	if strings.TrimSpace(in.Title) == "" {
		problems = append(problems, "title is required")
	} else if len(in.Title) > maxTitleLength {
		problems = append(problems, fmt.Sprintf("title must not exceed %d characters", maxTitleLength))
	}

	minimum := money.FromMinorUnits(MinimumAmount, currency).Format()
	if in.Amount < MinimumAmount {
		problems = append(problems, fmt.Sprintf("amount must be at least %s", minimum))
	}
	if in.MinBidAmount != 0 && in.MinBidAmount < MinimumAmount {
		problems = append(problems, fmt.Sprintf("minimum bid must be at least %s", minimum))
	}
	if in.InitialDepositAmount != nil && *in.InitialDepositAmount < MinimumAmount {
		problems = append(problems, fmt.Sprintf("initial deposit must be at least %s", minimum))
	}
	if in.ReservePrice != nil && *in.ReservePrice < MinimumAmount {
		problems = append(problems, fmt.Sprintf("reserve price must be at least %s", minimum))
	}
	if in.MinimumWalletBalance != nil && *in.MinimumWalletBalance < 0 {
		problems = append(problems, "minimum wallet balance must not be negative")
	}
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		problems = append(problems, "start and end dates are required")
	} else if !in.EndsAt.After(in.StartsAt) {
		problems = append(problems, "end date must be after start date")
	}

	if len(problems) > 0 {
		return fmt.Errorf("service: %w - %s", biddingerrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// CreateAdvert lists a new active advert for ownerID. The deposit percentage
// comes from the listing's state and the slug from its title.
func (s *Service) CreateAdvert(ctx context.Context, ownerID string, in CreateAdvertInput) (model.Advert, error) {
	if err := in.validate(s.currency); err != nil {
		return model.Advert{}, err
	}
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to load owner %s: %w", ownerID, err)
	}

	minBid := in.MinBidAmount
	if minBid == 0 {
		minBid = in.Amount
	}

	now := s.now()
	state := strings.ToUpper(strings.TrimSpace(in.State))
	advert := model.Advert{
		AdvertID:             utils.GenerateID(),
		Title:                strings.TrimSpace(in.Title),
		Slug:                 utils.Slugify(in.Title),
		State:                state,
		Currency:             s.currency,
		Amount:               in.Amount,
		MinBidAmount:         minBid,
		ReservePrice:         in.ReservePrice,
		InitialDepositAmount: in.InitialDepositAmount,
		MinimumWalletBalance: in.MinimumWalletBalance,
		DepositPercentage:    s.deposits.DepositPercentage(state),
		StartsAt:             in.StartsAt.UTC(),
		EndsAt:               in.EndsAt.UTC(),
		Status:               model.AdvertStatusActive,
		OwnerID:              ownerID,
		LikedBy:              []string{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.adverts.CreateAdvert(ctx, advert); err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to create advert: %w", err)
	}

	utils.Info("advert created", map[string]any{
		"advert_id":          advert.AdvertID,
		"owner_id":           ownerID,
		"state":              state,
		"deposit_percentage": advert.DepositPercentage,
	})
	return advert, nil
}

// AnnounceWinner closes the advert as sold and emails the winner the
// formatted winning amount. A failed email does not reopen the advert.
func (s *Service) AnnounceWinner(ctx context.Context, advertID, winnerID string, amount int64) error {
	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		return fmt.Errorf("service: failed to load advert %s: %w", advertID, err)
	}
	winner, err := s.users.GetUser(ctx, winnerID)
	if err != nil {
		return fmt.Errorf("service: failed to load winner %s: %w", winnerID, err)
	}
	if !advert.Status.CanTransitionTo(model.AdvertStatusSold) {
		return fmt.Errorf("service: %w - advert %s is already %s", biddingerrors.ErrAuctionNotActive, advertID, advert.Status)
	}

	if err := s.adverts.UpdateAdvertStatus(ctx, advertID, model.AdvertStatusSold, nil); err != nil {
		return fmt.Errorf("service: failed to mark advert %s sold: %w", advertID, err)
	}
	metrics.WinnersAnnounced.Inc()

	formatted := money.FromMinorUnits(amount, s.advertCurrency(advert)).Format()
	if err := s.notifier.SendWinnerEmail(ctx, winner, advert, formatted); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		return fmt.Errorf("service: winner email for advert %s: %w", advertID, err)
	}

	utils.Info("winner announced", map[string]any{
		"advert_id": advertID,
		"winner_id": winnerID,
		"amount":    formatted,
	})
	return nil
}

// EndAdvert closes an open advert immediately.
func (s *Service) EndAdvert(ctx context.Context, advertID string) (model.Advert, error) {
	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to load advert %s: %w", advertID, err)
	}
	if !advert.Status.CanTransitionTo(model.AdvertStatusSold) {
		return model.Advert{}, fmt.Errorf("service: %w - advert %s is already %s", biddingerrors.ErrAuctionNotActive, advertID, advert.Status)
	}

	now := s.now()
	if err := s.adverts.UpdateAdvertStatus(ctx, advertID, model.AdvertStatusSold, &now); err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to end advert %s: %w", advertID, err)
	}
	advert.Status = model.AdvertStatusSold
	advert.EndsAt = now

	utils.Info("advert ended", map[string]any{"advert_id": advertID})
	return advert, nil
}

// LikeAdvert records that userID likes the advert. Liking twice is a no-op.
func (s *Service) LikeAdvert(ctx context.Context, advertID, userID string) (model.Advert, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}
	advert, err := s.adverts.AddLike(ctx, advertID, userID)
	if err != nil {
		return model.Advert{}, fmt.Errorf("service: failed to like advert %s: %w", advertID, err)
	}
	return advert, nil
}

// GetAuctionState returns the ledger view of one advert.
func (s *Service) GetAuctionState(ctx context.Context, advertID string) (ledger.AuctionState, error) {
	advert, err := s.adverts.GetAdvert(ctx, advertID)
	if err != nil {
		return ledger.AuctionState{}, fmt.Errorf("service: failed to load advert %s: %w", advertID, err)
	}
	bids, err := s.adverts.GetBidsByAdvert(ctx, advertID)
	if err != nil {
		return ledger.AuctionState{}, fmt.Errorf("service: failed to get bids for advert %s: %w", advertID, err)
	}
	docs, err := s.documents.ListAdvertDocuments(ctx, advertID)
	if err != nil {
		return ledger.AuctionState{}, fmt.Errorf("service: failed to list documents for advert %s: %w", advertID, err)
	}
	return ledger.Snapshot(advert, bids, docs, s.now()), nil
}

// ListFilter narrows ListAdverts. Zero values match everything.
type ListFilter struct {
	Status model.AdvertStatus
	Search string
	Limit  int
}

// ListAdverts returns adverts in creation order, optionally filtered by status
// and a case-insensitive title search.
func (s *Service) ListAdverts(ctx context.Context, filter ListFilter) ([]model.Advert, error) {
	all, err := s.adverts.ListAdvertsWithBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list adverts: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]model.Advert, 0, len(all))
	for _, awb := range all {
		if filter.Status != "" && awb.Advert.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(awb.Advert.Title), search) {
			continue
		}
		out = append(out, awb.Advert)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// GetFeaturedAdvert picks the active advert with the most bids. Ties go to the
// lowest advert id. It reports false when no active advert has a bid.
func (s *Service) GetFeaturedAdvert(ctx context.Context) (ledger.AuctionState, bool, error) {
	all, err := s.adverts.ListAdvertsWithBids(ctx)
	if err != nil {
		return ledger.AuctionState{}, false, fmt.Errorf("service: failed to list adverts: %w", err)
	}

	candidates := make([]model.AdvertWithBids, 0, len(all))
	for _, awb := range all {
		if awb.Advert.Status == model.AdvertStatusActive && len(awb.Bids) > 0 {
			candidates = append(candidates, awb)
		}
	}
	if len(candidates) == 0 {
		return ledger.AuctionState{}, false, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].Bids) != len(candidates[j].Bids) {
			return len(candidates[i].Bids) > len(candidates[j].Bids)
		}
		return candidates[i].Advert.AdvertID < candidates[j].Advert.AdvertID
	})

	top := candidates[0]
	docs, err := s.documents.ListAdvertDocuments(ctx, top.Advert.AdvertID)
	if err != nil {
		return ledger.AuctionState{}, false, fmt.Errorf("service: failed to list documents for advert %s: %w", top.Advert.AdvertID, err)
	}
	return ledger.Snapshot(top.Advert, top.Bids, docs, s.now()), true, nil
}

func (s *Service) advertCurrency(advert model.Advert) string {
	if advert.Currency != "" {
		return advert.Currency
	}
	return s.currency
}
