package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

// MemoryRepo is a concurrency-safe in-memory implementation of Store
type MemoryRepo struct {
	mu          sync.RWMutex
	adverts     map[string]model.Advert            // key: advertID -> value: advert
	advertOrder []string                           // advertIDs in insertion order
	bids        map[string][]model.Bid             // key: advertID -> value: list of bids
	userAdverts map[string][]string                // key: userID -> value: list of advertIDs user has bid on
	users       map[string]model.User              // key: userID
	documents   map[string][]model.Document        // key: userID
	intents     map[string]model.BidIntent         // key: intentID
	wallets     map[string]model.Wallet            // key: walletID
	walletOps   map[string][]model.WalletOperation // key: walletID, oldest first
	withdrawals map[string]model.WithdrawalRequest // key: requestID
	payments    map[string]model.Payment           // key: paymentID
	now         func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		adverts:     make(map[string]model.Advert),
		bids:        make(map[string][]model.Bid),
		userAdverts: make(map[string][]string),
		users:       make(map[string]model.User),
		documents:   make(map[string][]model.Document),
		intents:     make(map[string]model.BidIntent),
		wallets:     make(map[string]model.Wallet),
		walletOps:   make(map[string][]model.WalletOperation),
		withdrawals: make(map[string]model.WithdrawalRequest),
		payments:    make(map[string]model.Payment),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ Store = (*MemoryRepo)(nil)

// AddUser adds a user to the repository. Used for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddDocument attaches a document to its owning user. Used for seeding and tests.
func (r *MemoryRepo) AddDocument(doc model.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents[doc.UserID] = append(r.documents[doc.UserID], doc)
}

// AddAdvert adds an advert to the repository. This method is intended for seeding and tests.
func (r *MemoryRepo) AddAdvert(advert model.Advert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.adverts[advert.AdvertID]; !ok {
		r.advertOrder = append(r.advertOrder, advert.AdvertID)
	}
	r.adverts[advert.AdvertID] = advert
}

// ---- adverts and bids ----

func (r *MemoryRepo) GetAdvert(_ context.Context, advertID string) (model.Advert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	advert, ok := r.adverts[advertID]
	if !ok {
		return model.Advert{}, fmt.Errorf("get advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	advert.LikedBy = slices.Clone(advert.LikedBy)
	return advert, nil
}

func (r *MemoryRepo) CreateAdvert(_ context.Context, advert model.Advert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.adverts[advert.AdvertID]; ok {
		return fmt.Errorf("create advert %s: %w", advert.AdvertID, biddingerrors.ErrAlreadyExists)
	}
	for _, existing := range r.adverts {
		if advert.Slug != "" && existing.Slug == advert.Slug {
			return fmt.Errorf("create advert slug %s: %w", advert.Slug, biddingerrors.ErrAlreadyExists)
		}
	}
	r.adverts[advert.AdvertID] = advert
	r.advertOrder = append(r.advertOrder, advert.AdvertID)
	return nil
}

func (r *MemoryRepo) UpdateAdvertStatus(_ context.Context, advertID string, status model.AdvertStatus, endsAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	advert, ok := r.adverts[advertID]
	if !ok {
		return fmt.Errorf("update advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	if !advert.Status.CanTransitionTo(status) {
		return fmt.Errorf("update advert %s: %w - already %s", advertID, biddingerrors.ErrAuctionNotActive, advert.Status)
	}
	advert.Status = status
	if endsAt != nil {
		advert.EndsAt = *endsAt
	}
	advert.UpdatedAt = r.now()
	r.adverts[advertID] = advert
	return nil
}

func (r *MemoryRepo) AddLike(_ context.Context, advertID, userID string) (model.Advert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	advert, ok := r.adverts[advertID]
	if !ok {
		return model.Advert{}, fmt.Errorf("like advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	if !slices.Contains(advert.LikedBy, userID) {
		advert.LikedBy = append(slices.Clone(advert.LikedBy), userID)
		r.adverts[advertID] = advert
	}
	advert.LikedBy = slices.Clone(advert.LikedBy)
	return advert, nil
}

// ListAdvertsWithBids returns every advert in insertion order with its bids
func (r *MemoryRepo) ListAdvertsWithBids(_ context.Context) ([]model.AdvertWithBids, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AdvertWithBids, 0, len(r.advertOrder))
	for _, id := range r.advertOrder {
		advert := r.adverts[id]
		advert.LikedBy = slices.Clone(advert.LikedBy)
		out = append(out, model.AdvertWithBids{
			Advert: advert,
			Bids:   append([]model.Bid(nil), r.bids[id]...),
		})
	}
	return out, nil
}

// GetBidsByAdvert returns all bids for an advert
func (r *MemoryRepo) GetBidsByAdvert(_ context.Context, advertID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.adverts[advertID]; !ok {
		return nil, fmt.Errorf("get bids for advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	return append([]model.Bid(nil), r.bids[advertID]...), nil
}

// GetAdvertsByUser returns all adverts a user has bid on
func (r *MemoryRepo) GetAdvertsByUser(_ context.Context, userID string) ([]model.Advert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	advertIDs := r.userAdverts[userID]
	adverts := make([]model.Advert, 0, len(advertIDs))
	for _, id := range advertIDs {
		if advert, exists := r.adverts[id]; exists {
			adverts = append(adverts, advert)
		}
	}
	return adverts, nil
}

// UpsertBid records a user's bid on an advert, replacing the amount of an existing row
func (r *MemoryRepo) UpsertBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.adverts[bid.AdvertID]; !ok {
		return model.Bid{}, fmt.Errorf("upsert bid for advert %s: %w", bid.AdvertID, biddingerrors.ErrAdvertNotFound)
	}

	bids := r.bids[bid.AdvertID]
	for i, existing := range bids {
		if existing.UserID != bid.UserID {
			continue
		}
		existing.Amount = bid.Amount
		existing.Active = true
		existing.UpdatedAt = bid.UpdatedAt
		if bid.BidIntentID != "" {
			existing.BidIntentID = bid.BidIntentID
		}
		bids[i] = existing
		return existing, nil
	}

	r.bids[bid.AdvertID] = append(bids, bid)
	r.userAdverts[bid.UserID] = append(r.userAdverts[bid.UserID], bid.AdvertID)
	return bid, nil
}

// ---- users and documents ----

func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *MemoryRepo) hasPhotoID(userID string, review model.ReviewState) bool {
	for _, d := range r.documents[userID] {
		if d.Type == model.DocumentPhotoID && d.Review == review {
			return true
		}
	}
	return false
}

func (r *MemoryRepo) HasApprovedPhotoID(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasPhotoID(userID, model.ReviewApproved), nil
}

func (r *MemoryRepo) HasPendingPhotoID(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasPhotoID(userID, model.ReviewPending), nil
}

func (r *MemoryRepo) ListAdvertDocuments(_ context.Context, advertID string) ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var docs []model.Document
	for _, userDocs := range r.documents {
		for _, d := range userDocs {
			if d.AdvertID == advertID && d.Type == model.DocumentAdvert {
				docs = append(docs, d)
			}
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].DocumentID < docs[j].DocumentID })
	return docs, nil
}

// ---- bid intents ----

func (r *MemoryRepo) CreateIntent(_ context.Context, intent model.BidIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.intents {
		if existing.AdvertID == intent.AdvertID && existing.UserID == intent.UserID {
			return fmt.Errorf("create intent for advert %s user %s: %w", intent.AdvertID, intent.UserID, biddingerrors.ErrAlreadyExists)
		}
	}
	r.intents[intent.IntentID] = intent
	return nil
}

func (r *MemoryRepo) FindIntent(_ context.Context, advertID, userID string) (model.BidIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, intent := range r.intents {
		if intent.AdvertID == advertID && intent.UserID == userID {
			return intent, nil
		}
	}
	return model.BidIntent{}, fmt.Errorf("find intent for advert %s user %s: %w", advertID, userID, biddingerrors.ErrIntentNotFound)
}

func (r *MemoryRepo) DeleteIntent(_ context.Context, intentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.intents[intentID]; !ok {
		return fmt.Errorf("delete intent %s: %w", intentID, biddingerrors.ErrIntentNotFound)
	}
	delete(r.intents, intentID)
	return nil
}

func (r *MemoryRepo) ListIntentsByUser(_ context.Context, userID string) ([]model.BidIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.BidIntent
	for _, intent := range r.intents {
		if intent.UserID == userID {
			out = append(out, intent)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ---- wallets ----

func (r *MemoryRepo) CreateWallet(_ context.Context, wallet model.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.wallets {
		if existing.UserID == wallet.UserID {
			return fmt.Errorf("create wallet for user %s: %w", wallet.UserID, biddingerrors.ErrAlreadyExists)
		}
	}
	r.wallets[wallet.WalletID] = wallet
	return nil
}

func (r *MemoryRepo) GetWallet(_ context.Context, walletID string) (model.WalletWithOperations, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, ok := r.wallets[walletID]
	if !ok {
		return model.WalletWithOperations{}, fmt.Errorf("get wallet %s: %w", walletID, biddingerrors.ErrWalletNotFound)
	}
	ops := append([]model.WalletOperation(nil), r.walletOps[walletID]...)
	slices.Reverse(ops)
	if ops == nil {
		ops = []model.WalletOperation{}
	}
	return model.WalletWithOperations{Wallet: wallet, Operations: ops}, nil
}

func (r *MemoryRepo) GetWalletByUser(_ context.Context, userID string) (model.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, wallet := range r.wallets {
		if wallet.UserID == userID {
			return wallet, nil
		}
	}
	return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, biddingerrors.ErrWalletNotFound)
}

// applyOperationLocked must be called with r.mu held for writing.
func (r *MemoryRepo) applyOperationLocked(walletID string, change int64, opType model.OperationType) (model.WalletOperation, error) {
	wallet, ok := r.wallets[walletID]
	if !ok {
		return model.WalletOperation{}, fmt.Errorf("apply operation to wallet %s: %w", walletID, biddingerrors.ErrWalletNotFound)
	}

	after := wallet.Balance + change
	if after < 0 {
		return model.WalletOperation{}, fmt.Errorf("apply operation to wallet %s: %w - balance %d, change %d",
			walletID, biddingerrors.ErrInsufficientWalletBalance, wallet.Balance, change)
	}

	now := r.now()
	op := model.WalletOperation{
		OperationID:   utils.GenerateID(),
		WalletID:      walletID,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  after,
		BalanceChange: change,
		OperationType: opType,
		Status:        model.OperationProcessed,
		CreatedAt:     now,
	}
	wallet.Balance = after
	wallet.UpdatedAt = now
	r.wallets[walletID] = wallet
	r.walletOps[walletID] = append(r.walletOps[walletID], op)
	return op, nil
}

func (r *MemoryRepo) ApplyOperation(_ context.Context, walletID string, change int64, opType model.OperationType) (model.WalletOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applyOperationLocked(walletID, change, opType)
}

func (r *MemoryRepo) CreateWithdrawalRequest(_ context.Context, req model.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.withdrawals[req.RequestID] = req
	return nil
}

func (r *MemoryRepo) GetWithdrawalRequest(_ context.Context, requestID string) (model.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.withdrawals[requestID]
	if !ok {
		return model.WithdrawalRequest{}, fmt.Errorf("get withdrawal %s: %w", requestID, biddingerrors.ErrWithdrawalNotFound)
	}
	return req, nil
}

func (r *MemoryRepo) UpdateWithdrawalStatus(_ context.Context, requestID string, status model.WithdrawalStatus) (model.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.withdrawals[requestID]
	if !ok {
		return model.WithdrawalRequest{}, fmt.Errorf("update withdrawal %s: %w", requestID, biddingerrors.ErrWithdrawalNotFound)
	}
	if req.Status.IsClosed() {
		return model.WithdrawalRequest{}, fmt.Errorf("update withdrawal %s: %w - already %s", requestID, biddingerrors.ErrValidation, req.Status)
	}
	req.Status = status
	req.UpdatedAt = r.now()
	r.withdrawals[requestID] = req
	return req, nil
}

func (r *MemoryRepo) CompleteWithdrawal(_ context.Context, requestID string) (model.WithdrawalRequest, model.WalletOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.withdrawals[requestID]
	if !ok {
		return model.WithdrawalRequest{}, model.WalletOperation{}, fmt.Errorf("complete withdrawal %s: %w", requestID, biddingerrors.ErrWithdrawalNotFound)
	}
	if req.Status.IsClosed() {
		return model.WithdrawalRequest{}, model.WalletOperation{}, fmt.Errorf("complete withdrawal %s: %w - already %s",
			requestID, biddingerrors.ErrValidation, req.Status)
	}

	walletID := ""
	for id, w := range r.wallets {
		if w.UserID == req.UserID {
			walletID = id
			break
		}
	}
	if walletID == "" {
		return model.WithdrawalRequest{}, model.WalletOperation{}, fmt.Errorf("complete withdrawal %s: %w", requestID, biddingerrors.ErrWalletNotFound)
	}

	op, err := r.applyOperationLocked(walletID, -req.Amount, model.OperationWithdrawal)
	if err != nil {
		return model.WithdrawalRequest{}, model.WalletOperation{}, err
	}
	req.Status = model.WithdrawalFinished
	req.UpdatedAt = r.now()
	r.withdrawals[requestID] = req
	return req, op, nil
}

// ---- payments ----

func (r *MemoryRepo) CreatePayment(_ context.Context, payment model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.PaymentID] = payment
	return nil
}

func (r *MemoryRepo) GetPayment(_ context.Context, paymentID string) (model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[paymentID]
	if !ok {
		return model.Payment{}, fmt.Errorf("get payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) ApprovePayment(_ context.Context, paymentID string) (model.Payment, model.WalletOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[paymentID]
	if !ok {
		return model.Payment{}, model.WalletOperation{}, fmt.Errorf("approve payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
	}
	if p.Status != model.PaymentPending {
		return model.Payment{}, model.WalletOperation{}, fmt.Errorf("approve payment %s: %w - already %s",
			paymentID, biddingerrors.ErrValidation, p.Status)
	}

	walletID := ""
	for id, w := range r.wallets {
		if w.UserID == p.UserID {
			walletID = id
			break
		}
	}
	if walletID == "" {
		return model.Payment{}, model.WalletOperation{}, fmt.Errorf("approve payment %s: %w", paymentID, biddingerrors.ErrWalletNotFound)
	}

	op, err := r.applyOperationLocked(walletID, p.Amount, model.OperationDeposit)
	if err != nil {
		return model.Payment{}, model.WalletOperation{}, err
	}
	p.Status = model.PaymentApproved
	p.WalletID = walletID
	p.UpdatedAt = r.now()
	r.payments[paymentID] = p
	return p, op, nil
}

func (r *MemoryRepo) FindPendingPayment(_ context.Context, userID string, amount int64) (model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found model.Payment
	ok := false
	for _, p := range r.payments {
		if p.UserID != userID || p.Amount != amount || p.Status != model.PaymentPending {
			continue
		}
		if !ok || p.CreatedAt.After(found.CreatedAt) {
			found, ok = p, true
		}
	}
	if !ok {
		return model.Payment{}, fmt.Errorf("find pending payment for user %s: %w", userID, biddingerrors.ErrPaymentNotFound)
	}
	return found, nil
}
