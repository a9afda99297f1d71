package repository

//go:generate mockgen -destination=mock_repository.go -package=repository auction-house/internal/repository AuctionDB,UserDirectory

import (
	"context"
	"time"

	model "auction-house/internal/models"
)

// AuctionDB defines the advert and bid storage interface for the auction system
type AuctionDB interface {
	GetAdvert(ctx context.Context, advertID string) (model.Advert, error)
	CreateAdvert(ctx context.Context, advert model.Advert) error
	// UpdateAdvertStatus moves an advert to status. When endsAt is non-nil it replaces EndsAt too.
	// The check and the write are one step: an advert that is already terminal, or
	// already in status, fails with ErrAuctionNotActive and is left unchanged.
	UpdateAdvertStatus(ctx context.Context, advertID string, status model.AdvertStatus, endsAt *time.Time) error
	AddLike(ctx context.Context, advertID, userID string) (model.Advert, error)
	ListAdvertsWithBids(ctx context.Context) ([]model.AdvertWithBids, error)
	GetBidsByAdvert(ctx context.Context, advertID string) ([]model.Bid, error)
	GetAdvertsByUser(ctx context.Context, userID string) ([]model.Advert, error)
	// UpsertBid inserts the bid or, if the user already bid on the advert, updates that row in place.
	UpsertBid(ctx context.Context, bid model.Bid) (model.Bid, error)
}

// UserDirectory resolves marketplace accounts.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// DocumentStore answers identity-document questions.
type DocumentStore interface {
	HasApprovedPhotoID(ctx context.Context, userID string) (bool, error)
	HasPendingPhotoID(ctx context.Context, userID string) (bool, error)
	ListAdvertDocuments(ctx context.Context, advertID string) ([]model.Document, error)
}

// IntentStore persists bid intents.
type IntentStore interface {
	CreateIntent(ctx context.Context, intent model.BidIntent) error
	FindIntent(ctx context.Context, advertID, userID string) (model.BidIntent, error)
	DeleteIntent(ctx context.Context, intentID string) error
	ListIntentsByUser(ctx context.Context, userID string) ([]model.BidIntent, error)
}

// WalletStore persists wallets, their operation log and withdrawal requests.
type WalletStore interface {
	CreateWallet(ctx context.Context, wallet model.Wallet) error
	GetWallet(ctx context.Context, walletID string) (model.WalletWithOperations, error)
	GetWalletByUser(ctx context.Context, userID string) (model.Wallet, error)
	// ApplyOperation changes the balance by change and appends the log entry atomically.
	// A change that would leave the balance negative fails with ErrInsufficientWalletBalance.
	ApplyOperation(ctx context.Context, walletID string, change int64, opType model.OperationType) (model.WalletOperation, error)
	CreateWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error
	GetWithdrawalRequest(ctx context.Context, requestID string) (model.WithdrawalRequest, error)
	UpdateWithdrawalStatus(ctx context.Context, requestID string, status model.WithdrawalStatus) (model.WithdrawalRequest, error)
	// CompleteWithdrawal debits the requester's wallet and marks the request finished in one step.
	CompleteWithdrawal(ctx context.Context, requestID string) (model.WithdrawalRequest, model.WalletOperation, error)
}

// PaymentStore persists collection requests.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment model.Payment) error
	GetPayment(ctx context.Context, paymentID string) (model.Payment, error)
	// ApprovePayment moves a pending payment to approved and credits its amount
	// to the payer's wallet in one step. A payment that is no longer pending
	// fails with ErrValidation and nothing is credited.
	ApprovePayment(ctx context.Context, paymentID string) (model.Payment, model.WalletOperation, error)
	// FindPendingPayment returns the newest pending payment of exactly amount for the user.
	FindPendingPayment(ctx context.Context, userID string, amount int64) (model.Payment, error)
}

// Store is everything the application needs from persistence.
type Store interface {
	AuctionDB
	UserDirectory
	DocumentStore
	IntentStore
	WalletStore
	PaymentStore
}
