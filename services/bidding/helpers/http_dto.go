package helpers

import (
	"time"

	model "auction-house/internal/models"
)

// Request/Response DTOs. Every amount is in cents.
type PlaceBidRequest struct {
	AdvertID string `json:"advert_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	AdvertID    string `json:"advert_id"`
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	BidIntentID string `json:"bid_intent_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		AdvertID:    bid.AdvertID,
		UserID:      bid.UserID,
		Amount:      bid.Amount,
		BidIntentID: bid.BidIntentID,
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type CreateIntentRequest struct {
	AdvertID string `json:"advert_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type IntentResponse struct {
	IntentID   string `json:"intent_id"`
	AdvertID   string `json:"advert_id"`
	UserID     string `json:"user_id"`
	BidAmount  int64  `json:"bid_amount"`
	Deposit    int64  `json:"deposit"`
	PayableURL string `json:"payable_url"`
	ExpiresAt  string `json:"expires_at"`
}

func NewIntentResponse(intent model.BidIntent) IntentResponse {
	return IntentResponse{
		IntentID:   intent.IntentID,
		AdvertID:   intent.AdvertID,
		UserID:     intent.UserID,
		BidAmount:  intent.BidAmount,
		Deposit:    intent.Amount,
		PayableURL: intent.PayableURL,
		ExpiresAt:  intent.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// PaymentWebhook is the subset of the provider's checkout-completed event we read.
type PaymentWebhook struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

type CreateAdvertRequest struct {
	OwnerID              string    `json:"owner_id" binding:"required"`
	Title                string    `json:"title" binding:"required"`
	State                string    `json:"state"`
	Amount               int64     `json:"amount" binding:"required,gt=0"`
	MinBidAmount         int64     `json:"min_bid_amount"`
	ReservePrice         *int64    `json:"reserve_price"`
	InitialDepositAmount *int64    `json:"initial_deposit_amount"`
	MinimumWalletBalance *int64    `json:"minimum_wallet_balance"`
	StartsAt             time.Time `json:"starts_at" binding:"required"`
	EndsAt               time.Time `json:"ends_at" binding:"required"`
}

type LikeAdvertRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateWalletRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	BillingAddress string `json:"billing_address"`
}

type WalletOperationRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Type   string `json:"type" binding:"required"`
}

type WithdrawalRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type ManageWithdrawalRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreatePaymentRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	AdvertID    string `json:"advert_id"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description"`
}
