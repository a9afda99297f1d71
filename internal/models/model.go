package models

import "time"

// User is the subset of a marketplace account the bidding core reads.
type User struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	EmailVerified bool   `json:"email_verified"`
}

// Advert is an auction listing. All amounts are minor units (cents).
type Advert struct {
	AdvertID             string       `json:"advert_id"`
	Title                string       `json:"title"`
	Slug                 string       `json:"slug"`
	State                string       `json:"state"`
	Currency             string       `json:"currency"`
	Amount               int64        `json:"amount"`
	MinBidAmount         int64        `json:"min_bid_amount"`
	ReservePrice         *int64       `json:"reserve_price,omitempty"`
	InitialDepositAmount *int64       `json:"initial_deposit_amount,omitempty"`
	MinimumWalletBalance *int64       `json:"minimum_wallet_balance,omitempty"`
	DepositPercentage    float64      `json:"deposit_percentage"`
	StartsAt             time.Time    `json:"starts_at"`
	EndsAt               time.Time    `json:"ends_at"`
	Status               AdvertStatus `json:"status"`
	OwnerID              string       `json:"owner_id"`
	LikedBy              []string     `json:"liked_by"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// Bid is a user's standing offer on an advert. One row per (advert, user).
type Bid struct {
	BidID       string    `json:"bid_id"`
	AdvertID    string    `json:"advert_id"`
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	Active      bool      `json:"active"`
	BidIntentID string    `json:"bid_intent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BidIntent is a time-boxed deposit obligation that becomes a Bid once paid.
type BidIntent struct {
	IntentID      string    `json:"intent_id"`
	AdvertID      string    `json:"advert_id"`
	UserID        string    `json:"user_id"`
	BidAmount     int64     `json:"bid_amount"`
	Amount        int64     `json:"amount"`
	ProviderPrice string    `json:"provider_price"`
	ProviderLink  string    `json:"provider_link"`
	PayableURL    string    `json:"payable_url"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsExpired reports whether the intent is past its expiry at now.
func (i BidIntent) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

type Wallet struct {
	WalletID       string    `json:"wallet_id"`
	UserID         string    `json:"user_id"`
	Balance        int64     `json:"balance"`
	BillingAddress string    `json:"billing_address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WalletOperation is an append-only balance log entry.
// BalanceAfter always equals BalanceBefore + BalanceChange.
type WalletOperation struct {
	OperationID   string          `json:"operation_id"`
	WalletID      string          `json:"wallet_id"`
	BalanceBefore int64           `json:"balance_before"`
	BalanceAfter  int64           `json:"balance_after"`
	BalanceChange int64           `json:"balance_change"`
	OperationType OperationType   `json:"operation_type"`
	Status        OperationStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// WalletWithOperations is a wallet together with its log, newest first.
type WalletWithOperations struct {
	Wallet
	Operations []WalletOperation `json:"operations"`
}

type WithdrawalRequest struct {
	RequestID string           `json:"request_id"`
	UserID    string           `json:"user_id"`
	Amount    int64            `json:"amount"`
	Status    WithdrawalStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Payment is a collection request sent to the external payment provider.
type Payment struct {
	PaymentID   string        `json:"payment_id"`
	UserID      string        `json:"user_id"`
	AdvertID    string        `json:"advert_id,omitempty"`
	WalletID    string        `json:"wallet_id,omitempty"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	URL         string        `json:"url"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Document is an uploaded file; only its type and review state matter here.
type Document struct {
	DocumentID string       `json:"document_id"`
	UserID     string       `json:"user_id"`
	AdvertID   string       `json:"advert_id,omitempty"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	Type       DocumentType `json:"type"`
	Review     ReviewState  `json:"review"`
}

// AdvertWithBids is an advert joined with every bid placed on it.
type AdvertWithBids struct {
	Advert Advert `json:"advert"`
	Bids   []Bid  `json:"bids"`
}
