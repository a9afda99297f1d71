// Package notify turns auction events into outbound email messages.
//
// Services call a Notifier. The Publisher implementation serialises each call
// into an Envelope and hands it to a Transport (JetStream in production, an
// in-process loop in tests and single-node runs). A Dispatcher consumes the
// envelopes, drops redeliveries by envelope id and passes them to a Mailer.
package notify

import (
	"context"
	"encoding/json"
	"time"

	model "auction-house/internal/models"
)

//go:generate mockgen -destination=mock_notify.go -package=notify auction-house/internal/notify Notifier

// Kind names an email template.
type Kind string

const (
	KindOutbid           Kind = "outbid"
	KindBidIntent        Kind = "bid_intent"
	KindExistingIntent   Kind = "existing_intent"
	KindDepositConfirmed Kind = "deposit_confirmed"
	KindWinner           Kind = "winner"
	KindVerification     Kind = "verification"
	KindPaymentLink      Kind = "payment_link"
)

// Notifier sends transactional email. Every method is fire-and-forget for the
// caller: a returned error is logged, never propagated into the bid outcome.
type Notifier interface {
	SendOutbidEmail(ctx context.Context, user model.User, p OutbidPayload) error
	SendBidIntentEmail(ctx context.Context, user model.User, p BidIntentPayload) error
	SendExistingIntentEmail(ctx context.Context, user model.User, p ExistingIntentPayload) error
	SendDepositConfirmedEmail(ctx context.Context, user model.User, p DepositConfirmedPayload) error
	SendWinnerEmail(ctx context.Context, user model.User, advert model.Advert, formattedAmount string) error
	SendVerificationEmail(ctx context.Context, email, name string) error
	SendPaymentLinkEmail(ctx context.Context, user model.User, p PaymentLinkPayload) error
}

// Envelope is the wire form of one outbound message.
type Envelope struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	UserID    string          `json:"user_id,omitempty"`
	Email     string          `json:"email"`
	Name      string          `json:"name,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// OutbidPayload tells the previous leader that a higher bid was placed.
type OutbidPayload struct {
	AdvertID    string `json:"advert_id"`
	AdvertTitle string `json:"advert_title"`
	NewAmount   string `json:"new_amount"`
	OldAmount   string `json:"old_amount"`
	AdvertURL   string `json:"advert_url,omitempty"`
}

type BidIntentPayload struct {
	AdvertID      string    `json:"advert_id"`
	AdvertTitle   string    `json:"advert_title"`
	FaceAmount    string    `json:"face_amount"`
	DepositAmount string    `json:"deposit_amount"`
	PayableURL    string    `json:"payable_url"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type ExistingIntentPayload struct {
	AdvertID         string `json:"advert_id"`
	AdvertTitle      string `json:"advert_title"`
	PayableURL       string `json:"payable_url"`
	MinutesRemaining int    `json:"minutes_remaining"`
}

type DepositConfirmedPayload struct {
	AdvertID      string `json:"advert_id"`
	AdvertTitle   string `json:"advert_title"`
	FaceAmount    string `json:"face_amount"`
	DepositAmount string `json:"deposit_amount"`
}

type WinnerPayload struct {
	AdvertID     string `json:"advert_id"`
	AdvertTitle  string `json:"advert_title"`
	WinningPrice string `json:"winning_price"`
}

type VerificationPayload struct {
	VerifyURL string `json:"verify_url,omitempty"`
}

type PaymentLinkPayload struct {
	PaymentID   string `json:"payment_id"`
	AdvertID    string `json:"advert_id,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
