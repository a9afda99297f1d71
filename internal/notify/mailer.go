package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"auction-house/utils"
)

var subjects = map[Kind]string{
	KindOutbid:           "You have been outbid",
	KindBidIntent:        "Complete your deposit to place your bid",
	KindExistingIntent:   "You already have a pending deposit",
	KindDepositConfirmed: "Deposit confirmed, your bid is now active",
	KindWinner:           "You won the auction",
	KindVerification:     "Verify your email address",
	KindPaymentLink:      "Your payment link",
}

// Subject returns the email subject line for an envelope.
func Subject(env Envelope) string {
	if s, ok := subjects[env.Kind]; ok {
		return s
	}
	return string(env.Kind)
}

// LogMailer writes every message to the application log instead of sending it.
// It stands in for the email provider, which lives outside this service.
type LogMailer struct{}

func (LogMailer) Deliver(_ context.Context, env Envelope) error {
	var payload map[string]any
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", env.Kind, err)
		}
	}

	utils.Info("email sent", map[string]any{
		"envelope_id": env.ID,
		"kind":        env.Kind,
		"to":          env.Email,
		"subject":     Subject(env),
		"payload":     payload,
	})
	return nil
}
