package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/nats-io/nats.go/jetstream"
)

// Transport delivers a serialised envelope to the outbound queue.
type Transport interface {
	Publish(ctx context.Context, subject, msgID string, data []byte) error
}

// Publisher implements Notifier by publishing envelopes to <prefix>.<kind>.
type Publisher struct {
	transport Transport
	prefix    string
	verifyURL string
	now       func() time.Time
}

var _ Notifier = (*Publisher)(nil)

// NewPublisher creates a Publisher. websiteURL is used to build links in
// verification messages.
func NewPublisher(transport Transport, prefix, websiteURL string) *Publisher {
	return &Publisher{
		transport: transport,
		prefix:    prefix,
		verifyURL: websiteURL + "/verify-email",
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (p *Publisher) publish(ctx context.Context, kind Kind, userID, email, name string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal %s payload: %w", kind, err)
	}
	env := Envelope{
		ID:        utils.GenerateID(),
		Kind:      kind,
		UserID:    userID,
		Email:     email,
		Name:      name,
		Payload:   raw,
		CreatedAt: p.now(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("notify: marshal envelope: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.prefix, kind)
	if err := p.transport.Publish(ctx, subject, env.ID, data); err != nil {
		return fmt.Errorf("notify: publish %s: %w", subject, err)
	}

	utils.Debug("notification queued", map[string]any{
		"subject":     subject,
		"envelope_id": env.ID,
		"user_id":     userID,
	})
	return nil
}

func (p *Publisher) SendOutbidEmail(ctx context.Context, user model.User, payload OutbidPayload) error {
	return p.publish(ctx, KindOutbid, user.UserID, user.Email, user.FirstName, payload)
}

func (p *Publisher) SendBidIntentEmail(ctx context.Context, user model.User, payload BidIntentPayload) error {
	return p.publish(ctx, KindBidIntent, user.UserID, user.Email, user.FirstName, payload)
}

func (p *Publisher) SendExistingIntentEmail(ctx context.Context, user model.User, payload ExistingIntentPayload) error {
	return p.publish(ctx, KindExistingIntent, user.UserID, user.Email, user.FirstName, payload)
}

func (p *Publisher) SendDepositConfirmedEmail(ctx context.Context, user model.User, payload DepositConfirmedPayload) error {
	return p.publish(ctx, KindDepositConfirmed, user.UserID, user.Email, user.FirstName, payload)
}

func (p *Publisher) SendWinnerEmail(ctx context.Context, user model.User, advert model.Advert, formattedAmount string) error {
	return p.publish(ctx, KindWinner, user.UserID, user.Email, user.FirstName, WinnerPayload{
		AdvertID:     advert.AdvertID,
		AdvertTitle:  advert.Title,
		WinningPrice: formattedAmount,
	})
}

func (p *Publisher) SendVerificationEmail(ctx context.Context, email, name string) error {
	return p.publish(ctx, KindVerification, "", email, name, VerificationPayload{VerifyURL: p.verifyURL})
}

func (p *Publisher) SendPaymentLinkEmail(ctx context.Context, user model.User, payload PaymentLinkPayload) error {
	return p.publish(ctx, KindPaymentLink, user.UserID, user.Email, user.FirstName, payload)
}

// JetStreamTransport publishes to a work-queue stream so every envelope is
// delivered at least once to the dispatcher.
type JetStreamTransport struct {
	js jetstream.JetStream
}

// StreamName is the JetStream stream that stores outbound envelopes.
const StreamName = "AUCTION_NOTIFICATIONS"

// NewJetStreamTransport ensures the stream for prefix.> exists.
func NewJetStreamTransport(ctx context.Context, js jetstream.JetStream, prefix string) (*JetStreamTransport, error) {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Outbound auction emails",
		Subjects:    []string{prefix + ".>"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.WorkQueuePolicy,
		MaxAge:      24 * time.Hour,
		Duplicates:  10 * time.Minute,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create/update stream: %w", err)
	}
	return &JetStreamTransport{js: js}, nil
}

func (t *JetStreamTransport) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := t.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	return err
}

// LocalTransport hands envelopes straight to a Dispatcher in-process.
type LocalTransport struct {
	Dispatcher *Dispatcher
}

func (t LocalTransport) Publish(ctx context.Context, _, _ string, data []byte) error {
	return t.Dispatcher.Handle(ctx, data)
}
