// Package payments records collection requests, asks the external provider for
// payable links and credits wallets once a payment is confirmed.
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/notify"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// MinimumAmount is the smallest collectable payment in cents.
const MinimumAmount int64 = 100

const defaultReuseWindow = 3 * time.Minute

type Dependencies struct {
	Payments repository.PaymentStore
	Wallets  repository.WalletStore
	Users    repository.UserDirectory
	Provider Provider
	Notifier notify.Notifier
}

type Service struct {
	payments    repository.PaymentStore
	wallets     repository.WalletStore
	users       repository.UserDirectory
	provider    Provider
	notifier    notify.Notifier
	currency    string
	reuseWindow time.Duration
	now         func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithCurrency(currency string) Option { return func(s *Service) { s.currency = currency } }

// WithReuseWindow sets how long a pending payment of the same amount is handed
// out again instead of creating a new one.
func WithReuseWindow(d time.Duration) Option { return func(s *Service) { s.reuseWindow = d } }

func NewService(deps Dependencies, opts ...Option) *Service {
	s := &Service{
		payments:    deps.Payments,
		wallets:     deps.Wallets,
		users:       deps.Users,
		provider:    deps.Provider,
		notifier:    deps.Notifier,
		currency:    money.DefaultCurrency,
		reuseWindow: defaultReuseWindow,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePayment requests amount from the user. A pending payment of the same
// amount created inside the reuse window is returned unchanged.
func (s *Service) CreatePayment(ctx context.Context, userID, advertID string, amount int64, description string) (model.Payment, error) {
	if amount < MinimumAmount {
		return model.Payment{}, fmt.Errorf("service: %w - payment amount must be at least %s, got %s",
			biddingerrors.ErrValidation, money.FromMinorUnits(MinimumAmount, s.currency), money.FromMinorUnits(amount, s.currency))
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return model.Payment{}, err
	}

	now := s.now()
	existing, err := s.payments.FindPendingPayment(ctx, userID, amount)
	switch {
	case err == nil && now.Sub(existing.CreatedAt) < s.reuseWindow:
		utils.Info("reusing pending payment", map[string]any{"payment_id": existing.PaymentID, "user_id": userID})
		return existing, nil
	case err != nil && !errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return model.Payment{}, err
	}

	payment := model.Payment{
		PaymentID:   utils.GenerateID(),
		UserID:      userID,
		AdvertID:    advertID,
		Description: description,
		Amount:      amount,
		Status:      model.PaymentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if wallet, err := s.wallets.GetWalletByUser(ctx, userID); err == nil {
		payment.WalletID = wallet.WalletID
	}

	metadata := map[string]string{"paymentId": payment.PaymentID, "userId": userID}
	if advertID != "" {
		metadata["advertId"] = advertID
	}
	charge, err := s.provider.CreateDepositCharge(ctx, money.FromMinorUnits(amount, s.currency), description, metadata)
	if err != nil {
		return model.Payment{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrExternalProvider, err)
	}
	payment.URL = charge.PayableURL

	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return model.Payment{}, err
	}

	if err := s.notifier.SendPaymentLinkEmail(ctx, user, notify.PaymentLinkPayload{
		PaymentID:   payment.PaymentID,
		AdvertID:    advertID,
		Amount:      money.FromMinorUnits(amount, s.currency).Format(),
		Description: description,
		URL:         payment.URL,
	}); err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		utils.Warn("payment link email failed", map[string]any{"payment_id": payment.PaymentID, "error": err.Error()})
	}

	utils.Info("payment created", map[string]any{
		"payment_id": payment.PaymentID,
		"user_id":    userID,
		"advert_id":  advertID,
		"amount":     amount,
	})
	return payment, nil
}

// CollectDeposit asks the bidder to pay an advert's initial deposit.
func (s *Service) CollectDeposit(ctx context.Context, advert model.Advert, userID string, amount money.Money) error {
	_, err := s.CreatePayment(ctx, userID, advert.AdvertID, amount.Cents(), fmt.Sprintf("Initial deposit for %s", advert.Title))
	return err
}

// ConfirmPayment approves a pending payment and credits the user's wallet.
// The status change and the credit happen in one store step, so a repeated
// or concurrent confirmation credits nothing and fails with ErrValidation.
func (s *Service) ConfirmPayment(ctx context.Context, paymentID string) (model.Payment, model.WalletOperation, error) {
	payment, op, err := s.payments.ApprovePayment(ctx, paymentID)
	if err != nil {
		return model.Payment{}, model.WalletOperation{}, fmt.Errorf("service: failed to confirm payment %s: %w", paymentID, err)
	}
	metrics.WalletOperations.WithLabelValues(string(model.OperationDeposit), "processed").Inc()

	utils.Info("payment confirmed", map[string]any{
		"payment_id":     paymentID,
		"wallet_id":      op.WalletID,
		"balance_before": op.BalanceBefore,
		"balance_after":  op.BalanceAfter,
		"balance_change": op.BalanceChange,
	})
	return payment, op, nil
}
