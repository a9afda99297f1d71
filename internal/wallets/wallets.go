// Package wallets manages user balances, the append-only operation log and
// withdrawal requests.
package wallets

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/metrics"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/repository"
	"auction-house/utils"
)

type Service struct {
	wallets  repository.WalletStore
	users    repository.UserDirectory
	currency string
	now      func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithCurrency(currency string) Option { return func(s *Service) { s.currency = currency } }

func NewService(wallets repository.WalletStore, users repository.UserDirectory, opts ...Option) *Service {
	s := &Service{
		wallets:  wallets,
		users:    users,
		currency: money.DefaultCurrency,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateWallet opens the user's single wallet with a zero balance.
func (s *Service) CreateWallet(ctx context.Context, userID, billingAddress string) (model.Wallet, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return model.Wallet{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	now := s.now()
	wallet := model.Wallet{
		WalletID:       utils.GenerateID(),
		UserID:         userID,
		BillingAddress: billingAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.wallets.CreateWallet(ctx, wallet); err != nil {
		return model.Wallet{}, fmt.Errorf("service: failed to create wallet for user %s: %w", userID, err)
	}

	utils.Info("wallet created", map[string]any{"wallet_id": wallet.WalletID, "user_id": userID})
	return wallet, nil
}

// GetWallet returns a wallet with its operations, newest first.
func (s *Service) GetWallet(ctx context.Context, walletID string) (model.WalletWithOperations, error) {
	if walletID == "" {
		return model.WalletWithOperations{}, fmt.Errorf("service: %w - empty wallet ID", biddingerrors.ErrValidation)
	}
	wallet, err := s.wallets.GetWallet(ctx, walletID)
	if err != nil {
		return model.WalletWithOperations{}, fmt.Errorf("service: failed to get wallet %s: %w", walletID, err)
	}
	return wallet, nil
}

func (s *Service) GetWalletByUser(ctx context.Context, userID string) (model.Wallet, error) {
	wallet, err := s.wallets.GetWalletByUser(ctx, userID)
	if err != nil {
		return model.Wallet{}, fmt.Errorf("service: failed to get wallet for user %s: %w", userID, err)
	}
	return wallet, nil
}

// ApplyOperation moves amount into or out of the user's wallet according to
// the operation type. Debits that would overdraw the wallet are refused.
func (s *Service) ApplyOperation(ctx context.Context, userID string, amount int64, opType model.OperationType) (model.WalletOperation, error) {
	if amount <= 0 {
		return model.WalletOperation{}, fmt.Errorf("service: %w - operation amount must be positive", biddingerrors.ErrValidation)
	}
	sign := opType.Sign()
	if sign == 0 {
		return model.WalletOperation{}, fmt.Errorf("service: %w - unknown operation type %q", biddingerrors.ErrValidation, opType)
	}

	wallet, err := s.wallets.GetWalletByUser(ctx, userID)
	if err != nil {
		return model.WalletOperation{}, fmt.Errorf("service: failed to get wallet for user %s: %w", userID, err)
	}

	op, err := s.wallets.ApplyOperation(ctx, wallet.WalletID, sign*amount, opType)
	if err != nil {
		metrics.WalletOperations.WithLabelValues(string(opType), "denied").Inc()
		if errors.Is(err, biddingerrors.ErrInsufficientWalletBalance) {
			return model.WalletOperation{}, fmt.Errorf("service: %w - need %s, have %s", biddingerrors.ErrInsufficientWalletBalance,
				s.format(amount), s.format(wallet.Balance))
		}
		return model.WalletOperation{}, fmt.Errorf("service: failed to apply %s to wallet %s: %w", opType, wallet.WalletID, err)
	}
	metrics.WalletOperations.WithLabelValues(string(opType), "processed").Inc()

	utils.Info("wallet operation applied", map[string]any{
		"wallet_id":      wallet.WalletID,
		"operation_id":   op.OperationID,
		"type":           opType,
		"balance_before": op.BalanceBefore,
		"balance_after":  op.BalanceAfter,
	})
	return op, nil
}

// RequestWithdrawal files a pending request. The balance is checked now and
// debited only when the request is approved.
func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount int64) (model.WithdrawalRequest, error) {
	if amount <= 0 {
		return model.WithdrawalRequest{}, fmt.Errorf("service: %w - withdrawal amount must be positive", biddingerrors.ErrValidation)
	}

	wallet, err := s.wallets.GetWalletByUser(ctx, userID)
	if err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("service: failed to get wallet for user %s: %w", userID, err)
	}
	if wallet.Balance < amount {
		return model.WithdrawalRequest{}, fmt.Errorf("service: %w - need %s, have %s", biddingerrors.ErrInsufficientWalletBalance,
			s.format(amount), s.format(wallet.Balance))
	}

	now := s.now()
	req := model.WithdrawalRequest{
		RequestID: utils.GenerateID(),
		UserID:    userID,
		Amount:    amount,
		Status:    model.WithdrawalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.wallets.CreateWithdrawalRequest(ctx, req); err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("service: failed to create withdrawal request: %w", err)
	}

	utils.Info("withdrawal requested", map[string]any{"request_id": req.RequestID, "user_id": userID, "amount": amount})
	return req, nil
}

// ManageWithdrawalRequest moves a request to status. Approval debits the
// wallet and finishes the request in one step; closed requests are final.
func (s *Service) ManageWithdrawalRequest(ctx context.Context, requestID string, status model.WithdrawalStatus) (model.WithdrawalRequest, error) {
	req, err := s.wallets.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("service: failed to get withdrawal %s: %w", requestID, err)
	}
	if req.Status.IsClosed() {
		return model.WithdrawalRequest{}, fmt.Errorf("service: %w - withdrawal %s is already %s", biddingerrors.ErrValidation, requestID, req.Status)
	}

	if status != model.WithdrawalApproved {
		updated, err := s.wallets.UpdateWithdrawalStatus(ctx, requestID, status)
		if err != nil {
			return model.WithdrawalRequest{}, fmt.Errorf("service: failed to update withdrawal %s: %w", requestID, err)
		}
		utils.Info("withdrawal updated", map[string]any{"request_id": requestID, "status": status})
		return updated, nil
	}

	finished, op, err := s.wallets.CompleteWithdrawal(ctx, requestID)
	if err != nil {
		metrics.WalletOperations.WithLabelValues(string(model.OperationWithdrawal), "denied").Inc()
		return model.WithdrawalRequest{}, fmt.Errorf("service: failed to complete withdrawal %s: %w", requestID, err)
	}
	metrics.WalletOperations.WithLabelValues(string(model.OperationWithdrawal), "processed").Inc()

	utils.Info("withdrawal finished", map[string]any{
		"request_id":    requestID,
		"operation_id":  op.OperationID,
		"balance_after": op.BalanceAfter,
	})
	return finished, nil
}

// ReplayBalance rebuilds a balance from an oldest-first operation log and
// checks that every entry chains onto the previous one.
func ReplayBalance(ops []model.WalletOperation) (int64, error) {
	var balance int64
	for i, op := range ops {
		if op.BalanceBefore != balance {
			return 0, fmt.Errorf("operation %d (%s): balance before %d, expected %d", i, op.OperationID, op.BalanceBefore, balance)
		}
		if op.BalanceAfter != op.BalanceBefore+op.BalanceChange {
			return 0, fmt.Errorf("operation %d (%s): %d + %d != %d", i, op.OperationID, op.BalanceBefore, op.BalanceChange, op.BalanceAfter)
		}
		balance = op.BalanceAfter
	}
	return balance, nil
}

// VerifyWallet replays the wallet's log and compares it with the stored balance.
func (s *Service) VerifyWallet(ctx context.Context, walletID string) error {
	wallet, err := s.GetWallet(ctx, walletID)
	if err != nil {
		return err
	}
	ops := slices.Clone(wallet.Operations)
	slices.Reverse(ops)

	replayed, err := ReplayBalance(ops)
	if err != nil {
		return fmt.Errorf("service: wallet %s log is broken: %w", walletID, err)
	}
	if replayed != wallet.Balance {
		return fmt.Errorf("service: wallet %s balance %d does not match log %d", walletID, wallet.Balance, replayed)
	}
	return nil
}

func (s *Service) format(cents int64) string {
	return money.FromMinorUnits(cents, s.currency).Format()
}
