package payments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/internal/money"
	"auction-house/internal/notify"
	"auction-house/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo     *repository.MemoryRepo
	provider *SandboxProvider
	notifier *notify.MockNotifier
	svc      *Service
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:     repository.NewMemoryRepo(),
		provider: NewSandboxProvider("https://pay.test"),
		notifier: notify.NewMockNotifier(ctrl),
		now:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	f.repo.AddUser(model.User{UserID: "user1", Email: "user1@example.com", EmailVerified: true})
	f.svc = NewService(Dependencies{
		Payments: f.repo,
		Wallets:  f.repo,
		Users:    f.repo,
		Provider: f.provider,
		Notifier: f.notifier,
	}, WithClock(func() time.Time { return f.now }))
	return f
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  string
		amount  int64
		wantErr error
	}{
		{name: "valid", userID: "user1", amount: 5000},
		{name: "minimum_boundary", userID: "user1", amount: 100},
		{name: "below_minimum", userID: "user1", amount: 99, wantErr: biddingerrors.ErrValidation},
		{name: "unknown_user", userID: "ghost", amount: 5000, wantErr: biddingerrors.ErrUserNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			if tc.wantErr == nil {
				f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			payment, err := f.svc.CreatePayment(context.Background(), tc.userID, "advert1", tc.amount, "deposit")
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.PaymentPending, payment.Status)
			require.Contains(t, payment.URL, "https://pay.test/pay/")
		})
	}
}

func TestService_CreatePayment_ReusesRecentPending(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := f.svc.CreatePayment(ctx, "user1", "", 2500, "top up")
	require.NoError(t, err)

	f.now = f.now.Add(2 * time.Minute)
	again, err := f.svc.CreatePayment(ctx, "user1", "", 2500, "top up")
	require.NoError(t, err)
	require.Equal(t, first.PaymentID, again.PaymentID)

	f.now = f.now.Add(2 * time.Minute)
	fresh, err := f.svc.CreatePayment(ctx, "user1", "", 2500, "top up")
	require.NoError(t, err)
	require.NotEqual(t, first.PaymentID, fresh.PaymentID)
}

func TestService_CreatePayment_ProviderFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "user1"})
	provider := NewMockProvider(ctrl)
	provider.EXPECT().CreateDepositCharge(gomock.Any(), money.USD(5000), "deposit", gomock.Any()).
		Return(Charge{}, errors.New("stripe unavailable"))

	svc := NewService(Dependencies{Payments: repo, Wallets: repo, Users: repo, Provider: provider, Notifier: notify.NewMockNotifier(ctrl)})
	_, err := svc.CreatePayment(context.Background(), "user1", "advert1", 5000, "deposit")
	require.True(t, errors.Is(err, biddingerrors.ErrExternalProvider))

	_, err = repo.FindPendingPayment(context.Background(), "user1", 5000)
	require.True(t, errors.Is(err, biddingerrors.ErrPaymentNotFound))
}

func TestService_NotificationFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	payment, err := f.svc.CreatePayment(context.Background(), "user1", "", 1000, "top up")
	require.NoError(t, err)
	require.NotEmpty(t, payment.PaymentID)
}

func TestService_CollectDeposit_TagsAdvert(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User, p notify.PaymentLinkPayload) error {
			require.Equal(t, "user1", user.UserID)
			require.Equal(t, "advert9", p.AdvertID)
			require.Equal(t, "$20.00", p.Amount)
			return nil
		})

	err := f.svc.CollectDeposit(context.Background(), model.Advert{AdvertID: "advert9", Title: "Barn"}, "user1", money.USD(2000))
	require.NoError(t, err)

	payment, err := f.repo.FindPendingPayment(context.Background(), "user1", 2000)
	require.NoError(t, err)
	require.Equal(t, "advert9", payment.AdvertID)
	require.Equal(t, "Initial deposit for Barn", payment.Description)
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.repo.CreateWallet(ctx, model.Wallet{WalletID: "w1", UserID: "user1", Balance: 1000}))
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	payment, err := f.svc.CreatePayment(ctx, "user1", "", 4000, "top up")
	require.NoError(t, err)
	require.Equal(t, "w1", payment.WalletID)

	confirmed, op, err := f.svc.ConfirmPayment(ctx, payment.PaymentID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentApproved, confirmed.Status)
	require.Equal(t, int64(1000), op.BalanceBefore)
	require.Equal(t, int64(5000), op.BalanceAfter)
	require.Equal(t, model.OperationDeposit, op.OperationType)

	_, _, err = f.svc.ConfirmPayment(ctx, payment.PaymentID)
	require.True(t, errors.Is(err, biddingerrors.ErrValidation))

	_, _, err = f.svc.ConfirmPayment(ctx, "missing")
	require.True(t, errors.Is(err, biddingerrors.ErrPaymentNotFound))
}

func TestService_ConfirmPayment_ConcurrentDelivery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.repo.CreateWallet(ctx, model.Wallet{WalletID: "w1", UserID: "user1"}))
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	payment, err := f.svc.CreatePayment(ctx, "user1", "", 5000, "top up")
	require.NoError(t, err)

	const deliveries = 8
	errs := make([]error, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.svc.ConfirmPayment(ctx, payment.PaymentID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, errors.Is(err, biddingerrors.ErrValidation), "unexpected error: %v", err)
	}
	require.Equal(t, 1, succeeded)

	wallet, err := f.repo.GetWallet(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, int64(5000), wallet.Balance)
	require.Len(t, wallet.Operations, 1)
}

func TestService_ConfirmPayment_NoWallet(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendPaymentLinkEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	payment, err := f.svc.CreatePayment(ctx, "user1", "", 4000, "top up")
	require.NoError(t, err)

	_, _, err = f.svc.ConfirmPayment(ctx, payment.PaymentID)
	require.True(t, errors.Is(err, biddingerrors.ErrWalletNotFound))

	still, err := f.repo.GetPayment(ctx, payment.PaymentID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPending, still.Status)
}

func TestSandboxProvider(t *testing.T) {
	t.Parallel()

	p := NewSandboxProvider("https://pay.test/")
	ctx := context.Background()

	charge, err := p.CreateDepositCharge(ctx, money.USD(1500), "deposit", map[string]string{"advertId": "a1", "userId": "u1"})
	require.NoError(t, err)
	require.True(t, p.IsActive(charge.LinkRef))
	require.Equal(t, "a1", p.Metadata(charge.LinkRef)["advertId"])

	require.NoError(t, p.DeactivateLink(ctx, charge.LinkRef))
	require.False(t, p.IsActive(charge.LinkRef))
	require.Error(t, p.DeactivateLink(ctx, "plink_unknown"))

	_, err = p.CreateDepositCharge(ctx, money.USD(0), "zero", nil)
	require.Error(t, err)
}
