package intents

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/broadcast"
	model "auction-house/internal/models"
	"auction-house/internal/notify"
	"auction-house/internal/payments"
	"auction-house/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo        *repository.MemoryRepo
	provider    *payments.SandboxProvider
	notifier    *notify.MockNotifier
	placer      *MockBidPlacer
	broadcaster *broadcast.Recorder
	svc         *Service
	now         time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:        repository.NewMemoryRepo(),
		provider:    payments.NewSandboxProvider("https://pay.test"),
		notifier:    notify.NewMockNotifier(ctrl),
		placer:      NewMockBidPlacer(ctrl),
		broadcaster: &broadcast.Recorder{},
		now:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	f.repo.AddUser(model.User{UserID: "user1", Email: "u1@example.com", EmailVerified: true})
	f.repo.AddUser(model.User{UserID: "pending", Email: "p@example.com", EmailVerified: true})
	f.repo.AddUser(model.User{UserID: "noid", Email: "n@example.com", EmailVerified: true})
	f.repo.AddDocument(model.Document{DocumentID: "d1", UserID: "user1", Type: model.DocumentPhotoID, Review: model.ReviewApproved})
	f.repo.AddDocument(model.Document{DocumentID: "d2", UserID: "pending", Type: model.DocumentPhotoID, Review: model.ReviewPending})
	f.repo.AddAdvert(model.Advert{
		AdvertID:          "advert1",
		Title:             "Farmland",
		OwnerID:           "owner",
		MinBidAmount:      10000,
		DepositPercentage: 10,
		StartsAt:          f.now.Add(-time.Hour),
		EndsAt:            f.now.Add(time.Hour),
		Status:            model.AdvertStatusActive,
	})

	f.svc = NewService(Dependencies{
		Intents:     f.repo,
		Adverts:     f.repo,
		Users:       f.repo,
		Documents:   f.repo,
		Provider:    f.provider,
		Notifier:    f.notifier,
		Broadcaster: f.broadcaster,
		Bids:        f.placer,
	}, WithClock(func() time.Time { return f.now }))
	return f
}

func TestService_CreateBidIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		advertID      string
		userID        string
		faceAmount    int64
		expectedError error
	}{
		{name: "valid", advertID: "advert1", userID: "user1", faceAmount: 15000},
		{name: "at_minimum", advertID: "advert1", userID: "user1", faceAmount: 10000},
		{name: "below_minimum", advertID: "advert1", userID: "user1", faceAmount: 9999, expectedError: biddingerrors.ErrBidBelowMinimum},
		{name: "unknown_user", advertID: "advert1", userID: "ghost", faceAmount: 15000, expectedError: biddingerrors.ErrUserNotFound},
		{name: "unknown_advert", advertID: "missing", userID: "user1", faceAmount: 15000, expectedError: biddingerrors.ErrAdvertNotFound},
		{name: "photo_id_pending", advertID: "advert1", userID: "pending", faceAmount: 15000, expectedError: biddingerrors.ErrIdentityNotApproved},
		{name: "no_photo_id", advertID: "advert1", userID: "noid", faceAmount: 15000, expectedError: biddingerrors.ErrIdentityRequired},
		{name: "non_positive", advertID: "advert1", userID: "user1", faceAmount: 0, expectedError: biddingerrors.ErrValidation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			if tc.expectedError == nil {
				f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			intent, err := f.svc.CreateBidIntent(context.Background(), tc.advertID, tc.userID, tc.faceAmount)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.faceAmount, intent.BidAmount)
			require.Equal(t, tc.faceAmount/10, intent.Amount)
			require.Equal(t, f.now.Add(15*time.Minute), intent.ExpiresAt)
			require.True(t, f.provider.IsActive(intent.ProviderLink))
			require.Equal(t, map[string]string{"advertId": "advert1", "userId": tc.userID}, f.provider.Metadata(intent.ProviderLink))
		})
	}
}

func TestService_CreateBidIntent_EmailPayload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User, p notify.BidIntentPayload) error {
			require.Equal(t, "user1", user.UserID)
			require.Equal(t, "$150.00", p.FaceAmount)
			require.Equal(t, "$15.00", p.DepositAmount)
			require.Contains(t, p.PayableURL, "https://pay.test/pay/")
			return errors.New("queue down")
		})

	// a failed email does not undo the intent
	intent, err := f.svc.CreateBidIntent(context.Background(), "advert1", "user1", 15000)
	require.NoError(t, err)
	_, err = f.repo.FindIntent(context.Background(), "advert1", intent.UserID)
	require.NoError(t, err)
}

func TestService_CreateBidIntent_Duplicate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	first, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.now = f.now.Add(10*time.Minute + 30*time.Second)
	f.notifier.EXPECT().SendExistingIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.User, p notify.ExistingIntentPayload) error {
			require.Equal(t, 5, p.MinutesRemaining)
			require.Equal(t, first.PayableURL, p.PayableURL)
			return nil
		})

	_, err = f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.True(t, errors.Is(err, biddingerrors.ErrDuplicateIntent))

	list, err := f.repo.ListIntentsByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestService_CreateBidIntent_ReplacesExpired(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.now = f.now.Add(15 * time.Minute)
	second, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 20000)
	require.NoError(t, err)
	require.NotEqual(t, first.IntentID, second.IntentID)
	require.False(t, f.provider.IsActive(first.ProviderLink))
	require.True(t, f.provider.IsActive(second.ProviderLink))
}

func TestService_CreateBidIntent_ProviderFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "user1"})
	repo.AddDocument(model.Document{UserID: "user1", Type: model.DocumentPhotoID, Review: model.ReviewApproved})
	repo.AddAdvert(model.Advert{AdvertID: "advert1", MinBidAmount: 100, DepositPercentage: 5})

	provider := payments.NewMockProvider(ctrl)
	provider.EXPECT().CreateDepositCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(payments.Charge{}, errors.New("stripe unavailable"))

	svc := NewService(Dependencies{
		Intents:   repo,
		Adverts:   repo,
		Users:     repo,
		Documents: repo,
		Provider:  provider,
		Notifier:  notify.NewMockNotifier(ctrl),
	})
	_, err := svc.CreateBidIntent(context.Background(), "advert1", "user1", 5000)
	require.True(t, errors.Is(err, biddingerrors.ErrExternalProvider))

	_, err = repo.FindIntent(context.Background(), "advert1", "user1")
	require.True(t, errors.Is(err, biddingerrors.ErrIntentNotFound))
}

func TestService_ReconcileConfirmedPayment(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	intent, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.placer.EXPECT().PlaceBidForIntent(gomock.Any(), intent).
		Return(model.Bid{BidID: "bid1", AdvertID: "advert1", UserID: "user1", Amount: 15000, BidIntentID: intent.IntentID}, nil)
	f.notifier.EXPECT().SendDepositConfirmedEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.User, p notify.DepositConfirmedPayload) error {
			require.Equal(t, "$150.00", p.FaceAmount)
			require.Equal(t, "$15.00", p.DepositAmount)
			return nil
		})

	bid, err := f.svc.ReconcileConfirmedPayment(ctx, "advert1", "user1")
	require.NoError(t, err)
	require.Equal(t, "bid1", bid.BidID)

	events := f.broadcaster.Events()
	require.Len(t, events, 1)
	require.Equal(t, "advert1", events[0].AdvertID)
	require.Equal(t, int64(15000), events[0].Amount)
	require.Equal(t, "user1", events[0].UserID)
	require.Equal(t, "bid1", events[0].BidID)

	// the intent was consumed, so a repeated confirmation places nothing
	_, err = f.svc.ReconcileConfirmedPayment(ctx, "advert1", "user1")
	require.True(t, errors.Is(err, biddingerrors.ErrIntentNotFound))
	require.Len(t, f.broadcaster.Events(), 1)
}

func TestService_ReconcileConfirmedPayment_PlacementFailureKeepsIntent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.placer.EXPECT().PlaceBidForIntent(gomock.Any(), gomock.Any()).Return(model.Bid{}, biddingerrors.ErrAuctionExpired)
	_, err = f.svc.ReconcileConfirmedPayment(ctx, "advert1", "user1")
	require.True(t, errors.Is(err, biddingerrors.ErrAuctionExpired))

	_, err = f.repo.FindIntent(ctx, "advert1", "user1")
	require.NoError(t, err)
	require.Empty(t, f.broadcaster.Events())
}

func TestService_ReconcileConfirmedPayment_UnknownUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.ReconcileConfirmedPayment(context.Background(), "advert1", "ghost")
	require.True(t, errors.Is(err, biddingerrors.ErrUserNotFound))
}

func TestService_ListUserIntents_DeactivatesExpired(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	f.repo.AddAdvert(model.Advert{AdvertID: "advert2", MinBidAmount: 100, DepositPercentage: 20, Status: model.AdvertStatusActive})
	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	old, err := f.svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.now = f.now.Add(10 * time.Minute)
	fresh, err := f.svc.CreateBidIntent(ctx, "advert2", "user1", 5000)
	require.NoError(t, err)
	require.Equal(t, int64(1000), fresh.Amount)

	f.now = f.now.Add(6 * time.Minute)
	list, err := f.svc.ListUserIntents(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.False(t, f.provider.IsActive(old.ProviderLink))
	require.True(t, f.provider.IsActive(fresh.ProviderLink))

	_, err = f.svc.ListUserIntents(ctx, "")
	require.True(t, errors.Is(err, biddingerrors.ErrValidation))
}

func TestService_ReconcileConfirmedPayment_BroadcastFailureKeepsBid(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	broadcaster := broadcast.NewMockBroadcaster(ctrl)
	svc := NewService(Dependencies{
		Intents:     f.repo,
		Adverts:     f.repo,
		Users:       f.repo,
		Documents:   f.repo,
		Provider:    f.provider,
		Notifier:    f.notifier,
		Broadcaster: broadcaster,
		Bids:        f.placer,
	}, WithClock(func() time.Time { return f.now }))

	f.notifier.EXPECT().SendBidIntentEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	intent, err := svc.CreateBidIntent(ctx, "advert1", "user1", 15000)
	require.NoError(t, err)

	f.placer.EXPECT().PlaceBidForIntent(gomock.Any(), intent).
		Return(model.Bid{BidID: "bid1", AdvertID: "advert1", UserID: "user1", Amount: 15000}, nil)
	f.notifier.EXPECT().SendDepositConfirmedEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	broadcaster.EXPECT().PublishBidEvent(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

	bid, err := svc.ReconcileConfirmedPayment(ctx, "advert1", "user1")
	require.NoError(t, err)
	require.Equal(t, "bid1", bid.BidID)

	_, err = f.repo.FindIntent(ctx, "advert1", "user1")
	require.True(t, errors.Is(err, biddingerrors.ErrIntentNotFound))
}
