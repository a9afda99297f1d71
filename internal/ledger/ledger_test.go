package ledger

import (
	"math/rand"
	"testing"
	"time"

	model "auction-house/internal/models"

	"github.com/stretchr/testify/require"
)

func cents(v int64) *int64 { return &v }

func newBid(bidID, userID string, amount int64, active bool) model.Bid {
	return model.Bid{BidID: bidID, AdvertID: "advert1", UserID: userID, Amount: amount, Active: active}
}

func TestHighestBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bids    []model.Bid
		wantID  string
		wantHas bool
	}{
		{name: "empty", bids: nil, wantHas: false},
		{name: "single", bids: []model.Bid{newBid("b1", "u1", 100, true)}, wantID: "b1", wantHas: true},
		{
			name:    "greatest_amount",
			bids:    []model.Bid{newBid("b1", "u1", 100, true), newBid("b2", "u2", 150, true), newBid("b3", "u3", 120, true)},
			wantID:  "b2",
			wantHas: true,
		},
		{
			name:    "tie_first_encountered_wins",
			bids:    []model.Bid{newBid("b1", "u1", 150, true), newBid("b2", "u2", 150, true)},
			wantID:  "b1",
			wantHas: true,
		},
		{
			name:    "inactive_bids_still_count",
			bids:    []model.Bid{newBid("b1", "u1", 100, true), newBid("b2", "u2", 500, false)},
			wantID:  "b2",
			wantHas: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := HighestBid(tc.bids)
			require.Equal(t, tc.wantHas, ok)
			if ok {
				require.Equal(t, tc.wantID, got.BidID)
			}
		})
	}
}

func TestHighestBid_MatchesMax(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := rnd.Intn(20) + 1
		bids := make([]model.Bid, n)
		var max int64
		for i := range bids {
			bids[i] = newBid("b", "u", rnd.Int63n(1_000_000)+1, true)
			if bids[i].Amount > max {
				max = bids[i].Amount
			}
		}
		got, ok := HighestBid(bids)
		require.True(t, ok)
		require.Equal(t, max, got.Amount)
	}
}

func TestIsReserveMet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		reserve       *int64
		bids          []model.Bid
		wantMet       bool
		wantShortfall int64
	}{
		{name: "no_reserve", reserve: nil, bids: nil, wantMet: true},
		{name: "no_reserve_with_bids", reserve: nil, bids: []model.Bid{newBid("b1", "u1", 5, true)}, wantMet: true},
		{name: "no_bids", reserve: cents(10000), bids: nil, wantMet: false, wantShortfall: 10000},
		{
			name:          "sums_active_only",
			reserve:       cents(10000),
			bids:          []model.Bid{newBid("b1", "u1", 4000, true), newBid("b2", "u2", 9000, false), newBid("b3", "u3", 3000, true)},
			wantMet:       false,
			wantShortfall: 3000,
		},
		{
			name:    "exactly_met",
			reserve: cents(10000),
			bids:    []model.Bid{newBid("b1", "u1", 6000, true), newBid("b2", "u2", 4000, true)},
			wantMet: true,
		},
		{
			name:    "exceeded",
			reserve: cents(10000),
			bids:    []model.Bid{newBid("b1", "u1", 15000, true)},
			wantMet: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			advert := model.Advert{AdvertID: "advert1", Currency: "USD", ReservePrice: tc.reserve}
			got := IsReserveMet(advert, tc.bids)
			require.Equal(t, tc.wantMet, got.IsReserveMet)
			require.Equal(t, tc.wantShortfall, got.AmountUntilReserve.Cents())
			require.Equal(t, "USD", got.AmountUntilReserve.Currency())
		})
	}
}

func TestExpiryAndStart(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	advert := model.Advert{StartsAt: now.Add(time.Second), EndsAt: now.Add(-time.Second)}

	require.True(t, IsExpired(advert, now))
	require.True(t, IsNotYetStarted(advert, now))

	advert.StartsAt = now
	advert.EndsAt = now
	require.False(t, IsExpired(advert, now))
	require.False(t, IsNotYetStarted(advert, now))
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	advert := model.Advert{
		AdvertID:     "advert1",
		Currency:     "USD",
		ReservePrice: cents(30000),
		StartsAt:     now.Add(-time.Hour),
		EndsAt:       now.Add(time.Hour),
		LikedBy:      []string{"u7", "u8"},
	}
	bids := []model.Bid{newBid("b1", "u1", 10000, true), newBid("b2", "u2", 15000, true)}

	state := Snapshot(advert, bids, nil, now)
	require.NotNil(t, state.HighestBid)
	require.Equal(t, "b2", state.HighestBid.BidID)
	require.False(t, state.IsReserveMet)
	require.Equal(t, int64(5000), state.AmountUntilReserve)
	require.False(t, state.IsExpired)
	require.False(t, state.IsNotYetStarted)
	require.Equal(t, 2, state.Likes)
	require.NotNil(t, state.Documents)

	empty := Snapshot(advert, nil, nil, now)
	require.Nil(t, empty.HighestBid)
	require.Empty(t, empty.Bids)
}
