// Package ledger computes the read model of an auction from raw advert and bid records.
// Nothing here mutates state.
package ledger

import (
	"time"

	model "auction-house/internal/models"
	"auction-house/internal/money"
)

// HighestBid returns the bid with the greatest amount. On equal amounts the
// first bid in input order wins. ok is false for an empty slice.
func HighestBid(bids []model.Bid) (highest model.Bid, ok bool) {
	for i, b := range bids {
		if i == 0 || b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, len(bids) > 0
}

// ReserveStatus reports whether the reserve price has been reached.
type ReserveStatus struct {
	IsReserveMet       bool        `json:"is_reserve_met"`
	AmountUntilReserve money.Money `json:"-"`
}

// IsReserveMet compares the sum of active bids against the advert's reserve.
// Adverts without a reserve are always met with a zero shortfall.
func IsReserveMet(advert model.Advert, bids []model.Bid) ReserveStatus {
	zero := money.FromMinorUnits(0, advert.Currency)
	if advert.ReservePrice == nil {
		return ReserveStatus{IsReserveMet: true, AmountUntilReserve: zero}
	}

	var total int64
	for _, b := range bids {
		if b.Active {
			total += b.Amount
		}
	}

	shortfall := *advert.ReservePrice - total
	if shortfall <= 0 {
		return ReserveStatus{IsReserveMet: true, AmountUntilReserve: zero}
	}
	return ReserveStatus{IsReserveMet: false, AmountUntilReserve: money.FromMinorUnits(shortfall, advert.Currency)}
}

// IsExpired is true once EndsAt lies strictly before now.
func IsExpired(advert model.Advert, now time.Time) bool {
	return advert.EndsAt.Before(now)
}

// IsNotYetStarted is true while StartsAt lies strictly after now.
func IsNotYetStarted(advert model.Advert, now time.Time) bool {
	return advert.StartsAt.After(now)
}

// AuctionState is the computed view of one advert served to read queries.
type AuctionState struct {
	Advert             model.Advert     `json:"advert"`
	Bids               []model.Bid      `json:"bids"`
	HighestBid         *model.Bid       `json:"highest_bid,omitempty"`
	IsReserveMet       bool             `json:"is_reserve_met"`
	AmountUntilReserve int64            `json:"amount_until_reserve"`
	IsExpired          bool             `json:"is_expired"`
	IsNotYetStarted    bool             `json:"is_not_yet_started"`
	Documents          []model.Document `json:"documents"`
	Likes              int              `json:"likes"`
}

// Snapshot builds the AuctionState for an advert at now.
func Snapshot(advert model.Advert, bids []model.Bid, docs []model.Document, now time.Time) AuctionState {
	reserve := IsReserveMet(advert, bids)
	state := AuctionState{
		Advert:             advert,
		Bids:               bids,
		IsReserveMet:       reserve.IsReserveMet,
		AmountUntilReserve: reserve.AmountUntilReserve.Cents(),
		IsExpired:          IsExpired(advert, now),
		IsNotYetStarted:    IsNotYetStarted(advert, now),
		Documents:          docs,
		Likes:              len(advert.LikedBy),
	}
	if state.Bids == nil {
		state.Bids = []model.Bid{}
	}
	if state.Documents == nil {
		state.Documents = []model.Document{}
	}
	if hb, ok := HighestBid(bids); ok {
		state.HighestBid = &hb
	}
	return state
}
