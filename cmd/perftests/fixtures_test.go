package perftests

import (
	"fmt"
	"time"

	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/internal/notify"
	"auction-house/internal/ratelimit"
	"auction-house/internal/repository"
	"auction-house/utils"
)

func init() {
	// Bid logs would dominate the measurements.
	utils.ConfigureLogger("error", "")
}

// setupService builds the bidding service on the in-memory store with
// numAdverts running adverts and numUsers verified bidders.
func setupService(numAdverts, numUsers int) (*repository.MemoryRepo, *bidding.BiddingService) {
	repo := repository.NewMemoryRepo()
	notifier := notify.NewPublisher(notify.LocalTransport{Dispatcher: notify.NewDispatcher(notify.LogMailer{})}, "notifications", "")
	svc := bidding.NewBiddingService(bidding.Dependencies{
		Adverts:  repo,
		Users:    repo,
		Wallets:  repo,
		Notifier: notifier,
		Limiter:  ratelimit.NewMemoryLimiter(),
	})

	repo.AddUser(model.User{UserID: "seller", Email: "seller@example.com", EmailVerified: true})
	for i := 0; i < numUsers; i++ {
		id := userID(i)
		repo.AddUser(model.User{UserID: id, Email: id + "@example.com", FirstName: id, EmailVerified: true})
	}

	now := time.Now().UTC()
	for i := 0; i < numAdverts; i++ {
		repo.AddAdvert(model.Advert{
			AdvertID:     advertID(i),
			Title:        fmt.Sprintf("Load test lot %d", i),
			State:        "TX",
			Currency:     "USD",
			Amount:       10000,
			MinBidAmount: 10000,
			StartsAt:     now.Add(-time.Hour),
			EndsAt:       now.Add(24 * time.Hour),
			Status:       model.AdvertStatusActive,
			OwnerID:      "seller",
			LikedBy:      []string{},
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return repo, svc
}

func userID(i int) string   { return fmt.Sprintf("user_%d", i) }
func advertID(i int) string { return fmt.Sprintf("advert_%d", i) }
