package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-house/internal/app"
	"auction-house/internal/config"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

func main() {
	cfg, err := config.Load(getConfigDir(), os.Getenv("APP_ENV"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logCloser := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.File)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to start application", map[string]any{"error": err.Error()})
	}
	defer application.Close()

	if application.Memory != nil {
		prepopulate(application.Memory)
	}

	go application.Scheduler.Start(ctx)

	srv := &http.Server{
		Addr:              getAddr(cfg),
		Handler:           application.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server stopped unexpectedly", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)
	application.Scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// prepopulate seeds the in-memory store with demo accounts and one live advert
func prepopulate(repo *repository.MemoryRepo) {
	now := time.Now().UTC()

	users := []model.User{
		{UserID: "seller", Email: "seller@example.com", FirstName: "Sam", EmailVerified: true},
		{UserID: "bidder1", Email: "bidder1@example.com", FirstName: "Ava", EmailVerified: true},
		{UserID: "bidder2", Email: "bidder2@example.com", FirstName: "Ben", EmailVerified: true},
	}
	for _, u := range users {
		repo.AddUser(u)
		repo.AddDocument(model.Document{
			DocumentID: utils.GenerateID(),
			UserID:     u.UserID,
			Name:       "photo-id.png",
			Type:       model.DocumentPhotoID,
			Review:     model.ReviewApproved,
		})
	}

	repo.AddAdvert(model.Advert{
		AdvertID:          "demo-advert",
		Title:             "Lakeside Cabin",
		Slug:              utils.Slugify("Lakeside Cabin"),
		State:             "TX",
		Currency:          "USD",
		Amount:            10000,
		MinBidAmount:      10000,
		DepositPercentage: 5,
		StartsAt:          now.Add(-time.Hour),
		EndsAt:            now.Add(24 * time.Hour),
		Status:            model.AdvertStatusActive,
		OwnerID:           "seller",
		LikedBy:           []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

// getConfigDir returns the configuration directory from env or defaults to "configs"
func getConfigDir() string {
	if d := os.Getenv("CONFIG_DIR"); d != "" {
		return d
	}
	return "configs"
}

// getAddr lets PORT override the configured listen address
func getAddr(cfg config.Config) string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return cfg.App.HTTPAddr
}
