// Package app wires configuration, storage, transports and services into a
// runnable HTTP application.
package app

import (
	"context"
	"fmt"
	"strings"

	"auction-house/internal/adverts"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/broadcast"
	"auction-house/internal/config"
	"auction-house/internal/intents"
	"auction-house/internal/notify"
	"auction-house/internal/payments"
	"auction-house/internal/ratelimit"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/sweep"
	"auction-house/internal/wallets"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Config    config.Config
	Store     repository.Store
	Router    *gin.Engine
	Scheduler *sweep.Scheduler

	// Memory is set when no Postgres DSN is configured.
	Memory *repository.MemoryRepo
	// Sandbox is set when payments.provider is "sandbox".
	Sandbox *payments.SandboxProvider

	closers []func()
}

// New builds the application. Every external system is optional: without a
// Postgres DSN the store is in memory, without Redis the broadcaster and the
// cooldown limiter are in process, and without NATS notifications are
// dispatched synchronously to the log mailer.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{Config: cfg}

	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	broadcaster, limiter, err := a.openRedis(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	notifier, err := a.openNotifier(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	provider, err := a.paymentProvider()
	if err != nil {
		a.Close()
		return nil, err
	}

	currency := cfg.Bidding.Currency
	paymentSvc := payments.NewService(payments.Dependencies{
		Payments: a.Store,
		Wallets:  a.Store,
		Users:    a.Store,
		Provider: provider,
		Notifier: notifier,
	}, payments.WithCurrency(currency), payments.WithReuseWindow(cfg.Payments.ReuseWindow))

	biddingSvc := bidding.NewBiddingService(bidding.Dependencies{
		Adverts:  a.Store,
		Users:    a.Store,
		Wallets:  a.Store,
		Notifier: notifier,
		Limiter:  limiter,
		Deposits: paymentSvc,
	},
		bidding.WithCurrency(currency),
		bidding.WithMinIncrementPct(cfg.Bidding.MinIncrementPct),
		bidding.WithVerificationCooldown(cfg.Bidding.VerificationCooldown),
		bidding.WithWebsiteURL(cfg.App.WebsiteURL),
	)

	intentSvc := intents.NewService(intents.Dependencies{
		Intents:     a.Store,
		Adverts:     a.Store,
		Users:       a.Store,
		Documents:   a.Store,
		Provider:    provider,
		Notifier:    notifier,
		Broadcaster: broadcaster,
		Bids:        biddingSvc,
	},
		intents.WithCurrency(currency),
		intents.WithTTL(cfg.Bidding.IntentTTL),
		intents.WithDefaultDepositPct(cfg.Bidding.DefaultDepositPct),
	)

	advertSvc := adverts.NewService(adverts.Dependencies{
		Adverts:   a.Store,
		Users:     a.Store,
		Documents: a.Store,
		Notifier:  notifier,
		Deposits:  cfg,
	}, adverts.WithCurrency(currency))

	walletSvc := wallets.NewService(a.Store, a.Store, wallets.WithCurrency(currency))

	a.Scheduler = sweep.NewScheduler(sweep.Dependencies{
		Adverts:   a.Store,
		Users:     a.Store,
		Announcer: advertSvc,
	}, sweep.WithInterval(cfg.Sweep.Interval), sweep.WithRequireExpiry(cfg.Sweep.RequireExpiry))

	services := server.Services{
		Bidding:  biddingSvc,
		Intents:  intentSvc,
		Adverts:  advertSvc,
		Wallets:  walletSvc,
		Payments: paymentSvc,
		Sweep:    a.Scheduler,
	}
	if a.Sandbox == nil {
		services.Webhooks = payments.NewStripeWebhookVerifier(cfg.Payments.WebhookSecret)
	}
	a.Router = server.SetupRouter(services)
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	if a.Config.Postgres.DSN == "" {
		a.Memory = repository.NewMemoryRepo()
		a.Store = a.Memory
		utils.Warn("postgres.dsn not set, using in-memory store", nil)
		return nil
	}

	repo, err := repository.NewPostgresRepo(ctx, a.Config.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	a.closers = append(a.closers, repo.Close)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	a.Store = repo
	utils.Info("connected to postgres", nil)
	return nil
}

func (a *App) openRedis(ctx context.Context) (broadcast.Broadcaster, ratelimit.Limiter, error) {
	if a.Config.Redis.Addr == "" {
		utils.Warn("redis.addr not set, bid events stay in process", nil)
		return &broadcast.Recorder{}, ratelimit.NewMemoryLimiter(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	utils.Info("connected to redis", map[string]any{"addr": a.Config.Redis.Addr})
	return broadcast.NewRedisPublisher(client), ratelimit.NewRedisLimiter(client, "auction"), nil
}

func (a *App) openNotifier(ctx context.Context) (notify.Notifier, error) {
	cfg := a.Config
	dispatcher := notify.NewDispatcher(notify.LogMailer{})

	if cfg.NATS.URL == "" {
		utils.Warn("nats.url not set, notifications are delivered inline", nil)
		return notify.NewPublisher(notify.LocalTransport{Dispatcher: dispatcher}, cfg.NATS.SubjectPrefix, cfg.App.WebsiteURL), nil
	}

	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("auction-house"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	a.closers = append(a.closers, nc.Close)

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	transport, err := notify.NewJetStreamTransport(ctx, js, cfg.NATS.SubjectPrefix)
	if err != nil {
		return nil, err
	}
	cc, err := dispatcher.Consume(ctx, js, cfg.NATS.SubjectPrefix, cfg.NATS.QueueGroup)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, cc.Stop)

	utils.Info("connected to nats", map[string]any{"url": cfg.NATS.URL, "prefix": cfg.NATS.SubjectPrefix})
	return notify.NewPublisher(transport, cfg.NATS.SubjectPrefix, cfg.App.WebsiteURL), nil
}

func (a *App) paymentProvider() (payments.Provider, error) {
	switch strings.ToLower(a.Config.Payments.Provider) {
	case "stripe":
		if a.Config.Payments.StripeKey == "" {
			return nil, fmt.Errorf("payments.stripe_key required for the stripe provider")
		}
		if a.Config.Payments.WebhookSecret == "" {
			return nil, fmt.Errorf("payments.webhook_secret required for the stripe provider")
		}
		return payments.NewStripeProvider(a.Config.Payments.StripeKey, a.Config.Payments.SuccessURL), nil
	case "", "sandbox":
		a.Sandbox = payments.NewSandboxProvider(strings.TrimRight(a.Config.App.WebsiteURL, "/") + "/pay")
		return a.Sandbox, nil
	default:
		return nil, fmt.Errorf("unknown payments.provider %q", a.Config.Payments.Provider)
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
