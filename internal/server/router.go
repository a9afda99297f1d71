package server

import (
	"net/http"

	handler "auction-house/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services are the application services the HTTP layer exposes.
type Services struct {
	Bidding  handler.BiddingServiceInterface
	Intents  handler.IntentServiceInterface
	Adverts  handler.AdvertServiceInterface
	Wallets  handler.WalletServiceInterface
	Payments handler.PaymentServiceInterface
	Sweep    handler.SweepRunner
	// Webhooks authenticates payment webhooks; nil accepts them unsigned.
	Webhooks handler.WebhookVerifier
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(MetricsMiddleware)       // prometheus counters
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	biddingHandler := handler.NewBiddingHandler(svc.Bidding)
	intentHandler := handler.NewIntentHandler(svc.Intents, svc.Payments, svc.Webhooks)
	advertHandler := handler.NewAdvertHandler(svc.Adverts)
	walletHandler := handler.NewWalletHandler(svc.Wallets)
	adminHandler := handler.NewAdminHandler(svc.Sweep)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
		bids.POST("/intents", intentHandler.CreateIntentHandler)
	}

	adverts := router.Group("/adverts")
	{
		adverts.POST("", advertHandler.CreateAdvertHandler)
		adverts.GET("", advertHandler.ListAdvertsHandler)
		adverts.GET("/featured", advertHandler.GetFeaturedAdvertHandler)
		adverts.GET("/:advert_id", advertHandler.GetAdvertStateHandler)
		adverts.GET("/:advert_id/bids", biddingHandler.GetBidsByAdvertHandler)
		adverts.GET("/:advert_id/winning", biddingHandler.GetWinningBidHandler)
		adverts.POST("/:advert_id/like", advertHandler.LikeAdvertHandler)
		adverts.POST("/:advert_id/end", advertHandler.EndAdvertHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/adverts", biddingHandler.GetAdvertsByUserHandler)
		users.GET("/:user_id/intents", intentHandler.ListIntentsHandler)
	}

	wallets := router.Group("/wallets")
	{
		wallets.POST("", walletHandler.CreateWalletHandler)
		wallets.GET("/:wallet_id", walletHandler.GetWalletHandler)
		wallets.POST("/operations", walletHandler.WalletOperationHandler)
		wallets.POST("/withdrawals", walletHandler.RequestWithdrawalHandler)
		wallets.PATCH("/withdrawals/:request_id", walletHandler.ManageWithdrawalHandler)
	}

	router.POST("/payments", intentHandler.CreatePaymentHandler)
	router.POST("/webhooks/payments", intentHandler.PaymentWebhookHandler)
	router.POST("/admin/sweep", adminHandler.RunSweepHandler)

	return router
}
