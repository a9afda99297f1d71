package handler

//go:generate mockgen -destination=mock_handler.go -package=handler auction-house/services/bidding/handler BiddingServiceInterface,IntentServiceInterface,AdvertServiceInterface,WalletServiceInterface,PaymentServiceInterface,SweepRunner

import (
	"context"
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/bidding/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, advertID, userID string, amount int64) (model.Bid, error)
	GetBidsForAdvert(ctx context.Context, advertID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, advertID string) (model.Bid, error)
	GetAdvertsByUser(ctx context.Context, userID string) ([]model.Advert, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.AdvertID, req.UserID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "RecordBidHandler", "record bid", err, map[string]any{
			"advert_id": req.AdvertID,
			"user_id":   req.UserID,
			"amount":    req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.BidID,
		"advert_id": bid.AdvertID,
		"user_id":   req.UserID,
		"amount":    bid.Amount,
	})
}

// GetBidsByAdvertHandler handles GET /adverts/:advert_id/bids
func (h *BiddingHandler) GetBidsByAdvertHandler(c *gin.Context) {
	advertID := c.Param("advert_id")
	bids, err := h.service.GetBidsForAdvert(c.Request.Context(), advertID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByAdvertHandler", "retrieve bids", err, map[string]any{"advert_id": advertID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.NewBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAdvertHandler", "bids retrieved successfully", map[string]any{
		"advert_id": advertID,
		"count":     len(resp),
	})
}

// GetWinningBidHandler handles GET /adverts/:advert_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	advertID := c.Param("advert_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), advertID)
	if err != nil {
		helpers.RespondError(c, "GetWinningBidHandler", "retrieve winning bid", err, map[string]any{"advert_id": advertID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":    bid.BidID,
		"advert_id": bid.AdvertID,
		"user_id":   bid.UserID,
		"amount":    bid.Amount,
	})
}

// GetAdvertsByUserHandler handles GET /users/:user_id/adverts
func (h *BiddingHandler) GetAdvertsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	adverts, err := h.service.GetAdvertsByUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetAdvertsByUserHandler", "retrieve adverts", err, map[string]any{"user_id": userID})
		return
	}

	if adverts == nil {
		adverts = []model.Advert{}
	}

	utils.JSONResponse(c, http.StatusOK, adverts, "adverts retrieved successfully")
	helpers.LogSuccess("GetAdvertsByUserHandler", "adverts retrieved successfully", map[string]any{
		"user_id":       userID,
		"adverts_count": len(adverts),
	})
}
