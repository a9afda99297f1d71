package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"auction-house/internal/adverts"
	"auction-house/internal/biddingerrors"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/services/bidding/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AdvertServiceInterface interface {
	CreateAdvert(ctx context.Context, ownerID string, in adverts.CreateAdvertInput) (model.Advert, error)
	EndAdvert(ctx context.Context, advertID string) (model.Advert, error)
	LikeAdvert(ctx context.Context, advertID, userID string) (model.Advert, error)
	GetAuctionState(ctx context.Context, advertID string) (ledger.AuctionState, error)
	ListAdverts(ctx context.Context, filter adverts.ListFilter) ([]model.Advert, error)
	GetFeaturedAdvert(ctx context.Context) (ledger.AuctionState, bool, error)
}

type AdvertHandler struct {
	service AdvertServiceInterface
}

func NewAdvertHandler(service AdvertServiceInterface) *AdvertHandler {
	return &AdvertHandler{service: service}
}

// CreateAdvertHandler handles POST /adverts
func (h *AdvertHandler) CreateAdvertHandler(c *gin.Context) {
	var req helpers.CreateAdvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAdvertHandler", err)
		return
	}

	advert, err := h.service.CreateAdvert(c.Request.Context(), req.OwnerID, adverts.CreateAdvertInput{
		Title:                req.Title,
		State:                req.State,
		Amount:               req.Amount,
		MinBidAmount:         req.MinBidAmount,
		ReservePrice:         req.ReservePrice,
		InitialDepositAmount: req.InitialDepositAmount,
		MinimumWalletBalance: req.MinimumWalletBalance,
		StartsAt:             req.StartsAt,
		EndsAt:               req.EndsAt,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAdvertHandler", "create advert", err, map[string]any{"owner_id": req.OwnerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, advert, "advert created successfully")
	helpers.LogSuccess("CreateAdvertHandler", "advert created successfully", map[string]any{
		"advert_id": advert.AdvertID,
		"owner_id":  advert.OwnerID,
	})
}

// ListAdvertsHandler handles GET /adverts?status=&search=&limit=
func (h *AdvertHandler) ListAdvertsHandler(c *gin.Context) {
	var filter adverts.ListFilter
	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseAdvertStatus(raw)
		if err != nil {
			helpers.RespondError(c, "ListAdvertsHandler", "parse filter", fmt.Errorf("%w - %v", biddingerrors.ErrValidation, err), nil)
			return
		}
		filter.Status = status
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			helpers.RespondError(c, "ListAdvertsHandler", "parse filter", fmt.Errorf("%w - bad limit %q", biddingerrors.ErrValidation, raw), nil)
			return
		}
		filter.Limit = limit
	}
	filter.Search = c.Query("search")

	list, err := h.service.ListAdverts(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, "ListAdvertsHandler", "list adverts", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, list, "adverts retrieved successfully")
	helpers.LogSuccess("ListAdvertsHandler", "adverts retrieved successfully", map[string]any{"count": len(list)})
}

// GetAdvertStateHandler handles GET /adverts/:advert_id
func (h *AdvertHandler) GetAdvertStateHandler(c *gin.Context) {
	advertID := c.Param("advert_id")
	state, err := h.service.GetAuctionState(c.Request.Context(), advertID)
	if err != nil {
		helpers.RespondError(c, "GetAdvertStateHandler", "retrieve advert", err, map[string]any{"advert_id": advertID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, state, "advert retrieved successfully")
}

// GetFeaturedAdvertHandler handles GET /adverts/featured
func (h *AdvertHandler) GetFeaturedAdvertHandler(c *gin.Context) {
	state, ok, err := h.service.GetFeaturedAdvert(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "GetFeaturedAdvertHandler", "retrieve featured advert", err, nil)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, biddingerrors.ErrNoBids, "no featured advert")
		return
	}

	utils.JSONResponse(c, http.StatusOK, state, "featured advert retrieved successfully")
}

// LikeAdvertHandler handles POST /adverts/:advert_id/like
func (h *AdvertHandler) LikeAdvertHandler(c *gin.Context) {
	advertID := c.Param("advert_id")
	var req helpers.LikeAdvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LikeAdvertHandler", err)
		return
	}

	advert, err := h.service.LikeAdvert(c.Request.Context(), advertID, req.UserID)
	if err != nil {
		helpers.RespondError(c, "LikeAdvertHandler", "like advert", err, map[string]any{"advert_id": advertID, "user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, advert, "advert liked")
}

// EndAdvertHandler handles POST /adverts/:advert_id/end
func (h *AdvertHandler) EndAdvertHandler(c *gin.Context) {
	advertID := c.Param("advert_id")
	advert, err := h.service.EndAdvert(c.Request.Context(), advertID)
	if err != nil {
		helpers.RespondError(c, "EndAdvertHandler", "end advert", err, map[string]any{"advert_id": advertID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, advert, "advert ended")
	helpers.LogSuccess("EndAdvertHandler", "advert ended", map[string]any{"advert_id": advertID})
}
