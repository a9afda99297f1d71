package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/bidding/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// checkoutCompleted is the only provider event that settles anything.
const checkoutCompleted = "checkout.session.completed"

type IntentServiceInterface interface {
	CreateBidIntent(ctx context.Context, advertID, userID string, faceAmount int64) (model.BidIntent, error)
	ReconcileConfirmedPayment(ctx context.Context, advertID, userID string) (model.Bid, error)
	ListUserIntents(ctx context.Context, userID string) ([]model.BidIntent, error)
}

type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, userID, advertID string, amount int64, description string) (model.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID string) (model.Payment, model.WalletOperation, error)
}

// WebhookVerifier authenticates a webhook body against the request's signature headers.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

type IntentHandler struct {
	intents  IntentServiceInterface
	payments PaymentServiceInterface
	verifier WebhookVerifier
}

// NewIntentHandler wires the intent and payment routes. With a nil verifier
// webhook bodies are trusted as sent, which only the sandbox provider relies on.
func NewIntentHandler(intents IntentServiceInterface, payments PaymentServiceInterface, verifier WebhookVerifier) *IntentHandler {
	return &IntentHandler{intents: intents, payments: payments, verifier: verifier}
}

// CreateIntentHandler handles POST /bids/intents
func (h *IntentHandler) CreateIntentHandler(c *gin.Context) {
	var req helpers.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateIntentHandler", err)
		return
	}

	intent, err := h.intents.CreateBidIntent(c.Request.Context(), req.AdvertID, req.UserID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "CreateIntentHandler", "create bid intent", err, map[string]any{
			"advert_id": req.AdvertID,
			"user_id":   req.UserID,
			"amount":    req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewIntentResponse(intent), "bid intent created successfully")
	helpers.LogSuccess("CreateIntentHandler", "bid intent created successfully", map[string]any{
		"intent_id": intent.IntentID,
		"advert_id": intent.AdvertID,
		"user_id":   intent.UserID,
		"deposit":   intent.Amount,
	})
}

// ListIntentsHandler handles GET /users/:user_id/intents
func (h *IntentHandler) ListIntentsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	list, err := h.intents.ListUserIntents(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ListIntentsHandler", "list bid intents", err, map[string]any{"user_id": userID})
		return
	}

	resp := make([]helpers.IntentResponse, 0, len(list))
	for _, intent := range list {
		resp = append(resp, helpers.NewIntentResponse(intent))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid intents retrieved successfully")
	helpers.LogSuccess("ListIntentsHandler", "bid intents retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// PaymentWebhookHandler handles POST /webhooks/payments. Links created for a
// payment record confirm that payment; links created for a bid intent turn
// the intent into a bid.
func (h *IntentHandler) PaymentWebhookHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		helpers.HandleBindError(c, "PaymentWebhookHandler", err)
		return
	}
	if h.verifier != nil {
		if err := h.verifier.Verify(body, c.Request.Header); err != nil {
			helpers.RespondError(c, "PaymentWebhookHandler", "verify webhook", err, map[string]any{"remote_ip": c.ClientIP()})
			return
		}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var event helpers.PaymentWebhook
	if err := c.ShouldBindJSON(&event); err != nil {
		helpers.HandleBindError(c, "PaymentWebhookHandler", err)
		return
	}

	if event.Type != checkoutCompleted {
		utils.JSONResponse(c, http.StatusOK, nil, "event ignored")
		utils.Debug("PaymentWebhookHandler: event ignored", map[string]any{"type": event.Type})
		return
	}

	metadata := event.Data.Object.Metadata
	if paymentID := metadata["paymentId"]; paymentID != "" {
		payment, op, err := h.payments.ConfirmPayment(c.Request.Context(), paymentID)
		if err != nil {
			helpers.RespondError(c, "PaymentWebhookHandler", "confirm payment", err, map[string]any{"payment_id": paymentID})
			return
		}
		utils.JSONResponse(c, http.StatusOK, payment, "payment confirmed")
		helpers.LogSuccess("PaymentWebhookHandler", "payment confirmed", map[string]any{
			"payment_id":    payment.PaymentID,
			"operation_id":  op.OperationID,
			"balance_after": op.BalanceAfter,
		})
		return
	}

	advertID, userID := metadata["advertId"], metadata["userId"]
	if advertID == "" || userID == "" {
		utils.JSONResponse(c, http.StatusOK, nil, "event ignored")
		utils.Warn("PaymentWebhookHandler: event without settlement metadata", map[string]any{"object_id": event.Data.Object.ID})
		return
	}

	bid, err := h.intents.ReconcileConfirmedPayment(c.Request.Context(), advertID, userID)
	if err != nil {
		helpers.RespondError(c, "PaymentWebhookHandler", "reconcile bid intent", err, map[string]any{
			"advert_id": advertID,
			"user_id":   userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid intent reconciled")
	helpers.LogSuccess("PaymentWebhookHandler", "bid intent reconciled", map[string]any{
		"bid_id":    bid.BidID,
		"advert_id": advertID,
		"user_id":   userID,
	})
}

// CreatePaymentHandler handles POST /payments
func (h *IntentHandler) CreatePaymentHandler(c *gin.Context) {
	var req helpers.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePaymentHandler", err)
		return
	}

	payment, err := h.payments.CreatePayment(c.Request.Context(), req.UserID, req.AdvertID, req.Amount, req.Description)
	if err != nil {
		helpers.RespondError(c, "CreatePaymentHandler", "create payment", err, map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, payment, "payment created successfully")
	helpers.LogSuccess("CreatePaymentHandler", "payment created successfully", map[string]any{
		"payment_id": payment.PaymentID,
		"user_id":    payment.UserID,
	})
}
