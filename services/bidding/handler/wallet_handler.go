package handler

import (
	"context"
	"fmt"
	"net/http"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/services/bidding/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type WalletServiceInterface interface {
	CreateWallet(ctx context.Context, userID, billingAddress string) (model.Wallet, error)
	GetWallet(ctx context.Context, walletID string) (model.WalletWithOperations, error)
	ApplyOperation(ctx context.Context, userID string, amount int64, opType model.OperationType) (model.WalletOperation, error)
	RequestWithdrawal(ctx context.Context, userID string, amount int64) (model.WithdrawalRequest, error)
	ManageWithdrawalRequest(ctx context.Context, requestID string, status model.WithdrawalStatus) (model.WithdrawalRequest, error)
}

type WalletHandler struct {
	service WalletServiceInterface
}

func NewWalletHandler(service WalletServiceInterface) *WalletHandler {
	return &WalletHandler{service: service}
}

// CreateWalletHandler handles POST /wallets
func (h *WalletHandler) CreateWalletHandler(c *gin.Context) {
	var req helpers.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateWalletHandler", err)
		return
	}

	wallet, err := h.service.CreateWallet(c.Request.Context(), req.UserID, req.BillingAddress)
	if err != nil {
		helpers.RespondError(c, "CreateWalletHandler", "create wallet", err, map[string]any{"user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, wallet, "wallet created successfully")
	helpers.LogSuccess("CreateWalletHandler", "wallet created successfully", map[string]any{
		"wallet_id": wallet.WalletID,
		"user_id":   wallet.UserID,
	})
}

// GetWalletHandler handles GET /wallets/:wallet_id
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	walletID := c.Param("wallet_id")
	wallet, err := h.service.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		helpers.RespondError(c, "GetWalletHandler", "retrieve wallet", err, map[string]any{"wallet_id": walletID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, wallet, "wallet retrieved successfully")
}

// WalletOperationHandler handles POST /wallets/operations
func (h *WalletHandler) WalletOperationHandler(c *gin.Context) {
	var req helpers.WalletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WalletOperationHandler", err)
		return
	}
	opType, err := model.ParseOperationType(req.Type)
	if err != nil {
		helpers.RespondError(c, "WalletOperationHandler", "parse operation", fmt.Errorf("%w - %v", biddingerrors.ErrValidation, err), nil)
		return
	}

	op, err := h.service.ApplyOperation(c.Request.Context(), req.UserID, req.Amount, opType)
	if err != nil {
		helpers.RespondError(c, "WalletOperationHandler", "apply operation", err, map[string]any{
			"user_id": req.UserID,
			"type":    opType,
			"amount":  req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, op, "wallet operation processed")
	helpers.LogSuccess("WalletOperationHandler", "wallet operation processed", map[string]any{
		"operation_id":  op.OperationID,
		"wallet_id":     op.WalletID,
		"balance_after": op.BalanceAfter,
	})
}

// RequestWithdrawalHandler handles POST /wallets/withdrawals
func (h *WalletHandler) RequestWithdrawalHandler(c *gin.Context) {
	var req helpers.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RequestWithdrawalHandler", err)
		return
	}

	withdrawal, err := h.service.RequestWithdrawal(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "RequestWithdrawalHandler", "request withdrawal", err, map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, withdrawal, "withdrawal requested")
	helpers.LogSuccess("RequestWithdrawalHandler", "withdrawal requested", map[string]any{"request_id": withdrawal.RequestID})
}

// ManageWithdrawalHandler handles PATCH /wallets/withdrawals/:request_id
func (h *WalletHandler) ManageWithdrawalHandler(c *gin.Context) {
	requestID := c.Param("request_id")
	var req helpers.ManageWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ManageWithdrawalHandler", err)
		return
	}
	status, err := model.ParseWithdrawalStatus(req.Status)
	if err != nil {
		helpers.RespondError(c, "ManageWithdrawalHandler", "parse status", fmt.Errorf("%w - %v", biddingerrors.ErrValidation, err), nil)
		return
	}

	updated, err := h.service.ManageWithdrawalRequest(c.Request.Context(), requestID, status)
	if err != nil {
		helpers.RespondError(c, "ManageWithdrawalHandler", "manage withdrawal", err, map[string]any{"request_id": requestID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "withdrawal updated")
	helpers.LogSuccess("ManageWithdrawalHandler", "withdrawal updated", map[string]any{
		"request_id": requestID,
		"status":     updated.Status,
	})
}
