package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/biddingerrors"
	"auction-house/internal/money"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Order matters where one error wraps several sentinels.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrRateLimited):
		return http.StatusTooManyRequests, "verification email recently sent"
	case errors.Is(err, biddingerrors.ErrEmailNotVerified):
		return http.StatusForbidden, "email not verified"
	case errors.Is(err, biddingerrors.ErrIdentityRequired):
		return http.StatusForbidden, "photo id required"
	case errors.Is(err, biddingerrors.ErrIdentityNotApproved):
		return http.StatusForbidden, "photo id pending approval"
	case errors.Is(err, biddingerrors.ErrSelfBidForbidden):
		return http.StatusForbidden, "cannot bid on your own advert"
	case errors.Is(err, biddingerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, biddingerrors.ErrInvalidSignature):
		return http.StatusUnauthorized, "invalid webhook signature"

	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, biddingerrors.ErrAdvertNotFound):
		return http.StatusNotFound, "advert not found"
	case errors.Is(err, biddingerrors.ErrWalletNotFound):
		return http.StatusNotFound, "wallet not found"
	case errors.Is(err, biddingerrors.ErrIntentNotFound):
		return http.StatusNotFound, "bid intent not found"
	case errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return http.StatusNotFound, "payment not found"
	case errors.Is(err, biddingerrors.ErrWithdrawalNotFound):
		return http.StatusNotFound, "withdrawal request not found"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for advert"

	case errors.Is(err, biddingerrors.ErrValidation),
		errors.Is(err, money.ErrInvalidMonetaryValue):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, biddingerrors.ErrBidBelowMinimum):
		return http.StatusBadRequest, "bid below advert minimum"

	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrDuplicateIntent):
		return http.StatusConflict, "bid intent already exists"
	case errors.Is(err, biddingerrors.ErrAlreadyExists):
		return http.StatusConflict, "record already exists"
	case errors.Is(err, biddingerrors.ErrAuctionExpired):
		return http.StatusConflict, "auction expired"
	case errors.Is(err, biddingerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction not active"
	case errors.Is(err, biddingerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction not started"

	case errors.Is(err, biddingerrors.ErrInsufficientWalletBalance):
		return http.StatusPaymentRequired, "insufficient wallet balance"
	case errors.Is(err, biddingerrors.ErrExternalProvider):
		return http.StatusBadGateway, "payment provider unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error and logs it with the handler's context.
func RespondError(c *gin.Context, handlerName, action string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": failed to "+action, fields)
		return
	}
	utils.Warn(handlerName+": failed to "+action, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
