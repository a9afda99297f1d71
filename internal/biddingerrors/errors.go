package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdvertNotFound     = errors.New("advert not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrIntentNotFound     = errors.New("bid intent not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	ErrNoBids             = errors.New("no bids found for advert")
	ErrAlreadyExists      = errors.New("record already exists")
)

// business logic errors
var (
	ErrValidation                = errors.New("validation failed")
	ErrSelfBidForbidden          = errors.New("cannot bid on your own advert")
	ErrBidTooLow                 = errors.New("bid amount too low")
	ErrBidBelowMinimum           = errors.New("bid below advert minimum")
	ErrAuctionExpired            = errors.New("auction expired")
	ErrAuctionNotActive          = errors.New("auction not active")
	ErrAuctionNotStarted         = errors.New("auction not started")
	ErrInsufficientWalletBalance = errors.New("insufficient wallet balance")
	ErrDuplicateIntent           = errors.New("bid intent already exists")
	ErrIdentityRequired          = errors.New("photo id required")
	ErrIdentityNotApproved       = errors.New("photo id not approved")
	ErrEmailNotVerified          = errors.New("email not verified")
	ErrRateLimited               = errors.New("rate limited")
	ErrExternalProvider          = errors.New("payment provider failure")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrInvalidSignature          = errors.New("invalid webhook signature")
)
