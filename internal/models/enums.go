package models

import "fmt"

// AdvertStatus is the lifecycle state of an advert.
type AdvertStatus string

const (
	AdvertStatusActive    AdvertStatus = "active"
	AdvertStatusInactive  AdvertStatus = "inactive"
	AdvertStatusPending   AdvertStatus = "pending"
	AdvertStatusSold      AdvertStatus = "sold"
	AdvertStatusExpired   AdvertStatus = "expired"
	AdvertStatusCancelled AdvertStatus = "cancelled"
	AdvertStatusArchived  AdvertStatus = "archived"
)

// ParseAdvertStatus validates a stored or user-supplied status.
func ParseAdvertStatus(s string) (AdvertStatus, error) {
	switch st := AdvertStatus(s); st {
	case AdvertStatusActive, AdvertStatusInactive, AdvertStatusPending,
		AdvertStatusSold, AdvertStatusExpired, AdvertStatusCancelled, AdvertStatusArchived:
		return st, nil
	default:
		return "", fmt.Errorf("unknown advert status %q", s)
	}
}

// IsTerminal reports whether no further transition is allowed out of the status.
func (s AdvertStatus) IsTerminal() bool {
	switch s {
	case AdvertStatusSold, AdvertStatusExpired, AdvertStatusCancelled, AdvertStatusArchived:
		return true
	case AdvertStatusActive, AdvertStatusInactive, AdvertStatusPending:
		return false
	default:
		return false
	}
}

// CanTransitionTo reports whether s may move to next.
func (s AdvertStatus) CanTransitionTo(next AdvertStatus) bool {
	if s == next {
		return false
	}
	return !s.IsTerminal()
}

// OperationType classifies a wallet operation.
type OperationType string

const (
	OperationDeposit        OperationType = "deposit"
	OperationWithdrawal     OperationType = "withdrawal"
	OperationAuctionPayment OperationType = "auction payment"
)

// ParseOperationType accepts the stored names plus the "withdraw" alias used by clients.
func ParseOperationType(s string) (OperationType, error) {
	switch s {
	case string(OperationDeposit):
		return OperationDeposit, nil
	case string(OperationWithdrawal), "withdraw":
		return OperationWithdrawal, nil
	case string(OperationAuctionPayment):
		return OperationAuctionPayment, nil
	default:
		return "", fmt.Errorf("unknown wallet operation type %q", s)
	}
}

// Sign is +1 for operations that credit the wallet and -1 for those that debit it.
func (t OperationType) Sign() int64 {
	switch t {
	case OperationDeposit:
		return 1
	case OperationWithdrawal, OperationAuctionPayment:
		return -1
	default:
		return 0
	}
}

// OperationStatus is the processing state of a wallet operation.
type OperationStatus string

const (
	OperationProcessed OperationStatus = "processed"
	OperationDenied    OperationStatus = "denied"
	OperationPending   OperationStatus = "pending"
)

// WithdrawalStatus is the review state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalFinished WithdrawalStatus = "finished"
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalDenied   WithdrawalStatus = "denied"
)

func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch st := WithdrawalStatus(s); st {
	case WithdrawalApproved, WithdrawalFinished, WithdrawalPending, WithdrawalDenied:
		return st, nil
	default:
		return "", fmt.Errorf("unknown withdrawal status %q", s)
	}
}

// IsClosed reports whether the request has already been processed.
func (s WithdrawalStatus) IsClosed() bool {
	switch s {
	case WithdrawalDenied, WithdrawalFinished:
		return true
	case WithdrawalApproved, WithdrawalPending:
		return false
	default:
		return false
	}
}

// PaymentStatus is the state of a collected payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentFailed   PaymentStatus = "failed"
)

// DocumentType distinguishes advert attachments from personal identity documents.
type DocumentType string

const (
	DocumentAdvert  DocumentType = "advert"
	DocumentPhotoID DocumentType = "photo_id"
)

// ReviewState is the staff review outcome for a document.
type ReviewState string

const (
	ReviewPending  ReviewState = "pending"
	ReviewApproved ReviewState = "approved"
	ReviewRejected ReviewState = "rejected"
)
