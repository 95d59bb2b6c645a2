package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is a pure function of (amountPaid, orderTotal); it is stored
// on the order row for querying but recomputed on every write.
type PaymentStatus string

const (
	StatusUnpaid   PaymentStatus = "unpaid"
	StatusPartial  PaymentStatus = "partial"
	StatusPaid     PaymentStatus = "paid"
	StatusOverpaid PaymentStatus = "overpaid"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrConflict means a concurrent writer changed the order's payment
	// fields between read and write.
	ErrConflict = errors.New("order concurrently modified")
)

// Order is the payment-relevant subset of the order record.
type Order struct {
	ID              uuid.UUID
	DisplayID       string
	CustomerName    string
	CustomerEmail   string
	Currency        string
	TotalCents      int64
	AmountPaidCents int64
	PaymentStatus   PaymentStatus
	PaidAt          *time.Time
	CreatedAt       time.Time
}

// StatusFor derives the single payment status consistent with the given
// amounts.
func StatusFor(amountPaidCents, totalCents int64) PaymentStatus {
	switch {
	case amountPaidCents <= 0:
		return StatusUnpaid
	case amountPaidCents < totalCents:
		return StatusPartial
	case amountPaidCents == totalCents:
		return StatusPaid
	default:
		return StatusOverpaid
	}
}
