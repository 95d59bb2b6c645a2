package evidence

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two sources of payment evidence.
type Kind string

const (
	KindManualProof        Kind = "manual_proof"
	KindGatewayTransaction Kind = "gateway_transaction"
)

// Status represents the verification state of an evidence item.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Evidence is the canonical in-memory projection of a payment evidence item.
// It is derived from payment_proofs and gateway_transactions rows and is never
// persisted in this shape.
type Evidence struct {
	ID             uuid.UUID
	Kind           Kind
	OrderID        *uuid.UUID
	OrderDisplayID string
	CustomerName   string
	CustomerEmail  string
	Method         string
	Label          string // proof label for uploads, gateway reference for transactions
	Status         Status
	ClaimedCents   int64
	VerifiedCents  *int64
	AdminNote      string
	VerifiedBy     string
	VerifiedAt     *time.Time
	SubmittedAt    time.Time
	Orphaned       bool // the owning order no longer exists
}

// ProofRow is a raw manual-proof record with its order join. Pointer fields
// are nil when the order was deleted out from under the proof.
type ProofRow struct {
	ID              uuid.UUID
	OrderID         *uuid.UUID
	OrderDisplayID  *string
	OrderTotalCents *int64
	CustomerName    *string
	CustomerEmail   *string
	Method          string
	Label           string
	FileURL         string
	Status          Status
	AdminNote       string
	VerifiedCents   *int64
	VerifiedBy      string
	VerifiedAt      *time.Time
	SubmittedAt     time.Time
}

// GatewayRow is a raw gateway-transaction record with its order join.
type GatewayRow struct {
	ID             uuid.UUID
	OrderID        *uuid.UUID
	OrderDisplayID *string
	CustomerName   *string
	CustomerEmail  *string
	Reference      string
	Method         string
	GatewayStatus  string
	AmountCents    int64
	SubmittedAt    time.Time
}

// GatewayCreateParams describes a gateway transaction to back-fill from a
// settlement export.
type GatewayCreateParams struct {
	OrderID       *uuid.UUID
	Reference     string
	Method        string
	GatewayStatus string
	AmountCents   int64
	SubmittedAt   time.Time
}
