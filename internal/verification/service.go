package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/invalidate"
	"github.com/shopfwd/shopfwd/internal/metrics"
	"github.com/shopfwd/shopfwd/internal/notify"
	"github.com/shopfwd/shopfwd/internal/order"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=verification
type Repository interface {
	// GetEvidenceKind resolves which source collection an evidence id
	// belongs to. Returns evidence.ErrNotFound when neither has it.
	GetEvidenceKind(ctx context.Context, id uuid.UUID) (evidence.Kind, error)

	GetProof(ctx context.Context, id uuid.UUID) (*evidence.ProofRow, error)

	// RejectProof applies a guarded Pending -> Rejected update. Returns
	// evidence.ErrAlreadyDecided when the proof already left Pending.
	RejectProof(ctx context.Context, params DecisionWrite) error

	// BeginVerify opens the atomic unit of work for a verification:
	// evidence decision, ledger append and order update commit together.
	// Updates to the same order are serialized for the lifetime of the
	// returned transaction.
	BeginVerify(ctx context.Context, orderID uuid.UUID) (VerifyTx, error)
}

// VerifyTx is the transactional surface of a single Verify decision.
type VerifyTx interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error)

	// VerifyProof applies a guarded Pending -> Verified update. Returns
	// evidence.ErrAlreadyDecided when the proof already left Pending.
	VerifyProof(ctx context.Context, params DecisionWrite) error

	AppendPaymentEvent(ctx context.Context, event PaymentEvent) error

	// SumPaymentEvents folds the order's append-only payment ledger into
	// the cumulative amount paid.
	SumPaymentEvents(ctx context.Context, orderID uuid.UUID) (int64, error)

	UpdateOrderPayment(ctx context.Context, orderID uuid.UUID, amountPaidCents int64, status order.PaymentStatus, paidAt time.Time) error

	Commit() error
	Rollback() error
}

// DecisionWrite is the persisted half of an operator decision.
type DecisionWrite struct {
	EvidenceID    uuid.UUID
	Note          string
	DecidedBy     string
	DecidedAt     time.Time
	VerifiedCents int64 // Verify only
}

// PaymentEvent is one immutable entry in an order's payment ledger.
type PaymentEvent struct {
	OrderID     uuid.UUID
	EvidenceID  uuid.UUID
	AmountCents int64
	RecordedBy  string
}

type Notifier interface {
	NotifyCustomer(ctx context.Context, orderID uuid.UUID, template notify.Template, note string) error
}

type Invalidator interface {
	Emit(signal invalidate.Signal)
}

// Decision is an operator's verdict on a pending manual proof.
type Decision string

const (
	DecisionVerify Decision = "verify"
	DecisionReject Decision = "reject"
)

// DecideParams describes one decision on one evidence item.
type DecideParams struct {
	EvidenceID uuid.UUID
	Decision   Decision
	Note       string
	DecidedBy  string

	// AmountCents, when set, overrides the default of treating the proof
	// as settlement of the full order total.
	AmountCents *int64
}

// Outcome reports a successfully applied decision.
type Outcome struct {
	EvidenceID         uuid.UUID
	Decision           Decision
	OrderID            *uuid.UUID
	VerifiedCents      int64
	NewAmountPaidCents int64
	PaymentStatus      order.PaymentStatus
	DecidedAt          time.Time
}

type Service struct {
	repo        Repository
	notifier    Notifier
	invalidator Invalidator
	now         func() time.Time
}

func NewService(repo Repository, notifier Notifier, invalidator Invalidator) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		invalidator: invalidator,
		now:         time.Now,
	}
}

// Decide applies a verify/reject decision to a single evidence item.
//
// Gateway transactions are informational here: their status is owned by the
// gateway, so any decision on them returns evidence.ErrNotApplicable. Manual
// proofs transition Pending -> Verified/Rejected exactly once; a second
// decision returns evidence.ErrAlreadyDecided.
//
// Once the decision write commits the operation is committed: a failed
// notification is logged, never rolled back.
func (s *Service) Decide(ctx context.Context, params DecideParams) (*Outcome, error) {
	outcome, err := s.decide(ctx, params)
	if err != nil {
		metrics.Decisions.WithLabelValues(string(params.Decision), "failure").Inc()
		return nil, err
	}

	metrics.Decisions.WithLabelValues(string(params.Decision), "success").Inc()

	s.dispatch(ctx, params, outcome)

	return outcome, nil
}

func (s *Service) decide(ctx context.Context, params DecideParams) (*Outcome, error) {
	if params.Decision != DecisionVerify && params.Decision != DecisionReject {
		return nil, fmt.Errorf("unknown decision %q", params.Decision)
	}

	kind, err := s.repo.GetEvidenceKind(ctx, params.EvidenceID)
	if err != nil {
		return nil, err
	}

	if kind == evidence.KindGatewayTransaction {
		return nil, evidence.ErrNotApplicable
	}

	proof, err := s.repo.GetProof(ctx, params.EvidenceID)
	if err != nil {
		return nil, err
	}

	if proof.Status != evidence.StatusPending {
		return nil, evidence.ErrAlreadyDecided
	}

	if params.Decision == DecisionReject {
		return s.reject(ctx, params, proof)
	}

	return s.verify(ctx, params, proof)
}

func (s *Service) reject(ctx context.Context, params DecideParams, proof *evidence.ProofRow) (*Outcome, error) {
	decidedAt := s.now()

	err := s.repo.RejectProof(ctx, DecisionWrite{
		EvidenceID: params.EvidenceID,
		Note:       params.Note,
		DecidedBy:  params.DecidedBy,
		DecidedAt:  decidedAt,
	})
	if err != nil {
		return nil, err
	}

	return &Outcome{
		EvidenceID: params.EvidenceID,
		Decision:   DecisionReject,
		OrderID:    proof.OrderID,
		DecidedAt:  decidedAt,
	}, nil
}

func (s *Service) verify(ctx context.Context, params DecideParams, proof *evidence.ProofRow) (*Outcome, error) {
	if proof.OrderID == nil {
		return nil, order.ErrNotFound
	}

	orderID := *proof.OrderID

	tx, err := s.repo.BeginVerify(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("beginning verification: %w", err)
	}
	defer tx.Rollback()

	ord, err := tx.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	amountCents := ord.TotalCents
	if params.AmountCents != nil {
		amountCents = *params.AmountCents
	}

	decidedAt := s.now()

	err = tx.VerifyProof(ctx, DecisionWrite{
		EvidenceID:    params.EvidenceID,
		Note:          params.Note,
		DecidedBy:     params.DecidedBy,
		DecidedAt:     decidedAt,
		VerifiedCents: amountCents,
	})
	if err != nil {
		return nil, err
	}

	err = tx.AppendPaymentEvent(ctx, PaymentEvent{
		OrderID:     orderID,
		EvidenceID:  params.EvidenceID,
		AmountCents: amountCents,
		RecordedBy:  params.DecidedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("appending payment event: %w", err)
	}

	amountPaid, err := tx.SumPaymentEvents(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("folding payment ledger: %w", err)
	}

	status := order.StatusFor(amountPaid, ord.TotalCents)

	if err := tx.UpdateOrderPayment(ctx, orderID, amountPaid, status, decidedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing verification: %w", err)
	}

	return &Outcome{
		EvidenceID:         params.EvidenceID,
		Decision:           DecisionVerify,
		OrderID:            &orderID,
		VerifiedCents:      amountCents,
		NewAmountPaidCents: amountPaid,
		PaymentStatus:      status,
		DecidedAt:          decidedAt,
	}, nil
}

// dispatch runs the post-commit side effects: customer notification and
// cache invalidation. Failures here never unwind the decision.
func (s *Service) dispatch(ctx context.Context, params DecideParams, outcome *Outcome) {
	if outcome.OrderID != nil {
		template := notify.TemplatePaymentVerified
		if outcome.Decision == DecisionReject {
			template = notify.TemplatePaymentRejected
		}

		if err := s.notifier.NotifyCustomer(ctx, *outcome.OrderID, template, params.Note); err != nil {
			slog.Error("failed to notify customer",
				"order_id", *outcome.OrderID,
				"evidence_id", outcome.EvidenceID,
				"template", template,
				"error", err,
			)
			metrics.NotificationFailures.Inc()
		}
	}

	s.invalidator.Emit(invalidate.Signal{
		OrderID:  outcome.OrderID,
		QueueKey: invalidate.EvidenceQueueKey,
	})
}
