package verification

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/order"
)

// BatchParams applies one decision with a shared note to a set of evidence
// items.
type BatchParams struct {
	EvidenceIDs []uuid.UUID
	Decision    Decision
	Note        string
	DecidedBy   string
}

// FailureReason classifies why a single item in a batch could not be decided.
type FailureReason string

const (
	ReasonNotFound       FailureReason = "not_found"
	ReasonAlreadyDecided FailureReason = "already_decided"
	ReasonNotApplicable  FailureReason = "not_applicable"
	ReasonOrderNotFound  FailureReason = "order_not_found"
	ReasonOrderConflict  FailureReason = "order_conflict"
	ReasonInternal       FailureReason = "internal"
)

// ItemFailure is one failed item with its reason.
type ItemFailure struct {
	EvidenceID uuid.UUID
	Reason     FailureReason
	Message    string
}

// BatchOutcome distinguishes fully-, partially- and not-at-all applied
// batches, so callers never report a bare pass/fail.
type BatchOutcome string

const (
	BatchAllSucceeded       BatchOutcome = "all_succeeded"
	BatchPartiallySucceeded BatchOutcome = "partially_succeeded"
	BatchAllFailed          BatchOutcome = "all_failed"
)

// BatchSummary is the aggregate result of a batch decision.
type BatchSummary struct {
	Requested int
	Succeeded int
	Failed    int
	Outcome   BatchOutcome
	Failures  []ItemFailure
	Applied   []*Outcome
}

// DecideBatch drives Decide over each evidence id independently. A failing
// item records its reason and never aborts its siblings; items in one batch
// may reference different orders with independent failure modes. An empty
// batch has nothing to fail and reports all_succeeded with zero counts;
// callers that consider an empty batch an error reject it before calling.
func (s *Service) DecideBatch(ctx context.Context, params BatchParams) *BatchSummary {
	summary := &BatchSummary{Requested: len(params.EvidenceIDs)}

	for _, id := range params.EvidenceIDs {
		outcome, err := s.Decide(ctx, DecideParams{
			EvidenceID: id,
			Decision:   params.Decision,
			Note:       params.Note,
			DecidedBy:  params.DecidedBy,
		})
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, ItemFailure{
				EvidenceID: id,
				Reason:     failureReason(err),
				Message:    err.Error(),
			})

			continue
		}

		summary.Succeeded++
		summary.Applied = append(summary.Applied, outcome)
	}

	switch {
	case summary.Failed == 0:
		summary.Outcome = BatchAllSucceeded
	case summary.Succeeded == 0:
		summary.Outcome = BatchAllFailed
	default:
		summary.Outcome = BatchPartiallySucceeded
	}

	return summary
}

func failureReason(err error) FailureReason {
	switch {
	case errors.Is(err, evidence.ErrAlreadyDecided):
		return ReasonAlreadyDecided
	case errors.Is(err, evidence.ErrNotApplicable):
		return ReasonNotApplicable
	case errors.Is(err, evidence.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, order.ErrNotFound):
		return ReasonOrderNotFound
	case errors.Is(err, order.ErrConflict):
		return ReasonOrderConflict
	default:
		return ReasonInternal
	}
}
