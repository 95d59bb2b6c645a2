package verification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/notify"
	"github.com/shopfwd/shopfwd/internal/order"
	"github.com/shopfwd/shopfwd/internal/verification"
)

// expectVerify wires the full happy path for one evidence id: a proof over
// its own order, verified for the full total.
func expectVerify(m mocks, id, orderID uuid.UUID) {
	displayID := "PED-" + id.String()[:8]
	total := int64(10000)

	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), id).Return(&evidence.ProofRow{
		ID:              id,
		OrderID:         &orderID,
		OrderDisplayID:  &displayID,
		OrderTotalCents: &total,
		Status:          evidence.StatusPending,
		SubmittedAt:     time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}, nil)
	m.repo.EXPECT().BeginVerify(gomock.Any(), orderID).Return(m.tx, nil)

	m.tx.EXPECT().GetOrder(gomock.Any(), orderID).
		Return(&order.Order{ID: orderID, TotalCents: total}, nil)
	m.tx.EXPECT().VerifyProof(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().SumPaymentEvents(gomock.Any(), orderID).Return(total, nil)
	m.tx.EXPECT().
		UpdateOrderPayment(gomock.Any(), orderID, total, order.StatusPaid, gomock.Any()).
		Return(nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil)

	m.notifier.EXPECT().
		NotifyCustomer(gomock.Any(), orderID, notify.TemplatePaymentVerified, gomock.Any()).
		Return(nil)
	m.invalidator.EXPECT().Emit(gomock.Any())
}

// One sour item in a batch must not abort its siblings: the batch reports
// N-1 successes plus the one classified failure.
func TestService_DecideBatch_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	expectVerify(m, ids[0], uuid.New())

	// ids[1] was decided by another operator between page load and submit.
	decidedOrder := uuid.New()
	decidedDisplay := "PED-9001"
	decidedTotal := int64(2500)
	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), ids[1]).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), ids[1]).Return(&evidence.ProofRow{
		ID:              ids[1],
		OrderID:         &decidedOrder,
		OrderDisplayID:  &decidedDisplay,
		OrderTotalCents: &decidedTotal,
		Status:          evidence.StatusRejected,
	}, nil)

	expectVerify(m, ids[2], uuid.New())

	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	summary := svc.DecideBatch(context.Background(), verification.BatchParams{
		EvidenceIDs: ids,
		Decision:    verification.DecisionVerify,
		DecidedBy:   "ops@shopfwd.dev",
	})

	assert.Equal(t, 3, summary.Requested)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, verification.BatchPartiallySucceeded, summary.Outcome)

	require.Len(t, summary.Failures, 1)
	assert.Equal(t, ids[1], summary.Failures[0].EvidenceID)
	assert.Equal(t, verification.ReasonAlreadyDecided, summary.Failures[0].Reason)

	require.Len(t, summary.Applied, 2)
	assert.Equal(t, ids[0], summary.Applied[0].EvidenceID)
	assert.Equal(t, ids[2], summary.Applied[1].EvidenceID)
}

func TestService_DecideBatch_OutcomeClassification(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m mocks, ids []uuid.UUID)
		want      verification.BatchOutcome
	}

	tests := []testCase{
		{
			name: "AllSucceeded",
			setupMock: func(m mocks, ids []uuid.UUID) {
				for _, id := range ids {
					expectVerify(m, id, uuid.New())
				}
			},
			want: verification.BatchAllSucceeded,
		},
		{
			name: "AllFailed",
			setupMock: func(m mocks, ids []uuid.UUID) {
				for _, id := range ids {
					m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).
						Return(evidence.Kind(""), evidence.ErrNotFound)
				}
			},
			want: verification.BatchAllFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			ids := []uuid.UUID{uuid.New(), uuid.New()}
			tt.setupMock(m, ids)

			svc := verification.NewService(m.repo, m.notifier, m.invalidator)

			summary := svc.DecideBatch(context.Background(), verification.BatchParams{
				EvidenceIDs: ids,
				Decision:    verification.DecisionVerify,
				DecidedBy:   "ops@shopfwd.dev",
			})
			assert.Equal(t, tt.want, summary.Outcome)
		})
	}
}

func TestService_DecideBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	summary := svc.DecideBatch(context.Background(), verification.BatchParams{
		Decision:  verification.DecisionVerify,
		DecidedBy: "ops@shopfwd.dev",
	})

	assert.Equal(t, 0, summary.Requested)
	assert.Equal(t, verification.BatchAllSucceeded, summary.Outcome)
	assert.Empty(t, summary.Failures)
}
