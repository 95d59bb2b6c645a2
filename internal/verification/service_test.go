package verification_test

import (
	"context"
	"errors"
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

type mocks struct {
	repo        *verification.MockRepository
	tx          *verification.MockVerifyTx
	notifier    *verification.MockNotifier
	invalidator *verification.MockInvalidator
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:        verification.NewMockRepository(ctrl),
		tx:          verification.NewMockVerifyTx(ctrl),
		notifier:    verification.NewMockNotifier(ctrl),
		invalidator: verification.NewMockInvalidator(ctrl),
	}
}

func pendingProof(orderID uuid.UUID, totalCents int64) *evidence.ProofRow {
	displayID := "PED-1042"

	return &evidence.ProofRow{
		ID:              uuid.New(),
		OrderID:         &orderID,
		OrderDisplayID:  &displayID,
		OrderTotalCents: &totalCents,
		Method:          "bank_transfer",
		Status:          evidence.StatusPending,
		SubmittedAt:     time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestService_Decide_VerifyFullPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	orderID := uuid.New()
	proof := pendingProof(orderID, 10000)

	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), proof.ID).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), proof.ID).Return(proof, nil)
	m.repo.EXPECT().BeginVerify(gomock.Any(), orderID).Return(m.tx, nil)

	m.tx.EXPECT().GetOrder(gomock.Any(), orderID).
		Return(&order.Order{ID: orderID, TotalCents: 10000, PaymentStatus: order.StatusUnpaid}, nil)
	m.tx.EXPECT().
		VerifyProof(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, write verification.DecisionWrite) error {
			assert.Equal(t, proof.ID, write.EvidenceID)
			assert.Equal(t, int64(10000), write.VerifiedCents)
			assert.Equal(t, "ops@shopfwd.dev", write.DecidedBy)

			return nil
		})
	m.tx.EXPECT().
		AppendPaymentEvent(gomock.Any(), verification.PaymentEvent{
			OrderID:     orderID,
			EvidenceID:  proof.ID,
			AmountCents: 10000,
			RecordedBy:  "ops@shopfwd.dev",
		}).
		Return(nil)
	m.tx.EXPECT().SumPaymentEvents(gomock.Any(), orderID).Return(int64(10000), nil)
	m.tx.EXPECT().
		UpdateOrderPayment(gomock.Any(), orderID, int64(10000), order.StatusPaid, gomock.Any()).
		Return(nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil)

	m.notifier.EXPECT().
		NotifyCustomer(gomock.Any(), orderID, notify.TemplatePaymentVerified, "matches bank statement").
		Return(nil)
	m.invalidator.EXPECT().Emit(gomock.Any())

	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	outcome, err := svc.Decide(context.Background(), verification.DecideParams{
		EvidenceID: proof.ID,
		Decision:   verification.DecisionVerify,
		Note:       "matches bank statement",
		DecidedBy:  "ops@shopfwd.dev",
	})
	require.NoError(t, err)

	assert.Equal(t, verification.DecisionVerify, outcome.Decision)
	assert.Equal(t, int64(10000), outcome.VerifiedCents)
	assert.Equal(t, int64(10000), outcome.NewAmountPaidCents)
	assert.Equal(t, order.StatusPaid, outcome.PaymentStatus)
}

// A second partial payment that pushes the ledger past the order total must
// land the order in overpaid, never be capped at paid.
func TestService_Decide_SecondPartialOverpays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	orderID := uuid.New()
	proof := pendingProof(orderID, 10000)
	override := int64(5000)

	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), proof.ID).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), proof.ID).Return(proof, nil)
	m.repo.EXPECT().BeginVerify(gomock.Any(), orderID).Return(m.tx, nil)

	// 6000 already on the ledger from an earlier proof.
	m.tx.EXPECT().GetOrder(gomock.Any(), orderID).
		Return(&order.Order{
			ID:              orderID,
			TotalCents:      10000,
			AmountPaidCents: 6000,
			PaymentStatus:   order.StatusPartial,
		}, nil)
	m.tx.EXPECT().VerifyProof(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().
		AppendPaymentEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event verification.PaymentEvent) error {
			assert.Equal(t, int64(5000), event.AmountCents)

			return nil
		})
	m.tx.EXPECT().SumPaymentEvents(gomock.Any(), orderID).Return(int64(11000), nil)
	m.tx.EXPECT().
		UpdateOrderPayment(gomock.Any(), orderID, int64(11000), order.StatusOverpaid, gomock.Any()).
		Return(nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil)

	m.notifier.EXPECT().
		NotifyCustomer(gomock.Any(), orderID, notify.TemplatePaymentVerified, gomock.Any()).
		Return(nil)
	m.invalidator.EXPECT().Emit(gomock.Any())

	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	outcome, err := svc.Decide(context.Background(), verification.DecideParams{
		EvidenceID:  proof.ID,
		Decision:    verification.DecisionVerify,
		DecidedBy:   "ops@shopfwd.dev",
		AmountCents: &override,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11000), outcome.NewAmountPaidCents)
	assert.Equal(t, order.StatusOverpaid, outcome.PaymentStatus)
}

func TestService_Decide_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	orderID := uuid.New()
	proof := pendingProof(orderID, 10000)

	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), proof.ID).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), proof.ID).Return(proof, nil)
	m.repo.EXPECT().
		RejectProof(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, write verification.DecisionWrite) error {
			assert.Equal(t, "screenshot is illegible", write.Note)
			assert.Zero(t, write.VerifiedCents)

			return nil
		})

	// Rejection must not open a transaction or touch the order.
	m.notifier.EXPECT().
		NotifyCustomer(gomock.Any(), orderID, notify.TemplatePaymentRejected, "screenshot is illegible").
		Return(nil)
	m.invalidator.EXPECT().Emit(gomock.Any())

	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	outcome, err := svc.Decide(context.Background(), verification.DecideParams{
		EvidenceID: proof.ID,
		Decision:   verification.DecisionReject,
		Note:       "screenshot is illegible",
		DecidedBy:  "ops@shopfwd.dev",
	})
	require.NoError(t, err)

	assert.Equal(t, verification.DecisionReject, outcome.Decision)
	assert.Zero(t, outcome.VerifiedCents)
	assert.Zero(t, outcome.NewAmountPaidCents)
}

func TestService_Decide_Errors(t *testing.T) {
	orderID := uuid.New()

	type testCase struct {
		name      string
		params    verification.DecideParams
		setupMock func(m mocks, id uuid.UUID)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "UnknownEvidenceID",
			params: verification.DecideParams{Decision: verification.DecisionVerify},
			setupMock: func(m mocks, id uuid.UUID) {
				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.Kind(""), evidence.ErrNotFound)
			},
			wantErr: evidence.ErrNotFound,
		},
		{
			name:   "GatewayTransactionIsNotDecidable",
			params: verification.DecideParams{Decision: verification.DecisionReject},
			setupMock: func(m mocks, id uuid.UUID) {
				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindGatewayTransaction, nil)
			},
			wantErr: evidence.ErrNotApplicable,
		},
		{
			name:   "AlreadyVerifiedProof",
			params: verification.DecideParams{Decision: verification.DecisionVerify},
			setupMock: func(m mocks, id uuid.UUID) {
				proof := pendingProof(orderID, 10000)
				proof.ID = id
				proof.Status = evidence.StatusVerified

				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindManualProof, nil)
				m.repo.EXPECT().GetProof(gomock.Any(), id).Return(proof, nil)
			},
			wantErr: evidence.ErrAlreadyDecided,
		},
		{
			name:   "LostRaceOnGuardedUpdate",
			params: verification.DecideParams{Decision: verification.DecisionReject},
			setupMock: func(m mocks, id uuid.UUID) {
				proof := pendingProof(orderID, 10000)
				proof.ID = id

				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindManualProof, nil)
				m.repo.EXPECT().GetProof(gomock.Any(), id).Return(proof, nil)
				m.repo.EXPECT().RejectProof(gomock.Any(), gomock.Any()).Return(evidence.ErrAlreadyDecided)
			},
			wantErr: evidence.ErrAlreadyDecided,
		},
		{
			name:   "VerifyOrphanedProof",
			params: verification.DecideParams{Decision: verification.DecisionVerify},
			setupMock: func(m mocks, id uuid.UUID) {
				proof := pendingProof(orderID, 10000)
				proof.ID = id
				proof.OrderID = nil

				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindManualProof, nil)
				m.repo.EXPECT().GetProof(gomock.Any(), id).Return(proof, nil)
			},
			wantErr: order.ErrNotFound,
		},
		{
			name:   "ConcurrentOrderWrite",
			params: verification.DecideParams{Decision: verification.DecisionVerify},
			setupMock: func(m mocks, id uuid.UUID) {
				proof := pendingProof(orderID, 10000)
				proof.ID = id

				m.repo.EXPECT().GetEvidenceKind(gomock.Any(), id).Return(evidence.KindManualProof, nil)
				m.repo.EXPECT().GetProof(gomock.Any(), id).Return(proof, nil)
				m.repo.EXPECT().BeginVerify(gomock.Any(), orderID).Return(m.tx, nil)

				m.tx.EXPECT().GetOrder(gomock.Any(), orderID).
					Return(&order.Order{ID: orderID, TotalCents: 10000}, nil)
				m.tx.EXPECT().VerifyProof(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().SumPaymentEvents(gomock.Any(), orderID).Return(int64(10000), nil)
				m.tx.EXPECT().
					UpdateOrderPayment(gomock.Any(), orderID, int64(10000), order.StatusPaid, gomock.Any()).
					Return(order.ErrConflict)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: order.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.params.EvidenceID = uuid.New()
			tt.setupMock(m, tt.params.EvidenceID)

			svc := verification.NewService(m.repo, m.notifier, m.invalidator)

			outcome, err := svc.Decide(context.Background(), tt.params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, outcome)
		})
	}
}

// A decision that committed stays committed even when the notification
// webhook is down.
func TestService_Decide_NotificationFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	orderID := uuid.New()
	proof := pendingProof(orderID, 10000)

	m.repo.EXPECT().GetEvidenceKind(gomock.Any(), proof.ID).Return(evidence.KindManualProof, nil)
	m.repo.EXPECT().GetProof(gomock.Any(), proof.ID).Return(proof, nil)
	m.repo.EXPECT().RejectProof(gomock.Any(), gomock.Any()).Return(nil)

	m.notifier.EXPECT().
		NotifyCustomer(gomock.Any(), orderID, notify.TemplatePaymentRejected, gomock.Any()).
		Return(errors.New("webhook timeout"))
	m.invalidator.EXPECT().Emit(gomock.Any())

	svc := verification.NewService(m.repo, m.notifier, m.invalidator)

	outcome, err := svc.Decide(context.Background(), verification.DecideParams{
		EvidenceID: proof.ID,
		Decision:   verification.DecisionReject,
		DecidedBy:  "ops@shopfwd.dev",
	})
	require.NoError(t, err)
	assert.Equal(t, verification.DecisionReject, outcome.Decision)
}
