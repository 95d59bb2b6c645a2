package evidence_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/metrics"
)

func proofRow(displayID string, submitted time.Time) evidence.ProofRow {
	orderID := uuid.New()
	total := int64(10000)

	return evidence.ProofRow{
		ID:              uuid.New(),
		OrderID:         &orderID,
		OrderDisplayID:  &displayID,
		OrderTotalCents: &total,
		Method:          "bank_transfer",
		Status:          evidence.StatusPending,
		SubmittedAt:     submitted,
	}
}

func gatewayRow(reference string, submitted time.Time) evidence.GatewayRow {
	orderID := uuid.New()
	displayID := "PED-" + reference

	return evidence.GatewayRow{
		ID:             uuid.New(),
		OrderID:        &orderID,
		OrderDisplayID: &displayID,
		Reference:      reference,
		Method:         "card",
		GatewayStatus:  "completed",
		AmountCents:    5000,
		SubmittedAt:    submitted,
	}
}

func TestService_Query(t *testing.T) {
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    evidence.QueryParams
		setupMock func(m *evidence.MockRepository)
		check     func(t *testing.T, page *evidence.Page)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "MergesBothKindsNewestFirst",
			params: evidence.QueryParams{},
			setupMock: func(m *evidence.MockRepository) {
				m.EXPECT().
					ListProofs(gomock.Any(), evidence.ListFilter{}).
					Return([]evidence.ProofRow{
						proofRow("PED-1", base.Add(-2*time.Hour)),
						proofRow("PED-2", base),
					}, nil)
				m.EXPECT().
					ListGatewayTransactions(gomock.Any(), evidence.ListFilter{}).
					Return([]evidence.GatewayRow{
						gatewayRow("FLW-1", base.Add(-time.Hour)),
					}, nil)
			},
			check: func(t *testing.T, page *evidence.Page) {
				require.Len(t, page.Items, 3)
				assert.Equal(t, evidence.KindManualProof, page.Items[0].Kind)
				assert.Equal(t, "PED-2", page.Items[0].OrderDisplayID)
				assert.Equal(t, evidence.KindGatewayTransaction, page.Items[1].Kind)
				assert.Equal(t, "PED-1", page.Items[2].OrderDisplayID)
			},
		},
		{
			name:   "SearchSpansBothKinds",
			params: evidence.QueryParams{Search: "flw-7"},
			setupMock: func(m *evidence.MockRepository) {
				m.EXPECT().
					ListProofs(gomock.Any(), gomock.Any()).
					Return([]evidence.ProofRow{proofRow("PED-1", base)}, nil)
				m.EXPECT().
					ListGatewayTransactions(gomock.Any(), gomock.Any()).
					Return([]evidence.GatewayRow{
						gatewayRow("FLW-7", base.Add(-time.Hour)),
						gatewayRow("FLW-8", base.Add(-2*time.Hour)),
					}, nil)
			},
			check: func(t *testing.T, page *evidence.Page) {
				require.Len(t, page.Items, 1)
				assert.Equal(t, "FLW-7", page.Items[0].Label)
				assert.Equal(t, 1, page.TotalCount)
			},
		},
		{
			name:   "SearchCountsBeforePagination",
			params: evidence.QueryParams{Search: "ped", PageSize: 2, Page: 1},
			setupMock: func(m *evidence.MockRepository) {
				m.EXPECT().
					ListProofs(gomock.Any(), gomock.Any()).
					Return([]evidence.ProofRow{
						proofRow("PED-1", base),
						proofRow("PED-2", base.Add(-time.Hour)),
						proofRow("PED-3", base.Add(-2*time.Hour)),
					}, nil)
				m.EXPECT().
					ListGatewayTransactions(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			check: func(t *testing.T, page *evidence.Page) {
				assert.Len(t, page.Items, 2)
				assert.Equal(t, 3, page.TotalCount)
				assert.Equal(t, 2, page.TotalPages)
			},
		},
		{
			name:   "RepoError",
			params: evidence.QueryParams{},
			setupMock: func(m *evidence.MockRepository) {
				m.EXPECT().
					ListProofs(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := evidence.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := evidence.NewService(repo)
			page, err := svc.Query(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, page)

				return
			}

			require.NoError(t, err)
			tt.check(t, page)
		})
	}
}

// TestService_Query_PaginationCoversAllItems walks every page of a filtered
// set and checks the concatenation has no duplicates and no gaps, including
// across items sharing one timestamp.
func TestService_Query_PaginationCoversAllItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	var proofs []evidence.ProofRow

	var gateways []evidence.GatewayRow

	// 13 proofs and 12 gateway transactions; several share timestamps so
	// ordering has to fall back to ids.
	for i := 0; i < 13; i++ {
		proofs = append(proofs, proofRow(fmt.Sprintf("PED-%d", i), base.Add(-time.Duration(i/2)*time.Hour)))
	}

	for i := 0; i < 12; i++ {
		gateways = append(gateways, gatewayRow(fmt.Sprintf("FLW-%d", i), base.Add(-time.Duration(i/3)*time.Hour)))
	}

	const (
		totalItems = 25
		pageSize   = 4
	)

	repo := evidence.NewMockRepository(ctrl)
	repo.EXPECT().ListProofs(gomock.Any(), gomock.Any()).Return(proofs, nil).AnyTimes()
	repo.EXPECT().ListGatewayTransactions(gomock.Any(), gomock.Any()).Return(gateways, nil).AnyTimes()

	svc := evidence.NewService(repo)

	seen := make(map[uuid.UUID]struct{})

	var all []evidence.Evidence

	page := 1
	for {
		result, err := svc.Query(context.Background(), evidence.QueryParams{Page: page, PageSize: pageSize})
		require.NoError(t, err)
		assert.Equal(t, totalItems, result.TotalCount)
		assert.Equal(t, 7, result.TotalPages)

		for _, ev := range result.Items {
			_, dup := seen[ev.ID]
			require.False(t, dup, "item %s appeared twice", ev.ID)

			seen[ev.ID] = struct{}{}

			all = append(all, ev)
		}

		if page >= result.TotalPages {
			break
		}

		page++
	}

	require.Len(t, all, totalItems)

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.SubmittedAt.Equal(cur.SubmittedAt) {
			assert.Less(t, prev.ID.String(), cur.ID.String())
			continue
		}

		assert.True(t, prev.SubmittedAt.After(cur.SubmittedAt))
	}
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alarmBefore := testutil.ToFloat64(metrics.UnmappedGatewayStatus)

	repo := evidence.NewMockRepository(ctrl)
	repo.EXPECT().
		CountProofStatuses(gomock.Any()).
		Return(map[evidence.Status]int{
			evidence.StatusPending:  4,
			evidence.StatusVerified: 2,
			evidence.StatusRejected: 1,
		}, nil)
	repo.EXPECT().
		CountGatewayStatuses(gomock.Any()).
		Return(map[string]int{
			"completed":  5,
			"failed":     2,
			"processing": 3,
			"on_hold":    1, // unmapped, counts as pending
		}, nil)

	svc := evidence.NewService(repo)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 18, stats.Total)
	assert.Equal(t, 8, stats.Pending)
	assert.Equal(t, 7, stats.Verified)
	assert.Equal(t, 3, stats.Rejected)

	assert.Equal(t, alarmBefore+1, testutil.ToFloat64(metrics.UnmappedGatewayStatus),
		"the unmapped status must trip the alarm here too, not just in Query")
}
