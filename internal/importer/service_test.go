package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/importer"
)

const settlementCSV = `Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method
FLW-MOCK-01,PED-1042,100.00,Successful,14/03/2026 09:30,Card
FLW-MOCK-02,PED-1043,80.50,Failed,14/03/2026 10:05,Bank Transfer
FLW-MOCK-03,PED-9999,25.00,Successful,14/03/2026 11:00,Card
FLW-MOCK-04,PED-9999,12.00,Pending,14/03/2026 11:30,Card
`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order1042 := uuid.New()
	order1043 := uuid.New()

	repo := importer.NewMockRepository(ctrl)
	repo.EXPECT().
		ResolveOrderRefs(gomock.Any(), []string{"PED-1042", "PED-1043", "PED-9999", "PED-9999"}).
		Return(map[string]uuid.UUID{
			"PED-1042": order1042,
			"PED-1043": order1043,
		}, nil)
	repo.EXPECT().
		InsertGatewayTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params []evidence.GatewayCreateParams) (int, error) {
			require.Len(t, params, 4)

			assert.Equal(t, "FLW-MOCK-01", params[0].Reference)
			require.NotNil(t, params[0].OrderID)
			assert.Equal(t, order1042, *params[0].OrderID)
			assert.Equal(t, int64(10000), params[0].AmountCents)
			assert.Equal(t, "completed", params[0].GatewayStatus)

			// Rows with no matching order are kept, just unattached.
			assert.Nil(t, params[2].OrderID)
			assert.Nil(t, params[3].OrderID)

			// One row was already known from a previous upload.
			return 3, nil
		})

	svc := importer.NewService(repo)

	result, err := svc.Import(context.Background(), importer.GatewayFlutterwave, strings.NewReader(settlementCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Parsed)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"PED-9999"}, result.UnknownRefs, "unknown refs are reported once")
}

func TestService_Import_UnknownGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := importer.NewMockRepository(ctrl)
	svc := importer.NewService(repo)

	result, err := svc.Import(context.Background(), importer.Gateway("paystack"), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gateway")
	assert.Nil(t, result)
}

func TestService_Import_EmptyExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method\n"

	repo := importer.NewMockRepository(ctrl)
	svc := importer.NewService(repo)

	result, err := svc.Import(context.Background(), importer.GatewayFlutterwave, strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, result.Parsed)
	assert.Zero(t, result.Inserted)
}
