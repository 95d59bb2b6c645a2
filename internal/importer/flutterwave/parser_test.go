package flutterwave_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfwd/shopfwd/internal/importer/flutterwave"
)

const settlementCSV = `Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method
FLW-MOCK-01,PED-1042,"1,250.00",Successful,14/03/2026 09:30,Card
FLW-MOCK-02,PED-1043,80.50,Failed,14/03/2026 10:05,Bank Transfer
,,"1,330.50",,,
Total,,,,,
`

const transactionsCSV = `reference,tx_ref,amount,status,created_at,payment_type
FLW-TX-100,PED-2001,45.00,successful,2026-03-14 09:30:00,card
FLW-TX-101,PED-2002,120.00,pending,2026-03-14 10:15:00,mobilemoney
FLW-TX-102,PED-2003,33.00,on_hold,2026-03-14 11:00:00,ussd
`

func TestParser_Parse_SettlementExport(t *testing.T) {
	p := flutterwave.NewParser()

	txs, err := p.Parse(strings.NewReader(settlementCSV))
	require.NoError(t, err)
	require.Len(t, txs, 2, "footer rows without a reference are skipped")

	assert.Equal(t, "FLW-MOCK-01", txs[0].Reference)
	assert.Equal(t, "PED-1042", txs[0].OrderRef)
	assert.Equal(t, int64(125000), txs[0].AmountCents)
	assert.Equal(t, "completed", txs[0].GatewayStatus)
	assert.Equal(t, "card", txs[0].Method)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), txs[0].SubmittedAt)

	assert.Equal(t, "failed", txs[1].GatewayStatus)
	assert.Equal(t, int64(8050), txs[1].AmountCents)
}

func TestParser_Parse_TransactionsExport(t *testing.T) {
	p := flutterwave.NewParser()

	txs, err := p.Parse(strings.NewReader(transactionsCSV))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "completed", txs[0].GatewayStatus)
	assert.Equal(t, "pending", txs[1].GatewayStatus)

	// Unrecognized statuses pass through untouched so the queue's
	// unmapped-status alarm can see them.
	assert.Equal(t, "on_hold", txs[2].GatewayStatus)

	assert.Equal(t, time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC), txs[1].SubmittedAt)
}

func TestParser_Parse_PreambleBeforeHeader(t *testing.T) {
	csv := "Settlement report,,,,,\nGenerated 15/03/2026,,,,,\n" + settlementCSV

	p := flutterwave.NewParser()

	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestParser_Parse_DateWithoutTime(t *testing.T) {
	csv := `Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method
FLW-MOCK-03,PED-1044,10.00,Successful,14/03/2026,Card
`

	p := flutterwave.NewParser()

	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), txs[0].SubmittedAt)
}

func TestParser_Parse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "UnknownFormat",
			input:   "foo,bar,baz\n1,2,3\n",
			wantErr: "no matching Flutterwave format",
		},
		{
			name: "BadAmount",
			input: `Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method
FLW-MOCK-04,PED-1045,not-a-number,Successful,14/03/2026 09:30,Card
`,
			wantErr: "row 2",
		},
		{
			name: "BadDate",
			input: `Flw Ref,Merchant Ref,Amount Settled,Status,Transaction Date,Payment Method
FLW-MOCK-05,PED-1046,10.00,Successful,garbage,Card
`,
			wantErr: "row 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := flutterwave.NewParser()

			txs, err := p.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, txs)
		})
	}
}
