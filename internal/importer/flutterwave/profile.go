package flutterwave

// Profile describes the column layout of a Flutterwave export format.
// The dashboard and the settlement API produce different headers for the
// same data; adding a format is adding a Profile to the profiles slice.
type Profile struct {
	Name       string
	RefCol     string
	OrderCol   string
	AmountCol  string
	StatusCol  string
	DateCol    string
	DateLayout string
	MethodCol  string // optional
}

// requiredCols returns the columns that must all be present for this
// profile to match a header row.
func (p Profile) requiredCols() []string {
	return []string{p.RefCol, p.OrderCol, p.AmountCol, p.StatusCol, p.DateCol}
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first.
var profiles = []Profile{
	{
		Name:       "settlement",
		RefCol:     "Flw Ref",
		OrderCol:   "Merchant Ref",
		AmountCol:  "Amount Settled",
		StatusCol:  "Status",
		DateCol:    "Transaction Date",
		DateLayout: "02/01/2006 15:04",
		MethodCol:  "Payment Method",
	},
	{
		Name:       "transactions",
		RefCol:     "reference",
		OrderCol:   "tx_ref",
		AmountCol:  "amount",
		StatusCol:  "status",
		DateCol:    "created_at",
		DateLayout: "2006-01-02 15:04:05",
		MethodCol:  "payment_type",
	},
}
