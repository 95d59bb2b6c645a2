package evidence

// orphanPlaceholder is shown wherever an order join came back empty.
const orphanPlaceholder = "(order removed)"

// StatusFromGateway maps a gateway's own status value onto a verification
// status. The mapping is total: every input yields exactly one status. The
// boolean reports whether the input was a known value; unknown values fall
// back to Pending so the item stays visible in the queue instead of being
// silently misclassified.
func StatusFromGateway(gatewayStatus string) (Status, bool) {
	switch gatewayStatus {
	case "completed":
		return StatusVerified, true
	case "failed":
		return StatusRejected, true
	case "pending", "processing":
		return StatusPending, true
	}

	return StatusPending, false
}

// FromProof projects a raw manual-proof row into canonical evidence.
// A proof whose order is gone is flagged orphaned and rendered with
// placeholders rather than dropped.
func FromProof(row ProofRow) Evidence {
	ev := Evidence{
		ID:            row.ID,
		Kind:          KindManualProof,
		OrderID:       row.OrderID,
		Method:        row.Method,
		Label:         row.Label,
		Status:        row.Status,
		VerifiedCents: row.VerifiedCents,
		AdminNote:     row.AdminNote,
		VerifiedBy:    row.VerifiedBy,
		VerifiedAt:    row.VerifiedAt,
		SubmittedAt:   row.SubmittedAt,
	}

	if row.OrderID == nil || row.OrderDisplayID == nil {
		ev.OrderID = nil
		ev.Orphaned = true
		ev.OrderDisplayID = orphanPlaceholder

		return ev
	}

	ev.OrderDisplayID = *row.OrderDisplayID

	if row.CustomerName != nil {
		ev.CustomerName = *row.CustomerName
	}

	if row.CustomerEmail != nil {
		ev.CustomerEmail = *row.CustomerEmail
	}

	// A manual proof asserts settlement of the full order total unless a
	// distinct verified amount was recorded at decision time.
	if row.OrderTotalCents != nil {
		ev.ClaimedCents = *row.OrderTotalCents
	}

	return ev
}

// FromGateway projects a raw gateway-transaction row into canonical evidence.
// The verification status is recomputed from the gateway status on every read
// and is never operator-mutable. The boolean mirrors StatusFromGateway.
func FromGateway(row GatewayRow) (Evidence, bool) {
	status, known := StatusFromGateway(row.GatewayStatus)

	ev := Evidence{
		ID:           row.ID,
		Kind:         KindGatewayTransaction,
		OrderID:      row.OrderID,
		Method:       row.Method,
		Label:        row.Reference,
		Status:       status,
		ClaimedCents: row.AmountCents,
		SubmittedAt:  row.SubmittedAt,
	}

	if row.OrderID == nil || row.OrderDisplayID == nil {
		ev.OrderID = nil
		ev.Orphaned = true
		ev.OrderDisplayID = orphanPlaceholder

		return ev, known
	}

	ev.OrderDisplayID = *row.OrderDisplayID

	if row.CustomerName != nil {
		ev.CustomerName = *row.CustomerName
	}

	if row.CustomerEmail != nil {
		ev.CustomerEmail = *row.CustomerEmail
	}

	return ev, known
}
