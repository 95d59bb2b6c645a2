package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProofColumns = `
	p.id, p.order_id, o.display_id, o.total_cents, o.customer_name, o.customer_email,
	p.method, p.label, p.file_url, p.status, p.admin_note,
	p.verified_cents, p.verified_by, p.verified_at, p.submitted_at
`

func scanProof(s scanner) (evidence.ProofRow, error) {
	var row evidence.ProofRow

	var (
		orderID       *uuid.UUID
		displayID     sql.NullString
		totalCents    sql.NullInt64
		customerName  sql.NullString
		customerEmail sql.NullString
		statusStr     string
		adminNote     sql.NullString
		verifiedCents sql.NullInt64
		verifiedBy    sql.NullString
	)

	if err := s.Scan(
		&row.ID, &orderID, &displayID, &totalCents, &customerName, &customerEmail,
		&row.Method, &row.Label, &row.FileURL, &statusStr, &adminNote,
		&verifiedCents, &verifiedBy, &row.VerifiedAt, &row.SubmittedAt,
	); err != nil {
		return row, err
	}

	row.Status = evidence.Status(statusStr)
	row.AdminNote = adminNote.String
	row.VerifiedBy = verifiedBy.String

	// An order_id pointing at a deleted order is normalized to no order at
	// all; the join columns carry the distinction.
	if orderID != nil && displayID.Valid {
		row.OrderID = orderID
		row.OrderDisplayID = &displayID.String

		if totalCents.Valid {
			total := totalCents.Int64
			row.OrderTotalCents = &total
		}

		if customerName.Valid {
			row.CustomerName = &customerName.String
		}

		if customerEmail.Valid {
			row.CustomerEmail = &customerEmail.String
		}
	}

	if verifiedCents.Valid {
		v := verifiedCents.Int64
		row.VerifiedCents = &v
	}

	return row, nil
}

func (s *Store) ListProofs(ctx context.Context, filter evidence.ListFilter) ([]evidence.ProofRow, error) {
	query := `SELECT ` + selectProofColumns + `
		FROM payment_proofs p
		LEFT JOIN orders o ON p.order_id = o.id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Method != nil {
		query += fmt.Sprintf(" AND p.method = $%d", argIdx)

		args = append(args, *filter.Method)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.submitted_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.submitted_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY p.submitted_at DESC, p.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proofs: %w", err)
	}
	defer rows.Close()

	var proofs []evidence.ProofRow

	for rows.Next() {
		row, err := scanProof(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proof: %w", err)
		}

		proofs = append(proofs, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proof rows: %w", err)
	}

	return proofs, nil
}

const selectGatewayColumns = `
	g.id, g.order_id, o.display_id, o.customer_name, o.customer_email,
	g.reference, g.method, g.gateway_status, g.amount_cents, g.submitted_at
`

func scanGateway(s scanner) (evidence.GatewayRow, error) {
	var row evidence.GatewayRow

	var (
		orderID       *uuid.UUID
		displayID     sql.NullString
		customerName  sql.NullString
		customerEmail sql.NullString
	)

	if err := s.Scan(
		&row.ID, &orderID, &displayID, &customerName, &customerEmail,
		&row.Reference, &row.Method, &row.GatewayStatus, &row.AmountCents, &row.SubmittedAt,
	); err != nil {
		return row, err
	}

	if orderID != nil && displayID.Valid {
		row.OrderID = orderID
		row.OrderDisplayID = &displayID.String

		if customerName.Valid {
			row.CustomerName = &customerName.String
		}

		if customerEmail.Valid {
			row.CustomerEmail = &customerEmail.String
		}
	}

	return row, nil
}

// gatewayStatusPredicate translates a verification-status filter into a
// predicate over the gateway's own status column, mirroring
// evidence.StatusFromGateway. Unknown gateway statuses filter as pending,
// matching how they render.
func gatewayStatusPredicate(status evidence.Status) string {
	switch status {
	case evidence.StatusVerified:
		return "g.gateway_status = 'completed'"
	case evidence.StatusRejected:
		return "g.gateway_status = 'failed'"
	default:
		return "g.gateway_status NOT IN ('completed', 'failed')"
	}
}

func (s *Store) ListGatewayTransactions(ctx context.Context, filter evidence.ListFilter) ([]evidence.GatewayRow, error) {
	query := `SELECT ` + selectGatewayColumns + `
		FROM gateway_transactions g
		LEFT JOIN orders o ON g.order_id = o.id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += " AND " + gatewayStatusPredicate(*filter.Status)
	}

	if filter.Method != nil {
		query += fmt.Sprintf(" AND g.method = $%d", argIdx)

		args = append(args, *filter.Method)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND g.submitted_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND g.submitted_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY g.submitted_at DESC, g.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing gateway transactions: %w", err)
	}
	defer rows.Close()

	var txs []evidence.GatewayRow

	for rows.Next() {
		row, err := scanGateway(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning gateway transaction: %w", err)
		}

		txs = append(txs, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gateway rows: %w", err)
	}

	return txs, nil
}

func (s *Store) CountProofStatuses(ctx context.Context) (map[evidence.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM payment_proofs
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("counting proof statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[evidence.Status]int)

	for rows.Next() {
		var (
			status string
			n      int
		)

		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning proof count: %w", err)
		}

		counts[evidence.Status(status)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proof counts: %w", err)
	}

	return counts, nil
}

func (s *Store) CountGatewayStatuses(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gateway_status, COUNT(*)
		FROM gateway_transactions
		GROUP BY gateway_status
	`)
	if err != nil {
		return nil, fmt.Errorf("counting gateway statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var (
			status string
			n      int
		)

		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning gateway count: %w", err)
		}

		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gateway counts: %w", err)
	}

	return counts, nil
}

// ResolveOrderRefs maps order display ids (as they appear in settlement
// exports) to order ids. Unknown refs are simply absent from the result.
func (s *Store) ResolveOrderRefs(ctx context.Context, refs []string) (map[string]uuid.UUID, error) {
	if len(refs) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	query := `SELECT display_id, id FROM orders WHERE display_id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, refs)
	if err != nil {
		return nil, fmt.Errorf("resolving order refs: %w", err)
	}
	defer rows.Close()

	resolved := make(map[string]uuid.UUID, len(refs))

	for rows.Next() {
		var (
			displayID string
			id        uuid.UUID
		)

		if err := rows.Scan(&displayID, &id); err != nil {
			return nil, fmt.Errorf("scanning order ref: %w", err)
		}

		resolved[displayID] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order refs: %w", err)
	}

	return resolved, nil
}

// InsertGatewayTransactions back-fills transactions from a settlement
// export. Rows whose reference is already known are skipped, so re-uploading
// the same export is harmless. Returns the number actually inserted.
func (s *Store) InsertGatewayTransactions(ctx context.Context, params []evidence.GatewayCreateParams) (int, error) {
	if len(params) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning insert tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO gateway_transactions (order_id, reference, method, gateway_status, amount_cents, submitted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (reference) DO NOTHING
	`

	inserted := 0

	for _, p := range params {
		res, err := tx.ExecContext(ctx, query,
			p.OrderID,
			p.Reference,
			p.Method,
			p.GatewayStatus,
			p.AmountCents,
			p.SubmittedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting gateway transaction %s: %w", p.Reference, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("reading rows affected: %w", err)
		}

		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing inserts: %w", err)
	}

	return inserted, nil
}
