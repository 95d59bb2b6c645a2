package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/order"
	"github.com/shopfwd/shopfwd/internal/verification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetEvidenceKind resolves which source table holds the given id. Proofs are
// probed first; decisions only ever apply to them.
func (s *Store) GetEvidenceKind(ctx context.Context, id uuid.UUID) (evidence.Kind, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_proofs WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("probing payment proofs: %w", err)
	}

	if exists {
		return evidence.KindManualProof, nil
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM gateway_transactions WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("probing gateway transactions: %w", err)
	}

	if exists {
		return evidence.KindGatewayTransaction, nil
	}

	return "", evidence.ErrNotFound
}

func (s *Store) GetProof(ctx context.Context, id uuid.UUID) (*evidence.ProofRow, error) {
	query := `
		SELECT p.id, p.order_id, o.display_id, o.total_cents, o.customer_name, o.customer_email,
		       p.method, p.label, p.file_url, p.status, p.admin_note,
		       p.verified_cents, p.verified_by, p.verified_at, p.submitted_at
		FROM payment_proofs p
		LEFT JOIN orders o ON p.order_id = o.id
		WHERE p.id = $1
	`

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

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID, &orderID, &displayID, &totalCents, &customerName, &customerEmail,
		&row.Method, &row.Label, &row.FileURL, &statusStr, &adminNote,
		&verifiedCents, &verifiedBy, &row.VerifiedAt, &row.SubmittedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, evidence.ErrNotFound
		}

		return nil, fmt.Errorf("getting proof: %w", err)
	}

	row.Status = evidence.Status(statusStr)
	row.AdminNote = adminNote.String
	row.VerifiedBy = verifiedBy.String

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

	return &row, nil
}

// decideProof applies a guarded status transition away from Pending. The
// WHERE clause is what enforces terminality: zero rows affected means the
// proof was either gone or already decided, and the follow-up probe tells
// the two apart.
func decideProof(ctx context.Context, ex execer, params verification.DecisionWrite, status evidence.Status, verifiedCents *int64) error {
	query := `
		UPDATE payment_proofs
		SET status = $1, admin_note = $2, verified_cents = $3, verified_by = $4, verified_at = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
	`

	res, err := ex.ExecContext(ctx, query,
		status,
		params.Note,
		verifiedCents,
		params.DecidedBy,
		params.DecidedAt,
		params.EvidenceID,
		evidence.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("deciding proof: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if affected == 0 {
		var exists bool

		err := ex.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM payment_proofs WHERE id = $1)`, params.EvidenceID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("probing proof: %w", err)
		}

		if !exists {
			return evidence.ErrNotFound
		}

		return evidence.ErrAlreadyDecided
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) RejectProof(ctx context.Context, params verification.DecisionWrite) error {
	return decideProof(ctx, s.db, params, evidence.StatusRejected, nil)
}

// orderLockKey hashes the order id into an advisory lock key so that
// concurrent verifications against the same order serialize their
// read-modify-write of the payment fields.
func orderLockKey(orderID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(orderID[:])

	return int64(h.Sum64())
}

type verifyTx struct {
	tx *sql.Tx
}

func (s *Store) BeginVerify(ctx context.Context, orderID uuid.UUID) (verification.VerifyTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning verify tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", orderLockKey(orderID)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring order lock: %w", err)
	}

	return &verifyTx{tx: tx}, nil
}

func (t *verifyTx) Commit() error   { return t.tx.Commit() }
func (t *verifyTx) Rollback() error { return t.tx.Rollback() }

func (t *verifyTx) GetOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	query := `
		SELECT id, display_id, customer_name, customer_email, currency,
		       total_cents, amount_paid_cents, payment_status, paid_at, created_at
		FROM orders
		WHERE id = $1
	`

	var (
		ord       order.Order
		statusStr string
	)

	err := t.tx.QueryRowContext(ctx, query, orderID).Scan(
		&ord.ID, &ord.DisplayID, &ord.CustomerName, &ord.CustomerEmail, &ord.Currency,
		&ord.TotalCents, &ord.AmountPaidCents, &statusStr, &ord.PaidAt, &ord.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	ord.PaymentStatus = order.PaymentStatus(statusStr)

	return &ord, nil
}

func (t *verifyTx) VerifyProof(ctx context.Context, params verification.DecisionWrite) error {
	return decideProof(ctx, t.tx, params, evidence.StatusVerified, &params.VerifiedCents)
}

func (t *verifyTx) AppendPaymentEvent(ctx context.Context, event verification.PaymentEvent) error {
	query := `
		INSERT INTO payment_events (order_id, evidence_id, amount_cents, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := t.tx.ExecContext(ctx, query,
		event.OrderID,
		event.EvidenceID,
		event.AmountCents,
		event.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("appending payment event: %w", err)
	}

	return nil
}

func (t *verifyTx) SumPaymentEvents(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var sum int64

	err := t.tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payment_events WHERE order_id = $1`, orderID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing payment events: %w", err)
	}

	return sum, nil
}

func (t *verifyTx) UpdateOrderPayment(ctx context.Context, orderID uuid.UUID, amountPaidCents int64, status order.PaymentStatus, paidAt time.Time) error {
	query := `
		UPDATE orders
		SET amount_paid_cents = $1, payment_status = $2, paid_at = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := t.tx.ExecContext(ctx, query, amountPaidCents, status, paidAt, orderID)
	if err != nil {
		return fmt.Errorf("updating order payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}
