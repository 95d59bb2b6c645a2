package evidence

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopfwd/shopfwd/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=evidence
type Repository interface {
	ListProofs(ctx context.Context, filter ListFilter) ([]ProofRow, error)
	ListGatewayTransactions(ctx context.Context, filter ListFilter) ([]GatewayRow, error)

	CountProofStatuses(ctx context.Context) (map[Status]int, error)
	CountGatewayStatuses(ctx context.Context) (map[string]int, error)

	InsertGatewayTransactions(ctx context.Context, params []GatewayCreateParams) (int, error)
}

// ListFilter is the portion of a query that is pushed down to the store.
// Free-text search is not part of it: search spans fields that live in
// different source tables and is applied after fetch, over the full
// filtered union, so pagination stays exact.
type ListFilter struct {
	Status    *Status
	Method    *string
	StartDate *time.Time
	EndDate   *time.Time
}

// QueryParams describes one evidence-queue page request.
type QueryParams struct {
	Status    *Status // nil means all
	Method    *string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int // 1-based
	PageSize  int
}

// Page is one page of the merged evidence queue.
type Page struct {
	Items      []Evidence
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// Stats are queue-wide counts over both evidence kinds, independent of any
// search or pagination.
type Stats struct {
	Total    int
	Pending  int
	Verified int
	Rejected int
}

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query merges both evidence kinds into a single queue page. Status, method
// and date filters are applied to each source before merging; the merged set
// is searched, sorted newest-first and only then paginated, so a page never
// mixes filter states and the page count is exact.
func (s *Service) Query(ctx context.Context, params QueryParams) (*Page, error) {
	filter := ListFilter{
		Status:    params.Status,
		Method:    params.Method,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}

	proofs, err := s.repo.ListProofs(ctx, filter)
	if err != nil {
		return nil, err
	}

	gateways, err := s.repo.ListGatewayTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	merged := make([]Evidence, 0, len(proofs)+len(gateways))

	for _, row := range proofs {
		merged = append(merged, FromProof(row))
	}

	for _, row := range gateways {
		ev, known := FromGateway(row)
		if !known {
			slog.Error("unmapped gateway status",
				"transaction_id", row.ID,
				"gateway_status", row.GatewayStatus,
			)
			metrics.UnmappedGatewayStatus.Inc()
		}

		merged = append(merged, ev)
	}

	if q := strings.TrimSpace(params.Search); q != "" {
		merged = search(merged, q)
	}

	sortEvidence(merged)

	return paginate(merged, params.Page, params.PageSize), nil
}

// Stats counts the full evidence universe by verification status. Gateway
// statuses are grouped in the store and mapped here; unknown values count as
// pending, consistent with how they are rendered.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	proofCounts, err := s.repo.CountProofStatuses(ctx)
	if err != nil {
		return nil, err
	}

	gatewayCounts, err := s.repo.CountGatewayStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var st Stats

	for status, n := range proofCounts {
		st.add(status, n)
	}

	for gatewayStatus, n := range gatewayCounts {
		status, known := StatusFromGateway(gatewayStatus)
		if !known {
			slog.Error("unmapped gateway status in stats", "gateway_status", gatewayStatus, "count", n)
			metrics.UnmappedGatewayStatus.Inc()
		}

		st.add(status, n)
	}

	return &st, nil
}

func (st *Stats) add(status Status, n int) {
	st.Total += n

	switch status {
	case StatusPending:
		st.Pending += n
	case StatusVerified:
		st.Verified += n
	case StatusRejected:
		st.Rejected += n
	}
}

// search keeps items where any display field contains the query,
// case-insensitive.
func search(items []Evidence, query string) []Evidence {
	q := strings.ToLower(query)

	matched := items[:0:0]

	for _, ev := range items {
		if matchesSearch(ev, q) {
			matched = append(matched, ev)
		}
	}

	return matched
}

func matchesSearch(ev Evidence, q string) bool {
	for _, field := range []string{
		ev.OrderDisplayID,
		ev.CustomerName,
		ev.CustomerEmail,
		ev.Label,
		ev.ID.String(),
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

// sortEvidence orders newest-first; ties on the timestamp fall back to the
// id so pagination is stable across requests.
func sortEvidence(items []Evidence) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].SubmittedAt.Equal(items[j].SubmittedAt) {
			return items[i].SubmittedAt.After(items[j].SubmittedAt)
		}

		return items[i].ID.String() < items[j].ID.String()
	})
}

func paginate(items []Evidence, page, pageSize int) *Page {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return &Page{
		Items:      items[start:end],
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}
