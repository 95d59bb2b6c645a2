package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
	"github.com/shopfwd/shopfwd/internal/importer/flutterwave"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=importer
type Repository interface {
	ResolveOrderRefs(ctx context.Context, refs []string) (map[string]uuid.UUID, error)
	InsertGatewayTransactions(ctx context.Context, params []evidence.GatewayCreateParams) (int, error)
}

type Service struct {
	repo                Repository
	flutterwaveImporter Importer
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:                repo,
		flutterwaveImporter: flutterwave.NewParser(),
	}
}

// Result reports what an upload did. Skipped rows are transactions whose
// gateway reference was already known; re-uploading an export is harmless.
type Result struct {
	Parsed      int
	Inserted    int
	Skipped     int
	UnknownRefs []string
}

// Import parses a gateway settlement export and back-fills the gateway
// transactions it describes. Rows whose merchant reference matches no order
// are stored without one: they surface in the queue as orphaned evidence
// rather than disappearing.
func (s *Service) Import(ctx context.Context, gateway Gateway, r io.Reader) (*Result, error) {
	var imp Importer

	switch gateway {
	case GatewayFlutterwave:
		imp = s.flutterwaveImporter
	default:
		return nil, fmt.Errorf("unknown gateway: %s", gateway)
	}

	parsed, err := imp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing settlement export: %w", err)
	}

	if len(parsed) == 0 {
		return &Result{}, nil
	}

	refs := make([]string, 0, len(parsed))
	for _, p := range parsed {
		if p.OrderRef != "" {
			refs = append(refs, p.OrderRef)
		}
	}

	resolved, err := s.repo.ResolveOrderRefs(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("resolving order refs: %w", err)
	}

	result := &Result{Parsed: len(parsed)}

	params := make([]evidence.GatewayCreateParams, 0, len(parsed))

	seenUnknown := make(map[string]struct{})

	for _, p := range parsed {
		create := evidence.GatewayCreateParams{
			Reference:     p.Reference,
			Method:        p.Method,
			GatewayStatus: p.GatewayStatus,
			AmountCents:   p.AmountCents,
			SubmittedAt:   p.SubmittedAt,
		}

		if id, ok := resolved[p.OrderRef]; ok {
			orderID := id
			create.OrderID = &orderID
		} else if p.OrderRef != "" {
			if _, seen := seenUnknown[p.OrderRef]; !seen {
				seenUnknown[p.OrderRef] = struct{}{}
				result.UnknownRefs = append(result.UnknownRefs, p.OrderRef)
			}
		}

		params = append(params, create)
	}

	inserted, err := s.repo.InsertGatewayTransactions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("inserting gateway transactions: %w", err)
	}

	result.Inserted = inserted
	result.Skipped = result.Parsed - inserted

	return result, nil
}
