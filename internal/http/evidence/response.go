package evidence

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopfwd/shopfwd/internal/evidence"
)

type evidenceResponse struct {
	ID             uuid.UUID       `json:"id"`
	Kind           evidence.Kind   `json:"kind"`
	OrderID        *uuid.UUID      `json:"order_id,omitempty"`
	OrderDisplayID string          `json:"order_display_id"`
	CustomerName   string          `json:"customer_name,omitempty"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	Method         string          `json:"method,omitempty"`
	Label          string          `json:"label,omitempty"`
	Status         evidence.Status `json:"status"`
	ClaimedCents   int64           `json:"claimed_cents"`
	VerifiedCents  *int64          `json:"verified_cents,omitempty"`
	AdminNote      string          `json:"admin_note,omitempty"`
	VerifiedBy     string          `json:"verified_by,omitempty"`
	VerifiedAt     *time.Time      `json:"verified_at,omitempty"`
	SubmittedAt    time.Time       `json:"submitted_at"`
	Orphaned       bool            `json:"orphaned,omitempty"`
}

type pageResponse struct {
	Items      []evidenceResponse `json:"items"`
	TotalCount int                `json:"total_count"`
	TotalPages int                `json:"total_pages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}

func toResponse(ev evidence.Evidence) evidenceResponse {
	return evidenceResponse{
		ID:             ev.ID,
		Kind:           ev.Kind,
		OrderID:        ev.OrderID,
		OrderDisplayID: ev.OrderDisplayID,
		CustomerName:   ev.CustomerName,
		CustomerEmail:  ev.CustomerEmail,
		Method:         ev.Method,
		Label:          ev.Label,
		Status:         ev.Status,
		ClaimedCents:   ev.ClaimedCents,
		VerifiedCents:  ev.VerifiedCents,
		AdminNote:      ev.AdminNote,
		VerifiedBy:     ev.VerifiedBy,
		VerifiedAt:     ev.VerifiedAt,
		SubmittedAt:    ev.SubmittedAt,
		Orphaned:       ev.Orphaned,
	}
}

func toPageResponse(page *evidence.Page) pageResponse {
	items := make([]evidenceResponse, len(page.Items))
	for i, ev := range page.Items {
		items[i] = toResponse(ev)
	}

	return pageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
