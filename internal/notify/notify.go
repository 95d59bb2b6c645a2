// Package notify is the client side of the notification collaborator. The
// delivery transport (email/SMS) lives behind the collaborator's API; this
// client only enqueues.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Template selects which customer-facing message the collaborator renders.
type Template string

const (
	// TemplatePaymentVerified confirms the payment was verified, quoting
	// the operator's note when present.
	TemplatePaymentVerified Template = "payment_verified"

	// TemplatePaymentRejected explains the rejection and how to resubmit.
	TemplatePaymentRejected Template = "payment_rejected"
)

// Dispatcher posts notification requests to the notification service.
type Dispatcher struct {
	client   *http.Client
	baseURL  string
	apiToken string
}

func NewDispatcher(baseURL, apiToken string) *Dispatcher {
	return &Dispatcher{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		apiToken: apiToken,
	}
}

type notifyRequest struct {
	OrderID  uuid.UUID `json:"order_id"`
	Template Template  `json:"template"`
	Note     string    `json:"note,omitempty"`
}

// NotifyCustomer enqueues one customer notification. Callers treat this as
// fire-and-forget: an error is worth logging, never rolling back for.
func (d *Dispatcher) NotifyCustomer(ctx context.Context, orderID uuid.UUID, template Template, note string) error {
	body, err := json.Marshal(notifyRequest{
		OrderID:  orderID,
		Template: template,
		Note:     note,
	})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if d.apiToken != "" {
		req.Header.Set("Authorization", "Token "+d.apiToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatching notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	return nil
}
