package types

import (
	"io"
	"time"
)

type Gateway string

const (
	GatewayFlutterwave Gateway = "flutterwave"
)

// ParsedTransaction is one settlement-export row before order resolution.
// OrderRef carries the merchant reference exactly as the export printed it;
// mapping it to an order happens at import time.
type ParsedTransaction struct {
	Reference     string
	OrderRef      string
	Method        string
	GatewayStatus string
	AmountCents   int64
	SubmittedAt   time.Time
}

type Importer interface {
	Parse(r io.Reader) ([]ParsedTransaction, error)
}
