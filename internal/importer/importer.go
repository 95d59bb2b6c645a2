package importer

import (
	"github.com/shopfwd/shopfwd/internal/importer/types"
)

type Gateway = types.Gateway

const (
	GatewayFlutterwave = types.GatewayFlutterwave
)

// ParsedTransaction is one settlement-export row before order resolution.
// OrderRef carries the merchant reference exactly as the export printed it;
// mapping it to an order happens at import time.
type ParsedTransaction = types.ParsedTransaction

type Importer = types.Importer
