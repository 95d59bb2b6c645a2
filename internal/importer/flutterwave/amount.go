package flutterwave

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an export amount string into cents. Exports use plain
// decimal points with optional thousands commas: "1,234.56" -> 123456,
// "250" -> 25000.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	if clean == "" {
		return 0, fmt.Errorf("missing amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
