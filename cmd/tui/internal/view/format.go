package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders cents as a grouped decimal amount ("1,250.00"), the
// same shape the gateway exports use.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder

	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteByte(whole[i])
	}

	return fmt.Sprintf("%s%s.%02d", sign, b.String(), cents%100)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
