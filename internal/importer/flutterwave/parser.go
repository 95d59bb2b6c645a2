package flutterwave

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/shopfwd/shopfwd/internal/encoding"
	"github.com/shopfwd/shopfwd/internal/importer/types"
)

// Parser reads Flutterwave CSV exports and produces gateway transaction
// rows. It auto-detects which export format (dashboard transactions list or
// settlement report) is being used by matching column headers against known
// profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]types.ParsedTransaction, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching Flutterwave format found: expected transactions or settlement columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for
// error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]types.ParsedTransaction, error) {
	var txs []types.ParsedTransaction

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based file position

		ref := cellValue(row, cols[p.RefCol])
		if ref == "" {
			// Footer and summary rows carry no reference.
			continue
		}

		date, err := parseDate(p, row, cols[p.DateCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		amountCents, err := parseAmount(cellValue(row, cols[p.AmountCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		method := ""
		if idx, ok := cols[p.MethodCol]; ok {
			method = strings.ToLower(cellValue(row, idx))
		}

		txs = append(txs, types.ParsedTransaction{
			Reference:     ref,
			OrderRef:      cellValue(row, cols[p.OrderCol]),
			Method:        method,
			GatewayStatus: normalizeStatus(cellValue(row, cols[p.StatusCol])),
			AmountCents:   amountCents,
			SubmittedAt:   date,
		})
	}

	return txs, nil
}

// normalizeStatus maps export status spellings onto the stored gateway
// status vocabulary. Values this function does not recognize are stored
// as-is: they will trip the unmapped-status alarm downstream, which is
// exactly where schema drift should surface.
func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "successful", "success", "completed":
		return "completed"
	case "failed", "reversed":
		return "failed"
	case "pending":
		return "pending"
	case "processing":
		return "processing"
	}

	return strings.ToLower(strings.TrimSpace(s))
}

func parseDate(p *Profile, row []string, idx int) (time.Time, error) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}

	t, err := time.Parse(p.DateLayout, s)
	if err != nil {
		// Some exports drop the time component.
		short := strings.SplitN(p.DateLayout, " ", 2)[0]
		if t2, err2 := time.Parse(short, s); err2 == nil {
			return t2, nil
		}

		return time.Time{}, fmt.Errorf("bad date %q: %w", s, err)
	}

	return t, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
