package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/productadvisor/backend/internal/domain"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Table is a parsed feed: the header row plus every data row keyed by it.
// Row order matches the source document.
type Table struct {
	Headers []string
	Records []domain.RawRecord
}

// ParseDelimited parses raw feed text as delimited tabular data. The first
// row is the header, empty lines are skipped, and rows may carry fewer cells
// than the header (missing cells read back as ""). Structural failures map
// to domain.ErrParseFailed.
func ParseDelimited(data []byte, delimiter rune) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty feed", domain.ErrParseFailed)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrParseFailed, err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	table := &Table{Headers: headers}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", domain.ErrParseFailed, err)
		}
		if isEmptyRow(row) {
			continue
		}
		table.Records = append(table.Records, rowToRecord(headers, row))
	}

	return table, nil
}

// rowToRecord keys a row's cells by header name. Cells beyond the header
// width are dropped, matching header-keyed parsing in the source feeds.
func rowToRecord(headers, row []string) domain.RawRecord {
	record := make(domain.RawRecord, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(row) {
			record[h] = row[i]
		} else {
			record[h] = ""
		}
	}
	return record
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
