package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/productadvisor/backend/internal/domain"
)

// zipMagic is the leading signature of an xlsx workbook
var zipMagic = []byte("PK\x03\x04")

// IsWorkbook reports whether the fetched feed is an xlsx workbook rather
// than delimited text.
func IsWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// ParseWorkbook parses the first sheet of an xlsx workbook into the same
// header-keyed table shape as delimited feeds.
func ParseWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", domain.ErrParseFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrParseFailed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet: %v", domain.ErrParseFailed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workbook sheet is empty", domain.ErrParseFailed)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &Table{Headers: headers}
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		table.Records = append(table.Records, rowToRecord(headers, row))
	}

	return table, nil
}
