package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Marshal собирает CSV с фиксированной строкой заголовков
// Значения с запятыми, кавычками и переводами строк экранируются по RFC 4180
func Marshal(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csvutil: write headers: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("csvutil: row %d has %d columns, expected %d", i, len(row), len(headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csvutil: write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csvutil: flush: %w", err)
	}

	return buf.Bytes(), nil
}
