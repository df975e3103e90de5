package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_QuotesEmbeddedCommasAndQuotes(t *testing.T) {
	headers := []string{"id", "guest", "notes"}
	rows := [][]string{
		{"1", `Иванов, Иван`, `просил "тихий" номер`},
		{"2", "Petrov", "no special requests"},
	}

	out, err := Marshal(headers, rows)
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, `"Иванов, Иван"`)
	assert.Contains(t, got, `"просил ""тихий"" номер"`)
	assert.Contains(t, got, "id,guest,notes\n")
}

func TestMarshal_RejectsRowWidthMismatch(t *testing.T) {
	_, err := Marshal([]string{"a", "b"}, [][]string{{"1"}})
	require.Error(t, err)
}
