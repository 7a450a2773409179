package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_CommonFormats(t *testing.T) {
	for raw, want := range map[string]string{
		"02/05/2024":       "2024-02-05",
		"2024-02-05":       "2024-02-05",
		"Feb 5, 2024":      "2024-02-05",
		"February 5, 2024": "2024-02-05",
		"01/15/1980":       "1980-01-15",
	} {
		got, ok := ParseDate(raw)
		require.True(t, ok, "raw=%q", raw)
		assert.Equal(t, want, got, "raw=%q", raw)
	}
}

func TestParseDate_EmbeddedInSurroundingWords(t *testing.T) {
	got, ok := ParseDate("Check issued 02/05/2024 ref 881")
	require.True(t, ok)
	assert.Equal(t, "2024-02-05", got)
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "PENDING"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}
