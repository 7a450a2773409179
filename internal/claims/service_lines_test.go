package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDecoder_NoHeaderAnchor(t *testing.T) {
	assert.Nil(t, hcfaLineDecoder.decode("no table in here"))
	assert.Nil(t, eobLineDecoder.decode("nothing resembling a payment table"))
}

func TestLineDecoder_RowsDecodeInOrder(t *testing.T) {
	text := "24A 24B 24D 24F 24J\n" +
		"01/02/2024 11 99213 150.00 1234567890\n" +
		"01/03/2024 22 87880 25.00 1234567890\n"

	lines := hcfaLineDecoder.decode(text)

	require.Len(t, lines, 2)
	assert.Equal(t, "01/02/2024", lines[0].DateOfService)
	assert.Equal(t, "11", lines[0].PlaceOfService)
	assert.Equal(t, "99213", lines[0].CPTCode)
	assert.Equal(t, "1234567890", lines[0].RenderingProviderID)
	require.NotNil(t, lines[0].Charge)
	assert.Equal(t, "150.00", lines[0].Charge.String())
	assert.Equal(t, "87880", lines[1].CPTCode)
}

func TestLineDecoder_ShortRowsSkipped(t *testing.T) {
	text := "24A 24B 24D 24F 24J\n01/02/2024 11 99213\n\nstray words\n"
	assert.Empty(t, hcfaLineDecoder.decode(text))
}

func TestLineDecoder_HeaderRemainderIsFirstCandidateRow(t *testing.T) {
	// Extra tokens on the header line decode as a row once they reach the
	// minimum; the decoder has no notion of a wrapped header.
	text := "24A 24B 24D 24F 24J x1 x2 x3 x4 x5\n"

	lines := hcfaLineDecoder.decode(text)

	require.Len(t, lines, 1)
	assert.Equal(t, "x3", lines[0].CPTCode)
	assert.Nil(t, lines[0].Charge)
}

func TestLineDecoder_UnparseableMoneyLeavesFieldAbsent(t *testing.T) {
	text := "CPT CODE\n99213 N/A 20.00 80.00\n"

	lines := eobLineDecoder.decode(text)

	require.Len(t, lines, 1)
	assert.Equal(t, "99213", lines[0].CPTCode)
	assert.Nil(t, lines[0].Charge)
	require.NotNil(t, lines[0].PatientResponsibility)
	assert.Equal(t, "20.00", lines[0].PatientResponsibility.String())
	require.NotNil(t, lines[0].InsurancePaid)
	assert.Equal(t, "80.00", lines[0].InsurancePaid.String())
}
