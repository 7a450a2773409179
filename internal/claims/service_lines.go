package claims

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// lineDecoder locates a service-line table by its header anchor and
// decodes the rows after it positionally: rows are split on whitespace and
// tokens map onto ServiceLine fields by column index. Rows with fewer than
// minTokens tokens are dropped as blank/footer noise. The decoder assumes
// single-line left-to-right rows; a wrapped row degrades into a shorter or
// garbled record rather than an explicit failure.
type lineDecoder struct {
	header    *regexp.Regexp
	minTokens int
	columns   []columnSpec
}

// columnSpec maps one token position onto a ServiceLine field.
type columnSpec struct {
	index  int
	assign func(*ServiceLine, string)
}

// decode returns the rows following the header anchor in order of
// appearance, or nil when the text has no recognizable table. Scanning
// starts immediately after the anchor match, so the remainder of the
// header line itself is the first candidate row.
func (d lineDecoder) decode(text string) []ServiceLine {
	loc := d.header.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	var lines []ServiceLine
	for _, row := range strings.Split(text[loc[1]:], "\n") {
		tokens := strings.Fields(row)
		if len(tokens) < d.minTokens {
			continue
		}
		var line ServiceLine
		for _, col := range d.columns {
			col.assign(&line, tokens[col.index])
		}
		lines = append(lines, line)
	}
	return lines
}

// setMoney assigns a token to a money field when it normalizes; otherwise
// the field stays absent.
func setMoney(dst **decimal.Decimal, token string) {
	if amount, ok := ParseMoney(token); ok {
		*dst = &amount
	}
}
