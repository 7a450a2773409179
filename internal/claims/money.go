package claims

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var reNonMoney = regexp.MustCompile(`[^0-9.\-]`)

// ParseMoney turns a currency-like token into an exact decimal amount.
// A parenthesized value is negative, accounting style. Currency symbols,
// thousands separators and other noise are stripped; whatever remains must
// construct an exact decimal or the token is reported as non-monetary
// (ok=false). Amounts stay fixed-point so line-item sums add exactly.
func ParseMoney(raw string) (decimal.Decimal, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.Decimal{}, false
	}
	negative := strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")")
	cleaned := reNonMoney.ReplaceAllString(text, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}
