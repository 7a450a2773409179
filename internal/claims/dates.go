package claims

import (
	"strings"

	"github.com/oarkflow/date"
)

const isoDate = "2006-01-02"

// maxDateWindow bounds the fuzzy token scan: a US date split on whitespace
// ("Feb 5, 2024") spans at most three tokens.
const maxDateWindow = 3

// ParseDate turns a loosely formatted date string into an ISO calendar
// date (YYYY-MM-DD). Common US formats parse directly; when the value is
// embedded in surrounding words ("Check issued 02/05/2024 ref 881"),
// token windows are scanned widest-first and the first parseable window
// wins. Unparseable input reports ok=false.
func ParseDate(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	if t, err := date.Parse(text); err == nil {
		return t.Format(isoDate), true
	}

	tokens := strings.Fields(text)
	for width := maxDateWindow; width >= 1; width-- {
		for i := 0; i+width <= len(tokens); i++ {
			window := strings.Join(tokens[i:i+width], " ")
			if window == text {
				continue
			}
			if t, err := date.Parse(window); err == nil {
				return t.Format(isoDate), true
			}
		}
	}
	return "", false
}
