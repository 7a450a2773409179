package claims

import (
	"regexp"
	"strings"
)

// fieldRule is one entry in a declarative extraction table. The anchor's
// first capture group is the raw value; a rule with tokens set collects
// every token match inside the captured text instead of the text itself;
// normalize, when set, may reject the value, which omits the field.
type fieldRule struct {
	name      string
	anchor    *regexp.Regexp
	tokens    *regexp.Regexp
	normalize func(string) (string, bool)
}

// capture returns the trimmed first capture group of re in text.
func capture(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// applyFieldRules evaluates every rule against text and fills fields,
// omitting whatever does not match or normalize. A failed rule never
// affects the others.
func applyFieldRules(rules []fieldRule, text string, fields map[string]any) {
	for _, rule := range rules {
		raw, ok := capture(rule.anchor, text)
		if !ok {
			continue
		}
		if rule.tokens != nil {
			if matches := rule.tokens.FindAllString(raw, -1); len(matches) > 0 {
				fields[rule.name] = matches
			}
			continue
		}
		if rule.normalize != nil {
			value, ok := rule.normalize(raw)
			if !ok {
				continue
			}
			fields[rule.name] = value
			continue
		}
		fields[rule.name] = raw
	}
}
