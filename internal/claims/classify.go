package claims

import (
	"regexp"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// HCFA patterns are evaluated before EOB patterns: text matching both
// families classifies as HCFA. This precedence is deliberate; the claim
// form's box labels are the more specific signal.
var hcfaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CMS[-\s]?1500`),
	regexp.MustCompile(`(?i)HCFA[-\s]?1500`),
	regexp.MustCompile(`(?i)HCFA`),
	regexp.MustCompile(`(?i)HEALTH\s+INSURANCE\s+CLAIM\s+FORM`),
	regexp.MustCompile(`(?i)\b24J\b`),
}

var eobPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)EXPLANATION\s+OF\s+BENEFITS`),
	regexp.MustCompile(`(?i)REMITTANCE\s+ADVICE`),
	regexp.MustCompile(`(?i)EXPLANATION\s+OF\s+PAYMENT`),
	regexp.MustCompile(`(?i)\bEOB\b`),
	regexp.MustCompile(`(?i)CLAIM\s+SUMMARY`),
	regexp.MustCompile(`(?i)PATIENT\s+RESPONSIBILITY`),
}

// Classify assigns a document family to raw text. Patterns are tried in
// list order and the first one matching anywhere in the text wins; text
// matching neither list is UNKNOWN, which is a valid outcome rather than
// an error.
func Classify(text string) constants.DocType {
	for _, re := range hcfaPatterns {
		if re.MatchString(text) {
			return constants.DocTypeHCFA
		}
	}
	for _, re := range eobPatterns {
		if re.MatchString(text) {
			return constants.DocTypeEOB
		}
	}
	return constants.DocTypeUnknown
}
