package constants

import (
	"strings"
)

// DocType labels the claim-document family a text belongs to.
type DocType string

const (
	DocTypeHCFA    DocType = "HCFA"
	DocTypeEOB     DocType = "EOB"
	DocTypeUnknown DocType = "UNKNOWN"
)

var allDocTypes = []DocType{
	DocTypeHCFA,
	DocTypeEOB,
	DocTypeUnknown,
}

func AsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocType canonicalizes user-supplied input (CLI filters, config) to
// a DocType.
func ParseDocType(input string) (DocType, bool) {
	if input == "" {
		return DocTypeUnknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocType{
		"cms-1500":                DocTypeHCFA,
		"cms 1500":                DocTypeHCFA,
		"cms1500":                 DocTypeHCFA,
		"hcfa-1500":               DocTypeHCFA,
		"hcfa1500":                DocTypeHCFA,
		"claim form":              DocTypeHCFA,
		"explanation of benefits": DocTypeEOB,
		"remittance advice":       DocTypeEOB,
		"remittance":              DocTypeEOB,
		"unclassified":            DocTypeUnknown,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	// check if it matches any doc type string
	for _, dt := range allDocTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}

	return DocTypeUnknown, false
}
