package claims

import (
	"regexp"
	"sort"
	"strings"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// eobDateAnchors are tried in priority order; the first anchor present in
// the text supplies the candidate value even when a later anchor would
// also match. A candidate that fails date normalization leaves eob_date
// out without falling through to the next anchor.
var eobDateAnchors = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s*date\s*(?:on)?\s*[:\-]?\s*([^\n]+)`),
	regexp.MustCompile(`(?i)check\s*date\s*(?:on)?\s*[:\-]?\s*([^\n]+)`),
	regexp.MustCompile(`(?i)printed\s*date\s*(?:on)?\s*[:\-]?\s*([^\n]+)`),
	regexp.MustCompile(`(?i)statement\s*date\s*(?:on)?\s*[:\-]?\s*([^\n]+)`),
	regexp.MustCompile(`(?i)processing\s*date\s*(?:on)?\s*[:\-]?\s*([^\n]+)`),
	regexp.MustCompile(`(?i)date\s*[:\-]?\s*([^\n]+)`),
}

var reClaimNumber = regexp.MustCompile(`(?i)CLAIM NUMBER[:\s]*([A-Z0-9-]+)`)

// insurerLineLimit bounds the letterhead scan for the payer name.
const insurerLineLimit = 10

var eobLineDecoder = lineDecoder{
	header:    regexp.MustCompile(`(?i)CPT\s+CODE`),
	minTokens: 4,
	columns: []columnSpec{
		{0, func(l *ServiceLine, tok string) { l.CPTCode = tok }},
		{1, func(l *ServiceLine, tok string) { setMoney(&l.Charge, tok) }},
		{2, func(l *ServiceLine, tok string) { setMoney(&l.PatientResponsibility, tok) }},
		{3, func(l *ServiceLine, tok string) { setMoney(&l.InsurancePaid, tok) }},
	},
}

// extractEOB pulls the statement fields and the payment table from an EOB
// text, then totals the decoded lines.
func extractEOB(text string) *ParsedDocument {
	doc := &ParsedDocument{
		DocType: constants.DocTypeEOB,
		Fields:  make(map[string]any),
	}

	for _, re := range eobDateAnchors {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if iso, ok := ParseDate(m[1]); ok {
			doc.Fields["eob_date"] = iso
		}
		break
	}
	if m := reClaimNumber.FindStringSubmatch(text); m != nil {
		doc.Fields["claim_number"] = m[1]
	}
	if name, ok := insurerName(text); ok {
		doc.Fields["insurance_name"] = name
	}

	doc.ServiceLines = eobLineDecoder.decode(text)
	if len(doc.ServiceLines) > 0 {
		doc.Aggregates = aggregateLines(doc.ServiceLines)
	}
	return doc
}

// insurerName returns the first of the document's leading lines containing
// "insurance", a letterhead heuristic for the payer name.
func insurerName(text string) (string, bool) {
	for i, line := range strings.Split(text, "\n") {
		if i >= insurerLineLimit {
			break
		}
		if strings.Contains(strings.ToLower(line), "insurance") {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// aggregateLines totals the decoded lines: the distinct sorted CPT codes,
// and exact sums of patient responsibility and insurance paid. An absent
// amount is excluded from its running total; it does not assert zero.
func aggregateLines(lines []ServiceLine) *Aggregates {
	agg := &Aggregates{CPTCodes: []string{}}
	seen := make(map[string]struct{})
	for _, line := range lines {
		if line.CPTCode != "" {
			if _, dup := seen[line.CPTCode]; !dup {
				seen[line.CPTCode] = struct{}{}
				agg.CPTCodes = append(agg.CPTCodes, line.CPTCode)
			}
		}
		if line.PatientResponsibility != nil {
			agg.PatientResponsibility = agg.PatientResponsibility.Add(*line.PatientResponsibility)
		}
		if line.InsurancePaid != nil {
			agg.InsurancePaid = agg.InsurancePaid.Add(*line.InsurancePaid)
		}
	}
	sort.Strings(agg.CPTCodes)
	return agg
}
