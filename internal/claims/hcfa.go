package claims

import (
	"regexp"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// Anchors follow the numbered boxes of the CMS-1500 form. Each pattern
// matches a label line and captures the line below it, where the value
// sits on the printed form. Diagnosis codes are collected as ICD-10-shaped
// tokens from the line under box 21, every match in order.
var hcfaFieldRules = []fieldRule{
	{name: "patient_name", anchor: regexp.MustCompile(`(?i)PATIENT'S NAME[^\n]*\n(.+)`)},
	{name: "insured_id", anchor: regexp.MustCompile(`(?i)1A\.\s*INSURED'S ID NUMBER[^\n]*\n(.+)`)},
	{name: "patient_address", anchor: regexp.MustCompile(`(?i)5\.\s*PATIENT ADDRESS[^\n]*\n(.+)`)},
	{name: "patient_dob", anchor: regexp.MustCompile(`(?i)3\.\s*DATE OF BIRTH[^\n]*\n(.+)`), normalize: ParseDate},
	{name: "diagnosis_codes", anchor: regexp.MustCompile(`(?i)21\.\s*DIAGNOSIS[^\n]*\n(.+)`), tokens: regexp.MustCompile(`\b[A-Z]\d{2}(?:\.\d{1,4})?\b`)},
	{name: "federal_tax_id", anchor: regexp.MustCompile(`(?i)25\.\s*FEDERAL TAX ID NUMBER[^\n]*\n(.+)`)},
	{name: "physician_signature", anchor: regexp.MustCompile(`(?i)31\.\s*SIGNATURE OF PHYSICIAN[^\n]*\n(.+)`)},
	{name: "service_facility", anchor: regexp.MustCompile(`(?i)32\.\s*SERVICE FACILITY[^\n]*\n(.+)`)},
	{name: "billing_npi", anchor: regexp.MustCompile(`(?i)33A\.\s*NPI[^\n]*\n(.+)`)},
}

// Box 24 columns: A date of service, B place of service, D procedure code,
// F charge, J rendering provider ID.
var hcfaLineDecoder = lineDecoder{
	header:    regexp.MustCompile(`(?i)24A.*24B.*24D.*24F.*24J`),
	minTokens: 5,
	columns: []columnSpec{
		{0, func(l *ServiceLine, tok string) { l.DateOfService = tok }},
		{1, func(l *ServiceLine, tok string) { l.PlaceOfService = tok }},
		{2, func(l *ServiceLine, tok string) { l.CPTCode = tok }},
		{3, func(l *ServiceLine, tok string) { setMoney(&l.Charge, tok) }},
		{4, func(l *ServiceLine, tok string) { l.RenderingProviderID = tok }},
	},
}

// extractHCFA pulls the labeled fields and the box-24 service table from a
// claim-form text. Missing anchors simply leave their fields out.
func extractHCFA(text string) *ParsedDocument {
	doc := &ParsedDocument{
		DocType: constants.DocTypeHCFA,
		Fields:  make(map[string]any),
	}
	applyFieldRules(hcfaFieldRules, text, doc.Fields)
	doc.ServiceLines = hcfaLineDecoder.decode(text)
	return doc
}
