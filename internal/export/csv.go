package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/claims-parser/internal/claims"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (16 columns).
var columns = []string{
	"Source",
	"Doc Type",
	"Patient Name",
	"Patient DOB",
	"Patient Address",
	"Insured ID",
	"Federal Tax ID",
	"Billing NPI",
	"Diagnosis Codes",
	"Claim Number",
	"EOB Date",
	"Insurance Name",
	"Line Item Count",
	"CPT Codes",
	"Patient Responsibility",
	"Insurance Paid",
}

// Writer wraps csv.Writer for exporting parsed claims as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 16-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDocuments converts a batch of parsed documents to CSV rows and
// writes them.
func (w *Writer) WriteDocuments(docs []*claims.ParsedDocument) error {
	for _, doc := range docs {
		if err := w.csv.Write(documentToRow(doc)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// documentToRow converts a single parsed document to a 16-element string
// slice. UNKNOWN documents fill the metadata columns and leave the claim
// columns empty.
func documentToRow(doc *claims.ParsedDocument) []string {
	row := make([]string, len(columns))

	row[0] = doc.SourceName
	row[1] = string(doc.DocType)
	row[2] = fieldString(doc, "patient_name")
	row[3] = fieldString(doc, "patient_dob")
	row[4] = fieldString(doc, "patient_address")
	row[5] = fieldString(doc, "insured_id")
	row[6] = fieldString(doc, "federal_tax_id")
	row[7] = fieldString(doc, "billing_npi")
	row[8] = strings.Join(fieldList(doc, "diagnosis_codes"), ";")
	row[9] = fieldString(doc, "claim_number")
	row[10] = fieldString(doc, "eob_date")
	row[11] = fieldString(doc, "insurance_name")
	row[12] = strconv.Itoa(len(doc.ServiceLines))

	if doc.Aggregates != nil {
		row[13] = strings.Join(doc.Aggregates.CPTCodes, ";")
		row[14] = doc.Aggregates.PatientResponsibility.String()
		row[15] = doc.Aggregates.InsurancePaid.String()
	}
	return row
}

// fieldString returns a string-valued extracted field, or "" when absent.
func fieldString(doc *claims.ParsedDocument, key string) string {
	v, ok := doc.Fields[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// fieldList returns a list-valued extracted field, or nil when absent.
func fieldList(doc *claims.ParsedDocument, key string) []string {
	v, ok := doc.Fields[key]
	if !ok {
		return nil
	}
	list, _ := v.([]string)
	return list
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use as an output filename. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized, dated output filename.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, strings.TrimPrefix(ext, "."))
}
