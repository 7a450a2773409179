package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/claims-parser/internal/claims"
)

const (
	claimsSheet = "Claims"
	linesSheet  = "Service Lines"
)

// BuildClaimsXLSX builds a two-sheet workbook: one claim summary row per
// document and one row per decoded service line.
func BuildClaimsXLSX(docs []*claims.ParsedDocument) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", claimsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return nil, err
	}

	claimHeaders := []string{
		"Source",
		"Doc Type",
		"Patient Name",
		"Patient DOB",
		"Insured ID",
		"Diagnosis Codes",
		"Claim Number",
		"EOB Date",
		"Insurance Name",
		"Lines",
		"CPT Codes",
		"Patient Responsibility",
		"Insurance Paid",
	}
	for i, h := range claimHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(claimsSheet, cell, h)
	}

	lineHeaders := []string{
		"Source",
		"Doc Type",
		"CPT Code",
		"Date of Service",
		"Place of Service",
		"Provider ID",
		"Charge",
		"Patient Responsibility",
		"Insurance Paid",
	}
	for i, h := range lineHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(linesSheet, cell, h)
	}

	claimRow := 2
	lineRow := 2
	for _, doc := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, claimRow)
			_ = f.SetCellValue(claimsSheet, cell, v)
		}

		write(1, doc.SourceName)
		write(2, string(doc.DocType))
		write(3, truncate(fieldString(doc, "patient_name"), 60))
		write(4, fieldString(doc, "patient_dob"))
		write(5, fieldString(doc, "insured_id"))
		write(6, strings.Join(fieldList(doc, "diagnosis_codes"), ";"))
		write(7, fieldString(doc, "claim_number"))
		write(8, fieldString(doc, "eob_date"))
		write(9, truncate(fieldString(doc, "insurance_name"), 60))
		write(10, len(doc.ServiceLines))
		if doc.Aggregates != nil {
			write(11, strings.Join(doc.Aggregates.CPTCodes, ";"))
			write(12, doc.Aggregates.PatientResponsibility.String())
			write(13, doc.Aggregates.InsurancePaid.String())
		}
		claimRow++

		for _, line := range doc.ServiceLines {
			writeLine := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, lineRow)
				_ = f.SetCellValue(linesSheet, cell, v)
			}
			writeLine(1, doc.SourceName)
			writeLine(2, string(doc.DocType))
			writeLine(3, line.CPTCode)
			writeLine(4, line.DateOfService)
			writeLine(5, line.PlaceOfService)
			writeLine(6, line.RenderingProviderID)
			if line.Charge != nil {
				writeLine(7, line.Charge.String())
			}
			if line.PatientResponsibility != nil {
				writeLine(8, line.PatientResponsibility.String())
			}
			if line.InsurancePaid != nil {
				writeLine(9, line.InsurancePaid.String())
			}
			lineRow++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(claimsSheet, "A", "A", 28) // source
	_ = f.SetColWidth(claimsSheet, "C", "C", 24) // patient
	_ = f.SetColWidth(claimsSheet, "F", "F", 20) // diagnosis codes
	_ = f.SetColWidth(claimsSheet, "I", "I", 28) // insurance name
	_ = f.SetColWidth(claimsSheet, "K", "M", 16) // codes + totals
	_ = f.SetColWidth(linesSheet, "A", "A", 28)
	_ = f.SetColWidth(linesSheet, "G", "I", 14) // amounts

	return f, nil
}

// ExportClaimsXLSX writes the workbook for docs to path.
func ExportClaimsXLSX(path string, docs []*claims.ParsedDocument, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f, err := BuildClaimsXLSX(docs)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"path", path,
		"claims", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
