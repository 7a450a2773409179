package claims

import (
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// ParsedDocument is the normalized record produced for one document text.
// Field keys are present only when a value was successfully extracted;
// absence, not null, signals "not found". Documents are built once per
// parse call and never mutated afterwards.
type ParsedDocument struct {
	DocType      constants.DocType `json:"doc_type"`
	SourceName   string            `json:"source_name,omitempty"`
	Fields       map[string]any    `json:"fields,omitempty"`
	ServiceLines []ServiceLine     `json:"service_lines,omitempty"`
	Aggregates   *Aggregates       `json:"aggregates,omitempty"`
}

// ServiceLine is one row of a claim's billed services. The HCFA table
// layout fills date_of_service, place_of_service and rendering_provider_id;
// the EOB layout fills patient_responsibility and insurance_paid.
type ServiceLine struct {
	CPTCode               string           `json:"cpt_code,omitempty"`
	DateOfService         string           `json:"date_of_service,omitempty"`
	PlaceOfService        string           `json:"place_of_service,omitempty"`
	RenderingProviderID   string           `json:"rendering_provider_id,omitempty"`
	Charge                *decimal.Decimal `json:"charge,omitempty"`
	PatientResponsibility *decimal.Decimal `json:"patient_responsibility,omitempty"`
	InsurancePaid         *decimal.Decimal `json:"insurance_paid,omitempty"`
}

// Aggregates holds totals derived from an EOB's service lines.
type Aggregates struct {
	CPTCodes              []string        `json:"cpt_codes"`
	PatientResponsibility decimal.Decimal `json:"patient_responsibility"`
	InsurancePaid         decimal.Decimal `json:"insurance_paid"`
}
