package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/batch"
)

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// one interchange record as a generic map. External tooling consumes this
// shape, so exports can be checked against it before they leave.
func BuildDocumentJSONSchema() map[string]any {
	serviceLine := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"cpt_code":               map[string]any{"type": "string"},
			"date_of_service":        map[string]any{"type": "string"},
			"place_of_service":       map[string]any{"type": "string"},
			"rendering_provider_id":  map[string]any{"type": "string"},
			"charge":                 decimalProp(),
			"patient_responsibility": decimalProp(),
			"insurance_paid":         decimalProp(),
		},
	}

	aggregates := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"cpt_codes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"patient_responsibility": decimalProp(),
			"insurance_paid":         decimalProp(),
		},
		"required": []string{"cpt_codes", "patient_responsibility", "insurance_paid"},
	}

	// Field values are either a single string or an ordered list of
	// strings (diagnosis codes).
	fields := map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"anyOf": []map[string]any{
				{"type": "string"},
				{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"doc_type":      map[string]any{"type": "string", "enum": constants.AsStringSlice()},
			"source_name":   map[string]any{"type": "string"},
			"fields":        fields,
			"service_lines": map[string]any{"type": "array", "items": serviceLine},
			"aggregates":    aggregates,
		},
		"required": []string{"doc_type"},
	}
}

// Amounts travel as decimal strings, never floats.
func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}

var (
	schemaOnce    sync.Once
	compiledDoc   *jsonschema.Schema
	schemaCompile error
)

// ValidateDocumentJSON validates one marshaled ParsedDocument against the
// interchange schema.
func ValidateDocumentJSON(data []byte) error {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildDocumentJSONSchema())
		if err != nil {
			schemaCompile = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("claims.schema.json", bytes.NewReader(b)); err != nil {
			schemaCompile = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledDoc, schemaCompile = compiler.Compile("claims.schema.json")
	})
	if schemaCompile != nil {
		return schemaCompile
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiledDoc.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ValidateBatch checks every parsed document of a run against the
// interchange schema and reports the first mismatch.
func ValidateBatch(res *batch.BatchResult) error {
	for i := range res.Results {
		doc := res.Results[i].Document
		if doc == nil {
			continue
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", res.Results[i].Path, err)
		}
		if err := ValidateDocumentJSON(data); err != nil {
			return fmt.Errorf("%s: %w", res.Results[i].Path, err)
		}
	}
	return nil
}
