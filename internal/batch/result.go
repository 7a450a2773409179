package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/claims"
)

// DocumentResult is the outcome for one file in a batch run.
type DocumentResult struct {
	ID        uuid.UUID              `json:"id"`
	Path      string                 `json:"path"`
	Status    constants.DocStatus    `json:"status"`
	Err       string                 `json:"error,omitempty"`
	Warnings  []string               `json:"warnings,omitempty"`
	ElapsedMS int64                  `json:"elapsed_ms"`
	Document  *claims.ParsedDocument `json:"document,omitempty"`
}

// Stats aggregates a run. Failed counts extraction failures only; parsing
// itself cannot fail, an unclassifiable document is PARSED with doc_type
// UNKNOWN.
type Stats struct {
	Parsed  uint32                       `json:"parsed"`
	Failed  uint32                       `json:"failed"`
	Skipped uint32                       `json:"skipped"`
	ByType  map[constants.DocType]uint32 `json:"by_type"`
}

// BatchResult is the envelope for one run over a set of files.
type BatchResult struct {
	RunID     uuid.UUID        `json:"run_id"`
	StartedAt time.Time        `json:"started_at"`
	ElapsedMS int64            `json:"elapsed_ms"`
	Stats     Stats            `json:"stats"`
	Results   []DocumentResult `json:"results"`
}

// Documents returns the parsed documents of the run, in input order.
func (b *BatchResult) Documents() []*claims.ParsedDocument {
	docs := make([]*claims.ParsedDocument, 0, len(b.Results))
	for i := range b.Results {
		if b.Results[i].Document != nil {
			docs = append(docs, b.Results[i].Document)
		}
	}
	return docs
}
