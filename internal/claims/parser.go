package claims

import (
	"log/slog"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// Parser composes classification and family extraction into one call:
// text in, normalized record out. It holds no state between calls and is
// safe for unbounded concurrent use.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// Parse classifies text and runs the matching family extractor, attaching
// the caller's source identifier unchanged. UNKNOWN is a valid terminal
// outcome whose record carries nothing but doc_type and source_name.
// Malformed text degrades to partial or empty results, never to an error.
func (p *Parser) Parse(text, sourceName string) *ParsedDocument {
	var doc *ParsedDocument
	switch Classify(text) {
	case constants.DocTypeHCFA:
		doc = extractHCFA(text)
	case constants.DocTypeEOB:
		doc = extractEOB(text)
	default:
		doc = &ParsedDocument{DocType: constants.DocTypeUnknown}
	}
	doc.SourceName = sourceName

	p.log.Debug("claims.parse.ok",
		"source", sourceName,
		"doc_type", string(doc.DocType),
		"fields", len(doc.Fields),
		"service_lines", len(doc.ServiceLines))
	return doc
}
