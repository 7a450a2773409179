package constants

// DocStatus is the canonical status for a document in a batch run.
type DocStatus string

// Stable values (reported in batch results and logs).
const (
	DocStatusQueued    DocStatus = "QUEUED"     // waiting for a worker
	DocStatusRunning   DocStatus = "RUNNING"    // in progress
	DocStatusExtractOK DocStatus = "EXTRACT_OK" // stage 1 completed (text extracted)
	DocStatusParsed    DocStatus = "PARSED"     // stage 2 completed (document parsed)
	DocStatusFailed    DocStatus = "FAILED"     // terminal failure
	DocStatusSkipped   DocStatus = "SKIPPED"    // run ended before the document was processed
)
