package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/claims"
	"github.com/joseph-ayodele/claims-parser/internal/textextract"
)

// stubExtractor serves canned text keyed by base filename, honoring
// context cancellation like the real extractor.
type stubExtractor struct {
	texts map[string]string
	errs  map[string]error
	warns map[string][]string
}

func (s *stubExtractor) Extract(ctx context.Context, path string) (textextract.Result, error) {
	if err := ctx.Err(); err != nil {
		return textextract.Result{}, err
	}
	base := filepath.Base(path)
	if err, ok := s.errs[base]; ok {
		return textextract.Result{}, err
	}
	return textextract.Result{
		Text:     s.texts[base],
		Method:   "plain-text",
		Pages:    1,
		Warnings: s.warns[base],
	}, nil
}

func TestRunner_MixedBatch(t *testing.T) {
	stub := &stubExtractor{
		texts: map[string]string{
			"hcfa.txt": "HEALTH INSURANCE CLAIM FORM\n2. PATIENT'S NAME\nDOE, JOHN",
			"eob.txt":  "EXPLANATION OF BENEFITS\nClaim Number: XYZ9",
			"junk.txt": "nothing recognizable here",
		},
		errs:  map[string]error{"broken.pdf": errors.New("open pdf: boom")},
		warns: map[string][]string{"junk.txt": {"page 1: no text layer"}},
	}
	r := NewRunner(stub, claims.NewParser(discardLogger()), discardLogger(), WithWorkers(2))
	paths := []string{"in/hcfa.txt", "in/eob.txt", "in/broken.pdf", "in/junk.txt"}

	res := r.Run(context.Background(), paths)

	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, uint32(3), res.Stats.Parsed)
	assert.Equal(t, uint32(1), res.Stats.Failed)
	assert.Equal(t, uint32(0), res.Stats.Skipped)
	assert.Equal(t, uint32(1), res.Stats.ByType[constants.DocTypeHCFA])
	assert.Equal(t, uint32(1), res.Stats.ByType[constants.DocTypeEOB])
	assert.Equal(t, uint32(1), res.Stats.ByType[constants.DocTypeUnknown])

	require.Len(t, res.Results, 4)
	for i, path := range paths {
		assert.Equal(t, path, res.Results[i].Path)
	}

	first := res.Results[0]
	assert.Equal(t, constants.DocStatusParsed, first.Status)
	require.NotNil(t, first.Document)
	assert.Equal(t, constants.DocTypeHCFA, first.Document.DocType)
	assert.Equal(t, "hcfa.txt", first.Document.SourceName)
	assert.Equal(t, "DOE, JOHN", first.Document.Fields["patient_name"])

	failed := res.Results[2]
	assert.Equal(t, constants.DocStatusFailed, failed.Status)
	assert.Contains(t, failed.Err, "boom")
	assert.Nil(t, failed.Document)

	last := res.Results[3]
	assert.Equal(t, constants.DocStatusParsed, last.Status)
	assert.Equal(t, []string{"page 1: no text layer"}, last.Warnings)
	assert.Equal(t, constants.DocTypeUnknown, last.Document.DocType)

	docs := res.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, constants.DocTypeHCFA, docs[0].DocType)
	assert.Equal(t, constants.DocTypeEOB, docs[1].DocType)
	assert.Equal(t, constants.DocTypeUnknown, docs[2].DocType)
}

func TestRunner_EmptyBatch(t *testing.T) {
	r := NewRunner(&stubExtractor{}, claims.NewParser(discardLogger()), discardLogger())

	res := r.Run(context.Background(), nil)

	assert.Empty(t, res.Results)
	assert.Empty(t, res.Documents())
	assert.Equal(t, Stats{ByType: map[constants.DocType]uint32{}}, res.Stats)
}

func TestRunner_CanceledContextSkipsRemainder(t *testing.T) {
	stub := &stubExtractor{}
	r := NewRunner(stub, claims.NewParser(discardLogger()), discardLogger(), WithWorkers(2))
	paths := make([]string, 40)
	for i := range paths {
		paths[i] = fmt.Sprintf("in/doc_%02d.txt", i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Run(ctx, paths)

	assert.Equal(t, uint32(0), res.Stats.Parsed)
	assert.NotZero(t, res.Stats.Skipped)
	assert.Equal(t, uint32(len(paths)), res.Stats.Failed+res.Stats.Skipped)
	for _, dr := range res.Results {
		assert.Contains(t, []constants.DocStatus{constants.DocStatusFailed, constants.DocStatusSkipped}, dr.Status)
	}
}

func TestRunner_OptionDefaultsAndBounds(t *testing.T) {
	parser := claims.NewParser(discardLogger())

	r := NewRunner(&stubExtractor{}, parser, discardLogger(), WithWorkers(0), WithProcessTimeout(0))
	assert.Equal(t, 4, r.workers)
	assert.Equal(t, time.Minute, r.timeout)

	r = NewRunner(&stubExtractor{}, parser, discardLogger(), WithWorkers(8), WithProcessTimeout(30*time.Second))
	assert.Equal(t, 8, r.workers)
	assert.Equal(t, 30*time.Second, r.timeout)
}
