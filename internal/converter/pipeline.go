// =============================================================================
// Bulk Claim Converter - Conversion Pipeline
// =============================================================================
//
// Orchestration for a single file: infer the extension, pick the converter,
// parse into the format tree, normalize into the canonical model, persist,
// publish. A failure at any step rejects the whole file; nothing is stored or
// published for a file that did not convert completely.
//
// The pipeline is stateless between runs and safe to share: each Run call
// owns its accumulator and its file handle, which is released on every exit
// path.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/openlegalaid/bulkclaim/internal/claims"
	"github.com/openlegalaid/bulkclaim/internal/normalize"
	"github.com/openlegalaid/bulkclaim/internal/queue"
	"github.com/openlegalaid/bulkclaim/internal/store"
)

// =============================================================================
// ERRORS
// =============================================================================

// FileReadError is the single failure kind a conversion surfaces: whatever
// went wrong underneath, the caller sees one non-retryable "this file could
// not be read" error naming the file.
type FileReadError struct {
	File string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read bulk submission file %s: %v", e.File, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// =============================================================================
// RESULT
// =============================================================================

// Result is the outcome of processing one file.
type Result struct {
	// FilePath is the input file that was processed.
	FilePath string

	// SubmissionID is the stored submission's identifier. Zero on failure.
	SubmissionID uuid.UUID

	// Success reports whether the file converted, stored and published.
	Success bool

	// Error is the failure, nil on success.
	Error error

	// Stats describes what the file contained.
	Stats Stats
}

// Stats counts the records of a processed file.
type Stats struct {
	Outcomes       int
	MatterStarts   int
	ImmigrationClr int
	Duration       time.Duration
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline runs the full conversion for submission files.
type Pipeline struct {
	registry  *Registry
	store     store.Store
	publisher queue.Publisher
	logger    *slog.Logger
}

// NewPipeline wires the pipeline over its collaborators.
func NewPipeline(registry *Registry, st store.Store, publisher queue.Publisher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{registry: registry, store: st, publisher: publisher, logger: logger}
}

// Convert parses and normalizes one submission stream without persisting it.
// The filename is only used to infer the format and to label errors.
func (p *Pipeline) Convert(filename string, r io.Reader) (claims.BulkSubmissionDetails, error) {
	ext, err := InferExtension(filename)
	if err != nil {
		return claims.BulkSubmissionDetails{}, &FileReadError{File: filename, Err: err}
	}

	conv, err := p.registry.ConverterFor(ext)
	if err != nil {
		return claims.BulkSubmissionDetails{}, &FileReadError{File: filename, Err: err}
	}

	p.logger.Debug("converting submission file", "file", filename, "extension", ext.String())

	tree, err := conv.Convert(r)
	if err != nil {
		return claims.BulkSubmissionDetails{}, &FileReadError{File: filename, Err: err}
	}

	details, err := normalize.ToCanonical(tree)
	if err != nil {
		return claims.BulkSubmissionDetails{}, &FileReadError{File: filename, Err: err}
	}

	return details, nil
}

// Run processes one file end to end: convert, store, publish.
func (p *Pipeline) Run(filePath string) (result Result) {
	started := time.Now()
	result = Result{FilePath: filePath}
	defer func() { result.Stats.Duration = time.Since(started) }()

	file, err := os.Open(filePath)
	if err != nil {
		result.Error = &FileReadError{File: filePath, Err: err}
		return result
	}
	defer file.Close()

	details, err := p.Convert(filepath.Base(filePath), file)
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats = Stats{
		Outcomes:       len(details.Outcomes),
		MatterStarts:   len(details.MatterStarts),
		ImmigrationClr: len(details.ImmigrationClr),
	}

	stored, err := p.store.Save(filepath.Base(filePath), details)
	if err != nil {
		result.Error = fmt.Errorf("failed to store submission for %s: %w", filePath, err)
		return result
	}
	result.SubmissionID = stored.ID

	if err := p.publisher.Publish(stored.ID); err != nil {
		result.Error = fmt.Errorf("failed to publish submission %s: %w", stored.ID, err)
		return result
	}

	p.logger.Info("processed submission file",
		"file", filePath,
		"submissionId", stored.ID.String(),
		"outcomes", result.Stats.Outcomes,
		"matterStarts", result.Stats.MatterStarts)

	result.Success = true
	return result
}
