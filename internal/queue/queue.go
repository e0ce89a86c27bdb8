// =============================================================================
// Bulk Claim Converter - Submission Publisher
// =============================================================================
//
// Messaging boundary: after a submission is stored, its identifier is
// published for downstream processing. The pipeline depends on the Publisher
// interface only; the implementations here are the in-process stand-ins the
// CLI and tests use.
//
// =============================================================================

package queue

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Publisher announces newly stored submission identifiers.
type Publisher interface {
	Publish(id uuid.UUID) error
}

// MemoryPublisher records published IDs in order. Used by tests and as the
// default sink when no broker is configured.
type MemoryPublisher struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

// NewMemoryPublisher returns an empty in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// Publish implements Publisher.
func (p *MemoryPublisher) Publish(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, id)
	return nil
}

// Published returns the IDs published so far, in order.
func (p *MemoryPublisher) Published() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]uuid.UUID, len(p.ids))
	copy(out, p.ids)
	return out
}

// LogPublisher logs each published ID. Wraps another publisher when the
// announcement should still be delivered.
type LogPublisher struct {
	logger *slog.Logger
	next   Publisher
}

// NewLogPublisher returns a publisher logging through the given logger and
// forwarding to next when next is non-nil.
func NewLogPublisher(logger *slog.Logger, next Publisher) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger, next: next}
}

// Publish implements Publisher.
func (p *LogPublisher) Publish(id uuid.UUID) error {
	p.logger.Info("submission ready for downstream processing", "submissionId", id.String())
	if p.next != nil {
		return p.next.Publish(id)
	}
	return nil
}
