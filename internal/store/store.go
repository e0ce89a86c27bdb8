// =============================================================================
// Bulk Claim Converter - Submission Store
// =============================================================================
//
// Persistence boundary for normalized submissions. The converter core only
// depends on the Store interface; the in-memory implementation here backs the
// CLI and tests. A stored submission gets an identifier and an initial status
// and is never mutated by the parsing pipeline afterwards.
//
// =============================================================================

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openlegalaid/bulkclaim/internal/claims"
)

// Status is the lifecycle state of a stored submission.
type Status string

const (
	// StatusReadyForValidation is the initial status of every stored
	// submission: parsing succeeded, business validation has not run.
	StatusReadyForValidation Status = "READY_FOR_VALIDATION"
)

// StoredSubmission is a normalized submission with its assigned identity.
type StoredSubmission struct {
	ID         uuid.UUID
	SourceFile string
	Status     Status
	ReceivedAt time.Time
	Details    claims.BulkSubmissionDetails
}

// Store persists normalized submissions and assigns their identifiers.
type Store interface {
	// Save stores the details and returns the stored record with its new ID.
	Save(sourceFile string, details claims.BulkSubmissionDetails) (StoredSubmission, error)

	// Get returns a stored submission by ID.
	Get(id uuid.UUID) (StoredSubmission, error)
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]StoredSubmission
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[uuid.UUID]StoredSubmission)}
}

// Save implements Store.
func (s *MemoryStore) Save(sourceFile string, details claims.BulkSubmissionDetails) (StoredSubmission, error) {
	stored := StoredSubmission{
		ID:         uuid.New(),
		SourceFile: sourceFile,
		Status:     StatusReadyForValidation,
		ReceivedAt: time.Now().UTC(),
		Details:    details,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions[stored.ID] = stored
	return stored, nil
}

// Get implements Store.
func (s *MemoryStore) Get(id uuid.UUID) (StoredSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.submissions[id]
	if !ok {
		return StoredSubmission{}, fmt.Errorf("submission %s not found", id)
	}
	return stored, nil
}

// Len returns the number of stored submissions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}
