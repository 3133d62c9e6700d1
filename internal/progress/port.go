package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/hirabolta/internal/kana"
)

// Port is the durable storage used for learner progress.
type Port interface {
	// LoadProgress returns the stored record, or nil if none exists.
	LoadProgress(ctx context.Context, learnerID string, s kana.Syllabary) (*Record, error)

	// SaveProgress upserts the record keyed by (learnerID, s).
	SaveProgress(ctx context.Context, learnerID string, s kana.Syllabary, r Record) error
}

// PersistenceError wraps a failure reported by the Port.
type PersistenceError struct {
	Op        string // "load" or "save"
	Learner   string
	Syllabary kana.Syllabary
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s progress for %q (%s): %v", e.Op, e.Learner, e.Syllabary, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
