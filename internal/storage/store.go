// Package storage provides abstractions for persisting the automobile inventory.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/autogallery/internal/models"
)

// ErrNothingToSave is returned by Save when there are no records. The
// backing file is left untouched in that case.
var ErrNothingToSave = errors.New("nothing to save")

// Store defines how the inventory is loaded at startup and written on exit.
// Implementations open the backing resource for the duration of a single
// call and never hold it between calls.
type Store interface {
	// Load reads every stored record. A missing backing file yields an
	// empty result, not an error. Records that cannot be parsed are
	// reported in LoadResult.Skipped and do not stop the load.
	Load(ctx context.Context) (*LoadResult, error)

	// Save replaces the stored contents with records, in order.
	// Returns ErrNothingToSave if records is empty.
	Save(ctx context.Context, records []models.Automobile) error

	// Location describes where records are stored, for messages and logs.
	Location() string
}

// LoadResult is the outcome of a Load.
type LoadResult struct {
	Records []models.Automobile
	Skipped []*RecordError
}

// RecordError describes a stored line that could not be read as a record.
type RecordError struct {
	// Line is the 1-based line number in the backing file.
	Line int

	// Text is the offending line with surrounding whitespace removed.
	Text string

	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
