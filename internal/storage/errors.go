package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorageUnavailable means the local database could not be opened at
	// all. Fatal for the session: every subsequent operation will fail the
	// same way, so callers must surface it and not retry in a loop.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateKey means an insert violated the clinic-record-number
	// uniqueness constraint. Recoverable: the caller should prompt for a
	// different number.
	ErrDuplicateKey = errors.New("duplicate numeroHistoriaClinica")
)

// RecordMigrationError records a single patient row that could not be
// rewritten during a schema upgrade. The row keeps its old shape until a
// future migration pass succeeds.
type RecordMigrationError struct {
	ID  int64
	Err error
}

func (e RecordMigrationError) Error() string {
	return fmt.Sprintf("record %d: %v", e.ID, e.Err)
}

func (e RecordMigrationError) Unwrap() error { return e.Err }

// MigrationPartialFailure aggregates the per-record failures of a best-effort
// migration pass. It never blocks opening the store; it is logged and kept on
// the Store for inspection.
type MigrationPartialFailure struct {
	Records []RecordMigrationError
}

func (e *MigrationPartialFailure) Error() string {
	msgs := make([]string, 0, len(e.Records))
	for _, r := range e.Records {
		msgs = append(msgs, r.Error())
	}
	return fmt.Sprintf("migration left %d record(s) at their old shape: %s",
		len(e.Records), strings.Join(msgs, "; "))
}
