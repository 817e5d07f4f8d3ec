package services

import (
	"context"

	"neonatal-record-service/internal/domain/entities"
)

// PatientServiceContract is the boundary the view and form layer talks to.
// It hands records back and forth as plain field structs; the index and
// migration machinery underneath never leaks through it.
type PatientServiceContract interface {
	// RegisterPatient inserts a new record. The id and createdAt fields of
	// the argument are ignored; the assigned id is returned. The ddv field is
	// recomputed from the birth date before the insert.
	RegisterPatient(ctx context.Context, paciente *entities.Paciente) (int64, error)

	// GetPatient returns (nil, nil) when the id is unknown.
	GetPatient(ctx context.Context, id int64) (*entities.Paciente, error)

	// UpdatePatient replaces the stored record with the given one, keeping
	// the original createdAt. Callers supply the complete record; there are
	// no partial updates.
	UpdatePatient(ctx context.Context, paciente *entities.Paciente) error

	// SearchPatients forwards to the store's sequential text search.
	SearchPatients(ctx context.Context, query string) ([]entities.Paciente, error)
}
