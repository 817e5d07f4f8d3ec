package repositories

import (
	"context"

	"neonatal-record-service/internal/domain/entities"
)

// PatientRepositoryContract defines the data operations over the single
// patient collection. All implementations open the store lazily: callers
// never initialize anything explicitly.
type PatientRepositoryContract interface {
	// Create assigns a fresh id and createdAt and inserts the record,
	// returning the assigned id. Fails with storage.ErrDuplicateKey when the
	// numeroHistoriaClinica is already taken.
	Create(ctx context.Context, paciente *entities.Paciente) (int64, error)

	// GetByID returns (nil, nil) when no record has that id.
	GetByID(ctx context.Context, id int64) (*entities.Paciente, error)

	// Update replaces the full record sharing the given id. It does not
	// check existence: updating an unknown id inserts at that id. Callers
	// that care must read first.
	Update(ctx context.Context, paciente *entities.Paciente) error

	// Delete removes a record. Exposed at the interface level; the core
	// application flows never call it.
	Delete(ctx context.Context, id int64) error

	// Search returns, in insertion order, the records whose "nombre apellido"
	// or numeroHistoriaClinica contains the query case-insensitively. An
	// empty query returns every record.
	Search(ctx context.Context, query string) ([]entities.Paciente, error)

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]entities.Paciente, error)
}
