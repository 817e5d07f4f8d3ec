package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"neonatal-record-service/internal/domain/entities"
	"neonatal-record-service/internal/storage"
)

// PatientRepositoryImpl implements PatientRepositoryContract on top of the
// embedded store engine.
type PatientRepositoryImpl struct {
	store  *storage.Store
	logger zerolog.Logger
}

func NewPatientRepository(store *storage.Store, logger zerolog.Logger) PatientRepositoryContract {
	return &PatientRepositoryImpl{store: store, logger: logger}
}

func (r *PatientRepositoryImpl) Create(ctx context.Context, paciente *entities.Paciente) (int64, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return 0, err
	}

	// Both id and createdAt are store-assigned, atomically with the insert.
	paciente.ID = 0
	paciente.CreatedAt = 0

	if err := db.WithContext(ctx).Create(paciente).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %q", storage.ErrDuplicateKey, paciente.NumeroHistoriaClinica)
		}
		return 0, fmt.Errorf("inserting patient record: %w", err)
	}

	r.logger.Info().Int64("id", paciente.ID).Msg("patient record created")
	return paciente.ID, nil
}

func (r *PatientRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Paciente, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var paciente entities.Paciente
	err = db.WithContext(ctx).First(&paciente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Absence is a soft condition, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading patient record %d: %w", id, err)
	}
	return &paciente, nil
}

func (r *PatientRepositoryImpl) Update(ctx context.Context, paciente *entities.Paciente) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	// Replace-or-insert keyed by id, matching the source semantics: no
	// existence check is performed here.
	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(paciente).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", storage.ErrDuplicateKey, paciente.NumeroHistoriaClinica)
		}
		return fmt.Errorf("updating patient record %d: %w", paciente.ID, err)
	}

	r.logger.Info().Int64("id", paciente.ID).Msg("patient record updated")
	return nil
}

func (r *PatientRepositoryImpl) Delete(ctx context.Context, id int64) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Delete(&entities.Paciente{}, id).Error; err != nil {
		return fmt.Errorf("deleting patient record %d: %w", id, err)
	}
	return nil
}

// Search walks the whole collection, like the cursor scan it replaces. The
// two indexes exist for uniqueness and exact lookups only; substring search
// is intentionally a linear pass.
func (r *PatientRepositoryImpl) Search(ctx context.Context, query string) ([]entities.Paciente, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	resultados := make([]entities.Paciente, 0, len(all))
	for _, p := range all {
		nombreCompleto := strings.ToLower(p.NombreCompleto())
		if strings.Contains(nombreCompleto, query) ||
			strings.Contains(strings.ToLower(p.NumeroHistoriaClinica), query) {
			resultados = append(resultados, p)
		}
	}
	return resultados, nil
}

func (r *PatientRepositoryImpl) ListAll(ctx context.Context) ([]entities.Paciente, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var pacientes []entities.Paciente
	if err := db.WithContext(ctx).Order("id").Find(&pacientes).Error; err != nil {
		return nil, fmt.Errorf("listing patient records: %w", err)
	}
	return pacientes, nil
}

// isUniqueViolation detects the unique-index rejection across the driver's
// translated and raw error forms.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
