package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"neonatal-record-service/internal/dateutils"
	"neonatal-record-service/internal/domain/entities"
	"neonatal-record-service/internal/domain/repositories"
)

// PatientServiceImpl implements PatientServiceContract.
type PatientServiceImpl struct {
	patientRepo repositories.PatientRepositoryContract
	logger      zerolog.Logger
}

func NewPatientService(repo repositories.PatientRepositoryContract, logger zerolog.Logger) PatientServiceContract {
	return &PatientServiceImpl{patientRepo: repo, logger: logger}
}

func (s *PatientServiceImpl) RegisterPatient(ctx context.Context, paciente *entities.Paciente) (int64, error) {
	if ddv, ok := dateutils.DaysOfLife(paciente.FechaNacimiento, paciente.HoraNacimiento, time.Now()); ok {
		paciente.DDV = strconv.Itoa(ddv)
	}

	id, err := s.patientRepo.Create(ctx, paciente)
	if err != nil {
		s.logger.Error().Err(err).Str("numeroHistoriaClinica", paciente.NumeroHistoriaClinica).
			Msg("patient registration failed")
		return 0, err
	}
	s.logger.Info().Int64("id", id).Msg("patient registered")
	return id, nil
}

func (s *PatientServiceImpl) GetPatient(ctx context.Context, id int64) (*entities.Paciente, error) {
	return s.patientRepo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) UpdatePatient(ctx context.Context, paciente *entities.Paciente) error {
	// createdAt is immutable after creation: whatever the form layer sends,
	// the stored stamp wins.
	existing, err := s.patientRepo.GetByID(ctx, paciente.ID)
	if err != nil {
		return fmt.Errorf("loading record %d before update: %w", paciente.ID, err)
	}
	if existing != nil {
		paciente.CreatedAt = existing.CreatedAt
	}

	if err := s.patientRepo.Update(ctx, paciente); err != nil {
		s.logger.Error().Err(err).Int64("id", paciente.ID).Msg("patient update failed")
		return err
	}
	s.logger.Info().Int64("id", paciente.ID).Msg("patient updated")
	return nil
}

func (s *PatientServiceImpl) SearchPatients(ctx context.Context, query string) ([]entities.Paciente, error) {
	return s.patientRepo.Search(ctx, query)
}
