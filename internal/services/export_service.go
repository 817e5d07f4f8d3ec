package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"neonatal-record-service/internal/adapters"
	"neonatal-record-service/internal/domain/dtos"
	"neonatal-record-service/internal/domain/repositories"
	"neonatal-record-service/internal/reports"
)

// PatientExportQueue is the queue the export jobs travel on.
const PatientExportQueue = "patient_export_jobs"

// exportJob is the payload placed on the queue for one export request.
type exportJob struct {
	ExportID    string `json:"exportId"`
	OutputPath  string `json:"outputPath"`
	RequestedAt int64  `json:"requestedAt"`
}

// ExportServiceImpl implements ExportServiceContract.
type ExportServiceImpl struct {
	patientRepo   repositories.PatientRepositoryContract
	queueAdapter  adapters.QueueAdapter
	logger        zerolog.Logger
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

func NewExportService(
	patientRepo repositories.PatientRepositoryContract,
	queueAdapter adapters.QueueAdapter,
	logger zerolog.Logger,
) ExportServiceContract {
	ctx, cancel := context.WithCancel(context.Background())
	return &ExportServiceImpl{
		patientRepo:   patientRepo,
		queueAdapter:  queueAdapter,
		logger:        logger,
		serviceCtx:    ctx,
		serviceCancel: cancel,
	}
}

func (s *ExportServiceImpl) Start(ctx context.Context) error {
	if err := s.queueAdapter.StartConsuming(s.serviceCtx, PatientExportQueue, s.handleExportJob); err != nil {
		return fmt.Errorf("starting consumer for %s: %w", PatientExportQueue, err)
	}
	s.logger.Info().Str("queue", PatientExportQueue).Msg("export service started")
	return nil
}

func (s *ExportServiceImpl) Stop(ctx context.Context) error {
	s.serviceCancel()
	s.logger.Info().Msg("export service stopped")
	return nil
}

func (s *ExportServiceImpl) InitiateExport(ctx context.Context, request dtos.InitiateExportRequest) (string, error) {
	if request.OutputPath == "" {
		return "", fmt.Errorf("outputPath is required")
	}

	job := exportJob{
		ExportID:    uuid.New().String(),
		OutputPath:  request.OutputPath,
		RequestedAt: time.Now().UnixMilli(),
	}
	jobBytes, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("encoding export job: %w", err)
	}

	if err := s.queueAdapter.Publish(ctx, PatientExportQueue, jobBytes); err != nil {
		s.logger.Error().Err(err).Str("exportId", job.ExportID).Msg("failed to enqueue export job")
		return "", fmt.Errorf("enqueueing export job: %w", err)
	}

	s.logger.Info().Str("exportId", job.ExportID).Str("outputPath", job.OutputPath).
		Msg("export job enqueued")
	return job.ExportID, nil
}

func (s *ExportServiceImpl) handleExportJob(ctx context.Context, jobData []byte) error {
	var job exportJob
	if err := json.Unmarshal(jobData, &job); err != nil {
		return fmt.Errorf("decoding export job: %w", err)
	}

	pacientes, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("exportId", job.ExportID).Msg("export failed reading records")
		return err
	}

	if err := reports.WritePatientList(pacientes, job.OutputPath); err != nil {
		s.logger.Error().Err(err).Str("exportId", job.ExportID).Msg("export failed writing spreadsheet")
		return err
	}

	s.logger.Info().Str("exportId", job.ExportID).Int("records", len(pacientes)).
		Str("outputPath", job.OutputPath).Msg("export completed")
	return nil
}
