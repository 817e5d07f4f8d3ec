package services

import (
	"context"

	"neonatal-record-service/internal/domain/dtos"
)

// ExportServiceContract runs the asynchronous patient-list export pipeline:
// jobs are queued by InitiateExport and consumed in the background while the
// caller goes back to the forms.
type ExportServiceContract interface {
	// Start launches the queue consumer.
	Start(ctx context.Context) error
	// Stop shuts the consumer down.
	Stop(ctx context.Context) error

	// InitiateExport enqueues an export of the full patient list to the
	// spreadsheet at request.OutputPath, returning the job's export id.
	InitiateExport(ctx context.Context, request dtos.InitiateExportRequest) (exportID string, err error)
}
