package dtos

// InitiateExportRequest asks for the current patient list to be written as a
// spreadsheet at OutputPath. Processing is asynchronous; the caller receives
// an export id to correlate log entries.
type InitiateExportRequest struct {
	OutputPath string `json:"outputPath" validate:"required"`
}

// InitiateExportResponse acknowledges an accepted export job.
type InitiateExportResponse struct {
	ExportID string `json:"exportId"`
	Status   string `json:"status"`
}
