package dtos

import (
	"neonatal-record-service/internal/domain/entities"
)

// PatientSummaryDTO is the tabular projection of a record used by listings
// and the patient-list export: identity plus the handful of columns a ward
// list needs, never the full clinical panel.
type PatientSummaryDTO struct {
	ID                    int64  `json:"id"`
	Nombre                string `json:"nombre"`
	Apellido              string `json:"apellido"`
	NumeroHistoriaClinica string `json:"numeroHistoriaClinica"`
	FechaNacimiento       string `json:"fechaNacimiento"`
	Sexo                  string `json:"sexo"`
	Peso                  string `json:"peso"`
	DDV                   string `json:"ddv"`
}

func NewPatientSummary(p entities.Paciente) PatientSummaryDTO {
	return PatientSummaryDTO{
		ID:                    p.ID,
		Nombre:                p.Nombre,
		Apellido:              p.Apellido,
		NumeroHistoriaClinica: p.NumeroHistoriaClinica,
		FechaNacimiento:       p.FechaNacimiento,
		Sexo:                  p.Sexo,
		Peso:                  p.Peso,
		DDV:                   p.DDV,
	}
}
