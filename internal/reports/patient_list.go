// Package reports renders tabular exports of the patient collection.
package reports

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"neonatal-record-service/internal/dateutils"
	"neonatal-record-service/internal/domain/dtos"
	"neonatal-record-service/internal/domain/entities"
)

var patientListHeader = []string{
	"ID", "Nombre", "Apellido", "Historia Clínica", "Fecha de Nacimiento",
	"Sexo", "Peso (g)", "DDV",
}

// WritePatientList writes the ward list of the given records, one row per
// patient in the order received, as an XLSX workbook at path.
func WritePatientList(pacientes []entities.Paciente, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Pacientes")
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range patientListHeader {
		header.AddCell().Value = title
	}

	for _, p := range pacientes {
		resumen := dtos.NewPatientSummary(p)
		row := sheet.AddRow()
		row.AddCell().SetInt64(resumen.ID)
		row.AddCell().Value = resumen.Nombre
		row.AddCell().Value = resumen.Apellido
		row.AddCell().Value = resumen.NumeroHistoriaClinica
		row.AddCell().Value = dateutils.FormatDate(resumen.FechaNacimiento)
		row.AddCell().Value = resumen.Sexo
		row.AddCell().Value = resumen.Peso
		row.AddCell().Value = resumen.DDV
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("saving patient list to %s: %w", path, err)
	}
	return nil
}
