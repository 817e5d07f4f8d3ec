package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neonatal-record-service/internal/domain/entities"
)

func TestRenderEpicrisisFullRecord(t *testing.T) {
	p := &entities.Paciente{
		ID:                    1,
		Nombre:                "Juan",
		Apellido:              "Pérez",
		NumeroHistoriaClinica: "HC001",
		FechaNacimiento:       "2024-02-01",
		HoraNacimiento:        "08:15",
		Sexo:                  "M",
		Peso:                  "3500",
		Talla:                 "50",
		PerimetroCefalico:     "34",
		EdadGestacional:       "39",
		Apgar:                 "9/10",
		VacunacionHbsag:       true,
		FechaHbsag:            "2024-02-01",
		LoteHbsag:             "L-771",
		VacunacionBcg:         false,
		GrupoFactorRn:         "0+",
		SarsCov2:              "No reactivo",
		FechaCovid:            "2024-01-28",
		FechaEgreso:           "2024-02-04",
		HoraEgreso:            "11:00",
		PesoEgreso:            "3200",
		DDV:                   "3",
		Diagnosticos:          "RNT/PAEG",
		EnfermeraEgreso:       "N. Díaz",
		NeonatologoEgreso:     "Dra. Ruiz",
	}

	html, err := RenderEpicrisis(p)
	assert.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "EPICRISIS NEONATAL")
	assert.Contains(t, doc, "SANATORIO SAN FRANCISCO DE ASÍS")
	assert.Contains(t, doc, "Juan Pérez")
	assert.Contains(t, doc, "HC001")
	assert.Contains(t, doc, "Masculino")
	assert.Contains(t, doc, "01/02/2024 08:15 hs")
	assert.Contains(t, doc, "3500 g")
	assert.Contains(t, doc, "01/02/2024 (Lote: L-771)")
	// BCG was not given.
	assert.Contains(t, doc, "BCG:</span>No")
	assert.Contains(t, doc, "DATOS DEL EGRESO")
	// 3200 g at discharge against 3500 g at birth.
	assert.Contains(t, doc, "-8.57%")
	assert.Contains(t, doc, "Dra. Ruiz")
}

func TestRenderEpicrisisWithoutDischargeOmitsSection(t *testing.T) {
	p := &entities.Paciente{ID: 2, Nombre: "Ana", Apellido: "García", NumeroHistoriaClinica: "HC003"}

	html, err := RenderEpicrisis(p)
	assert.NoError(t, err)
	doc := string(html)

	assert.NotContains(t, doc, "DATOS DEL EGRESO")
	assert.Contains(t, doc, "Ana García")
	// Unset panel fields render as dashes, never break the document.
	assert.Contains(t, doc, "Pesquisa Metabólica:</span>No")
}

func TestDescensoPeso(t *testing.T) {
	assert.Equal(t, "-", descensoPeso("", "3200"))
	assert.Equal(t, "-", descensoPeso("3500", ""))
	assert.Equal(t, "Error en cálculo", descensoPeso("abc", "3200"))
	assert.Equal(t, "Error en cálculo", descensoPeso("0", "3200"))
	assert.Equal(t, "-8.57%", descensoPeso("3500", "3200"))
	assert.Equal(t, "2.86%", descensoPeso("3500", "3600"))
}
