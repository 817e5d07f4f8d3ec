package entities

// Paciente represents a neonatal patient record, the single entity the store
// manages. Column names keep the upstream camelCase field names so an existing
// database file remains readable across releases.
//
// Only ID and CreatedAt are assigned by the store. Every clinical field is
// optional at the storage layer: absent groups default to empty strings (or
// false for vaccination flags) and must never corrupt reads of other groups.
type Paciente struct {
	// Identity & demographics.
	ID                    int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nombre                string `json:"nombre" gorm:"column:nombre;index:idx_pacientes_nombre_apellido,priority:1"`
	Apellido              string `json:"apellido" gorm:"column:apellido;index:idx_pacientes_nombre_apellido,priority:2"`
	FechaNacimiento       string `json:"fechaNacimiento" gorm:"column:fechaNacimiento"`
	HoraNacimiento        string `json:"horaNacimiento" gorm:"column:horaNacimiento"`
	NumeroHistoriaClinica string `json:"numeroHistoriaClinica" gorm:"column:numeroHistoriaClinica;uniqueIndex:uq_pacientes_numero_historia_clinica"`
	Sexo                  string `json:"sexo" gorm:"column:sexo"`
	HC                    string `json:"hc" gorm:"column:hc"`
	Pulsera               string `json:"pulsera" gorm:"column:pulsera"`
	NumeroDocumento       string `json:"numeroDocumento" gorm:"column:numeroDocumento"`
	Telefono              string `json:"telefono" gorm:"column:telefono"`
	ObraSocial            string `json:"obraSocial" gorm:"column:obraSocial"`
	DatosMaternos         string `json:"datosMaternos" gorm:"column:datosMaternos"`

	// Birth measurements & delivery data. DDV (days of life) is recomputed by
	// callers from the birth date and stored as a plain string.
	Peso              string `json:"peso" gorm:"column:peso"`
	Talla             string `json:"talla" gorm:"column:talla"`
	PerimetroCefalico string `json:"perimetroCefalico" gorm:"column:perimetroCefalico"`
	EdadGestacional   string `json:"edadGestacional" gorm:"column:edadGestacional"`
	Apgar             string `json:"apgar" gorm:"column:apgar"`
	DDV               string `json:"ddv" gorm:"column:ddv"`
	NacidoPor         string `json:"nacidoPor" gorm:"column:nacidoPor"`
	Presentacion      string `json:"presentacion" gorm:"column:presentacion"`
	LiquidoAmniotico  string `json:"liquidoAmniotico" gorm:"column:liquidoAmniotico"`
	RupturaMembranas  string `json:"rupturaMembranas" gorm:"column:rupturaMembranas"`
	Clasificacion     string `json:"clasificacion" gorm:"column:clasificacion"`
	Procedencia       string `json:"procedencia" gorm:"column:procedencia"`
	SectorInternacion string `json:"sectorInternacion" gorm:"column:sectorInternacion"`

	// Care-team attribution.
	Obstetra    string `json:"obstetra" gorm:"column:obstetra"`
	Enfermera   string `json:"enfermera" gorm:"column:enfermera"`
	Neonatologo string `json:"neonatologo" gorm:"column:neonatologo"`

	// Immunization.
	VacunacionHbsag    bool   `json:"vacunacionHbsag" gorm:"column:vacunacionHbsag"`
	LoteHbsag          string `json:"loteHbsag" gorm:"column:loteHbsag"`
	FechaHbsag         string `json:"fechaHbsag" gorm:"column:fechaHbsag"`
	VacunacionBcg      bool   `json:"vacunacionBcg" gorm:"column:vacunacionBcg"`
	LoteBcg            string `json:"loteBcg" gorm:"column:loteBcg"`
	FechaBcg           string `json:"fechaBcg" gorm:"column:fechaBcg"`
	PesquisaMetabolica bool   `json:"pesquisaMetabolica" gorm:"column:pesquisaMetabolica"`
	ProtocoloPesquisa  string `json:"protocoloPesquisa" gorm:"column:protocoloPesquisa"`
	FechaPesquisa      string `json:"fechaPesquisa" gorm:"column:fechaPesquisa"`
	HoraPesquisa       string `json:"horaPesquisa" gorm:"column:horaPesquisa"`

	// Lab panel.
	GrupoFactorRn           string `json:"grupoFactorRn" gorm:"column:grupoFactorRn"`
	GrupoFactorMaterno      string `json:"grupoFactorMaterno" gorm:"column:grupoFactorMaterno"`
	PCD                     string `json:"pcd" gorm:"column:pcd"`
	BilirrubinaTotalValor   string `json:"bilirrubinaTotalValor" gorm:"column:bilirrubinaTotalValor"`
	BilirrubinaDirectaValor string `json:"bilirrubinaDirectaValor" gorm:"column:bilirrubinaDirectaValor"`
	HematocritoValor        string `json:"hematocritoValor" gorm:"column:hematocritoValor"`
	Laboratorios            string `json:"laboratorios" gorm:"column:laboratorios"`

	// Maternal serologies.
	SarsCov2      string `json:"sarsCov2" gorm:"column:sarsCov2"`
	FechaCovid    string `json:"fechaCovid" gorm:"column:fechaCovid"`
	Chagas        string `json:"chagas" gorm:"column:chagas"`
	FechaChagas   string `json:"fechaChagas" gorm:"column:fechaChagas"`
	Toxoplasmosis string `json:"toxoplasmosis" gorm:"column:toxoplasmosis"`
	FechaToxo     string `json:"fechaToxo" gorm:"column:fechaToxo"`
	HIV           string `json:"hiv" gorm:"column:hiv"`
	FechaHIV      string `json:"fechaHIV" gorm:"column:fechaHIV"`
	VDRL          string `json:"vdrl" gorm:"column:vdrl"`
	FechaVDRL     string `json:"fechaVDRL" gorm:"column:fechaVDRL"`
	HepatitisB    string `json:"hepatitisB" gorm:"column:hepatitisB"`
	FechaHB       string `json:"fechaHB" gorm:"column:fechaHB"`
	EGB           string `json:"egb" gorm:"column:egb"`
	FechaEGB      string `json:"fechaEGB" gorm:"column:fechaEGB"`
	ProfilaxisATB string `json:"profilaxisATB" gorm:"column:profilaxisATB"`

	// Discharge & narrative data.
	FechaEgreso          string `json:"fechaEgreso" gorm:"column:fechaEgreso"`
	HoraEgreso           string `json:"horaEgreso" gorm:"column:horaEgreso"`
	PesoEgreso           string `json:"pesoEgreso" gorm:"column:pesoEgreso"`
	EvolucionInternacion string `json:"evolucionInternacion" gorm:"column:evolucionInternacion"`
	Diagnosticos         string `json:"diagnosticos" gorm:"column:diagnosticos"`
	IndicacionesEgreso   string `json:"indicacionesEgreso" gorm:"column:indicacionesEgreso"`
	Observaciones        string `json:"observaciones" gorm:"column:observaciones"`
	EnfermeraEgreso      string `json:"enfermeraEgreso" gorm:"column:enfermeraEgreso"`
	NeonatologoEgreso    string `json:"neonatologoEgreso" gorm:"column:neonatologoEgreso"`

	// Unix milliseconds, stamped by the store on insert, never mutated.
	CreatedAt int64 `json:"createdAt" gorm:"column:createdAt;autoCreateTime:milli"`
}

// TableName pins the collection name used since the first release.
func (Paciente) TableName() string { return "pacientes" }

// NombreCompleto returns the "nombre apellido" form the search path matches
// against.
func (p *Paciente) NombreCompleto() string {
	return p.Nombre + " " + p.Apellido
}
