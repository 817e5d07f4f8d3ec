// Package documents renders the printable documents of the record system.
// Renderers are pure functions of a single fully-populated record: they never
// touch the store.
package documents

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"neonatal-record-service/internal/dateutils"
	"neonatal-record-service/internal/domain/entities"
)

// epicrisisData is the precomputed view model handed to the template.
type epicrisisData struct {
	P *entities.Paciente

	Titulo          string
	Sexo            string
	FechaNacimiento string
	HBsAg           string
	BCG             string
	Pesquisa        string
	FechaEgreso     string
	DescensoPeso    string
	TieneEgreso     bool

	Serologias []serologia
}

type serologia struct {
	Etiqueta string
	Valor    string
	Fecha    string
}

// RenderEpicrisis produces the static A4 "EPICRISIS NEONATAL" document for
// one record as a self-contained HTML page.
func RenderEpicrisis(p *entities.Paciente) ([]byte, error) {
	data := epicrisisData{
		P:               p,
		Titulo:          fmt.Sprintf("EPICRISIS NEONATAL - %s %s", p.Nombre, p.Apellido),
		Sexo:            sexoLabel(p.Sexo),
		FechaNacimiento: dateutils.FormatDate(p.FechaNacimiento),
		HBsAg:           vacunaLabel(p.VacunacionHbsag, p.FechaHbsag, p.LoteHbsag),
		BCG:             vacunaLabel(p.VacunacionBcg, p.FechaBcg, p.LoteBcg),
		Pesquisa:        pesquisaLabel(p),
		FechaEgreso:     dateutils.FormatDate(p.FechaEgreso),
		DescensoPeso:    descensoPeso(p.Peso, p.PesoEgreso),
		TieneEgreso:     p.FechaEgreso != "" || p.PesoEgreso != "",
		Serologias: []serologia{
			{"SarsCov2 PCR", p.SarsCov2, dateutils.FormatDate(p.FechaCovid)},
			{"Chagas", p.Chagas, dateutils.FormatDate(p.FechaChagas)},
			{"Toxoplasmosis", p.Toxoplasmosis, dateutils.FormatDate(p.FechaToxo)},
			{"HIV", p.HIV, dateutils.FormatDate(p.FechaHIV)},
			{"VDRL", p.VDRL, dateutils.FormatDate(p.FechaVDRL)},
			{"Hepatitis B", p.HepatitisB, dateutils.FormatDate(p.FechaHB)},
			{"EGB", p.EGB, dateutils.FormatDate(p.FechaEGB)},
			{"Profilaxis ATB", p.ProfilaxisATB, ""},
		},
	}

	var buf bytes.Buffer
	if err := epicrisisTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering epicrisis for record %d: %w", p.ID, err)
	}
	return buf.Bytes(), nil
}

func sexoLabel(sexo string) string {
	switch sexo {
	case "M":
		return "Masculino"
	case "F":
		return "Femenino"
	case "":
		return "-"
	default:
		return sexo
	}
}

func vacunaLabel(aplicada bool, fecha, lote string) string {
	if !aplicada {
		return "No"
	}
	return fmt.Sprintf("%s (Lote: %s)", dateutils.FormatDate(fecha), orDash(lote))
}

func pesquisaLabel(p *entities.Paciente) string {
	if !p.PesquisaMetabolica {
		return "No"
	}
	return fmt.Sprintf("%s %s (Protocolo: %s)",
		dateutils.FormatDate(p.FechaPesquisa), p.HoraPesquisa, orDash(p.ProtocoloPesquisa))
}

// descensoPeso is the weight variation between birth and discharge, as a
// percentage of the birth weight.
func descensoPeso(peso, pesoEgreso string) string {
	if peso == "" || pesoEgreso == "" {
		return "-"
	}
	nacimiento, err1 := strconv.ParseFloat(peso, 64)
	egreso, err2 := strconv.ParseFloat(pesoEgreso, 64)
	if err1 != nil || err2 != nil || nacimiento == 0 {
		return "Error en cálculo"
	}
	return fmt.Sprintf("%.2f%%", egreso*100/nacimiento-100)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var epicrisisTmpl = template.Must(template.New("epicrisis").Funcs(template.FuncMap{
	"dash":       orDash,
	"formatDate": dateutils.FormatDate,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Titulo}}</title>
<style>
@page { size: A4; margin: 2cm; }
body { font-family: Arial, sans-serif; margin: 0; padding: 0; font-size: 10px; line-height: 1.3; }
.documento { width: 100%; max-width: 21cm; min-height: 29.7cm; padding: 1cm; box-sizing: border-box; }
.header { text-align: center; margin-bottom: 15px; border-bottom: 1px solid #000; padding: 30px; color: black; }
.titulo { font-size: 20px; font-weight: bold; margin: 0; }
.subtitulo { font-size: 12px; margin: 5px 0; }
.seccion { margin-bottom: 12px; page-break-inside: avoid; }
.seccion-titulo { font-weight: bold; margin-bottom: 5px; font-size: 11px; background: #f5f5f5; padding: 2px 5px; }
.grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 3px 10px; }
.grid-4 { grid-template-columns: repeat(4, 1fr); }
.grid-2 { grid-template-columns: repeat(2, 1fr); }
.campo { padding: 2px 5px; }
.campo .etiqueta { font-weight: bold; margin-right: 2px; }
.texto-largo { margin: 5px 0; font-size: 10px; line-height: 1.3; }
.pie-pagina { margin-top: 25px; padding-top: 5px; }
.firmas { display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; margin-top: 40px; }
.firma { border-top: 1px solid #000; padding-top: 2px; text-align: center; }
</style>
</head>
<body>
<div class="documento">
  <div class="header">
    <h1 class="titulo">EPICRISIS NEONATAL</h1>
    <p class="subtitulo">SANATORIO SAN FRANCISCO DE ASÍS</p>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">DATOS DEL RECIÉN NACIDO</div>
    <div class="grid grid-4">
      <div class="campo"><span class="etiqueta">Nombre:</span>{{.P.Nombre}} {{.P.Apellido}}</div>
      <div class="campo"><span class="etiqueta">Fecha y Hora de Nacimiento:</span>{{.FechaNacimiento}} {{.P.HoraNacimiento}} hs</div>
      <div class="campo"><span class="etiqueta">Sexo:</span>{{.Sexo}}</div>
      <div class="campo"><span class="etiqueta">Historia Clínica:</span>{{dash .P.NumeroHistoriaClinica}}</div>
    </div>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">MEDIDAS ANTROPOMÉTRICAS</div>
    <div class="grid">
      <div class="campo"><span class="etiqueta">Peso:</span>{{if .P.Peso}}{{.P.Peso}} g{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">Talla:</span>{{if .P.Talla}}{{.P.Talla}} cm{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">PC:</span>{{if .P.PerimetroCefalico}}{{.P.PerimetroCefalico}} cm{{else}}-{{end}}</div>
    </div>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">DATOS DEL PARTO</div>
    <div class="grid">
      <div class="campo"><span class="etiqueta">Edad Gestacional:</span>{{if .P.EdadGestacional}}{{.P.EdadGestacional}} semanas{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">APGAR:</span>{{dash .P.Apgar}}</div>
      <div class="campo"><span class="etiqueta">Nacido por:</span>{{dash .P.NacidoPor}}</div>
      <div class="campo"><span class="etiqueta">Presentación:</span>{{dash .P.Presentacion}}</div>
      <div class="campo"><span class="etiqueta">Líquido Amniótico:</span>{{dash .P.LiquidoAmniotico}}</div>
      <div class="campo"><span class="etiqueta">Clasificación del RN:</span>{{dash .P.Clasificacion}}</div>
    </div>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">VACUNACIÓN Y PESQUISA</div>
    <div class="grid">
      <div class="campo"><span class="etiqueta">HBsAg:</span>{{.HBsAg}}</div>
      <div class="campo"><span class="etiqueta">BCG:</span>{{.BCG}}</div>
      <div class="campo"><span class="etiqueta">Pesquisa Metabólica:</span>{{.Pesquisa}}</div>
    </div>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">LABORATORIOS</div>
    <div class="grid grid-4">
      <div class="campo"><span class="etiqueta">Grupo y Factor del RN:</span>{{dash .P.GrupoFactorRn}}</div>
      <div class="campo"><span class="etiqueta">Grupo y Factor Materno:</span>{{dash .P.GrupoFactorMaterno}}</div>
      <div class="campo"><span class="etiqueta">PCD:</span>{{dash .P.PCD}}</div>
      <div class="campo"><span class="etiqueta">Bilirrubina Total:</span>{{if .P.BilirrubinaTotalValor}}{{.P.BilirrubinaTotalValor}} mg/dl{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">Bilirrubina Directa:</span>{{if .P.BilirrubinaDirectaValor}}{{.P.BilirrubinaDirectaValor}} mg/dl{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">Hematocrito:</span>{{if .P.HematocritoValor}}{{.P.HematocritoValor}}%{{else}}-{{end}}</div>
      <div class="campo"><span class="etiqueta">Otros laboratorios:</span>{{dash .P.Laboratorios}}</div>
    </div>
  </div>

  <div class="seccion">
    <div class="seccion-titulo">SEROLOGIAS MATERNAS</div>
    <div class="grid grid-4">
      {{range .Serologias}}
      <div class="campo"><span class="etiqueta">{{.Etiqueta}}:</span>{{dash .Valor}} {{dash .Fecha}}</div>
      {{end}}
    </div>
  </div>

  {{if .TieneEgreso}}
  <div class="seccion">
    <div class="seccion-titulo">DATOS DEL EGRESO</div>
    <div class="grid">
      <div class="campo"><span class="etiqueta">Fecha:</span>{{dash .FechaEgreso}}</div>
      <div class="campo"><span class="etiqueta">DDV:</span>{{dash .P.DDV}}</div>
      <div class="campo"><span class="etiqueta">Hora:</span>{{dash .P.HoraEgreso}}</div>
      <div class="campo"><span class="etiqueta">Peso Egreso:</span>{{dash .P.PesoEgreso}} g</div>
      <div class="campo"><span class="etiqueta">% descenso:</span>{{.DescensoPeso}}</div>
    </div>
  </div>
  {{end}}

  <div class="seccion">
    <div class="seccion-titulo">EVOLUCIÓN E INDICACIONES</div>
    <div class="grid grid-2">
      <div class="campo"><span class="etiqueta">Evolución:</span>{{dash .P.EvolucionInternacion}}</div>
      <div class="campo"><span class="etiqueta">Diagnósticos:</span>{{dash .P.Diagnosticos}}</div>
      <div class="campo"><span class="etiqueta">Indicaciones:</span>{{dash .P.IndicacionesEgreso}}</div>
      <div class="campo"><span class="etiqueta">Observaciones:</span>{{dash .P.Observaciones}}</div>
    </div>
  </div>

  {{if .TieneEgreso}}
  <div class="seccion">
    <div class="grid grid-2">
      <div class="campo"><span class="etiqueta">Enfermera:</span>{{dash .P.EnfermeraEgreso}}</div>
      <div class="campo"><span class="etiqueta">Neonatólogo/a:</span>{{dash .P.NeonatologoEgreso}}</div>
    </div>
  </div>
  {{end}}

  <div class="pie-pagina">
    <p class="texto-largo"><strong>Realizar consulta ambulatoria por consultorios externos para seguimiento del recién nacido dentro de los 7 (siete) días de producido el egreso sanatorial.</strong></p>
    <p class="texto-largo">A fin de dar cumplimiento a lo estipulado en el ART 4 INC.D del D.R. N° 208/01 de la Ley básica de salud N° 153/99, a pedido del paciente, familiar, representante legal, se hace entrega en este acto de copia de Epicrisis de historia clínica del RN.</p>
    <div class="firmas">
      <div class="firma">Firma del familiar responsable<br>Aclaración:<br>DNI:</div>
      <div class="firma">Firma y sello del profesional</div>
    </div>
  </div>
</div>
</body>
</html>
`))
