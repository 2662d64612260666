package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gymops/admin-console/internal/progress"
)

// reportTemplate is the printable report layout. Coloring follows the
// direction-aware rule from the progress package: adverse deltas render in
// the warning color, favorable ones in green.
const reportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2430; margin: 24px; }
  h1 { font-size: 22px; margin-bottom: 0; }
  .subtitle { color: #6b7280; margin-top: 4px; }
  table { border-collapse: collapse; width: 100%; margin-top: 16px; }
  th, td { border: 1px solid #d1d5db; padding: 6px 10px; font-size: 12px; text-align: left; }
  th { background: #f3f4f6; }
  .favorable { color: #15803d; font-weight: 600; }
  .adversa { color: #b91c1c; font-weight: 600; }
  .neutral { color: #6b7280; }
</style>
</head>
<body>
<h1>Reporte de Progreso — {{.Cliente.NombreCompleto}}</h1>
<p class="subtitle">Generado el {{formatFecha .GeneradoEl}}</p>

{{if .Progreso}}{{if .Progreso.Mensaje}}
<p>{{.Progreso.Mensaje}}</p>
{{else}}
<table>
  <tr><th>Métrica</th><th>Primera</th><th>Última</th><th>Cambio</th></tr>
  <tr>
    <td>Peso (kg)</td>
    <td>{{printf "%.1f" .Progreso.PrimeraValoracion.Peso}}</td>
    <td>{{printf "%.1f" .Progreso.UltimaValoracion.Peso}}</td>
    <td class="{{clase "peso" .Progreso.Cambios.Peso}}">{{cambio .Progreso.Cambios.Peso " kg"}}</td>
  </tr>
  <tr>
    <td>IMC</td>
    <td>{{opt .Progreso.PrimeraValoracion.IMC}}</td>
    <td>{{opt .Progreso.UltimaValoracion.IMC}}</td>
    <td class="{{clase "imc" .Progreso.Cambios.IMC}}">{{cambio .Progreso.Cambios.IMC ""}}</td>
  </tr>
  <tr>
    <td>Grasa corporal (%)</td>
    <td>{{opt .Progreso.PrimeraValoracion.PorcentajeGrasa}}</td>
    <td>{{opt .Progreso.UltimaValoracion.PorcentajeGrasa}}</td>
    <td class="{{claseOpt "porcentaje_grasa" .Progreso.Cambios.PorcentajeGrasa}}">{{cambioOpt .Progreso.Cambios.PorcentajeGrasa "%"}}</td>
  </tr>
  <tr>
    <td>Masa muscular (kg)</td>
    <td>{{opt .Progreso.PrimeraValoracion.MasaMuscular}}</td>
    <td>{{opt .Progreso.UltimaValoracion.MasaMuscular}}</td>
    <td class="{{claseOpt "masa_muscular" .Progreso.Cambios.MasaMuscular}}">{{cambioOpt .Progreso.Cambios.MasaMuscular " kg"}}</td>
  </tr>
</table>
<p class="subtitle">{{.Progreso.TotalValoraciones}} valoraciones en {{.Progreso.DiasTranscurridos}} días</p>
{{end}}{{end}}

{{if .Serie}}
<table>
  <tr><th>Fecha</th><th>Peso (kg)</th><th>IMC</th><th>Grasa (%)</th><th>Músculo (kg)</th><th>Cintura (cm)</th></tr>
  {{range .Serie}}
  <tr>
    <td>{{formatFecha .Fecha}}</td>
    <td>{{printf "%.1f" .Peso}}</td>
    <td>{{opt .IMC}}</td>
    <td>{{opt .Grasa}}</td>
    <td>{{opt .Musculo}}</td>
    <td>{{opt .Cintura}}</td>
  </tr>
  {{end}}
</table>
{{end}}
</body>
</html>`

func claseDireccion(d progress.Direccion) string {
	switch d {
	case progress.DireccionFavorable:
		return "favorable"
	case progress.DireccionAdversa:
		return "adversa"
	default:
		return "neutral"
	}
}

var reportFuncs = template.FuncMap{
	"formatFecha": func(t time.Time) string {
		return t.Format("02 Jan 2006")
	},
	"opt": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.1f", *v)
	},
	"cambio": func(v float64, unidad string) string {
		return progress.FormatCambio(&v, unidad)
	},
	"cambioOpt": func(v *float64, unidad string) string {
		return progress.FormatCambio(v, unidad)
	},
	"clase": func(metrica string, cambio float64) string {
		return claseDireccion(progress.Clasificar(metrica, cambio))
	},
	"claseOpt": func(metrica string, cambio *float64) string {
		if cambio == nil {
			return "neutral"
		}
		return claseDireccion(progress.Clasificar(metrica, *cambio))
	},
}

var reportTmpl = template.Must(
	template.New("reporte").Funcs(reportFuncs).Parse(reportTemplate),
)

// renderHTML produces the printable HTML document for a report.
func renderHTML(reporte *progress.Reporte) (string, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, reporte); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return buf.String(), nil
}
