package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gymops/admin-console/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Punto is one chart-ready sample: all tracked metrics of one assessment.
// Optional metrics stay nil when the assessment lacks them, so chart
// series simply skip those samples.
type Punto struct {
	Fecha   time.Time
	Peso    float64
	IMC     *float64
	Grasa   *float64
	Musculo *float64
	Cintura *float64
}

// Serie derives a chronologically ascending, chart-ready series from an
// assessment history. The sort is stable: assessments sharing a date keep
// their incoming relative order.
func Serie(valoraciones []domain.ValoracionFisica) []Punto {
	ordered := make([]domain.ValoracionFisica, len(valoraciones))
	copy(ordered, valoraciones)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Fecha.Before(ordered[j].Fecha)
	})

	serie := make([]Punto, 0, len(ordered))
	for _, v := range ordered {
		serie = append(serie, Punto{
			Fecha:   v.Fecha,
			Peso:    v.Peso,
			IMC:     v.IMC,
			Grasa:   v.PorcentajeGrasa,
			Musculo: v.MasaMuscular,
			Cintura: v.PerimetroCintura,
		})
	}
	return serie
}

// Direccion classifies a delta for display coloring.
type Direccion int

const (
	DireccionNeutral Direccion = iota
	DireccionFavorable
	DireccionAdversa
)

func (d Direccion) String() string {
	switch d {
	case DireccionFavorable:
		return "favorable"
	case DireccionAdversa:
		return "adversa"
	default:
		return "neutral"
	}
}

// Metric names as used by the progress summary.
const (
	MetricaPeso         = "peso"
	MetricaIMC          = "imc"
	MetricaGrasa        = "porcentaje_grasa"
	MetricaMasaMuscular = "masa_muscular"
)

// Clasificar applies the direction-aware coloring rule: for weight, BMI
// and fat percentage a positive change is adverse; for muscle mass the
// polarity is inverted, a gain is favorable.
func Clasificar(metrica string, cambio float64) Direccion {
	if cambio == 0 {
		return DireccionNeutral
	}
	subio := cambio > 0
	if metrica == MetricaMasaMuscular {
		if subio {
			return DireccionFavorable
		}
		return DireccionAdversa
	}
	if subio {
		return DireccionAdversa
	}
	return DireccionFavorable
}

// FormatCambio renders a delta with an explicit sign, or "-" when the
// metric was not measured at both endpoints.
func FormatCambio(cambio *float64, unidad string) string {
	if cambio == nil {
		return "-"
	}
	signo := ""
	if *cambio > 0 {
		signo = "+"
	}
	return fmt.Sprintf("%s%.1f%s", signo, *cambio, unidad)
}

// Reporte is the progress-report snapshot for one client: the raw
// assessment history, its chart-ready series, and the server-computed
// summary.
type Reporte struct {
	Cliente      domain.ClienteGym
	Valoraciones []domain.ValoracionFisica
	Serie        []Punto
	Progreso     *domain.Progreso
	GeneradoEl   time.Time
}

// backendAPI is the slice of the backend client the report needs.
type backendAPI interface {
	ListValoraciones(ctx context.Context, clienteID int) ([]domain.ValoracionFisica, error)
	GetProgreso(ctx context.Context, clienteID int) (*domain.Progreso, error)
}

// BuildReporte issues the two independent reads for a client and shapes
// the result. Either read failing is logged and leaves its part of the
// report empty; the other part still renders.
func BuildReporte(ctx context.Context, backend backendAPI, cliente domain.ClienteGym) *Reporte {
	reporte := &Reporte{
		Cliente:    cliente,
		GeneradoEl: time.Now(),
	}

	valoraciones, err := backend.ListValoraciones(ctx, cliente.ID)
	if err != nil {
		log.Errorf("progress report: load assessments for client %d: %s", cliente.ID, err)
	} else {
		reporte.Valoraciones = valoraciones
		reporte.Serie = Serie(valoraciones)
	}

	progreso, err := backend.GetProgreso(ctx, cliente.ID)
	if err != nil {
		log.Errorf("progress report: load summary for client %d: %s", cliente.ID, err)
	} else {
		reporte.Progreso = progreso
	}

	return reporte
}
