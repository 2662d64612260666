package export

import (
	"testing"
	"time"

	"gymops/admin-console/internal/domain"
	"gymops/admin-console/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fl(v float64) *float64 { return &v }

func sampleReporte() *progress.Reporte {
	masa := fl(2.0)
	return &progress.Reporte{
		Cliente:    domain.ClienteGym{ID: 7, Nombre: "Ana", Apellido: "García"},
		GeneradoEl: time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC),
		Serie: []progress.Punto{
			{Fecha: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Peso: 83.0, IMC: fl(26.1)},
			{Fecha: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), Peso: 80.5},
		},
		Progreso: &domain.Progreso{
			PrimeraValoracion: &domain.ProgresoSnapshot{Peso: 83.0, IMC: fl(26.1)},
			UltimaValoracion:  &domain.ProgresoSnapshot{Peso: 80.5, IMC: fl(25.3)},
			Cambios: &domain.ProgresoCambios{
				Peso:         -2.5,
				IMC:          -0.8,
				MasaMuscular: masa,
			},
			TotalValoraciones: 2,
			DiasTranscurridos: 19,
		},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := renderHTML(sampleReporte())
	require.NoError(t, err)

	assert.Contains(t, html, "Ana García")
	assert.Contains(t, html, "-2.5 kg")
	assert.Contains(t, html, "+2.0 kg")
	assert.Contains(t, html, "2 valoraciones en 19 días")

	// weight loss is favorable, muscle gain is favorable too
	assert.Contains(t, html, `class="favorable">-2.5 kg`)
	assert.Contains(t, html, `class="favorable">+2.0 kg`)
	// fat percentage was never measured: neutral dash
	assert.Contains(t, html, `class="neutral">-`)
}

func TestRenderHTMLMensajeOnly(t *testing.T) {
	reporte := &progress.Reporte{
		Cliente:    domain.ClienteGym{Nombre: "Ana", Apellido: "García"},
		GeneradoEl: time.Now(),
		Progreso: &domain.Progreso{
			Mensaje: "Se necesitan al menos 2 valoraciones para calcular el progreso",
		},
	}

	html, err := renderHTML(reporte)
	require.NoError(t, err)
	assert.Contains(t, html, "Se necesitan al menos 2 valoraciones")
	assert.NotContains(t, html, "Métrica")
}

func TestReportFileName(t *testing.T) {
	generado := time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "progreso_Ana_García_2025-04-02.pdf", reportFileName("Ana García", generado))
	assert.Equal(t, "progreso_Juan_Pérez_Soto_2025-04-02.pdf", reportFileName("Juan  Pérez Soto", generado))
}
