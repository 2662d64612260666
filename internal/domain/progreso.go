package domain

import "time"

// ProgresoSnapshot is the first/last assessment extract inside a progress
// summary.
type ProgresoSnapshot struct {
	Fecha           time.Time `json:"fecha"`
	Peso            float64   `json:"peso"`
	IMC             *float64  `json:"imc,omitempty"`
	PorcentajeGrasa *float64  `json:"porcentaje_grasa,omitempty"`
	MasaMuscular    *float64  `json:"masa_muscular,omitempty"`
}

// ProgresoCambios holds the server-computed deltas between the first and
// most recent assessment. Grasa and músculo are nil when either endpoint
// lacks the measurement.
type ProgresoCambios struct {
	Peso            float64  `json:"peso"`
	IMC             float64  `json:"imc"`
	PorcentajeGrasa *float64 `json:"porcentaje_grasa"`
	MasaMuscular    *float64 `json:"masa_muscular"`
}

// Progreso is the read-only, server-computed progress summary for a client.
// When fewer than two assessments exist the backend responds with Mensaje
// set and no comparison data.
type Progreso struct {
	Mensaje            string            `json:"mensaje,omitempty"`
	ValoracionesCount  int               `json:"valoraciones_count,omitempty"`
	PrimeraValoracion  *ProgresoSnapshot `json:"primera_valoracion,omitempty"`
	UltimaValoracion   *ProgresoSnapshot `json:"ultima_valoracion,omitempty"`
	Cambios            *ProgresoCambios  `json:"cambios,omitempty"`
	TotalValoraciones  int               `json:"total_valoraciones,omitempty"`
	DiasTranscurridos  int               `json:"dias_transcurridos,omitempty"`
}
