package domain

import "time"

// TipoValoracion marks where an assessment sits in a client's journey.
type TipoValoracion string

const (
	ValoracionInicial     TipoValoracion = "INICIAL"
	ValoracionSeguimiento TipoValoracion = "SEGUIMIENTO"
	ValoracionFinal       TipoValoracion = "FINAL"
)

// ValoracionFisica is a dated physical-measurement record for a client.
// IMC is computed server-side from peso and altura; everything beyond the
// two required measurements is optional and may be absent.
type ValoracionFisica struct {
	ID        int            `json:"id"`
	ClienteID int            `json:"cliente_id"`
	Fecha     time.Time      `json:"fecha"`
	Tipo      TipoValoracion `json:"tipo"`

	// Medidas antropométricas
	Peso   float64  `json:"peso"`   // kg
	Altura float64  `json:"altura"` // cm
	IMC    *float64 `json:"imc,omitempty"`

	// Perímetros (cm)
	PerimetroCuello               *float64 `json:"perimetro_cuello,omitempty"`
	PerimetroHombros              *float64 `json:"perimetro_hombros,omitempty"`
	PerimetroPecho                *float64 `json:"perimetro_pecho,omitempty"`
	PerimetroCintura              *float64 `json:"perimetro_cintura,omitempty"`
	PerimetroCadera               *float64 `json:"perimetro_cadera,omitempty"`
	PerimetroBrazoDerecho         *float64 `json:"perimetro_brazo_derecho,omitempty"`
	PerimetroBrazoIzquierdo       *float64 `json:"perimetro_brazo_izquierdo,omitempty"`
	PerimetroAntebrazoDerecho     *float64 `json:"perimetro_antebrazo_derecho,omitempty"`
	PerimetroAntebrazoIzquierdo   *float64 `json:"perimetro_antebrazo_izquierdo,omitempty"`
	PerimetroMusloDerecho         *float64 `json:"perimetro_muslo_derecho,omitempty"`
	PerimetroMusloIzquierdo       *float64 `json:"perimetro_muslo_izquierdo,omitempty"`
	PerimetroPantorrillaDerecha   *float64 `json:"perimetro_pantorrilla_derecha,omitempty"`
	PerimetroPantorrillaIzquierda *float64 `json:"perimetro_pantorrilla_izquierda,omitempty"`

	// Composición corporal
	PorcentajeGrasa *float64 `json:"porcentaje_grasa,omitempty"`
	MasaMuscular    *float64 `json:"masa_muscular,omitempty"`
	MasaOsea        *float64 `json:"masa_osea,omitempty"`
	AguaCorporal    *float64 `json:"agua_corporal,omitempty"`
	GrasaVisceral   *float64 `json:"grasa_visceral,omitempty"`

	// Pliegues cutáneos (mm)
	PliegueTriceps      *float64 `json:"pliegue_triceps,omitempty"`
	PliegueSubescapular *float64 `json:"pliegue_subescapular,omitempty"`
	PliegueSuprailiaco  *float64 `json:"pliegue_suprailiaco,omitempty"`
	PliegueAbdominal    *float64 `json:"pliegue_abdominal,omitempty"`
	PliegueMuslo        *float64 `json:"pliegue_muslo,omitempty"`

	// Pruebas de rendimiento
	Flexiones1Min   *int     `json:"flexiones_1min,omitempty"`
	Abdominales1Min *int     `json:"abdominales_1min,omitempty"`
	Sentadillas1Min *int     `json:"sentadillas_1min,omitempty"`
	PlanchaSegundos *int     `json:"plancha_segundos,omitempty"`
	FlexibilidadCm  *float64 `json:"flexibilidad_cm,omitempty"`

	// Cardiovascular
	FrecuenciaCardiacaReposo  *int `json:"frecuencia_cardiaca_reposo,omitempty"`
	PresionArterialSistolica  *int `json:"presion_arterial_sistolica,omitempty"`
	PresionArterialDiastolica *int `json:"presion_arterial_diastolica,omitempty"`

	Notas     string `json:"notas,omitempty"`
	Objetivos string `json:"objetivos,omitempty"`
}

// ValoracionCreate is the create/patch payload. Every optional field is a
// pointer with omitempty so that empty form fields are omitted from the
// submitted document instead of arriving at the backend as nulls.
type ValoracionCreate struct {
	ClienteID int            `json:"cliente_id,omitempty"`
	Tipo      TipoValoracion `json:"tipo,omitempty"`

	Peso   *float64 `json:"peso,omitempty"`
	Altura *float64 `json:"altura,omitempty"`

	PerimetroCuello               *float64 `json:"perimetro_cuello,omitempty"`
	PerimetroHombros              *float64 `json:"perimetro_hombros,omitempty"`
	PerimetroPecho                *float64 `json:"perimetro_pecho,omitempty"`
	PerimetroCintura              *float64 `json:"perimetro_cintura,omitempty"`
	PerimetroCadera               *float64 `json:"perimetro_cadera,omitempty"`
	PerimetroBrazoDerecho         *float64 `json:"perimetro_brazo_derecho,omitempty"`
	PerimetroBrazoIzquierdo       *float64 `json:"perimetro_brazo_izquierdo,omitempty"`
	PerimetroAntebrazoDerecho     *float64 `json:"perimetro_antebrazo_derecho,omitempty"`
	PerimetroAntebrazoIzquierdo   *float64 `json:"perimetro_antebrazo_izquierdo,omitempty"`
	PerimetroMusloDerecho         *float64 `json:"perimetro_muslo_derecho,omitempty"`
	PerimetroMusloIzquierdo       *float64 `json:"perimetro_muslo_izquierdo,omitempty"`
	PerimetroPantorrillaDerecha   *float64 `json:"perimetro_pantorrilla_derecha,omitempty"`
	PerimetroPantorrillaIzquierda *float64 `json:"perimetro_pantorrilla_izquierda,omitempty"`

	PorcentajeGrasa *float64 `json:"porcentaje_grasa,omitempty"`
	MasaMuscular    *float64 `json:"masa_muscular,omitempty"`
	MasaOsea        *float64 `json:"masa_osea,omitempty"`
	AguaCorporal    *float64 `json:"agua_corporal,omitempty"`
	GrasaVisceral   *float64 `json:"grasa_visceral,omitempty"`

	PliegueTriceps      *float64 `json:"pliegue_triceps,omitempty"`
	PliegueSubescapular *float64 `json:"pliegue_subescapular,omitempty"`
	PliegueSuprailiaco  *float64 `json:"pliegue_suprailiaco,omitempty"`
	PliegueAbdominal    *float64 `json:"pliegue_abdominal,omitempty"`
	PliegueMuslo        *float64 `json:"pliegue_muslo,omitempty"`

	Flexiones1Min   *int     `json:"flexiones_1min,omitempty"`
	Abdominales1Min *int     `json:"abdominales_1min,omitempty"`
	Sentadillas1Min *int     `json:"sentadillas_1min,omitempty"`
	PlanchaSegundos *int     `json:"plancha_segundos,omitempty"`
	FlexibilidadCm  *float64 `json:"flexibilidad_cm,omitempty"`

	FrecuenciaCardiacaReposo  *int `json:"frecuencia_cardiaca_reposo,omitempty"`
	PresionArterialSistolica  *int `json:"presion_arterial_sistolica,omitempty"`
	PresionArterialDiastolica *int `json:"presion_arterial_diastolica,omitempty"`

	Notas     string `json:"notas,omitempty"`
	Objetivos string `json:"objetivos,omitempty"`
}
