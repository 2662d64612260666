package domain

import "time"

// DetalleEjercicio is one catalog exercise placed into a training day with
// its prescription. NombreEjercicio is a display snapshot of the catalog
// name taken at selection time; it is never resynced afterwards.
type DetalleEjercicio struct {
	EjercicioID      int    `json:"ejercicio_id"`
	NombreEjercicio  string `json:"nombre_ejercicio"`
	Series           int    `json:"series"`
	Repeticiones     string `json:"repeticiones"` // "10-12", "Al fallo", "15"
	PesoSugerido     string `json:"peso_sugerido"` // "20kg", "RPE 8"
	DescansoSegundos int    `json:"descanso_segundos"`
	Notas            string `json:"notas"`
}

// DiaRutina is one training-session template within a routine.
// Orden must always equal the day's 1-based position in the parent slice.
type DiaRutina struct {
	Nombre     string             `json:"nombre"` // "Día A: Empuje", "Día 1: Pierna Completa"
	Orden      int                `json:"orden"`
	Ejercicios []DetalleEjercicio `json:"ejercicios"`
}

// RutinaDraft is the full routine document as submitted to the creation
// endpoint. It exists only in memory until the backend assigns identity.
type RutinaDraft struct {
	Nombre          string      `json:"nombre"`
	Descripcion     string      `json:"descripcion"`
	Objetivo        string      `json:"objetivo"`
	Nivel           string      `json:"nivel"` // Principiante, Intermedio, Avanzado
	DuracionSemanas int         `json:"duracion_semanas"`
	ClienteID       int         `json:"cliente_id"`
	Dias            []DiaRutina `json:"dias"`
}

// Rutina is a persisted routine as returned by the backend listing.
type Rutina struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     string    `json:"descripcion,omitempty"`
	Objetivo        string    `json:"objetivo,omitempty"`
	Nivel           string    `json:"nivel"`
	DuracionSemanas int       `json:"duracion_semanas"`
	ClienteID       int       `json:"cliente_id"`
	EntrenadorID    int       `json:"entrenador_id"`
	Activo          bool      `json:"activo"`
	FechaInicio     time.Time `json:"fecha_inicio"`
}
