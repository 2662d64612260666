package domain

import "time"

// TipoUsuario distinguishes how a gym client trains with us.
type TipoUsuario string

const (
	TipoUsuarioVirtual    TipoUsuario = "VIRTUAL"
	TipoUsuarioPresencial TipoUsuario = "PRESENCIAL"
	TipoUsuarioHibrido    TipoUsuario = "HIBRIDO"
)

// ClienteGym represents a gym client record as served by the backend.
// Identity and timestamps are server-owned; this program only mirrors them.
type ClienteGym struct {
	ID                  int         `json:"id"`
	Nombre              string      `json:"nombre"`
	Apellido            string      `json:"apellido"`
	Email               string      `json:"email"`
	Telefono            string      `json:"telefono,omitempty"`
	FechaNacimiento     string      `json:"fecha_nacimiento,omitempty"`
	TipoUsuario         TipoUsuario `json:"tipo_usuario"`
	ObjetivoFitness     string      `json:"objetivo_fitness,omitempty"`
	CondicionesMedicas  string      `json:"condiciones_medicas,omitempty"`
	Activo              bool        `json:"activo"`
	FechaInicio         string      `json:"fecha_inicio,omitempty"`
	CreatedAt           time.Time   `json:"created_at,omitempty"`
}

// ClienteCreate is the payload for creating or patching a client.
// Optional fields are omitted when empty rather than sent as null.
type ClienteCreate struct {
	Nombre             string      `json:"nombre"`
	Apellido           string      `json:"apellido"`
	Email              string      `json:"email"`
	Telefono           string      `json:"telefono,omitempty"`
	TipoUsuario        TipoUsuario `json:"tipo_usuario,omitempty"`
	ObjetivoFitness    string      `json:"objetivo_fitness,omitempty"`
	CondicionesMedicas string      `json:"condiciones_medicas,omitempty"`
}

// NombreCompleto is used in listings and report headers.
func (c ClienteGym) NombreCompleto() string {
	return c.Nombre + " " + c.Apellido
}
