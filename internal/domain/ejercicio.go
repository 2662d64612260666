package domain

// Ejercicio is a read-mostly exercise catalog entry.
type Ejercicio struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	GrupoMuscular   string `json:"grupo_muscular"` // Pecho, Espalda, Pierna, Hombro, Brazo, Core, Cardio
	Descripcion     string `json:"descripcion,omitempty"`
	EquipoNecesario string `json:"equipo_necesario,omitempty"` // Mancuernas, Barra, Máquina, Peso Corporal
	VideoURL        string `json:"video_url,omitempty"`
}

// EjercicioCreate is the payload for adding or patching a catalog entry.
type EjercicioCreate struct {
	Nombre          string `json:"nombre"`
	GrupoMuscular   string `json:"grupo_muscular"`
	Descripcion     string `json:"descripcion,omitempty"`
	EquipoNecesario string `json:"equipo_necesario,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
}
