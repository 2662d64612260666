package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gymops/admin-console/internal/domain"
)

type ejerciciosAPI interface {
	ListEjercicios(ctx context.Context, grupoMuscular string) ([]domain.Ejercicio, error)
	CreateEjercicio(ctx context.Context, payload domain.EjercicioCreate) (*domain.Ejercicio, error)
	UpdateEjercicio(ctx context.Context, id int, payload domain.EjercicioCreate) (*domain.Ejercicio, error)
	DeleteEjercicio(ctx context.Context, id int) error
}

// EjerciciosView manages the exercise catalog. The muscle-group filter is
// a declared fetch dependency: changing it re-fetches server-side.
type EjerciciosView struct {
	backend    ejerciciosAPI
	out        io.Writer
	prompt     Prompter
	filtro     string // grupo_muscular, empty for all
	ejercicios []domain.Ejercicio
}

func NewEjerciciosView(backend ejerciciosAPI, out io.Writer, prompt Prompter) *EjerciciosView {
	return &EjerciciosView{backend: backend, out: out, prompt: prompt}
}

func (v *EjerciciosView) Refresh(ctx context.Context) error {
	ejercicios, err := v.backend.ListEjercicios(ctx, v.filtro)
	if err != nil {
		return err
	}
	v.ejercicios = ejercicios
	return nil
}

// SetFiltro changes the muscle-group filter and re-fetches the catalog.
func (v *EjerciciosView) SetFiltro(ctx context.Context, grupoMuscular string) error {
	v.filtro = grupoMuscular
	return v.Refresh(ctx)
}

func (v *EjerciciosView) Filtro() string {
	return v.filtro
}

func (v *EjerciciosView) Ejercicios() []domain.Ejercicio {
	return v.ejercicios
}

// Find looks a catalog entry up in the local snapshot.
func (v *EjerciciosView) Find(id int) (domain.Ejercicio, bool) {
	for _, e := range v.ejercicios {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Ejercicio{}, false
}

func (v *EjerciciosView) Render() {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tGRUPO\tEQUIPO")
	for _, e := range v.ejercicios {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Nombre, e.GrupoMuscular, e.EquipoNecesario)
	}
	w.Flush()
}

func (v *EjerciciosView) Save(ctx context.Context, id int, payload domain.EjercicioCreate) error {
	var err error
	if id == 0 {
		_, err = v.backend.CreateEjercicio(ctx, payload)
	} else {
		_, err = v.backend.UpdateEjercicio(ctx, id, payload)
	}
	if err != nil {
		return err
	}
	return v.Refresh(ctx)
}

func (v *EjerciciosView) Delete(ctx context.Context, id int) error {
	if !v.prompt.Confirm(fmt.Sprintf("¿Estás seguro de eliminar el ejercicio %d?", id)) {
		return nil
	}
	if err := v.backend.DeleteEjercicio(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
