package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gymops/admin-console/internal/domain"
)

type rutinasAPI interface {
	ListRutinas(ctx context.Context) ([]domain.Rutina, error)
}

// RutinasView lists persisted routines. Creation goes through the routine
// builder, which re-enters this view via its saved callback.
type RutinasView struct {
	backend rutinasAPI
	out     io.Writer
	rutinas []domain.Rutina
}

func NewRutinasView(backend rutinasAPI, out io.Writer) *RutinasView {
	return &RutinasView{backend: backend, out: out}
}

func (v *RutinasView) Refresh(ctx context.Context) error {
	rutinas, err := v.backend.ListRutinas(ctx)
	if err != nil {
		return err
	}
	v.rutinas = rutinas
	return nil
}

func (v *RutinasView) Rutinas() []domain.Rutina {
	return v.rutinas
}

func (v *RutinasView) Render() {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCLIENTE\tNIVEL\tSEMANAS\tACTIVO")
	for _, r := range v.rutinas {
		activo := "sí"
		if !r.Activo {
			activo = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t%s\n",
			r.ID, r.Nombre, r.ClienteID, r.Nivel, r.DuracionSemanas, activo)
	}
	w.Flush()
}
