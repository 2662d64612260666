package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gymops/admin-console/internal/domain"
)

type valoracionesAPI interface {
	ListValoraciones(ctx context.Context, clienteID int) ([]domain.ValoracionFisica, error)
	CreateValoracion(ctx context.Context, payload domain.ValoracionCreate) (*domain.ValoracionFisica, error)
	UpdateValoracion(ctx context.Context, id int, payload domain.ValoracionCreate) (*domain.ValoracionFisica, error)
	DeleteValoracion(ctx context.Context, id int) error
}

// ValoracionesView manages physical assessments. The client filter is a
// declared fetch dependency: changing it re-fetches server-side.
type ValoracionesView struct {
	backend      valoracionesAPI
	out          io.Writer
	prompt       Prompter
	clienteID    int // 0 means all clients
	valoraciones []domain.ValoracionFisica
}

func NewValoracionesView(backend valoracionesAPI, out io.Writer, prompt Prompter) *ValoracionesView {
	return &ValoracionesView{backend: backend, out: out, prompt: prompt}
}

func (v *ValoracionesView) Refresh(ctx context.Context) error {
	valoraciones, err := v.backend.ListValoraciones(ctx, v.clienteID)
	if err != nil {
		return err
	}
	v.valoraciones = valoraciones
	return nil
}

// SetCliente changes the client filter and re-fetches.
func (v *ValoracionesView) SetCliente(ctx context.Context, clienteID int) error {
	v.clienteID = clienteID
	return v.Refresh(ctx)
}

func (v *ValoracionesView) Valoraciones() []domain.ValoracionFisica {
	return v.valoraciones
}

func (v *ValoracionesView) Render() {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENTE\tFECHA\tTIPO\tPESO\tIMC\tGRASA%")
	for _, val := range v.valoraciones {
		imc := "-"
		if val.IMC != nil {
			imc = fmt.Sprintf("%.1f", *val.IMC)
		}
		grasa := "-"
		if val.PorcentajeGrasa != nil {
			grasa = fmt.Sprintf("%.1f", *val.PorcentajeGrasa)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%.1f\t%s\t%s\n",
			val.ID, val.ClienteID, val.Fecha.Format("2006-01-02"), val.Tipo, val.Peso, imc, grasa)
	}
	w.Flush()
}

// Save creates (id == 0) or partially updates an assessment. The payload's
// empty optional fields stay omitted from the submitted document.
func (v *ValoracionesView) Save(ctx context.Context, id int, payload domain.ValoracionCreate) error {
	var err error
	if id == 0 {
		_, err = v.backend.CreateValoracion(ctx, payload)
	} else {
		_, err = v.backend.UpdateValoracion(ctx, id, payload)
	}
	if err != nil {
		return err
	}
	return v.Refresh(ctx)
}

func (v *ValoracionesView) Delete(ctx context.Context, id int) error {
	if !v.prompt.Confirm("¿Estás seguro de eliminar esta valoración?") {
		return nil
	}
	if err := v.backend.DeleteValoracion(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
