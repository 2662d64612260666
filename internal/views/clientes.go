package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gymops/admin-console/internal/domain"
)

type clientesAPI interface {
	ListClientes(ctx context.Context) ([]domain.ClienteGym, error)
	CreateCliente(ctx context.Context, payload domain.ClienteCreate) (*domain.ClienteGym, error)
	UpdateCliente(ctx context.Context, id int, payload domain.ClienteCreate) (*domain.ClienteGym, error)
	DeleteCliente(ctx context.Context, id int) error
}

// ClientesView manages the gym client roster.
type ClientesView struct {
	backend  clientesAPI
	out      io.Writer
	prompt   Prompter
	clientes []domain.ClienteGym
}

func NewClientesView(backend clientesAPI, out io.Writer, prompt Prompter) *ClientesView {
	return &ClientesView{backend: backend, out: out, prompt: prompt}
}

// Refresh replaces the local snapshot with the backend's current state.
func (v *ClientesView) Refresh(ctx context.Context) error {
	clientes, err := v.backend.ListClientes(ctx)
	if err != nil {
		return err
	}
	v.clientes = clientes
	return nil
}

// Clientes returns the current snapshot.
func (v *ClientesView) Clientes() []domain.ClienteGym {
	return v.clientes
}

// Find looks a client up in the local snapshot.
func (v *ClientesView) Find(id int) (domain.ClienteGym, bool) {
	for _, c := range v.clientes {
		if c.ID == id {
			return c, true
		}
	}
	return domain.ClienteGym{}, false
}

// Render writes the roster as a table.
func (v *ClientesView) Render() {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tTELÉFONO\tTIPO\tACTIVO")
	for _, c := range v.clientes {
		activo := "sí"
		if !c.Activo {
			activo = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.NombreCompleto(), c.Email, c.Telefono, c.TipoUsuario, activo)
	}
	w.Flush()
}

// Save creates (id == 0) or partially updates a client. Success triggers a
// full re-fetch; failure leaves the snapshot untouched so the caller can
// correct the payload and retry.
func (v *ClientesView) Save(ctx context.Context, id int, payload domain.ClienteCreate) error {
	var err error
	if id == 0 {
		_, err = v.backend.CreateCliente(ctx, payload)
	} else {
		_, err = v.backend.UpdateCliente(ctx, id, payload)
	}
	if err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// Delete removes a client after interactive confirmation. A declined
// confirmation performs no network call.
func (v *ClientesView) Delete(ctx context.Context, id int) error {
	if !v.prompt.Confirm(fmt.Sprintf("¿Estás seguro de eliminar el cliente %d?", id)) {
		return nil
	}
	if err := v.backend.DeleteCliente(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
