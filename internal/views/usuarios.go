package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gymops/admin-console/internal/domain"
)

type usuariosAPI interface {
	ListUsuarios(ctx context.Context) ([]domain.Usuario, error)
	CreateUsuario(ctx context.Context, payload domain.UsuarioCreate) (*domain.Usuario, error)
	UpdateUsuario(ctx context.Context, id int, payload domain.UsuarioCreate) (*domain.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) error
}

// UsuariosView manages staff accounts.
type UsuariosView struct {
	backend  usuariosAPI
	out      io.Writer
	prompt   Prompter
	usuarios []domain.Usuario
}

func NewUsuariosView(backend usuariosAPI, out io.Writer, prompt Prompter) *UsuariosView {
	return &UsuariosView{backend: backend, out: out, prompt: prompt}
}

func (v *UsuariosView) Refresh(ctx context.Context) error {
	usuarios, err := v.backend.ListUsuarios(ctx)
	if err != nil {
		return err
	}
	v.usuarios = usuarios
	return nil
}

func (v *UsuariosView) Usuarios() []domain.Usuario {
	return v.usuarios
}

func (v *UsuariosView) Render() {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL\tACTIVO")
	for _, u := range v.usuarios {
		activo := "sí"
		if !u.IsActive {
			activo = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role, activo)
	}
	w.Flush()
}

func (v *UsuariosView) Save(ctx context.Context, id int, payload domain.UsuarioCreate) error {
	var err error
	if id == 0 {
		_, err = v.backend.CreateUsuario(ctx, payload)
	} else {
		_, err = v.backend.UpdateUsuario(ctx, id, payload)
	}
	if err != nil {
		return err
	}
	return v.Refresh(ctx)
}

func (v *UsuariosView) Delete(ctx context.Context, id int) error {
	if !v.prompt.Confirm(fmt.Sprintf("¿Estás seguro de eliminar el usuario %d?", id)) {
		return nil
	}
	if err := v.backend.DeleteUsuario(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
