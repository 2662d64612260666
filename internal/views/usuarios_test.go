package views

import (
	"bytes"
	"context"
	"testing"

	"gymops/admin-console/internal/api"
	"gymops/admin-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsuariosBackend struct {
	usuarios  []domain.Usuario
	listCalls int
	saveErr   error
	deleted   []int
}

func (f *fakeUsuariosBackend) ListUsuarios(_ context.Context) ([]domain.Usuario, error) {
	f.listCalls++
	return f.usuarios, nil
}

func (f *fakeUsuariosBackend) CreateUsuario(_ context.Context, payload domain.UsuarioCreate) (*domain.Usuario, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	nuevo := domain.Usuario{ID: len(f.usuarios) + 1, Email: payload.Email, FullName: payload.FullName, Role: payload.Role, IsActive: true}
	f.usuarios = append(f.usuarios, nuevo)
	return &nuevo, nil
}

func (f *fakeUsuariosBackend) UpdateUsuario(_ context.Context, id int, payload domain.UsuarioCreate) (*domain.Usuario, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i := range f.usuarios {
		if f.usuarios[i].ID == id {
			if payload.FullName != "" {
				f.usuarios[i].FullName = payload.FullName
			}
			return &f.usuarios[i], nil
		}
	}
	return nil, &api.Error{StatusCode: 404, Detail: "Usuario no encontrado"}
}

func (f *fakeUsuariosBackend) DeleteUsuario(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	for i := range f.usuarios {
		if f.usuarios[i].ID == id {
			f.usuarios = append(f.usuarios[:i], f.usuarios[i+1:]...)
			break
		}
	}
	return nil
}

func TestUsuariosSaveTriggersRefetch(t *testing.T) {
	backend := &fakeUsuariosBackend{}
	view := NewUsuariosView(backend, &bytes.Buffer{}, &scriptedPrompter{})

	require.NoError(t, view.Refresh(context.Background()))
	require.Equal(t, 1, backend.listCalls)

	err := view.Save(context.Background(), 0, domain.UsuarioCreate{
		Email: "luis@gym.com", FullName: "Luis Mora", Password: "secreto", Role: domain.RoleUser,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, backend.listCalls)
	assert.Len(t, view.Usuarios(), 1)
}

func TestUsuariosSaveFailureKeepsSnapshot(t *testing.T) {
	backend := &fakeUsuariosBackend{
		usuarios: []domain.Usuario{{ID: 1, Email: "ana@gym.com"}},
		saveErr:  &api.Error{StatusCode: 400, Detail: "email ya registrado"},
	}
	view := NewUsuariosView(backend, &bytes.Buffer{}, &scriptedPrompter{})
	require.NoError(t, view.Refresh(context.Background()))

	err := view.Save(context.Background(), 0, domain.UsuarioCreate{Email: "ana@gym.com"})
	require.Error(t, err)

	assert.Equal(t, "email ya registrado", FailureMessage(err, "No se pudo guardar el usuario"))
	assert.Len(t, view.Usuarios(), 1)
	assert.Equal(t, 1, backend.listCalls)
}

func TestUsuariosDeleteRequiresConfirmation(t *testing.T) {
	backend := &fakeUsuariosBackend{usuarios: []domain.Usuario{{ID: 2, Email: "ana@gym.com"}}}
	prompt := &scriptedPrompter{answers: []bool{false, true}}
	view := NewUsuariosView(backend, &bytes.Buffer{}, prompt)
	require.NoError(t, view.Refresh(context.Background()))

	require.NoError(t, view.Delete(context.Background(), 2))
	assert.Empty(t, backend.deleted)

	require.NoError(t, view.Delete(context.Background(), 2))
	assert.Equal(t, []int{2}, backend.deleted)
	assert.Empty(t, view.Usuarios())
}

func TestUsuariosRender(t *testing.T) {
	backend := &fakeUsuariosBackend{usuarios: []domain.Usuario{
		{ID: 1, Email: "ana@gym.com", FullName: "Ana García", Role: domain.RoleAdmin, IsActive: true},
	}}
	out := &bytes.Buffer{}
	view := NewUsuariosView(backend, out, &scriptedPrompter{})
	require.NoError(t, view.Refresh(context.Background()))

	view.Render()

	assert.Contains(t, out.String(), "Ana García")
	assert.Contains(t, out.String(), "admin")
}
