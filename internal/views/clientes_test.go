package views

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gymops/admin-console/internal/api"
	"gymops/admin-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers confirmations from a fixed script.
type scriptedPrompter struct {
	answers []bool
	asked   []string
}

func (p *scriptedPrompter) Confirm(question string) bool {
	p.asked = append(p.asked, question)
	if len(p.answers) == 0 {
		return false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

type fakeClientesBackend struct {
	clientes  []domain.ClienteGym
	listCalls int
	saveErr   error
	deleted   []int
	deleteErr error
}

func (f *fakeClientesBackend) ListClientes(_ context.Context) ([]domain.ClienteGym, error) {
	f.listCalls++
	return f.clientes, nil
}

func (f *fakeClientesBackend) CreateCliente(_ context.Context, payload domain.ClienteCreate) (*domain.ClienteGym, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	nuevo := domain.ClienteGym{ID: len(f.clientes) + 1, Nombre: payload.Nombre, Apellido: payload.Apellido, Email: payload.Email}
	f.clientes = append(f.clientes, nuevo)
	return &nuevo, nil
}

func (f *fakeClientesBackend) UpdateCliente(_ context.Context, id int, payload domain.ClienteCreate) (*domain.ClienteGym, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i := range f.clientes {
		if f.clientes[i].ID == id {
			f.clientes[i].Nombre = payload.Nombre
			return &f.clientes[i], nil
		}
	}
	return nil, &api.Error{StatusCode: 404, Detail: "Cliente no encontrado"}
}

func (f *fakeClientesBackend) DeleteCliente(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i := range f.clientes {
		if f.clientes[i].ID == id {
			f.clientes = append(f.clientes[:i], f.clientes[i+1:]...)
			break
		}
	}
	return nil
}

func TestClientesSaveTriggersRefetch(t *testing.T) {
	backend := &fakeClientesBackend{}
	view := NewClientesView(backend, &bytes.Buffer{}, &scriptedPrompter{})

	require.NoError(t, view.Refresh(context.Background()))
	require.Equal(t, 1, backend.listCalls)

	err := view.Save(context.Background(), 0, domain.ClienteCreate{
		Nombre: "Ana", Apellido: "García", Email: "ana@gym.com",
	})
	require.NoError(t, err)

	// no optimistic patch: success means one full re-fetch
	assert.Equal(t, 2, backend.listCalls)
	assert.Len(t, view.Clientes(), 1)
}

func TestClientesSaveFailureKeepsSnapshot(t *testing.T) {
	backend := &fakeClientesBackend{
		clientes: []domain.ClienteGym{{ID: 1, Nombre: "Ana"}},
		saveErr:  &api.Error{StatusCode: 400, Detail: "email ya registrado"},
	}
	view := NewClientesView(backend, &bytes.Buffer{}, &scriptedPrompter{})
	require.NoError(t, view.Refresh(context.Background()))

	err := view.Save(context.Background(), 0, domain.ClienteCreate{Nombre: "Ana"})
	require.Error(t, err)

	// backend reason shown verbatim, snapshot unchanged, no extra fetch
	assert.Equal(t, "email ya registrado", FailureMessage(err, "Error al guardar el cliente"))
	assert.Len(t, view.Clientes(), 1)
	assert.Equal(t, 1, backend.listCalls)
}

func TestClientesDeleteRequiresConfirmation(t *testing.T) {
	backend := &fakeClientesBackend{clientes: []domain.ClienteGym{{ID: 1}}}
	prompt := &scriptedPrompter{answers: []bool{false, true}}
	view := NewClientesView(backend, &bytes.Buffer{}, prompt)
	require.NoError(t, view.Refresh(context.Background()))

	// declined: no network call at all
	require.NoError(t, view.Delete(context.Background(), 1))
	assert.Empty(t, backend.deleted)

	// confirmed: delete then re-fetch
	require.NoError(t, view.Delete(context.Background(), 1))
	assert.Equal(t, []int{1}, backend.deleted)
	assert.Empty(t, view.Clientes())
	assert.Len(t, prompt.asked, 2)
}

func TestClientesDeleteFailureLeavesRow(t *testing.T) {
	backend := &fakeClientesBackend{
		clientes:  []domain.ClienteGym{{ID: 1, Nombre: "Ana"}},
		deleteErr: errors.New("conexión rechazada"),
	}
	view := NewClientesView(backend, &bytes.Buffer{}, &scriptedPrompter{answers: []bool{true}})
	require.NoError(t, view.Refresh(context.Background()))

	err := view.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Len(t, view.Clientes(), 1)
	// transport failure has no backend detail: generic message
	assert.Equal(t, "No se pudo eliminar el cliente", FailureMessage(err, "No se pudo eliminar el cliente"))
}

func TestClientesRender(t *testing.T) {
	backend := &fakeClientesBackend{clientes: []domain.ClienteGym{
		{ID: 1, Nombre: "Ana", Apellido: "García", Email: "ana@gym.com", TipoUsuario: domain.TipoUsuarioHibrido, Activo: true},
	}}
	out := &bytes.Buffer{}
	view := NewClientesView(backend, out, &scriptedPrompter{})
	require.NoError(t, view.Refresh(context.Background()))

	view.Render()

	assert.Contains(t, out.String(), "Ana García")
	assert.Contains(t, out.String(), "HIBRIDO")
}
