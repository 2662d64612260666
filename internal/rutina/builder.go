package rutina

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gymops/admin-console/internal/domain"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
// The sentinel texts are what the operator reads, hence Spanish.
var (
	ErrSinCliente       = errors.New("selecciona un cliente antes de guardar")
	ErrSinNombre        = errors.New("la rutina necesita un nombre")
	ErrSinDias          = errors.New("agrega al menos un día de entrenamiento")
	ErrSinDiaActivo     = errors.New("ningún día seleccionado")
	ErrFueraDeRango     = errors.New("índice fuera de rango")
	ErrCampoDesconocido = errors.New("campo desconocido")
	ErrEnvioEnCurso     = errors.New("ya hay un envío en curso")
)

// State is the coarse lifecycle of one builder session.
type State int

const (
	StateLoading State = iota
	StateEditing
	StateSubmitting
	StateSaved
	StateCancelled
)

// backendAPI is the slice of the backend client the builder needs.
type backendAPI interface {
	ListClientes(ctx context.Context) ([]domain.ClienteGym, error)
	ListEjercicios(ctx context.Context, grupoMuscular string) ([]domain.Ejercicio, error)
	CreateRutina(ctx context.Context, draft domain.RutinaDraft) (*domain.Rutina, error)
}

// Builder holds an in-memory routine draft while an operator assembles it.
// The draft is the one entity this program genuinely owns: it lives here
// until a single submission either commits it (ownership transfers to the
// backend) or fails (the draft stays editable for correction). There is no
// autosave and no persistence of a draft across restarts.
type Builder struct {
	api backendAPI

	draft    domain.RutinaDraft
	clientes []domain.ClienteGym
	catalogo []domain.Ejercicio

	state     State
	activeDia int // selector target day, -1 when the selector is closed

	onSaved func(domain.Rutina)
}

// NewBuilder creates a builder session. onSaved is invoked exactly once
// when the backend accepts the draft; it may be nil.
func NewBuilder(api backendAPI, onSaved func(domain.Rutina)) *Builder {
	return &Builder{
		api: api,
		draft: domain.RutinaDraft{
			Nivel:           "Intermedio",
			DuracionSemanas: 4,
			Dias:            []domain.DiaRutina{},
		},
		state:     StateLoading,
		activeDia: -1,
		onSaved:   onSaved,
	}
}

// LoadMasters fetches the client roster and exercise catalog concurrently.
// Failure of either fetch is logged and leaves that selector empty; it
// does not block the rest of the form.
func (b *Builder) LoadMasters(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		clientes, err := b.api.ListClientes(ctx)
		if err != nil {
			log.Errorf("routine builder: load clients: %s", err)
			return
		}
		b.clientes = clientes
	}()

	go func() {
		defer wg.Done()
		catalogo, err := b.api.ListEjercicios(ctx, "")
		if err != nil {
			log.Errorf("routine builder: load exercise catalog: %s", err)
			return
		}
		b.catalogo = catalogo
	}()

	wg.Wait()
	b.state = StateEditing
}

func (b *Builder) State() State { return b.state }

func (b *Builder) Draft() domain.RutinaDraft { return b.draft }

func (b *Builder) Clientes() []domain.ClienteGym { return b.clientes }

func (b *Builder) Catalogo() []domain.Ejercicio { return b.catalogo }

// --- Header fields ---

func (b *Builder) SetNombre(nombre string) { b.draft.Nombre = nombre }

func (b *Builder) SetDescripcion(d string) { b.draft.Descripcion = d }

func (b *Builder) SetObjetivo(o string) { b.draft.Objetivo = o }

func (b *Builder) SetNivel(n string) { b.draft.Nivel = n }

func (b *Builder) SetDuracionSemanas(semanas int) { b.draft.DuracionSemanas = semanas }

func (b *Builder) SetCliente(clienteID int) { b.draft.ClienteID = clienteID }

// --- Day operations ---

// AddDia appends a new empty day; all prior days keep their orden.
func (b *Builder) AddDia() {
	b.draft.Dias = addDia(b.draft.Dias)
}

// RemoveDia deletes the day at idx and renumbers the survivors to 1..N.
func (b *Builder) RemoveDia(idx int) error {
	if idx < 0 || idx >= len(b.draft.Dias) {
		return ErrFueraDeRango
	}
	b.draft.Dias = removeDia(b.draft.Dias, idx)
	if b.activeDia == idx {
		b.activeDia = -1
	}
	return nil
}

// RenameDia sets a day's display name; orden is unaffected.
func (b *Builder) RenameDia(idx int, nombre string) error {
	if idx < 0 || idx >= len(b.draft.Dias) {
		return ErrFueraDeRango
	}
	next := make([]domain.DiaRutina, len(b.draft.Dias))
	copy(next, b.draft.Dias)
	next[idx].Nombre = nombre
	b.draft.Dias = next
	return nil
}

// --- Exercise selector ---

// OpenSelector records diaIdx as the target for the next selection.
func (b *Builder) OpenSelector(diaIdx int) error {
	if diaIdx < 0 || diaIdx >= len(b.draft.Dias) {
		return ErrFueraDeRango
	}
	b.activeDia = diaIdx
	return nil
}

// CloseSelector drops the selector target without selecting anything.
func (b *Builder) CloseSelector() {
	b.activeDia = -1
}

// FilterCatalogo returns the catalog entries whose name contains term,
// case-insensitively. Purely client-side; recomputed on every keystroke.
func (b *Builder) FilterCatalogo(term string) []domain.Ejercicio {
	if term == "" {
		return b.catalogo
	}
	needle := strings.ToLower(term)
	var filtered []domain.Ejercicio
	for _, e := range b.catalogo {
		if strings.Contains(strings.ToLower(e.Nombre), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SelectEjercicio appends ejercicio to the active target day with default
// prescription values, then closes the selector. The catalog entry's name
// is snapshotted for display and never resynced. The same exercise may be
// added to a day multiple times.
func (b *Builder) SelectEjercicio(ejercicio domain.Ejercicio) error {
	if b.activeDia < 0 {
		return ErrSinDiaActivo
	}
	b.draft.Dias = appendDetalle(b.draft.Dias, b.activeDia, domain.DetalleEjercicio{
		EjercicioID:      ejercicio.ID,
		NombreEjercicio:  ejercicio.Nombre,
		Series:           3,
		Repeticiones:     "10-12",
		PesoSugerido:     "",
		DescansoSegundos: 60,
		Notas:            "",
	})
	b.activeDia = -1
	return nil
}

// --- Entry operations ---

// UpdateDetalle replaces a single field of a single entry, identified by
// its wire name, parsing value as needed. Everything else in the tree is
// left structurally untouched.
func (b *Builder) UpdateDetalle(diaIdx, detIdx int, field, value string) error {
	if diaIdx < 0 || diaIdx >= len(b.draft.Dias) {
		return ErrFueraDeRango
	}
	if detIdx < 0 || detIdx >= len(b.draft.Dias[diaIdx].Ejercicios) {
		return ErrFueraDeRango
	}

	var apply func(*domain.DetalleEjercicio)
	switch field {
	case "series":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("series: número inválido %q", value)
		}
		apply = func(d *domain.DetalleEjercicio) { d.Series = n }
	case "repeticiones":
		apply = func(d *domain.DetalleEjercicio) { d.Repeticiones = value }
	case "peso_sugerido":
		apply = func(d *domain.DetalleEjercicio) { d.PesoSugerido = value }
	case "descanso_segundos":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("descanso_segundos: número inválido %q", value)
		}
		apply = func(d *domain.DetalleEjercicio) { d.DescansoSegundos = n }
	case "notas":
		apply = func(d *domain.DetalleEjercicio) { d.Notas = value }
	default:
		return fmt.Errorf("%w: %s", ErrCampoDesconocido, field)
	}

	b.draft.Dias = updateDetalle(b.draft.Dias, diaIdx, detIdx, apply)
	return nil
}

// RemoveDetalle deletes one entry from one day.
func (b *Builder) RemoveDetalle(diaIdx, detIdx int) error {
	if diaIdx < 0 || diaIdx >= len(b.draft.Dias) {
		return ErrFueraDeRango
	}
	if detIdx < 0 || detIdx >= len(b.draft.Dias[diaIdx].Ejercicios) {
		return ErrFueraDeRango
	}
	b.draft.Dias = removeDetalle(b.draft.Dias, diaIdx, detIdx)
	return nil
}

// --- Submission ---

// Validate reports the first missing precondition for submission, or nil.
func (b *Builder) Validate() error {
	if b.draft.ClienteID == 0 {
		return ErrSinCliente
	}
	if b.draft.Nombre == "" {
		return ErrSinNombre
	}
	if len(b.draft.Dias) == 0 {
		return ErrSinDias
	}
	return nil
}

// Submit validates the draft and, when complete, sends it to the creation
// endpoint as one document. Client-side validation failure performs no
// network call. On success the session ends and onSaved fires exactly
// once; on backend failure the draft stays fully editable.
func (b *Builder) Submit(ctx context.Context) error {
	if b.state == StateSubmitting {
		return ErrEnvioEnCurso
	}
	if err := b.Validate(); err != nil {
		return err
	}

	b.state = StateSubmitting
	rutina, err := b.api.CreateRutina(ctx, b.draft)
	if err != nil {
		b.state = StateEditing
		return err
	}

	b.state = StateSaved
	log.Infof("routine %q saved for client %d", b.draft.Nombre, b.draft.ClienteID)
	if b.onSaved != nil {
		b.onSaved(*rutina)
	}
	return nil
}

// Cancel discards the entire in-memory draft unconditionally.
func (b *Builder) Cancel() {
	b.draft = domain.RutinaDraft{}
	b.state = StateCancelled
}
