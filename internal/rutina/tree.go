package rutina

import (
	"fmt"

	"gymops/admin-console/internal/domain"
)

// The draft is a value tree (días -> detalles) kept under an
// immutable-update discipline: every operation returns a new tree that is
// copied only along the path to the change. Untouched días keep sharing
// their backing slices.

// addDia appends a new day named after its position, with orden equal to
// its 1-based index. Existing days are untouched.
func addDia(dias []domain.DiaRutina) []domain.DiaRutina {
	next := make([]domain.DiaRutina, len(dias), len(dias)+1)
	copy(next, dias)
	return append(next, domain.DiaRutina{
		Nombre:     fmt.Sprintf("Día %d", len(dias)+1),
		Orden:      len(dias) + 1,
		Ejercicios: []domain.DetalleEjercicio{},
	})
}

// removeDia deletes the day at idx and reassigns every remaining day's
// orden to its new 1-based index. Display names are left untouched:
// removing a day does not rename the survivors.
func removeDia(dias []domain.DiaRutina, idx int) []domain.DiaRutina {
	next := make([]domain.DiaRutina, 0, len(dias)-1)
	for i, dia := range dias {
		if i == idx {
			continue
		}
		dia.Orden = len(next) + 1
		next = append(next, dia)
	}
	return next
}

// appendDetalle adds one exercise entry to the end of day diaIdx's list.
func appendDetalle(dias []domain.DiaRutina, diaIdx int, det domain.DetalleEjercicio) []domain.DiaRutina {
	next := make([]domain.DiaRutina, len(dias))
	copy(next, dias)

	old := next[diaIdx].Ejercicios
	ejercicios := make([]domain.DetalleEjercicio, len(old), len(old)+1)
	copy(ejercicios, old)
	next[diaIdx].Ejercicios = append(ejercicios, det)
	return next
}

// updateDetalle replaces a single entry of a single day with the result of
// apply, leaving all sibling entries and days structurally untouched.
func updateDetalle(dias []domain.DiaRutina, diaIdx, detIdx int, apply func(*domain.DetalleEjercicio)) []domain.DiaRutina {
	next := make([]domain.DiaRutina, len(dias))
	copy(next, dias)

	old := next[diaIdx].Ejercicios
	ejercicios := make([]domain.DetalleEjercicio, len(old))
	copy(ejercicios, old)
	apply(&ejercicios[detIdx])
	next[diaIdx].Ejercicios = ejercicios
	return next
}

// removeDetalle deletes the entry at detIdx from day diaIdx. Entries carry
// no orden of their own, so no renumbering is needed.
func removeDetalle(dias []domain.DiaRutina, diaIdx, detIdx int) []domain.DiaRutina {
	next := make([]domain.DiaRutina, len(dias))
	copy(next, dias)

	old := next[diaIdx].Ejercicios
	ejercicios := make([]domain.DetalleEjercicio, 0, len(old)-1)
	ejercicios = append(ejercicios, old[:detIdx]...)
	ejercicios = append(ejercicios, old[detIdx+1:]...)
	next[diaIdx].Ejercicios = ejercicios
	return next
}
