package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gymops/admin-console/internal/domain"
)

// ListEjercicios fetches the exercise catalog, optionally filtered
// server-side by muscle group.
func (c *Client) ListEjercicios(ctx context.Context, grupoMuscular string) ([]domain.Ejercicio, error) {
	var query url.Values
	if grupoMuscular != "" {
		query = url.Values{"grupo_muscular": []string{grupoMuscular}}
	}
	var ejercicios []domain.Ejercicio
	if err := c.do(ctx, http.MethodGet, "/api/entrenamientos/ejercicios/", query, nil, &ejercicios); err != nil {
		return nil, err
	}
	return ejercicios, nil
}

// CreateEjercicio adds a catalog entry.
func (c *Client) CreateEjercicio(ctx context.Context, payload domain.EjercicioCreate) (*domain.Ejercicio, error) {
	ejercicio := &domain.Ejercicio{}
	if err := c.do(ctx, http.MethodPost, "/api/entrenamientos/ejercicios/", nil, payload, ejercicio); err != nil {
		return nil, err
	}
	return ejercicio, nil
}

// UpdateEjercicio applies a partial update to a catalog entry.
func (c *Client) UpdateEjercicio(ctx context.Context, id int, payload domain.EjercicioCreate) (*domain.Ejercicio, error) {
	ejercicio := &domain.Ejercicio{}
	path := fmt.Sprintf("/api/entrenamientos/ejercicios/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, ejercicio); err != nil {
		return nil, err
	}
	return ejercicio, nil
}

// DeleteEjercicio removes a catalog entry.
func (c *Client) DeleteEjercicio(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/entrenamientos/ejercicios/%d", id), nil, nil, nil)
}
