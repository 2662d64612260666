package api

import (
	"context"
	"net/http"

	"gymops/admin-console/internal/domain"
)

// CreateRutina submits a complete routine draft (header plus nested días)
// as one atomic create operation.
func (c *Client) CreateRutina(ctx context.Context, draft domain.RutinaDraft) (*domain.Rutina, error) {
	rutina := &domain.Rutina{}
	if err := c.do(ctx, http.MethodPost, "/api/entrenamientos/rutinas/", nil, draft, rutina); err != nil {
		return nil, err
	}
	return rutina, nil
}

// ListRutinas fetches all persisted routines.
func (c *Client) ListRutinas(ctx context.Context) ([]domain.Rutina, error) {
	var rutinas []domain.Rutina
	if err := c.do(ctx, http.MethodGet, "/api/entrenamientos/rutinas/", nil, nil, &rutinas); err != nil {
		return nil, err
	}
	return rutinas, nil
}
