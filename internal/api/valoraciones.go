package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gymops/admin-console/internal/domain"
)

// ListValoraciones fetches assessments, optionally filtered to one client.
// The backend returns them newest first.
func (c *Client) ListValoraciones(ctx context.Context, clienteID int) ([]domain.ValoracionFisica, error) {
	var query url.Values
	if clienteID != 0 {
		query = url.Values{"cliente_id": []string{strconv.Itoa(clienteID)}}
	}
	var valoraciones []domain.ValoracionFisica
	if err := c.do(ctx, http.MethodGet, "/api/valoraciones/", query, nil, &valoraciones); err != nil {
		return nil, err
	}
	return valoraciones, nil
}

// CreateValoracion records a new assessment. IMC is computed server-side.
func (c *Client) CreateValoracion(ctx context.Context, payload domain.ValoracionCreate) (*domain.ValoracionFisica, error) {
	valoracion := &domain.ValoracionFisica{}
	if err := c.do(ctx, http.MethodPost, "/api/valoraciones/", nil, payload, valoracion); err != nil {
		return nil, err
	}
	return valoracion, nil
}

// UpdateValoracion applies a partial update to an assessment.
func (c *Client) UpdateValoracion(ctx context.Context, id int, payload domain.ValoracionCreate) (*domain.ValoracionFisica, error) {
	valoracion := &domain.ValoracionFisica{}
	path := fmt.Sprintf("/api/valoraciones/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, valoracion); err != nil {
		return nil, err
	}
	return valoracion, nil
}

// DeleteValoracion removes an assessment.
func (c *Client) DeleteValoracion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/valoraciones/%d", id), nil, nil, nil)
}

// GetProgreso fetches the server-computed first-vs-latest comparison for a
// client. With fewer than two assessments the summary only carries a
// message.
func (c *Client) GetProgreso(ctx context.Context, clienteID int) (*domain.Progreso, error) {
	progreso := &domain.Progreso{}
	path := fmt.Sprintf("/api/valoraciones/cliente/%d/progreso", clienteID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, progreso); err != nil {
		return nil, err
	}
	return progreso, nil
}
