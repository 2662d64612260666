package api

import (
	"context"
	"fmt"
	"net/http"

	"gymops/admin-console/internal/domain"
)

// ListClientes fetches the full client roster.
func (c *Client) ListClientes(ctx context.Context) ([]domain.ClienteGym, error) {
	var clientes []domain.ClienteGym
	if err := c.do(ctx, http.MethodGet, "/api/clients/", nil, nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// CreateCliente registers a new gym client; the backend assigns identity.
func (c *Client) CreateCliente(ctx context.Context, payload domain.ClienteCreate) (*domain.ClienteGym, error) {
	cliente := &domain.ClienteGym{}
	if err := c.do(ctx, http.MethodPost, "/api/clients/", nil, payload, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// UpdateCliente applies a partial update to an existing client.
func (c *Client) UpdateCliente(ctx context.Context, id int, payload domain.ClienteCreate) (*domain.ClienteGym, error) {
	cliente := &domain.ClienteGym{}
	path := fmt.Sprintf("/api/clients/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// DeleteCliente removes a client record.
func (c *Client) DeleteCliente(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil, nil, nil)
}
