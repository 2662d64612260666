package api

import (
	"context"
	"fmt"
	"net/http"

	"gymops/admin-console/internal/domain"
)

// ListUsuarios fetches all staff accounts.
func (c *Client) ListUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	if err := c.do(ctx, http.MethodGet, "/api/users/", nil, nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// CreateUsuario registers a new staff account.
func (c *Client) CreateUsuario(ctx context.Context, payload domain.UsuarioCreate) (*domain.Usuario, error) {
	usuario := &domain.Usuario{}
	if err := c.do(ctx, http.MethodPost, "/api/users/", nil, payload, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// UpdateUsuario applies a partial update to a staff account.
func (c *Client) UpdateUsuario(ctx context.Context, id int, payload domain.UsuarioCreate) (*domain.Usuario, error) {
	usuario := &domain.Usuario{}
	path := fmt.Sprintf("/api/users/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// DeleteUsuario removes a staff account.
func (c *Client) DeleteUsuario(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil)
}
