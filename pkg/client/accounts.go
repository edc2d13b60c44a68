package client

import (
	"context"
	"net/http"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	in := map[string]string{"nome": name, "email": email, "senha": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/usuarios/registrar", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login checks credentials and returns the account.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	in := map[string]string{"email": email, "senha": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/usuarios/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// GetUser returns the account with id.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, idPath("/api/usuarios/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rename changes the account's display name.
func (c *Client) Rename(ctx context.Context, id int64, name string) (*User, error) {
	var out userEnvelope
	err := c.do(ctx, http.MethodPut, idPath("/api/usuarios/%d/nome", id), nil, map[string]string{"nome": name}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ChangePassword replaces the password after checking the current one.
func (c *Client) ChangePassword(ctx context.Context, id int64, current, next string) error {
	in := map[string]string{"senha_atual": current, "nova_senha": next}
	return c.do(ctx, http.MethodPatch, idPath("/api/usuarios/%d/senha", id), nil, in, nil)
}

// UpdateAccount replaces name, email and password at once.
func (c *Client) UpdateAccount(ctx context.Context, id int64, name, email, password string) (*User, error) {
	in := map[string]string{"nome": name, "email": email, "senha": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPut, idPath("/api/usuarios/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
