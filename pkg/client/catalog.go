package client

import (
	"context"
	"net/http"
	"net/url"
)

// ListBooks returns the whole catalog.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	return c.books(ctx, "/api/livros", nil)
}

// SearchBooks matches title substrings, case-insensitively.
func (c *Client) SearchBooks(ctx context.Context, title string) ([]Book, error) {
	return c.books(ctx, "/api/livros/buscar", url.Values{"titulo": {title}})
}

// GetBook returns one book.
func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var out Book
	if err := c.do(ctx, http.MethodGet, idPath("/api/livros/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BooksByCategory filters by "pessoal" or "profissional".
func (c *Client) BooksByCategory(ctx context.Context, category string) ([]Book, error) {
	return c.books(ctx, "/api/livros/filtro/tipo/"+url.PathEscape(category), nil)
}

// BooksByMachine lists available books at a machine; empty is not an error.
func (c *Client) BooksByMachine(ctx context.Context, machineID int64) ([]Book, error) {
	return c.books(ctx, idPath("/api/livros/filtro/maquina/%d", machineID), nil)
}

// ListMachines returns every machine.
func (c *Client) ListMachines(ctx context.Context) ([]Machine, error) {
	var out []Machine
	if err := c.do(ctx, http.MethodGet, "/api/maquinas", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MachineBooks lists available books at a machine; the API answers 404
// when there are none.
func (c *Client) MachineBooks(ctx context.Context, machineID int64) ([]Book, error) {
	return c.books(ctx, idPath("/api/maquinas/%d/livros", machineID), nil)
}

// MachinesHoldingBook lists the machines that stock a book.
func (c *Client) MachinesHoldingBook(ctx context.Context, bookID int64) ([]Machine, error) {
	var out []Machine
	if err := c.do(ctx, http.MethodGet, idPath("/api/maquinas/livro/%d", bookID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) books(ctx context.Context, path string, query url.Values) ([]Book, error) {
	var out []Book
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
