package client

import (
	"context"
	"net/http"
)

// AddFavorite saves a book to the user's favorites.
func (c *Client) AddFavorite(ctx context.Context, userID, bookID int64) error {
	return c.do(ctx, http.MethodPost, "/api/favoritos", nil, userBook{UserID: userID, BookID: bookID}, nil)
}

// RemoveFavorite deletes a book from the user's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, userID, bookID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/favoritos", nil, userBook{UserID: userID, BookID: bookID}, nil)
}

// Favorites lists the user's favorite books.
func (c *Client) Favorites(ctx context.Context, userID int64) ([]FavoriteBook, error) {
	var out []FavoriteBook
	if err := c.do(ctx, http.MethodGet, idPath("/api/favoritos/%d", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
