package client

import (
	"context"
	"net/http"
)

// Reserve creates an active reservation for userID on bookID.
func (c *Client) Reserve(ctx context.Context, userID, bookID int64) (*Reservation, error) {
	var out reservationEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/reservas", nil, userBook{UserID: userID, BookID: bookID}, &out); err != nil {
		return nil, err
	}
	return &out.Reservation, nil
}

// ActiveReservations lists the user's active reservations.
func (c *Client) ActiveReservations(ctx context.Context, userID int64) ([]ActiveReservation, error) {
	var out []ActiveReservation
	if err := c.do(ctx, http.MethodGet, idPath("/api/reservas/usuario/%d", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelReservation cancels an active reservation owned by userID.
func (c *Client) CancelReservation(ctx context.Context, reservationID, userID int64) error {
	return c.do(ctx, http.MethodPut, idPath("/api/reservas/%d/cancelar", reservationID), nil, actor{UserID: userID}, nil)
}

// PickUp completes an active reservation owned by userID.
func (c *Client) PickUp(ctx context.Context, reservationID, userID int64) (*Pickup, error) {
	var out pickupEnvelope
	err := c.do(ctx, http.MethodPut, idPath("/api/reservas/%d/retirar", reservationID), nil, actor{UserID: userID}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Pickup, nil
}

// RegisterPickup completes the user's active reservation of bookID.
func (c *Client) RegisterPickup(ctx context.Context, userID, bookID int64) (*Pickup, error) {
	var out pickupEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/historico", nil, userBook{UserID: userID, BookID: bookID}, &out); err != nil {
		return nil, err
	}
	return &out.Pickup, nil
}

// History lists the user's pickups, newest first.
func (c *Client) History(ctx context.Context, userID int64) ([]HistoryItem, error) {
	var out []HistoryItem
	if err := c.do(ctx, http.MethodGet, idPath("/api/historico/%d", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
