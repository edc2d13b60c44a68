package reservation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// ListActive returns the user's active reservations with book and machine details.
func (s *Service) ListActive(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error) {
	if err := toError(requireID(nil, "usuario_id", userID)); err != nil {
		return nil, err
	}

	views, err := s.reservations.ListActiveViews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reservation.ListActive: %w", err)
	}
	return views, nil
}

// ListHistory returns the user's pickups, newest first.
func (s *Service) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryView, error) {
	if err := toError(requireID(nil, "usuario_id", userID)); err != nil {
		return nil, err
	}

	views, err := s.history.ListViews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reservation.ListHistory: %w", err)
	}
	return views, nil
}
