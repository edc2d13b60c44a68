package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Cancel cancels the requesting user's active reservation and returns the
// book to the available pool.
func (s *Service) Cancel(ctx context.Context, input ActInput) (*domain.Reservation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var cancelled *domain.Reservation

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		res, err := s.reservations.LockByID(txCtx, input.ReservationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errReservationNotFound
			}
			return fmt.Errorf("lock reservation: %w", err)
		}
		if !res.IsOwnedBy(input.UserID) {
			return errCancelForbidden
		}
		if res.Status.IsTerminal() {
			return errNotActive
		}

		if _, err := s.books.LockByID(txCtx, res.BookID); err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		if err := s.reservations.UpdateStatus(txCtx, res.ID, domain.ReservationStatusCancelled); err != nil {
			return fmt.Errorf("cancel reservation: %w", err)
		}
		if err := s.books.UpdateStatus(txCtx, res.BookID, domain.BookStatusAvailable); err != nil {
			return fmt.Errorf("release book: %w", err)
		}

		res.Status = domain.ReservationStatusCancelled
		cancelled = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reservation.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "reservation cancelled",
		slog.Int64("reservation_id", cancelled.ID),
		slog.Int64("user_id", cancelled.UserID),
		slog.Int64("book_id", cancelled.BookID),
	)

	s.publish(ctx, domain.EventReservationCancelled, domain.ReservationEvent{
		ReservationID: cancelled.ID,
		UserID:        cancelled.UserID,
		BookID:        cancelled.BookID,
		Status:        cancelled.Status,
	})

	return cancelled, nil
}
