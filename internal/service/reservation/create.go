package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Create reserves an available book for a user who holds no active
// reservation. Both checks run under row locks before any write.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reservation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Reservation
	var machineID *int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.LockByID(txCtx, input.UserID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}

		_, err := s.reservations.GetActiveByUser(txCtx, input.UserID)
		switch {
		case err == nil:
			return errActiveExists
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get active reservation: %w", err)
		}

		book, err := s.books.LockByID(txCtx, input.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errBookNotFound
			}
			return fmt.Errorf("lock book: %w", err)
		}
		if book.Status != domain.BookStatusAvailable {
			return errBookUnavailable
		}

		res, err := s.reservations.Create(txCtx, input.UserID, input.BookID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserHasActiveReservation):
				return errActiveExists
			case errors.Is(err, domain.ErrAlreadyExists):
				return errBookUnavailable
			}
			return fmt.Errorf("create reservation: %w", err)
		}

		if err := s.books.UpdateStatus(txCtx, book.ID, domain.BookStatusReserved); err != nil {
			return fmt.Errorf("reserve book: %w", err)
		}

		created = res
		machineID = book.MachineID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reservation.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reservation created",
		slog.Int64("reservation_id", created.ID),
		slog.Int64("user_id", created.UserID),
		slog.Int64("book_id", created.BookID),
	)

	s.publish(ctx, domain.EventReservationCreated, domain.ReservationEvent{
		ReservationID: created.ID,
		UserID:        created.UserID,
		BookID:        created.BookID,
		MachineID:     machineID,
		Status:        created.Status,
	})

	return created, nil
}
