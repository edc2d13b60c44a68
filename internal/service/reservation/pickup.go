package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// PickUp completes the requesting user's active reservation.
// The book becomes unavailable and exactly one history entry is written.
func (s *Service) PickUp(ctx context.Context, input ActInput) (*domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res *domain.Reservation
	var entry *domain.HistoryEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reservations.LockActiveByID(txCtx, input.ReservationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errNoActiveToPickUp
			}
			return fmt.Errorf("lock reservation: %w", err)
		}
		if !res.IsOwnedBy(input.UserID) {
			return errPickupForbidden
		}

		entry, err = s.complete(txCtx, res)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reservation.PickUp: %w", err)
	}

	s.afterPickup(ctx, res, entry)
	return entry, nil
}

// RegisterPickup completes the user's active reservation for a book.
// It shares the pickup contract with PickUp.
func (s *Service) RegisterPickup(ctx context.Context, input RegisterPickupInput) (*domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res *domain.Reservation
	var entry *domain.HistoryEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reservations.LockActiveByUserAndBook(txCtx, input.UserID, input.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errNoActiveForBook
			}
			return fmt.Errorf("lock reservation: %w", err)
		}

		entry, err = s.complete(txCtx, res)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reservation.RegisterPickup: %w", err)
	}

	s.afterPickup(ctx, res, entry)
	return entry, nil
}

// complete runs inside the caller's transaction with res already locked.
func (s *Service) complete(ctx context.Context, res *domain.Reservation) (*domain.HistoryEntry, error) {
	if err := s.reservations.UpdateStatus(ctx, res.ID, domain.ReservationStatusCompleted); err != nil {
		return nil, fmt.Errorf("complete reservation: %w", err)
	}
	res.Status = domain.ReservationStatusCompleted

	book, err := s.books.LockByID(ctx, res.BookID)
	if err != nil {
		return nil, fmt.Errorf("lock book: %w", err)
	}
	if err := s.books.UpdateStatus(ctx, book.ID, domain.BookStatusUnavailable); err != nil {
		return nil, fmt.Errorf("consume book: %w", err)
	}

	entry, err := s.history.Create(ctx, res.UserID, book.ID, book.MachineID)
	if err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}
	return entry, nil
}

func (s *Service) afterPickup(ctx context.Context, res *domain.Reservation, entry *domain.HistoryEntry) {
	s.log.InfoContext(ctx, "book picked up",
		slog.Int64("reservation_id", res.ID),
		slog.Int64("user_id", res.UserID),
		slog.Int64("book_id", res.BookID),
		slog.Int64("history_id", entry.ID),
	)

	s.publish(ctx, domain.EventReservationCompleted, domain.ReservationEvent{
		ReservationID: res.ID,
		UserID:        res.UserID,
		BookID:        res.BookID,
		MachineID:     entry.MachineID,
		Status:        res.Status,
	})
}
