// Package reservation implements the reservation lifecycle: creating,
// cancelling and picking up reservations while keeping book status in step.
package reservation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

const publishTimeout = 5 * time.Second

type userRepo interface {
	LockByID(ctx context.Context, id int64) (*domain.User, error)
}

type bookRepo interface {
	LockByID(ctx context.Context, id int64) (*domain.Book, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookStatus) error
}

type reservationRepo interface {
	Create(ctx context.Context, userID, bookID int64) (*domain.Reservation, error)
	LockByID(ctx context.Context, id int64) (*domain.Reservation, error)
	LockActiveByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetActiveByUser(ctx context.Context, userID int64) (*domain.Reservation, error)
	LockActiveByUserAndBook(ctx context.Context, userID, bookID int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	ListActiveViews(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error)
}

type historyRepo interface {
	Create(ctx context.Context, userID, bookID int64, machineID *int64) (*domain.HistoryEntry, error)
	ListViews(ctx context.Context, userID int64) ([]domain.HistoryView, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Messages shown to the user.
var (
	errUserNotFound        = domain.NewError(domain.ErrNotFound, "Usuário não encontrado.")
	errActiveExists        = domain.NewError(domain.ErrConflict, "Você já possui uma reserva ativa. Cancele ou retire antes de reservar outro livro.")
	errBookNotFound        = domain.NewError(domain.ErrNotFound, "Livro não encontrado.")
	errBookUnavailable     = domain.NewError(domain.ErrConflict, "Livro não está disponível para reserva.")
	errReservationNotFound = domain.NewError(domain.ErrNotFound, "Reserva não encontrada.")
	errCancelForbidden     = domain.NewError(domain.ErrForbidden, "Você não tem permissão para cancelar esta reserva.")
	errNotActive           = domain.NewError(domain.ErrConflict, "A reserva não está ativa.")
	errNoActiveToPickUp    = domain.NewError(domain.ErrNotFound, "Reserva não encontrada ou já foi concluída.")
	errPickupForbidden     = domain.NewError(domain.ErrForbidden, "Você não tem permissão para retirar este livro.")
	errNoActiveForBook     = domain.NewError(domain.ErrConflict, "Nenhuma reserva ativa para este livro.")
)

// Service is the only writer of reservation and book status.
type Service struct {
	log          *slog.Logger
	users        userRepo
	books        bookRepo
	reservations reservationRepo
	history      historyRepo
	tx           txManager
	events       eventPublisher
	now          func() time.Time
}

// NewService creates a new reservation service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	books bookRepo,
	reservations reservationRepo,
	history historyRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	return &Service{
		log:          logger.With("service", "reservation"),
		users:        users,
		books:        books,
		reservations: reservations,
		history:      history,
		tx:           tx,
		events:       events,
		now:          time.Now,
	}
}

// publish sends a lifecycle event after commit. Failures are logged only.
func (s *Service) publish(ctx context.Context, key string, ev domain.ReservationEvent) {
	ev.OccurredAt = s.now().UTC()

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.events.PublishJSON(pubCtx, key, ev); err != nil {
		s.log.WarnContext(ctx, "publish reservation event",
			slog.String("event", key),
			slog.Int64("reservation_id", ev.ReservationID),
			slog.String("error", err.Error()),
		)
	}
}
