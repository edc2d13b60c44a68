package domain

import (
	"fmt"
	"time"
)

// Reasons a store refuses a new active reservation. Both wrap ErrAlreadyExists.
var (
	ErrUserHasActiveReservation = fmt.Errorf("user has an active reservation: %w", ErrAlreadyExists)
	ErrBookHasActiveReservation = fmt.Errorf("book has an active reservation: %w", ErrAlreadyExists)
)

// Reservation is a user's claim on a book.
// A user holds at most one active reservation at a time.
type Reservation struct {
	ID        int64
	UserID    int64
	BookID    int64
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID made the reservation.
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// ActiveReservationView is an active reservation joined with book and
// machine details for display.
type ActiveReservationView struct {
	Reservation
	BookTitle    string
	BookImageURL string
	MachineName  *string
}

// HistoryEntry records a completed pickup. Written once, never updated.
type HistoryEntry struct {
	ID         int64
	UserID     int64
	BookID     int64
	MachineID  *int64
	PickedUpAt time.Time
}

// HistoryView is a history entry joined with book and machine details.
type HistoryView struct {
	ID          int64
	BookTitle   string
	BookAuthor  string
	MachineName *string
	PickedUpAt  time.Time
}

// Favorite marks a book as saved by a user.
type Favorite struct {
	UserID    int64
	BookID    int64
	CreatedAt time.Time
}

// FavoriteView is a favorited book with machine details.
type FavoriteView struct {
	BookView
	FavoritedAt time.Time
}

// Routing keys of reservation lifecycle events.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationCompleted = "reservation.completed"
)

// ReservationEvent is published after a lifecycle transition commits.
type ReservationEvent struct {
	ReservationID int64             `json:"reservation_id"`
	UserID        int64             `json:"user_id"`
	BookID        int64             `json:"book_id"`
	MachineID     *int64            `json:"machine_id,omitempty"`
	Status        ReservationStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
