package domain

import "strings"

// BookStatus is the availability of a physical book copy.
type BookStatus string

const (
	BookStatusAvailable   BookStatus = "available"
	BookStatusReserved    BookStatus = "reserved"
	BookStatusUnavailable BookStatus = "unavailable"
)

func (s BookStatus) String() string { return string(s) }

func (s BookStatus) IsValid() bool {
	switch s {
	case BookStatusAvailable, BookStatusReserved, BookStatusUnavailable:
		return true
	}
	return false
}

// BookCategory tags a book as personal or professional reading.
type BookCategory string

const (
	BookCategoryPersonal     BookCategory = "personal"
	BookCategoryProfessional BookCategory = "professional"
)

func (c BookCategory) String() string { return string(c) }

func (c BookCategory) IsValid() bool {
	switch c {
	case BookCategoryPersonal, BookCategoryProfessional:
		return true
	}
	return false
}

// ParseBookCategory accepts the canonical values and the Portuguese
// spellings used by the mobile client ("pessoal", "profissional").
func ParseBookCategory(s string) (BookCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal", "pessoal":
		return BookCategoryPersonal, true
	case "professional", "profissional":
		return BookCategoryProfessional, true
	}
	return "", false
}

// ReservationStatus is the lifecycle state of a reservation.
//
//	(none) -> active -> completed | cancelled
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) String() string { return string(s) }

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}
