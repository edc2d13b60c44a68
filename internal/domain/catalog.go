package domain

import "time"

// Machine is a physical locker location that stocks books.
type Machine struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
}

// Book is a catalog item. Status is owned by the reservation lifecycle.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Year        *int
	Description string
	ImageURL    string
	Category    BookCategory
	Status      BookStatus
	MachineID   *int64
	CreatedAt   time.Time
}

// BookView is a Book joined with the name of the machine holding it.
type BookView struct {
	Book
	MachineName *string
}

// BookFilter narrows a book listing. Zero value lists every book.
type BookFilter struct {
	// Title performs a case-insensitive substring match.
	Title     *string
	Category  *BookCategory
	MachineID *int64
	Status    *BookStatus
}
