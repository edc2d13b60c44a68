package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	u := domain.User{
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "hash-" + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedMachine inserts a machine with a unique name.
func SeedMachine(t *testing.T, pool *pgxpool.Pool) domain.Machine {
	t.Helper()

	m := domain.Machine{
		Name:     "Machine " + UniqueSuffix(),
		Location: "Hall " + UniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO machines (name, location) VALUES ($1, $2) RETURNING id, created_at`,
		m.Name, m.Location,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedMachine: %v", err)
	}

	return m
}

// BookOption customizes a seeded book.
type BookOption func(b *domain.Book)

// WithStatus sets the seeded book's status.
func WithStatus(s domain.BookStatus) BookOption {
	return func(b *domain.Book) { b.Status = s }
}

// WithCategory sets the seeded book's category.
func WithCategory(c domain.BookCategory) BookOption {
	return func(b *domain.Book) { b.Category = c }
}

// WithTitle sets the seeded book's title.
func WithTitle(title string) BookOption {
	return func(b *domain.Book) { b.Title = title }
}

// SeedBook inserts an available personal book stocked at machineID
// (nil for no machine).
func SeedBook(t *testing.T, pool *pgxpool.Pool, machineID *int64, opts ...BookOption) domain.Book {
	t.Helper()

	year := 2001
	b := domain.Book{
		Title:       "Book " + UniqueSuffix(),
		Author:      "Author " + UniqueSuffix(),
		Year:        &year,
		Description: "A seeded book",
		ImageURL:    "https://img.example.com/book.png",
		Category:    domain.BookCategoryPersonal,
		Status:      domain.BookStatusAvailable,
		MachineID:   machineID,
	}
	for _, opt := range opts {
		opt(&b)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO books (title, author, year, description, image_url, category, status, machine_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		b.Title, b.Author, b.Year, b.Description, b.ImageURL, string(b.Category), string(b.Status), b.MachineID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return b
}

// SeedReservation inserts a reservation row directly, bypassing lifecycle rules.
func SeedReservation(t *testing.T, pool *pgxpool.Pool, userID, bookID int64, status domain.ReservationStatus) domain.Reservation {
	t.Helper()

	r := domain.Reservation{UserID: userID, BookID: bookID, Status: status}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO reservations (user_id, book_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		userID, bookID, string(status),
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReservation: %v", err)
	}

	return r
}

// BookStatus reads a book's current status.
func BookStatus(t *testing.T, pool *pgxpool.Pool, bookID int64) domain.BookStatus {
	t.Helper()

	var s string
	if err := pool.QueryRow(context.Background(),
		`SELECT status FROM books WHERE id = $1`, bookID).Scan(&s); err != nil {
		t.Fatalf("testhelper: BookStatus: %v", err)
	}
	return domain.BookStatus(s)
}
