package reservation

import "github.com/heartmarshall/booklocker-backend/internal/domain"

// CreateInput identifies who reserves which book.
type CreateInput struct {
	UserID int64
	BookID int64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "usuario_id", i.UserID)
	errs = requireID(errs, "livro_id", i.BookID)
	return toError(errs)
}

// ActInput identifies a reservation and the user acting on it.
// Used by Cancel and PickUp.
type ActInput struct {
	ReservationID int64
	UserID        int64
}

// Validate checks all fields and collects all errors.
func (i ActInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "id", i.ReservationID)
	errs = requireID(errs, "usuario_id", i.UserID)
	return toError(errs)
}

// RegisterPickupInput identifies a pickup by user and book.
type RegisterPickupInput struct {
	UserID int64
	BookID int64
}

// Validate checks all fields and collects all errors.
func (i RegisterPickupInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "usuario_id", i.UserID)
	errs = requireID(errs, "livro_id", i.BookID)
	return toError(errs)
}

func requireID(errs []domain.FieldError, field string, id int64) []domain.FieldError {
	if id <= 0 {
		errs = append(errs, domain.FieldError{Field: field, Message: "Campo \"" + field + "\" inválido."})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
