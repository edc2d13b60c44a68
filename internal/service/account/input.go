package account

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/booklocker-backend/internal/auth"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

const (
	maxNameLen        = 100
	maxEmailLen       = 255
	minPasswordLength = 6
)

// RegisterInput holds the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, "senha", i.Password)
	return toError(errs)
}

// LoginInput holds login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "E-mail é obrigatório."})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "senha", Message: "Senha é obrigatória."})
	}
	return toError(errs)
}

// UpdatePasswordInput changes a password after checking the current one.
type UpdatePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// Validate checks all fields and collects all errors.
func (i UpdatePasswordInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "ID inválido."})
	}
	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "senha_atual", Message: "Senha atual é obrigatória."})
	}
	errs = validatePassword(errs, "nova_senha", i.NewPassword)
	return toError(errs)
}

// UpdateAccountInput replaces name, email and password at once.
type UpdateAccountInput struct {
	UserID   int64
	Name     string
	Email    string
	Password string
}

func (i *UpdateAccountInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate checks all fields and collects all errors.
func (i UpdateAccountInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "ID inválido."})
	}
	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, "senha", i.Password)
	return toError(errs)
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "nome", Message: "Nome não pode ser vazio."})
	case utf8.RuneCountInString(name) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "nome", Message: "Nome deve ter no máximo 100 caracteres."})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "E-mail é obrigatório."})
	case len(email) > maxEmailLen:
		errs = append(errs, domain.FieldError{Field: "email", Message: "E-mail muito longo."})
	case !strings.Contains(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "E-mail inválido."})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case len(password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: field, Message: "A senha deve ter pelo menos 6 caracteres."})
	case len(password) > auth.MaxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: field, Message: "A senha deve ter no máximo 72 bytes."})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
