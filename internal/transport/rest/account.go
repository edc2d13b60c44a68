package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"github.com/heartmarshall/booklocker-backend/internal/service/account"
)

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input account.LoginInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error)
	UpdatePassword(ctx context.Context, input account.UpdatePasswordInput) error
	UpdateAccount(ctx context.Context, input account.UpdateAccountInput) (*domain.User, error)
}

// AccountHandler serves /api/usuarios.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type renameRequest struct {
	Name string `json:"nome"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"nova_senha"`
}

// Register handles POST /api/usuarios/registrar.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.Register(r.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, userMessageResponse{
		Message: "Usuário cadastrado com sucesso!",
		User:    toUserResponse(user),
	})
}

// Login handles POST /api/usuarios/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.Login(r.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userMessageResponse{
		Message: "Login bem-sucedido!",
		User:    toUserResponse(user),
	})
}

// Get handles GET /api/usuarios/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Rename handles PUT /api/usuarios/{id}/nome.
func (h *AccountHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req renameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateName(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userMessageResponse{
		Message: "Nome atualizado com sucesso!",
		User:    toUserResponse(user),
	})
}

// ChangePassword handles PATCH /api/usuarios/{id}/senha.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdatePassword(r.Context(), account.UpdatePasswordInput{
		UserID:          id,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Senha atualizada com sucesso!")
}

// Update handles PUT /api/usuarios/{id}.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateAccount(r.Context(), account.UpdateAccountInput{
		UserID:   id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userMessageResponse{
		Message: "Dados atualizados com sucesso!",
		User:    toUserResponse(user),
	})
}
