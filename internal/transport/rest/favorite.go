package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"github.com/heartmarshall/booklocker-backend/internal/service/favorite"
)

type favoriteService interface {
	Add(ctx context.Context, input favorite.Input) (*domain.Favorite, error)
	Remove(ctx context.Context, input favorite.Input) error
	List(ctx context.Context, userID int64) ([]domain.FavoriteView, error)
}

// FavoriteHandler serves /api/favoritos.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorite")}
}

// Add handles POST /api/favoritos.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req userBookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.Add(r.Context(), favorite.Input{UserID: req.UserID, BookID: req.BookID}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Livro adicionado aos favoritos!")
}

// Remove handles DELETE /api/favoritos with a JSON body.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req userBookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Remove(r.Context(), favorite.Input{UserID: req.UserID, BookID: req.BookID}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Livro removido dos favoritos.")
}

// List handles GET /api/favoritos/{usuarioId}.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "usuarioId")
	if !ok {
		return
	}

	views, err := h.svc.List(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFavoriteResponses(views))
}
