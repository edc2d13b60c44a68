package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Generic messages used when an error carries none of its own.
const (
	msgInvalidBody   = "Corpo da requisição inválido."
	msgInvalidID     = "ID inválido."
	msgNotFound      = "Recurso não encontrado."
	msgForbidden     = "Acesso negado."
	msgUnauthorized  = "Não autorizado."
	msgConflict      = "Operação não permitida no estado atual."
	msgRouteNotFound = "Rota não encontrada."
	msgInternal      = "Erro interno do servidor."
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps a service error onto a status code and a {"message"} body.
// Unclassified errors are logged and reported as 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, fallback := classify(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeMessage(w, status, msgInternal)
		return
	}

	msg := domain.UserMessage(err)
	if msg == "" {
		msg = fallback
	}
	writeMessage(w, status, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, msgInvalidBody
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, msgConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// decodeJSON reads a JSON body into dst. It writes a 400 and returns false
// when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// pathID parses a positive integer path value. It writes a 400 and returns
// false otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	return parseID(w, r.PathValue(name))
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

// NotFound answers routes that match nothing.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, msgRouteNotFound)
}
