package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"github.com/heartmarshall/booklocker-backend/internal/service/reservation"
)

type reservationService interface {
	Create(ctx context.Context, input reservation.CreateInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, input reservation.ActInput) (*domain.Reservation, error)
	PickUp(ctx context.Context, input reservation.ActInput) (*domain.HistoryEntry, error)
	RegisterPickup(ctx context.Context, input reservation.RegisterPickupInput) (*domain.HistoryEntry, error)
	ListActive(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error)
	ListHistory(ctx context.Context, userID int64) ([]domain.HistoryView, error)
}

// ReservationHandler serves /api/reservas and /api/historico.
type ReservationHandler struct {
	svc reservationService
	log *slog.Logger
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(svc reservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: logger.With("handler", "reservation")}
}

type userBookRequest struct {
	UserID int64 `json:"usuario_id"`
	BookID int64 `json:"livro_id"`
}

type actorRequest struct {
	UserID int64 `json:"usuario_id"`
}

// Create handles POST /api/reservas.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userBookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Create(r.Context(), reservation.CreateInput{UserID: req.UserID, BookID: req.BookID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdReservationResponse{
		Message:     "Reserva criada com sucesso!",
		Reservation: toReservationResponse(*res),
	})
}

// ListActive handles GET /api/reservas/usuario/{id}.
func (h *ReservationHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	views, err := h.svc.ListActive(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActiveReservationResponses(views))
}

// Cancel handles PUT /api/reservas/{id}/cancelar.
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	input, ok := h.actInput(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Cancel(r.Context(), input); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Reserva cancelada com sucesso")
}

// PickUp handles PUT /api/reservas/{id}/retirar.
func (h *ReservationHandler) PickUp(w http.ResponseWriter, r *http.Request) {
	input, ok := h.actInput(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.PickUp(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPickupResponse("Livro retirado com sucesso!", entry))
}

// RegisterPickup handles POST /api/historico.
func (h *ReservationHandler) RegisterPickup(w http.ResponseWriter, r *http.Request) {
	var req userBookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.RegisterPickup(r.Context(), reservation.RegisterPickupInput{UserID: req.UserID, BookID: req.BookID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPickupResponse("Retirada registrada com sucesso!", entry))
}

// History handles GET /api/historico/{usuarioId}.
func (h *ReservationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "usuarioId")
	if !ok {
		return
	}

	views, err := h.svc.ListHistory(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponses(views))
}

func (h *ReservationHandler) actInput(w http.ResponseWriter, r *http.Request) (reservation.ActInput, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return reservation.ActInput{}, false
	}
	var req actorRequest
	if !decodeJSON(w, r, &req) {
		return reservation.ActInput{}, false
	}
	return reservation.ActInput{ReservationID: id, UserID: req.UserID}, true
}
