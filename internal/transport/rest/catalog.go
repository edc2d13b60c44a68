package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

type catalogService interface {
	ListBooks(ctx context.Context) ([]domain.BookView, error)
	SearchBooks(ctx context.Context, title string) ([]domain.BookView, error)
	GetBook(ctx context.Context, id int64) (*domain.BookView, error)
	FilterByCategory(ctx context.Context, category string) ([]domain.BookView, error)
	FilterByMachine(ctx context.Context, machineID int64) ([]domain.BookView, error)
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	AvailableBooksAtMachine(ctx context.Context, machineID int64) ([]domain.BookView, error)
	MachinesHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error)
}

// CatalogHandler serves /api/livros and /api/maquinas.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ListBooks handles GET /api/livros.
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	h.writeBooks(w, r, books, err)
}

// SearchBooks handles GET /api/livros/buscar?titulo=.
func (h *CatalogHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.SearchBooks(r.Context(), r.URL.Query().Get("titulo"))
	h.writeBooks(w, r, books, err)
}

// GetBook handles GET /api/livros/{id}.
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(*book))
}

// FilterByCategory handles GET /api/livros/filtro/tipo/{tipo}.
func (h *CatalogHandler) FilterByCategory(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.FilterByCategory(r.Context(), r.PathValue("tipo"))
	h.writeBooks(w, r, books, err)
}

// FilterByMachine handles GET /api/livros/filtro/maquina/{id}.
func (h *CatalogHandler) FilterByMachine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	books, err := h.svc.FilterByMachine(r.Context(), id)
	h.writeBooks(w, r, books, err)
}

// ListMachines handles GET /api/maquinas.
func (h *CatalogHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.svc.ListMachines(r.Context())
	h.writeMachines(w, r, machines, err)
}

// machineSubroute serves GET /api/maquinas/{first}/{second}:
// "livro/{livroId}" lists machines holding a book and "{id}/livros" lists
// the books available at a machine.
func (h *CatalogHandler) machineSubroute(w http.ResponseWriter, r *http.Request) {
	first, second := r.PathValue("first"), r.PathValue("second")
	switch {
	case first == "livro":
		h.machinesHoldingBook(w, r, second)
	case second == "livros":
		h.machineBooks(w, r, first)
	default:
		NotFound(w, r)
	}
}

func (h *CatalogHandler) machineBooks(w http.ResponseWriter, r *http.Request, raw string) {
	id, ok := parseID(w, raw)
	if !ok {
		return
	}

	books, err := h.svc.AvailableBooksAtMachine(r.Context(), id)
	h.writeBooks(w, r, books, err)
}

func (h *CatalogHandler) machinesHoldingBook(w http.ResponseWriter, r *http.Request, raw string) {
	id, ok := parseID(w, raw)
	if !ok {
		return
	}

	machines, err := h.svc.MachinesHoldingBook(r.Context(), id)
	h.writeMachines(w, r, machines, err)
}

func (h *CatalogHandler) writeBooks(w http.ResponseWriter, r *http.Request, books []domain.BookView, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (h *CatalogHandler) writeMachines(w http.ResponseWriter, r *http.Request, machines []domain.Machine, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMachineResponses(machines))
}
