package rest

import (
	"time"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Wire values follow the mobile client's Portuguese vocabulary.
var (
	bookStatusWire = map[domain.BookStatus]string{
		domain.BookStatusAvailable:   "disponivel",
		domain.BookStatusReserved:    "reservado",
		domain.BookStatusUnavailable: "indisponivel",
	}
	categoryWire = map[domain.BookCategory]string{
		domain.BookCategoryPersonal:     "pessoal",
		domain.BookCategoryProfessional: "profissional",
	}
	reservationStatusWire = map[domain.ReservationStatus]string{
		domain.ReservationStatusActive:    "ativa",
		domain.ReservationStatusCompleted: "concluida",
		domain.ReservationStatusCancelled: "cancelada",
	}
)

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type bookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Author      string  `json:"autor"`
	Year        *int    `json:"ano"`
	Description string  `json:"descricao"`
	ImageURL    string  `json:"imagem_url"`
	Category    string  `json:"tipo"`
	Status      string  `json:"status"`
	MachineID   *int64  `json:"maquina_id"`
	MachineName *string `json:"nome_maquina"`
}

type machineResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Location string `json:"localizacao"`
}

type reservationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuario_id"`
	BookID    int64     `json:"livro_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"data_reserva"`
}

type activeReservationResponse struct {
	reservationResponse
	Title       string  `json:"titulo"`
	ImageURL    string  `json:"imagem_url"`
	MachineName *string `json:"nome_maquina"`
}

type historyResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"titulo"`
	Author     string    `json:"autor"`
	PickedUpAt time.Time `json:"data_retirada"`
	Machine    *string   `json:"maquina"`
}

type favoriteResponse struct {
	bookResponse
	FavoritedAt time.Time `json:"data_favorito"`
}

type createdReservationResponse struct {
	Message     string              `json:"message"`
	Reservation reservationResponse `json:"reserva"`
}

type pickupResponse struct {
	Message string `json:"message"`
	History struct {
		ID         int64     `json:"id"`
		BookID     int64     `json:"livro_id"`
		MachineID  *int64    `json:"maquina_id"`
		PickedUpAt time.Time `json:"data_retirada"`
	} `json:"historico"`
}

type userMessageResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"usuario"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toBookResponse(b domain.BookView) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Category:    categoryWire[b.Category],
		Status:      bookStatusWire[b.Status],
		MachineID:   b.MachineID,
		MachineName: b.MachineName,
	}
}

func toBookResponses(books []domain.BookView) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}

func toMachineResponses(machines []domain.Machine) []machineResponse {
	out := make([]machineResponse, len(machines))
	for i, m := range machines {
		out[i] = machineResponse{ID: m.ID, Name: m.Name, Location: m.Location}
	}
	return out
}

func toReservationResponse(r domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Status:    reservationStatusWire[r.Status],
		CreatedAt: r.CreatedAt,
	}
}

func toActiveReservationResponses(views []domain.ActiveReservationView) []activeReservationResponse {
	out := make([]activeReservationResponse, len(views))
	for i, v := range views {
		out[i] = activeReservationResponse{
			reservationResponse: toReservationResponse(v.Reservation),
			Title:               v.BookTitle,
			ImageURL:            v.BookImageURL,
			MachineName:         v.MachineName,
		}
	}
	return out
}

func toHistoryResponses(views []domain.HistoryView) []historyResponse {
	out := make([]historyResponse, len(views))
	for i, v := range views {
		out[i] = historyResponse{
			ID:         v.ID,
			Title:      v.BookTitle,
			Author:     v.BookAuthor,
			PickedUpAt: v.PickedUpAt,
			Machine:    v.MachineName,
		}
	}
	return out
}

func toFavoriteResponses(views []domain.FavoriteView) []favoriteResponse {
	out := make([]favoriteResponse, len(views))
	for i, v := range views {
		out[i] = favoriteResponse{
			bookResponse: toBookResponse(v.BookView),
			FavoritedAt:  v.FavoritedAt,
		}
	}
	return out
}

func toPickupResponse(message string, e *domain.HistoryEntry) pickupResponse {
	resp := pickupResponse{Message: message}
	resp.History.ID = e.ID
	resp.History.BookID = e.BookID
	resp.History.MachineID = e.MachineID
	resp.History.PickedUpAt = e.PickedUpAt
	return resp
}
