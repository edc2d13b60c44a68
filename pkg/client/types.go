package client

import "time"

// User is a registered account.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// Book is a catalog entry. Status is "disponivel", "reservado" or
// "indisponivel"; Category is "pessoal" or "profissional".
type Book struct {
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

// Machine is a vending machine.
type Machine struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Location string `json:"localizacao"`
}

// Reservation is a user's claim on a book.
type Reservation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuario_id"`
	BookID    int64     `json:"livro_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"data_reserva"`
}

// ActiveReservation is an active reservation with book details.
type ActiveReservation struct {
	Reservation
	Title       string  `json:"titulo"`
	ImageURL    string  `json:"imagem_url"`
	MachineName *string `json:"nome_maquina"`
}

// HistoryItem is one past pickup.
type HistoryItem struct {
	ID         int64     `json:"id"`
	Title      string    `json:"titulo"`
	Author     string    `json:"autor"`
	PickedUpAt time.Time `json:"data_retirada"`
	Machine    *string   `json:"maquina"`
}

// FavoriteBook is a favorited book.
type FavoriteBook struct {
	Book
	FavoritedAt time.Time `json:"data_favorito"`
}

// Pickup is the receipt returned when a book is picked up.
type Pickup struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"livro_id"`
	MachineID  *int64    `json:"maquina_id"`
	PickedUpAt time.Time `json:"data_retirada"`
}

type userEnvelope struct {
	Message string `json:"message"`
	User    User   `json:"usuario"`
}

type reservationEnvelope struct {
	Message     string      `json:"message"`
	Reservation Reservation `json:"reserva"`
}

type pickupEnvelope struct {
	Message string `json:"message"`
	Pickup  Pickup `json:"historico"`
}

type userBook struct {
	UserID int64 `json:"usuario_id"`
	BookID int64 `json:"livro_id"`
}

type actor struct {
	UserID int64 `json:"usuario_id"`
}
