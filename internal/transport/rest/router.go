package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/booklocker-backend/internal/config"
	"github.com/heartmarshall/booklocker-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Account     *AccountHandler
	Catalog     *CatalogHandler
	Reservation *ReservationHandler
	Favorite    *FavoriteHandler
	Health      *HealthHandler
}

// RouterConfig carries the middleware settings.
type RouterConfig struct {
	CORS           config.CORSConfig
	RequestTimeout time.Duration
	AuthPerMinute  int
}

// NewRouter registers all routes and wraps them in the middleware chain.
// limiter may be nil, which disables rate limiting.
func NewRouter(h Handlers, cfg RouterConfig, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	throttle := func(fn http.HandlerFunc) http.Handler {
		if limiter == nil || cfg.AuthPerMinute <= 0 {
			return fn
		}
		return limiter.Limit(cfg.AuthPerMinute)(fn)
	}

	mux.Handle("POST /api/usuarios/registrar", throttle(h.Account.Register))
	mux.Handle("POST /api/usuarios/login", throttle(h.Account.Login))
	mux.HandleFunc("GET /api/usuarios/{id}", h.Account.Get)
	mux.HandleFunc("PUT /api/usuarios/{id}", h.Account.Update)
	mux.HandleFunc("PUT /api/usuarios/{id}/nome", h.Account.Rename)
	mux.HandleFunc("PATCH /api/usuarios/{id}/senha", h.Account.ChangePassword)

	mux.HandleFunc("GET /api/livros", h.Catalog.ListBooks)
	mux.HandleFunc("GET /api/livros/buscar", h.Catalog.SearchBooks)
	mux.HandleFunc("GET /api/livros/{id}", h.Catalog.GetBook)
	mux.HandleFunc("GET /api/livros/filtro/tipo/{tipo}", h.Catalog.FilterByCategory)
	mux.HandleFunc("GET /api/livros/filtro/maquina/{id}", h.Catalog.FilterByMachine)

	mux.HandleFunc("GET /api/maquinas", h.Catalog.ListMachines)
	// /api/maquinas/livro/{livroId} and /api/maquinas/{id}/livros overlap as
	// ServeMux patterns, so both are dispatched from one route.
	mux.HandleFunc("GET /api/maquinas/{first}/{second}", h.Catalog.machineSubroute)

	mux.HandleFunc("POST /api/reservas", h.Reservation.Create)
	mux.HandleFunc("GET /api/reservas/usuario/{id}", h.Reservation.ListActive)
	mux.HandleFunc("PUT /api/reservas/{id}/cancelar", h.Reservation.Cancel)
	mux.HandleFunc("PUT /api/reservas/{id}/retirar", h.Reservation.PickUp)

	mux.HandleFunc("POST /api/favoritos", h.Favorite.Add)
	mux.HandleFunc("DELETE /api/favoritos", h.Favorite.Remove)
	mux.HandleFunc("GET /api/favoritos/{usuarioId}", h.Favorite.List)

	mux.HandleFunc("POST /api/historico", h.Reservation.RegisterPickup)
	mux.HandleFunc("GET /api/historico/{usuarioId}", h.Reservation.History)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("/", NotFound)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.RequestTimeout))
	}
	return middleware.Chain(chain...)(mux)
}
