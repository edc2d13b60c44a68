package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/broker"
	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/book"
	favoriterepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/favorite"
	historyrepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/history"
	machinerepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/machine"
	reservationrepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/reservation"
	userrepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/booklocker-backend/internal/auth"
	"github.com/heartmarshall/booklocker-backend/internal/config"
	"github.com/heartmarshall/booklocker-backend/internal/service/account"
	"github.com/heartmarshall/booklocker-backend/internal/service/catalog"
	"github.com/heartmarshall/booklocker-backend/internal/service/favorite"
	"github.com/heartmarshall/booklocker-backend/internal/service/reservation"
	"github.com/heartmarshall/booklocker-backend/internal/transport/middleware"
	"github.com/heartmarshall/booklocker-backend/internal/transport/rest"
	"github.com/heartmarshall/booklocker-backend/migrations"
)

// eventSink is the publisher contract shared by the broker and its no-op.
type eventSink interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

// Run loads configuration, connects to PostgreSQL and the broker, and serves
// HTTP until ctx is cancelled. Shutdown waits up to server.shutdown_timeout
// for in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	events, brokerCheck, err := newEventSink(cfg.Broker, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Warn("close broker", slog.String("error", err.Error()))
		}
	}()

	hasher, err := auth.NewBcryptHasher(cfg.Auth.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("password hasher: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(
		buildHandlers(pool, hasher, events, brokerCheck, logger),
		rest.RouterConfig{
			CORS:           cfg.CORS,
			RequestTimeout: cfg.Server.RequestTimeout,
			AuthPerMinute:  cfg.RateLimit.AuthPerMinute,
		},
		limiter,
		logger,
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("application stopped")
	return err
}

// newEventSink dials the broker when configured. The returned check is nil
// when publishing is disabled so /health does not report it.
func newEventSink(cfg config.BrokerConfig, logger *slog.Logger) (eventSink, rest.Pinger, error) {
	if !cfg.Enabled() {
		logger.Info("broker disabled, reservation events are discarded")
		return broker.NopPublisher{}, nil, nil
	}

	pub, err := broker.NewPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connect broker: %w", err)
	}
	logger.Info("broker connected", slog.String("exchange", cfg.Exchange))
	return pub, pub, nil
}

func buildHandlers(
	pool *pgxpool.Pool,
	hasher *auth.BcryptHasher,
	events eventSink,
	brokerCheck rest.Pinger,
	logger *slog.Logger,
) rest.Handlers {
	users := userrepo.New(pool)
	books := bookrepo.New(pool)
	machines := machinerepo.New(pool)
	reservations := reservationrepo.New(pool)
	history := historyrepo.New(pool)
	favorites := favoriterepo.New(pool)
	txm := postgres.NewTxManager(pool)

	accountSvc := account.NewService(logger, users, hasher)
	catalogSvc := catalog.NewService(logger, books, machines)
	reservationSvc := reservation.NewService(logger, users, books, reservations, history, txm, events)
	favoriteSvc := favorite.NewService(logger, favorites)

	return rest.Handlers{
		Account:     rest.NewAccountHandler(accountSvc, logger),
		Catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		Reservation: rest.NewReservationHandler(reservationSvc, logger),
		Favorite:    rest.NewFavoriteHandler(favoriteSvc, logger),
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": pool,
			"broker":   brokerCheck,
		}, Version),
	}
}
