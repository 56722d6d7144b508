// Package magazinesubscriptionservice собирает приложение:
// хранилище, миграции, кеш, сервисы, маршруты и HTTP-сервер.
package magazinesubscriptionservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/cache"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/config"
	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/smtp"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/migrations"
	authservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
	magazineservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/magazine"
	planservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/plan"
	senderservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/sender"
	subscriptionservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/subscription"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключает хранилище и кеш, накатывает миграции,
// собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := customjwt.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	transport := smtp.NewTransport(cfg, logger)

	senderService := senderservice.NewSenderService(logger, transport)
	authService := authservice.NewAuthService(db, jwtMaker, senderService)
	magazineService := magazineservice.NewMagazineService(db, cacheRedis, logger)
	planService := planservice.NewPlanService(db, logger)
	subscriptionService := subscriptionservice.NewSubscriptionService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, magazineService, planService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	}
}
