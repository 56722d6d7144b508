// Package magazinesubscriptionservice предоставляет маршруты приложения.
package magazinesubscriptionservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/deactivate"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/resetpassword"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/status"
	magazinecreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/create"
	magazinelist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/list"
	magazineread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/read"
	magazineremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/remove"
	magazineupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/update"
	plancreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/read"
	planremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/update"
	subcreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/list"
	subread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/read"
	subremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/remove"
	subupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/update"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/middlewarectx"
	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
	magazineservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/magazine"
	planservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/plan"
	subscriptionservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker customjwt.Maker,
	authService *authservice.AuthService,
	magazineService *magazineservice.MagazineService,
	planService *planservice.PlanService,
	subscriptionService *subscriptionservice.SubscriptionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		// Пользователи и аутентификация
		r.Post("/users/register", register.New(logger, authService).ServeHTTP)
		r.Post("/users/login", login.New(logger, authService).ServeHTTP)
		r.Post("/users/token/refresh", refresh.New(logger, authService).ServeHTTP)
		r.Post("/users/reset-password", resetpassword.New(logger, authService).ServeHTTP)
		r.Delete("/users/deactivate/{username}", deactivate.New(logger, authService).ServeHTTP)
		r.Get("/users/{username}", status.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/users/me", me.New(logger, authService).ServeHTTP)
		})

		// Журналы
		r.Post("/magazines", magazinecreate.New(logger, magazineService).ServeHTTP)
		r.Get("/magazines", magazinelist.New(logger, magazineService).ServeHTTP)
		r.Get("/magazines/{id}", magazineread.New(logger, magazineService).ServeHTTP)
		r.Put("/magazines/{id}", magazineupdate.New(logger, magazineService).ServeHTTP)
		r.Delete("/magazines/{id}", magazineremove.New(logger, magazineService).ServeHTTP)

		// Тарифные планы
		r.Post("/plans", plancreate.New(logger, planService).ServeHTTP)
		r.Get("/plans", planlist.New(logger, planService).ServeHTTP)
		r.Get("/plans/{id}", planread.New(logger, planService).ServeHTTP)
		r.Put("/plans/{id}", planupdate.New(logger, planService).ServeHTTP)
		r.Delete("/plans/{id}", planremove.New(logger, planService).ServeHTTP)

		// Подписки
		r.Post("/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions", sublist.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions/{id}", subread.New(logger, subscriptionService).ServeHTTP)
		r.Put("/subscriptions/{id}", subupdate.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/subscriptions/{id}", subremove.New(logger, subscriptionService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
