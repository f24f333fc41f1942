package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/shop-api/internal/api"
	apiMiddleware "github.com/phrazzld/shop-api/internal/api/middleware"
	"github.com/phrazzld/shop-api/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	return newRouter(routerDeps{
		authHandler:     api.NewAuthHandler(app.userService, app.logger),
		productHandler:  api.NewProductHandler(app.productService, app.logger),
		seedHandler:     api.NewSeedHandler(app.seedService, app.logger),
		healthHandler:   api.NewHealthHandler(app.db, app.logger),
		authMiddleware:  apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore),
		traceMiddleware: apiMiddleware.TraceMiddleware(app.logger),
	})
}

type routerDeps struct {
	authHandler     *api.AuthHandler
	productHandler  *api.ProductHandler
	seedHandler     *api.SeedHandler
	healthHandler   *api.HealthHandler
	authMiddleware  *apiMiddleware.AuthMiddleware
	traceMiddleware func(http.Handler) http.Handler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(d.traceMiddleware)

	admin := apiMiddleware.RequireRoles(domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", d.authHandler.Register)
			r.Post("/login", d.authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(d.authMiddleware.Authenticate)
				r.Get("/check-status", d.authHandler.CheckStatus)
				r.Get("/private", d.authHandler.Private)
				r.With(apiMiddleware.RequireRoles(domain.RoleSuperUser, domain.RoleUser)).
					Get("/private2", d.authHandler.EchoUser)
				r.With(apiMiddleware.RequireRoles(domain.RoleUser)).
					Get("/private3", d.authHandler.EchoUser)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", d.productHandler.List)
			r.Get("/{id}", d.productHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(d.authMiddleware.Authenticate, admin)
				r.Post("/", d.productHandler.Create)
				r.Patch("/{id}", d.productHandler.Update)
				r.Delete("/{id}", d.productHandler.Delete)
			})
		})

		r.With(d.authMiddleware.Authenticate, admin).Get("/seed", d.seedHandler.Run)
	})

	r.Get("/health", d.healthHandler.Check)

	return otelhttp.NewHandler(r, "shop-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}
