package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mefdet1/Assignment-5/internal/config"
	"github.com/mefdet1/Assignment-5/internal/middleware"
)

// Handlers groups the per-entity handlers served by the router.
type Handlers struct {
	Orders       *OrderHandler
	Sandwiches   *SandwichHandler
	Resources    *ResourceHandler
	Recipes      *RecipeHandler
	OrderDetails *OrderDetailHandler
	Health       *HealthHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	Auth           config.AuthConfig
	RequestTimeout time.Duration
	MetricsEnabled bool
}

// NewRouter wires middleware and the five entity collections.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(corsOptions(opts.CORS)))

	if h.Health != nil {
		r.Get("/health", h.Health.ServeHTTP)
	}
	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(opts.Auth))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Orders.CreateOrder)
			r.Get("/", h.Orders.ListOrders)
			r.Get("/{id}", h.Orders.GetOrder)
			r.Put("/{id}", h.Orders.UpdateOrder)
			r.Delete("/{id}", h.Orders.DeleteOrder)
		})

		r.Route("/sandwiches", func(r chi.Router) {
			r.Post("/", h.Sandwiches.CreateSandwich)
			r.Get("/", h.Sandwiches.ListSandwiches)
			r.Get("/{id}", h.Sandwiches.GetSandwich)
			r.Put("/{id}", h.Sandwiches.UpdateSandwich)
			r.Delete("/{id}", h.Sandwiches.DeleteSandwich)
		})

		r.Route("/resources", func(r chi.Router) {
			r.Post("/", h.Resources.CreateResource)
			r.Get("/", h.Resources.ListResources)
			r.Get("/{id}", h.Resources.GetResource)
			r.Put("/{id}", h.Resources.UpdateResource)
			r.Delete("/{id}", h.Resources.DeleteResource)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", h.Recipes.CreateRecipe)
			r.Get("/", h.Recipes.ListRecipes)
			r.Get("/{id}", h.Recipes.GetRecipe)
			r.Put("/{id}", h.Recipes.UpdateRecipe)
			r.Delete("/{id}", h.Recipes.DeleteRecipe)
		})

		r.Route("/order_details", func(r chi.Router) {
			r.Post("/", h.OrderDetails.CreateOrderDetail)
			r.Get("/", h.OrderDetails.ListOrderDetails)
			r.Get("/{id}", h.OrderDetails.GetOrderDetail)
			r.Put("/{id}", h.OrderDetails.UpdateOrderDetail)
			r.Delete("/{id}", h.OrderDetails.DeleteOrderDetail)
		})
	})

	return r
}

// corsOptions allows any method, header and credentials. A lone "*" origin
// is served by echoing the request origin, since browsers reject a literal
// wildcard on credentialed responses.
func corsOptions(cfg config.CORSConfig) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}

	return opts
}
