package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopcart-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/shopcart-backend/api/controllers/cart"
	"github.com/angelmondragon/shopcart-backend/api/middleware"
	"github.com/angelmondragon/shopcart-backend/api/responses"
	"github.com/angelmondragon/shopcart-backend/internal/cart"
	"github.com/angelmondragon/shopcart-backend/internal/catalog"
	"github.com/angelmondragon/shopcart-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
	"github.com/angelmondragon/shopcart-backend/pkg/metrics"
	"github.com/angelmondragon/shopcart-backend/pkg/redis"
)

// NewRouter wires every HTTP route. redisClient and registry may be nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	cartService cart.Service,
) http.Handler {
	r := chi.NewRouter()

	var (
		pinger      redis.Pinger
		idempotency redis.IdempotencyStore
	)
	if redisClient != nil {
		pinger = redisClient
		idempotency = redisClient
	}

	var httpMetrics *metrics.HTTPMetrics
	if cfg.Metrics.Enabled && registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	// Recoverer stays inside Logging and Metrics; recovered panics are logged and counted as 500s.
	r.Use(
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.Recoverer(logg),
		middleware.CORS(cfg.CORS),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, pinger, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{
			Timeout: 5 * time.Second,
		}))
	}

	r.Get("/products", controllers.ProductList(catalogService, logg))

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.CartList(cartService, logg))
		r.Get("/summary", cartcontrollers.CartSummary(cartService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Idempotency(idempotency, cfg.Idempotency.TTL, logg))
			r.Post("/add", cartcontrollers.CartAdd(cartService, logg))
			r.Post("/edit", cartcontrollers.CartEdit(cartService, logg))
			r.Post("/delete", cartcontrollers.CartDelete(cartService, logg))
		})
	})

	return r
}
