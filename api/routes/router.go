package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/controllers"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/middleware"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/auth"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/buyers"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/customers"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/orders"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/quotes"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/auth/session"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/config"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/metrics"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Params bundles everything the router needs wired.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    sessionManager
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Countries *reference.Table
	Carrier   *kurasi.Client
	Auth      auth.Service
	Customers customers.Service
	Buyers    buyers.Service
	Orders    orders.Service
	Quotes    quotes.Service
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	// Quote and reference endpoints stay open to the internal network; the
	// storefront calls them before any staff login.
	r.Route("/api", func(r chi.Router) {
		r.Post("/shipping-quote", controllers.ShippingQuote(p.Quotes, logg))
		r.Post("/shipping-quote/services", controllers.ShippingQuoteServices(p.Quotes, logg))
		r.Get("/countries", controllers.CountryList(p.Countries, logg))
		r.Get("/countries/{code}/regions", controllers.CountryRegions(p.Countries, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(p.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(p.Auth, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Use(middleware.Idempotency(p.Redis, logg))

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", controllers.CustomerCreate(p.Customers, logg))
			r.Get("/", controllers.CustomerList(p.Customers, logg))
			r.Get("/{id}", controllers.CustomerGet(p.Customers, logg))
			r.Patch("/{id}", controllers.CustomerUpdate(p.Customers, logg))
			r.Delete("/{id}", controllers.CustomerDelete(p.Customers, logg))
		})

		r.Route("/buyers", func(r chi.Router) {
			r.Post("/", controllers.BuyerCreate(p.Buyers, logg))
			r.Get("/", controllers.BuyerList(p.Buyers, logg))
			r.Get("/{id}", controllers.BuyerGet(p.Buyers, logg))
			r.Patch("/{id}", controllers.BuyerUpdate(p.Buyers, logg))
			r.Delete("/{id}", controllers.BuyerDelete(p.Buyers, logg))
		})

		r.Get("/shipments", controllers.ShipmentList(p.Carrier, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.OrderCreate(p.Orders, logg))
			r.Get("/", controllers.OrderList(p.Orders, logg))
			r.Get("/{id}", controllers.OrderGet(p.Orders, logg))
			r.Patch("/{id}", controllers.OrderUpdate(p.Orders, logg))
			r.Delete("/{id}", controllers.OrderDelete(p.Orders, logg))

			r.Post("/{id}/shipment", controllers.OrderShipmentCreate(p.Orders, logg))
			r.Delete("/{id}/shipment", controllers.OrderShipmentCancel(p.Orders, logg))
			r.Post("/{id}/shipped", controllers.OrderMarkShipped(p.Orders, logg))
			r.Get("/{id}/label", controllers.OrderLabel(p.Orders, logg))
		})
	})

	return r
}
