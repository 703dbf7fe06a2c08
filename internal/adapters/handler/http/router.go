package http

import (
	"net/http"

	_ "github.com/KissBendeguz/SnackElf/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	// PollLimiter throttles poll submissions when set.
	PollLimiter *IPRateLimiter
	Registry    *prometheus.Registry
	// TrustProxyHeaders replaces the remote address with X-Forwarded-For or
	// X-Real-IP. Enable it only behind a proxy that sets those headers, since
	// the poll limiter keys on the resulting address.
	TrustProxyHeaders bool
}

func NewHandler(roomHandler *RoomHandler, pollHandler *PollHandler, foodHandler *FoodHandler, healthHandler *HealthHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	if cfg.Registry != nil {
		r.Use(RequestDuration(cfg.Registry))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if healthHandler != nil {
		r.Get("/healthz", healthHandler.Health)
	}
	if cfg.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/create", roomHandler.CreateRoom)
			r.Post("/close", roomHandler.CloseRoom)
			r.Get("/{id}", roomHandler.GetRoom)
			r.Get("/{id}/results", roomHandler.GetResults)
			r.Get("/{id}/responses", pollHandler.ListResponses)
		})

		r.Route("/poll", func(r chi.Router) {
			if cfg.PollLimiter != nil {
				r.Use(cfg.PollLimiter.Middleware)
			}
			r.Post("/", pollHandler.SubmitPoll)
		})

		r.Route("/food", func(r chi.Router) {
			r.Post("/", foodHandler.SeedFoods)
			r.Get("/", foodHandler.ListFoods)
		})
	})

	return r
}
