package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/groqtts/internal/api/handlers"
	"github.com/nikhilbhutani/groqtts/internal/api/middleware"
	"github.com/nikhilbhutani/groqtts/internal/config"
	"github.com/nikhilbhutani/groqtts/internal/observability"
	"github.com/nikhilbhutani/groqtts/internal/speech"
	"github.com/nikhilbhutani/groqtts/web"
)

type Router struct {
	mux    *chi.Mux
	cfg    *config.Config
	speech *speech.Service
	logger *slog.Logger
}

func NewRouter(cfg *config.Config, svc *speech.Service, logger *slog.Logger) *Router {
	return &Router{
		mux:    chi.NewRouter(),
		cfg:    cfg,
		speech: svc,
		logger: logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(rt.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.Server.AllowedOrigins, "X-Generation-Time", "X-File-Size", "Content-Disposition"))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	health := handlers.NewHealthHandler()
	r.Get("/health", health.Health)

	if rt.cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", observability.Handler())
	}

	// Companion page
	static := handlers.NewStaticHandler(web.Assets())
	r.Get("/", static.Home)
	r.Get("/index.html", static.Asset("index.html"))
	r.Get("/script.js", static.Asset("script.js"))
	r.Get("/style.css", static.Asset("style.css"))

	r.Route("/api", func(r chi.Router) {
		catalog := handlers.NewCatalogHandler()
		r.Get("/voices", catalog.Voices)
		r.Get("/models", catalog.Models)

		speechH := handlers.NewSpeechHandler(rt.speech, rt.cfg.Server.MaxBodyBytes, rt.logger)
		r.Post("/generate-speech", speechH.Generate)
	})

	return r
}
