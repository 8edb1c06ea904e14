// Package server wires the router and owns the HTTP lifecycle.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/SEOSiri-Official/yalla-habibi/internal/config"
	"github.com/SEOSiri-Official/yalla-habibi/internal/handler"
	"github.com/SEOSiri-Official/yalla-habibi/internal/locale"
	"github.com/SEOSiri-Official/yalla-habibi/internal/logger"
	"github.com/SEOSiri-Official/yalla-habibi/internal/web"
)

type Server struct {
	cfg     config.Config
	handler http.Handler
}

func New(cfg config.Config, h *handler.Handler) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.HandleHealth)
	r.Route("/api", func(api chi.Router) {
		api.Get("/chat", h.HandleChat)
		api.Get("/languages", h.HandleLanguages)
	})
	r.Get("/robots.txt", h.HandleRobots)

	// Unprefixed pages negotiate their language from the request; prefixed
	// variants pin it.
	registerPages(r, h, "")
	for _, lang := range locale.PageLanguages() {
		lang := lang
		r.Route("/"+lang, func(pr chi.Router) {
			registerPages(pr, h, lang)
		})
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return &Server{cfg: cfg, handler: cors(r)}
}

func registerPages(r chi.Router, h *handler.Handler, lang string) {
	r.Get("/", h.Page("", lang))
	for _, p := range web.Pages {
		r.Get("/"+p.Slug, h.Page(p.Slug, lang))
	}
}

// Router exposes the composed handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.handler }

// Start runs the HTTP server until ctx is cancelled, then drains it.
func (s *Server) Start(ctx context.Context) {
	httpServer := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info().Str("addr", httpServer.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("shutdown error")
		return
	}
	logger.Log.Info().Msg("server stopped")
}

// requestLogger logs one line per request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
