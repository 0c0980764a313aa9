package api

import (
	"net/http"
	"strings"

	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(service QuizSI, cfg config.HTTPConfig, log *zap.Logger) http.Handler {
	h := NewHandler(service, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(log), middleware.Recoverer)

	origins := cfg.CORSOrigins
	if cfg.PublicURL != "" {
		origins = append(origins[:len(origins):len(origins)], strings.TrimRight(cfg.PublicURL, "/"))
	}
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api/quiz", func(r chi.Router) {
		r.Post("/generate", h.generateQuiz)
		r.Post("/save", h.saveQuiz)
		r.Get("/", h.getQuiz)
		r.Get("/{id}", h.getQuiz)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method Not Allowed"})
	})

	return r
}
