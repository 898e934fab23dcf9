package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter builds the chi router exposing the full external contract:
// four registration calls, one update call, one booking call, three view
// calls, and a health probe. No other entry points exist.
//
// Precondition: h and logger must be non-nil.
func NewRouter(h *Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(accessLog(logger))

	r.Get("/health", h.Health)

	r.Route("/admins", func(r chi.Router) {
		r.Post("/", h.RegisterAdmin)
		r.Get("/balances", h.AdminBalances)
	})

	r.Route("/trainers", func(r chi.Router) {
		r.Post("/", h.RegisterTrainer)
		r.Get("/{id}/schedule", h.TrainerSchedule)
	})

	r.Route("/participants", func(r chi.Router) {
		r.Post("/", h.RegisterParticipant)
		r.Get("/{id}", h.Participant)
		r.Patch("/{id}", h.UpdateParticipant)
	})

	r.Post("/bookings", h.BookSlot)

	return r
}

// accessLog logs one structured entry per request.
func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
