package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "sheet-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all application routes.
func NewRouter(chatHandler *ChatHandler, calcHandler *CalcHandler, threadHandler *ThreadHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Health check for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Standard JSON routes get a request timeout so client connections
		// cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Post("/calculate", calcHandler.HandleCalculate)

			r.Post("/threads", threadHandler.HandleCreateThread)
			r.Put("/threads", threadHandler.HandleUpdateThread)
			r.Get("/threads", threadHandler.HandleListThreads)
			r.Get("/threads/{uiThreadID}", threadHandler.HandleGetThread)
			r.Delete("/threads/{uiThreadID}", threadHandler.HandleDeleteThread)

			r.Post("/messages", threadHandler.HandleCreateMessage)
			r.Get("/threads/{uiThreadID}/messages", threadHandler.HandleListMessages)
		})

		// The chat stream holds its connection open for the whole session
		// and must not be subject to the timeout middleware.
		r.Group(func(r chi.Router) {
			r.Post("/chat", chatHandler.HandleChat)
		})
	})

	return r
}

// corsMiddleware allows the spreadsheet UI, served from another origin, to
// reach the API during development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
