package api

import (
	"net/http"
	"time"

	// Registers the generated OpenAPI document with swag.
	_ "compliance-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterOptions holds the settings of the HTTP layer that come from config.
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, settingsHandler *SettingsHandler, findingHandler *FindingHandler, opts RouterOptions) *chi.Mux {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", HeaderExportStatus, HeaderMessageCount},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(opts.RequestTimeout))

			r.Get("/settings/system-prompt", settingsHandler.GetSystemPrompt)
			r.Put("/settings/system-prompt", settingsHandler.UpdateSystemPrompt)
			r.Delete("/settings/system-prompt", settingsHandler.ResetSystemPrompt)

			r.Post("/findings/normalize", findingHandler.HandleNormalize)
			r.Post("/findings/suggestions", findingHandler.HandleSuggestions)

			r.Get("/threads/{key}", chatHandler.GetThread)
			r.Post("/threads/{key}/reset", chatHandler.ResetThread)
			r.Post("/threads/{key}/edit", chatHandler.BeginEdit)
			r.Put("/threads/{key}/edit", chatHandler.UpdateDraft)
			r.Delete("/threads/{key}/edit", chatHandler.CancelEdit)
			r.Post("/threads/{key}/edit/save", chatHandler.SaveEdit)
			r.Get("/threads/{key}/export", chatHandler.ExportThread)
		})

		// Answers can take longer than the request timeout and are recorded
		// even when the client gives up.
		r.Post("/threads/{key}/messages", chatHandler.HandleSubmitMessage)
	})

	return r
}
