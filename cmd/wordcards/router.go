package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/wordcards/internal/api"
	apiMiddleware "github.com/phrazzld/wordcards/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	mediaPrefix := app.config.Media.URLPrefix
	cardHandler := api.NewCardHandler(app.cardService, mediaPrefix, app.logger)
	trainHandler := api.NewTrainHandler(app.trainingService, mediaPrefix, app.logger)
	imageHandler := api.NewImageHandler(app.images, mediaPrefix, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Get("/", cardHandler.ListCards)
			r.Post("/", cardHandler.CreateCard)
			r.Get("/{id}", cardHandler.GetCard)
			r.Put("/{id}", cardHandler.EditCard)
			r.Get("/{id}/delete", cardHandler.RequestDelete)
			r.Post("/{id}/delete", cardHandler.ConfirmDelete)
		})

		r.Get("/train", trainHandler.Present)
		r.Post("/train", trainHandler.Answer)

		r.Post("/images", imageHandler.Upload)
	})

	base := strings.TrimSuffix(mediaPrefix, "/")
	r.Handle(base+"/*", http.StripPrefix(base, app.images.Handler()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
