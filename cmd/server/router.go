package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YUKIMIKAMI/diary-app/internal/api"
	apiMiddleware "github.com/YUKIMIKAMI/diary-app/internal/api/middleware"
	"github.com/YUKIMIKAMI/diary-app/internal/api/shared"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	diaryHandler := api.NewDiaryHandler(app.assistant)

	r.Route("/api", func(r chi.Router) {
		r.Post("/questions", diaryHandler.GenerateQuestions)
		r.Post("/emotions", diaryHandler.AnalyzeEmotion)
		r.Post("/chat", diaryHandler.Chat)
		r.Post("/prompts", diaryHandler.InteractivePrompt)
		r.Post("/keywords", diaryHandler.ExtractKeywords)
		r.Post("/entries/analyze", diaryHandler.AnalyzeEntry)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
