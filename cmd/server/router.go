package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/almanac-api/internal/api"
	apiMiddleware "github.com/phrazzld/almanac-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	accountHandler := api.NewAccountHandler(app.controller, app.logger)
	calendarHandler := api.NewCalendarHandler(app.controller, app.logger)
	entryHandler := api.NewEntryHandler(app.controller, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Accounts and the single server session
		r.Post("/accounts", accountHandler.SignUp)
		r.Post("/session", accountHandler.Login)
		r.Get("/session", accountHandler.CurrentAccount)
		r.Delete("/session", accountHandler.Logout)
		r.Delete("/session/account", accountHandler.Deactivate)

		// Calendars
		r.Post("/calendars", calendarHandler.Create)
		r.Get("/calendars/public", calendarHandler.ListPublic)
		r.Get("/calendars/private", calendarHandler.ListPrivate)
		r.Get("/calendars/current", calendarHandler.Current)
		r.Delete("/calendars/current", calendarHandler.RemoveCurrent)
		r.Post("/calendars/copy", calendarHandler.Copy)
		r.Post("/calendars/{id}/select", calendarHandler.Select)

		// Entries in the selected calendar
		r.Post("/entries", entryHandler.Add)
		r.Get("/entries", entryHandler.List)
		r.Delete("/entries", entryHandler.RemoveByTitle)
		r.Put("/entries/{id}", entryHandler.Edit)
		r.Delete("/entries/{id}", entryHandler.Remove)
		r.Post("/entries/{id}/complete", entryHandler.Complete)

		// Session date selection
		r.Put("/selection", entryHandler.SetSelection)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"available"}`))
	})

	return r
}
