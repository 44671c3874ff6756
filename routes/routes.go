package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Dosada05/sportsday-system/handlers"
	"github.com/Dosada05/sportsday-system/middleware"
)

// SetupRoutes wires the command surface. Dashboard reads stay public so
// venue displays need no credentials; every mutating route requires the
// operator token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	rosterHandler *handlers.RosterHandler,
	venueHandler *handlers.VenueHandler,
	teamHandler *handlers.TeamHandler,
	scheduleHandler *handlers.ScheduleHandler,
	standingsHandler *handlers.StandingsHandler,
	finalHandler *handlers.FinalHandler,
	adminHandler *handlers.AdminHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	// Public read surface for venue displays.
	router.Get("/dashboard/snapshot", dashboardHandler.GetSnapshot)
	router.Get("/ws/dashboard", dashboardHandler.ServeWs)
	router.Get("/standings", standingsHandler.List)

	// Operator command surface.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))

		r.Route("/classes", func(r chi.Router) {
			r.Get("/", rosterHandler.ListClasses)
			r.Post("/", rosterHandler.AddClass)
			r.Delete("/{label}", rosterHandler.RemoveClass)
		})

		r.Route("/participants", func(r chi.Router) {
			r.Get("/", rosterHandler.ListParticipants)
			r.Post("/import", rosterHandler.ImportParticipants)
			r.Patch("/{id}/presence", rosterHandler.SetPresence)
			r.Delete("/{id}", rosterHandler.RemoveParticipant)
			r.Delete("/", rosterHandler.ClearParticipants)
		})

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", venueHandler.ListVenues)
			r.Post("/", venueHandler.AddVenue)
			r.Put("/{id}", venueHandler.UpdateVenue)
			r.Delete("/{id}", venueHandler.RemoveVenue)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.ListTeams)
			r.Post("/assign", teamHandler.AssignTeams)
			r.Post("/lock", teamHandler.SetLocked)
			r.Post("/move", teamHandler.MoveParticipant)
			r.Put("/{id}/name", teamHandler.RenameTeam)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", scheduleHandler.List)
			r.Post("/generate", scheduleHandler.Generate)
			r.Post("/generate-rounds", scheduleHandler.GenerateFixedRounds)
			r.Post("/matches", scheduleHandler.AddManualMatch)
			r.Put("/matches/{id}/score", scheduleHandler.SetScore)
			r.Delete("/slots/{label}", scheduleHandler.DeleteSlot)
			r.Delete("/", scheduleHandler.Clear)
			r.Post("/shift", scheduleHandler.Shift)
			r.Post("/shift-next-round", scheduleHandler.ShiftNextRound)
			r.Get("/validate", scheduleHandler.Validate)
		})

		r.Post("/standings/recompute", standingsHandler.Recompute)

		r.Route("/final", func(r chi.Router) {
			r.Get("/winner", finalHandler.Winner)
			r.Post("/activate", finalHandler.Activate)
			r.Put("/score", finalHandler.SetScore)
			r.Post("/exit", finalHandler.Exit)
		})

		r.Route("/timer", func(r chi.Router) {
			r.Post("/start", dashboardHandler.StartTimer)
			r.Post("/pause", dashboardHandler.PauseTimer)
			r.Post("/reset", dashboardHandler.ResetTimer)
			r.Post("/adjust", dashboardHandler.AdjustTimer)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/settings", adminHandler.GetSettings)
			r.Put("/settings", adminHandler.UpdateSettings)
			r.Put("/title", adminHandler.SetTitle)
			r.Get("/export", adminHandler.Export)
			r.Post("/import", adminHandler.Import)
			r.Post("/reset", adminHandler.Reset)
		})
	})
}
