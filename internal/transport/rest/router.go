package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/teampulse/internal/analytics"
	"github.com/frahmantamala/teampulse/internal/auth"
	"github.com/frahmantamala/teampulse/internal/checkin"
	"github.com/frahmantamala/teampulse/internal/project"
	"github.com/frahmantamala/teampulse/internal/team"
	"github.com/frahmantamala/teampulse/internal/transport/middleware"
	"github.com/frahmantamala/teampulse/internal/transport/swagger"
	"github.com/frahmantamala/teampulse/internal/user"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	teamHandler *team.Handler,
	projectHandler *project.Handler,
	checkinHandler *checkin.Handler,
	analyticsHandler *analytics.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid token and an active account.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)
			pr.Use(auth.RequireActiveUser)

			pr.Route("/auth", func(sr chi.Router) {
				sr.Get("/me", authHandler.Me)
				sr.Put("/change-password", authHandler.ChangePassword)
				sr.With(auth.RequireAdmin).Post("/register", authHandler.Register)
			})

			pr.Route("/users", func(sr chi.Router) {
				sr.Get("/profile", userHandler.GetProfile)
				sr.Put("/profile", userHandler.UpdateProfile)
				sr.Get("/{id}", userHandler.GetUser)

				sr.Group(func(ar chi.Router) {
					ar.Use(auth.RequireAdmin)
					ar.Get("/", userHandler.ListUsers)
					ar.Put("/{id}", userHandler.UpdateUser)
					ar.Delete("/{id}", userHandler.DeactivateUser)
					ar.Put("/{id}/reactivate", userHandler.ReactivateUser)
				})
			})

			pr.Route("/teams", func(sr chi.Router) {
				sr.Use(auth.RequireAdmin)
				sr.Get("/", teamHandler.ListTeams)
				sr.Get("/{id}", teamHandler.GetTeam)
				sr.Post("/", teamHandler.CreateTeam)
				sr.Put("/{id}", teamHandler.UpdateTeam)
				sr.Delete("/{id}", teamHandler.DeleteTeam)
				sr.Post("/{id}/members/{userID}", teamHandler.AddMember)
				sr.Delete("/{id}/members/{userID}", teamHandler.RemoveMember)
			})

			pr.Route("/projects", func(sr chi.Router) {
				sr.Get("/", projectHandler.ListProjects)
				sr.Get("/{id}", projectHandler.GetProject)
				sr.Get("/{id}/assigned-users", projectHandler.GetAssignedUsers)

				sr.Group(func(ar chi.Router) {
					ar.Use(auth.RequireAdmin)
					ar.Post("/", projectHandler.CreateProject)
					ar.Put("/{id}", projectHandler.UpdateProject)
					ar.Delete("/{id}", projectHandler.DeleteProject)
					ar.Post("/{id}/assign/{userID}", projectHandler.AssignUser)
					ar.Delete("/{id}/unassign/{userID}", projectHandler.UnassignUser)
				})
			})

			pr.Route("/checkins", func(sr chi.Router) {
				sr.Post("/", checkinHandler.SubmitCheckIn)
				sr.Get("/my-checkins", checkinHandler.MyCheckins)
				sr.Get("/{id}", checkinHandler.GetCheckIn)
				sr.Put("/{id}", checkinHandler.UpdateCheckIn)

				sr.Group(func(ar chi.Router) {
					ar.Use(auth.RequireAdmin)
					ar.Get("/", checkinHandler.ListAllCheckIns)
					ar.Get("/weekly-summary", checkinHandler.WeeklySummary)
					ar.Delete("/{id}", checkinHandler.DeleteCheckIn)
				})
			})

			pr.Route("/analytics", func(sr chi.Router) {
				sr.Get("/dashboard-basic", analyticsHandler.DashboardBasic)

				sr.Group(func(ar chi.Router) {
					ar.Use(auth.RequireAdmin)
					ar.Get("/dashboard", analyticsHandler.Dashboard)
					ar.Get("/teams", analyticsHandler.TeamAnalytics)
					ar.Get("/projects", analyticsHandler.ProjectAnalytics)
					ar.Get("/trends", analyticsHandler.Trends)
				})
			})
		})
	})
}
