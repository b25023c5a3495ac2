// Package http wires the controllers, middleware, and rate limiter into the
// server's route table.
package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/controllers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/middleware"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/ratelimit"
)

// RouterDeps holds everything NewRouter needs.
type RouterDeps struct {
	Logger     *slog.Logger
	Verifier   domain.TokenVerifier
	Limiter    *ratelimit.Limiter
	Auth       *controllers.AuthController
	Seminars   *controllers.SeminarController
	Halls      *controllers.HallController
	Department *controllers.DepartmentController
	Operators  *controllers.OperatorController
	Users      *controllers.UserController
	Logs       *controllers.LogController
	Health     *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(deps.Verifier, deps.Logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireAdmin(h))
	}
	limited := deps.Limiter.Wrap

	// Auth. The credential endpoints are rate limited per client IP.
	mux.HandleFunc("POST /api/auth/login", limited(deps.Auth.Login))
	mux.HandleFunc("POST /api/auth/forgot-password", limited(deps.Auth.ForgotPassword))
	mux.HandleFunc("POST /api/auth/verify-otp", limited(deps.Auth.VerifyOtp))
	mux.HandleFunc("POST /api/auth/reset-password", limited(deps.Auth.ResetPassword))
	mux.HandleFunc("POST /api/auth/refresh-token", deps.Auth.RefreshToken)

	// Seminars
	mux.HandleFunc("POST /api/seminars", authed(deps.Seminars.Create))
	mux.HandleFunc("GET /api/seminars", authed(deps.Seminars.List))
	mux.HandleFunc("GET /api/seminars/by-date", authed(deps.Seminars.ListForDay))
	mux.HandleFunc("GET /api/seminars/date/{date}", authed(deps.Seminars.ListByDate))
	mux.HandleFunc("GET /api/seminars/hall/{hall}/date/{date}", authed(deps.Seminars.ListByHallAndDate))
	mux.HandleFunc("GET /api/seminars/history", authed(deps.Seminars.History))
	mux.HandleFunc("GET /api/seminars/calendar", authed(deps.Seminars.Calendar))
	mux.HandleFunc("GET /api/seminars/availability", authed(deps.Seminars.CheckAvailability))
	mux.HandleFunc("GET /api/seminars/status/{status}", authed(deps.Seminars.ListByStatus))
	mux.HandleFunc("GET /api/seminars/{id}", authed(deps.Seminars.GetByID))
	mux.HandleFunc("PUT /api/seminars/{id}", authed(deps.Seminars.Update))
	mux.HandleFunc("DELETE /api/seminars/{id}", authed(deps.Seminars.Delete))
	mux.HandleFunc("PATCH /api/seminars/{id}/status", admin(deps.Seminars.UpdateStatus))
	mux.HandleFunc("POST /api/seminars/{id}/cancel-request", authed(deps.Seminars.RequestCancel))

	// Halls
	mux.HandleFunc("GET /api/halls", authed(deps.Halls.List))
	mux.HandleFunc("POST /api/halls", admin(deps.Halls.Create))
	mux.HandleFunc("PUT /api/halls/{id}", admin(deps.Halls.Update))
	mux.HandleFunc("DELETE /api/halls/{id}", admin(deps.Halls.Delete))

	// Hall operators
	mux.HandleFunc("GET /api/hall-operators", authed(deps.Operators.List))
	mux.HandleFunc("GET /api/hall-operators/by-hall", authed(deps.Operators.ListByHall))
	mux.HandleFunc("GET /api/hall-operators/check-email", authed(deps.Operators.CheckEmail))
	mux.HandleFunc("GET /api/hall-operators/{id}", authed(deps.Operators.Get))
	mux.HandleFunc("POST /api/hall-operators", admin(deps.Operators.Create))
	mux.HandleFunc("PUT /api/hall-operators/{id}", admin(deps.Operators.Update))
	mux.HandleFunc("DELETE /api/hall-operators/{id}", admin(deps.Operators.Delete))

	// Departments
	mux.HandleFunc("GET /api/departments", authed(deps.Department.List))
	mux.HandleFunc("POST /api/departments", admin(deps.Department.Create))
	mux.HandleFunc("PUT /api/departments/{id}", admin(deps.Department.Update))
	mux.HandleFunc("DELETE /api/departments/{id}", admin(deps.Department.Delete))

	// Users
	mux.HandleFunc("GET /api/users", admin(deps.Users.List))
	mux.HandleFunc("POST /api/users", admin(deps.Users.Create))
	mux.HandleFunc("PUT /api/users/{id}", admin(deps.Users.Update))
	mux.HandleFunc("DELETE /api/users/{id}", admin(deps.Users.Delete))

	// Audit logs
	mux.HandleFunc("GET /api/logs", admin(deps.Logs.List))
	mux.HandleFunc("GET /api/logs/{email}", admin(deps.Logs.ListByEmail))

	// Health
	mux.HandleFunc("GET /health", deps.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
