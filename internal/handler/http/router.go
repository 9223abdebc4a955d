package http

import (
	"log/slog"
	"os"

	"github.com/colegio-admin/staff-backend-go/internal/domain/user"
	"github.com/colegio-admin/staff-backend-go/internal/handler/http/middleware"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	appealHandler AppealHandler,
	leaveHandler LeaveHandler,
	medicalHandler MedicalHandler,
	holidayHandler HolidayHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staff-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/rut", authHandler.LoginWithRUT)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/me", userHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Deactivate)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/my", attendanceHandler.ListMine)

				r.Route("/appeals", func(r chi.Router) {
					r.Get("/my", appealHandler.ListMine)
					r.Get("/{id}", appealHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionAttendanceJustify))
						r.Get("/", appealHandler.List)
						r.Patch("/{id}/review", appealHandler.Review)
					})
				})

				r.Get("/{id}", attendanceHandler.Get)
				r.Post("/{id}/appeal", appealHandler.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/", attendanceHandler.List)
					r.Get("/summary/{employeeID}", attendanceHandler.Summary)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceIngest)).
					Post("/punches", attendanceHandler.IngestPunches)
				r.With(middleware.RequirePermission(user.PermissionAttendanceJustify)).
					Patch("/{id}/justify", attendanceHandler.Justify)
				r.With(middleware.AdminOnly).
					Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/{id}", leaveHandler.Get)
				r.Patch("/{id}/cancel", leaveHandler.Cancel)

				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/", leaveHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Patch("/{id}/approve", leaveHandler.Approve)
					r.Patch("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/medical-leaves", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMedicalView))
				r.Get("/", medicalHandler.List)
				r.Get("/{id}", medicalHandler.Get)
				r.Get("/employee/{employeeID}", medicalHandler.ListByEmployee)

				r.With(middleware.RequirePermission(user.PermissionMedicalManage)).
					Post("/", medicalHandler.Create)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionScheduleManage))
				r.Get("/", scheduleHandler.List)
				r.Post("/", scheduleHandler.Upsert)
				r.Get("/{id}", scheduleHandler.Get)
				r.Get("/employee/{employeeID}", scheduleHandler.ListByEmployee)
				r.Delete("/employee/{employeeID}", scheduleHandler.Deactivate)
			})
		})
	})
	return r
}
