package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, scheduleHandler DutyScheduleHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-mediserve"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments/{departmentID}", func(r chi.Router) {
				r.Get("/duty-schedules", scheduleHandler.GetDepartmentSchedules)
			})

			r.Route("/duty-schedules/{scheduleID}", func(r chi.Router) {
				r.Get("/attendances", attendanceHandler.ListPeriodAttendance)
			})

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/attendances/manual", attendanceHandler.SubmitManualEntry)
				r.Get("/attendances/manual/{entryID}", attendanceHandler.GetManualEntry)
			})
		})
	})
	return r
}
