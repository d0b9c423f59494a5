package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the settings the router needs from the app config.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LoginRateLimit string
}

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Overtime     OvertimeHandler
	Performance  PerformanceHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) (*chi.Mux, error) {
	loginLimit, err := middleware.RateLimit(cfg.LoginRateLimit)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimit).Post("/login", h.Auth.Login)
		})

		r.Route("/notifications", func(r chi.Router) {
			// Authenticated by the short-lived token in the query string
			r.Get("/stream", h.Notification.Stream)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.Post("/sse-token", h.Notification.GetSSEToken)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/export", h.Employee.ExportCSV)
					r.Post("/import", h.Employee.ImportCSV)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/", h.Attendance.ListAttendance)
				r.With(middleware.AdminOnly).Post("/", h.Attendance.RecordAttendance)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", h.Leave.GetBalance)
				r.With(middleware.AdminOnly).Get("/balances", h.Leave.ListBalances)

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListRequests)
					r.Post("/", h.Leave.CreateRequest)
					r.Get("/{id}", h.Leave.GetRequest)
					r.Get("/{id}/calendar.ics", h.Leave.ExportCalendar)
					r.Get("/{id}/calendar-links", h.Leave.CalendarLinks)
					r.With(middleware.AdminOnly).Patch("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/overtime/requests", func(r chi.Router) {
				r.Get("/", h.Overtime.ListRequests)
				r.Post("/", h.Overtime.CreateRequest)
				r.Get("/{id}", h.Overtime.GetRequest)
				r.With(middleware.AdminOnly).Patch("/{id}/status", h.Overtime.UpdateStatus)
			})

			r.Route("/performance/reviews", func(r chi.Router) {
				r.Get("/", h.Performance.ListReviews)
				r.Get("/latest", h.Performance.LatestReview)
				r.With(middleware.AdminOnly).Post("/", h.Performance.CreateReview)
			})

			r.Get("/dashboard/me", h.Report.EmployeeDashboard)

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/dashboard", h.Report.Dashboard)
				r.Get("/attendance", h.Report.AttendanceReport)
				r.Get("/leave", h.Report.LeaveReport)
				r.Get("/overtime", h.Report.OvertimeReport)
				r.Get("/performance", h.Report.PerformanceReport)
				r.Post("/custom", h.Report.CustomReport)
				r.Post("/custom/export", h.Report.ExportCustomReport)
			})
		})
	})
	return r, nil
}
