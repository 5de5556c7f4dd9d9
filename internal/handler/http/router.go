package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sitepay/sitepay-backend-go/internal/config"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/middleware"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	paymentHandler PaymentHandler,
	siteHandler SiteHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitepay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Get("/summary", employeeHandler.GetSummary)
					r.Post("/rate-increments", employeeHandler.RecordRateIncrement)
					r.Get("/rate-history", employeeHandler.GetRateHistory)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Put("/", attendanceHandler.Mark)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.Get)
					r.Delete("/", attendanceHandler.Delete)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", paymentHandler.List)
				r.Post("/", paymentHandler.Create)
				r.Get("/daily-total", paymentHandler.GetDailyTotal)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", paymentHandler.Get)
					r.Put("/", paymentHandler.Update)
					r.Delete("/", paymentHandler.Delete)
				})
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", siteHandler.List)
				r.Post("/", siteHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", siteHandler.Get)
					r.Put("/", siteHandler.Update)
					r.Delete("/", siteHandler.Delete)
				})
			})

			r.Get("/salary/overview", payrollHandler.GetSalaryOverview)
			r.Get("/reports/labor-cost", payrollHandler.GetLaborCostReport)
			r.Get("/dashboard", dashboardHandler.GetStats)
		})
	})

	return r
}
