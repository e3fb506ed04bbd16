package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/karobarhq/payroll-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	env string,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	taxBracketHandler TaxBracketHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

		// Tenant registration has no token yet.
		r.Post("/companies", companyHandler.Create)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.GetMy)
				r.Put("/", companyHandler.UpdateMy)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)

					r.Route("/leave-balances", func(r chi.Router) {
						r.Get("/", leaveHandler.GetBalances)
						r.Post("/recompute", leaveHandler.RecomputeBalances)
					})
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaveTypes)
				r.Post("/", leaveHandler.CreateLeaveType)
				r.Put("/{id}", leaveHandler.UpdateLeaveType)
			})

			r.Route("/payroll/runs", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRuns)
				r.Post("/", payrollHandler.CreateRun)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetRun)
					r.Delete("/", payrollHandler.DeleteRun)
					r.Post("/process", payrollHandler.ProcessRun)
					r.Post("/finalize", payrollHandler.FinalizeRun)
					r.Get("/payslips", payrollHandler.ListPayslips)
					r.Get("/summary", payrollHandler.GetRunSummary)
				})
			})

			r.Route("/tax-brackets", func(r chi.Router) {
				r.Get("/", taxBracketHandler.List)
				r.Post("/", taxBracketHandler.Create)
				r.Post("/seed", taxBracketHandler.Seed)
				r.Delete("/{id}", taxBracketHandler.Delete)
			})
		})
	})
	return r
}
