package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	accessHandler AccessHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/auth/register", authHandler.Register)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})

				r.Get("/{departmentID}/sectors", masterHandler.ListSectors)
				r.Get("/{departmentID}/shifts", masterHandler.ListShifts)
				r.Get("/{departmentID}/employees", employeeHandler.ListByDepartment)
				r.Get("/{departmentID}/schedule", scheduleHandler.MonthlyView)
				r.Get("/{departmentID}/schedule/export", exportHandler.DownloadMonth)
				r.Get("/{departmentID}/access/my", accessHandler.Resolve)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{departmentID}/access", accessHandler.ListByDepartment)
				})
			})

			r.Route("/sectors", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", masterHandler.CreateSector)
				r.Put("/{id}", masterHandler.UpdateSector)
				r.Delete("/{id}", masterHandler.DeleteSector)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", masterHandler.CreateShift)
				r.Delete("/{id}", masterHandler.DeleteShift)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{employeeID}/leave-requests", leaveHandler.GetEmployeeRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/assignments", scheduleHandler.SaveAssignments)
				r.Post("/reorder", scheduleHandler.Reorder)
				r.Post("/edit-sessions", scheduleHandler.OpenEditSession)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.Post("/{id}/cancel", leaveHandler.CancelRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/deny", leaveHandler.DenyRequest)
						r.Post("/{id}/reflect", leaveHandler.ReflectRequest)
					})
				})

				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", leaveHandler.CreateType)
						r.Delete("/{id}", leaveHandler.DeleteType)
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByYear)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/access-templates", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/", accessHandler.Save)
				r.Delete("/{id}", accessHandler.Delete)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
