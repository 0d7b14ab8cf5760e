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
	"github.com/kerjapedia/hrms-backend-go/internal/handler/http/middleware"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/jwt"
)

type RouterHandlers struct {
	Auth        AuthHandler
	User        UserHandler
	Employee    EmployeeHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Performance PerformanceHandler
	Attendance  AttendanceHandler
	DataChange  DataChangeHandler
}

func NewRouter(jwtService jwt.Service, h RouterHandlers, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-kerjapedia"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.GetCurrentUser)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.User.ListUsers)
					r.Post("/", h.User.CreateUser)
					r.Get("/{id}", h.User.GetUser)
					r.Put("/{id}", h.User.UpdateUser)
					r.Delete("/{id}", h.User.DeleteUser)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMyProfile)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Post("/{id}/avatar", h.Employee.UploadAvatar)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Put("/{id}/payroll-info", h.Employee.UpdatePayrollInfo)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Route("/my", func(r chi.Router) {
					r.Get("/", h.Leave.GetMyRequests)
					r.Get("/summary", h.Leave.GetMySummary)
				})
				r.Get("/{id}", h.Leave.GetRequest)
				r.Post("/{id}/document", h.Leave.UploadDocument)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListRequests)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
					r.Get("/summary/{employeeID}", h.Leave.GetSummary)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/my", h.Payroll.GetMyPayslips)
				r.Get("/{id}", h.Payroll.GetPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Payroll.ListPayslips)
					r.Post("/", h.Payroll.GeneratePayslip)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/my", h.Performance.GetMyReviews)
				r.Get("/{id}", h.Performance.GetReview)
				r.Post("/{id}/feedback", h.Performance.SubmitFeedback)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Performance.ListReviews)
					r.Post("/", h.Performance.CreateReview)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.ListAttendance)
				})
			})

			r.Route("/data-changes", func(r chi.Router) {
				r.Post("/", h.DataChange.CreateRequest)
				r.Get("/my", h.DataChange.GetMyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.DataChange.ListRequests)
					r.Post("/{id}/approve", h.DataChange.ApproveRequest)
					r.Post("/{id}/reject", h.DataChange.RejectRequest)
				})
			})
		})
	})
	return r
}
