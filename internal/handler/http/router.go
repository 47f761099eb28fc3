package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/handler/http/middleware"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Profile)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionEmployeeManage))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionAttendanceCreate))
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/", attendanceHandler.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionLeaveCreate))
					r.Post("/", leaveHandler.Create)
				})
				r.Get("/", leaveHandler.List)
				r.Get("/balance", leaveHandler.GetBalance)
				r.Get("/{id}", leaveHandler.Get)
				r.Put("/{id}", leaveHandler.Update)
				r.Delete("/{id}", leaveHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionLeaveApprove))
					r.Patch("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
				r.Get("/{id}/payslip", payrollHandler.Payslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionPayrollManage))
					r.Post("/generate", payrollHandler.Generate)
					r.Put("/{id}", payrollHandler.Update)
					r.Post("/bulk-action", payrollHandler.BulkAction)
					r.Patch("/{id}/sent", payrollHandler.MarkSent)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(role.PermissionReportsView))
				r.Get("/reports/attendance/monthly", reportHandler.MonthlyAttendance)
			})

			r.Route("/masters", func(r chi.Router) {
				r.Get("/departments", masterHandler.ListDepartments)
				r.Get("/roles", masterHandler.ListRoles)
				r.Get("/departments/{departmentID}/attendance-settings", masterHandler.GetAttendanceSettings)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionSettingsManage))
					r.Put("/departments/{departmentID}/attendance-settings", masterHandler.UpsertAttendanceSettings)
				})
			})
		})
	})

	return r
}
