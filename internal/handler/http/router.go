package http

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/medusa-holding/medusa/internal/handler/http/middleware"
	"github.com/medusa-holding/medusa/internal/pkg/jwt"
)

type RouterOptions struct {
	Env            string
	LogLevel       slog.Level
	CORSOrigins    []string
	PunchPerSecond float64
	PunchBurst     int
	TrustProxy     bool
}

type Handlers struct {
	Shift      ShiftHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Leave      LeaveHandler
	Review     ReviewHandler
}

// NewRouter builds the API router. ctx bounds background work such as the
// rate limiter's cleanup loop.
func NewRouter(ctx context.Context, opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "medusa"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	if opts.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	punchLimit := middleware.RateLimit(ctx, opts.PunchPerSecond, opts.PunchBurst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)

		r.Route("/shifts", func(r chi.Router) {
			r.With(middleware.RequirePermission(user.PermissionShiftView)).Get("/", h.Shift.List)
			r.With(middleware.RequirePermission(user.PermissionShiftManage)).Post("/", h.Shift.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionShiftView)).Get("/", h.Shift.Get)
				r.With(middleware.RequirePermission(user.PermissionShiftView)).Get("/monthly-hours", h.Shift.MonthlyHours)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionShiftManage))
					r.Put("/", h.Shift.Update)
					r.Delete("/", h.Shift.Delete)
				})
			})
		})

		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/", h.Employee.GetEmployee)
			r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Put("/shift", h.Employee.AssignShift)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendancePunch))
				r.Use(punchLimit)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
			})
			r.Get("/", h.Attendance.List)
			r.With(middleware.RequireManager).Post("/sweep", h.Attendance.Sweep)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Attendance.Get)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCorrect)).Put("/", h.Attendance.Update)
				r.With(middleware.RequirePermission(user.PermissionAttendanceJustify)).Post("/justification", h.Attendance.Justify)
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/records", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/", h.Payroll.ListPayrollRecords)
				r.With(middleware.RequirePermission(user.PermissionPayrollManage)).Post("/", h.Payroll.CreatePayrollRecord)
				r.With(middleware.RequirePermission(user.PermissionPayrollFinalize)).Post("/finalize", h.Payroll.FinalizePayroll)
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/{id}", h.Payroll.GetPayrollRecord)
				r.With(middleware.RequirePermission(user.PermissionPayrollManage)).Delete("/{id}", h.Payroll.DeletePayrollRecord)
			})
			r.Get("/payslips/{employeeId}", h.Payroll.GetPayslip)
			r.With(middleware.RequirePermission(user.PermissionPayrollManage)).Post("/payslips/run", h.Payroll.RunPayslips)
			r.Post("/tax-preview", h.Payroll.PreviewTax)
			r.Post("/benefits", h.Payroll.CalculateBenefits)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.Create)
			r.Get("/", h.Leave.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Leave.Get)
				r.Post("/cancel", h.Leave.Cancel)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/approve", h.Leave.Approve)
					r.Post("/reject", h.Leave.Reject)
					r.Post("/taken", h.Leave.MarkTaken)
				})
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(middleware.RequirePermission(user.PermissionReviewManage)).Post("/", h.Review.Create)
			r.Get("/", h.Review.List)
			r.Get("/{id}", h.Review.Get)
			r.With(middleware.RequirePermission(user.PermissionReviewManage)).Post("/{id}/finalize", h.Review.Finalize)
		})
	})
	return r
}
