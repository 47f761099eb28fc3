package main

import (
	"fmt"
	"net/http"

	"github.com/jhex-consulting/hrms-backend-go/internal/config"
	appHTTP "github.com/jhex-consulting/hrms-backend-go/internal/handler/http"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/jwt"
	"github.com/jhex-consulting/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/jhex-consulting/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/jhex-consulting/hrms-backend-go/internal/service/auth"
	employeeService "github.com/jhex-consulting/hrms-backend-go/internal/service/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/service/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/service/master"
	payrollService "github.com/jhex-consulting/hrms-backend-go/internal/service/payroll"
	reportService "github.com/jhex-consulting/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceSettingsRepo := postgresql.NewAttendanceSettingsRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	salaryDetailRepo := postgresql.NewSalaryDetailRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(
		db,
		employeeRepo,
		roleRepo,
		departmentRepo,
		salaryDetailRepo,
		leaveBalanceRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, attendanceSettingsRepo)
	leaveSvc := leave.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, salaryDetailRepo, attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	masterSvc := master.NewMasterService(departmentRepo, roleRepo, attendanceSettingsRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
