package main

import (
	"fmt"
	"net/http"

	"github.com/sitepay/sitepay-backend-go/internal/config"
	appHTTP "github.com/sitepay/sitepay-backend-go/internal/handler/http"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay/sitepay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sitepay/sitepay-backend-go/internal/service/attendance"
	dashboardService "github.com/sitepay/sitepay-backend-go/internal/service/dashboard"
	employeeService "github.com/sitepay/sitepay-backend-go/internal/service/employee"
	paymentService "github.com/sitepay/sitepay-backend-go/internal/service/payment"
	payrollService "github.com/sitepay/sitepay-backend-go/internal/service/payroll"
	reportService "github.com/sitepay/sitepay-backend-go/internal/service/report"
	siteService "github.com/sitepay/sitepay-backend-go/internal/service/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, paymentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, siteRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, employeeRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, paymentRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		employeeHandler,
		attendanceHandler,
		paymentHandler,
		siteHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
