package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karobarhq/payroll-backend-go/internal/config"
	appHTTP "github.com/karobarhq/payroll-backend-go/internal/handler/http"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
	"github.com/karobarhq/payroll-backend-go/internal/repository/postgresql"
	companyService "github.com/karobarhq/payroll-backend-go/internal/service/company"
	employeeService "github.com/karobarhq/payroll-backend-go/internal/service/employee"
	leaveService "github.com/karobarhq/payroll-backend-go/internal/service/leave"
	payrollService "github.com/karobarhq/payroll-backend-go/internal/service/payroll"
	taxService "github.com/karobarhq/payroll-backend-go/internal/service/tax"
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

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	taxBracketRepo := postgresql.NewTaxBracketRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)
	attendanceReader := postgresql.NewAttendanceReader(db)
	fiscalCalendar := postgresql.NewFiscalCalendar(db)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	payrollCalculator := payrollService.NewCalculator(cfg.Statutory)
	accrualCalculator := leaveService.NewAccrualCalculator()

	companySvc := companyService.NewCompanyService(db, companyRepo, leaveTypeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, cfg.Statutory)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveBalanceRepo, employeeRepo, attendanceReader, fiscalCalendar, accrualCalculator)
	payrollSvc := payrollService.NewRunService(db, payrollRunRepo, employeeRepo, taxBracketRepo, attendanceReader, fiscalCalendar, payrollCalculator)
	taxSvc := taxService.NewBracketService(taxBracketRepo)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	taxBracketHandler := appHTTP.NewTaxBracketHandler(taxSvc)

	router := appHTTP.NewRouter(
		tokenAuth,
		cfg.App.Env,
		companyHandler,
		employeeHandler,
		leaveHandler,
		payrollHandler,
		taxBracketHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
