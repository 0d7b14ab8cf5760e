package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kerjapedia/hrms-backend-go/internal/config"
	appHTTP "github.com/kerjapedia/hrms-backend-go/internal/handler/http"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/jwt"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/oauth"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/storage"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjapedia/hrms-backend-go/internal/service/attendance"
	authService "github.com/kerjapedia/hrms-backend-go/internal/service/auth"
	datachangeService "github.com/kerjapedia/hrms-backend-go/internal/service/datachange"
	employeeService "github.com/kerjapedia/hrms-backend-go/internal/service/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/service/file"
	leaveService "github.com/kerjapedia/hrms-backend-go/internal/service/leave"
	payrollService "github.com/kerjapedia/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/kerjapedia/hrms-backend-go/internal/service/performance"
	userService "github.com/kerjapedia/hrms-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dataChangeRepo := postgresql.NewDataChangeRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}
	fileService := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, refreshTokenRepo, jwtService, googleService)
	userSvc := userService.NewUserService(db, userRepo, refreshTokenRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, fileService)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, fileService)
	payrollSvc := payrollService.NewPayrollService(db, payslipRepo, employeeRepo)
	performanceSvc := performanceService.NewReviewService(db, reviewRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	dataChangeSvc := datachangeService.NewDataChangeService(db, dataChangeRepo, employeeRepo)

	handlers := appHTTP.RouterHandlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		User:        appHTTP.NewUserHandler(userSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		DataChange:  appHTTP.NewDataChangeHandler(dataChangeSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.Storage.BasePath)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
