package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/config"
	appHTTP "github.com/shiftboard/shiftboard-backend-go/internal/handler/http"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/cron"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/nas"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/storage"
	"github.com/shiftboard/shiftboard-backend-go/internal/repository/postgresql"
	accessService "github.com/shiftboard/shiftboard-backend-go/internal/service/access"
	authService "github.com/shiftboard/shiftboard-backend-go/internal/service/auth"
	employeeService "github.com/shiftboard/shiftboard-backend-go/internal/service/employee"
	exportService "github.com/shiftboard/shiftboard-backend-go/internal/service/export"
	holidayService "github.com/shiftboard/shiftboard-backend-go/internal/service/holiday"
	leaveService "github.com/shiftboard/shiftboard-backend-go/internal/service/leave"
	masterService "github.com/shiftboard/shiftboard-backend-go/internal/service/master"
	scheduleService "github.com/shiftboard/shiftboard-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	sectorRepo := postgresql.NewSectorRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	orderOverrideRepo := postgresql.NewOrderOverrideRepository(db)
	leaderOverrideRepo := postgresql.NewLeaderOverrideRepository(db)
	editSessionRepo := postgresql.NewEditSessionRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	accessRepo := postgresql.NewAccessRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, sectorRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, sectorRepo, shiftRepo)
	scheduleSvc := scheduleService.NewScheduleService(
		db,
		employeeRepo,
		sectorRepo,
		assignmentRepo,
		orderOverrideRepo,
		leaderOverrideRepo,
		editSessionRepo,
		leaveRequestRepo,
		cfg.Roster.GenericShifts,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveTypeRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	accessSvc := accessService.NewAccessService(accessRepo, departmentRepo)
	exportSvc := exportService.NewExportService(
		departmentRepo,
		sectorRepo,
		employeeRepo,
		shiftRepo,
		assignmentRepo,
		orderOverrideRepo,
		leaderOverrideRepo,
		leaveRequestRepo,
		leaveTypeRepo,
		holidayRepo,
		cfg.Roster.GenericShifts,
	)

	archiveStorage, err := storage.NewLocalStorage(cfg.Archive.ExportRoot)
	if err != nil {
		log.Fatal("Failed to initialize archive storage:", err)
	}
	nasClient := nas.NewClient(cfg.Archive.NASUploadURL, cfg.Archive.NASBaseDir)

	scheduler := cron.NewScheduler()
	archiveJobs := cron.NewArchiveJobs(exportSvc, editSessionRepo, archiveStorage, nasClient)
	archiveJobs.RegisterJobs(scheduler, cfg.Archive.SweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		appHTTP.NewAuthHandler(authSvc, JWTService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewAccessHandler(accessSvc),
		appHTTP.NewExportHandler(exportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
