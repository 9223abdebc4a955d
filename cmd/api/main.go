package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/colegio-admin/staff-backend-go/internal/config"
	appHTTP "github.com/colegio-admin/staff-backend-go/internal/handler/http"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/cron"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/jwt"
	"github.com/colegio-admin/staff-backend-go/internal/repository/postgresql"
	attendanceService "github.com/colegio-admin/staff-backend-go/internal/service/attendance"
	serviceAuth "github.com/colegio-admin/staff-backend-go/internal/service/auth"
	"github.com/colegio-admin/staff-backend-go/internal/service/businessday"
	holidayService "github.com/colegio-admin/staff-backend-go/internal/service/holiday"
	leaveService "github.com/colegio-admin/staff-backend-go/internal/service/leave"
	medicalService "github.com/colegio-admin/staff-backend-go/internal/service/medical"
	scheduleService "github.com/colegio-admin/staff-backend-go/internal/service/schedule"
	userService "github.com/colegio-admin/staff-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	medicalRepo := postgresql.NewMedicalLeaveRepository(db)
	grantRepo := postgresql.NewGrantRepository(db)
	recordRepo := postgresql.NewAttendanceRepository(db)
	appealRepo := postgresql.NewAppealRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calculator := businessday.NewCalculator(holidayRepo)
	resolver := attendanceService.NewStatusResolver(
		scheduleRepo,
		holidayRepo,
		grantRepo,
		medicalRepo,
		cfg.Attendance.MedicalLookbackDays,
	)

	recordSvc := attendanceService.NewRecordService(db, recordRepo, resolver, calculator)
	appealSvc := attendanceService.NewAppealService(appealRepo, recordRepo, recordSvc)
	grantSvc := leaveService.NewGrantService(grantRepo, calculator, recordSvc)
	medicalSvc := medicalService.NewMedicalLeaveService(medicalRepo, recordSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	scheduleSvc := scheduleService.NewWorkScheduleService(db, scheduleRepo)
	userSvc := userService.NewUserService(userRepo)
	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(recordSvc)
	appealHandler := appHTTP.NewAppealHandler(appealSvc)
	leaveHandler := appHTTP.NewLeaveHandler(grantSvc)
	medicalHandler := appHTTP.NewMedicalHandler(medicalSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		attendanceHandler,
		appealHandler,
		leaveHandler,
		medicalHandler,
		holidayHandler,
		scheduleHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(recordSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	_ = server.Close()
}
