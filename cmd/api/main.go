package main

import (
	"fmt"
	"net/http"

	"github.com/mediserve-hris/attendance-backend-go/internal/config"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	appHTTP "github.com/mediserve-hris/attendance-backend-go/internal/handler/http"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/database"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/dateutil"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/mediserve-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mediserve-hris/attendance-backend-go/internal/service/attendance"
	scheduleService "github.com/mediserve-hris/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	clock, err := dateutil.NewClock(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	dutyScheduleRepo := postgresql.NewDutyScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	manualEntryRepo := postgresql.NewManualEntryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dutyScheduleSvc := scheduleService.NewDutyScheduleService(
		dutyScheduleRepo,
		clock,
		schedule.TieBreakPolicy(cfg.Attendance.ScheduleTieBreak),
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		manualEntryRepo,
		dutyScheduleRepo,
		clock,
	)

	scheduleHandler := appHTTP.NewDutyScheduleHandler(dutyScheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(JWTService, scheduleHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
