package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskplanner/internal/config"
	"taskplanner/internal/httpapi"
	"taskplanner/internal/repository"
	"taskplanner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tagRepo := repository.NewTagRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authSvc := service.NewAuthService(userRepo, categoryRepo, sessionRepo, cfg.SessionTTL)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo, tagRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	querySvc := service.NewQueryService(taskRepo)
	reminderSvc := service.NewReminderService(taskRepo)
	exportSvc := service.NewExportService(taskRepo, categoryRepo)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.CleanupInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		purged, err := sessionRepo.PurgeExpired(jobCtx, time.Now())
		if err != nil {
			slog.Error("session purge", "error", err)
			return
		}
		if purged > 0 {
			slog.Info("purged expired sessions", "count", purged)
		}
	}); err != nil {
		log.Fatalf("schedule session purge: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	api := httpapi.New(authSvc, taskSvc, categorySvc, querySvc, reminderSvc, exportSvc)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(),
	}

	go func() {
		slog.Info("task planner listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	slog.Info("shutdown complete")
}
