package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/app"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/config"
	httpctrl "github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/controller/http"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/repository"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/repository/memory"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

const reminderInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		slotStore      service.SlotStore
		interviewStore service.InterviewStore
	)

	if cfg.Store == config.StoreMemory {
		logger.Warn("Using in-memory store; data will not survive a restart")
		slotStore = memory.NewSlotStore()
		interviewStore = memory.NewInterviewStore()
	} else {
		pool, err := pgxpool.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal("Failed to create connection pool", zap.Error(err))
		}
		defer pool.Close()

		migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
		if err != nil {
			logger.Fatal("Failed to create migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		migrator.Close()

		slotStore = repository.NewSlotRepository(pool)
		interviewStore = repository.NewInterviewRepository(pool)
	}

	catalog := service.NewSlotCatalog(slotStore, logger)
	coordinator := service.NewBookingCoordinator(slotStore, interviewStore, logger)
	lifecycle := service.NewInterviewLifecycle(interviewStore, coordinator, logger)

	facade := service.NewFacade(
		catalog,
		coordinator,
		lifecycle,
		interviewStore,
		app.UUIDRoomProvisioner{},
		app.UUIDInviteIssuer{},
		&app.LogNotifier{Logger: logger},
		logger,
	)

	reminder := app.NewReminder(facade, reminderInterval, logger)
	reminder.Start(ctx)
	defer reminder.Stop()

	router := httpctrl.NewRouter(facade, cfg.Environment, logger)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
			zap.String("store", cfg.Store),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
