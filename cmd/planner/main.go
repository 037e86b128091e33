// Command planner serves the instructor weekly planner: spreadsheet-backed
// login, per-instructor schedules, and the static front-end assets.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/service"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/infrastructure/config"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/infrastructure/session"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/infrastructure/spreadsheet"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/infrastructure/store"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/loader"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// All three source files must exist up front; a missing file at
	// startup is an operator mistake, not a transient condition.
	for _, name := range []string{loader.InstructorFile, loader.RulesFile, loader.MessagesFile} {
		path := filepath.Join(cfg.DataDir, name)
		if _, err := os.Stat(path); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("source spreadsheet missing")
		}
	}

	ldr := loader.New(spreadsheet.NewExcelReader(), log)
	snapshots := store.NewSnapshotStore()
	reloader := store.NewReloader(snapshots, ldr, cfg.DataDir, cfg.ReloadInterval, cfg.ParseTimeout, log)

	// Initial load is fatal; the periodic path keeps stale data instead.
	if err := reloader.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("initial data load failed")
	}
	go reloader.Run(ctx)

	sessions := session.NewMemoryStore(cfg.SessionTTL)
	authService := service.NewAuthService(snapshots, sessions, cfg.AllowLegacySHA, log)
	scheduleService := service.NewScheduleService(snapshots, log)

	e := api.NewRouter(authService, scheduleService, sessions, cfg.StaticDir, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
