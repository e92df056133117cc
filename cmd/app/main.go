package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haneul-dev/raidledger/internal/config"
	"github.com/haneul-dev/raidledger/internal/database"
	"github.com/haneul-dev/raidledger/internal/database/postgres"
	"github.com/haneul-dev/raidledger/internal/distribution"
	"github.com/haneul-dev/raidledger/internal/gear"
	"github.com/haneul-dev/raidledger/internal/item"
	"github.com/haneul-dev/raidledger/internal/job"
	"github.com/haneul-dev/raidledger/internal/loot"
	"github.com/haneul-dev/raidledger/internal/party"
	"github.com/haneul-dev/raidledger/internal/priority"
	"github.com/haneul-dev/raidledger/internal/schedule"
	"github.com/haneul-dev/raidledger/internal/server"
	"github.com/haneul-dev/raidledger/internal/stats"
	"github.com/haneul-dev/raidledger/internal/user"
)

const shutdownTimeout = 10 * time.Second

// @title RaidLedger API
// @version 1.0
// @description Loot distribution tracker for raid parties
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	ctx := context.Background()

	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	playerRepo := postgres.NewPlayerRepository(pool)
	gearRepo := postgres.NewGearRepository(pool)
	lootRepo := postgres.NewLootRepository(pool)
	priorityRepo := postgres.NewPriorityRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	gearService := gear.NewService(playerRepo, itemRepo, gearRepo)

	svcs := server.Services{
		User:     user.NewService(userRepo),
		Job:      job.NewService(jobRepo),
		Item:     item.NewService(itemRepo),
		Party:    party.NewService(partyRepo, playerRepo, userRepo, jobRepo),
		Gear:     gearService,
		Loot:     loot.NewService(lootRepo),
		Priority: priority.NewService(priorityRepo, playerRepo, itemRepo, partyRepo),
		Schedule: schedule.NewService(scheduleRepo, partyRepo),
		Stats:    stats.NewService(statsRepo),
		Distribution: distribution.NewService(
			partyRepo, itemRepo, playerRepo, lootRepo, priorityRepo, gearService),
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, svcs)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		log.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
