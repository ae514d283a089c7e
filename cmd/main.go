package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillswap/skillswap-server/internal/config"
	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/repository/postgres"
	"github.com/skillswap/skillswap-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// The services have no network surface; they are consumed in-process by a
// presentation layer. This binary migrates the schema, seeds demo data and
// verifies the full composition comes up.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	swapRepo := postgres.NewSwapRequestRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	if cfg.Seed.Enabled {
		seed := service.NewSeed(userRepo, cfg.Auth.AdminEmail, logger)
		if err := seed.Run(ctx); err != nil {
			logger.Fatal("failed to seed directory", "error", err)
		}
	}

	identity := service.NewIdentity(userRepo, sessionRepo, cfg.Auth.AdminEmail, cfg.Auth.SharedSecretHash, logger)
	directory := service.NewDirectory(userRepo, cfg.Auth.AdminEmail, logger)
	exchange := service.NewExchange(swapRepo, ratingRepo, userRepo, cfg.Auth.AdminEmail, logger)

	if session, err := identity.CurrentSession(ctx); err == nil {
		logger.Info("restored session", "user_id", session.User.ID, "is_admin", session.IsAdmin)
	}

	members, err := directory.ListAll(ctx)
	if err != nil {
		logger.Fatal("failed to list directory", "error", err)
	}

	overview, err := exchange.GetOverview(ctx)
	if err != nil {
		logger.Fatal("failed to load overview", "error", err)
	}

	logAppVersion()
	logger.Info("skill exchange core ready",
		"members", len(members),
		"pending_requests", overview.PendingCount,
		"average_rating", overview.AverageRating)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
