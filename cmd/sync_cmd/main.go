package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/freqtracker/internal/config"
	"github.com/2beens/freqtracker/internal/db"
	"github.com/2beens/freqtracker/internal/logging"
	"github.com/2beens/freqtracker/internal/strava"
	"github.com/2beens/freqtracker/internal/telemetry/metrics"
	"github.com/2beens/freqtracker/internal/tracker"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.Int("user", 0, "id of the user to sync, 0 syncs every user with a connected strava account")
	sinceStr := flag.String("since", "", "RFC3339 start of the sync window (default: last 20 days)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      "",
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "freqtracker-sync-cmd",
	})

	var since time.Time
	if *sinceStr != "" {
		since, err = time.Parse(time.RFC3339, *sinceStr)
		if err != nil {
			log.Fatalf("invalid since [%s]: %s", *sinceStr, err)
		}
	}

	stravaClientID := os.Getenv("FT_STRAVA_CLIENT_ID")
	stravaClientSecret := os.Getenv("FT_STRAVA_CLIENT_SECRET")
	if stravaClientID == "" || stravaClientSecret == "" {
		log.Fatalln("strava client id/secret not set. use FT_STRAVA_CLIENT_ID and FT_STRAVA_CLIENT_SECRET")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FT_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	tokenRepo := strava.NewTokenRepo(dbPool)
	client := strava.NewClient(strava.ClientParams{
		ClientID:     stravaClientID,
		ClientSecret: stravaClientSecret,
		RedirectURL:  cfg.StravaRedirectURL,
		BaseURL:      cfg.StravaBaseURL,
		PageSize:     cfg.StravaPageSize,
	})
	service := tracker.NewService(
		tracker.NewRepo(dbPool),
		strava.NewSyncer(client, tokenRepo),
		metrics.NewManager("backend", "freqtracker_sync", prometheus.NewRegistry()),
	)

	userIDs := []int{*userID}
	if *userID <= 0 {
		userIDs, err = tokenRepo.ConnectedUsers(ctx)
		if err != nil {
			log.Fatalf("list connected users: %s", err)
		}
	}
	log.Infof("syncing %d user(s) ...", len(userIDs))

	var syncErr error
	for _, id := range userIDs {
		if ctx.Err() != nil {
			break
		}
		res, err := service.Sync(ctx, tracker.UserContext{UserID: id}, since)
		if errors.Is(err, strava.ErrReauthRequired) {
			log.Warnf("user %d: %s", id, err)
			continue
		}
		if err != nil {
			syncErr = multierr.Append(syncErr, err)
			log.Errorf("user %d: sync failed: %s", id, err)
			continue
		}
		log.Infof("user %d: fetched %d, added %d, skipped %d", id, res.Fetched, res.Added, res.Skipped)
	}

	if syncErr != nil {
		log.Errorf("sync finished with %d error(s)", len(multierr.Errors(syncErr)))
		dbPool.Close()
		os.Exit(1)
	}
	log.Infoln("sync done")
}
