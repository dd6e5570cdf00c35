package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mintgate/payprocd/internal/config"
	"github.com/mintgate/payprocd/internal/core/application"
	"github.com/mintgate/payprocd/internal/infrastructure/db"
	"github.com/mintgate/payprocd/internal/infrastructure/fake"
	scheduler "github.com/mintgate/payprocd/internal/infrastructure/scheduler/gocron"
	grpcservice "github.com/mintgate/payprocd/internal/interface/grpc"
	log "github.com/sirupsen/logrus"
)

// nolint:all
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	log.SetLevel(log.Level(cfg.LogLevel))

	log.Infof("starting payprocd %s (%s, %s)...", version, commit, date)

	svcConfig := grpcservice.Config{
		GRPCPort: cfg.GRPCPort,
		HTTPPort: cfg.HTTPPort,
		WithTLS:  cfg.WithTLS,
	}

	dbSvc, err := db.NewService(db.ServiceConfig{
		DbType:   cfg.DbType,
		DbConfig: []any{cfg.Datadir, nil},
	})
	if err != nil {
		log.WithError(err).Fatal("failed to open db")
	}

	backendSvc := fake.NewBackend(fake.Config{
		Unit:          cfg.Unit,
		Mpp:           cfg.Mpp,
		Bolt12:        cfg.Bolt12,
		Amountless:    cfg.Amountless,
		FeePercent:    cfg.FeePercent,
		ReserveFeeMin: cfg.ReserveFeeMin,
	})

	appSvc, err := application.NewService(
		backendSvc, dbSvc, cfg.PayTimeoutDuration(), cfg.SubscribeRetryDelayDuration(),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to init application service")
	}

	schedulerSvc := scheduler.NewScheduler()
	reconciler := application.NewReconciler(
		appSvc, schedulerSvc,
		cfg.ReconcileIntervalDuration(), int(cfg.ReconcileMaxAttempts),
	)
	if err := reconciler.Start(); err != nil {
		log.WithError(err).Fatal("failed to start reconciler")
	}

	svc, err := grpcservice.NewService(svcConfig, appSvc)
	if err != nil {
		log.WithError(err).Fatal("failed to init interface service")
	}

	log.RegisterExitHandler(svc.Stop)

	log.Info("starting service...")
	if err := svc.Start(); err != nil {
		log.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	reconciler.Stop()

	log.Info("shutting down service...")
	log.Exit(0)
}
