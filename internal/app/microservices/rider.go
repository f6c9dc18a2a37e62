package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dastan7k/gig-track-system/config"
	"github.com/Dastan7k/gig-track-system/internal/adapter/http/server"
	repo "github.com/Dastan7k/gig-track-system/internal/adapter/postgres"
	rabbitadapter "github.com/Dastan7k/gig-track-system/internal/adapter/rabbit"
	"github.com/Dastan7k/gig-track-system/internal/service/rider"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	"github.com/Dastan7k/gig-track-system/pkg/postgres"
	"github.com/Dastan7k/gig-track-system/pkg/rabbit"
	"github.com/Dastan7k/gig-track-system/pkg/trm"
)

type RiderService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

func NewRider(ctx context.Context, cfg config.Config, log logger.Logger) (*RiderService, error) {
	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	rabbitMQ, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
	if err != nil {
		log.Error(ctx, "Failed to setup rabbitmq", err)
		return nil, err
	}

	// repositories
	riderRepo := repo.NewRiderRepo(postgresDB.Pool)
	activityRepo := repo.NewActivityRepo(postgresDB.Pool)
	catalogRepo := repo.NewCatalogRepo(postgresDB.Pool)

	txManager := trm.New(postgresDB.Pool)
	producer := rabbitadapter.NewActivityBroker(rabbitMQ, "rider", log)

	// services
	riderService := rider.NewRiderService(riderRepo, activityRepo, catalogRepo, producer, txManager, log)

	httpServer, err := server.New(cfg, riderService, nil, nil, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &RiderService{
		postgresDB: postgresDB,
		rabbitMQ:   rabbitMQ,
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *RiderService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "rider service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "rider service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *RiderService) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close rabbitmq connection", "error", err.Error())
		}
	}

	if s.postgresDB != nil && s.postgresDB.Pool != nil {
		s.postgresDB.Pool.Close()
	}
}
