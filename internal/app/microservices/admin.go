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
	"github.com/Dastan7k/gig-track-system/internal/service/admin"
	"github.com/Dastan7k/gig-track-system/internal/service/auth"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	"github.com/Dastan7k/gig-track-system/pkg/postgres"
	"github.com/Dastan7k/gig-track-system/pkg/rabbit"
	"github.com/Dastan7k/gig-track-system/pkg/trm"
)

type AdminService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API
	consumer   *rabbitadapter.ActivityConsumer
	adminSvc   *admin.AdminService

	cfg config.Config
	log logger.Logger
}

func NewAdmin(ctx context.Context, cfg config.Config, log logger.Logger) (*AdminService, error) {
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
	userRepo := repo.NewUserRepo(postgresDB.Pool)
	refreshRepo := repo.NewRefreshTokenRepo(postgresDB.Pool)

	txManager := trm.New(postgresDB.Pool)

	// services
	adminSvc := admin.NewAdminService(riderRepo, activityRepo, log)
	tokenSvc := auth.NewTokenService(cfg.Auth.JWTSecret, userRepo, refreshRepo, txManager, cfg.Auth.RefreshTokenTTL, cfg.Auth.AccessTokenTTL, log)
	authSvc := auth.NewAuthService(userRepo, tokenSvc, log)

	consumer := rabbitadapter.NewActivityConsumer(rabbitMQ, "admin", log)

	httpServer, err := server.New(cfg, nil, adminSvc, authSvc, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &AdminService{
		postgresDB: postgresDB,
		rabbitMQ:   rabbitMQ,
		httpServer: httpServer,
		consumer:   consumer,
		adminSvc:   adminSvc,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *AdminService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)

	// Keep the fleet gauges in sync with recorded activities.
	go func() {
		if err := s.consumer.ConsumeActivityRecorded(ctx, s.adminSvc.HandleActivityRecorded); err != nil {
			errCh <- err
		}
	}()

	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "admin service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "admin service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *AdminService) close(ctx context.Context) {
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
