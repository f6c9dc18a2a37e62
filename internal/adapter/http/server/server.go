package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dastan7k/gig-track-system/config"
	"github.com/Dastan7k/gig-track-system/internal/adapter/http/handler"
	"github.com/Dastan7k/gig-track-system/internal/adapter/http/middleware"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health *handler.Health
	rider  *handler.Rider
	admin  *handler.Admin
	auth   *handler.Auth
}

func New(
	cfg config.Config,
	riderService handler.RiderService,
	adminService handler.AdminService,
	authService handler.AuthService,
	log logger.Logger,
) (*API, error) {
	var addr string
	routes := &handlers{
		health: handler.NewHealth(cfg.Mode.String(), log),
	}

	switch cfg.Mode {
	case types.RiderService:
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.RiderService)
		routes.rider = handler.NewRider(riderService, log)
	case types.AdminService:
		if authService == nil {
			return nil, errors.New("auth service is required in admin mode")
		}
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.AdminService)
		routes.admin = handler.NewAdmin(adminService, log)
		routes.auth = handler.NewAuth(authService, log)
	default:
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	mid := middleware.NewMiddleware(authService, log)

	api := &API{
		mode: cfg.Mode,

		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   addr,
		cfg:    cfg,
		log:    log,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	api.setupRoutes()

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies the shared middleware chain to the mux.
func (a *API) withMiddleware() http.Handler {
	chain := a.m.Metrics(a.mode.String())(a.m.Logging(a.mux))
	if a.mode == types.AdminService {
		chain = a.m.Auth(chain)
	}
	return a.m.Recover(a.m.RequestID(chain))
}
