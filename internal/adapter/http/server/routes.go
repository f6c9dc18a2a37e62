package server

import (
	"context"

	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("/health", a.routes.health.HealthCheck)

	a.setupSwaggerRoutes()
	a.setupMetricsRoute()

	switch a.mode {
	case types.RiderService:
		a.setupRiderRoutes()
	case types.AdminService:
		a.setupAdminRoutes()
	}
}

// setupRiderRoutes setups public rider-facing routes
func (a *API) setupRiderRoutes() {
	a.mux.HandleFunc("POST /riders", a.routes.rider.CreateProfile)                             // Register a rider
	a.mux.HandleFunc("GET /riders/{rider_id}", a.routes.rider.GetProfile)                      // Rider profile
	a.mux.HandleFunc("POST /riders/{rider_id}/activities", a.routes.rider.SubmitActivity)     // Record a day's activity
	a.mux.HandleFunc("GET /riders/{rider_id}/stats/weekly", a.routes.rider.WeeklyStats)       // Current-week stats
	a.mux.HandleFunc("GET /riders/{rider_id}/dashboard", a.routes.rider.Dashboard)            // Weekly dashboard
	a.mux.HandleFunc("GET /catalog/areas", a.routes.rider.ListServiceAreas)                   // Available service areas
	a.mux.HandleFunc("GET /catalog/platforms", a.routes.rider.ListPlatforms)                  // Available delivery platforms
}

// setupAdminRoutes setups routes for the ops panel
func (a *API) setupAdminRoutes() {
	a.mux.HandleFunc("POST /auth/register", a.routes.auth.Register)
	a.mux.HandleFunc("POST /auth/login", a.routes.auth.Login)
	a.mux.HandleFunc("POST /auth/refresh", a.routes.auth.Refresh)
	a.mux.Handle("GET /auth/me", a.m.RequireRoles(a.routes.auth.Profile))

	a.mux.Handle("GET /admin/riders", a.m.RequireRoles(a.routes.admin.ListRiders, types.RoleAdmin, types.RoleOperator))             // Riders with statistics
	a.mux.Handle("GET /admin/riders/{rider_id}", a.m.RequireRoles(a.routes.admin.RiderStats, types.RoleAdmin, types.RoleOperator)) // Single rider statistics
	a.mux.Handle("GET /admin/overview", a.m.RequireRoles(a.routes.admin.Overview, types.RoleAdmin, types.RoleOperator))            // Fleet rollup
}

// setupSwaggerRoutes configures Swagger UI endpoints based on service mode
func (a *API) setupSwaggerRoutes() {
	var instanceName string

	switch a.mode {
	case types.RiderService:
		instanceName = "rider"
	case types.AdminService:
		instanceName = "admin"
	default:
		a.log.Warn(wrap.WithAction(context.Background(), "setup_swagger_routes"), "unknown service mode for swagger setup", "mode", a.mode)
		return
	}

	// Swagger UI endpoint
	swaggerURL := httpSwagger.InstanceName(instanceName)
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("/metrics", promhttp.Handler())
}
