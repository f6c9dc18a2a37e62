package handler

import (
	"context"
	"net/http"

	"github.com/Dastan7k/gig-track-system/internal/adapter/http/handler/dto"
	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/Dastan7k/gig-track-system/pkg/validator"
)

type RiderService interface {
	CreateProfile(ctx context.Context, profile *models.RiderProfile, areaNames, platformNames []string) (*models.RiderProfile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.RiderProfile, error)
	SubmitActivity(ctx context.Context, a *models.Activity) error
	WeeklyStats(ctx context.Context, riderID uuid.UUID) (models.WeeklyStats, error)
	Dashboard(ctx context.Context, riderID uuid.UUID) (*models.Dashboard, error)
	ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error)
	ListPlatforms(ctx context.Context) ([]models.DeliveryPlatform, error)
}

type Rider struct {
	s RiderService
	l logger.Logger
}

func NewRider(s RiderService, l logger.Logger) *Rider {
	return &Rider{
		s: s,
		l: l,
	}
}

// CreateProfile godoc
// @Summary      Register rider
// @Description  Creates a rider profile and links service areas and delivery platforms
// @Tags         Riders
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateRiderProfileRequest  true  "New rider"
// @Success      201  {object}  map[string]any
// @Router       /riders [post]
func (h *Rider) CreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_rider_profile")

	req := &dto.CreateRiderProfileRequest{}
	if err := readJSON(w, r, req); err != nil {
		h.l.Error(ctx, "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateNewRiderProfile(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	profile, err := h.s.CreateProfile(ctx, req.ToModel(), req.ServiceAreas, req.DeliveryPlatforms)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create rider profile", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"rider": profile}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// GetProfile godoc
// @Summary      Rider profile
// @Tags         Riders
// @Produce      json
// @Param        rider_id  path  string  true  "Rider ID"
// @Success      200  {object}  map[string]any
// @Router       /riders/{rider_id} [get]
func (h *Rider) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_rider_profile")

	id, err := readIDParam(r, "rider_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithRiderID(ctx, id.String())

	profile, err := h.s.GetProfile(ctx, id)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get rider profile", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"rider": profile}, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// SubmitActivity godoc
// @Summary      Submit daily activity
// @Description  Records one day's earnings, hours and satisfaction for a rider
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        rider_id  path  string                     true  "Rider ID"
// @Param        request   body  dto.SubmitActivityRequest  true  "Daily activity"
// @Success      201  {object}  map[string]any
// @Router       /riders/{rider_id}/activities [post]
func (h *Rider) SubmitActivity(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "submit_activity")

	id, err := readIDParam(r, "rider_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithRiderID(ctx, id.String())

	req := &dto.SubmitActivityRequest{}
	if err := readJSON(w, r, req); err != nil {
		h.l.Error(ctx, "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateSubmitActivity(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	activity := req.ToModel(id)
	if err := h.s.SubmitActivity(ctx, activity); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to submit activity", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"activity": activity}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// WeeklyStats godoc
// @Summary      Current-week statistics
// @Tags         Activities
// @Produce      json
// @Param        rider_id  path  string  true  "Rider ID"
// @Success      200  {object}  map[string]any
// @Router       /riders/{rider_id}/stats/weekly [get]
func (h *Rider) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "weekly_stats")

	id, err := readIDParam(r, "rider_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithRiderID(ctx, id.String())

	weekly, err := h.s.WeeklyStats(ctx, id)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to compute weekly stats", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"weekly": weekly}, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Dashboard godoc
// @Summary      Weekly earnings dashboard
// @Description  Profile, weekly stats, goal progress and top platform in one response
// @Tags         Activities
// @Produce      json
// @Param        rider_id  path  string  true  "Rider ID"
// @Success      200  {object}  map[string]any
// @Router       /riders/{rider_id}/dashboard [get]
func (h *Rider) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "rider_dashboard")

	id, err := readIDParam(r, "rider_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithRiderID(ctx, id.String())

	dash, err := h.s.Dashboard(ctx, id)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build dashboard", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"dashboard": dash}, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// ListServiceAreas godoc
// @Summary      Available service areas
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /catalog/areas [get]
func (h *Rider) ListServiceAreas(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_service_areas")

	areas, err := h.s.ListServiceAreas(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list service areas", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"service_areas": areas}, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// ListPlatforms godoc
// @Summary      Available delivery platforms
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /catalog/platforms [get]
func (h *Rider) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_platforms")

	platforms, err := h.s.ListPlatforms(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list platforms", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"delivery_platforms": platforms}, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
