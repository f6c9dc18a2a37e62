package handler

import (
	"context"
	"net/http"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/Dastan7k/gig-track-system/pkg/validator"
)

type AdminService interface {
	ListRiders(ctx context.Context, filters models.Filters) ([]models.RiderSummary, models.Metadata, error)
	RiderStats(ctx context.Context, riderID uuid.UUID) (*models.RiderSummary, error)
	FleetStats(ctx context.Context) (models.FleetStats, error)
}

type Admin struct {
	s AdminService
	l logger.Logger
}

func NewAdmin(s AdminService, l logger.Logger) *Admin {
	return &Admin{
		s: s,
		l: l,
	}
}

var ridersSortSafeList = []string{"created_at", "name", "weekly_goal", "-created_at", "-name", "-weekly_goal"}

// ListRiders godoc
// @Summary      Fleet riders with statistics
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Param        sort       query  string  false  "Sort key"
// @Success      200  {object}  map[string]any
// @Router       /admin/riders [get]
func (h *Admin) ListRiders(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_list_riders")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	pageSize := readInt(qs, "page_size", 20, v)
	sort := readString(qs, "sort", "-created_at")

	filters, err := models.NewFilters(page, pageSize, sort, ridersSortSafeList)
	if err != nil {
		internalErrorResponse(w, "internal error")
		return
	}

	filters.Validate(v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	summaries, metadata, err := h.s.ListRiders(ctx, filters)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list riders", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	h.l.Debug(ctx, "fetched riders", "total", metadata.TotalRecords)

	response := envelope{
		"riders":   summaries,
		"metadata": metadata,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// RiderStats godoc
// @Summary      Single rider statistics
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        rider_id  path  string  true  "Rider ID"
// @Success      200  {object}  map[string]any
// @Router       /admin/riders/{rider_id} [get]
func (h *Admin) RiderStats(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_rider_stats")

	id, err := readIDParam(r, "rider_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	summary, err := h.s.RiderStats(ctx, id)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get rider stats", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"rider": summary}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Overview godoc
// @Summary      Fleet overview
// @Description  Rider counts, active riders and weekly earnings across the fleet
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /admin/overview [get]
func (h *Admin) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_overview")

	fleet, err := h.s.FleetStats(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get fleet overview", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	h.l.Debug(ctx, "fetched overview", "total_riders", fleet.TotalRiders, "active_riders", fleet.ActiveRiders)

	if err := writeJSON(w, http.StatusOK, envelope{"fleet": fleet}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
