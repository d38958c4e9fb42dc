package analytics

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/teampulse/internal/transport"
	"github.com/frahmantamala/teampulse/pkg/logger"
)

type ServiceAPI interface {
	Overview(days int) (*Overview, DateRange, error)
	Dashboard(days int) (*Overview, *Averages, DateRange, error)
	Teams(days int) ([]*TeamAnalytics, DateRange, error)
	Projects(days int) ([]*ProjectAnalytics, DateRange, error)
	Trends(days int) ([]*TrendPoint, DateRange, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func daysParam(r *http.Request) int {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	return days
}

// DashboardBasic handles GET /api/analytics/dashboard-basic. Any
// authenticated user can see the counts.
func (h *Handler) DashboardBasic(w http.ResponseWriter, r *http.Request) {
	overview, window, err := h.Service.Overview(daysParam(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"overview":   overview,
		"date_range": window,
	})
}

// Dashboard handles GET /api/analytics/dashboard. Admin only.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	overview, averages, window, err := h.Service.Dashboard(daysParam(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"overview":   overview,
		"averages":   averages,
		"date_range": window,
	})
}

// TeamAnalytics handles GET /api/analytics/teams. Admin only.
func (h *Handler) TeamAnalytics(w http.ResponseWriter, r *http.Request) {
	teams, window, err := h.Service.Teams(daysParam(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"teams":      teams,
		"date_range": window,
	})
}

// ProjectAnalytics handles GET /api/analytics/projects. Admin only.
func (h *Handler) ProjectAnalytics(w http.ResponseWriter, r *http.Request) {
	projects, window, err := h.Service.Projects(daysParam(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"projects":   projects,
		"date_range": window,
	})
}

// Trends handles GET /api/analytics/trends. Admin only.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	trends, window, err := h.Service.Trends(daysParam(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"trends":     trends,
		"date_range": window,
	})
}
