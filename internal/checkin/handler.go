package checkin

import (
	"encoding/json"
	"net/http"
	"strconv"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/transport"
	"github.com/frahmantamala/teampulse/internal/user"
	"github.com/frahmantamala/teampulse/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(current *user.User, dto CreateCheckInDTO) (*CheckInView, error)
	Get(current *user.User, id int64) (*CheckInView, error)
	Update(current *user.User, id int64, dto UpdateCheckInDTO) (*CheckInView, error)
	Delete(current *user.User, id int64) error
	MyCheckins(current *user.User, start, end *internal.Date, page, perPage int) ([]*CheckInView, internal.Pagination, error)
	ListAll(filter ListFilter, page, perPage int) ([]*CheckInView, internal.Pagination, error)
	WeeklySummary(filter ListFilter) (*WeeklySummary, []*CheckInView, error)
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

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	current, ok := user.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return current, true
}

func (h *Handler) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var dto CreateCheckInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Submit(current, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Check-in submitted successfully",
		"checkin": view,
	})
}

func (h *Handler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid check-in ID")
		return
	}

	view, err := h.Service.Get(current, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"checkin": view})
}

func (h *Handler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid check-in ID")
		return
	}

	var dto UpdateCheckInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Update(current, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Check-in updated successfully",
		"checkin": view,
	})
}

func (h *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid check-in ID")
		return
	}

	if err := h.Service.Delete(current, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Check-in deleted successfully"})
}

// MyCheckins handles GET /api/checkins/my-checkins for the authenticated
// user, with an optional date range.
func (h *Handler) MyCheckins(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	var start, end *internal.Date
	if v := q.Get("start_date"); v != "" {
		date, err := internal.ParseDate(v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		start = &date
	}
	if v := q.Get("end_date"); v != "" {
		date, err := internal.ParseDate(v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		end = &date
	}

	views, pagination, err := h.Service.MyCheckins(current, start, end, page, perPage)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"checkins":   views,
		"pagination": pagination,
	})
}

// ListAllCheckIns handles GET /api/checkins/all. Admin only, guarded at the
// router.
func (h *Handler) ListAllCheckIns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	var filter ListFilter
	if v := q.Get("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.UserID = &id
		}
	}
	if v := q.Get("team_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.TeamID = &id
		}
	}
	if v := q.Get("project_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ProjectID = &id
		}
	}
	if v := q.Get("start_date"); v != "" {
		date, err := internal.ParseDate(v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		filter.StartDate = &date
	}
	if v := q.Get("end_date"); v != "" {
		date, err := internal.ParseDate(v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		filter.EndDate = &date
	}

	views, pagination, err := h.Service.ListAll(filter, page, perPage)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"checkins":   views,
		"pagination": pagination,
	})
}

// WeeklySummary handles GET /api/checkins/weekly-summary. Admin only,
// optionally narrowed by team_id or project_id.
func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter ListFilter
	if v := q.Get("team_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.TeamID = &id
		}
	}
	if v := q.Get("project_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ProjectID = &id
		}
	}

	summary, views, err := h.Service.WeeklySummary(filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"weekly_summary": summary,
		"checkins":       views,
	})
}
