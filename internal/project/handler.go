package project

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
	List(filter ListFilter, page, perPage int) ([]*ProjectView, internal.Pagination, error)
	Get(id int64) (*ProjectView, []*user.User, error)
	Create(dto CreateProjectDTO) (*ProjectView, error)
	Update(id int64, dto UpdateProjectDTO) (*ProjectView, error)
	Delete(id int64) error
	Assign(projectID, userID int64) error
	Unassign(projectID, userID int64) error
	AssignedUsers(projectID int64) (*ProjectView, []*user.User, error)
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

// ListProjects handles GET /api/projects. Employees only see projects they
// are assigned to.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	current, ok := user.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	var filter ListFilter
	if v := q.Get("team_id"); v != "" {
		if teamID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.TeamID = &teamID
		}
	}
	filter.Status = q.Get("status")
	filter.Priority = q.Get("priority")

	if !current.IsAdmin() {
		filter.AssignedUserID = &current.ID
	}

	projects, pagination, err := h.Service.List(filter, page, perPage)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"projects":   projects,
		"pagination": pagination,
	})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	view, assigned, err := h.Service.Get(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"project":        view,
		"assigned_users": assigned,
	})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Project created successfully",
		"project": view,
	})
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var dto UpdateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Project updated successfully",
		"project": view,
	})
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (h *Handler) AssignUser(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.Service.Assign(projectID, userID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	view, assigned, err := h.Service.AssignedUsers(projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "User assigned to project successfully",
		"project":        view,
		"assigned_users": assigned,
	})
}

func (h *Handler) UnassignUser(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.Service.Unassign(projectID, userID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	view, assigned, err := h.Service.AssignedUsers(projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "User unassigned from project successfully",
		"project":        view,
		"assigned_users": assigned,
	})
}

func (h *Handler) GetAssignedUsers(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	view, assigned, err := h.Service.AssignedUsers(projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"project":        view,
		"assigned_users": assigned,
	})
}
