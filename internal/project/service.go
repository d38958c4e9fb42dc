package project

import (
	"log/slog"
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/user"
)

// Repository defines the data access methods for projects and assignments.
type Repository interface {
	GetByID(id int64) (*Project, error)
	List(filter ListFilter, limit, offset int) ([]*Project, int64, error)
	Create(p *Project) error
	Update(p *Project) error
	// Delete removes the project and cascades its assignments and check-ins.
	Delete(id int64) error

	TeamName(teamID int64) (string, error)
	TeamExists(teamID int64) (bool, error)
	UserExists(userID int64) (bool, error)

	AssignedUsers(projectID int64) ([]*user.User, error)
	AssignedCount(projectID int64) (int64, error)
	IsAssigned(projectID, userID int64) (bool, error)
	AddAssignment(a *ProjectAssignment) error
	RemoveAssignment(projectID, userID int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of project views. Non-admin callers only see projects
// they are assigned to; the handler sets filter.AssignedUserID accordingly.
func (s *Service) List(filter ListFilter, page, perPage int) ([]*ProjectView, internal.Pagination, error) {
	page, perPage = internal.NormalizePageParams(page, perPage)

	projects, total, err := s.repo.List(filter, perPage, (page-1)*perPage)
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, internal.Pagination{}, internal.NewInternalError("Error fetching projects", err)
	}

	views := make([]*ProjectView, 0, len(projects))
	for _, p := range projects {
		view, err := s.buildView(p)
		if err != nil {
			return nil, internal.Pagination{}, err
		}
		views = append(views, view)
	}

	return views, internal.NewPagination(page, perPage, total), nil
}

// Get returns a project with its assigned users.
func (s *Service) Get(id int64) (*ProjectView, []*user.User, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, internal.ErrProjectNotFound
	}

	view, err := s.buildView(p)
	if err != nil {
		return nil, nil, err
	}

	assigned, err := s.repo.AssignedUsers(id)
	if err != nil {
		s.logger.Error("failed to load assigned users", "error", err, "project_id", id)
		return nil, nil, internal.NewInternalError("Error fetching project", err)
	}

	return view, assigned, nil
}

func (s *Service) Create(dto CreateProjectDTO) (*ProjectView, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.TeamExists(dto.TeamID)
	if err != nil {
		return nil, internal.NewInternalError("Error creating project", err)
	}
	if !exists {
		return nil, internal.ErrTeamNotFound
	}

	status := dto.Status
	if status == "" {
		status = StatusActive
	}
	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	p := &Project{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      status,
		Priority:    priority,
		StartDate:   dto.StartDate,
		DueDate:     dto.DueDate,
		TeamID:      dto.TeamID,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create project", "error", err, "title", dto.Title)
		return nil, internal.NewInternalError("Error creating project", err)
	}

	s.logger.Info("project created", "project_id", p.ID, "team_id", p.TeamID)
	return s.buildView(p)
}

func (s *Service) Update(id int64, dto UpdateProjectDTO) (*ProjectView, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrProjectNotFound
	}

	if dto.TeamID != nil {
		exists, err := s.repo.TeamExists(*dto.TeamID)
		if err != nil {
			return nil, internal.NewInternalError("Error updating project", err)
		}
		if !exists {
			return nil, internal.ErrTeamNotFound
		}
		p.TeamID = *dto.TeamID
	}

	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	if dto.Priority != nil {
		p.Priority = *dto.Priority
	}
	if dto.StartDate != nil {
		p.StartDate = dto.StartDate
	}
	if dto.DueDate != nil {
		p.DueDate = dto.DueDate
	}

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update project", "error", err, "project_id", id)
		return nil, internal.NewInternalError("Error updating project", err)
	}

	return s.buildView(p)
}

// Delete hard-deletes a project; assignments and dependent check-ins go with it.
func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrProjectNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete project", "error", err, "project_id", id)
		return internal.NewInternalError("Error deleting project", err)
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

func (s *Service) Assign(projectID, userID int64) error {
	if _, err := s.repo.GetByID(projectID); err != nil {
		return internal.ErrProjectNotFound
	}

	exists, err := s.repo.UserExists(userID)
	if err != nil {
		return internal.NewInternalError("Error assigning user to project", err)
	}
	if !exists {
		return internal.ErrUserNotFound
	}

	assigned, err := s.repo.IsAssigned(projectID, userID)
	if err != nil {
		return internal.NewInternalError("Error assigning user to project", err)
	}
	if assigned {
		return internal.NewValidationError("User is already assigned to this project", internal.ErrCodeAlreadyAssigned)
	}

	a := &ProjectAssignment{
		ProjectID:  projectID,
		UserID:     userID,
		AssignedAt: time.Now(),
	}
	if err := s.repo.AddAssignment(a); err != nil {
		s.logger.Error("failed to add assignment", "error", err, "project_id", projectID, "user_id", userID)
		return internal.NewInternalError("Error assigning user to project", err)
	}

	s.logger.Info("user assigned to project", "project_id", projectID, "user_id", userID)
	return nil
}

func (s *Service) Unassign(projectID, userID int64) error {
	if _, err := s.repo.GetByID(projectID); err != nil {
		return internal.ErrProjectNotFound
	}

	exists, err := s.repo.UserExists(userID)
	if err != nil {
		return internal.NewInternalError("Error unassigning user from project", err)
	}
	if !exists {
		return internal.ErrUserNotFound
	}

	assigned, err := s.repo.IsAssigned(projectID, userID)
	if err != nil {
		return internal.NewInternalError("Error unassigning user from project", err)
	}
	if !assigned {
		return internal.NewValidationError("User is not assigned to this project", internal.ErrCodeNotAssigned)
	}

	if err := s.repo.RemoveAssignment(projectID, userID); err != nil {
		s.logger.Error("failed to remove assignment", "error", err, "project_id", projectID, "user_id", userID)
		return internal.NewInternalError("Error unassigning user from project", err)
	}

	s.logger.Info("user unassigned from project", "project_id", projectID, "user_id", userID)
	return nil
}

// AssignedUsers returns the project plus the users assigned to it.
func (s *Service) AssignedUsers(projectID int64) (*ProjectView, []*user.User, error) {
	p, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, nil, internal.ErrProjectNotFound
	}

	view, err := s.buildView(p)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.repo.AssignedUsers(projectID)
	if err != nil {
		return nil, nil, internal.NewInternalError("Error fetching project users", err)
	}

	return view, users, nil
}

func (s *Service) buildView(p *Project) (*ProjectView, error) {
	teamName, err := s.repo.TeamName(p.TeamID)
	if err != nil {
		s.logger.Error("failed to resolve team name", "error", err, "team_id", p.TeamID)
		return nil, internal.NewInternalError("Error fetching project", err)
	}

	count, err := s.repo.AssignedCount(p.ID)
	if err != nil {
		return nil, internal.NewInternalError("Error fetching project", err)
	}

	return NewProjectView(p, teamName, count), nil
}
