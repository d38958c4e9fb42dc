package team

import (
	"log/slog"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/user"
)

// Repository defines the data access methods for teams.
type Repository interface {
	GetByID(id int64) (*Team, error)
	// GetByName returns (nil, nil) when no team has that name.
	GetByName(name string) (*Team, error)
	ListWithCounts() ([]*TeamView, error)
	Members(teamID int64) ([]*user.User, error)
	MemberCount(teamID int64) (int64, error)
	ProjectCount(teamID int64) (int64, error)
	Create(t *Team) error
	Update(t *Team) error
	Delete(id int64) error
	SetUserTeam(userID int64, teamID *int64) error
	GetUser(userID int64) (*user.User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*TeamView, error) {
	teams, err := s.repo.ListWithCounts()
	if err != nil {
		s.logger.Error("failed to list teams", "error", err)
		return nil, internal.NewInternalError("Error fetching teams", err)
	}
	return teams, nil
}

// Get returns the team with its members.
func (s *Service) Get(id int64) (*TeamView, []*user.User, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, internal.ErrTeamNotFound
	}

	members, err := s.repo.Members(id)
	if err != nil {
		s.logger.Error("failed to load team members", "error", err, "team_id", id)
		return nil, nil, internal.NewInternalError("Error fetching team", err)
	}

	projectCount, err := s.repo.ProjectCount(id)
	if err != nil {
		return nil, nil, internal.NewInternalError("Error fetching team", err)
	}

	view := &TeamView{
		Team:         *t,
		MemberCount:  int64(len(members)),
		ProjectCount: projectCount,
	}
	return view, members, nil
}

func (s *Service) Create(dto CreateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to look up team by name", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("Error creating team", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("Team with this name already exists", internal.ErrCodeDuplicateTeam)
	}

	t := &Team{
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create team", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("Error creating team", err)
	}

	s.logger.Info("team created", "team_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) Update(id int64, dto UpdateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrTeamNotFound
	}

	if dto.Name != nil {
		existing, err := s.repo.GetByName(*dto.Name)
		if err != nil {
			s.logger.Error("failed to look up team by name", "error", err, "name", *dto.Name)
			return nil, internal.NewInternalError("Error updating team", err)
		}
		if existing != nil && existing.ID != id {
			return nil, internal.NewConflictError("Team with this name already exists", internal.ErrCodeDuplicateTeam)
		}
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}

	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to update team", "error", err, "team_id", id)
		return nil, internal.NewInternalError("Error updating team", err)
	}

	return t, nil
}

// Delete removes an empty team. Teams that still own members or projects
// block deletion.
func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrTeamNotFound
	}

	memberCount, err := s.repo.MemberCount(id)
	if err != nil {
		return internal.NewInternalError("Error deleting team", err)
	}
	if memberCount > 0 {
		return internal.NewValidationError("Cannot delete team with members. Remove all members first.", internal.ErrCodeTeamNotEmpty)
	}

	projectCount, err := s.repo.ProjectCount(id)
	if err != nil {
		return internal.NewInternalError("Error deleting team", err)
	}
	if projectCount > 0 {
		return internal.NewValidationError("Cannot delete team with projects. Remove all projects first.", internal.ErrCodeTeamNotEmpty)
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete team", "error", err, "team_id", id)
		return internal.NewInternalError("Error deleting team", err)
	}

	s.logger.Info("team deleted", "team_id", id)
	return nil
}

func (s *Service) AddMember(teamID, userID int64) (*user.User, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, internal.ErrTeamNotFound
	}

	u, err := s.repo.GetUser(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if u.TeamID != nil && *u.TeamID == teamID {
		return nil, internal.NewValidationError("User is already a member of this team", internal.ErrCodeAlreadyMember)
	}

	if err := s.repo.SetUserTeam(userID, &teamID); err != nil {
		s.logger.Error("failed to add team member", "error", err, "team_id", teamID, "user_id", userID)
		return nil, internal.NewInternalError("Error adding user to team", err)
	}

	u.TeamID = &teamID
	s.logger.Info("team member added", "team_id", teamID, "user_id", userID)
	return u, nil
}

func (s *Service) RemoveMember(teamID, userID int64) (*user.User, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, internal.ErrTeamNotFound
	}

	u, err := s.repo.GetUser(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if u.TeamID == nil || *u.TeamID != teamID {
		return nil, internal.NewValidationError("User is not a member of this team", internal.ErrCodeNotMember)
	}

	if err := s.repo.SetUserTeam(userID, nil); err != nil {
		s.logger.Error("failed to remove team member", "error", err, "team_id", teamID, "user_id", userID)
		return nil, internal.NewInternalError("Error removing user from team", err)
	}

	u.TeamID = nil
	s.logger.Info("team member removed", "team_id", teamID, "user_id", userID)
	return u, nil
}
