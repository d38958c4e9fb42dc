package user

import (
	"log/slog"

	internal "github.com/frahmantamala/teampulse/internal"
)

// Repository defines the data access methods for users.
type Repository interface {
	GetByID(id int64) (*User, error)
	List(filter ListFilter, limit, offset int) ([]*User, int64, error)
	Update(u *User) error
	SetActive(id int64, active bool) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

// List returns a page of users plus the pagination envelope.
func (s *Service) List(filter ListFilter, page, perPage int) ([]*User, internal.Pagination, error) {
	page, perPage = internal.NormalizePageParams(page, perPage)

	users, total, err := s.repo.List(filter, perPage, (page-1)*perPage)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.Pagination{}, internal.NewInternalError("Error fetching users", err)
	}

	return users, internal.NewPagination(page, perPage, total), nil
}

// Update applies an admin partial update. Every present field is validated
// before anything is written.
func (s *Service) Update(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}
	if dto.Role != nil {
		u.Role = *dto.Role
	}
	if dto.TeamID != nil {
		u.TeamID = dto.TeamID
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, internal.NewInternalError("Error updating user", err)
	}

	s.logger.Info("user updated", "user_id", id)
	return u, nil
}

// Deactivate soft-deletes: the record stays, is_active goes false.
func (s *Service) Deactivate(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrUserNotFound
	}

	if err := s.repo.SetActive(id, false); err != nil {
		s.logger.Error("failed to deactivate user", "error", err, "user_id", id)
		return internal.NewInternalError("Error deactivating user", err)
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}

func (s *Service) Reactivate(id int64) (*User, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, internal.ErrUserNotFound
	}

	if err := s.repo.SetActive(id, true); err != nil {
		s.logger.Error("failed to reactivate user", "error", err, "user_id", id)
		return nil, internal.NewInternalError("Error reactivating user", err)
	}

	return s.repo.GetByID(id)
}

// UpdateProfile lets a user change their own name fields, nothing else.
func (s *Service) UpdateProfile(id int64, dto UpdateProfileDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", id)
		return nil, internal.NewInternalError("Error updating profile", err)
	}

	return u, nil
}
