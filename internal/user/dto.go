package user

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

// UpdateUserDTO is the admin-facing partial update payload. Pointer fields
// distinguish "absent" from zero values.
type UpdateUserDTO struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	TeamID    *int64  `json:"team_id,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (dto UpdateUserDTO) Validate() error {
	if dto.FirstName != nil && *dto.FirstName == "" {
		return internal.NewValidationError("first_name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.LastName != nil && *dto.LastName == "" {
		return internal.NewValidationError("last_name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Role != nil && !ValidRole(*dto.Role) {
		return internal.NewValidationError("role must be either 'admin' or 'employee'", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateProfileDTO is the self-service variant, names only.
type UpdateProfileDTO struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (dto UpdateProfileDTO) Validate() error {
	if dto.FirstName != nil && *dto.FirstName == "" {
		return internal.NewValidationError("first_name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.LastName != nil && *dto.LastName == "" {
		return internal.NewValidationError("last_name cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}

// ListFilter narrows the admin user listing.
type ListFilter struct {
	TeamID   *int64
	Role     string
	IsActive *bool
}
