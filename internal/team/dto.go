package team

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

type CreateTeamDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (dto CreateTeamDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("Team name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (dto UpdateTeamDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return internal.NewValidationError("Team name cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
