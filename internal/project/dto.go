package project

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

type CreateProjectDTO struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status,omitempty"`
	Priority    string         `json:"priority,omitempty"`
	StartDate   *internal.Date `json:"start_date,omitempty"`
	DueDate     *internal.Date `json:"due_date,omitempty"`
	TeamID      int64          `json:"team_id"`
}

func (dto CreateProjectDTO) Validate() error {
	if dto.Title == "" || dto.TeamID == 0 {
		return internal.NewValidationError("Title and team_id are required", internal.ErrCodeValidationFailed)
	}
	if dto.Status != "" && !ValidStatus(dto.Status) {
		return internal.NewValidationError("status must be one of active, completed, on_hold, cancelled", internal.ErrCodeInvalidStatus)
	}
	if dto.Priority != "" && !ValidPriority(dto.Priority) {
		return internal.NewValidationError("priority must be one of low, medium, high, urgent", internal.ErrCodeInvalidPriority)
	}
	return nil
}

type UpdateProjectDTO struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Priority    *string        `json:"priority,omitempty"`
	StartDate   *internal.Date `json:"start_date,omitempty"`
	DueDate     *internal.Date `json:"due_date,omitempty"`
	TeamID      *int64         `json:"team_id,omitempty"`
}

func (dto UpdateProjectDTO) Validate() error {
	if dto.Title != nil && *dto.Title == "" {
		return internal.NewValidationError("title cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Status != nil && !ValidStatus(*dto.Status) {
		return internal.NewValidationError("status must be one of active, completed, on_hold, cancelled", internal.ErrCodeInvalidStatus)
	}
	if dto.Priority != nil && !ValidPriority(*dto.Priority) {
		return internal.NewValidationError("priority must be one of low, medium, high, urgent", internal.ErrCodeInvalidPriority)
	}
	return nil
}

// ListFilter narrows the project listing.
type ListFilter struct {
	TeamID   *int64
	Status   string
	Priority string
	// AssignedUserID restricts to projects the user is assigned to;
	// non-admin callers always get this filter.
	AssignedUserID *int64
}
