package checkin

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

// CreateCheckInDTO carries the submit payload. The check-in date is never
// client-controlled; Submit always stamps the record with today's date.
type CreateCheckInDTO struct {
	MoodRating     int     `json:"mood_rating"`
	Comment        *string `json:"comment,omitempty"`
	WorkLoadRating *int    `json:"work_load_rating,omitempty"`
	StressLevel    *int    `json:"stress_level,omitempty"`
	ProjectID      *int64  `json:"project_id,omitempty"`
}

func validRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

func (dto CreateCheckInDTO) Validate() error {
	if !validRating(dto.MoodRating) {
		return internal.NewValidationError("Mood rating must be between 1 and 5", internal.ErrCodeInvalidMoodRating)
	}
	if dto.WorkLoadRating != nil && !validRating(*dto.WorkLoadRating) {
		return internal.NewValidationError("Work load rating must be between 1 and 5", internal.ErrCodeInvalidWorkload)
	}
	if dto.StressLevel != nil && !validRating(*dto.StressLevel) {
		return internal.NewValidationError("Stress level must be between 1 and 5", internal.ErrCodeInvalidStress)
	}
	return nil
}

type UpdateCheckInDTO struct {
	MoodRating     *int    `json:"mood_rating,omitempty"`
	Comment        *string `json:"comment,omitempty"`
	WorkLoadRating *int    `json:"work_load_rating,omitempty"`
	StressLevel    *int    `json:"stress_level,omitempty"`
	ProjectID      *int64  `json:"project_id,omitempty"`
}

// Validate checks every provided field before any write happens, so a bad
// payload never partially applies.
func (dto UpdateCheckInDTO) Validate() error {
	if dto.MoodRating != nil && !validRating(*dto.MoodRating) {
		return internal.NewValidationError("Mood rating must be between 1 and 5", internal.ErrCodeInvalidMoodRating)
	}
	if dto.WorkLoadRating != nil && !validRating(*dto.WorkLoadRating) {
		return internal.NewValidationError("Work load rating must be between 1 and 5", internal.ErrCodeInvalidWorkload)
	}
	if dto.StressLevel != nil && !validRating(*dto.StressLevel) {
		return internal.NewValidationError("Stress level must be between 1 and 5", internal.ErrCodeInvalidStress)
	}
	return nil
}

// ListFilter narrows the admin check-in listing.
type ListFilter struct {
	UserID    *int64
	TeamID    *int64
	ProjectID *int64
	StartDate *internal.Date
	EndDate   *internal.Date
}
