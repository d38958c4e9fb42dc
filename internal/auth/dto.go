package auth

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// RegisterDTO creates a new account. Registration is an admin action.
type RegisterDTO struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
	TeamID    *int64 `json:"team_id,omitempty"`
}

func (d RegisterDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	if len(d.Password) < 6 {
		return internal.NewValidationError("password must be at least 6 characters", internal.ErrCodeValidationFailed)
	}
	if d.FirstName == "" {
		return internal.NewValidationError("first_name is required", internal.ErrCodeValidationFailed)
	}
	if d.LastName == "" {
		return internal.NewValidationError("last_name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (d ChangePasswordDTO) Validate() error {
	if d.CurrentPassword == "" || d.NewPassword == "" {
		return internal.NewValidationError("Current and new password are required", internal.ErrCodeValidationFailed)
	}
	if len(d.NewPassword) < 6 {
		return internal.NewValidationError("New password must be at least 6 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        interface{} `json:"user"`
}
