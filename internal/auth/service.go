package auth

import (
	"log/slog"
	"strconv"
	"strings"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the slice of user storage the auth flow needs.
type UserRepository interface {
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(email string) (*user.User, error)
	GetByID(id int64) (*user.User, error)
	Create(u *user.User) error
	UpdatePassword(id int64, passwordHash string) error
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Authenticate validates credentials and returns a signed access token plus
// the user record. Inactive accounts cannot log in.
func (s *Service) Authenticate(dto LoginDTO) (string, *user.User, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Error("failed to look up user by email", "error", err)
		return "", nil, internal.NewInternalError("Error authenticating", err)
	}
	if u == nil {
		return "", nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return "", nil, internal.ErrInvalidCredentials
	}

	if !u.IsActiveUser() {
		return "", nil, internal.NewUnauthorizedError("Account is deactivated", internal.ErrCodeUserInactive)
	}

	token, err := s.tokenGenerator.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		s.logger.Error("failed to sign access token", "error", err, "user_id", u.ID)
		return "", nil, internal.NewInternalError("Error creating access token", err)
	}

	return token, u, nil
}

// Register creates a new account with a bcrypt-hashed password. Duplicate
// emails conflict.
func (s *Service) Register(dto RegisterDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Error("failed to look up user by email", "error", err, "email", email)
		return nil, internal.NewInternalError("Error creating user", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("User with this email already exists", internal.ErrCodeDuplicateEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("Error hashing password", err)
	}

	role := dto.Role
	if role == "" {
		role = user.RoleEmployee
	}
	if !user.ValidRole(role) {
		return nil, internal.NewValidationError("role must be either 'admin' or 'employee'", internal.ErrCodeValidationFailed)
	}

	u := &user.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Role:         role,
		IsActive:     true,
		TeamID:       dto.TeamID,
	}

	if err := s.userRepo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", email)
		return nil, internal.NewInternalError("Error creating user", err)
	}

	s.logger.Info("user registered", "user_id", u.ID, "email", email, "role", role)
	return u, nil
}

func (s *Service) ChangePassword(userID int64, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return internal.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.CurrentPassword)); err != nil {
		return internal.NewUnauthorizedError("Current password is incorrect", internal.ErrCodeBadCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), s.bcryptCost)
	if err != nil {
		return internal.NewInternalError("Error hashing password", err)
	}

	if err := s.userRepo.UpdatePassword(userID, string(hash)); err != nil {
		s.logger.Error("failed to update password", "error", err, "user_id", userID)
		return internal.NewInternalError("Error changing password", err)
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}

// ValidateAccessToken validates the token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// ResolveUser loads the user a validated token refers to.
func (s *Service) ResolveUser(claims *Claims) (*user.User, error) {
	id, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}
