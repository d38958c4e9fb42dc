package user

import (
	"encoding/json"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is the account record. Accounts are never hard-deleted, deactivation
// flips is_active instead.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	FirstName    string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName     string    `json:"last_name" gorm:"column:last_name;not null"`
	Role         string    `json:"role" gorm:"default:employee;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true;not null"`
	TeamID       *int64    `json:"team_id" gorm:"column:team_id"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return IsAdminRole(u.Role)
}

func (u *User) IsActiveUser() bool {
	return u.IsActive
}

// IsAdminRole is the role predicate used by the authorization middleware.
func IsAdminRole(role string) bool {
	return role == RoleAdmin
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return json.Marshal(struct {
		alias
		FullName string `json:"full_name"`
	}{alias(u), u.FullName()})
}
