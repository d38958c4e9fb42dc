package project

import (
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "on_hold"
	StatusCancelled = "cancelled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Project is a unit of work owned by a team, with users assigned through
// explicit ProjectAssignment rows.
type Project struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Status      string         `json:"status" gorm:"default:active;not null"`
	Priority    string         `json:"priority" gorm:"default:medium;not null"`
	StartDate   *internal.Date `json:"start_date" gorm:"column:start_date"`
	DueDate     *internal.Date `json:"due_date" gorm:"column:due_date"`
	TeamID      int64          `json:"team_id" gorm:"column:team_id;not null"`
	CreatedAt   time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// IsOverdue reports whether an active project has slipped past its due date.
// Completed, on-hold and cancelled projects are never overdue.
func (p *Project) IsOverdue() bool {
	if p.DueDate == nil || p.Status != StatusActive {
		return false
	}
	return internal.Today().After(*p.DueDate)
}

// ProjectAssignment is the explicit join entity linking users to projects.
type ProjectAssignment struct {
	ProjectID  int64     `json:"project_id" gorm:"column:project_id;primaryKey"`
	UserID     int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	AssignedAt time.Time `json:"assigned_at" gorm:"column:assigned_at;not null"`
}

func (ProjectAssignment) TableName() string {
	return "project_assignments"
}

// ProjectView decorates a project with derived fields for responses.
type ProjectView struct {
	Project
	TeamName           string `json:"team_name,omitempty"`
	AssignedUsersCount int64  `json:"assigned_users_count"`
	Overdue            bool   `json:"overdue"`
}

func NewProjectView(p *Project, teamName string, assignedCount int64) *ProjectView {
	return &ProjectView{
		Project:            *p,
		TeamName:           teamName,
		AssignedUsersCount: assignedCount,
		Overdue:            p.IsOverdue(),
	}
}
