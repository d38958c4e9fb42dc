package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/teampulse/internal/project"
	"github.com/frahmantamala/teampulse/internal/user"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var p project.Project
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) List(filter project.ListFilter, limit, offset int) ([]*project.Project, int64, error) {
	query := r.db.Model(&project.Project{})

	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedUserID != nil {
		query = query.Where(
			"id IN (?)",
			r.db.Table("project_assignments").Select("project_id").Where("user_id = ?", *filter.AssignedUserID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var projects []*project.Project
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

func (r *ProjectRepository) Create(p *project.Project) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(p *project.Project) error {
	p.UpdatedAt = time.Now()
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes the project together with its assignments and check-ins in
// a single transaction.
func (r *ProjectRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&project.ProjectAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete project assignments: %w", err)
		}
		if err := tx.Exec("DELETE FROM checkins WHERE project_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete project check-ins: %w", err)
		}
		if err := tx.Delete(&project.Project{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

func (r *ProjectRepository) TeamName(teamID int64) (string, error) {
	var name string
	err := r.db.Table("teams").Select("name").Where("id = ?", teamID).Scan(&name).Error
	if err != nil {
		return "", fmt.Errorf("failed to get team name: %w", err)
	}
	return name, nil
}

func (r *ProjectRepository) TeamExists(teamID int64) (bool, error) {
	var count int64
	if err := r.db.Table("teams").Where("id = ?", teamID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check team: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) UserExists(userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("id = ? AND is_active = ?", userID, true).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) AssignedUsers(projectID int64) ([]*user.User, error) {
	var users []*user.User
	err := r.db.Model(&user.User{}).
		Joins("JOIN project_assignments ON project_assignments.user_id = users.id").
		Where("project_assignments.project_id = ?", projectID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned users: %w", err)
	}
	return users, nil
}

func (r *ProjectRepository) AssignedCount(projectID int64) (int64, error) {
	var count int64
	err := r.db.Model(&project.ProjectAssignment{}).Where("project_id = ?", projectID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

func (r *ProjectRepository) IsAssigned(projectID, userID int64) (bool, error) {
	var a project.ProjectAssignment
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return true, nil
}

func (r *ProjectRepository) AddAssignment(a *project.ProjectAssignment) error {
	if err := r.db.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *ProjectRepository) RemoveAssignment(projectID, userID int64) error {
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&project.ProjectAssignment{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}
