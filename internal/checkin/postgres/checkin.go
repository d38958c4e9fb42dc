package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/checkin"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) GetByID(id int64) (*checkin.CheckIn, error) {
	var c checkin.CheckIn
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get check-in by id: %w", err)
	}
	return &c, nil
}

func (r *CheckInRepository) GetByUserAndDate(userID int64, date internal.Date) (*checkin.CheckIn, error) {
	var c checkin.CheckIn
	err := r.db.Where("user_id = ? AND check_in_date = ?", userID, date).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check-in by date: %w", err)
	}
	return &c, nil
}

func (r *CheckInRepository) applyFilter(filter checkin.ListFilter) *gorm.DB {
	query := r.db.Model(&checkin.CheckIn{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TeamID != nil {
		query = query.Where(
			"user_id IN (?)",
			r.db.Table("users").Select("id").Where("team_id = ?", *filter.TeamID),
		)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.StartDate != nil {
		query = query.Where("check_in_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("check_in_date <= ?", *filter.EndDate)
	}

	return query
}

func (r *CheckInRepository) List(filter checkin.ListFilter, limit, offset int) ([]*checkin.CheckIn, int64, error) {
	query := r.applyFilter(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count check-ins: %w", err)
	}

	var checkins []*checkin.CheckIn
	err := query.Order("check_in_date DESC, id DESC").Limit(limit).Offset(offset).Find(&checkins).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list check-ins: %w", err)
	}

	return checkins, total, nil
}

func (r *CheckInRepository) ListBetween(filter checkin.ListFilter, start, end internal.Date) ([]*checkin.CheckIn, error) {
	var checkins []*checkin.CheckIn
	err := r.applyFilter(filter).
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Order("check_in_date ASC").
		Find(&checkins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins between dates: %w", err)
	}
	return checkins, nil
}

func (r *CheckInRepository) Create(c *checkin.CheckIn) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := r.db.Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrCheckInExists
		}
		return fmt.Errorf("failed to create check-in: %w", err)
	}
	return nil
}

func (r *CheckInRepository) Update(c *checkin.CheckIn) error {
	c.UpdatedAt = time.Now()
	if err := r.db.Save(c).Error; err != nil {
		return fmt.Errorf("failed to update check-in: %w", err)
	}
	return nil
}

func (r *CheckInRepository) Delete(id int64) error {
	if err := r.db.Delete(&checkin.CheckIn{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	return nil
}

func (r *CheckInRepository) UserName(userID int64) (string, error) {
	var row struct {
		FirstName string
		LastName  string
	}
	err := r.db.Table("users").Select("first_name, last_name").Where("id = ?", userID).Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("failed to get user name: %w", err)
	}
	return strings.TrimSpace(row.FirstName + " " + row.LastName), nil
}

func (r *CheckInRepository) ProjectTitle(projectID int64) (string, error) {
	var title string
	err := r.db.Table("projects").Select("title").Where("id = ?", projectID).Scan(&title).Error
	if err != nil {
		return "", fmt.Errorf("failed to get project title: %w", err)
	}
	return title, nil
}

func (r *CheckInRepository) ProjectExists(projectID int64) (bool, error) {
	var count int64
	if err := r.db.Table("projects").Where("id = ?", projectID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return count > 0, nil
}

// isUniqueViolation matches the duplicate-key errors raised by postgres and
// sqlite when the (user_id, check_in_date) index rejects a second check-in.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
