package postgres

import (
	"fmt"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/analytics"
	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) CountActiveUsers() (int64, error) {
	var count int64
	err := r.db.Table("users").Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) CountTeams() (int64, error) {
	var count int64
	if err := r.db.Table("teams").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) CountProjects() (int64, error) {
	var count int64
	if err := r.db.Table("projects").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) CountActiveProjects() (int64, error) {
	var count int64
	err := r.db.Table("projects").Where("status = ?", "active").Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active projects: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) CountCheckInsBetween(start, end internal.Date) (int64, error) {
	var count int64
	err := r.db.Table("checkins").
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

type ratingScan struct {
	MoodRating     int
	WorkLoadRating *int
	StressLevel    *int
}

func toRatingRows(scans []ratingScan) []analytics.RatingRow {
	rows := make([]analytics.RatingRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, analytics.RatingRow{
			Mood:     s.MoodRating,
			Workload: s.WorkLoadRating,
			Stress:   s.StressLevel,
		})
	}
	return rows
}

func (r *AnalyticsRepository) RatingsBetween(start, end internal.Date) ([]analytics.RatingRow, error) {
	var scans []ratingScan
	err := r.db.Table("checkins").
		Select("mood_rating, work_load_rating, stress_level").
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Scan(&scans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	return toRatingRows(scans), nil
}

func (r *AnalyticsRepository) DailyRatingsBetween(start, end internal.Date) ([]analytics.DailyRatingRow, error) {
	var scans []struct {
		CheckInDate    internal.Date
		MoodRating     int
		WorkLoadRating *int
		StressLevel    *int
	}
	err := r.db.Table("checkins").
		Select("check_in_date, mood_rating, work_load_rating, stress_level").
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Order("check_in_date ASC").
		Scan(&scans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load daily ratings: %w", err)
	}

	rows := make([]analytics.DailyRatingRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, analytics.DailyRatingRow{
			Date: s.CheckInDate,
			RatingRow: analytics.RatingRow{
				Mood:     s.MoodRating,
				Workload: s.WorkLoadRating,
				Stress:   s.StressLevel,
			},
		})
	}
	return rows, nil
}

func (r *AnalyticsRepository) TeamSummaries() ([]analytics.TeamSummary, error) {
	var summaries []analytics.TeamSummary
	err := r.db.Table("teams").
		Select(`teams.id AS team_id,
			teams.name AS team_name,
			(SELECT COUNT(*) FROM users WHERE users.team_id = teams.id AND users.is_active = true) AS member_count`).
		Order("teams.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load team summaries: %w", err)
	}
	return summaries, nil
}

func (r *AnalyticsRepository) TeamRatingsBetween(teamID int64, start, end internal.Date) ([]analytics.RatingRow, error) {
	var scans []ratingScan
	err := r.db.Table("checkins").
		Select("checkins.mood_rating, checkins.work_load_rating, checkins.stress_level").
		Joins("JOIN users ON users.id = checkins.user_id").
		Where("users.team_id = ?", teamID).
		Where("checkins.check_in_date >= ? AND checkins.check_in_date <= ?", start, end).
		Scan(&scans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load team ratings: %w", err)
	}
	return toRatingRows(scans), nil
}

func (r *AnalyticsRepository) ProjectSummaries() ([]analytics.ProjectSummary, error) {
	var summaries []analytics.ProjectSummary
	err := r.db.Table("projects").
		Select(`projects.id AS project_id,
			projects.title AS title,
			projects.status AS status,
			teams.name AS team_name,
			(SELECT COUNT(*) FROM project_assignments WHERE project_assignments.project_id = projects.id) AS assigned_users`).
		Joins("JOIN teams ON teams.id = projects.team_id").
		Order("projects.title ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load project summaries: %w", err)
	}
	return summaries, nil
}

func (r *AnalyticsRepository) ProjectRatingsBetween(projectID int64, start, end internal.Date) ([]analytics.RatingRow, error) {
	var scans []ratingScan
	err := r.db.Table("checkins").
		Select("mood_rating, work_load_rating, stress_level").
		Where("project_id = ?", projectID).
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Scan(&scans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load project ratings: %w", err)
	}
	return toRatingRows(scans), nil
}
