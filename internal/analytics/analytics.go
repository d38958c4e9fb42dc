package analytics

import (
	internal "github.com/frahmantamala/teampulse/internal"
)

// DateRange echoes the analytics window back to the caller.
type DateRange struct {
	StartDate internal.Date `json:"start_date"`
	EndDate   internal.Date `json:"end_date"`
	Days      int           `json:"days"`
}

// Overview holds the organization-wide counts for the dashboard.
type Overview struct {
	TotalUsers     int64 `json:"total_users"`
	TotalTeams     int64 `json:"total_teams"`
	TotalProjects  int64 `json:"total_projects"`
	ActiveProjects int64 `json:"active_projects"`
	TotalCheckIns  int64 `json:"total_checkins"`
	RecentCheckIns int64 `json:"recent_checkins"`
}

// Averages carries the three well-being averages. Mood is averaged over all
// rows in scope; workload and stress only over rows where they were provided.
type Averages struct {
	AvgMood     float64 `json:"avg_mood"`
	AvgWorkload float64 `json:"avg_workload"`
	AvgStress   float64 `json:"avg_stress"`
}

// RatingRow is one check-in's ratings, stripped to what analytics needs.
type RatingRow struct {
	Mood     int
	Workload *int
	Stress   *int
}

// DailyRatingRow is a rating row tagged with its check-in date.
type DailyRatingRow struct {
	Date internal.Date
	RatingRow
}

// TeamSummary identifies a team plus its active member count.
type TeamSummary struct {
	TeamID      int64  `json:"team_id"`
	TeamName    string `json:"team_name"`
	MemberCount int64  `json:"member_count"`
}

// TeamAnalytics is a team's well-being picture over the window.
type TeamAnalytics struct {
	TeamSummary
	CheckInCount int64 `json:"checkin_count"`
	Averages
}

// ProjectSummary identifies a project plus its assignment count.
type ProjectSummary struct {
	ProjectID     int64  `json:"project_id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	TeamName      string `json:"team_name"`
	AssignedUsers int64  `json:"assigned_users"`
}

// ProjectAnalytics is a project's well-being picture over the window.
type ProjectAnalytics struct {
	ProjectSummary
	CheckInCount int64 `json:"checkin_count"`
	Averages
}

// TrendPoint is one calendar day's averages. Days without check-ins are
// omitted from trend output entirely.
type TrendPoint struct {
	Date internal.Date `json:"date"`
	Averages
	CheckInCount int `json:"checkin_count"`
}
