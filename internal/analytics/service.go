package analytics

import (
	"log/slog"
	"math"
	"sort"

	internal "github.com/frahmantamala/teampulse/internal"
)

const (
	// DefaultWindowDays is the analytics window when the caller passes no
	// days parameter or a non-positive one.
	DefaultWindowDays = 30
	recentWindowDays  = 7
)

// Repository defines the aggregate queries analytics runs over the store.
type Repository interface {
	CountActiveUsers() (int64, error)
	CountTeams() (int64, error)
	CountProjects() (int64, error)
	CountActiveProjects() (int64, error)
	CountCheckInsBetween(start, end internal.Date) (int64, error)

	RatingsBetween(start, end internal.Date) ([]RatingRow, error)
	DailyRatingsBetween(start, end internal.Date) ([]DailyRatingRow, error)

	TeamSummaries() ([]TeamSummary, error)
	TeamRatingsBetween(teamID int64, start, end internal.Date) ([]RatingRow, error)

	ProjectSummaries() ([]ProjectSummary, error)
	ProjectRatingsBetween(projectID int64, start, end internal.Date) ([]RatingRow, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Window returns the inclusive [today-days, today] range. Non-positive days
// falls back to the default window.
func Window(days int) DateRange {
	if days <= 0 {
		days = DefaultWindowDays
	}
	today := internal.Today()
	return DateRange{
		StartDate: today.AddDays(-days),
		EndDate:   today,
		Days:      days,
	}
}

// Overview returns the organization-wide counts for the window.
func (s *Service) Overview(days int) (*Overview, DateRange, error) {
	window := Window(days)

	overview := &Overview{}
	var err error

	if overview.TotalUsers, err = s.repo.CountActiveUsers(); err != nil {
		return nil, window, s.fail("count users", err)
	}
	if overview.TotalTeams, err = s.repo.CountTeams(); err != nil {
		return nil, window, s.fail("count teams", err)
	}
	if overview.TotalProjects, err = s.repo.CountProjects(); err != nil {
		return nil, window, s.fail("count projects", err)
	}
	if overview.ActiveProjects, err = s.repo.CountActiveProjects(); err != nil {
		return nil, window, s.fail("count active projects", err)
	}
	if overview.TotalCheckIns, err = s.repo.CountCheckInsBetween(window.StartDate, window.EndDate); err != nil {
		return nil, window, s.fail("count check-ins", err)
	}

	recentStart := window.EndDate.AddDays(-recentWindowDays)
	if overview.RecentCheckIns, err = s.repo.CountCheckInsBetween(recentStart, window.EndDate); err != nil {
		return nil, window, s.fail("count recent check-ins", err)
	}

	return overview, window, nil
}

// Dashboard returns the overview plus organization-wide averages.
func (s *Service) Dashboard(days int) (*Overview, *Averages, DateRange, error) {
	overview, window, err := s.Overview(days)
	if err != nil {
		return nil, nil, window, err
	}

	rows, err := s.repo.RatingsBetween(window.StartDate, window.EndDate)
	if err != nil {
		return nil, nil, window, s.fail("load ratings", err)
	}

	averages := ComputeAverages(rows)
	return overview, &averages, window, nil
}

// Teams returns per-team analytics over the window.
func (s *Service) Teams(days int) ([]*TeamAnalytics, DateRange, error) {
	window := Window(days)

	summaries, err := s.repo.TeamSummaries()
	if err != nil {
		return nil, window, s.fail("load team summaries", err)
	}

	results := make([]*TeamAnalytics, 0, len(summaries))
	for _, summary := range summaries {
		rows, err := s.repo.TeamRatingsBetween(summary.TeamID, window.StartDate, window.EndDate)
		if err != nil {
			return nil, window, s.fail("load team ratings", err)
		}
		results = append(results, &TeamAnalytics{
			TeamSummary:  summary,
			CheckInCount: int64(len(rows)),
			Averages:     ComputeAverages(rows),
		})
	}

	return results, window, nil
}

// Projects returns per-project analytics over the window.
func (s *Service) Projects(days int) ([]*ProjectAnalytics, DateRange, error) {
	window := Window(days)

	summaries, err := s.repo.ProjectSummaries()
	if err != nil {
		return nil, window, s.fail("load project summaries", err)
	}

	results := make([]*ProjectAnalytics, 0, len(summaries))
	for _, summary := range summaries {
		rows, err := s.repo.ProjectRatingsBetween(summary.ProjectID, window.StartDate, window.EndDate)
		if err != nil {
			return nil, window, s.fail("load project ratings", err)
		}
		results = append(results, &ProjectAnalytics{
			ProjectSummary: summary,
			CheckInCount:   int64(len(rows)),
			Averages:       ComputeAverages(rows),
		})
	}

	return results, window, nil
}

// Trends returns per-day averages for each date in the window that has at
// least one check-in, ascending by date. Empty days are omitted.
func (s *Service) Trends(days int) ([]*TrendPoint, DateRange, error) {
	window := Window(days)

	rows, err := s.repo.DailyRatingsBetween(window.StartDate, window.EndDate)
	if err != nil {
		return nil, window, s.fail("load daily ratings", err)
	}

	byDate := make(map[string][]RatingRow)
	for _, row := range rows {
		key := row.Date.String()
		byDate[key] = append(byDate[key], row.RatingRow)
	}

	keys := make([]string, 0, len(byDate))
	for key := range byDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]*TrendPoint, 0, len(keys))
	for _, key := range keys {
		date, err := internal.ParseDate(key)
		if err != nil {
			return nil, window, s.fail("parse trend date", err)
		}
		dayRows := byDate[key]
		points = append(points, &TrendPoint{
			Date:         date,
			Averages:     ComputeAverages(dayRows),
			CheckInCount: len(dayRows),
		})
	}

	return points, window, nil
}

// ComputeAverages applies the well-being averaging rule: mood over every row,
// workload and stress only over rows that carry them, rounded to two
// decimals. No rows means zeroes.
func ComputeAverages(rows []RatingRow) Averages {
	if len(rows) == 0 {
		return Averages{}
	}

	var moodSum int
	var workloadSum, workloadCount int
	var stressSum, stressCount int
	for _, row := range rows {
		moodSum += row.Mood
		if row.Workload != nil {
			workloadSum += *row.Workload
			workloadCount++
		}
		if row.Stress != nil {
			stressSum += *row.Stress
			stressCount++
		}
	}

	averages := Averages{
		AvgMood: round2(float64(moodSum) / float64(len(rows))),
	}
	if workloadCount > 0 {
		averages.AvgWorkload = round2(float64(workloadSum) / float64(workloadCount))
	}
	if stressCount > 0 {
		averages.AvgStress = round2(float64(stressSum) / float64(stressCount))
	}
	return averages
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) fail(op string, err error) error {
	s.logger.Error("analytics query failed", "op", op, "error", err)
	return internal.NewInternalError("Error computing analytics", err)
}
