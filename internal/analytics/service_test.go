package analytics_test

import (
	"log/slog"
	"os"
	"testing"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/analytics"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAnalyticsService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Analytics Service Suite")
}

// MockRepository implements analytics.Repository for testing
type MockRepository struct {
	activeUsers    int64
	teams          int64
	projects       int64
	activeProjects int64
	daily          []analytics.DailyRatingRow
	teamSummaries  []analytics.TeamSummary
	teamRatings    map[int64][]analytics.RatingRow
	projSummaries  []analytics.ProjectSummary
	projRatings    map[int64][]analytics.RatingRow
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		teamRatings: make(map[int64][]analytics.RatingRow),
		projRatings: make(map[int64][]analytics.RatingRow),
	}
}

func (m *MockRepository) CountActiveUsers() (int64, error)    { return m.activeUsers, nil }
func (m *MockRepository) CountTeams() (int64, error)          { return m.teams, nil }
func (m *MockRepository) CountProjects() (int64, error)       { return m.projects, nil }
func (m *MockRepository) CountActiveProjects() (int64, error) { return m.activeProjects, nil }

func (m *MockRepository) CountCheckInsBetween(start, end internal.Date) (int64, error) {
	var count int64
	for _, row := range m.daily {
		if !row.Date.Before(start) && !row.Date.After(end) {
			count++
		}
	}
	return count, nil
}

func (m *MockRepository) RatingsBetween(start, end internal.Date) ([]analytics.RatingRow, error) {
	var rows []analytics.RatingRow
	for _, row := range m.daily {
		if !row.Date.Before(start) && !row.Date.After(end) {
			rows = append(rows, row.RatingRow)
		}
	}
	return rows, nil
}

func (m *MockRepository) DailyRatingsBetween(start, end internal.Date) ([]analytics.DailyRatingRow, error) {
	var rows []analytics.DailyRatingRow
	for _, row := range m.daily {
		if !row.Date.Before(start) && !row.Date.After(end) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *MockRepository) TeamSummaries() ([]analytics.TeamSummary, error) {
	return m.teamSummaries, nil
}

func (m *MockRepository) TeamRatingsBetween(teamID int64, start, end internal.Date) ([]analytics.RatingRow, error) {
	return m.teamRatings[teamID], nil
}

func (m *MockRepository) ProjectSummaries() ([]analytics.ProjectSummary, error) {
	return m.projSummaries, nil
}

func (m *MockRepository) ProjectRatingsBetween(projectID int64, start, end internal.Date) ([]analytics.RatingRow, error) {
	return m.projRatings[projectID], nil
}

func intPtr(v int) *int { return &v }

var _ = Describe("Analytics Service", func() {
	var (
		mockRepo *MockRepository
		service  *analytics.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = analytics.NewService(mockRepo, logger)
	})

	Describe("ComputeAverages", func() {
		It("should average mood over every row", func() {
			averages := analytics.ComputeAverages([]analytics.RatingRow{
				{Mood: 2}, {Mood: 4}, {Mood: 4}, {Mood: 5},
			})
			Expect(averages.AvgMood).To(Equal(3.75))
		})

		It("should average workload and stress over the non-null subset only", func() {
			averages := analytics.ComputeAverages([]analytics.RatingRow{
				{Mood: 3, Workload: nil, Stress: intPtr(1)},
				{Mood: 3, Workload: intPtr(2), Stress: nil},
				{Mood: 3, Workload: intPtr(4), Stress: intPtr(4)},
			})
			Expect(averages.AvgWorkload).To(Equal(3.0))
			Expect(averages.AvgStress).To(Equal(2.5))
		})

		It("should round to two decimal places", func() {
			averages := analytics.ComputeAverages([]analytics.RatingRow{
				{Mood: 3}, {Mood: 3}, {Mood: 4},
			})
			Expect(averages.AvgMood).To(Equal(3.33))
		})

		It("should return zeroes for no rows", func() {
			averages := analytics.ComputeAverages(nil)
			Expect(averages.AvgMood).To(BeZero())
			Expect(averages.AvgWorkload).To(BeZero())
			Expect(averages.AvgStress).To(BeZero())
		})
	})

	Describe("Window", func() {
		It("should default to 30 days for non-positive input", func() {
			window := analytics.Window(0)
			Expect(window.Days).To(Equal(30))
			Expect(window.EndDate.Equal(internal.Today())).To(BeTrue())
			Expect(window.StartDate.Equal(internal.Today().AddDays(-30))).To(BeTrue())
		})

		It("should honor an explicit day count", func() {
			window := analytics.Window(7)
			Expect(window.Days).To(Equal(7))
			Expect(window.StartDate.Equal(internal.Today().AddDays(-7))).To(BeTrue())
		})
	})

	Describe("Overview", func() {
		It("should report counts and the trailing seven-day check-in count", func() {
			mockRepo.activeUsers = 12
			mockRepo.teams = 3
			mockRepo.projects = 5
			mockRepo.activeProjects = 4
			mockRepo.daily = []analytics.DailyRatingRow{
				{Date: internal.Today().AddDays(-1), RatingRow: analytics.RatingRow{Mood: 4}},
				{Date: internal.Today().AddDays(-3), RatingRow: analytics.RatingRow{Mood: 3}},
				{Date: internal.Today().AddDays(-20), RatingRow: analytics.RatingRow{Mood: 2}},
			}

			overview, window, err := service.Overview(30)
			Expect(err).NotTo(HaveOccurred())
			Expect(window.Days).To(Equal(30))
			Expect(overview.TotalUsers).To(Equal(int64(12)))
			Expect(overview.TotalTeams).To(Equal(int64(3)))
			Expect(overview.TotalProjects).To(Equal(int64(5)))
			Expect(overview.ActiveProjects).To(Equal(int64(4)))
			Expect(overview.TotalCheckIns).To(Equal(int64(3)))
			Expect(overview.RecentCheckIns).To(Equal(int64(2)))
		})
	})

	Describe("Dashboard", func() {
		It("should include organization-wide averages", func() {
			mockRepo.daily = []analytics.DailyRatingRow{
				{Date: internal.Today(), RatingRow: analytics.RatingRow{Mood: 2, Workload: intPtr(2)}},
				{Date: internal.Today(), RatingRow: analytics.RatingRow{Mood: 5, Workload: intPtr(4)}},
			}

			_, averages, _, err := service.Dashboard(30)
			Expect(err).NotTo(HaveOccurred())
			Expect(averages.AvgMood).To(Equal(3.5))
			Expect(averages.AvgWorkload).To(Equal(3.0))
		})
	})

	Describe("Teams", func() {
		It("should attach counts and averages per team", func() {
			mockRepo.teamSummaries = []analytics.TeamSummary{
				{TeamID: 1, TeamName: "Engineering", MemberCount: 4},
				{TeamID: 2, TeamName: "Design", MemberCount: 2},
			}
			mockRepo.teamRatings[1] = []analytics.RatingRow{{Mood: 4}, {Mood: 2}}

			teams, _, err := service.Teams(30)
			Expect(err).NotTo(HaveOccurred())
			Expect(teams).To(HaveLen(2))
			Expect(teams[0].CheckInCount).To(Equal(int64(2)))
			Expect(teams[0].AvgMood).To(Equal(3.0))
			Expect(teams[1].CheckInCount).To(BeZero())
			Expect(teams[1].AvgMood).To(BeZero())
		})
	})

	Describe("Trends", func() {
		It("should group by date ascending and omit empty days", func() {
			day1 := internal.Today().AddDays(-3)
			day2 := internal.Today().AddDays(-1)
			mockRepo.daily = []analytics.DailyRatingRow{
				{Date: day2, RatingRow: analytics.RatingRow{Mood: 5}},
				{Date: day1, RatingRow: analytics.RatingRow{Mood: 2, Stress: intPtr(4)}},
				{Date: day1, RatingRow: analytics.RatingRow{Mood: 3, Stress: intPtr(1)}},
			}

			points, _, err := service.Trends(30)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(2))

			Expect(points[0].Date.Equal(day1)).To(BeTrue())
			Expect(points[0].CheckInCount).To(Equal(2))
			Expect(points[0].AvgMood).To(Equal(2.5))
			Expect(points[0].AvgStress).To(Equal(2.5))

			Expect(points[1].Date.Equal(day2)).To(BeTrue())
			Expect(points[1].CheckInCount).To(Equal(1))
			Expect(points[1].AvgMood).To(Equal(5.0))
		})
	})
})
