package checkin_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/checkin"
	"github.com/frahmantamala/teampulse/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCheckInService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CheckIn Service Suite")
}

// MockRepository implements checkin.Repository for testing
type MockRepository struct {
	checkins   map[int64]*checkin.CheckIn
	nextID     int64
	users      map[int64]string
	projects   map[int64]string
	shouldFail bool
	failError  error
	lookupErr  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		checkins: make(map[int64]*checkin.CheckIn),
		nextID:   1,
		users:    map[int64]string{1: "Dewi Lestari", 2: "Budi Santoso", 99: "Ava Admin"},
		projects: map[int64]string{10: "Mobile App"},
	}
}

func (m *MockRepository) GetByID(id int64) (*checkin.CheckIn, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	c, ok := m.checkins[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (m *MockRepository) GetByUserAndDate(userID int64, date internal.Date) (*checkin.CheckIn, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, c := range m.checkins {
		if c.UserID == userID && c.CheckInDate.Equal(date) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) List(filter checkin.ListFilter, limit, offset int) ([]*checkin.CheckIn, int64, error) {
	if m.shouldFail {
		return nil, 0, m.failError
	}
	var result []*checkin.CheckIn
	for _, c := range m.checkins {
		if m.matches(c, filter) {
			result = append(result, c)
		}
	}
	return result, int64(len(result)), nil
}

func (m *MockRepository) ListBetween(filter checkin.ListFilter, start, end internal.Date) ([]*checkin.CheckIn, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*checkin.CheckIn
	for _, c := range m.checkins {
		if !m.matches(c, filter) {
			continue
		}
		if c.CheckInDate.Before(start) || c.CheckInDate.After(end) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *MockRepository) matches(c *checkin.CheckIn, filter checkin.ListFilter) bool {
	if filter.UserID != nil && c.UserID != *filter.UserID {
		return false
	}
	if filter.ProjectID != nil && (c.ProjectID == nil || *c.ProjectID != *filter.ProjectID) {
		return false
	}
	if filter.StartDate != nil && c.CheckInDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && c.CheckInDate.After(*filter.EndDate) {
		return false
	}
	return true
}

func (m *MockRepository) Create(c *checkin.CheckIn) error {
	if m.shouldFail {
		return m.failError
	}
	for _, existing := range m.checkins {
		if existing.UserID == c.UserID && existing.CheckInDate.Equal(c.CheckInDate) {
			return internal.ErrCheckInExists
		}
	}
	c.ID = m.nextID
	m.nextID++
	m.checkins[c.ID] = c
	return nil
}

func (m *MockRepository) Update(c *checkin.CheckIn) error {
	if m.shouldFail {
		return m.failError
	}
	m.checkins[c.ID] = c
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.checkins, id)
	return nil
}

func (m *MockRepository) UserName(userID int64) (string, error) {
	if m.shouldFail {
		return "", m.failError
	}
	return m.users[userID], nil
}

func (m *MockRepository) ProjectTitle(projectID int64) (string, error) {
	if m.shouldFail {
		return "", m.failError
	}
	return m.projects[projectID], nil
}

func (m *MockRepository) ProjectExists(projectID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	_, ok := m.projects[projectID]
	return ok, nil
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

var _ = Describe("CheckIn Service", func() {
	var (
		mockRepo *MockRepository
		service  *checkin.Service
		employee *user.User
		other    *user.User
		admin    *user.User
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = checkin.NewService(mockRepo, logger)

		employee = &user.User{ID: 1, Role: user.RoleEmployee, IsActive: true}
		other = &user.User{ID: 2, Role: user.RoleEmployee, IsActive: true}
		admin = &user.User{ID: 99, Role: user.RoleAdmin, IsActive: true}
	})

	Describe("Submit", func() {
		It("should record a check-in with every rating provided", func() {
			view, err := service.Submit(employee, checkin.CreateCheckInDTO{
				MoodRating:     4,
				WorkLoadRating: intPtr(3),
				StressLevel:    intPtr(2),
				ProjectID:      int64Ptr(10),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.ID).To(BeNumerically(">", 0))
			Expect(view.MoodLabel).To(Equal("Good"))
			Expect(*view.WorkloadLabel).To(Equal("Moderate"))
			Expect(*view.StressLabel).To(Equal("Low"))
			Expect(*view.ProjectTitle).To(Equal("Mobile App"))
			Expect(view.CheckInDate.Equal(internal.Today())).To(BeTrue())
		})

		It("should accept every mood rating from 1 to 5", func() {
			for mood := 1; mood <= 5; mood++ {
				repo := NewMockRepository()
				logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
				svc := checkin.NewService(repo, logger)

				view, err := svc.Submit(employee, checkin.CreateCheckInDTO{MoodRating: mood})
				Expect(err).NotTo(HaveOccurred())
				Expect(view.MoodRating).To(Equal(mood))
			}
		})

		It("should reject mood rating below 1", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 0})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Mood rating must be between 1 and 5"))
		})

		It("should reject mood rating above 5", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 6})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Mood rating must be between 1 and 5"))
		})

		It("should reject an out-of-range optional workload rating", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{
				MoodRating:     3,
				WorkLoadRating: intPtr(9),
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Work load rating must be between 1 and 5"))
		})

		It("should reject a second check-in on the same day", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 4})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 2})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
			Expect(appErr.Message).To(Equal("You already have a check-in for today"))
		})

		It("should allow different users to check in on the same day", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 4})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Submit(other, checkin.CreateCheckInDTO{MoodRating: 3})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an unknown project", func() {
			_, err := service.Submit(employee, checkin.CreateCheckInDTO{
				MoodRating: 3,
				ProjectID:  int64Ptr(777),
			})
			Expect(err).To(MatchError(internal.ErrProjectNotFound))
		})

		It("should ignore a client-supplied check-in date and stamp today", func() {
			payload := `{"mood_rating": 4, "check_in_date": "2020-01-01"}`
			var dto checkin.CreateCheckInDTO
			Expect(json.Unmarshal([]byte(payload), &dto)).To(Succeed())

			view, err := service.Submit(employee, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.CheckInDate.Equal(internal.Today())).To(BeTrue())

			stored := mockRepo.checkins[view.ID]
			Expect(stored.CheckInDate.Equal(internal.Today())).To(BeTrue())
		})

		It("should surface a failed duplicate lookup instead of writing", func() {
			mockRepo.lookupErr = errors.New("connection reset")

			_, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 3})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
			Expect(mockRepo.checkins).To(BeEmpty())
		})
	})

	Describe("Get", func() {
		var id int64

		BeforeEach(func() {
			view, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 5})
			Expect(err).NotTo(HaveOccurred())
			id = view.ID
		})

		It("should let the owner read their check-in", func() {
			view, err := service.Get(employee, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.MoodLabel).To(Equal("Excellent"))
		})

		It("should let an admin read any check-in", func() {
			_, err := service.Get(admin, id)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should deny another employee", func() {
			_, err := service.Get(other, id)
			Expect(err).To(MatchError(internal.ErrAccessDenied))
		})

		It("should return not found for a missing check-in", func() {
			_, err := service.Get(employee, 12345)
			Expect(err).To(MatchError(internal.ErrCheckInNotFound))
		})
	})

	Describe("Update", func() {
		var id int64

		BeforeEach(func() {
			view, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 2})
			Expect(err).NotTo(HaveOccurred())
			id = view.ID
		})

		It("should apply only the provided fields", func() {
			view, err := service.Update(employee, id, checkin.UpdateCheckInDTO{
				MoodRating:  intPtr(4),
				StressLevel: intPtr(5),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.MoodRating).To(Equal(4))
			Expect(*view.StressLevel).To(Equal(5))
			Expect(view.WorkLoadRating).To(BeNil())
		})

		It("should reject invalid ratings before writing anything", func() {
			_, err := service.Update(employee, id, checkin.UpdateCheckInDTO{
				MoodRating:  intPtr(4),
				StressLevel: intPtr(0),
			})
			Expect(err).To(HaveOccurred())

			stored, getErr := service.Get(employee, id)
			Expect(getErr).NotTo(HaveOccurred())
			Expect(stored.MoodRating).To(Equal(2))
		})

		It("should deny another employee", func() {
			_, err := service.Update(other, id, checkin.UpdateCheckInDTO{MoodRating: intPtr(3)})
			Expect(err).To(MatchError(internal.ErrAccessDenied))
		})
	})

	Describe("Delete", func() {
		It("should remove the check-in", func() {
			view, err := service.Submit(employee, checkin.CreateCheckInDTO{MoodRating: 3})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(admin, view.ID)).To(Succeed())

			_, err = service.Get(employee, view.ID)
			Expect(err).To(MatchError(internal.ErrCheckInNotFound))
		})
	})

	Describe("WeeklySummary", func() {
		seed := func(userID int64, daysAgo int, mood int, workload, stress *int) {
			c := &checkin.CheckIn{
				UserID:         userID,
				CheckInDate:    internal.Today().AddDays(-daysAgo),
				MoodRating:     mood,
				WorkLoadRating: workload,
				StressLevel:    stress,
			}
			Expect(mockRepo.Create(c)).To(Succeed())
		}

		It("should average mood over all check-ins in the week", func() {
			weekStart := internal.Today().StartOfWeek()
			for i, mood := range []int{2, 4, 4, 5} {
				c := &checkin.CheckIn{
					UserID:      int64(i + 1),
					CheckInDate: weekStart,
					MoodRating:  mood,
				}
				Expect(mockRepo.Create(c)).To(Succeed())
			}

			summary, views, err := service.WeeklySummary(checkin.ListFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.CheckInCount).To(Equal(4))
			Expect(summary.AvgMood).To(Equal(3.75))
			Expect(views).To(HaveLen(4))
		})

		It("should average workload only over check-ins that provide it", func() {
			weekStart := internal.Today().StartOfWeek()
			workloads := []*int{nil, intPtr(2), intPtr(4)}
			for i, w := range workloads {
				c := &checkin.CheckIn{
					UserID:         int64(i + 1),
					CheckInDate:    weekStart,
					MoodRating:     3,
					WorkLoadRating: w,
				}
				Expect(mockRepo.Create(c)).To(Succeed())
			}

			summary, _, err := service.WeeklySummary(checkin.ListFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.AvgWorkload).To(Equal(3.0))
		})

		It("should return a zeroed summary when the week is empty", func() {
			seed(1, 10, 5, nil, nil)

			summary, views, err := service.WeeklySummary(checkin.ListFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.CheckInCount).To(Equal(0))
			Expect(summary.AvgMood).To(BeZero())
			Expect(summary.AvgWorkload).To(BeZero())
			Expect(summary.AvgStress).To(BeZero())
			Expect(views).To(BeEmpty())
		})
	})
})
