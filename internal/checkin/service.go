package checkin

import (
	"log/slog"
	"math"

	internal "github.com/frahmantamala/teampulse/internal"
	"github.com/frahmantamala/teampulse/internal/user"
)

// Repository defines data access for check-ins.
type Repository interface {
	GetByID(id int64) (*CheckIn, error)
	GetByUserAndDate(userID int64, date internal.Date) (*CheckIn, error)
	List(filter ListFilter, limit, offset int) ([]*CheckIn, int64, error)
	ListBetween(filter ListFilter, start, end internal.Date) ([]*CheckIn, error)
	// Create returns internal.ErrCheckInExists when the unique index on
	// (user_id, check_in_date) rejects the row.
	Create(c *CheckIn) error
	Update(c *CheckIn) error
	Delete(id int64) error

	UserName(userID int64) (string, error)
	ProjectTitle(projectID int64) (string, error)
	ProjectExists(projectID int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit records a daily check-in for the current user. Only one check-in per
// user per calendar date is allowed.
func (s *Service) Submit(current *user.User, dto CreateCheckInDTO) (*CheckInView, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	date := internal.Today()

	if dto.ProjectID != nil {
		exists, err := s.repo.ProjectExists(*dto.ProjectID)
		if err != nil {
			return nil, internal.NewInternalError("Error creating check-in", err)
		}
		if !exists {
			return nil, internal.ErrProjectNotFound
		}
	}

	existing, err := s.repo.GetByUserAndDate(current.ID, date)
	if err != nil {
		s.logger.Error("failed to check for existing check-in", "error", err, "user_id", current.ID)
		return nil, internal.NewInternalError("Error creating check-in", err)
	}
	if existing != nil {
		return nil, internal.ErrCheckInExists
	}

	c := &CheckIn{
		UserID:         current.ID,
		ProjectID:      dto.ProjectID,
		CheckInDate:    date,
		MoodRating:     dto.MoodRating,
		Comment:        dto.Comment,
		WorkLoadRating: dto.WorkLoadRating,
		StressLevel:    dto.StressLevel,
	}

	if err := s.repo.Create(c); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to create check-in", "error", err, "user_id", current.ID)
		return nil, internal.NewInternalError("Error creating check-in", err)
	}

	s.logger.Info("check-in created", "checkin_id", c.ID, "user_id", current.ID, "date", date.String())
	return s.buildView(c)
}

// Get returns a single check-in. Employees can only read their own.
func (s *Service) Get(current *user.User, id int64) (*CheckInView, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCheckInNotFound
	}

	if c.UserID != current.ID && !current.IsAdmin() {
		return nil, internal.ErrAccessDenied
	}

	return s.buildView(c)
}

// Update modifies a check-in. Employees can only update their own.
func (s *Service) Update(current *user.User, id int64, dto UpdateCheckInDTO) (*CheckInView, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCheckInNotFound
	}

	if c.UserID != current.ID && !current.IsAdmin() {
		return nil, internal.ErrAccessDenied
	}

	if dto.ProjectID != nil {
		exists, err := s.repo.ProjectExists(*dto.ProjectID)
		if err != nil {
			return nil, internal.NewInternalError("Error updating check-in", err)
		}
		if !exists {
			return nil, internal.ErrProjectNotFound
		}
		c.ProjectID = dto.ProjectID
	}

	if dto.MoodRating != nil {
		c.MoodRating = *dto.MoodRating
	}
	if dto.Comment != nil {
		c.Comment = dto.Comment
	}
	if dto.WorkLoadRating != nil {
		c.WorkLoadRating = dto.WorkLoadRating
	}
	if dto.StressLevel != nil {
		c.StressLevel = dto.StressLevel
	}

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update check-in", "error", err, "checkin_id", id)
		return nil, internal.NewInternalError("Error updating check-in", err)
	}

	return s.buildView(c)
}

// Delete removes a check-in. Employees can only delete their own.
func (s *Service) Delete(current *user.User, id int64) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return internal.ErrCheckInNotFound
	}

	if c.UserID != current.ID && !current.IsAdmin() {
		return internal.ErrAccessDenied
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete check-in", "error", err, "checkin_id", id)
		return internal.NewInternalError("Error deleting check-in", err)
	}

	s.logger.Info("check-in deleted", "checkin_id", id, "user_id", current.ID)
	return nil
}

// MyCheckins returns the current user's check-ins, newest date first, with an
// optional date range.
func (s *Service) MyCheckins(current *user.User, start, end *internal.Date, page, perPage int) ([]*CheckInView, internal.Pagination, error) {
	page, perPage = internal.NormalizePageParams(page, perPage)

	filter := ListFilter{
		UserID:    &current.ID,
		StartDate: start,
		EndDate:   end,
	}
	checkins, total, err := s.repo.List(filter, perPage, (page-1)*perPage)
	if err != nil {
		s.logger.Error("failed to list check-ins", "error", err, "user_id", current.ID)
		return nil, internal.Pagination{}, internal.NewInternalError("Error fetching check-ins", err)
	}

	views, err := s.buildViews(checkins)
	if err != nil {
		return nil, internal.Pagination{}, err
	}

	return views, internal.NewPagination(page, perPage, total), nil
}

// ListAll returns check-ins across all users, filtered and paginated.
// Intended for admin callers; the route guards access.
func (s *Service) ListAll(filter ListFilter, page, perPage int) ([]*CheckInView, internal.Pagination, error) {
	page, perPage = internal.NormalizePageParams(page, perPage)

	checkins, total, err := s.repo.List(filter, perPage, (page-1)*perPage)
	if err != nil {
		s.logger.Error("failed to list check-ins", "error", err)
		return nil, internal.Pagination{}, internal.NewInternalError("Error fetching check-ins", err)
	}

	views, err := s.buildViews(checkins)
	if err != nil {
		return nil, internal.Pagination{}, err
	}

	return views, internal.NewPagination(page, perPage, total), nil
}

// WeeklySummary aggregates check-ins over the Monday-to-Sunday week
// containing today, optionally narrowed to a team or project. The selected
// check-ins are returned alongside the aggregates.
func (s *Service) WeeklySummary(filter ListFilter) (*WeeklySummary, []*CheckInView, error) {
	weekStart := internal.Today().StartOfWeek()
	weekEnd := weekStart.AddDays(6)

	checkins, err := s.repo.ListBetween(filter, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("failed to load weekly check-ins", "error", err)
		return nil, nil, internal.NewInternalError("Error fetching weekly summary", err)
	}

	views, err := s.buildViews(checkins)
	if err != nil {
		return nil, nil, err
	}

	summary := &WeeklySummary{
		WeekStart:    weekStart,
		WeekEnd:      weekEnd,
		CheckInCount: len(checkins),
	}

	if len(checkins) == 0 {
		return summary, views, nil
	}

	var moodSum int
	var workloadSum, workloadCount int
	var stressSum, stressCount int
	for _, c := range checkins {
		moodSum += c.MoodRating
		if c.WorkLoadRating != nil {
			workloadSum += *c.WorkLoadRating
			workloadCount++
		}
		if c.StressLevel != nil {
			stressSum += *c.StressLevel
			stressCount++
		}
	}

	summary.AvgMood = Round2(float64(moodSum) / float64(len(checkins)))
	if workloadCount > 0 {
		summary.AvgWorkload = Round2(float64(workloadSum) / float64(workloadCount))
	}
	if stressCount > 0 {
		summary.AvgStress = Round2(float64(stressSum) / float64(stressCount))
	}

	return summary, views, nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) buildViews(checkins []*CheckIn) ([]*CheckInView, error) {
	views := make([]*CheckInView, 0, len(checkins))
	for _, c := range checkins {
		view, err := s.buildView(c)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) buildView(c *CheckIn) (*CheckInView, error) {
	userName, err := s.repo.UserName(c.UserID)
	if err != nil {
		s.logger.Error("failed to resolve user name", "error", err, "user_id", c.UserID)
		return nil, internal.NewInternalError("Error fetching check-in", err)
	}

	var projectTitle *string
	if c.ProjectID != nil {
		title, err := s.repo.ProjectTitle(*c.ProjectID)
		if err != nil {
			return nil, internal.NewInternalError("Error fetching check-in", err)
		}
		if title != "" {
			projectTitle = &title
		}
	}

	return NewCheckInView(c, userName, projectTitle), nil
}
