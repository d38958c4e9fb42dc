package checkin

import (
	"time"

	internal "github.com/frahmantamala/teampulse/internal"
)

const (
	MinRating = 1
	MaxRating = 5
)

var moodLabels = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Neutral",
	4: "Good",
	5: "Excellent",
}

var workloadLabels = map[int]string{
	1: "Very Light",
	2: "Light",
	3: "Moderate",
	4: "Heavy",
	5: "Very Heavy",
}

var stressLabels = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Moderate",
	4: "High",
	5: "Very High",
}

// MoodLabel maps a mood rating to its display label. Out-of-range values
// come back as "Unknown" rather than failing the whole response.
func MoodLabel(rating int) string {
	if label, ok := moodLabels[rating]; ok {
		return label
	}
	return "Unknown"
}

func WorkloadLabel(rating *int) *string {
	return optionalLabel(workloadLabels, rating)
}

func StressLabel(rating *int) *string {
	return optionalLabel(stressLabels, rating)
}

func optionalLabel(labels map[int]string, rating *int) *string {
	if rating == nil {
		return nil
	}
	label, ok := labels[*rating]
	if !ok {
		label = "Unknown"
	}
	return &label
}

// CheckIn records how a user felt on a given day. At most one row exists per
// user per calendar date, enforced by a unique index.
type CheckIn struct {
	ID             int64         `json:"id" gorm:"primaryKey"`
	UserID         int64         `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:idx_checkins_user_date"`
	ProjectID      *int64        `json:"project_id" gorm:"column:project_id"`
	CheckInDate    internal.Date `json:"check_in_date" gorm:"column:check_in_date;not null;uniqueIndex:idx_checkins_user_date"`
	MoodRating     int           `json:"mood_rating" gorm:"column:mood_rating;not null"`
	Comment        *string       `json:"comment" gorm:"column:comment"`
	WorkLoadRating *int          `json:"work_load_rating" gorm:"column:work_load_rating"`
	StressLevel    *int          `json:"stress_level" gorm:"column:stress_level"`
	CreatedAt      time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (CheckIn) TableName() string {
	return "checkins"
}

// CheckInView decorates a check-in with labels and resolved names.
type CheckInView struct {
	CheckIn
	MoodLabel     string  `json:"mood_label"`
	WorkloadLabel *string `json:"work_load_label"`
	StressLabel   *string `json:"stress_label"`
	UserName      string  `json:"user_name,omitempty"`
	ProjectTitle  *string `json:"project_title,omitempty"`
}

func NewCheckInView(c *CheckIn, userName string, projectTitle *string) *CheckInView {
	return &CheckInView{
		CheckIn:       *c,
		MoodLabel:     MoodLabel(c.MoodRating),
		WorkloadLabel: WorkloadLabel(c.WorkLoadRating),
		StressLabel:   StressLabel(c.StressLevel),
		UserName:      userName,
		ProjectTitle:  projectTitle,
	}
}

// WeeklySummary aggregates check-ins for a Monday-to-Sunday week. Averages
// are zero when the week has no check-ins.
type WeeklySummary struct {
	WeekStart    internal.Date `json:"week_start"`
	WeekEnd      internal.Date `json:"week_end"`
	CheckInCount int           `json:"check_in_count"`
	AvgMood      float64       `json:"avg_mood"`
	AvgWorkload  float64       `json:"avg_workload"`
	AvgStress    float64       `json:"avg_stress"`
}
