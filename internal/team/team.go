package team

import "time"

// Team groups users and owns projects. A team cannot be deleted while it
// still owns either.
type Team struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamView is the list/detail shape with ownership counts attached.
type TeamView struct {
	Team
	MemberCount  int64 `json:"member_count"`
	ProjectCount int64 `json:"project_count"`
}
