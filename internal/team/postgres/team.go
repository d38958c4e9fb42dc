package postgres

import (
	"time"

	"github.com/frahmantamala/teampulse/internal/team"
	"github.com/frahmantamala/teampulse/internal/user"
	"gorm.io/gorm"
)

// TeamRepository implements the team.Repository interface using GORM
type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.Repository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(id int64) (*team.Team, error) {
	var t team.Team
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) GetByName(name string) (*team.Team, error) {
	var t team.Team
	err := r.db.Where("name = ?", name).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) ListWithCounts() ([]*team.TeamView, error) {
	var teams []*team.Team
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}

	views := make([]*team.TeamView, 0, len(teams))
	for _, t := range teams {
		memberCount, err := r.MemberCount(t.ID)
		if err != nil {
			return nil, err
		}
		projectCount, err := r.ProjectCount(t.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, &team.TeamView{
			Team:         *t,
			MemberCount:  memberCount,
			ProjectCount: projectCount,
		})
	}
	return views, nil
}

func (r *TeamRepository) Members(teamID int64) ([]*user.User, error) {
	var members []*user.User
	err := r.db.Where("team_id = ?", teamID).Order("id ASC").Find(&members).Error
	return members, err
}

func (r *TeamRepository) MemberCount(teamID int64) (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *TeamRepository) ProjectCount(teamID int64) (int64, error) {
	var count int64
	err := r.db.Table("projects").Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *TeamRepository) Create(t *team.Team) error {
	return r.db.Create(t).Error
}

func (r *TeamRepository) Update(t *team.Team) error {
	t.UpdatedAt = time.Now()
	return r.db.Save(t).Error
}

func (r *TeamRepository) Delete(id int64) error {
	return r.db.Delete(&team.Team{}, id).Error
}

func (r *TeamRepository) SetUserTeam(userID int64, teamID *int64) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"team_id":    teamID,
			"updated_at": time.Now(),
		}).Error
}

func (r *TeamRepository) GetUser(userID int64) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
