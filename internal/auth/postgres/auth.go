package postgres

import (
	"strings"
	"time"

	"github.com/frahmantamala/teampulse/internal/auth"
	"github.com/frahmantamala/teampulse/internal/user"
	"gorm.io/gorm"
)

// Repository implements auth.UserRepository using GORM
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.UserRepository {
	return &Repository{db: db}
}

// GetByEmail returns (nil, nil) when no account matches, so callers can
// tell a miss apart from a storage failure.
func (r *Repository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(id int64) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) UpdatePassword(id int64, passwordHash string) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		}).Error
}
