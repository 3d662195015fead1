package usersgorm

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&UserAccount{}) }

// CreateUser inserts u, assigning a UUID when the id is empty. Emails are stored lowercased.
func (r *Repo) CreateUser(ctx context.Context, u *UserAccount) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repo) UpdateUser(ctx context.Context, u *UserAccount) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*UserAccount, error) {
	var ur UserAccount
	if err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&ur).Error; err != nil {
		return nil, err
	}
	return &ur, nil
}

func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserAccount{}).Where("email = ?", normalizeEmail(email)).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }
