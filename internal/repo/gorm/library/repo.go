package library

import (
	"context"

	"gorm.io/gorm"
)

// Repo provides GORM-based persistence for library rows.
type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&UserGame{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

// Save writes every column, inserting the row when the key is new.
func (r *Repo) Save(ctx context.Context, g *UserGame) error { return r.db.WithContext(ctx).Save(g).Error }

func (r *Repo) Get(ctx context.Context, userID string, gameID int64) (*UserGame, error) {
	var g UserGame
	if err := r.db.WithContext(ctx).Where("user_id = ? AND game_id = ?", userID, gameID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListByUser returns the user's rows, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]*UserGame, error) {
	var arr []*UserGame
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("added_at ASC, game_id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, gameID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&UserGame{}).Error
}

// ListFavorites returns one page of favorite rows and the total favorite count.
func (r *Repo) ListFavorites(ctx context.Context, userID string, offset, limit int) ([]*UserGame, int64, error) {
	favorites := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&UserGame{}).Where("user_id = ? AND is_favorite = ?", userID, true)
	}
	var total int64
	if err := favorites().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var arr []*UserGame
	if total == 0 {
		return arr, 0, nil
	}
	if err := favorites().Order("added_at ASC, game_id ASC").Offset(offset).Limit(limit).Find(&arr).Error; err != nil {
		return nil, 0, err
	}
	return arr, total, nil
}
