package library

import "time"

// UserGame is one row of a user's library, keyed by (user_id, game_id).
type UserGame struct {
	UserID     string    `gorm:"primaryKey;size:64"`
	GameID     int64     `gorm:"primaryKey;autoIncrement:false"`
	Status     string    `gorm:"size:32;not null"`
	AddedAt    time.Time `gorm:"not null;index"`
	IsFavorite bool      `gorm:"not null;index"`
}

func (UserGame) TableName() string { return "user_games" }
