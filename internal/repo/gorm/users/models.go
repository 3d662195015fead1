package usersgorm

import "time"

// UserAccount is the stored account row. ID is a UUID string.
type UserAccount struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:64"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
}

func (UserAccount) TableName() string { return "users" }
