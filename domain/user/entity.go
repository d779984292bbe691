package user

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;type:text"`
	PasswordHash string `gorm:"not null;type:text"`
	CreatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Claims is the identity asserted by a verified bearer token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
