package models

import "time"

// PasswordReset is a single-use, expiring token mailed to the user
// by the forgot-password flow.
type PasswordReset struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"index;not null"`
	Token     string     `gorm:"size:64;uniqueIndex;not null"` // UUID
	ExpiresAt time.Time  `gorm:"index;not null"`
	UsedAt    *time.Time
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
