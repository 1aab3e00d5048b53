package models

import "time"

// Profile holds per-user presentation settings. Created lazily via
// EnsureProfile before any settings read.
type Profile struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"uniqueIndex;not null"`
	AvatarFile string `gorm:"size:255;default:default.png"`
	ShowMascot bool   `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
