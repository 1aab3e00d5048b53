package models

import "time"

// Account is a named money account belonging to one user.
// Balances are stored in cents to avoid float drift; 12.34 = 1234.
// Every user owns exactly one protected "Cash" account created at
// registration, which can never be renamed or deleted.
type Account struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null;uniqueIndex:uniq_user_account"`
	Name        string `gorm:"size:100;not null;uniqueIndex:uniq_user_account"`
	Kind        string `gorm:"size:50"` // free-text label, e.g. "Cash", "Default"
	BalanceCent int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
