package models

import "time"

// Category is a per-user label for one transaction kind.
// (user, kind, name) is unique. Categories referenced by a new
// transaction are created lazily if they do not exist yet.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null;uniqueIndex:uniq_user_kind_category"`
	Kind      string `gorm:"size:16;not null;uniqueIndex:uniq_user_kind_category"` // income / expense / transfer
	Name      string `gorm:"size:100;not null;uniqueIndex:uniq_user_kind_category"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
