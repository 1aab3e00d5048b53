package models

import "time"

// Transaction is an immutable ledger row. Kind is "income" or
// "expense": income credits AccountID, expense debits it. A transfer
// is one expense row plus one income row written together.
//
// CategoryLabel is a free-text copy of the category name, not a
// foreign key: the Category table is kept in sync lazily by the
// ledger, and deleting a category leaves old rows untouched.
type Transaction struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	Kind          string    `gorm:"size:16;index;not null"` // income / expense
	Date          time.Time `gorm:"index;not null"`
	AmountCent    int64     `gorm:"not null"` // always > 0; Kind carries the sign
	CategoryLabel string    `gorm:"size:100;not null"`
	AccountID     uint      `gorm:"index;not null"`
	CreatedAt     time.Time

	User    User    `gorm:"constraint:OnDelete:CASCADE"`
	Account Account `gorm:"constraint:OnDelete:CASCADE"`
}
