package ledger

import (
	"strings"

	"github.com/6610685031/cn331-project-budgy/internal/models"

	"gorm.io/gorm"
)

// Transaction kinds.
const (
	KindIncome   = "income"
	KindExpense  = "expense"
	KindTransfer = "transfer"
)

// ValidKind reports whether kind names a transaction kind.
func ValidKind(kind string) bool {
	switch kind {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}

// Categories manages per-user, per-kind category labels.
// (user, kind, name) is unique.
type Categories struct {
	DB *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{DB: db}
}

// List returns all categories of the user, optionally filtered by kind.
func (s *Categories) List(userID uint, kind string) ([]models.Category, error) {
	q := s.DB.Where("user_id = ?", userID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var cats []models.Category
	err := q.Order("id ASC").Find(&cats).Error
	return cats, err
}

// Ensure returns the category matching (user, name, kind), creating
// it if absent. Idempotent.
func (s *Categories) Ensure(userID uint, name, kind string) (*models.Category, error) {
	return ensureCategory(s.DB, userID, name, kind)
}

// Delete removes the matching category. Deleting an absent category
// is a no-op, not an error.
func (s *Categories) Delete(userID uint, name, kind string) error {
	return s.DB.
		Where("user_id = ? AND name = ? AND kind = ?", userID, strings.TrimSpace(name), kind).
		Delete(&models.Category{}).Error
}

// SeedDefaults creates the starter category set for a new user.
func (s *Categories) SeedDefaults(tx *gorm.DB, userID uint) error {
	defaults := []models.Category{
		{UserID: userID, Kind: KindIncome, Name: "Salary"},
		{UserID: userID, Kind: KindExpense, Name: "Food"},
		{UserID: userID, Kind: KindTransfer, Name: "Bank Transfer"},
	}
	return tx.Create(&defaults).Error
}

func ensureCategory(tx *gorm.DB, userID uint, name, kind string) (*models.Category, error) {
	cat := models.Category{
		UserID: userID,
		Kind:   kind,
		Name:   strings.TrimSpace(name),
	}
	err := tx.Where("user_id = ? AND name = ? AND kind = ?", cat.UserID, cat.Name, cat.Kind).
		FirstOrCreate(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
