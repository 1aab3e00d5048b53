package ledger

import (
	"errors"
	"strings"

	"github.com/6610685031/cn331-project-budgy/internal/models"

	"gorm.io/gorm"
)

// DefaultAccountName is the one account per user created at
// registration that can never be renamed or deleted.
const DefaultAccountName = "Cash"

// Accounts manages named money accounts. Balance mutations happen
// only through the Ledger; this store covers create/rename/delete
// and read-side queries.
type Accounts struct {
	DB *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{DB: db}
}

// Create inserts a new account with kind "Default". The opening
// balance may be any signed number, including zero.
func (s *Accounts) Create(userID uint, name, openingBalance string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	cents, err := ParseCents(openingBalance)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	var count int64
	if err := s.DB.Model(&models.Account{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	acc := models.Account{
		UserID:      userID,
		Name:        name,
		Kind:        "Default",
		BalanceCent: cents,
	}
	if err := s.DB.Create(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateDefault seeds the protected default account for a new user.
func (s *Accounts) CreateDefault(tx *gorm.DB, userID uint) error {
	acc := models.Account{
		UserID: userID,
		Name:   DefaultAccountName,
		Kind:   "Cash",
	}
	return tx.Create(&acc).Error
}

// Rename changes an account's name. The default account is
// protected, and the new name must be unique for the user.
func (s *Accounts) Rename(userID, accountID uint, newName string) (*models.Account, error) {
	acc, err := s.get(userID, accountID)
	if err != nil {
		return nil, err
	}
	if acc.Name == DefaultAccountName {
		return nil, ErrProtectedAccount
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrEmptyName
	}

	var count int64
	if err := s.DB.Model(&models.Account{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, newName, acc.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	if err := s.DB.Model(acc).Update("name", newName).Error; err != nil {
		return nil, err
	}
	acc.Name = newName
	return acc, nil
}

// Delete removes an account. The default account is protected, and
// the balance must be exactly zero.
func (s *Accounts) Delete(userID, accountID uint) error {
	acc, err := s.get(userID, accountID)
	if err != nil {
		return err
	}
	if acc.Name == DefaultAccountName {
		return ErrProtectedAccount
	}
	if acc.BalanceCent != 0 {
		return ErrNonZeroBalance
	}
	return s.DB.Delete(acc).Error
}

// List returns all accounts of the user, newest first.
func (s *Accounts) List(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := s.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&accounts).Error
	return accounts, err
}

// Summary returns the three most recent accounts plus the grand
// total balance across all of them.
func (s *Accounts) Summary(userID uint) ([]models.Account, int64, error) {
	var accounts []models.Account
	if err := s.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(3).
		Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	total, err := s.TotalBalance(userID)
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// TotalBalance sums balances across all accounts of the user.
func (s *Accounts) TotalBalance(userID uint) (int64, error) {
	var total int64
	err := s.DB.Model(&models.Account{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(balance_cent), 0)").
		Scan(&total).Error
	return total, err
}

// GetByName resolves an account by name for the user.
func (s *Accounts) GetByName(userID uint, name string) (*models.Account, error) {
	return getAccountByName(s.DB, userID, name)
}

func (s *Accounts) get(userID, accountID uint) (*models.Account, error) {
	var acc models.Account
	if err := s.DB.Where("id = ? AND user_id = ?", accountID, userID).
		First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func getAccountByName(tx *gorm.DB, userID uint, name string) (*models.Account, error) {
	var acc models.Account
	if err := tx.Where("user_id = ? AND name = ?", userID, strings.TrimSpace(name)).
		First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}
