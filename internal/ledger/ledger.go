package ledger

import (
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/models"

	"gorm.io/gorm"
)

// Ledger records immutable income/expense rows and is the only place
// account balances change. Each Record* call runs inside one database
// transaction: the row insert and the balance update commit together
// or not at all, and balance updates go through SQL expressions so
// concurrent writers never lose an update.
type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// RecordIncome validates the amount, resolves the destination
// account, lazily creates the category, then inserts one income row
// and credits the account.
func (l *Ledger) RecordIncome(userID uint, date time.Time, amount, categoryName, accountName string) (*models.Transaction, error) {
	cents, err := ParsePositiveCents(amount)
	if err != nil {
		return nil, err
	}

	var created models.Transaction
	err = l.DB.Transaction(func(tx *gorm.DB) error {
		acc, err := getAccountByName(tx, userID, accountName)
		if err != nil {
			return err
		}

		if _, err := ensureCategory(tx, userID, categoryName, KindIncome); err != nil {
			return err
		}

		created = models.Transaction{
			UserID:        userID,
			Kind:          KindIncome,
			Date:          date,
			AmountCent:    cents,
			CategoryLabel: categoryName,
			AccountID:     acc.ID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return creditAccount(tx, acc.ID, cents)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RecordExpense is symmetric to RecordIncome but debits the source
// account. Balances may go negative: overdraft is allowed.
func (l *Ledger) RecordExpense(userID uint, date time.Time, amount, categoryName, accountName string) (*models.Transaction, error) {
	cents, err := ParsePositiveCents(amount)
	if err != nil {
		return nil, err
	}

	var created models.Transaction
	err = l.DB.Transaction(func(tx *gorm.DB) error {
		acc, err := getAccountByName(tx, userID, accountName)
		if err != nil {
			return err
		}

		if _, err := ensureCategory(tx, userID, categoryName, KindExpense); err != nil {
			return err
		}

		created = models.Transaction{
			UserID:        userID,
			Kind:          KindExpense,
			Date:          date,
			AmountCent:    cents,
			CategoryLabel: categoryName,
			AccountID:     acc.ID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return creditAccount(tx, acc.ID, -cents)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RecordTransfer moves amount between two accounts of the user as
// one expense row against the source plus one income row against
// the destination, both carrying the same category label. The two
// rows and both balance updates commit as a single unit.
// Transfers from an account to itself are rejected.
func (l *Ledger) RecordTransfer(userID uint, date time.Time, amount, categoryName, fromName, toName string) error {
	cents, err := ParsePositiveCents(amount)
	if err != nil {
		return err
	}

	return l.DB.Transaction(func(tx *gorm.DB) error {
		from, err := getAccountByName(tx, userID, fromName)
		if err != nil {
			return err
		}
		to, err := getAccountByName(tx, userID, toName)
		if err != nil {
			return err
		}
		if from.ID == to.ID {
			return ErrSameAccount
		}

		if _, err := ensureCategory(tx, userID, categoryName, KindTransfer); err != nil {
			return err
		}

		out := models.Transaction{
			UserID:        userID,
			Kind:          KindExpense,
			Date:          date,
			AmountCent:    cents,
			CategoryLabel: categoryName,
			AccountID:     from.ID,
		}
		in := models.Transaction{
			UserID:        userID,
			Kind:          KindIncome,
			Date:          date,
			AmountCent:    cents,
			CategoryLabel: categoryName,
			AccountID:     to.ID,
		}
		if err := tx.Create(&out).Error; err != nil {
			return err
		}
		if err := tx.Create(&in).Error; err != nil {
			return err
		}

		if err := creditAccount(tx, from.ID, -cents); err != nil {
			return err
		}
		return creditAccount(tx, to.ID, cents)
	})
}

// CategoryOnlyUpdate serves the submission endpoints when the caller
// sent category names but no transaction date: it delegates to the
// Category Store and performs no ledger or balance mutation.
func (l *Ledger) CategoryOnlyUpdate(userID uint, kind, addName, deleteName string) error {
	cats := NewCategories(l.DB)
	if deleteName != "" {
		if err := cats.Delete(userID, deleteName, kind); err != nil {
			return err
		}
	}
	if addName != "" {
		if _, err := cats.Ensure(userID, addName, kind); err != nil {
			return err
		}
	}
	return nil
}

func creditAccount(tx *gorm.DB, accountID uint, deltaCents int64) error {
	return tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		UpdateColumn("balance_cent", gorm.Expr("balance_cent + ?", deltaCents)).Error
}
