package ledger

import (
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/models"

	"gorm.io/gorm"
)

// Stats computes derived views over the ledger. All sums are int64
// cents; months with no activity contribute zero.
type Stats struct {
	DB *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{DB: db}
}

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Label     string `json:"label"`
	TotalCent int64  `json:"total_cent"`
}

// YearMonth identifies one calendar month with ledger activity.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Value renders the month as "2006-01" for selector values.
func (ym YearMonth) Value() string {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Text renders the month as "January 2006" for selector labels.
func (ym YearMonth) Text() string {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// SpendingItem is one row of the spending list.
type SpendingItem struct {
	Category   string    `json:"category"`
	AmountCent int64     `json:"amount_cent"`
	Kind       string    `json:"type"`
	Date       time.Time `json:"date"`
}

// MonthlyTotals returns the income and expense sums for one month,
// each zero when no rows match.
func (s *Stats) MonthlyTotals(userID uint, year, month int) (incomeCent, expenseCent int64, err error) {
	start, end := monthRange(year, month)

	incomeCent, err = s.sumKind(userID, KindIncome, start, end)
	if err != nil {
		return 0, 0, err
	}
	expenseCent, err = s.sumKind(userID, KindExpense, start, end)
	if err != nil {
		return 0, 0, err
	}
	return incomeCent, expenseCent, nil
}

// ExpenseRatio returns expense/income*100 for the month, or exactly
// 0 when the month's income is 0.
func (s *Stats) ExpenseRatio(userID uint, year, month int) (float64, error) {
	income, expense, err := s.MonthlyTotals(userID, year, month)
	if err != nil {
		return 0, err
	}
	return ratio(expense, income), nil
}

// CategoryBreakdown groups one month's rows of the given kind by
// category, sorted by total descending, and returns the grand total.
func (s *Stats) CategoryBreakdown(userID uint, kind string, year, month int) ([]CategoryTotal, int64, error) {
	if (kind != KindIncome && kind != KindExpense) || year <= 0 || month < 1 || month > 12 {
		return nil, 0, ErrMissingParameters
	}
	start, end := monthRange(year, month)

	rows := make([]CategoryTotal, 0)
	err := s.DB.Model(&models.Transaction{}).
		Select("category_label AS label, SUM(amount_cent) AS total_cent").
		Where("user_id = ? AND kind = ? AND date >= ? AND date < ?", userID, kind, start, end).
		Group("category_label").
		Order("total_cent DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	for _, r := range rows {
		total += r.TotalCent
	}
	return rows, total, nil
}

// YearlySeries returns two 12-element sequences (index 0 = January)
// of monthly income and expense sums for the year, zero-filled.
func (s *Stats) YearlySeries(userID uint, year int) (incomes, expenses [12]int64, err error) {
	if year <= 0 {
		return incomes, expenses, ErrMissingYear
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var txs []models.Transaction
	if err = s.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&txs).Error; err != nil {
		return incomes, expenses, err
	}

	for i := range txs {
		t := &txs[i]
		idx := int(t.Date.Month()) - 1
		if t.Kind == KindIncome {
			incomes[idx] += t.AmountCent
		} else {
			expenses[idx] += t.AmountCent
		}
	}
	return incomes, expenses, nil
}

// DistinctYears lists calendar years with any transaction, newest
// first.
func (s *Stats) DistinctYears(userID uint) ([]int, error) {
	var dates []time.Time
	if err := s.DB.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	years := make([]int, 0)
	seen := make(map[int]bool)
	for _, d := range dates {
		y := d.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	return years, nil
}

// ExpenseMonths lists distinct months with any expense, newest
// first, for the comparison selector.
func (s *Stats) ExpenseMonths(userID uint) ([]YearMonth, error) {
	var dates []time.Time
	if err := s.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND kind = ?", userID, KindExpense).
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	months := make([]YearMonth, 0)
	seen := make(map[YearMonth]bool)
	for _, d := range dates {
		ym := YearMonth{Year: d.Year(), Month: int(d.Month())}
		if !seen[ym] {
			seen[ym] = true
			months = append(months, ym)
		}
	}
	return months, nil
}

// Spendings returns the transaction list, optionally restricted to
// [start, end), newest first.
func (s *Stats) Spendings(userID uint, start, end *time.Time) ([]SpendingItem, error) {
	q := s.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date < ?", *end)
	}

	var txs []models.Transaction
	if err := q.Order("date DESC").Order("id DESC").Find(&txs).Error; err != nil {
		return nil, err
	}

	items := make([]SpendingItem, 0, len(txs))
	for i := range txs {
		t := &txs[i]
		items = append(items, SpendingItem{
			Category:   t.CategoryLabel,
			AmountCent: t.AmountCent,
			Kind:       t.Kind,
			Date:       t.Date,
		})
	}
	return items, nil
}

// HomeSnapshot gathers the home-page numbers: total balance across
// all accounts, month-to-date income and expense, and the expense
// percentage (0 when income is 0).
func (s *Stats) HomeSnapshot(userID uint, now time.Time) (totalCent, incomeCent, expenseCent int64, expensePct float64, err error) {
	totalCent, err = NewAccounts(s.DB).TotalBalance(userID)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	incomeCent, expenseCent, err = s.MonthlyTotals(userID, now.Year(), int(now.Month()))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return totalCent, incomeCent, expenseCent, ratio(expenseCent, incomeCent), nil
}

func (s *Stats) sumKind(userID uint, kind string, start, end time.Time) (int64, error) {
	var total int64
	err := s.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND kind = ? AND date >= ? AND date < ?", userID, kind, start, end).
		Select("COALESCE(SUM(amount_cent), 0)").
		Scan(&total).Error
	return total, err
}

func monthRange(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
