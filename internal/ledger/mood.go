package ledger

import "time"

// Mood statuses.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodDanger  = "danger"
)

// Advice strings shown by the mascot widget, keyed by situation.
const (
	adviceNoActivity = "No activity yet this month. Record a transaction to get started!"
	adviceNoIncome   = "Your expenses are outpacing your income this month. Time to slow down."
	adviceHappy      = "Great job! You are saving well this month. Keep it up!"
	adviceNeutral    = "You are doing okay, but there is room to save a little more."
	adviceDanger     = "Careful! Spending is eating up most of your income this month."
)

// Mood is the financial-health snapshot behind the mascot widget.
type Mood struct {
	TotalBalanceCent int64   `json:"total_balance_cent"`
	MonthIncomeCent  int64   `json:"month_income_cent"`
	MonthExpenseCent int64   `json:"month_expense_cent"`
	SavingRate       float64 `json:"saving_rate"`
	Status           string  `json:"status"`
	Advice           string  `json:"advice"`
}

// FinancialMood classifies the user's month on the saving rate
// (income-expense)/income*100:
//
//	no income, no expense -> rate 100, happy
//	no income, expense    -> rate 0, danger
//	rate >= 66            -> happy
//	rate <= 33            -> danger
//	otherwise             -> neutral
func (s *Stats) FinancialMood(userID uint, now time.Time) (*Mood, error) {
	total, err := NewAccounts(s.DB).TotalBalance(userID)
	if err != nil {
		return nil, err
	}
	income, expense, err := s.MonthlyTotals(userID, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}

	m := &Mood{
		TotalBalanceCent: total,
		MonthIncomeCent:  income,
		MonthExpenseCent: expense,
	}

	switch {
	case income == 0 && expense == 0:
		m.SavingRate = 100
		m.Status = MoodHappy
		m.Advice = adviceNoActivity
	case income == 0:
		m.SavingRate = 0
		m.Status = MoodDanger
		m.Advice = adviceNoIncome
	default:
		m.SavingRate = ratio(income-expense, income)
		switch {
		case m.SavingRate >= 66:
			m.Status = MoodHappy
			m.Advice = adviceHappy
		case m.SavingRate <= 33:
			m.Status = MoodDanger
			m.Advice = adviceDanger
		default:
			m.Status = MoodNeutral
			m.Advice = adviceNeutral
		}
	}
	return m, nil
}
