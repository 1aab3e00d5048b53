package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler serves the read-only aggregation endpoints feeding
// the charts and the mascot widget.
type StatsHandler struct {
	Stats *ledger.Stats
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{Stats: ledger.NewStats(db)}
}

// Summary feeds the pie chart: ?year=YYYY&month=MM&type=income|expense.
func (h *StatsHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	kind := c.Query("type")

	rows, total, err := h.Stats.CategoryBreakdown(user.ID, kind, year, month)
	if err != nil {
		ledgerError(c, err)
		return
	}

	labels := make([]string, 0, len(rows))
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
		values = append(values, ledger.FormatCents(r.TotalCent))
	}

	util.Success(c, util.Response{
		"labels":        labels,
		"values":        values,
		"overall_total": ledger.FormatCents(total),
	})
}

// Yearly feeds the line chart: ?year=YYYY.
func (h *StatsHandler) Yearly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	year, _ := strconv.Atoi(c.Query("year"))

	incomes, expenses, err := h.Stats.YearlySeries(user.ID, year)
	if err != nil {
		ledgerError(c, err)
		return
	}

	labels := make([]string, 12)
	income := make([]string, 12)
	expense := make([]string, 12)
	for i := 0; i < 12; i++ {
		labels[i] = time.Month(i + 1).String()
		income[i] = ledger.FormatCents(incomes[i])
		expense[i] = ledger.FormatCents(expenses[i])
	}

	util.Success(c, util.Response{
		"labels":  labels,
		"income":  income,
		"expense": expense,
	})
}

// Filters returns the dropdown data for the stats page: years with
// any transaction and months with any expense, newest first.
func (h *StatsHandler) Filters(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	years, err := h.Stats.DistinctYears(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}

	months, err := h.Stats.ExpenseMonths(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}

	expenseMonths := make([]gin.H, 0, len(months))
	for _, ym := range months {
		expenseMonths = append(expenseMonths, gin.H{
			"value": ym.Value(),
			"text":  ym.Text(),
		})
	}

	util.Success(c, util.Response{
		"years":          years,
		"expense_months": expenseMonths,
	})
}

// Home returns the home-page snapshot: total balance, month-to-date
// income/expense and the expense percentage.
func (h *StatsHandler) Home(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	total, income, expense, pct, err := h.Stats.HomeSnapshot(user.ID, time.Now())
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"total_balance":      ledger.FormatCents(total),
		"month_income":       ledger.FormatCents(income),
		"month_expense":      ledger.FormatCents(expense),
		"expense_percentage": pct,
	})
}

// Mood returns the financial-health snapshot behind the mascot widget.
func (h *StatsHandler) Mood(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	mood, err := h.Stats.FinancialMood(user.ID, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute mood")
		return
	}

	util.Success(c, util.Response{
		"total_balance": ledger.FormatCents(mood.TotalBalanceCent),
		"month_income":  ledger.FormatCents(mood.MonthIncomeCent),
		"month_expense": ledger.FormatCents(mood.MonthExpenseCent),
		"saving_rate":   mood.SavingRate,
		"status":        mood.Status,
		"advice":        mood.Advice,
	})
}
