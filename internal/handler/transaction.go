package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the recording endpoints. Each submission
// endpoint is dual-purpose: with a date it records a transaction,
// without one it only adds/deletes a category of that kind. The
// discriminator is the presence of the date field, not an action flag.
type TransactionHandler struct {
	Ledger *ledger.Ledger
	Stats  *ledger.Stats
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{
		Ledger: ledger.NewLedger(db),
		Stats:  ledger.NewStats(db),
	}
}

type submitReq struct {
	Date               string `json:"date"`
	Amount             string `json:"amount"`
	CategoryName       string `json:"category_name"`
	DeleteCategoryName string `json:"delete_category_name"`
	Account            string `json:"account"`      // income / expense
	FromAccount        string `json:"from_account"` // transfer
	ToAccount          string `json:"to_account"`   // transfer
}

func (h *TransactionHandler) Income(c *gin.Context) {
	h.submit(c, ledger.KindIncome)
}

func (h *TransactionHandler) Expense(c *gin.Context) {
	h.submit(c, ledger.KindExpense)
}

func (h *TransactionHandler) Transfer(c *gin.Context) {
	h.submit(c, ledger.KindTransfer)
}

func (h *TransactionHandler) submit(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	// category maintenance only: no date supplied
	if req.Date == "" {
		if req.CategoryName == "" && req.DeleteCategoryName == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "nothing to do")
			return
		}
		if err := h.Ledger.CategoryOnlyUpdate(user.ID, kind, req.CategoryName, req.DeleteCategoryName); err != nil {
			ledgerError(c, err)
			return
		}
		util.Success(c, util.Response{
			"message": "categories updated",
		})
		return
	}

	if req.CategoryName == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please choose a category")
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date, use YYYY-MM-DD")
		return
	}

	switch kind {
	case ledger.KindIncome:
		tx, err := h.Ledger.RecordIncome(user.ID, date, req.Amount, req.CategoryName, req.Account)
		if err != nil {
			ledgerError(c, err)
			return
		}
		util.Success(c, util.Response{
			"transaction": toTransactionResp(tx),
		})
	case ledger.KindExpense:
		tx, err := h.Ledger.RecordExpense(user.ID, date, req.Amount, req.CategoryName, req.Account)
		if err != nil {
			ledgerError(c, err)
			return
		}
		util.Success(c, util.Response{
			"transaction": toTransactionResp(tx),
		})
	case ledger.KindTransfer:
		if err := h.Ledger.RecordTransfer(user.ID, date, req.Amount, req.CategoryName, req.FromAccount, req.ToAccount); err != nil {
			ledgerError(c, err)
			return
		}
		util.Success(c, util.Response{
			"message": "transfer recorded",
		})
	}
}

func toTransactionResp(t *models.Transaction) gin.H {
	return gin.H{
		"id":       t.ID,
		"type":     t.Kind,
		"date":     t.Date.Format("2006-01-02"),
		"amount":   ledger.FormatCents(t.AmountCent),
		"category": t.CategoryLabel,
	}
}

// Spendings lists transactions filtered with ?mode=daily&date=...,
// ?mode=monthly&month=YYYY-MM or ?mode=yearly&year=YYYY. Without a
// mode it returns everything, newest first.
func (h *TransactionHandler) Spendings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var start, end *time.Time
	switch c.Query("mode") {
	case "daily":
		if dateStr := c.Query("date"); dateStr != "" {
			d, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date, use YYYY-MM-DD")
				return
			}
			e := d.AddDate(0, 0, 1)
			start, end = &d, &e
		}
	case "monthly":
		if monthStr := c.Query("month"); monthStr != "" {
			d, err := time.Parse("2006-01", monthStr)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid month, use YYYY-MM")
				return
			}
			e := d.AddDate(0, 1, 0)
			start, end = &d, &e
		}
	case "yearly":
		if yearStr := c.Query("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil || year <= 0 {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
				return
			}
			d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			e := d.AddDate(1, 0, 0)
			start, end = &d, &e
		}
	}

	items, err := h.Stats.Spendings(user.ID, start, end)
	if err != nil {
		ledgerError(c, err)
		return
	}

	spendings := make([]gin.H, 0, len(items))
	for _, it := range items {
		spendings = append(spendings, gin.H{
			"category": it.Category,
			"amount":   ledger.FormatCents(it.AmountCent),
			"type":     it.Kind,
			"date":     it.Date.Format("2006-01-02"),
		})
	}

	util.Success(c, util.Response{
		"spendings": spendings,
	})
}
