package handler

import (
	"net/http"
	"strconv"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler serves account management endpoints.
type AccountHandler struct {
	Accounts *ledger.Accounts
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{Accounts: ledger.NewAccounts(db)}
}

type accountResp struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Balance string `json:"balance"`
}

func toAccountResp(a *models.Account) accountResp {
	return accountResp{
		ID:      a.ID,
		Name:    a.Name,
		Kind:    a.Kind,
		Balance: ledger.FormatCents(a.BalanceCent),
	}
}

// List returns all accounts of the user plus the grand total.
func (h *AccountHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	accounts, err := h.Accounts.List(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}
	total, err := h.Accounts.TotalBalance(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}

	items := make([]accountResp, 0, len(accounts))
	for i := range accounts {
		items = append(items, toAccountResp(&accounts[i]))
	}

	util.Success(c, util.Response{
		"accounts":      items,
		"total_balance": ledger.FormatCents(total),
	})
}

// Summary returns the three most recent accounts plus the grand total.
func (h *AccountHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	accounts, total, err := h.Accounts.Summary(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(accounts))
	for i := range accounts {
		items = append(items, gin.H{
			"name":    accounts[i].Name,
			"balance": ledger.FormatCents(accounts[i].BalanceCent),
		})
	}

	util.Success(c, util.Response{
		"accounts":      items,
		"total_balance": ledger.FormatCents(total),
	})
}

type createAccountReq struct {
	Name           string `json:"name" binding:"required,max=100"`
	OpeningBalance string `json:"opening_balance"`
}

func (h *AccountHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if req.OpeningBalance == "" {
		req.OpeningBalance = "0"
	}

	acc, err := h.Accounts.Create(user.ID, req.Name, req.OpeningBalance)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"account": toAccountResp(acc),
	})
}

type renameAccountReq struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (h *AccountHandler) Rename(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid account id")
		return
	}

	var req renameAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	acc, err := h.Accounts.Rename(user.ID, uint(id), req.Name)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"account": toAccountResp(acc),
	})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid account id")
		return
	}

	if err := h.Accounts.Delete(user.ID, uint(id)); err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "account deleted",
	})
}
