package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newTransactionRouter(db *gorm.DB, user *models.User) *gin.Engine {
	r := gin.New()
	h := NewTransactionHandler(db)
	g := r.Group("/api", asUser(user))
	g.POST("/transactions/income", h.Income)
	g.POST("/transactions/expense", h.Expense)
	g.POST("/transactions/transfer", h.Transfer)
	g.GET("/spendings", h.Spendings)
	return r
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, name string, balanceCent int64) *models.Account {
	t.Helper()

	account := &models.Account{UserID: userID, Name: name, Kind: "Default", BalanceCent: balanceCent}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func TestSubmitIncome(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	account := seedAccount(t, db, user.ID, "Cash", 100000)
	r := newTransactionRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/transactions/income", gin.H{
		"date":          "2025-11-08",
		"amount":        "500",
		"category_name": "Salary",
		"account":       "Cash",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var fresh models.Account
	db.First(&fresh, account.ID)
	if fresh.BalanceCent != 150000 {
		t.Errorf("balance = %d, want 150000", fresh.BalanceCent)
	}

	body := decodeBody(t, w)
	data, _ := body["data"].(map[string]interface{})
	tx, _ := data["transaction"].(map[string]interface{})
	if tx["amount"] != "500.00" || tx["category"] != "Salary" {
		t.Errorf("transaction payload = %v", tx)
	}
}

// The submission endpoints double as category maintenance when no
// date is supplied.
func TestSubmitCategoryOnly(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	seedAccount(t, db, user.ID, "Cash", 0)
	r := newTransactionRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/transactions/expense", gin.H{
		"category_name": "Gym",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var category models.Category
	if err := db.Where("user_id = ? AND kind = ? AND name = ?", user.ID, ledger.KindExpense, "Gym").
		First(&category).Error; err != nil {
		t.Fatalf("category not created: %v", err)
	}

	var txs int64
	db.Model(&models.Transaction{}).Count(&txs)
	if txs != 0 {
		t.Errorf("transactions = %d, want 0", txs)
	}

	// neither add nor delete is a bad request
	w = doJSON(t, r, http.MethodPost, "/api/transactions/expense", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty submit status = %d, want 400", w.Code)
	}
}

func TestSubmitTransfer(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	cash := seedAccount(t, db, user.ID, "Cash", 200000)
	bank := seedAccount(t, db, user.ID, "Bank", 0)
	r := newTransactionRouter(db, user)

	w := doJSON(t, r, http.MethodPost, "/api/transactions/transfer", gin.H{
		"date":          "2025-11-08",
		"amount":        "800",
		"category_name": "Bank Transfer",
		"from_account":  "Cash",
		"to_account":    "Bank",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var from, to models.Account
	db.First(&from, cash.ID)
	db.First(&to, bank.ID)
	if from.BalanceCent != 120000 || to.BalanceCent != 80000 {
		t.Errorf("balances = %d/%d, want 120000/80000", from.BalanceCent, to.BalanceCent)
	}
}

func TestSubmitErrors(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	seedAccount(t, db, user.ID, "Cash", 0)
	r := newTransactionRouter(db, user)

	cases := []struct {
		name     string
		path     string
		body     gin.H
		wantCode int
	}{
		{
			"missing category",
			"/api/transactions/income",
			gin.H{"date": "2025-11-08", "amount": "10", "account": "Cash"},
			http.StatusBadRequest,
		},
		{
			"bad date",
			"/api/transactions/income",
			gin.H{"date": "08/11/2025", "amount": "10", "category_name": "Salary", "account": "Cash"},
			http.StatusBadRequest,
		},
		{
			"zero amount",
			"/api/transactions/expense",
			gin.H{"date": "2025-11-08", "amount": "0", "category_name": "Food", "account": "Cash"},
			http.StatusBadRequest,
		},
		{
			"unknown account",
			"/api/transactions/expense",
			gin.H{"date": "2025-11-08", "amount": "10", "category_name": "Food", "account": "Vault"},
			http.StatusNotFound,
		},
		{
			"same account transfer",
			"/api/transactions/transfer",
			gin.H{"date": "2025-11-08", "amount": "10", "category_name": "Bank Transfer", "from_account": "Cash", "to_account": "Cash"},
			http.StatusBadRequest,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, tc.path, tc.body)
			if w.Code != tc.wantCode {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}

	var txs int64
	db.Model(&models.Transaction{}).Count(&txs)
	if txs != 0 {
		t.Errorf("transactions = %d, want 0 after rejected submissions", txs)
	}
}

func TestSpendingsFilters(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	seedAccount(t, db, user.ID, "Cash", 0)
	r := newTransactionRouter(db, user)

	submit := func(date, amount string) {
		w := doJSON(t, r, http.MethodPost, "/api/transactions/expense", gin.H{
			"date": date, "amount": amount, "category_name": "Food", "account": "Cash",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("seed submit status = %d, body = %s", w.Code, w.Body.String())
		}
	}
	submit("2025-11-08", "40")
	submit("2025-11-09", "60")
	submit("2025-10-01", "10")

	get := func(path string) []interface{} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, body = %s", path, w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		data, _ := body["data"].(map[string]interface{})
		spendings, _ := data["spendings"].([]interface{})
		return spendings
	}

	if got := get("/api/spendings"); len(got) != 3 {
		t.Errorf("unfiltered = %d rows, want 3", len(got))
	}
	if got := get("/api/spendings?mode=monthly&month=2025-11"); len(got) != 2 {
		t.Errorf("monthly = %d rows, want 2", len(got))
	}
	if got := get("/api/spendings?mode=daily&date=2025-11-08"); len(got) != 1 {
		t.Errorf("daily = %d rows, want 1", len(got))
	}
	if got := get("/api/spendings?mode=yearly&year=2025"); len(got) != 3 {
		t.Errorf("yearly = %d rows, want 3", len(got))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/spendings?mode=daily&date=bad", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", w.Code)
	}
}
