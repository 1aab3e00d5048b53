package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams the user's transactions as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) load(userID uint) ([]models.Transaction, map[uint]string, error) {
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txs).Error; err != nil {
		return nil, nil, err
	}

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, nil, err
	}
	names := make(map[uint]string, len(accounts))
	for i := range accounts {
		names[accounts[i].ID] = accounts[i].Name
	}
	return txs, names, nil
}

// ExportCSV exports transactions as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, names, err := h.load(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Type", "Category", "Amount", "Account", "Date"})
	for i := range txs {
		t := &txs[i]
		writer.Write([]string{
			t.Kind,
			t.CategoryLabel,
			ledger.FormatCents(t.AmountCent),
			names[t.AccountID],
			t.Date.Format("2006-01-02"),
		})
	}
}

// ExportXLSX exports transactions as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, names, err := h.load(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Type", "Category", "Amount", "Account", "Date"}
	for i, hd := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx := range txs {
		t := &txs[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.CategoryLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ledger.FormatCents(t.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), names[t.AccountID])
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Date.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 18)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
