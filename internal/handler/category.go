package handler

import (
	"net/http"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves category management endpoints.
type CategoryHandler struct {
	Categories *ledger.Categories
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{Categories: ledger.NewCategories(db)}
}

// List returns the user's categories, optionally filtered with
// ?type=income|expense|transfer.
func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	kind := c.Query("type")
	if kind != "" && !ledger.ValidKind(kind) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category type")
		return
	}

	cats, err := h.Categories.List(user.ID, kind)
	if err != nil {
		ledgerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(cats))
	for i := range cats {
		items = append(items, gin.H{
			"id":   cats[i].ID,
			"name": cats[i].Name,
			"type": cats[i].Kind,
		})
	}

	util.Success(c, util.Response{
		"categories": items,
	})
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=100"`
	Kind string `json:"type" binding:"required,oneof=income expense transfer"`
}

// Add creates the category if it does not exist yet. Idempotent.
func (h *CategoryHandler) Add(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	cat, err := h.Categories.Ensure(user.ID, req.Name, req.Kind)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"category": gin.H{
			"id":   cat.ID,
			"name": cat.Name,
			"type": cat.Kind,
		},
	})
}

// Delete removes the matching category; absent categories are a no-op.
func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := h.Categories.Delete(user.ID, req.Name, req.Kind); err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "category deleted",
	})
}
