package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/ledger"
	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the gin context.
// Writes the 401 reply itself when absent.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// ledgerError maps core errors onto the JSON envelope. Unknown
// errors are persistence failures and get a generic 500.
func ledgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, ledger.ErrMissingParameters),
		errors.Is(err, ledger.ErrMissingYear):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, ledger.ErrAccountNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, ledger.ErrDuplicateName),
		errors.Is(err, ledger.ErrNonZeroBalance):
		util.Error(c, http.StatusConflict, util.CodeConflict, err.Error())
	case errors.Is(err, ledger.ErrProtectedAccount):
		util.Error(c, http.StatusForbidden, util.CodeForbidden, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed, please retry")
	}
}

// parseDate accepts the date formats the clients send. Only the
// civil date matters for bucketing, so the result is truncated to
// midnight UTC of the stated day regardless of any offset.
func parseDate(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00+07:00
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
