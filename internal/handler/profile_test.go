package handler

import (
	"net/http"
	"testing"

	"github.com/6610685031/cn331-project-budgy/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newProfileRouter(db *gorm.DB, user *models.User, bcryptCost int) *gin.Engine {
	r := gin.New()
	h := NewProfileHandler(db, "testdata", bcryptCost)
	g := r.Group("/api", asUser(user))
	g.GET("/profile", h.Get)
	g.PUT("/profile/mascot", h.UpdateMascot)
	g.POST("/profile/password", h.ChangePassword)
	return r
}

func TestProfileGetCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	r := newProfileRouter(db, user, 4)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.AvatarFile != "default.png" || !profile.ShowMascot {
		t.Errorf("profile defaults = %q/%v, want default.png/true", profile.AvatarFile, profile.ShowMascot)
	}
}

func TestUpdateMascot(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Sup3rSecret")
	r := newProfileRouter(db, user, 4)

	w := doJSON(t, r, http.MethodPut, "/api/profile/mascot", gin.H{"show_mascot": false})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var profile models.Profile
	db.Where("user_id = ?", user.ID).First(&profile)
	if profile.ShowMascot {
		t.Error("mascot still enabled after toggle off")
	}

	// the field is required, so an empty body is rejected
	w = doJSON(t, r, http.MethodPut, "/api/profile/mascot", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty toggle status = %d, want 400", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "OldPassw0rd")
	r := newProfileRouter(db, user, bcrypt.MinCost)

	w := doJSON(t, r, http.MethodPost, "/api/profile/password", gin.H{
		"old_password": "OldPassw0rd",
		"new_password": "NewPassw0rd",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(fresh.PasswordHash), []byte("NewPassw0rd")); err != nil {
		t.Errorf("new password not stored: %v", err)
	}

	// the hash is produced with the configured cost
	cost, err := bcrypt.Cost([]byte(fresh.PasswordHash))
	if err != nil {
		t.Fatalf("read hash cost: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Errorf("hash cost = %d, want %d", cost, bcrypt.MinCost)
	}
}

func TestChangePasswordRejections(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "OldPassw0rd")
	r := newProfileRouter(db, user, 4)

	cases := []struct {
		name string
		body gin.H
	}{
		{"wrong current password", gin.H{"old_password": "Guess1ng", "new_password": "NewPassw0rd"}},
		{"weak new password", gin.H{"old_password": "OldPassw0rd", "new_password": "weak"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/profile/password", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", w.Code, w.Body.String())
			}
		})
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(fresh.PasswordHash), []byte("OldPassw0rd")); err != nil {
		t.Error("password changed by a rejected request")
	}
}
