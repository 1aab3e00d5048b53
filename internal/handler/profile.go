package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileHandler serves the settings page data: avatar and the
// mascot toggle, plus password change.
type ProfileHandler struct {
	DB         *gorm.DB
	UploadsDir string
	BcryptCost int
}

func NewProfileHandler(db *gorm.DB, uploadsDir string, bcryptCost int) *ProfileHandler {
	if bcryptCost <= 0 {
		bcryptCost = 12
	}
	return &ProfileHandler{DB: db, UploadsDir: uploadsDir, BcryptCost: bcryptCost}
}

// EnsureProfile returns the user's profile, creating the default one
// on first access. Idempotent.
func EnsureProfile(db *gorm.DB, userID uint) (*models.Profile, error) {
	profile := models.Profile{
		UserID:     userID,
		AvatarFile: "default.png",
		ShowMascot: true,
	}
	err := db.Where("user_id = ?", userID).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := EnsureProfile(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load profile")
		return
	}

	util.Success(c, util.Response{
		"profile": gin.H{
			"avatar":      "/uploads/" + profile.AvatarFile,
			"show_mascot": profile.ShowMascot,
		},
	})
}

type mascotReq struct {
	ShowMascot *bool `json:"show_mascot" binding:"required"`
}

// UpdateMascot toggles the mascot advice widget.
func (h *ProfileHandler) UpdateMascot(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req mascotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	profile, err := EnsureProfile(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load profile")
		return
	}

	if err := h.DB.Model(profile).Update("show_mascot", *req.ShowMascot).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update profile")
		return
	}

	util.Success(c, util.Response{
		"show_mascot": *req.ShowMascot,
	})
}

// UploadAvatar stores the uploaded image under the uploads dir with
// a fresh name and points the profile at it.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "avatar file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unsupported image type")
		return
	}

	profile, err := EnsureProfile(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load profile")
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.UploadsDir, name)); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to store avatar")
		return
	}

	if err := h.DB.Model(profile).Update("avatar_file", name).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update profile")
		return
	}

	util.Success(c, util.Response{
		"avatar": "/uploads/" + name,
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the old password and sets the new one.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "wrong current password")
		return
	}

	if !isStrongPassword(req.NewPassword) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be 8-32 characters with upper, lower and digit")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	if err := h.DB.Model(user).Update("password_hash", string(hash)).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
		return
	}

	util.Success(c, util.Response{
		"message": "password changed, please log in again",
	})
}
