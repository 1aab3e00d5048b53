package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/config"
	"github.com/6610685031/cn331-project-budgy/internal/mail"
	"github.com/6610685031/cn331-project-budgy/internal/models"
	"github.com/6610685031/cn331-project-budgy/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordResetHandler serves the forgot-password and reset flows.
type PasswordResetHandler struct {
	DB         *gorm.DB
	Sender     mail.Sender
	BaseURL    string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewPasswordResetHandler(db *gorm.DB, sender mail.Sender, cfg *config.Config) *PasswordResetHandler {
	ttlHours := cfg.Security.ResetTokenHours
	if ttlHours <= 0 {
		ttlHours = 1
	}
	cost := cfg.Security.BcryptCost
	if cost <= 0 {
		cost = 12
	}
	return &PasswordResetHandler{
		DB:         db,
		Sender:     sender,
		BaseURL:    strings.TrimRight(cfg.Mail.ResetBaseURL, "/"),
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: cost,
	}
}

type forgotPasswordReq struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword issues a single-use token and mails the reset link.
func (h *PasswordResetHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("LOWER(email) = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Email not found.")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load user")
		}
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := h.DB.Create(&reset).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create reset token")
		return
	}

	link := fmt.Sprintf("%s/reset-password?uid=%d&token=%s", h.BaseURL, user.ID, reset.Token)
	body := fmt.Sprintf(
		"Hi %s,\n\nUse the link below to reset your Budgy password. It expires in %s.\n\n%s\n\nIf you did not request this, ignore this mail.",
		user.Username, h.TokenTTL, link,
	)
	if err := h.Sender.Send(user.Email, "Reset your Budgy password", body); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to send reset mail")
		return
	}

	util.Success(c, util.Response{
		"message": "reset link sent, check your mailbox",
	})
}

type resetPasswordReq struct {
	UserID          uint   `json:"uid" binding:"required"`
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPassword consumes a valid token and sets the new password.
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if req.Password != req.ConfirmPassword {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Passwords do not match.")
		return
	}
	if !isStrongPassword(req.Password) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "password must be 8-32 characters with upper, lower and digit")
		return
	}

	var reset models.PasswordReset
	err := h.DB.Where("user_id = ? AND token = ?", req.UserID, req.Token).
		First(&reset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid reset link.")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load reset token")
		}
		return
	}

	now := time.Now()
	if reset.UsedAt != nil || now.After(reset.ExpiresAt) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Reset link expired or invalid.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", req.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used_at", &now).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to reset password")
		return
	}

	util.Success(c, util.Response{
		"message": "Password reset successfully.",
	})
}
