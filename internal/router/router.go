package router

import (
	"github.com/6610685031/cn331-project-budgy/internal/config"
	"github.com/6610685031/cn331-project-budgy/internal/handler"
	"github.com/6610685031/cn331-project-budgy/internal/mail"
	"github.com/6610685031/cn331-project-budgy/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, sender mail.Sender) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// avatar files
	r.Static("/uploads", cfg.Uploads.Dir)

	api := r.Group("/api")

	// open endpoints
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	resetHandler := handler.NewPasswordResetHandler(db, sender, cfg)
	api.POST("/auth/forgot-password", resetHandler.ForgotPassword)
	api.POST("/auth/reset-password", resetHandler.ResetPassword)

	// endpoints behind login
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	accountHandler := handler.NewAccountHandler(db)
	protected.GET("/accounts", accountHandler.List)
	protected.GET("/accounts/summary", accountHandler.Summary)
	protected.POST("/accounts", accountHandler.Create)
	protected.PUT("/accounts/:id/rename", accountHandler.Rename)
	protected.DELETE("/accounts/:id", accountHandler.Delete)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Add)
	protected.DELETE("/categories", categoryHandler.Delete)

	txHandler := handler.NewTransactionHandler(db)
	protected.POST("/transactions/income", txHandler.Income)
	protected.POST("/transactions/expense", txHandler.Expense)
	protected.POST("/transactions/transfer", txHandler.Transfer)
	protected.GET("/spendings", txHandler.Spendings)

	statsHandler := handler.NewStatsHandler(db)
	protected.GET("/stats/summary", statsHandler.Summary)
	protected.GET("/stats/yearly", statsHandler.Yearly)
	protected.GET("/stats/filters", statsHandler.Filters)
	protected.GET("/stats/home", statsHandler.Home)
	protected.GET("/stats/mood", statsHandler.Mood)

	profileHandler := handler.NewProfileHandler(db, cfg.Uploads.Dir, cfg.Security.BcryptCost)
	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile/mascot", profileHandler.UpdateMascot)
	protected.POST("/profile/avatar", profileHandler.UploadAvatar)
	protected.POST("/profile/password", profileHandler.ChangePassword)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
