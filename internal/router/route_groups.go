package router

import (
	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/handlers"
)

// SetupStaffRoutes sets up the staff routes.
func SetupStaffRoutes(apiGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := apiGroup.Group("/staff")
	{
		staffRoutes.POST("", staffHandler.CreateStaffMember)
		staffRoutes.GET("", staffHandler.GetStaffMembers)
		staffRoutes.GET("/stats", staffHandler.GetStaffStats)
		staffRoutes.GET("/:id", staffHandler.GetStaffMemberByID)
		staffRoutes.PUT("/:id", staffHandler.UpdateStaffMember)
		staffRoutes.PATCH("/:id/status", staffHandler.SetStaffStatus)
		staffRoutes.POST("/:id/toggle-status", staffHandler.ToggleStaffStatus)
		staffRoutes.POST("/:id/login", staffHandler.RecordStaffLogin)
		staffRoutes.DELETE("/:id", staffHandler.DeleteStaffMember)
	}
}

// SetupRoleRoutes exposes the role permission templates.
func SetupRoleRoutes(apiGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	roleRoutes := apiGroup.Group("/roles")
	{
		roleRoutes.GET("", staffHandler.GetRoles)
		roleRoutes.GET("/:role/permissions", staffHandler.GetRolePermissions)
	}
}

// SetupPromotionRoutes sets up the promotion routes.
func SetupPromotionRoutes(apiGroup *gin.RouterGroup, promotionHandler *handlers.PromotionHandler) {
	promotionRoutes := apiGroup.Group("/promotions")
	{
		promotionRoutes.POST("", promotionHandler.CreatePromotion)
		promotionRoutes.GET("", promotionHandler.GetPromotions)
		promotionRoutes.GET("/stats", promotionHandler.GetPromotionStats)
		promotionRoutes.GET("/:id", promotionHandler.GetPromotionByID)
		promotionRoutes.PUT("/:id", promotionHandler.UpdatePromotion)
		promotionRoutes.POST("/:id/pause", promotionHandler.PausePromotion)
		promotionRoutes.POST("/:id/resume", promotionHandler.ResumePromotion)
		promotionRoutes.POST("/:id/eligibility", promotionHandler.CheckEligibility)
		promotionRoutes.POST("/:id/redeem", promotionHandler.RedeemPromotion)
		promotionRoutes.DELETE("/:id", promotionHandler.DeletePromotion)
	}
}

// SetupReviewRoutes sets up the review moderation routes.
func SetupReviewRoutes(apiGroup *gin.RouterGroup, reviewHandler *handlers.ReviewHandler) {
	reviewRoutes := apiGroup.Group("/reviews")
	{
		reviewRoutes.POST("", reviewHandler.CreateReview)
		reviewRoutes.GET("", reviewHandler.GetReviews)
		reviewRoutes.GET("/stats", reviewHandler.GetReviewStats)
		reviewRoutes.GET("/:id", reviewHandler.GetReviewByID)
		reviewRoutes.PATCH("/:id/status", reviewHandler.ModerateReview)
		reviewRoutes.POST("/:id/report", reviewHandler.ReportReview)
		reviewRoutes.POST("/:id/helpful", reviewHandler.MarkHelpful)
		reviewRoutes.DELETE("/:id", reviewHandler.DeleteReview)
	}
}

// SetupFinanceRoutes sets up the ledger and overview routes.
func SetupFinanceRoutes(apiGroup *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	financeRoutes := apiGroup.Group("/finance")
	{
		financeRoutes.POST("/transactions", financeHandler.CreateTransaction)
		financeRoutes.GET("/transactions", financeHandler.GetTransactions)
		financeRoutes.GET("/transactions/:id", financeHandler.GetTransactionByID)
		financeRoutes.GET("/overview", financeHandler.GetOverview)
	}
}

// SetupShopRoutes sets up the shop routes.
func SetupShopRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	shopRoutes := apiGroup.Group("/shops")
	{
		shopRoutes.POST("", catalogHandler.CreateShop)
		shopRoutes.GET("", catalogHandler.GetShops)
		shopRoutes.GET("/stats", catalogHandler.GetCatalogStats)
		shopRoutes.GET("/:id", catalogHandler.GetShopByID)
		shopRoutes.PUT("/:id", catalogHandler.UpdateShop)
		shopRoutes.DELETE("/:id", catalogHandler.DeleteShop)
	}
}

// SetupProductRoutes sets up the product routes.
func SetupProductRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	productRoutes := apiGroup.Group("/products")
	{
		productRoutes.POST("", catalogHandler.CreateProduct)
		productRoutes.GET("", catalogHandler.GetProducts)
		productRoutes.GET("/:id", catalogHandler.GetProductByID)
		productRoutes.PUT("/:id", catalogHandler.UpdateProduct)
		productRoutes.DELETE("/:id", catalogHandler.DeleteProduct)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(apiGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := apiGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/summary", dashboardHandler.GetDashboardSummary)
	}
}
