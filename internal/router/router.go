package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/handlers"
	"marketplace_admin/internal/middleware"
	"marketplace_admin/internal/services"
)

// Services bundles what the HTTP layer needs from the composition root.
type Services struct {
	Staff      services.StaffService
	Promotions services.PromotionService
	Reviews    services.ReviewService
	Finance    services.FinanceService
	Catalog    services.CatalogService
	Dashboard  services.DashboardService
}

// Setup initializes the routing for the application. clock supplies the
// request time when the caller does not pin one.
func Setup(engine *gin.Engine, svc Services, clock func() time.Time) {
	// Initialize Handlers
	staffHandler := handlers.NewStaffHandler(svc.Staff)
	promotionHandler := handlers.NewPromotionHandler(svc.Promotions)
	reviewHandler := handlers.NewReviewHandler(svc.Reviews)
	financeHandler := handlers.NewFinanceHandler(svc.Finance)
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.RequestClock(clock))
	{
		SetupStaffRoutes(apiV1, staffHandler)
		SetupRoleRoutes(apiV1, staffHandler)
		SetupPromotionRoutes(apiV1, promotionHandler)
		SetupReviewRoutes(apiV1, reviewHandler)
		SetupFinanceRoutes(apiV1, financeHandler)
		SetupShopRoutes(apiV1, catalogHandler)
		SetupProductRoutes(apiV1, catalogHandler)
		SetupDashboardRoutes(apiV1, dashboardHandler)
	}
}
