package services

import (
	"time"

	"marketplace_admin/internal/models"
	"marketplace_admin/pkg/utils"
)

// --- DashboardService Interface ---
type DashboardService interface {
	GetDashboardSummary(now time.Time) models.DashboardSummary
}

// --- dashboardService Implementation ---
type dashboardService struct {
	staff      StaffService
	promotions PromotionService
	reviews    ReviewService
	finance    FinanceService
	catalog    CatalogService
	formatter  *utils.CurrencyFormatter
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(staff StaffService, promotions PromotionService, reviews ReviewService, finance FinanceService, catalog CatalogService, formatter *utils.CurrencyFormatter) DashboardService {
	return &dashboardService{
		staff:      staff,
		promotions: promotions,
		reviews:    reviews,
		finance:    finance,
		catalog:    catalog,
		formatter:  formatter,
	}
}

func (s *dashboardService) GetDashboardSummary(now time.Time) models.DashboardSummary {
	overview := s.finance.GetOverview(now)
	catalog := s.catalog.GetCatalogStats()
	staff := s.staff.GetStaffStats()
	promotions := s.promotions.GetPromotionStats(now)
	reviews := s.reviews.GetReviewStats()

	month := overview.Periods[models.PeriodThisMonth]
	return models.DashboardSummary{
		RevenueToday:     overview.Periods[models.PeriodToday].Revenue,
		RevenueThisMonth: month.Revenue,
		ProfitThisMonth:  month.Profit,
		ActiveShops:      catalog.ShopsByStatus[models.ShopActive],
		ActiveProducts:   catalog.ProductsByState[models.ProductActive],
		ActiveStaff:      staff.ByStatus[models.StaffStatusActive],
		ActivePromotions: promotions.ByStatus[models.PromotionActive],
		PendingReviews:   reviews.ByStatus[models.ReviewPending],
		ReportedReviews:  reviews.ByStatus[models.ReviewReported],
		AverageRating:    reviews.AverageRating,
		FormattedRevenue: s.formatter.Format(month.Revenue),
	}
}
