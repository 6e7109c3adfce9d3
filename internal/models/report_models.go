package models

import "github.com/shopspring/decimal"

// Period is a cumulative, calendar-aligned rollup window.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this_week"
	PeriodThisMonth Period = "this_month"
	PeriodThisYear  Period = "this_year"
)

// Periods lists the rollup windows from narrowest to widest.
var Periods = []Period{PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear}

// PeriodTotals holds the derived totals of one period bucket.
type PeriodTotals struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// SummaryStats sums a transaction set, counting each transaction once.
type SummaryStats struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	TotalFees        decimal.Decimal `json:"total_fees"`
	TransactionCount int             `json:"transaction_count"`
}

// FinanceOverview is the finance page payload.
type FinanceOverview struct {
	Periods            map[Period]PeriodTotals    `json:"periods"`
	Summary            SummaryStats               `json:"summary"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	RevenueByShop      map[int64]decimal.Decimal  `json:"revenue_by_shop"`
	Formatted          map[string]string          `json:"formatted"`
}

// StaffStats feeds the staff page stat cards.
type StaffStats struct {
	Total    int                 `json:"total"`
	ByStatus map[StaffStatus]int `json:"by_status"`
	ByRole   map[Role]int        `json:"by_role"`
}

// PromotionStats feeds the promotion page stat cards.
type PromotionStats struct {
	Total      int                     `json:"total"`
	ByStatus   map[PromotionStatus]int `json:"by_status"`
	TotalUsage int                     `json:"total_usage"`
}

// ReviewStats feeds the review page stat cards.
type ReviewStats struct {
	Total         int                  `json:"total"`
	ByStatus      map[ReviewStatus]int `json:"by_status"`
	AverageRating float64              `json:"average_rating"`
	Distribution  map[int]int          `json:"distribution"`
}

// CatalogStats counts shops and products by status.
type CatalogStats struct {
	Shops           int                   `json:"shops"`
	ShopsByStatus   map[ShopStatus]int    `json:"shops_by_status"`
	Products        int                   `json:"products"`
	ProductsByState map[ProductStatus]int `json:"products_by_status"`
}

// DashboardSummary holds key metrics for the admin home page.
type DashboardSummary struct {
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	ProfitThisMonth  decimal.Decimal `json:"profit_this_month"`
	ActiveShops      int             `json:"active_shops"`
	ActiveProducts   int             `json:"active_products"`
	ActiveStaff      int             `json:"active_staff"`
	ActivePromotions int             `json:"active_promotions"`
	PendingReviews   int             `json:"pending_reviews"`
	ReportedReviews  int             `json:"reported_reviews"`
	AverageRating    float64         `json:"average_rating"`
	FormattedRevenue string          `json:"formatted_revenue_this_month"`
}
