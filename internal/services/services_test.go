package services

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/pkg/utils"
)

var testNow = time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)

func testClock() func() time.Time {
	now := testNow
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr[T any](v T) *T { return &v }

type testServices struct {
	staff      StaffService
	promotions PromotionService
	reviews    ReviewService
	finance    FinanceService
	catalog    CatalogService
	dashboard  DashboardService
}

func newTestServices() testServices {
	clock := testClock()
	formatter := utils.NewCurrencyFormatter("en", "VND")

	staff := NewStaffService(NewStaffStore(clock))
	promotions := NewPromotionService(NewPromotionStore(clock))
	reviews := NewReviewService(NewReviewStore(clock))
	finance := NewFinanceService(NewTransactionStore(clock, nil), formatter, time.Monday)
	catalog := NewCatalogService(NewShopStore(clock), NewProductStore(clock))

	return testServices{
		staff:      staff,
		promotions: promotions,
		reviews:    reviews,
		finance:    finance,
		catalog:    catalog,
		dashboard:  NewDashboardService(staff, promotions, reviews, finance, catalog, formatter),
	}
}
