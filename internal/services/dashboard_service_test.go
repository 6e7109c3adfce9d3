package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
)

func TestDashboardService_Summary(t *testing.T) {
	s := newTestServices()

	shop := newShop(t, s.catalog)
	_, err := s.catalog.UpdateShop(shop.ID, UpdateShopRequest{Status: ptr(models.ShopActive)})
	require.NoError(t, err)
	_, err = s.catalog.CreateProduct(CreateProductRequest{ShopID: shop.ID, Name: "Non la", Category: "accessories", Price: dec(120_000), Stock: 5})
	require.NoError(t, err)

	newModerator(t, s.staff)
	_, err = s.promotions.CreatePromotion(flashSale(), testNow)
	require.NoError(t, err)

	newReview(t, s.reviews, 4)
	reported := newReview(t, s.reviews, 2)
	_, err = s.reviews.ReportReview(reported.ID, "fake review")
	require.NoError(t, err)

	_, err = s.finance.CreateTransaction(CreateTransactionRequest{Kind: models.TransactionRevenue, Amount: dec(2_000_000), Description: "Payout"}, testNow)
	require.NoError(t, err)
	_, err = s.finance.CreateTransaction(CreateTransactionRequest{Kind: models.TransactionExpense, Amount: dec(400_000), Description: "Server"}, testNow)
	require.NoError(t, err)

	summary := s.dashboard.GetDashboardSummary(testNow)

	assert.True(t, summary.RevenueToday.Equal(dec(2_000_000)))
	assert.True(t, summary.ProfitThisMonth.Equal(dec(1_600_000)))
	assert.Equal(t, 1, summary.ActiveShops)
	assert.Equal(t, 1, summary.ActiveProducts)
	assert.Equal(t, 1, summary.ActiveStaff)
	assert.Equal(t, 1, summary.ActivePromotions)
	assert.Equal(t, 1, summary.PendingReviews)
	assert.Equal(t, 1, summary.ReportedReviews)
	assert.InDelta(t, 3.0, summary.AverageRating, 1e-9)
	assert.Equal(t, "2,000,000 VND", summary.FormattedRevenue)
}
