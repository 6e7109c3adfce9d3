package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

var serverNow = time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	clock := func() time.Time { return serverNow }
	formatter := utils.NewCurrencyFormatter("en", "VND")

	staff := services.NewStaffService(services.NewStaffStore(clock))
	promotions := services.NewPromotionService(services.NewPromotionStore(clock))
	reviews := services.NewReviewService(services.NewReviewStore(clock))
	finance := services.NewFinanceService(services.NewTransactionStore(clock, nil), formatter, time.Monday)
	catalog := services.NewCatalogService(services.NewShopStore(clock), services.NewProductStore(clock))

	engine := gin.New()
	Setup(engine, Services{
		Staff:      staff,
		Promotions: promotions,
		Reviews:    reviews,
		Finance:    finance,
		Catalog:    catalog,
		Dashboard:  services.NewDashboardService(staff, promotions, reviews, finance, catalog, formatter),
	}, clock)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[errorEnvelope](t, w).Error.Code
}

func TestPing(t *testing.T) {
	w := do(t, newTestEngine(), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestStaffRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodPost, "/api/v1/staff", gin.H{"name": "Tran Thi Mai", "email": "mai@shop.vn", "role": "moderator"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.StaffMember](t, w)
	assert.ElementsMatch(t, []models.PermissionKey{
		models.PermissionProductManagement,
		models.PermissionOrderManagement,
		models.PermissionReviewManagement,
	}, created.Permissions)

	w = do(t, engine, http.MethodPost, "/api/v1/staff", gin.H{"name": "X", "email": "x@shop.vn", "role": "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.ErrCodeUnknownRole, errorCode(t, w))

	w = do(t, engine, http.MethodPost, "/api/v1/staff", gin.H{"name": "X", "email": "not-an-email", "role": "support"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.ErrCodeValidationFailed, errorCode(t, w))

	w = do(t, engine, http.MethodPatch, "/api/v1/staff/1/status", gin.H{"status": "suspended"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StaffStatusSuspended, decode[models.StaffMember](t, w).Status)

	w = do(t, engine, http.MethodPost, "/api/v1/staff/1/toggle-status", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/staff/1/login?now=2025-09-18T08:30:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	loggedIn := decode[models.StaffMember](t, w)
	require.NotNil(t, loggedIn.LastLoginAt)
	assert.True(t, loggedIn.LastLoginAt.Equal(time.Date(2025, 9, 18, 8, 30, 0, 0, time.UTC)))

	w = do(t, engine, http.MethodPost, "/api/v1/staff/99/login", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/staff?role=moderator", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data  []models.StaffMember `json:"data"`
		Total int                  `json:"total"`
	}](t, w)
	assert.Equal(t, 1, list.Total)

	w = do(t, engine, http.MethodGet, "/api/v1/staff/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.StaffStats](t, w).ByStatus[models.StaffStatusSuspended])

	w = do(t, engine, http.MethodDelete, "/api/v1/staff/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, engine, http.MethodDelete, "/api/v1/staff/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.ErrCodeNotFound, errorCode(t, w))

	w = do(t, engine, http.MethodGet, "/api/v1/staff/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodGet, "/api/v1/roles/admin/permissions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Permissions []models.PermissionKey `json:"permissions"`
	}](t, w)
	assert.Len(t, body.Permissions, len(models.PermissionCatalog))

	w = do(t, engine, http.MethodGet, "/api/v1/roles/janitor/permissions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.ErrCodeUnknownRole, errorCode(t, w))

	w = do(t, engine, http.MethodGet, "/api/v1/roles", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPromotionRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodPost, "/api/v1/promotions", gin.H{
		"name":                "Flash sale",
		"type":                "percentage",
		"value":               20,
		"min_order_value":     300000,
		"max_discount":        200000,
		"start_at":            "2025-09-01T00:00:00Z",
		"end_at":              "2025-09-30T23:59:59Z",
		"max_usage":           1,
		"applicable_products": []string{"fashion"},
		"applicable_users":    "all",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Promotion](t, w)
	assert.Equal(t, models.PromotionActive, created.Status)
	assert.Equal(t, []string{"fashion"}, created.ApplicableProducts.Categories)

	order := gin.H{"order_value": 2000000, "product_categories": []string{"Fashion"}}

	w = do(t, engine, http.MethodPost, "/api/v1/promotions/1/eligibility", order)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	quote := decode[services.EligibilityQuote](t, w)
	assert.True(t, quote.Result.Eligible)
	assert.True(t, quote.Discount.Equal(decimal.NewFromInt(200_000)))

	w = do(t, engine, http.MethodPost, "/api/v1/promotions/1/redeem", order)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, engine, http.MethodPost, "/api/v1/promotions/1/redeem", order)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.ErrCodeUsageLimitExceeded, errorCode(t, w))

	w = do(t, engine, http.MethodGet, "/api/v1/promotions/1?now=2025-10-02T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PromotionExpired, decode[models.Promotion](t, w).Status)

	w = do(t, engine, http.MethodPost, "/api/v1/promotions/1/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PromotionPaused, decode[models.Promotion](t, w).Status)

	w = do(t, engine, http.MethodGet, "/api/v1/promotions?status=paused", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = do(t, engine, http.MethodPost, "/api/v1/promotions", gin.H{"name": "Broken", "type": "percentage", "value": 120, "start_at": "2025-09-01T00:00:00Z", "end_at": "2025-09-30T00:00:00Z", "max_usage": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodPost, "/api/v1/reviews", gin.H{
		"product_id": 7, "product_name": "Non la", "customer_name": "Ha", "customer_email": "ha@mail.vn", "rating": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, engine, http.MethodPost, "/api/v1/reviews/1/report", gin.H{"reason": "spam"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReviewReported, decode[models.Review](t, w).Status)

	w = do(t, engine, http.MethodPatch, "/api/v1/reviews/1/status", gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodPatch, "/api/v1/reviews/1/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/reviews/1/helpful", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.Review](t, w).HelpfulCount)

	w = do(t, engine, http.MethodGet, "/api/v1/reviews/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.ReviewStats](t, w)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)

	w = do(t, engine, http.MethodGet, "/api/v1/reviews?rating=five", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinanceAndDashboardRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodPost, "/api/v1/finance/transactions", gin.H{
		"kind": "revenue", "amount": 1500000, "description": "Payout", "occurred_at": "2025-09-19T08:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(t, engine, http.MethodPost, "/api/v1/finance/transactions", gin.H{
		"kind": "expense", "amount": 500000, "description": "Ads", "occurred_at": "2025-09-19T09:00:00Z", "category": "marketing",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, engine, http.MethodGet, "/api/v1/finance/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[models.FinanceOverview](t, w)
	assert.True(t, overview.Periods[models.PeriodToday].Profit.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, overview.Periods[models.PeriodThisMonth].Profit.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, overview.Summary.TotalRevenue.Equal(decimal.NewFromInt(1_500_000)))

	w = do(t, engine, http.MethodGet, "/api/v1/finance/overview?now=2025-09-20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview = decode[models.FinanceOverview](t, w)
	assert.True(t, overview.Periods[models.PeriodToday].Profit.IsZero())
	assert.True(t, overview.Periods[models.PeriodThisWeek].Profit.Equal(decimal.NewFromInt(1_000_000)))

	w = do(t, engine, http.MethodGet, "/api/v1/finance/transactions?kind=expense", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = do(t, engine, http.MethodGet, "/api/v1/finance/transactions?kind=refund", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.DashboardSummary](t, w)
	assert.True(t, summary.ProfitThisMonth.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "1,500,000 VND", summary.FormattedRevenue)
}

func TestCatalogRoutes(t *testing.T) {
	engine := newTestEngine()

	w := do(t, engine, http.MethodPost, "/api/v1/products", gin.H{"shop_id": 1, "name": "Ao dai", "category": "fashion", "price": 850000, "stock": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/shops", gin.H{"name": "Lua Ha Dong", "owner_name": "An", "email": "an@luahadong.vn"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, engine, http.MethodPost, "/api/v1/products", gin.H{"shop_id": 1, "name": "Ao dai", "category": "fashion", "price": 850000, "stock": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, engine, http.MethodDelete, "/api/v1/shops/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.ErrCodeConflict, errorCode(t, w))

	w = do(t, engine, http.MethodGet, "/api/v1/shops/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.CatalogStats](t, w)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 1, stats.ShopsByStatus[models.ShopPending])
}
