package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/services"
)

var seedNow = time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)

func newStores() Stores {
	clock := func() time.Time { return seedNow }
	return Stores{
		Staff:        services.NewStaffStore(clock),
		Shops:        services.NewShopStore(clock),
		Products:     services.NewProductStore(clock),
		Promotions:   services.NewPromotionStore(clock),
		Reviews:      services.NewReviewStore(clock),
		Transactions: services.NewTransactionStore(clock, nil),
	}
}

func TestLoadFile_AppliesFixtures(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8, f.Count())

	stores := newStores()
	require.NoError(t, f.Apply(stores))

	mai, err := stores.Staff.Get(5)
	require.NoError(t, err)
	assert.Equal(t, models.StaffStatusActive, mai.Status)
	assert.Equal(t, []models.PermissionKey{
		models.PermissionOrderManagement,
		models.PermissionProductManagement,
		models.PermissionReviewManagement,
	}, mai.Permissions)

	// Records without an id continue after the highest seeded one.
	ha, err := stores.Staff.Get(6)
	require.NoError(t, err)
	assert.Equal(t, []models.PermissionKey{models.PermissionFinanceManagement}, ha.Permissions)
	assert.Equal(t, seedNow, ha.CreatedAt)

	product, err := stores.Products.Get(1)
	require.NoError(t, err)
	assert.Equal(t, models.ProductOutOfStock, product.Status)

	promo, err := stores.Promotions.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"fashion", "beauty"}, promo.ApplicableProducts.Categories)
	assert.Equal(t, models.SegmentAll, promo.ApplicableUsers)
	assert.True(t, promo.MaxDiscount.Equal(decimal.NewFromInt(200_000)))

	review, err := stores.Reviews.Get(1)
	require.NoError(t, err)
	require.NotNil(t, review.Report)
	assert.Equal(t, "Duplicate review", review.Report.Reason)

	txn, err := stores.Transactions.Get(1)
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("1500000.50")))
	assert.Equal(t, models.TransactionCompleted, txn.Status)
	require.NotNil(t, txn.Revenue)
	assert.Equal(t, int64(1), *txn.Revenue.RelatedShopID)
}

func TestLoadFile_Missing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Zero(t, f.Count())

	f, err = LoadFile("")
	require.NoError(t, err)
	assert.Zero(t, f.Count())
}

func TestParse_Rejections(t *testing.T) {
	_, err := Parse([]byte("staf:\n  - name: typo\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("promotions:\n  - applicable_products: some\n"))
	assert.Error(t, err)

	f, err := Parse([]byte("   \n"))
	require.NoError(t, err)
	assert.Zero(t, f.Count())
}

func TestApply_Rejections(t *testing.T) {
	t.Run("unknown role", func(t *testing.T) {
		f, err := Parse([]byte("staff:\n  - name: X\n    email: x@marketplace.vn\n    role: owner\n"))
		require.NoError(t, err)
		assert.Error(t, f.Apply(newStores()))
	})

	t.Run("product of unknown shop", func(t *testing.T) {
		f, err := Parse([]byte("products:\n  - shop_id: 9\n    name: Orphan\n    category: misc\n    price: 1\n"))
		require.NoError(t, err)
		assert.ErrorIs(t, f.Apply(newStores()), repositories.ErrNotFound)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		f, err := Parse([]byte("shops:\n  - id: 1\n    name: A\n    owner_name: A\n    email: a@x.vn\n  - id: 1\n    name: B\n    owner_name: B\n    email: b@x.vn\n"))
		require.NoError(t, err)
		stores := newStores()
		assert.ErrorIs(t, f.Apply(stores), repositories.ErrDuplicateKey)
		assert.Zero(t, stores.Shops.Len())
	})
}

func TestDemoSeedFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	require.NotZero(t, f.Count())
	assert.NoError(t, f.Apply(newStores()))
}
