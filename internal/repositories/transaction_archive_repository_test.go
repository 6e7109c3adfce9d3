package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
)

func revenueTxn() models.Transaction {
	shopID := int64(7)
	return models.Transaction{
		ID:          3,
		Kind:        models.TransactionRevenue,
		Amount:      decimal.NewFromInt(1_500_000),
		Description: "Commission",
		OccurredAt:  time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC),
		Status:      models.TransactionCompleted,
		Revenue:     &models.RevenueDetail{RelatedShopID: &shopID, Fee: decimal.NewFromInt(45_000)},
		CreatedAt:   time.Date(2025, 9, 19, 10, 0, 1, 0, time.UTC),
	}
}

func TestPostgresTransactionArchive_Archive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	archive := NewPostgresTransactionArchive(db)
	txn := revenueTxn()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions_archive")).
		WithArgs(int64(3), "revenue", sqlmock.AnyArg(), "Commission", sqlmock.AnyArg(),
			"completed", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	require.NoError(t, archive.ArchiveTransaction(context.Background(), txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTransactionArchive_ArchiveDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	archive := NewPostgresTransactionArchive(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions_archive")).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err = archive.ArchiveTransaction(context.Background(), revenueTxn())
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTransactionArchive_LoadArchived(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	archive := NewPostgresTransactionArchive(db)
	at := time.Date(2025, 9, 19, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "kind", "amount", "description", "occurred_at", "status", "related_shop_id", "fee", "category", "created_at"}).
		AddRow(int64(2), "expense", "500000", "Ads", at, "completed", nil, nil, "marketing", at).
		AddRow(int64(1), "revenue", "1500000", "Commission", at, "completed", int64(7), "45000", nil, at)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, amount")).WillReturnRows(rows)

	txns, err := archive.LoadArchived(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, models.TransactionExpense, txns[0].Kind)
	require.NotNil(t, txns[0].Expense)
	assert.Equal(t, "marketing", txns[0].Expense.Category)
	assert.Nil(t, txns[0].Revenue)

	require.NotNil(t, txns[1].Revenue)
	assert.Equal(t, int64(7), *txns[1].Revenue.RelatedShopID)
	assert.True(t, txns[1].Revenue.Fee.Equal(decimal.NewFromInt(45_000)))
	assert.True(t, txns[1].Amount.Equal(decimal.NewFromInt(1_500_000)))
	assert.NoError(t, txns[1].Validate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveHook_OnlyMirrorsCreates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hook := ArchiveHook(NewPostgresTransactionArchive(db), time.Second)

	require.NoError(t, hook(OpDelete, revenueTxn()))
	assert.NoError(t, mock.ExpectationsWereMet(), "delete must not touch the database")
}
