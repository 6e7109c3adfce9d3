package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq" // For pq.Error
	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
)

// TransactionArchive mirrors ledger entries into Postgres so they survive a restart.
type TransactionArchive interface {
	ArchiveTransaction(ctx context.Context, txn models.Transaction) error
	LoadArchived(ctx context.Context) ([]models.Transaction, error)
}

type postgresTransactionArchive struct {
	db *sql.DB
}

// NewPostgresTransactionArchive creates a TransactionArchive backed by db.
func NewPostgresTransactionArchive(db *sql.DB) TransactionArchive {
	return &postgresTransactionArchive{db: db}
}

func (r *postgresTransactionArchive) ArchiveTransaction(ctx context.Context, txn models.Transaction) error {
	query := `INSERT INTO transactions_archive
	            (id, kind, amount, description, occurred_at, status, related_shop_id, fee, category, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var relatedShopID sql.NullInt64
	var fee decimal.NullDecimal
	var category sql.NullString
	if txn.Revenue != nil {
		if txn.Revenue.RelatedShopID != nil {
			relatedShopID = sql.NullInt64{Int64: *txn.Revenue.RelatedShopID, Valid: true}
		}
		fee = decimal.NewNullDecimal(txn.Revenue.Fee)
	}
	if txn.Expense != nil {
		category = sql.NullString{String: txn.Expense.Category, Valid: true}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning archive transaction: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, query,
		txn.ID, string(txn.Kind), txn.Amount, txn.Description, txn.OccurredAt,
		string(txn.Status), relatedShopID, fee, category, txn.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: transaction %d is already archived", ErrDuplicateKey, txn.ID)
		}
		return fmt.Errorf("%w: archiving transaction %d: %v", ErrDatabaseError, txn.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing archived transaction %d: %v", ErrDatabaseError, txn.ID, err)
	}
	return nil
}

// LoadArchived returns the archived ledger newest first, the order RecordStore keeps.
func (r *postgresTransactionArchive) LoadArchived(ctx context.Context) ([]models.Transaction, error) {
	query := `SELECT id, kind, amount, description, occurred_at, status, related_shop_id, fee, category, created_at
	          FROM transactions_archive
	          ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying archived transactions: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		var kind, status string
		var relatedShopID sql.NullInt64
		var fee decimal.NullDecimal
		var category sql.NullString

		if err := rows.Scan(
			&txn.ID, &kind, &txn.Amount, &txn.Description, &txn.OccurredAt,
			&status, &relatedShopID, &fee, &category, &txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning archived transaction: %v", ErrDatabaseError, err)
		}
		txn.Kind = models.TransactionKind(kind)
		txn.Status = models.TransactionStatus(status)

		switch txn.Kind {
		case models.TransactionRevenue:
			detail := &models.RevenueDetail{}
			if relatedShopID.Valid {
				shopID := relatedShopID.Int64
				detail.RelatedShopID = &shopID
			}
			if fee.Valid {
				detail.Fee = fee.Decimal
			}
			txn.Revenue = detail
		case models.TransactionExpense:
			if category.Valid {
				txn.Expense = &models.ExpenseDetail{Category: category.String}
			}
		}
		txns = append(txns, txn)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating archived transaction rows: %v", ErrDatabaseError, err)
	}
	return txns, nil
}

// ArchiveHook adapts an archive into a commit hook for the transaction store.
// Only creates are mirrored; ledger entries are never updated or deleted.
func ArchiveHook(archive TransactionArchive, timeout time.Duration) CommitHook[models.Transaction] {
	return func(op Operation, txn models.Transaction) error {
		if op != OpCreate {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return archive.ArchiveTransaction(ctx, txn)
	}
}
