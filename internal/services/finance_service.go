package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/reports"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/pkg/utils"
)

// --- Transaction DTOs ---

// CreateTransactionRequest records a completed revenue or expense entry.
// RelatedShopID and Fee only apply to revenue, Category only to expenses.
// OccurredAt defaults to the request time.
type CreateTransactionRequest struct {
	Kind          models.TransactionKind `json:"kind" binding:"required"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description" binding:"required"`
	OccurredAt    *time.Time             `json:"occurred_at"`
	RelatedShopID *int64                 `json:"related_shop_id"`
	Fee           decimal.Decimal        `json:"fee"`
	Category      string                 `json:"category"`
}

// --- FinanceService Interface ---
type FinanceService interface {
	CreateTransaction(req CreateTransactionRequest, now time.Time) (models.Transaction, error)
	GetTransaction(id int64) (models.Transaction, error)
	ListTransactions(kind *models.TransactionKind) []models.Transaction
	GetOverview(now time.Time) models.FinanceOverview
}

// --- financeService Implementation ---
type financeService struct {
	store     *repositories.RecordStore[models.Transaction]
	formatter *utils.CurrencyFormatter
	weekStart time.Weekday
}

// NewFinanceService creates a new instance of FinanceService.
func NewFinanceService(store *repositories.RecordStore[models.Transaction], formatter *utils.CurrencyFormatter, weekStart time.Weekday) FinanceService {
	return &financeService{
		store:     store,
		formatter: formatter,
		weekStart: weekStart,
	}
}

// NewTransactionStore builds the ledger. Transactions are recorded as completed.
// hook may be nil; when set it sees every committed create.
func NewTransactionStore(clock func() time.Time, hook repositories.CommitHook[models.Transaction]) *repositories.RecordStore[models.Transaction] {
	opts := []repositories.StoreOption[models.Transaction]{
		repositories.WithClock[models.Transaction](clock),
		repositories.WithDefaults(func(t models.Transaction) models.Transaction {
			if t.Status == "" {
				t.Status = models.TransactionCompleted
			}
			return t
		}),
	}
	if hook != nil {
		opts = append(opts, repositories.WithCommitHook(hook))
	}
	return repositories.NewRecordStore("transaction", opts...)
}

func (s *financeService) CreateTransaction(req CreateTransactionRequest, now time.Time) (models.Transaction, error) {
	txn := models.Transaction{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  now,
		Status:      models.TransactionCompleted,
	}
	if req.OccurredAt != nil {
		txn.OccurredAt = *req.OccurredAt
	}

	switch req.Kind {
	case models.TransactionRevenue:
		if req.Category != "" {
			return models.Transaction{}, fmt.Errorf("%w: revenue has no expense category", models.ErrValidation)
		}
		txn.Revenue = &models.RevenueDetail{RelatedShopID: req.RelatedShopID, Fee: req.Fee}
	case models.TransactionExpense:
		if req.RelatedShopID != nil || !req.Fee.IsZero() {
			return models.Transaction{}, fmt.Errorf("%w: expenses carry no shop or fee", models.ErrValidation)
		}
		txn.Expense = &models.ExpenseDetail{Category: req.Category}
	}

	created, err := s.store.Create(txn)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}
	utils.LogDebug("transaction recorded", map[string]interface{}{"id": created.ID, "kind": created.Kind, "amount": created.Amount.String()})
	return created, nil
}

func (s *financeService) GetTransaction(id int64) (models.Transaction, error) {
	return s.store.Get(id)
}

func (s *financeService) ListTransactions(kind *models.TransactionKind) []models.Transaction {
	return reports.FilterByType(s.store.List(nil), kind)
}

func (s *financeService) GetOverview(now time.Time) models.FinanceOverview {
	txs := s.store.List(nil)
	buckets := reports.BucketTransactions(txs, now, s.weekStart)
	summary := reports.SummaryStats(txs)

	formatted := map[string]string{
		"total_revenue":  s.formatter.Format(summary.TotalRevenue),
		"total_expenses": s.formatter.Format(summary.TotalExpenses),
		"total_profit":   s.formatter.Format(summary.TotalProfit),
		"total_fees":     s.formatter.Format(summary.TotalFees),
	}
	for period, totals := range buckets {
		formatted[string(period)+"_revenue"] = s.formatter.Format(totals.Revenue)
		formatted[string(period)+"_expenses"] = s.formatter.Format(totals.Expenses)
		formatted[string(period)+"_profit"] = s.formatter.Format(totals.Profit)
	}

	return models.FinanceOverview{
		Periods:            buckets,
		Summary:            summary,
		ExpensesByCategory: reports.ExpensesByCategory(txs),
		RevenueByShop:      reports.RevenueByShop(txs),
		Formatted:          formatted,
	}
}
