// Package reports derives read-only views from store snapshots: period
// rollups, summary totals and status tallies. Inputs are never modified.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
)

// BucketTransactions sums revenue and expenses into every period window that
// contains the transaction's OccurredAt. Windows overlap, so one transaction
// usually lands in several buckets.
func BucketTransactions(txs []models.Transaction, now time.Time, weekStart time.Weekday) map[models.Period]models.PeriodTotals {
	windows := PeriodWindows(now, weekStart)

	buckets := make(map[models.Period]models.PeriodTotals, len(models.Periods))
	for _, period := range models.Periods {
		buckets[period] = models.PeriodTotals{Revenue: decimal.Zero, Expenses: decimal.Zero}
	}

	for _, txn := range txs {
		for _, period := range models.Periods {
			if !windows[period].Contains(txn.OccurredAt) {
				continue
			}
			totals := buckets[period]
			switch txn.Kind {
			case models.TransactionRevenue:
				totals.Revenue = totals.Revenue.Add(txn.Amount)
			case models.TransactionExpense:
				totals.Expenses = totals.Expenses.Add(txn.Amount)
			}
			buckets[period] = totals
		}
	}

	for period, totals := range buckets {
		totals.Profit = totals.Revenue.Sub(totals.Expenses)
		buckets[period] = totals
	}
	return buckets
}

// SummaryStats totals the whole set. Each transaction is counted once no
// matter how many period buckets it belongs to.
func SummaryStats(txs []models.Transaction) models.SummaryStats {
	stats := models.SummaryStats{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalFees:     decimal.Zero,
	}
	for _, txn := range txs {
		switch txn.Kind {
		case models.TransactionRevenue:
			stats.TotalRevenue = stats.TotalRevenue.Add(txn.Amount)
			stats.TotalFees = stats.TotalFees.Add(txn.Fee())
		case models.TransactionExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(txn.Amount)
		}
		stats.TransactionCount++
	}
	stats.TotalProfit = stats.TotalRevenue.Sub(stats.TotalExpenses)
	return stats
}

// FilterByType keeps the transactions of kind, or all of them when kind is nil.
func FilterByType(txs []models.Transaction, kind *models.TransactionKind) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, txn := range txs {
		if kind == nil || txn.Kind == *kind {
			out = append(out, txn)
		}
	}
	return out
}

// StatusCounts tallies records by the key that status extracts.
func StatusCounts[T any, S comparable](records []T, status func(T) S) map[S]int {
	counts := make(map[S]int)
	for _, r := range records {
		counts[status(r)]++
	}
	return counts
}

// AverageRating returns the mean rating, or 0 for no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// RatingDistribution counts reviews per star. Keys 1 through 5 are always present.
func RatingDistribution(reviews []models.Review) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if _, ok := dist[r.Rating]; ok {
			dist[r.Rating]++
		}
	}
	return dist
}

// ExpensesByCategory sums expense amounts per category. Expenses without a
// category are grouped under "other".
func ExpensesByCategory(txs []models.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, txn := range txs {
		if txn.Kind != models.TransactionExpense {
			continue
		}
		category := "other"
		if txn.Expense != nil && txn.Expense.Category != "" {
			category = txn.Expense.Category
		}
		out[category] = out[category].Add(txn.Amount)
	}
	return out
}

// RevenueByShop sums revenue per related shop. Revenue with no shop is skipped.
func RevenueByShop(txs []models.Transaction) map[int64]decimal.Decimal {
	out := make(map[int64]decimal.Decimal)
	for _, txn := range txs {
		if txn.Kind != models.TransactionRevenue || txn.Revenue == nil || txn.Revenue.RelatedShopID == nil {
			continue
		}
		id := *txn.Revenue.RelatedShopID
		out[id] = out[id].Add(txn.Amount)
	}
	return out
}
