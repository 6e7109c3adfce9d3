package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind separates money coming in from money going out.
type TransactionKind string

const (
	TransactionRevenue TransactionKind = "revenue"
	TransactionExpense TransactionKind = "expense"
)

// IsValidTransactionKind checks if the provided kind is a known TransactionKind.
func IsValidTransactionKind(kind TransactionKind) bool {
	return kind == TransactionRevenue || kind == TransactionExpense
}

// TransactionStatus is kept for display; every recorded transaction is completed.
type TransactionStatus string

const TransactionCompleted TransactionStatus = "completed"

// RevenueDetail carries the fields only revenue entries have.
type RevenueDetail struct {
	RelatedShopID *int64          `json:"related_shop_id,omitempty" yaml:"related_shop_id,omitempty"`
	Fee           decimal.Decimal `json:"fee" yaml:"fee"`
}

// ExpenseDetail carries the fields only expense entries have.
type ExpenseDetail struct {
	Category string `json:"category" yaml:"category"`
}

// Transaction is an immutable ledger entry.
// Exactly one of Revenue or Expense may be set, matching Kind.
type Transaction struct {
	ID          int64             `json:"id" yaml:"id"`
	Kind        TransactionKind   `json:"kind" yaml:"kind" validate:"required"`
	Amount      decimal.Decimal   `json:"amount" yaml:"amount"`
	Description string            `json:"description" yaml:"description" validate:"required"`
	OccurredAt  time.Time         `json:"occurred_at" yaml:"occurred_at" validate:"required"`
	Status      TransactionStatus `json:"status" yaml:"status"`
	Revenue     *RevenueDetail    `json:"revenue,omitempty" yaml:"revenue,omitempty"`
	Expense     *ExpenseDetail    `json:"expense,omitempty" yaml:"expense,omitempty"`
	CreatedAt   time.Time         `json:"created_at" yaml:"created_at"`
}

func (t Transaction) RecordID() int64            { return t.ID }
func (t Transaction) RecordCreatedAt() time.Time { return t.CreatedAt }

func (t Transaction) WithIdentity(id int64, createdAt time.Time) Transaction {
	t.ID = id
	t.CreatedAt = createdAt
	return t
}

// Clone returns a deep copy.
func (t Transaction) Clone() Transaction {
	if t.Revenue != nil {
		rev := *t.Revenue
		if rev.RelatedShopID != nil {
			shopID := *rev.RelatedShopID
			rev.RelatedShopID = &shopID
		}
		t.Revenue = &rev
	}
	if t.Expense != nil {
		exp := *t.Expense
		t.Expense = &exp
	}
	return t
}

// Fee returns the platform fee of a revenue entry, zero otherwise.
func (t Transaction) Fee() decimal.Decimal {
	if t.Revenue == nil {
		return decimal.Zero
	}
	return t.Revenue.Fee
}

// Validate enforces the non-negative amount and the kind/detail pairing.
func (t Transaction) Validate() error {
	if err := validateTags(t); err != nil {
		return err
	}
	if !IsValidTransactionKind(t.Kind) {
		return validationErrorf("unknown transaction kind %q", t.Kind)
	}
	if t.Status != TransactionCompleted {
		return validationErrorf("unsupported transaction status %q", t.Status)
	}
	if t.Amount.IsNegative() {
		return validationErrorf("amount must not be negative")
	}
	switch t.Kind {
	case TransactionRevenue:
		if t.Expense != nil {
			return validationErrorf("revenue transaction cannot carry expense details")
		}
		if t.Revenue != nil && t.Revenue.Fee.IsNegative() {
			return validationErrorf("fee must not be negative")
		}
	case TransactionExpense:
		if t.Revenue != nil {
			return validationErrorf("expense transaction cannot carry revenue details")
		}
	}
	return nil
}
