package rules

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
)

// EffectivePromotionStatus derives the status from the clock instead of trusting
// the stored value: past end_at is expired, an operator pause sticks, before
// start_at is scheduled, anything else is active.
func EffectivePromotionStatus(p models.Promotion, now time.Time) models.PromotionStatus {
	switch {
	case now.After(p.EndAt):
		return models.PromotionExpired
	case p.Status == models.PromotionPaused:
		return models.PromotionPaused
	case now.Before(p.StartAt):
		return models.PromotionScheduled
	default:
		return models.PromotionActive
	}
}

// WithEffectiveStatus returns p with Status recomputed for now.
func WithEffectiveStatus(p models.Promotion, now time.Time) models.Promotion {
	p.Status = EffectivePromotionStatus(p, now)
	return p
}

// EligibilityClause identifies one eligibility check.
type EligibilityClause string

const (
	ClauseNone       EligibilityClause = ""
	ClauseStatus     EligibilityClause = "status"
	ClauseWindow     EligibilityClause = "window"
	ClauseUsage      EligibilityClause = "usage_limit"
	ClauseOrderValue EligibilityClause = "min_order_value"
	ClauseSegment    EligibilityClause = "user_segment"
	ClauseProducts   EligibilityClause = "applicable_products"
)

// EligibilityContext describes the order a promotion is checked against.
type EligibilityContext struct {
	OrderValue        decimal.Decimal
	UserSegment       models.UserSegment
	ProductCategories []string
	Now               time.Time
}

// EligibilityResult reports the first failed clause, if any.
type EligibilityResult struct {
	Eligible     bool              `json:"eligible"`
	FailedClause EligibilityClause `json:"failed_clause,omitempty"`
	Reason       string            `json:"reason,omitempty"`
}

func failed(clause EligibilityClause, format string, args ...interface{}) EligibilityResult {
	return EligibilityResult{FailedClause: clause, Reason: fmt.Sprintf(format, args...)}
}

// CheckPromotionEligibility runs the clauses in order and stops at the first failure:
// operator status, date window, usage limit, minimum order value, user segment,
// product scope. The first two together mean the effective status is active.
func CheckPromotionEligibility(p models.Promotion, ctx EligibilityContext) EligibilityResult {
	if p.Status == models.PromotionPaused {
		return failed(ClauseStatus, "promotion is paused")
	}
	if ctx.Now.Before(p.StartAt) {
		return failed(ClauseWindow, "promotion starts at %s", p.StartAt.Format(time.RFC3339))
	}
	if ctx.Now.After(p.EndAt) {
		return failed(ClauseWindow, "promotion ended at %s", p.EndAt.Format(time.RFC3339))
	}
	if p.UsageCount >= p.MaxUsage {
		return failed(ClauseUsage, "promotion has been used %d of %d times", p.UsageCount, p.MaxUsage)
	}
	if ctx.OrderValue.LessThan(p.MinOrderValue) {
		return failed(ClauseOrderValue, "order value %s is below the minimum %s", ctx.OrderValue, p.MinOrderValue)
	}
	if p.ApplicableUsers != models.SegmentAll && p.ApplicableUsers != ctx.UserSegment {
		return failed(ClauseSegment, "promotion is limited to %s customers", p.ApplicableUsers)
	}
	if !p.ApplicableProducts.Matches(ctx.ProductCategories) {
		return failed(ClauseProducts, "no product in the order is covered by the promotion")
	}
	return EligibilityResult{Eligible: true}
}

// IsPromotionEligible is CheckPromotionEligibility without the reason.
func IsPromotionEligible(p models.Promotion, ctx EligibilityContext) bool {
	return CheckPromotionEligibility(p, ctx).Eligible
}

var hundred = decimal.NewFromInt(100)

// ComputeDiscount returns the discount p grants on an order, never below zero
// and never above max_discount. shippingCost only matters for free shipping;
// callers that do not know it pass zero.
func ComputeDiscount(p models.Promotion, orderValue, shippingCost decimal.Decimal) decimal.Decimal {
	var raw decimal.Decimal
	switch p.Type {
	case models.PromotionPercentage:
		raw = orderValue.Mul(p.Value).Div(hundred)
	case models.PromotionFixed:
		raw = p.Value
	case models.PromotionFreeShip:
		raw = shippingCost
	default:
		return decimal.Zero
	}
	discount := decimal.Min(raw, p.MaxDiscount)
	if discount.IsNegative() {
		return decimal.Zero
	}
	return discount
}

// RecordUsage returns a copy of p with one more use, or ErrUsageLimitExceeded.
func RecordUsage(p models.Promotion) (models.Promotion, error) {
	if p.UsageCount >= p.MaxUsage {
		return models.Promotion{}, fmt.Errorf("%w: %d of %d used", ErrUsageLimitExceeded, p.UsageCount, p.MaxUsage)
	}
	out := p.Clone()
	out.UsageCount++
	return out, nil
}
