package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PromotionType selects how a discount is computed.
type PromotionType string

const (
	PromotionPercentage PromotionType = "percentage"
	PromotionFixed      PromotionType = "fixed"
	PromotionFreeShip   PromotionType = "free_ship"
)

// IsValidPromotionType checks if the provided type is a known PromotionType.
func IsValidPromotionType(t PromotionType) bool {
	switch t {
	case PromotionPercentage, PromotionFixed, PromotionFreeShip:
		return true
	default:
		return false
	}
}

// PromotionStatus is the lifecycle state of a promotion.
// Scheduled and Expired are derived from the clock; Paused is set by an operator.
type PromotionStatus string

const (
	PromotionActive    PromotionStatus = "active"
	PromotionScheduled PromotionStatus = "scheduled"
	PromotionExpired   PromotionStatus = "expired"
	PromotionPaused    PromotionStatus = "paused"
)

// IsValidPromotionStatus checks if the provided status is a known PromotionStatus.
func IsValidPromotionStatus(s PromotionStatus) bool {
	switch s {
	case PromotionActive, PromotionScheduled, PromotionExpired, PromotionPaused:
		return true
	default:
		return false
	}
}

// UserSegment is the audience a promotion targets.
type UserSegment string

const (
	SegmentAll UserSegment = "all"
	SegmentVIP UserSegment = "vip"
	SegmentNew UserSegment = "new"
)

// IsValidUserSegment checks if the provided segment is a known UserSegment.
func IsValidUserSegment(s UserSegment) bool {
	return s == SegmentAll || s == SegmentVIP || s == SegmentNew
}

// ProductScope is either every product or a set of product categories.
// It encodes as the string "all" or as an array of category names.
type ProductScope struct {
	All        bool
	Categories []string
}

// AllProducts returns the scope that matches every product.
func AllProducts() ProductScope {
	return ProductScope{All: true}
}

// CategoryScope returns a scope limited to the given categories.
func CategoryScope(categories ...string) ProductScope {
	return ProductScope{Categories: categories}
}

// Matches reports whether any of categories falls inside the scope.
func (s ProductScope) Matches(categories []string) bool {
	if s.All {
		return true
	}
	for _, c := range categories {
		if slices.ContainsFunc(s.Categories, func(own string) bool { return strings.EqualFold(own, c) }) {
			return true
		}
	}
	return false
}

func (s ProductScope) MarshalJSON() ([]byte, error) {
	if s.All {
		return json.Marshal("all")
	}
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return json.Marshal(categories)
}

func (s *ProductScope) UnmarshalJSON(data []byte) error {
	var all string
	if err := json.Unmarshal(data, &all); err == nil {
		return s.setAll(all)
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return fmt.Errorf("applicable_products must be \"all\" or a list of categories: %w", err)
	}
	*s = ProductScope{Categories: categories}
	return nil
}

func (s *ProductScope) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return s.setAll(node.Value)
	}
	var categories []string
	if err := node.Decode(&categories); err != nil {
		return fmt.Errorf("applicable_products must be \"all\" or a list of categories: %w", err)
	}
	*s = ProductScope{Categories: categories}
	return nil
}

func (s *ProductScope) setAll(value string) error {
	if !strings.EqualFold(value, "all") {
		return fmt.Errorf("applicable_products: unexpected value %q", value)
	}
	*s = AllProducts()
	return nil
}

// Promotion is a discount campaign.
type Promotion struct {
	ID                 int64           `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name" validate:"required"`
	Description        string          `json:"description" yaml:"description"`
	Type               PromotionType   `json:"type" yaml:"type" validate:"required"`
	Value              decimal.Decimal `json:"value" yaml:"value"`
	MinOrderValue      decimal.Decimal `json:"min_order_value" yaml:"min_order_value"`
	MaxDiscount        decimal.Decimal `json:"max_discount" yaml:"max_discount"`
	StartAt            time.Time       `json:"start_at" yaml:"start_at" validate:"required"`
	EndAt              time.Time       `json:"end_at" yaml:"end_at" validate:"required"`
	Status             PromotionStatus `json:"status" yaml:"status"`
	UsageCount         int             `json:"usage_count" yaml:"usage_count" validate:"min=0"`
	MaxUsage           int             `json:"max_usage" yaml:"max_usage" validate:"min=0"`
	ApplicableProducts ProductScope    `json:"applicable_products" yaml:"applicable_products"`
	ApplicableUsers    UserSegment     `json:"applicable_users" yaml:"applicable_users"`
	CreatedAt          time.Time       `json:"created_at" yaml:"created_at"`
}

func (p Promotion) RecordID() int64            { return p.ID }
func (p Promotion) RecordCreatedAt() time.Time { return p.CreatedAt }

func (p Promotion) WithIdentity(id int64, createdAt time.Time) Promotion {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}

// Clone returns a deep copy.
func (p Promotion) Clone() Promotion {
	if p.ApplicableProducts.Categories != nil {
		p.ApplicableProducts.Categories = append([]string(nil), p.ApplicableProducts.Categories...)
	}
	return p
}

var hundred = decimal.NewFromInt(100)

// Validate enforces usage bounds, the date window and the percentage range.
func (p Promotion) Validate() error {
	if err := validateTags(p); err != nil {
		return err
	}
	if !IsValidPromotionType(p.Type) {
		return validationErrorf("unknown promotion type %q", p.Type)
	}
	if !IsValidPromotionStatus(p.Status) {
		return validationErrorf("unknown promotion status %q", p.Status)
	}
	if !IsValidUserSegment(p.ApplicableUsers) {
		return validationErrorf("unknown user segment %q", p.ApplicableUsers)
	}
	if p.EndAt.Before(p.StartAt) {
		return validationErrorf("end_at must not be before start_at")
	}
	if p.UsageCount > p.MaxUsage {
		return validationErrorf("usage_count %d exceeds max_usage %d", p.UsageCount, p.MaxUsage)
	}
	if p.Value.IsNegative() || p.MinOrderValue.IsNegative() || p.MaxDiscount.IsNegative() {
		return validationErrorf("value, min_order_value and max_discount must not be negative")
	}
	if p.Type == PromotionPercentage && (!p.Value.IsPositive() || p.Value.GreaterThan(hundred)) {
		return validationErrorf("percentage value must be in (0, 100], got %s", p.Value)
	}
	if !p.ApplicableProducts.All && len(p.ApplicableProducts.Categories) == 0 {
		return validationErrorf("applicable_products needs \"all\" or at least one category")
	}
	return nil
}
