package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/reports"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
	"marketplace_admin/pkg/utils"
)

// --- Promotion DTOs ---
type CreatePromotionRequest struct {
	Name               string               `json:"name" binding:"required"`
	Description        string               `json:"description"`
	Type               models.PromotionType `json:"type" binding:"required"`
	Value              decimal.Decimal      `json:"value"`
	MinOrderValue      decimal.Decimal      `json:"min_order_value"`
	MaxDiscount        decimal.Decimal      `json:"max_discount"`
	StartAt            time.Time            `json:"start_at" binding:"required"`
	EndAt              time.Time            `json:"end_at" binding:"required"`
	MaxUsage           int                  `json:"max_usage"`
	ApplicableProducts *models.ProductScope `json:"applicable_products"`
	ApplicableUsers    models.UserSegment   `json:"applicable_users"`
	Paused             bool                 `json:"paused"`
}

type UpdatePromotionRequest struct {
	Name               *string               `json:"name"`
	Description        *string               `json:"description"`
	Type               *models.PromotionType `json:"type"`
	Value              *decimal.Decimal      `json:"value"`
	MinOrderValue      *decimal.Decimal      `json:"min_order_value"`
	MaxDiscount        *decimal.Decimal      `json:"max_discount"`
	StartAt            *time.Time            `json:"start_at"`
	EndAt              *time.Time            `json:"end_at"`
	MaxUsage           *int                  `json:"max_usage"`
	ApplicableProducts *models.ProductScope  `json:"applicable_products"`
	ApplicableUsers    *models.UserSegment   `json:"applicable_users"`
}

// EligibilityRequest describes the order a promotion is checked against.
// ShippingCost only matters for free shipping promotions.
type EligibilityRequest struct {
	OrderValue        decimal.Decimal    `json:"order_value"`
	UserSegment       models.UserSegment `json:"user_segment"`
	ProductCategories []string           `json:"product_categories"`
	ShippingCost      decimal.Decimal    `json:"shipping_cost"`
}

// EligibilityQuote is the outcome of a dry run: the verdict and the discount
// the order would get if it were redeemed now.
type EligibilityQuote struct {
	PromotionID int64                   `json:"promotion_id"`
	Result      rules.EligibilityResult `json:"result"`
	Discount    decimal.Decimal         `json:"discount"`
}

type Redemption struct {
	Promotion models.Promotion `json:"promotion"`
	Discount  decimal.Decimal  `json:"discount"`
}

type PromotionFilter struct {
	Search string
	Status models.PromotionStatus
	Type   models.PromotionType
}

// --- PromotionService Interface ---
type PromotionService interface {
	CreatePromotion(req CreatePromotionRequest, now time.Time) (models.Promotion, error)
	GetPromotion(id int64, now time.Time) (models.Promotion, error)
	ListPromotions(filter PromotionFilter, now time.Time) []models.Promotion
	UpdatePromotion(id int64, req UpdatePromotionRequest, now time.Time) (models.Promotion, error)
	PausePromotion(id int64, now time.Time) (models.Promotion, error)
	ResumePromotion(id int64, now time.Time) (models.Promotion, error)
	DeletePromotion(id int64) error
	CheckEligibility(id int64, req EligibilityRequest, now time.Time) (EligibilityQuote, error)
	RedeemPromotion(id int64, req EligibilityRequest, now time.Time) (Redemption, error)
	GetPromotionStats(now time.Time) models.PromotionStats
}

// --- promotionService Implementation ---
type promotionService struct {
	store *repositories.RecordStore[models.Promotion]
}

// NewPromotionService creates a new instance of PromotionService.
func NewPromotionService(store *repositories.RecordStore[models.Promotion]) PromotionService {
	return &promotionService{store: store}
}

// NewPromotionStore builds the promotion collection. An unset scope or
// segment means every product or every customer.
func NewPromotionStore(clock func() time.Time) *repositories.RecordStore[models.Promotion] {
	return repositories.NewRecordStore("promotion",
		repositories.WithClock[models.Promotion](clock),
		repositories.WithDefaults(func(p models.Promotion) models.Promotion {
			if !p.ApplicableProducts.All && len(p.ApplicableProducts.Categories) == 0 {
				p.ApplicableProducts = models.AllProducts()
			}
			if p.ApplicableUsers == "" {
				p.ApplicableUsers = models.SegmentAll
			}
			if p.Status == "" {
				p.Status = models.PromotionActive
			}
			return p
		}),
	)
}

// storedStatus keeps an operator pause and otherwise follows the clock.
func storedStatus(p models.Promotion, now time.Time) models.PromotionStatus {
	if p.Status == models.PromotionPaused && !now.After(p.EndAt) {
		return models.PromotionPaused
	}
	p.Status = models.PromotionActive
	return rules.EffectivePromotionStatus(p, now)
}

func (s *promotionService) CreatePromotion(req CreatePromotionRequest, now time.Time) (models.Promotion, error) {
	p := models.Promotion{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Value:           req.Value,
		MinOrderValue:   req.MinOrderValue,
		MaxDiscount:     req.MaxDiscount,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		MaxUsage:        req.MaxUsage,
		ApplicableUsers: req.ApplicableUsers,
	}
	if req.ApplicableProducts != nil {
		p.ApplicableProducts = *req.ApplicableProducts
	}
	if req.Paused {
		p.Status = models.PromotionPaused
	}
	p.Status = storedStatus(p, now)

	created, err := s.store.Create(p)
	if err != nil {
		return models.Promotion{}, fmt.Errorf("failed to create promotion: %w", err)
	}
	utils.LogDebug("promotion created", map[string]interface{}{"id": created.ID, "status": created.Status})
	return created, nil
}

func (s *promotionService) GetPromotion(id int64, now time.Time) (models.Promotion, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return models.Promotion{}, err
	}
	return rules.WithEffectiveStatus(p, now), nil
}

func (s *promotionService) ListPromotions(filter PromotionFilter, now time.Time) []models.Promotion {
	all := s.store.List(func(p models.Promotion) bool {
		if filter.Type != "" && p.Type != filter.Type {
			return false
		}
		return filter.Search == "" || utils.ContainsFold(filter.Search, p.Name, p.Description)
	})

	out := make([]models.Promotion, 0, len(all))
	for _, p := range all {
		p = rules.WithEffectiveStatus(p, now)
		if filter.Status == "" || p.Status == filter.Status {
			out = append(out, p)
		}
	}
	return out
}

func (s *promotionService) UpdatePromotion(id int64, req UpdatePromotionRequest, now time.Time) (models.Promotion, error) {
	updated, err := s.store.Update(id, func(p models.Promotion) models.Promotion {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.Value != nil {
			p.Value = *req.Value
		}
		if req.MinOrderValue != nil {
			p.MinOrderValue = *req.MinOrderValue
		}
		if req.MaxDiscount != nil {
			p.MaxDiscount = *req.MaxDiscount
		}
		if req.StartAt != nil {
			p.StartAt = *req.StartAt
		}
		if req.EndAt != nil {
			p.EndAt = *req.EndAt
		}
		if req.MaxUsage != nil {
			p.MaxUsage = *req.MaxUsage
		}
		if req.ApplicableProducts != nil {
			p.ApplicableProducts = *req.ApplicableProducts
		}
		if req.ApplicableUsers != nil {
			p.ApplicableUsers = *req.ApplicableUsers
		}
		p.Status = storedStatus(p, now)
		return p
	})
	if err != nil {
		return models.Promotion{}, fmt.Errorf("failed to update promotion: %w", err)
	}
	utils.LogDebug("promotion updated", map[string]interface{}{"id": id})
	return rules.WithEffectiveStatus(updated, now), nil
}

func (s *promotionService) setOperatorStatus(id int64, to models.PromotionStatus, now time.Time) (models.Promotion, error) {
	updated, err := s.store.Modify(id, func(p models.Promotion) (models.Promotion, error) {
		if err := rules.CheckPromotionTransition(rules.EffectivePromotionStatus(p, now), to); err != nil {
			return p, err
		}
		p.Status = to
		p.Status = storedStatus(p, now)
		return p, nil
	})
	if err != nil {
		return models.Promotion{}, fmt.Errorf("failed to change promotion status: %w", err)
	}
	utils.LogDebug("promotion status changed", map[string]interface{}{"id": id, "status": updated.Status})
	return rules.WithEffectiveStatus(updated, now), nil
}

func (s *promotionService) PausePromotion(id int64, now time.Time) (models.Promotion, error) {
	return s.setOperatorStatus(id, models.PromotionPaused, now)
}

func (s *promotionService) ResumePromotion(id int64, now time.Time) (models.Promotion, error) {
	return s.setOperatorStatus(id, models.PromotionActive, now)
}

func (s *promotionService) DeletePromotion(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	utils.LogDebug("promotion deleted", map[string]interface{}{"id": id})
	return nil
}

func eligibilityContext(req EligibilityRequest, now time.Time) rules.EligibilityContext {
	segment := req.UserSegment
	if segment == "" {
		segment = models.SegmentAll
	}
	return rules.EligibilityContext{
		OrderValue:        req.OrderValue,
		UserSegment:       segment,
		ProductCategories: req.ProductCategories,
		Now:               now,
	}
}

func (s *promotionService) CheckEligibility(id int64, req EligibilityRequest, now time.Time) (EligibilityQuote, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return EligibilityQuote{}, err
	}
	quote := EligibilityQuote{
		PromotionID: id,
		Result:      rules.CheckPromotionEligibility(p, eligibilityContext(req, now)),
		Discount:    decimal.Zero,
	}
	if quote.Result.Eligible {
		quote.Discount = rules.ComputeDiscount(p, req.OrderValue, req.ShippingCost)
	}
	return quote, nil
}

// RedeemPromotion checks eligibility, prices the discount and counts the use
// in one store mutation, so two redemptions cannot both take the last use.
func (s *promotionService) RedeemPromotion(id int64, req EligibilityRequest, now time.Time) (Redemption, error) {
	var discount decimal.Decimal
	updated, err := s.store.Modify(id, func(p models.Promotion) (models.Promotion, error) {
		res := rules.CheckPromotionEligibility(p, eligibilityContext(req, now))
		if !res.Eligible {
			if res.FailedClause == rules.ClauseUsage {
				return p, fmt.Errorf("%w: %s", rules.ErrUsageLimitExceeded, res.Reason)
			}
			return p, fmt.Errorf("%w: %s", ErrPromotionNotEligible, res.Reason)
		}
		used, err := rules.RecordUsage(p)
		if err != nil {
			return p, err
		}
		discount = rules.ComputeDiscount(p, req.OrderValue, req.ShippingCost)
		return used, nil
	})
	if err != nil {
		return Redemption{}, fmt.Errorf("failed to redeem promotion: %w", err)
	}
	utils.LogDebug("promotion redeemed", map[string]interface{}{"id": id, "usage_count": updated.UsageCount, "discount": discount.String()})
	return Redemption{Promotion: rules.WithEffectiveStatus(updated, now), Discount: discount}, nil
}

func (s *promotionService) GetPromotionStats(now time.Time) models.PromotionStats {
	all := s.ListPromotions(PromotionFilter{}, now)
	usage := 0
	for _, p := range all {
		usage += p.UsageCount
	}
	return models.PromotionStats{
		Total:      len(all),
		ByStatus:   reports.StatusCounts(all, func(p models.Promotion) models.PromotionStatus { return p.Status }),
		TotalUsage: usage,
	}
}
