package services

import (
	"errors"
	"fmt"

	"marketplace_admin/internal/models"
)

// --- Custom Service Errors ---
var (
	ErrPromotionNotEligible = fmt.Errorf("%w: promotion does not apply to this order", models.ErrValidation)
	ErrUnknownShop          = fmt.Errorf("%w: shop does not exist", models.ErrValidation)
	ErrShopInUse            = errors.New("shop cannot be deleted while it still has products")
)
