package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

// PromotionHandler holds the promotion service.
type PromotionHandler struct {
	promotionService services.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(ps services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: ps}
}

func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req services.CreatePromotionRequest
	if !bindJSON(c, &req, "CreatePromotion") {
		return
	}

	promotion, err := h.promotionService.CreatePromotion(req, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "CreatePromotion")
		return
	}
	c.JSON(http.StatusCreated, promotion)
}

// GetPromotions lists promotions with their status computed for the request time.
func (h *PromotionHandler) GetPromotions(c *gin.Context) {
	promotions := h.promotionService.ListPromotions(services.PromotionFilter{
		Search: c.Query("search"),
		Status: models.PromotionStatus(c.Query("status")),
		Type:   models.PromotionType(c.Query("type")),
	}, utils.RequestTime(c))
	c.JSON(http.StatusOK, listResponse(promotions))
}

func (h *PromotionHandler) GetPromotionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	promotion, err := h.promotionService.GetPromotion(id, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "GetPromotionByID")
		return
	}
	c.JSON(http.StatusOK, promotion)
}

func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePromotionRequest
	if !bindJSON(c, &req, "UpdatePromotion") {
		return
	}

	promotion, err := h.promotionService.UpdatePromotion(id, req, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "UpdatePromotion")
		return
	}
	c.JSON(http.StatusOK, promotion)
}

func (h *PromotionHandler) PausePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	promotion, err := h.promotionService.PausePromotion(id, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "PausePromotion")
		return
	}
	c.JSON(http.StatusOK, promotion)
}

func (h *PromotionHandler) ResumePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	promotion, err := h.promotionService.ResumePromotion(id, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "ResumePromotion")
		return
	}
	c.JSON(http.StatusOK, promotion)
}

func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.promotionService.DeletePromotion(id); err != nil {
		respondServiceError(c, err, "DeletePromotion")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted successfully"})
}

// CheckEligibility is a dry run: nothing is counted.
func (h *PromotionHandler) CheckEligibility(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.EligibilityRequest
	if !bindJSON(c, &req, "CheckEligibility") {
		return
	}

	quote, err := h.promotionService.CheckEligibility(id, req, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "CheckEligibility")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// RedeemPromotion applies the promotion to an order and counts the use.
func (h *PromotionHandler) RedeemPromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.EligibilityRequest
	if !bindJSON(c, &req, "RedeemPromotion") {
		return
	}

	redemption, err := h.promotionService.RedeemPromotion(id, req, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "RedeemPromotion")
		return
	}
	c.JSON(http.StatusOK, redemption)
}

func (h *PromotionHandler) GetPromotionStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.promotionService.GetPromotionStats(utils.RequestTime(c)))
}
