package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/services"
)

// ReviewHandler holds the review service.
type ReviewHandler struct {
	reviewService services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(rs services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

type moderateReviewRequest struct {
	Status models.ReviewStatus `json:"status" binding:"required"`
}

type reportReviewRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if !bindJSON(c, &req, "CreateReview") {
		return
	}

	review, err := h.reviewService.CreateReview(req)
	if err != nil {
		respondServiceError(c, err, "CreateReview")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetReviews lists reviews filtered by status, product, rating and search text.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	productID, ok := queryInt64(c, "product_id")
	if !ok {
		return
	}
	rating, ok := queryInt(c, "rating")
	if !ok {
		return
	}

	reviews := h.reviewService.ListReviews(services.ReviewFilter{
		Search:    c.Query("search"),
		Status:    models.ReviewStatus(c.Query("status")),
		ProductID: productID,
		Rating:    rating,
	})
	c.JSON(http.StatusOK, listResponse(reviews))
}

func (h *ReviewHandler) GetReviewByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(id)
	if err != nil {
		respondServiceError(c, err, "GetReviewByID")
		return
	}
	c.JSON(http.StatusOK, review)
}

// ModerateReview approves, rejects or reopens a review.
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req moderateReviewRequest
	if !bindJSON(c, &req, "ModerateReview") {
		return
	}

	review, err := h.reviewService.ModerateReview(id, req.Status)
	if err != nil {
		respondServiceError(c, err, "ModerateReview")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) ReportReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reportReviewRequest
	if !bindJSON(c, &req, "ReportReview") {
		return
	}

	review, err := h.reviewService.ReportReview(id, req.Reason)
	if err != nil {
		respondServiceError(c, err, "ReportReview")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.MarkHelpful(id)
	if err != nil {
		respondServiceError(c, err, "MarkHelpful")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		respondServiceError(c, err, "DeleteReview")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) GetReviewStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.reviewService.GetReviewStats())
}
