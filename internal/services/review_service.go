package services

import (
	"fmt"
	"strings"
	"time"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/reports"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
	"marketplace_admin/pkg/utils"
)

// --- Review DTOs ---
type CreateReviewRequest struct {
	ProductID     int64  `json:"product_id" binding:"required"`
	ProductName   string `json:"product_name" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

type ReviewFilter struct {
	Search    string
	Status    models.ReviewStatus
	ProductID int64
	Rating    int
}

// --- ReviewService Interface ---
type ReviewService interface {
	CreateReview(req CreateReviewRequest) (models.Review, error)
	GetReview(id int64) (models.Review, error)
	ListReviews(filter ReviewFilter) []models.Review
	ModerateReview(id int64, status models.ReviewStatus) (models.Review, error)
	ReportReview(id int64, reason string) (models.Review, error)
	MarkHelpful(id int64) (models.Review, error)
	DeleteReview(id int64) error
	GetReviewStats() models.ReviewStats
}

// --- reviewService Implementation ---
type reviewService struct {
	store *repositories.RecordStore[models.Review]
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(store *repositories.RecordStore[models.Review]) ReviewService {
	return &reviewService{store: store}
}

// NewReviewStore builds the review collection. New reviews wait for moderation.
func NewReviewStore(clock func() time.Time) *repositories.RecordStore[models.Review] {
	return repositories.NewRecordStore("review",
		repositories.WithClock[models.Review](clock),
		repositories.WithDefaults(func(r models.Review) models.Review {
			if r.Status == "" {
				r.Status = models.ReviewPending
			}
			return r
		}),
	)
}

func (s *reviewService) CreateReview(req CreateReviewRequest) (models.Review, error) {
	created, err := s.store.Create(models.Review{
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Status:        models.ReviewPending,
	})
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to create review: %w", err)
	}
	utils.LogDebug("review created", map[string]interface{}{"id": created.ID, "product_id": created.ProductID})
	return created, nil
}

func (s *reviewService) GetReview(id int64) (models.Review, error) {
	return s.store.Get(id)
}

func (s *reviewService) ListReviews(filter ReviewFilter) []models.Review {
	return s.store.List(func(r models.Review) bool {
		if filter.Status != "" && r.Status != filter.Status {
			return false
		}
		if filter.ProductID != 0 && r.ProductID != filter.ProductID {
			return false
		}
		if filter.Rating != 0 && r.Rating != filter.Rating {
			return false
		}
		return filter.Search == "" || utils.ContainsFold(filter.Search, r.ProductName, r.CustomerName, r.Comment)
	})
}

// ModerateReview moves a review to approved, rejected or back to pending.
// Reporting goes through ReportReview because it needs a reason.
func (s *reviewService) ModerateReview(id int64, status models.ReviewStatus) (models.Review, error) {
	if status == models.ReviewReported {
		return models.Review{}, fmt.Errorf("%w: use the report action to report a review", models.ErrValidation)
	}
	if !models.IsValidReviewStatus(status) {
		return models.Review{}, fmt.Errorf("%w: unknown review status %q", models.ErrValidation, status)
	}

	updated, err := s.store.Modify(id, func(r models.Review) (models.Review, error) {
		if err := rules.CheckReviewTransition(r.Status, status); err != nil {
			return r, err
		}
		r.Status = status
		r.Report = nil
		return r, nil
	})
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to moderate review: %w", err)
	}
	utils.LogDebug("review moderated", map[string]interface{}{"id": id, "status": status})
	return updated, nil
}

func (s *reviewService) ReportReview(id int64, reason string) (models.Review, error) {
	if utils.IsEmpty(reason) {
		return models.Review{}, fmt.Errorf("%w: report reason is required", models.ErrValidation)
	}

	updated, err := s.store.Modify(id, func(r models.Review) (models.Review, error) {
		if err := rules.CheckReviewTransition(r.Status, models.ReviewReported); err != nil {
			return r, err
		}
		r.Status = models.ReviewReported
		r.Report = &models.ReviewReport{Reason: strings.TrimSpace(reason)}
		return r, nil
	})
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to report review: %w", err)
	}
	utils.LogDebug("review reported", map[string]interface{}{"id": id})
	return updated, nil
}

func (s *reviewService) MarkHelpful(id int64) (models.Review, error) {
	return s.store.Update(id, func(r models.Review) models.Review {
		r.HelpfulCount++
		return r
	})
}

func (s *reviewService) DeleteReview(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	utils.LogDebug("review deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *reviewService) GetReviewStats() models.ReviewStats {
	all := s.store.List(nil)
	return models.ReviewStats{
		Total:         len(all),
		ByStatus:      reports.StatusCounts(all, func(r models.Review) models.ReviewStatus { return r.Status }),
		AverageRating: reports.AverageRating(all),
		Distribution:  reports.RatingDistribution(all),
	}
}
