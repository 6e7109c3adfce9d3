package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
)

func newReview(t *testing.T, svc ReviewService, rating int) models.Review {
	t.Helper()
	r, err := svc.CreateReview(CreateReviewRequest{
		ProductID:     7,
		ProductName:   "Ao dai lua",
		CustomerName:  "Pham Thu Ha",
		CustomerEmail: "ha@mail.vn",
		Rating:        rating,
		Comment:       "Vai dep, giao nhanh",
	})
	require.NoError(t, err)
	return r
}

func TestReviewService_Moderation(t *testing.T) {
	svc := newTestServices().reviews
	r := newReview(t, svc, 5)
	assert.Equal(t, models.ReviewPending, r.Status)

	approved, err := svc.ModerateReview(r.ID, models.ReviewApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewApproved, approved.Status)

	rejected, err := svc.ModerateReview(r.ID, models.ReviewRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewRejected, rejected.Status)

	_, err = svc.ModerateReview(r.ID, models.ReviewPending)
	assert.ErrorIs(t, err, rules.ErrInvalidTransition)

	_, err = svc.ModerateReview(r.ID, models.ReviewReported)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestReviewService_Report(t *testing.T) {
	svc := newTestServices().reviews
	r := newReview(t, svc, 1)

	_, err := svc.ReportReview(r.ID, "  ")
	assert.ErrorIs(t, err, models.ErrValidation)

	reported, err := svc.ReportReview(r.ID, "spam link")
	require.NoError(t, err)
	assert.Equal(t, models.ReviewReported, reported.Status)
	require.NotNil(t, reported.Report)
	assert.Equal(t, "spam link", reported.Report.Reason)

	back, err := svc.ModerateReview(r.ID, models.ReviewPending)
	require.NoError(t, err)
	assert.Nil(t, back.Report)

	_, err = svc.ReportReview(404, "spam")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestReviewService_HelpfulListStats(t *testing.T) {
	svc := newTestServices().reviews
	five := newReview(t, svc, 5)
	newReview(t, svc, 4)
	two := newReview(t, svc, 2)

	helpful, err := svc.MarkHelpful(five.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, helpful.HelpfulCount)

	_, err = svc.ModerateReview(two.ID, models.ReviewRejected)
	require.NoError(t, err)

	assert.Len(t, svc.ListReviews(ReviewFilter{ProductID: 7}), 3)
	assert.Len(t, svc.ListReviews(ReviewFilter{Status: models.ReviewPending}), 2)
	assert.Len(t, svc.ListReviews(ReviewFilter{Rating: 5}), 1)
	assert.Len(t, svc.ListReviews(ReviewFilter{Search: "giao nhanh"}), 3)

	stats := svc.GetReviewStats()
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 11.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, 1, stats.Distribution[2])
	assert.Equal(t, 0, stats.Distribution[3])
	assert.Equal(t, 1, stats.ByStatus[models.ReviewRejected])

	require.NoError(t, svc.DeleteReview(two.ID))
	assert.ErrorIs(t, svc.DeleteReview(two.ID), repositories.ErrNotFound)
}

func TestReviewService_EmptyStats(t *testing.T) {
	stats := newTestServices().reviews.GetReviewStats()
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageRating)
	assert.Len(t, stats.Distribution, 5)
}

func TestReviewService_RejectsBadRating(t *testing.T) {
	svc := newTestServices().reviews
	_, err := svc.CreateReview(CreateReviewRequest{ProductID: 1, ProductName: "x", CustomerName: "y", CustomerEmail: "y@mail.vn", Rating: 6})
	assert.ErrorIs(t, err, models.ErrValidation)
}
