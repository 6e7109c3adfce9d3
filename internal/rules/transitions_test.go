package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
)

func TestCheckReviewTransition(t *testing.T) {
	ok := [][2]models.ReviewStatus{
		{models.ReviewPending, models.ReviewApproved},
		{models.ReviewPending, models.ReviewRejected},
		{models.ReviewApproved, models.ReviewRejected},
		{models.ReviewRejected, models.ReviewApproved},
		{models.ReviewReported, models.ReviewPending},
		{models.ReviewReported, models.ReviewApproved},
		{models.ReviewReported, models.ReviewRejected},
	}
	for _, tr := range ok {
		assert.NoError(t, CheckReviewTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	err := CheckReviewTransition(models.ReviewApproved, models.ReviewPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCheckStaffTransition(t *testing.T) {
	assert.NoError(t, CheckStaffTransition(models.StaffStatusActive, models.StaffStatusSuspended))
	assert.NoError(t, CheckStaffTransition(models.StaffStatusSuspended, models.StaffStatusActive))
	assert.ErrorIs(t, CheckStaffTransition(models.StaffStatusInactive, models.StaffStatusSuspended), ErrInvalidTransition)
}

func TestCheckPromotionTransition(t *testing.T) {
	assert.NoError(t, CheckPromotionTransition(models.PromotionActive, models.PromotionPaused))
	assert.NoError(t, CheckPromotionTransition(models.PromotionPaused, models.PromotionActive))
	assert.ErrorIs(t, CheckPromotionTransition(models.PromotionExpired, models.PromotionActive), ErrInvalidTransition)
	assert.ErrorIs(t, CheckPromotionTransition(models.PromotionScheduled, models.PromotionPaused), ErrInvalidTransition)
}

func TestToggleStaffStatus(t *testing.T) {
	next, err := ToggleStaffStatus(models.StaffStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.StaffStatusInactive, next)

	next, err = ToggleStaffStatus(next)
	require.NoError(t, err)
	assert.Equal(t, models.StaffStatusActive, next)

	_, err = ToggleStaffStatus(models.StaffStatusSuspended)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransitionReview(models.ReviewReported, models.ReviewPending))
	assert.False(t, CanTransitionReview(models.ReviewRejected, models.ReviewPending))
	assert.True(t, CanTransitionStaff(models.StaffStatusInactive, models.StaffStatusActive))
	assert.False(t, CanTransitionStaff(models.StaffStatusActive, models.StaffStatusActive))
	assert.False(t, CanTransitionPromotion(models.PromotionActive, models.PromotionExpired))
}
