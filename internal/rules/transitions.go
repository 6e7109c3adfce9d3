package rules

import (
	"fmt"

	"marketplace_admin/internal/models"
)

// Approved and rejected reviews can flip either way; a report can be resolved to anything.
var reviewTransitions = map[models.ReviewStatus][]models.ReviewStatus{
	models.ReviewPending:  {models.ReviewApproved, models.ReviewRejected, models.ReviewReported},
	models.ReviewApproved: {models.ReviewRejected, models.ReviewReported},
	models.ReviewRejected: {models.ReviewApproved},
	models.ReviewReported: {models.ReviewApproved, models.ReviewRejected, models.ReviewPending},
}

var staffTransitions = map[models.StaffStatus][]models.StaffStatus{
	models.StaffStatusActive:    {models.StaffStatusInactive, models.StaffStatusSuspended},
	models.StaffStatusInactive:  {models.StaffStatusActive},
	models.StaffStatusSuspended: {models.StaffStatusActive},
}

// Operators may only pause and resume; scheduled and expired come from the clock.
var promotionTransitions = map[models.PromotionStatus][]models.PromotionStatus{
	models.PromotionActive: {models.PromotionPaused},
	models.PromotionPaused: {models.PromotionActive},
}

func allowed[S comparable](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition[S comparable](kind string, table map[S][]S, from, to S) error {
	if !allowed(table, from, to) {
		return fmt.Errorf("%w: %s %v -> %v", ErrInvalidTransition, kind, from, to)
	}
	return nil
}

// CheckReviewTransition validates a moderation change.
func CheckReviewTransition(from, to models.ReviewStatus) error {
	return checkTransition("review", reviewTransitions, from, to)
}

// CheckStaffTransition validates an account status change.
func CheckStaffTransition(from, to models.StaffStatus) error {
	return checkTransition("staff", staffTransitions, from, to)
}

// CheckPromotionTransition validates an operator status change. from should be
// the effective status, so an expired promotion cannot be resumed.
func CheckPromotionTransition(from, to models.PromotionStatus) error {
	return checkTransition("promotion", promotionTransitions, from, to)
}

// ToggleStaffStatus returns the other side of the active/inactive switch.
// Suspended accounts are not toggled.
func ToggleStaffStatus(current models.StaffStatus) (models.StaffStatus, error) {
	switch current {
	case models.StaffStatusActive:
		return models.StaffStatusInactive, nil
	case models.StaffStatusInactive:
		return models.StaffStatusActive, nil
	default:
		return current, fmt.Errorf("%w: cannot toggle a %s account", ErrInvalidTransition, current)
	}
}

func CanTransitionReview(from, to models.ReviewStatus) bool {
	return allowed(reviewTransitions, from, to)
}

func CanTransitionStaff(from, to models.StaffStatus) bool {
	return allowed(staffTransitions, from, to)
}

func CanTransitionPromotion(from, to models.PromotionStatus) bool {
	return allowed(promotionTransitions, from, to)
}
