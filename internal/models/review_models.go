package models

import "time"

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
	ReviewReported ReviewStatus = "reported"
)

// IsValidReviewStatus checks if the provided status is a known ReviewStatus.
func IsValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected, ReviewReported:
		return true
	default:
		return false
	}
}

// ReviewReport is attached to a review exactly while it is reported.
type ReviewReport struct {
	Reason string `json:"reason" yaml:"reason" validate:"required"`
}

// Review is a customer's product review.
type Review struct {
	ID            int64         `json:"id" yaml:"id"`
	ProductID     int64         `json:"product_id" yaml:"product_id" validate:"required"`
	ProductName   string        `json:"product_name" yaml:"product_name" validate:"required"`
	CustomerName  string        `json:"customer_name" yaml:"customer_name" validate:"required"`
	CustomerEmail string        `json:"customer_email" yaml:"customer_email" validate:"required,email"`
	Rating        int           `json:"rating" yaml:"rating" validate:"min=1,max=5"`
	Comment       string        `json:"comment" yaml:"comment"`
	Status        ReviewStatus  `json:"status" yaml:"status"`
	HelpfulCount  int           `json:"helpful_count" yaml:"helpful_count" validate:"min=0"`
	Report        *ReviewReport `json:"report,omitempty" yaml:"report,omitempty"`
	CreatedAt     time.Time     `json:"created_at" yaml:"created_at"`
}

func (r Review) RecordID() int64            { return r.ID }
func (r Review) RecordCreatedAt() time.Time { return r.CreatedAt }

func (r Review) WithIdentity(id int64, createdAt time.Time) Review {
	r.ID = id
	r.CreatedAt = createdAt
	return r
}

// Clone returns a deep copy.
func (r Review) Clone() Review {
	if r.Report != nil {
		report := *r.Report
		r.Report = &report
	}
	return r
}

// Validate enforces the rating range and that a report exists only while reported.
func (r Review) Validate() error {
	if err := validateTags(r); err != nil {
		return err
	}
	if !IsValidReviewStatus(r.Status) {
		return validationErrorf("unknown review status %q", r.Status)
	}
	if r.Status == ReviewReported && r.Report == nil {
		return validationErrorf("reported review needs a report reason")
	}
	if r.Status != ReviewReported && r.Report != nil {
		return validationErrorf("only reported reviews carry a report")
	}
	return nil
}
