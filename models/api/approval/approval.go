package approvalapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
	dbmodels "dashboard-approval-backend/models/db"
)

type ApprovalView struct {
	ID             string                `json:"id"`
	CampaignID     string                `json:"campaign_id"`
	SubmittedItems models.SubmittedItems `json:"submitted_items"`
	Status         models.ApprovalStatus `json:"status"`
	SubmittedAt    time.Time             `json:"submitted_at"`
	SubmittedBy    string                `json:"submitted_by"`
	ReviewedAt     *time.Time            `json:"reviewed_at"`
	ReviewedBy     string                `json:"reviewed_by"`
	Comment        string                `json:"comment"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func ApprovalConvert(rec dbmodels.Approval) ApprovalView {
	return ApprovalView{
		ID:             rec.ID,
		CampaignID:     rec.CampaignID,
		SubmittedItems: rec.SubmittedItems,
		Status:         rec.Status,
		SubmittedAt:    rec.SubmittedAt,
		SubmittedBy:    rec.SubmittedBy,
		ReviewedAt:     rec.ReviewedAt,
		ReviewedBy:     rec.ReviewedBy,
		Comment:        rec.Comment,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type ApprovalHistoryView struct {
	ID         string            `json:"id"`
	EntityID   string            `json:"entity_id"`
	EntityType models.EntityType `json:"entity_type"`
	CampaignID string            `json:"campaign_id"`
	Status     string            `json:"status"`
	UserID     string            `json:"user_id"`
	Comment    string            `json:"comment,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func ApprovalHistoryConvert(rec dbmodels.ApprovalHistory) ApprovalHistoryView {
	return ApprovalHistoryView{
		ID:         rec.ID,
		EntityID:   rec.EntityID,
		EntityType: rec.EntityType,
		CampaignID: rec.CampaignID,
		Status:     rec.Status,
		UserID:     rec.UserID,
		Comment:    rec.Comment,
		CreatedAt:  rec.CreatedAt,
	}
}

type Statistics struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func (s *Statistics) Add(status models.ApprovalStatus) {
	switch status {
	case models.ApprovalStatusPending:
		s.Pending++
	case models.ApprovalStatusApproved:
		s.Approved++
	case models.ApprovalStatusRejected:
		s.Rejected++
	}
}

type ApprovalFilter struct {
	apimodels.Pagination
	Status models.ApprovalStatus `json:"status" query:"status"`
}

func (f ApprovalFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.Errorf("unknown approval status: %v", f.Status)
	}
	return nil
}

type HistoryFilter struct {
	EntityID   string `query:"entity_id"`
	UserID     string `query:"user_id"`
	CampaignID string `query:"campaign_id"`
}

type SubmitRequest struct {
	Items models.SubmittedItems `json:"items"`
	Note  string                `json:"note"`
}

func (r SubmitRequest) Validate() error {
	types, unknown := r.Items.Types()
	if len(unknown) > 0 {
		return errors.Errorf("unknown dashboard items: %v", strings.Join(unknown, ", "))
	}
	if len(types) == 0 {
		return errors.New("no dashboard items selected for submission")
	}
	return nil
}

type SubmitResult struct {
	SubmissionID   string                  `json:"submission_id,omitempty"`
	ApprovalID     string                  `json:"approval_id,omitempty"`
	Status         models.SubmissionStatus `json:"status"`
	SubmittedItems models.SubmittedItems   `json:"submitted_items"`
	Errors         []string                `json:"errors,omitempty"`
}

type ReviewRequest struct {
	EntityTypes []string            `json:"entity_types"`
	Action      models.ReviewAction `json:"action"`
	Comment     string              `json:"comment"`
}

func (r ReviewRequest) Validate() error {
	if !r.Action.IsValid() {
		return errors.Errorf("unknown review action: %v", r.Action)
	}
	if len(r.EntityTypes) == 0 {
		return errors.New("no entity types selected for review")
	}
	return nil
}

// Types parses entity types keeping the caller order.
func (r ReviewRequest) Types() ([]models.EntityType, error) {
	result := make([]models.EntityType, 0, len(r.EntityTypes))
	for _, value := range r.EntityTypes {
		t, err := models.ParseEntityType(value)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

type ItemReviewStatus string

const (
	ItemReviewApproved ItemReviewStatus = "approved"
	ItemReviewRejected ItemReviewStatus = "rejected"
	ItemReviewSkipped  ItemReviewStatus = "skipped"
)

type ItemReviewResult struct {
	Status   ItemReviewStatus `json:"status"`
	Count    int              `json:"count"`
	Promoted bool             `json:"promoted"`
	Error    string           `json:"error,omitempty"`
}

type ReviewResult struct {
	Success bool                                   `json:"success"`
	Items   map[models.EntityType]ItemReviewResult `json:"items"`
}
