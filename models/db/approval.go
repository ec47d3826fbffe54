package dbmodels

import (
	"time"

	"dashboard-approval-backend/models"
)

// Approval is the per-campaign ledger row of the current (or most recent) submission.
type Approval struct {
	BaseModel
	CampaignID     string                `gorm:"type:varchar(36);uniqueIndex;not null"`
	SubmittedItems models.SubmittedItems `gorm:"type:text"`
	Status         models.ApprovalStatus `gorm:"type:varchar(16);index"`
	SubmittedAt    time.Time
	SubmittedBy    string `gorm:"type:varchar(36)"`
	ReviewedAt     *time.Time
	ReviewedBy     string `gorm:"type:varchar(36)"`
	Comment        string
}

func (r Approval) IsPending() bool {
	return r.Status == models.ApprovalStatusPending
}

// ApprovalHistory is an append-only record of one status transition.
type ApprovalHistory struct {
	BaseModel
	EntityID   string            `gorm:"type:varchar(36);index"`
	EntityType models.EntityType `gorm:"type:varchar(64);index"`
	CampaignID string            `gorm:"type:varchar(36);index"`
	Status     string            `gorm:"type:varchar(16)"`
	UserID     string            `gorm:"type:varchar(36);index"`
	Comment    string
}

func (ApprovalHistory) TableName() string {
	return "approval_history"
}

// DashboardSubmission tracks one submit call of a campaign dashboard.
type DashboardSubmission struct {
	BaseModel
	CampaignID     string                  `gorm:"type:varchar(36);index"`
	ApprovalID     string                  `gorm:"type:varchar(36)"`
	SubmittedBy    string                  `gorm:"type:varchar(36);index"`
	SubmittedItems models.SubmittedItems   `gorm:"type:text"`
	Note           string
	Status         models.SubmissionStatus `gorm:"type:varchar(16)"`
	Errors         models.Messages         `gorm:"type:text"`
}
