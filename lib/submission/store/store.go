package submissionstore

import (
	"gorm.io/gorm"

	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DashboardSubmission) (id string, err error)
	List(campaignID string) ([]dbmodels.DashboardSubmission, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DashboardSubmission) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(campaignID string) ([]dbmodels.DashboardSubmission, error) {
	list := []dbmodels.DashboardSubmission{}
	err := i.db.
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
