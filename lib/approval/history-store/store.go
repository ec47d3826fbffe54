package approvalhistorystore

import (
	"gorm.io/gorm"

	dbmodels "dashboard-approval-backend/models/db"
)

// Provider is append-only: history rows are never updated or deleted.
type Provider interface {
	Create(rec dbmodels.ApprovalHistory) (id string, err error)
	List(filter Filter) (list []dbmodels.ApprovalHistory, err error)
}

type Filter struct {
	EntityID   string
	UserID     string
	CampaignID string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalHistory) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(filter Filter) (list []dbmodels.ApprovalHistory, err error) {
	list = []dbmodels.ApprovalHistory{}
	tx := i.db.Model(&dbmodels.ApprovalHistory{})
	if filter.EntityID != "" {
		tx = tx.Where("entity_id = ?", filter.EntityID)
	}
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.CampaignID != "" {
		tx = tx.Where("campaign_id = ?", filter.CampaignID)
	}
	err = tx.
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
