package approvalstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dashboard-approval-backend/models"
	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	// SubmitForApproval creates the campaign ledger row or overwrites it whatever its status.
	SubmitForApproval(campaignID string, items models.SubmittedItems, submittedBy string, now time.Time) (id string, err error)
	// SubmitIfNotPending does the same in one statement unless the existing row is pending.
	// ok is false when a pending row blocked the write.
	SubmitIfNotPending(campaignID string, items models.SubmittedItems, submittedBy string, now time.Time) (id string, ok bool, err error)
	HasPendingApproval(campaignID string) (bool, error)
	GetByCampaign(campaignID string) (*dbmodels.Approval, error)
	// Review moves a pending row to status. ok is false when there is no pending row.
	Review(campaignID string, status models.ApprovalStatus, reviewedBy, comment string, now time.Time) (ok bool, err error)
	List(filter Filter) (list []dbmodels.Approval, rowCount int64, err error)
	ListForStatistics() ([]dbmodels.Approval, error)
}

type Filter struct {
	Status models.ApprovalStatus
	Offset int
	Limit  int
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SubmitForApproval(campaignID string, items models.SubmittedItems, submittedBy string, now time.Time) (id string, err error) {
	id, _, err = i.upsert(campaignID, items, submittedBy, now, false)
	return id, err
}

func (i impl) SubmitIfNotPending(campaignID string, items models.SubmittedItems, submittedBy string, now time.Time) (id string, ok bool, err error) {
	return i.upsert(campaignID, items, submittedBy, now, true)
}

func (i impl) upsert(campaignID string, items models.SubmittedItems, submittedBy string, now time.Time, guardPending bool) (id string, ok bool, err error) {
	rec := dbmodels.Approval{
		BaseModel: dbmodels.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
		CampaignID:     campaignID,
		SubmittedItems: items,
		Status:         models.ApprovalStatusPending,
		SubmittedAt:    now,
		SubmittedBy:    submittedBy,
	}
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"submitted_items": items,
			"status":          models.ApprovalStatusPending,
			"submitted_at":    now,
			"submitted_by":    submittedBy,
			"reviewed_at":     nil,
			"reviewed_by":     "",
			"comment":         "",
			"updated_at":      now,
		}),
	}
	if guardPending {
		onConflict.Where = clause.Where{Exprs: []clause.Expression{
			clause.Neq{Column: clause.Column{Table: "approvals", Name: "status"}, Value: models.ApprovalStatusPending},
		}}
	}
	result := i.db.
		Clauses(onConflict).
		Create(&rec)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	current, err := i.GetByCampaign(campaignID)
	if err != nil {
		return "", false, err
	}
	if current == nil {
		return "", false, errors.Errorf("approval for campaign %v disappeared after upsert", campaignID)
	}
	return current.ID, true, nil
}

func (i impl) HasPendingApproval(campaignID string) (bool, error) {
	rec, err := i.GetByCampaign(campaignID)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.IsPending(), nil
}

func (i impl) GetByCampaign(campaignID string) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
	err := i.db.
		Where("campaign_id = ?", campaignID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Review(campaignID string, status models.ApprovalStatus, reviewedBy, comment string, now time.Time) (ok bool, err error) {
	result := i.db.
		Model(&dbmodels.Approval{}).
		Where("campaign_id = ?", campaignID).
		Where("status = ?", models.ApprovalStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_at": now,
			"reviewed_by": reviewedBy,
			"comment":     comment,
			"updated_at":  now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (i impl) List(filter Filter) (list []dbmodels.Approval, rowCount int64, err error) {
	query := func() *gorm.DB {
		tx := i.db.Model(&dbmodels.Approval{})
		if filter.Status != "" {
			tx = tx.Where("status = ?", filter.Status)
		}
		return tx
	}
	if err = query().Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	list = []dbmodels.Approval{}
	tx := query()
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit).Offset(filter.Offset)
	}
	err = tx.
		Order("submitted_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListForStatistics() ([]dbmodels.Approval, error) {
	list := []dbmodels.Approval{}
	err := i.db.
		Select("id", "status", "submitted_items").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
