package campaigninfostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.CampaignInfo) error
	GetByCampaign(campaignID string) (*dbmodels.CampaignInfo, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert writes the published campaign info, one row per campaign.
func (i impl) Upsert(rec dbmodels.CampaignInfo) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"milestones", "investor_pitch", "pitch_video_url", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) GetByCampaign(campaignID string) (*dbmodels.CampaignInfo, error) {
	rec := dbmodels.CampaignInfo{}
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
