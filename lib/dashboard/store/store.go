package dashboardstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"dashboard-approval-backend/models"
	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SubmittableEntity) (id string, err error)
	Save(rec dbmodels.SubmittableEntity) error
	// SaveIfStatus writes the row only while the stored status is still status.
	// ok is false when another request changed it first.
	SaveIfStatus(rec dbmodels.SubmittableEntity, status models.DashboardStatus) (ok bool, err error)
	GetCampaignInfo(campaignID string) (*dbmodels.DashboardCampaignInfo, error)
	GetCampaignSummary(campaignID string) (*dbmodels.DashboardCampaignSummary, error)
	GetSocials(campaignID string) (*dbmodels.DashboardSocials, error)
	GetOwner(campaignID, id string) (*dbmodels.DashboardOwner, error)
	ListOwners(campaignID string) ([]dbmodels.DashboardOwner, error)
	DeleteOwner(campaignID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SubmittableEntity) (id string, err error) {
	err = i.db.
		Create(rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.GetID(), nil
}

func (i impl) Save(rec dbmodels.SubmittableEntity) error {
	if rec.GetID() == "" {
		return errors.New("can not save a dashboard section without id")
	}
	return i.db.
		Save(rec).
		Error
}

func (i impl) SaveIfStatus(rec dbmodels.SubmittableEntity, status models.DashboardStatus) (ok bool, err error) {
	if rec.GetID() == "" {
		return false, errors.New("can not save a dashboard section without id")
	}
	result := i.db.
		Model(rec).
		Where("status = ?", status).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (i impl) GetCampaignInfo(campaignID string) (*dbmodels.DashboardCampaignInfo, error) {
	rec := dbmodels.DashboardCampaignInfo{}
	found, err := i.firstByCampaign(campaignID, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetCampaignSummary(campaignID string) (*dbmodels.DashboardCampaignSummary, error) {
	rec := dbmodels.DashboardCampaignSummary{}
	found, err := i.firstByCampaign(campaignID, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetSocials(campaignID string) (*dbmodels.DashboardSocials, error) {
	rec := dbmodels.DashboardSocials{}
	found, err := i.firstByCampaign(campaignID, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetOwner(campaignID, id string) (*dbmodels.DashboardOwner, error) {
	rec := dbmodels.DashboardOwner{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) ListOwners(campaignID string) ([]dbmodels.DashboardOwner, error) {
	list := []dbmodels.DashboardOwner{}
	err := i.db.
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteOwner(campaignID, id string) error {
	return i.db.
		Where("campaign_id = ?", campaignID).
		Where("id = ?", id).
		Delete(&dbmodels.DashboardOwner{}).
		Error
}

func (i impl) firstByCampaign(campaignID string, out interface{}) (found bool, err error) {
	err = i.db.
		Where("campaign_id = ?", campaignID).
		First(out).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
