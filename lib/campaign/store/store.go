package campaignstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Campaign) (id string, err error)
	GetByID(id string) (*dbmodels.Campaign, error)
	GetBySlug(slug string) (*dbmodels.Campaign, error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Campaign) (id string, err error) {
	err = i.db.
		Omit("Issuer").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Campaign, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetBySlug(slug string) (*dbmodels.Campaign, error) {
	return i.first(i.db.Where("slug = ?", slug))
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	result := i.db.
		Model(&dbmodels.Campaign{}).
		Where("id = ?", id).
		Updates(updMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.Errorf("campaign %v not found", id)
	}
	return nil
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Campaign, error) {
	rec := dbmodels.Campaign{}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
