package issuerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "dashboard-approval-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Issuer) (id string, err error)
	GetByID(id string) (*dbmodels.Issuer, error)
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

func (i impl) Create(rec dbmodels.Issuer) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Issuer, error) {
	rec := dbmodels.Issuer{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Issuer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
