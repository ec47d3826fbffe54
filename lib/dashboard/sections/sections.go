package sections

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dashboardstore "dashboard-approval-backend/lib/dashboard/store"
	"dashboard-approval-backend/models"
	dbmodels "dashboard-approval-backend/models/db"
)

type loader func(campaignID string) ([]dbmodels.SubmittableEntity, error)

// Registry maps every entity type to the loader of its draft rows.
type Registry struct {
	store   dashboardstore.Provider
	loaders map[models.EntityType]loader
}

func NewRegistry(DB *gorm.DB) Registry {
	return NewRegistryWithStore(dashboardstore.NewInstance(DB))
}

func NewRegistryWithStore(store dashboardstore.Provider) Registry {
	return Registry{
		store: store,
		loaders: map[models.EntityType]loader{
			models.EntityCampaignInfo: func(campaignID string) ([]dbmodels.SubmittableEntity, error) {
				rec, err := store.GetCampaignInfo(campaignID)
				if err != nil || rec == nil {
					return nil, err
				}
				return []dbmodels.SubmittableEntity{rec}, nil
			},
			models.EntityCampaignSummary: func(campaignID string) ([]dbmodels.SubmittableEntity, error) {
				rec, err := store.GetCampaignSummary(campaignID)
				if err != nil || rec == nil {
					return nil, err
				}
				return []dbmodels.SubmittableEntity{rec}, nil
			},
			models.EntitySocials: func(campaignID string) ([]dbmodels.SubmittableEntity, error) {
				rec, err := store.GetSocials(campaignID)
				if err != nil || rec == nil {
					return nil, err
				}
				return []dbmodels.SubmittableEntity{rec}, nil
			},
			models.EntityOwners: func(campaignID string) ([]dbmodels.SubmittableEntity, error) {
				list, err := store.ListOwners(campaignID)
				if err != nil {
					return nil, err
				}
				result := make([]dbmodels.SubmittableEntity, 0, len(list))
				for idx := range list {
					result = append(result, &list[idx])
				}
				return result, nil
			},
		},
	}
}

// Load returns the draft rows of the type for the campaign, empty when there are none.
func (r Registry) Load(entityType models.EntityType, campaignID string) ([]dbmodels.SubmittableEntity, error) {
	load, ok := r.loaders[entityType]
	if !ok {
		return nil, errors.Errorf("no dashboard section registered for %v", entityType)
	}
	list, err := load(campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %v of campaign %v", entityType, campaignID)
	}
	return list, nil
}

// Transition persists a status change made on rec, provided the stored row still has status from.
func (r Registry) Transition(rec dbmodels.SubmittableEntity, from models.DashboardStatus) error {
	ok, err := r.store.SaveIfStatus(rec, from)
	if err != nil {
		return models.NewInternalError(err, "dashboard section update failed")
	}
	if !ok {
		return models.NewConflictError("%s was changed by another request", rec.EntityType().ToHuman())
	}
	return nil
}
