package dashboardhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	campaignstore "dashboard-approval-backend/lib/campaign/store"
	dashboardstore "dashboard-approval-backend/lib/dashboard/store"
	"dashboard-approval-backend/lib/utils/dberrors"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	"dashboard-approval-backend/lib/utils/sanitize"
	"dashboard-approval-backend/models"
	dashboardapimodels "dashboard-approval-backend/models/api/dashboard"
	dbmodels "dashboard-approval-backend/models/db"
)

// Provider edits the draft dashboard sections of a campaign.
type Provider interface {
	GetCampaignInfo(campaignID string) (dashboardapimodels.CampaignInfoView, error)
	SaveCampaignInfo(campaignID, userID string, data dashboardapimodels.CampaignInfoData) (dashboardapimodels.CampaignInfoView, error)
	GetCampaignSummary(campaignID string) (dashboardapimodels.CampaignSummaryView, error)
	SaveCampaignSummary(campaignID, userID string, data dashboardapimodels.CampaignSummaryData) (dashboardapimodels.CampaignSummaryView, error)
	GetSocials(campaignID string) (dashboardapimodels.SocialsView, error)
	SaveSocials(campaignID, userID string, data dashboardapimodels.SocialsData) (dashboardapimodels.SocialsView, error)
	ListOwners(campaignID string) ([]dashboardapimodels.OwnerView, error)
	CreateOwner(campaignID, userID string, data dashboardapimodels.OwnerData) (dashboardapimodels.OwnerView, error)
	UpdateOwner(campaignID, userID, id string, data dashboardapimodels.OwnerData) (dashboardapimodels.OwnerView, error)
	DeleteOwner(campaignID, userID, id string) error
}

func NewHandler(DB *gorm.DB, now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	initchecker.CheckInit("db", DB)
	return impl{
		store:         dashboardstore.NewInstance(DB),
		campaignStore: campaignstore.NewInstance(DB),
		now:           now,
	}
}

type impl struct {
	store         dashboardstore.Provider
	campaignStore campaignstore.Provider
	now           func() time.Time
}

func (i impl) GetLogger(campaignID string) *log.Entry {
	return log.WithField("campaign_id", campaignID)
}

func (i impl) GetCampaignInfo(campaignID string) (dashboardapimodels.CampaignInfoView, error) {
	rec, err := i.store.GetCampaignInfo(campaignID)
	if err != nil {
		return dashboardapimodels.CampaignInfoView{}, models.NewInternalError(err, "campaign info lookup failed")
	}
	if rec == nil {
		return dashboardapimodels.CampaignInfoView{}, models.NewNotFoundError("Campaign info not found")
	}
	return dashboardapimodels.CampaignInfoConvert(*rec), nil
}

func (i impl) SaveCampaignInfo(campaignID, userID string, data dashboardapimodels.CampaignInfoData) (dashboardapimodels.CampaignInfoView, error) {
	if err := i.checkCampaign(campaignID); err != nil {
		return dashboardapimodels.CampaignInfoView{}, err
	}
	patch := data.Patch()
	patch.Milestones = sanitize.RichTextPtr(patch.Milestones)
	patch.InvestorPitch = sanitize.RichTextPtr(patch.InvestorPitch)

	rec, err := i.store.GetCampaignInfo(campaignID)
	if err != nil {
		return dashboardapimodels.CampaignInfoView{}, models.NewInternalError(err, "campaign info lookup failed")
	}
	if rec == nil {
		rec, err = dbmodels.NewDashboardCampaignInfo(campaignID, patch)
		if err != nil {
			return dashboardapimodels.CampaignInfoView{}, err
		}
		err = i.create(rec)
	} else {
		err = i.update(rec, userID, func() error { return rec.Update(patch, i.now()) })
	}
	if err != nil {
		return dashboardapimodels.CampaignInfoView{}, err
	}
	return dashboardapimodels.CampaignInfoConvert(*rec), nil
}

func (i impl) GetCampaignSummary(campaignID string) (dashboardapimodels.CampaignSummaryView, error) {
	rec, err := i.store.GetCampaignSummary(campaignID)
	if err != nil {
		return dashboardapimodels.CampaignSummaryView{}, models.NewInternalError(err, "campaign summary lookup failed")
	}
	if rec == nil {
		return dashboardapimodels.CampaignSummaryView{}, models.NewNotFoundError("Campaign summary not found")
	}
	return dashboardapimodels.CampaignSummaryConvert(*rec), nil
}

func (i impl) SaveCampaignSummary(campaignID, userID string, data dashboardapimodels.CampaignSummaryData) (dashboardapimodels.CampaignSummaryView, error) {
	if err := i.checkCampaign(campaignID); err != nil {
		return dashboardapimodels.CampaignSummaryView{}, err
	}
	patch := data.Patch()
	patch.Summary = sanitize.RichTextPtr(patch.Summary)

	rec, err := i.store.GetCampaignSummary(campaignID)
	if err != nil {
		return dashboardapimodels.CampaignSummaryView{}, models.NewInternalError(err, "campaign summary lookup failed")
	}
	if rec == nil {
		rec, err = dbmodels.NewDashboardCampaignSummary(campaignID, patch)
		if err != nil {
			return dashboardapimodels.CampaignSummaryView{}, err
		}
		err = i.create(rec)
	} else {
		err = i.update(rec, userID, func() error { return rec.Update(patch, i.now()) })
	}
	if err != nil {
		return dashboardapimodels.CampaignSummaryView{}, err
	}
	return dashboardapimodels.CampaignSummaryConvert(*rec), nil
}

func (i impl) GetSocials(campaignID string) (dashboardapimodels.SocialsView, error) {
	rec, err := i.store.GetSocials(campaignID)
	if err != nil {
		return dashboardapimodels.SocialsView{}, models.NewInternalError(err, "socials lookup failed")
	}
	if rec == nil {
		return dashboardapimodels.SocialsView{}, models.NewNotFoundError("Socials not found")
	}
	return dashboardapimodels.SocialsConvert(*rec), nil
}

func (i impl) SaveSocials(campaignID, userID string, data dashboardapimodels.SocialsData) (dashboardapimodels.SocialsView, error) {
	if err := i.checkCampaign(campaignID); err != nil {
		return dashboardapimodels.SocialsView{}, err
	}
	patch := data.Patch()

	rec, err := i.store.GetSocials(campaignID)
	if err != nil {
		return dashboardapimodels.SocialsView{}, models.NewInternalError(err, "socials lookup failed")
	}
	if rec == nil {
		rec, err = dbmodels.NewDashboardSocials(campaignID, patch)
		if err != nil {
			return dashboardapimodels.SocialsView{}, err
		}
		err = i.create(rec)
	} else {
		err = i.update(rec, userID, func() error { return rec.Update(patch, i.now()) })
	}
	if err != nil {
		return dashboardapimodels.SocialsView{}, err
	}
	return dashboardapimodels.SocialsConvert(*rec), nil
}

func (i impl) ListOwners(campaignID string) ([]dashboardapimodels.OwnerView, error) {
	list, err := i.store.ListOwners(campaignID)
	if err != nil {
		return nil, models.NewInternalError(err, "owners lookup failed")
	}
	result := make([]dashboardapimodels.OwnerView, 0, len(list))
	for _, rec := range list {
		result = append(result, dashboardapimodels.OwnerConvert(rec))
	}
	return result, nil
}

func (i impl) CreateOwner(campaignID, userID string, data dashboardapimodels.OwnerData) (dashboardapimodels.OwnerView, error) {
	if err := i.checkCampaign(campaignID); err != nil {
		return dashboardapimodels.OwnerView{}, err
	}
	patch := data.Patch()
	patch.Bio = sanitize.RichTextPtr(patch.Bio)
	rec, err := dbmodels.NewDashboardOwner(campaignID, patch)
	if err != nil {
		return dashboardapimodels.OwnerView{}, err
	}
	if err = i.create(rec); err != nil {
		return dashboardapimodels.OwnerView{}, err
	}
	return dashboardapimodels.OwnerConvert(*rec), nil
}

func (i impl) UpdateOwner(campaignID, userID, id string, data dashboardapimodels.OwnerData) (dashboardapimodels.OwnerView, error) {
	rec, err := i.getOwner(campaignID, id)
	if err != nil {
		return dashboardapimodels.OwnerView{}, err
	}
	patch := data.Patch()
	patch.Bio = sanitize.RichTextPtr(patch.Bio)
	err = i.update(rec, userID, func() error { return rec.Update(patch, i.now()) })
	if err != nil {
		return dashboardapimodels.OwnerView{}, err
	}
	return dashboardapimodels.OwnerConvert(*rec), nil
}

func (i impl) DeleteOwner(campaignID, userID, id string) error {
	rec, err := i.getOwner(campaignID, id)
	if err != nil {
		return err
	}
	switch rec.Status {
	case models.DashboardStatusApproved:
		return models.NewConflictError("approved owner can not be deleted")
	case models.DashboardStatusPending:
		return models.NewConflictError("owner is pending review and can not be deleted")
	}
	if err = i.store.DeleteOwner(campaignID, id); err != nil {
		i.GetLogger(campaignID).WithField("owner_id", id).WithError(err).Error("owner delete failed")
		return models.NewInternalError(err, "owner delete failed")
	}
	return nil
}

func (i impl) getOwner(campaignID, id string) (*dbmodels.DashboardOwner, error) {
	rec, err := i.store.GetOwner(campaignID, id)
	if err != nil {
		return nil, models.NewInternalError(err, "owner lookup failed")
	}
	if rec == nil {
		return nil, models.NewNotFoundError("Owner not found")
	}
	return rec, nil
}

func (i impl) checkCampaign(campaignID string) error {
	campaign, err := i.campaignStore.GetByID(campaignID)
	if err != nil {
		return models.NewInternalError(err, "campaign lookup failed")
	}
	if campaign == nil {
		return models.NewNotFoundError("Campaign not found")
	}
	return nil
}

func (i impl) create(rec dbmodels.SubmittableEntity) error {
	_, err := i.store.Create(rec)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return models.NewConflictError("%s already exists for the campaign", rec.EntityType().ToHuman())
		}
		i.GetLogger(rec.GetCampaignID()).
			WithField("entity_type", rec.EntityType()).
			WithError(err).
			Error("dashboard section create failed")
		return models.NewInternalError(err, "dashboard section create failed")
	}
	return nil
}

// update applies the change when the current user may edit the section and persists it.
// A section under review is editable only by the user who submitted it.
func (i impl) update(rec dbmodels.SubmittableEntity, userID string, apply func() error) error {
	if rec.GetStatus() == models.DashboardStatusPending && !rec.CanEdit(userID) {
		return models.NewConflictError("%s is pending review", rec.EntityType().ToHuman())
	}
	if err := apply(); err != nil {
		return err
	}
	if err := i.store.Save(rec); err != nil {
		i.GetLogger(rec.GetCampaignID()).
			WithField("entity_type", rec.EntityType()).
			WithError(err).
			Error("dashboard section update failed")
		return models.NewInternalError(err, "dashboard section update failed")
	}
	return nil
}
