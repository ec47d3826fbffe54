package promotionhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	campaigninfostore "dashboard-approval-backend/lib/campaign/info-store"
	issuerstore "dashboard-approval-backend/lib/campaign/issuer-store"
	ownerstore "dashboard-approval-backend/lib/campaign/owner-store"
	campaignstore "dashboard-approval-backend/lib/campaign/store"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	dbmodels "dashboard-approval-backend/models/db"
)

// Provider copies approved dashboard sections into the live campaign tables.
type Provider interface {
	Promote(list ...dbmodels.SubmittableEntity) error
}

func NewHandler(DB *gorm.DB) Provider {
	initchecker.CheckInit("db", DB)
	return impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Promote(list ...dbmodels.SubmittableEntity) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range list {
			if err := promote(tx, rec); err != nil {
				return errors.Wrapf(err, "promoting %v %v", rec.EntityType(), rec.GetID())
			}
		}
		return nil
	})
}

func promote(tx *gorm.DB, rec dbmodels.SubmittableEntity) error {
	switch draft := rec.(type) {
	case *dbmodels.DashboardCampaignInfo:
		return campaigninfostore.NewInstance(tx).Upsert(dbmodels.CampaignInfo{
			CampaignID:    draft.CampaignID,
			Milestones:    draft.Milestones,
			InvestorPitch: draft.InvestorPitch,
			PitchVideoURL: draft.PitchVideoURL,
		})
	case *dbmodels.DashboardCampaignSummary:
		return campaignstore.NewInstance(tx).Update(draft.CampaignID, map[string]interface{}{
			"summary":  draft.Summary,
			"tag_line": draft.TagLine,
		})
	case *dbmodels.DashboardSocials:
		return promoteSocials(tx, draft)
	case *dbmodels.DashboardOwner:
		_, err := ownerstore.NewInstance(tx).Create(dbmodels.Owner{
			CampaignID: draft.CampaignID,
			FullName:   draft.FullName,
			Title:      draft.Title,
			Bio:        draft.Bio,
			LinkedIn:   draft.LinkedIn,
			Email:      draft.Email,
		})
		return err
	}
	return errors.Errorf("no promotion defined for %T", rec)
}

func promoteSocials(tx *gorm.DB, draft *dbmodels.DashboardSocials) error {
	campaign, err := campaignstore.NewInstance(tx).GetByID(draft.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return errors.Errorf("campaign %v not found", draft.CampaignID)
	}
	if campaign.IssuerID == nil || *campaign.IssuerID == "" {
		log.WithField("campaign_id", draft.CampaignID).Warn("campaign has no issuer, socials not promoted")
		return nil
	}
	return issuerstore.NewInstance(tx).Update(*campaign.IssuerID, map[string]interface{}{
		"website":   draft.Website,
		"linked_in": draft.LinkedIn,
		"facebook":  draft.Facebook,
		"twitter":   draft.Twitter,
		"instagram": draft.Instagram,
		"youtube":   draft.Youtube,
	})
}
