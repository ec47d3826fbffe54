package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dbmodels "dashboard-approval-backend/models/db"
)

func AutoMigrateDB(DB *gorm.DB) error {
	log.Info("running migrations")
	tables := []interface{}{
		&dbmodels.Issuer{},
		&dbmodels.Campaign{},
		&dbmodels.CampaignInfo{},
		&dbmodels.Owner{},
		&dbmodels.DashboardCampaignInfo{},
		&dbmodels.DashboardCampaignSummary{},
		&dbmodels.DashboardSocials{},
		&dbmodels.DashboardOwner{},
		&dbmodels.Approval{},
		&dbmodels.ApprovalHistory{},
		&dbmodels.DashboardSubmission{},
	}
	for _, table := range tables {
		if err := DB.AutoMigrate(table); err != nil {
			return errors.Wrapf(err, "migration of %T failed", table)
		}
	}
	// single-instance sections: one draft row per campaign
	for _, table := range []string{"dashboard_campaign_infos", "dashboard_campaign_summaries", "dashboard_socials"} {
		stmt := "CREATE UNIQUE INDEX IF NOT EXISTS uix_" + table + "_campaign_id ON " + table + " (campaign_id)"
		if err := DB.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "unique index on %v failed", table)
		}
	}
	log.Info("migrations finished")
	return nil
}
