// Package dbtest opens throwaway migrated databases for package tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dashboard-approval-backend/db"
	dbmodels "dashboard-approval-backend/models/db"
)

// New returns an in-memory sqlite database with every table migrated.
// The single connection keeps the shared memory database alive until the test ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"
	DB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.Nil(t, err)
	sqlDB, err := DB.DB()
	require.Nil(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	require.Nil(t, db.AutoMigrateDB(DB))
	return DB
}

// Clock is a settable time source.
type Clock struct {
	Current time.Time
}

func NewClock() *Clock {
	return &Clock{Current: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	return c.Current
}

func (c *Clock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// SeedCampaign stores a campaign, with a linked issuer when withIssuer is set.
func SeedCampaign(t *testing.T, DB *gorm.DB, withIssuer bool) dbmodels.Campaign {
	t.Helper()
	campaign := dbmodels.Campaign{
		Slug: "campaign-" + uuid.NewString(),
		Name: "Solar Farm",
	}
	if withIssuer {
		issuer := dbmodels.Issuer{Name: "Solar Farm Ltd", Website: "https://old.example.com"}
		require.Nil(t, DB.Create(&issuer).Error)
		campaign.IssuerID = &issuer.ID
	}
	require.Nil(t, DB.Omit("Issuer").Create(&campaign).Error)
	return campaign
}
