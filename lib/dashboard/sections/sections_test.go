package sections

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dashboard-approval-backend/db/dbtest"
	dashboardstore "dashboard-approval-backend/lib/dashboard/store"
	"dashboard-approval-backend/models"
	dbmodels "dashboard-approval-backend/models/db"
)

func TestRegistry(t *testing.T) {
	t.Run(`every entity type is registered`, func(t *testing.T) {
		registry := NewRegistry(dbtest.New(t))
		for _, entityType := range models.EntityTypes {
			list, err := registry.Load(entityType, "campaign-1")
			require.Nil(t, err)
			require.Len(t, list, 0)
		}
		_, err := registry.Load("dashboard-gallery", "campaign-1")
		require.NotNil(t, err)
	})

	t.Run(`load check`, func(t *testing.T) {
		DB := dbtest.New(t)
		store := dashboardstore.NewInstance(DB)
		registry := NewRegistryWithStore(store)
		name := "Jane Doe"
		for i := 0; i < 2; i++ {
			rec, err := dbmodels.NewDashboardOwner("campaign-1", dbmodels.OwnerPatch{FullName: &name})
			require.Nil(t, err)
			_, err = store.Create(rec)
			require.Nil(t, err)
		}
		website := "https://example.com"
		socials, err := dbmodels.NewDashboardSocials("campaign-1", dbmodels.SocialsPatch{Website: &website})
		require.Nil(t, err)
		_, err = store.Create(socials)
		require.Nil(t, err)

		list, err := registry.Load(models.EntityOwners, "campaign-1")
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.NotEqual(t, list[0].GetID(), list[1].GetID())

		list, err = registry.Load(models.EntitySocials, "campaign-1")
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, socials.ID, list[0].GetID())
		require.Equal(t, models.EntitySocials, list[0].EntityType())

		list, err = registry.Load(models.EntitySocials, "campaign-2")
		require.Nil(t, err)
		require.Len(t, list, 0)
	})

	t.Run(`single section per campaign`, func(t *testing.T) {
		store := dashboardstore.NewInstance(dbtest.New(t))
		summary := "Clean energy"
		for idx := 0; idx < 2; idx++ {
			rec, err := dbmodels.NewDashboardCampaignSummary("campaign-1", dbmodels.CampaignSummaryPatch{Summary: &summary})
			require.Nil(t, err)
			_, err = store.Create(rec)
			if idx == 0 {
				require.Nil(t, err)
			} else {
				require.NotNil(t, err)
			}
		}
	})

	t.Run(`transition guarded by stored status`, func(t *testing.T) {
		DB := dbtest.New(t)
		store := dashboardstore.NewInstance(DB)
		registry := NewRegistryWithStore(store)
		name := "Jane Doe"
		owner, err := dbmodels.NewDashboardOwner("campaign-1", dbmodels.OwnerPatch{FullName: &name})
		require.Nil(t, err)
		_, err = store.Create(owner)
		require.Nil(t, err)
		now := dbtest.NewClock().Now()
		require.Nil(t, owner.Submit("user-1", now))
		require.Nil(t, registry.Transition(owner, models.DashboardStatusDraft))

		first, err := store.GetOwner("campaign-1", owner.ID)
		require.Nil(t, err)
		second, err := store.GetOwner("campaign-1", owner.ID)
		require.Nil(t, err)

		require.Nil(t, first.Approve("admin-1", "", now))
		require.Nil(t, registry.Transition(first, models.DashboardStatusPending))

		require.Nil(t, second.Reject("admin-2", "stale", now))
		err = registry.Transition(second, models.DashboardStatusPending)
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))

		stored, err := store.GetOwner("campaign-1", owner.ID)
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusApproved, stored.Status)
		require.Equal(t, "admin-1", stored.ReviewedBy)
	})
}
