package dashboardhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dashboard-approval-backend/db/dbtest"
	dashboardstore "dashboard-approval-backend/lib/dashboard/store"
	"dashboard-approval-backend/models"
	dashboardapimodels "dashboard-approval-backend/models/api/dashboard"
)

func strPtr(value string) *string {
	return &value
}

func TestDashboardHandler(t *testing.T) {
	t.Run(`campaign info save check`, func(t *testing.T) {
		DB := dbtest.New(t)
		campaign := dbtest.SeedCampaign(t, DB, false)
		h := NewHandler(DB, dbtest.NewClock().Now)

		_, err := h.GetCampaignInfo(campaign.ID)
		require.Equal(t, models.ErrorKindNotFound, models.ErrorKindOf(err))

		view, err := h.SaveCampaignInfo(campaign.ID, "user-1", dashboardapimodels.CampaignInfoData{
			InvestorPitch: strPtr(`<p>Invest <script>alert(1)</script>now</p>`),
			PitchVideoURL: strPtr("https://video.example.com/pitch"),
		})
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusDraft, view.Status)
		require.Equal(t, "<p>Invest now</p>", view.InvestorPitch)

		view, err = h.SaveCampaignInfo(campaign.ID, "user-1", dashboardapimodels.CampaignInfoData{
			Milestones: strPtr("Q1 permits"),
		})
		require.Nil(t, err)
		require.Equal(t, "Q1 permits", view.Milestones)
		require.Equal(t, "https://video.example.com/pitch", view.PitchVideoURL)

		stored, err := h.GetCampaignInfo(campaign.ID)
		require.Nil(t, err)
		require.Equal(t, view.ID, stored.ID)

		_, err = h.SaveCampaignInfo("missing-campaign", "user-1", dashboardapimodels.CampaignInfoData{})
		require.Equal(t, models.ErrorKindNotFound, models.ErrorKindOf(err))
	})

	t.Run(`pending section edit check`, func(t *testing.T) {
		DB := dbtest.New(t)
		clock := dbtest.NewClock()
		campaign := dbtest.SeedCampaign(t, DB, false)
		h := NewHandler(DB, clock.Now)

		_, err := h.SaveSocials(campaign.ID, "user-1", dashboardapimodels.SocialsData{Website: strPtr("https://solar.example.com")})
		require.Nil(t, err)

		store := dashboardstore.NewInstance(DB)
		rec, err := store.GetSocials(campaign.ID)
		require.Nil(t, err)
		require.Nil(t, rec.Submit("user-1", clock.Now()))
		require.Nil(t, store.Save(rec))

		_, err = h.SaveSocials(campaign.ID, "user-2", dashboardapimodels.SocialsData{Twitter: strPtr("https://twitter.com/solar")})
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))

		view, err := h.SaveSocials(campaign.ID, "user-1", dashboardapimodels.SocialsData{Twitter: strPtr("https://twitter.com/solar")})
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusPending, view.Status)
		require.Equal(t, "https://twitter.com/solar", view.Twitter)

		require.Nil(t, rec.Approve("admin-1", "", clock.Now()))
		require.Nil(t, store.Save(rec))
		_, err = h.SaveSocials(campaign.ID, "user-1", dashboardapimodels.SocialsData{Twitter: strPtr("https://twitter.com/other")})
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))
	})

	t.Run(`owners check`, func(t *testing.T) {
		DB := dbtest.New(t)
		campaign := dbtest.SeedCampaign(t, DB, false)
		h := NewHandler(DB, nil)

		first, err := h.CreateOwner(campaign.ID, "user-1", dashboardapimodels.OwnerData{
			FullName: strPtr("Jane Doe"),
			Bio:      strPtr(`<b onclick="x()">Founder</b>`),
		})
		require.Nil(t, err)
		require.Equal(t, "Founder", first.Bio)
		_, err = h.CreateOwner(campaign.ID, "user-1", dashboardapimodels.OwnerData{FullName: strPtr("John Roe")})
		require.Nil(t, err)

		list, err := h.ListOwners(campaign.ID)
		require.Nil(t, err)
		require.Len(t, list, 2)

		updated, err := h.UpdateOwner(campaign.ID, "user-1", first.ID, dashboardapimodels.OwnerData{Title: strPtr("CEO")})
		require.Nil(t, err)
		require.Equal(t, "CEO", updated.Title)
		require.Equal(t, "Jane Doe", updated.FullName)

		_, err = h.UpdateOwner(campaign.ID, "user-1", "missing-owner", dashboardapimodels.OwnerData{})
		require.Equal(t, models.ErrorKindNotFound, models.ErrorKindOf(err))

		require.Nil(t, h.DeleteOwner(campaign.ID, "user-1", first.ID))
		list, err = h.ListOwners(campaign.ID)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "John Roe", list[0].FullName)
	})
}
