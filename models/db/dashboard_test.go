package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dashboard-approval-backend/models"
)

func strPtr(value string) *string {
	return &value
}

func TestSubmittableEntity(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`create check`, func(t *testing.T) {
		_, err := NewDashboardSocials("  ", SocialsPatch{})
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))

		rec, err := NewDashboardSocials("campaign-1", SocialsPatch{Website: strPtr("https://example.com")})
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusDraft, rec.GetStatus())
		require.Equal(t, "campaign-1", rec.GetCampaignID())
		require.Equal(t, models.EntitySocials, rec.EntityType())
	})

	t.Run(`hasContent check`, func(t *testing.T) {
		rec, err := NewDashboardCampaignInfo("campaign-1", CampaignInfoPatch{Milestones: strPtr("   ")})
		require.Nil(t, err)
		require.False(t, rec.HasContent())

		err = rec.Submit("user-1", now)
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))
		require.Equal(t, "Campaign info has no content to submit", err.Error())
		require.Equal(t, models.DashboardStatusDraft, rec.GetStatus())

		require.Nil(t, rec.Update(CampaignInfoPatch{InvestorPitch: strPtr("Invest in us")}, now))
		require.True(t, rec.HasContent())
		require.Equal(t, "   ", rec.Milestones)
	})

	t.Run(`submit check`, func(t *testing.T) {
		rec, err := NewDashboardCampaignSummary("campaign-1", CampaignSummaryPatch{Summary: strPtr("Clean energy")})
		require.Nil(t, err)
		require.Nil(t, rec.Submit("user-1", now))
		require.Equal(t, models.DashboardStatusPending, rec.GetStatus())
		require.Equal(t, "user-1", rec.GetSubmittedBy())
		require.NotNil(t, rec.SubmittedAt)
		require.True(t, now.Equal(*rec.SubmittedAt))
	})

	t.Run(`reject requires comment`, func(t *testing.T) {
		rec, err := NewDashboardOwner("campaign-1", OwnerPatch{FullName: strPtr("Jane Doe")})
		require.Nil(t, err)
		require.Nil(t, rec.Submit("user-1", now))

		for _, comment := range []string{"", "   \t"} {
			err = rec.Reject("admin-1", comment, now)
			require.NotNil(t, err)
			require.Equal(t, "Comment is required when rejecting", err.Error())
			require.Equal(t, models.DashboardStatusPending, rec.GetStatus())
		}

		require.Nil(t, rec.Reject("admin-1", " needs a photo ", now))
		require.Equal(t, models.DashboardStatusRejected, rec.GetStatus())
		require.Equal(t, "needs a photo", rec.Comment)
		require.Equal(t, "admin-1", rec.ReviewedBy)

		// rejected sections are resubmittable
		require.Nil(t, rec.Submit("user-1", now))
		require.Equal(t, models.DashboardStatusPending, rec.GetStatus())
	})

	t.Run(`approved is final`, func(t *testing.T) {
		rec, err := NewDashboardSocials("campaign-1", SocialsPatch{Twitter: strPtr("https://twitter.com/solar")})
		require.Nil(t, err)
		require.Nil(t, rec.Submit("user-1", now))
		require.Nil(t, rec.Approve("admin-1", "", now))
		require.Equal(t, models.DashboardStatusApproved, rec.GetStatus())
		require.NotNil(t, rec.ReviewedAt)

		err = rec.Approve("admin-1", "", now)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))
		err = rec.Submit("user-1", now)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))
		err = rec.Update(SocialsPatch{Twitter: strPtr("https://twitter.com/other")}, now)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))
		require.Equal(t, "https://twitter.com/solar", rec.Twitter)
	})

	t.Run(`canEdit check`, func(t *testing.T) {
		rec, err := NewDashboardSocials("campaign-1", SocialsPatch{Website: strPtr("https://example.com")})
		require.Nil(t, err)
		require.False(t, rec.CanEdit("user-1"))

		require.Nil(t, rec.Submit("user-1", now))
		require.True(t, rec.CanEdit("user-1"))
		require.False(t, rec.CanEdit("user-2"))

		require.Nil(t, rec.Approve("admin-1", "ok", now))
		require.False(t, rec.CanEdit("user-1"))
	})
}
