package reviewhandler

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dashboard-approval-backend/db/dbtest"
	approvalhandler "dashboard-approval-backend/lib/approval"
	campaigninfostore "dashboard-approval-backend/lib/campaign/info-store"
	issuerstore "dashboard-approval-backend/lib/campaign/issuer-store"
	ownerstore "dashboard-approval-backend/lib/campaign/owner-store"
	campaignstore "dashboard-approval-backend/lib/campaign/store"
	dashboardstore "dashboard-approval-backend/lib/dashboard/store"
	promotionhandler "dashboard-approval-backend/lib/promotion"
	submissionhandler "dashboard-approval-backend/lib/submission"
	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
	dbmodels "dashboard-approval-backend/models/db"
)

func strPtr(value string) *string {
	return &value
}

type fixture struct {
	db         *gorm.DB
	approvals  approvalhandler.Provider
	submission submissionhandler.Provider
	handler    Provider
	store      dashboardstore.Provider
	campaign   dbmodels.Campaign
}

func newFixture(t *testing.T, withIssuer bool) fixture {
	DB := dbtest.New(t)
	clock := dbtest.NewClock()
	approvals := approvalhandler.NewHandler(DB, nil, clock.Now)
	return fixture{
		db:         DB,
		approvals:  approvals,
		submission: submissionhandler.NewHandler(DB, approvals, nil, clock.Now),
		handler:    NewHandler(DB, approvals, promotionhandler.NewHandler(DB), clock.Now),
		store:      dashboardstore.NewInstance(DB),
		campaign:   dbtest.SeedCampaign(t, DB, withIssuer),
	}
}

func (f fixture) create(t *testing.T, rec dbmodels.SubmittableEntity) {
	_, err := f.store.Create(rec)
	require.Nil(t, err)
}

func (f fixture) submit(t *testing.T, types ...models.EntityType) {
	_, err := f.submission.SubmitForReview(f.campaign.ID, "user-1", approvalapimodels.SubmitRequest{
		Items: models.NewSubmittedItems(types...),
	})
	require.Nil(t, err)
}

func (f fixture) addSocials(t *testing.T) {
	rec, err := dbmodels.NewDashboardSocials(f.campaign.ID, dbmodels.SocialsPatch{
		Website:  strPtr("https://solar.example.com"),
		LinkedIn: strPtr("https://linkedin.com/company/solar"),
	})
	require.Nil(t, err)
	f.create(t, rec)
}

func (f fixture) addCampaignInfo(t *testing.T) {
	rec, err := dbmodels.NewDashboardCampaignInfo(f.campaign.ID, dbmodels.CampaignInfoPatch{
		InvestorPitch: strPtr("<p>Invest in clean energy</p>"),
		Milestones:    strPtr("Q1 permits"),
	})
	require.Nil(t, err)
	f.create(t, rec)
}

func TestReviewSubmission(t *testing.T) {
	t.Run(`reject without comment check`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)

		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionReject, "  ")
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))
		require.Equal(t, "Comment is required when rejecting", err.Error())

		socials, err := f.store.GetSocials(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusPending, socials.Status)
		pending, err := f.approvals.HasPendingApproval(f.campaign.ID)
		require.Nil(t, err)
		require.True(t, pending)
	})

	t.Run(`approve socials check`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)

		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.True(t, result.Success)
		require.Equal(t, approvalapimodels.ItemReviewResult{
			Status:   approvalapimodels.ItemReviewApproved,
			Count:    1,
			Promoted: true,
		}, result.Items[models.EntitySocials])

		socials, err := f.store.GetSocials(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusApproved, socials.Status)
		require.Equal(t, "admin-1", socials.ReviewedBy)

		issuer, err := issuerstore.NewInstance(f.db).GetByID(*f.campaign.IssuerID)
		require.Nil(t, err)
		require.Equal(t, "https://solar.example.com", issuer.Website)
		require.Equal(t, "https://linkedin.com/company/solar", issuer.LinkedIn)

		approval, err := f.approvals.GetByCampaign(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStatusApproved, approval.Status)
		require.Equal(t, "admin-1", approval.ReviewedBy)

		history, err := f.approvals.History(approvalapimodels.HistoryFilter{EntityID: socials.ID})
		require.Nil(t, err)
		require.Len(t, history, 2)
		statuses := []string{history[0].Status, history[1].Status}
		require.ElementsMatch(t, []string{"pending", "approved"}, statuses)
	})

	t.Run(`campaign info promoted only on approve`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addCampaignInfo(t)
		f.submit(t, models.EntityCampaignInfo)

		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntityCampaignInfo}, models.ReviewActionReject, "pitch is too short")
		require.Nil(t, err)
		info, err := campaigninfostore.NewInstance(f.db).GetByCampaign(f.campaign.ID)
		require.Nil(t, err)
		require.Nil(t, info)

		f.submit(t, models.EntityCampaignInfo)
		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntityCampaignInfo}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.True(t, result.Items[models.EntityCampaignInfo].Promoted)

		info, err = campaigninfostore.NewInstance(f.db).GetByCampaign(f.campaign.ID)
		require.Nil(t, err)
		require.NotNil(t, info)
		require.Equal(t, "<p>Invest in clean energy</p>", info.InvestorPitch)
		require.Equal(t, "Q1 permits", info.Milestones)
	})

	t.Run(`summary and owners promotion check`, func(t *testing.T) {
		f := newFixture(t, false)
		summary, err := dbmodels.NewDashboardCampaignSummary(f.campaign.ID, dbmodels.CampaignSummaryPatch{
			Summary: strPtr("Community solar"),
			TagLine: strPtr("Power to the people"),
		})
		require.Nil(t, err)
		f.create(t, summary)
		owner, err := dbmodels.NewDashboardOwner(f.campaign.ID, dbmodels.OwnerPatch{
			FullName: strPtr("Jane Doe"),
			Email:    strPtr("jane@example.com"),
		})
		require.Nil(t, err)
		f.create(t, owner)
		f.submit(t, models.EntityCampaignSummary, models.EntityOwners)

		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1",
			[]models.EntityType{models.EntityOwners, models.EntityCampaignSummary}, models.ReviewActionApprove, "looks good")
		require.Nil(t, err)
		require.True(t, result.Success)

		campaign, err := campaignstore.NewInstance(f.db).GetByID(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, "Community solar", campaign.Summary)
		require.Equal(t, "Power to the people", campaign.TagLine)

		owners, err := ownerstore.NewInstance(f.db).List(f.campaign.ID)
		require.Nil(t, err)
		require.Len(t, owners, 1)
		require.Equal(t, "Jane Doe", owners[0].FullName)
		require.Equal(t, "jane@example.com", owners[0].Email)
	})

	t.Run(`socials without issuer check`, func(t *testing.T) {
		f := newFixture(t, false)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)

		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.True(t, result.Success)
		require.True(t, result.Items[models.EntitySocials].Promoted)
	})

	t.Run(`missing section is skipped`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)

		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1",
			[]models.EntityType{models.EntityCampaignSummary, models.EntitySocials}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, approvalapimodels.ItemReviewSkipped, result.Items[models.EntityCampaignSummary].Status)
		require.Equal(t, approvalapimodels.ItemReviewApproved, result.Items[models.EntitySocials].Status)
	})

	t.Run(`section not pending fails the whole review`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.addCampaignInfo(t)
		f.submit(t, models.EntitySocials)

		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1",
			[]models.EntityType{models.EntitySocials, models.EntityCampaignInfo}, models.ReviewActionApprove, "")
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))

		socials, err := f.store.GetSocials(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, models.DashboardStatusPending, socials.Status)
		pending, err := f.approvals.HasPendingApproval(f.campaign.ID)
		require.Nil(t, err)
		require.True(t, pending)
		issuer, err := issuerstore.NewInstance(f.db).GetByID(*f.campaign.IssuerID)
		require.Nil(t, err)
		require.Equal(t, "https://old.example.com", issuer.Website)
	})

	t.Run(`request check`, func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, "hold", "")
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))

		_, err = f.handler.ReviewSubmission(f.campaign.ID, "admin-1", nil, models.ReviewActionApprove, "")
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))

		_, err = f.handler.ReviewSubmission("missing-campaign", "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Equal(t, models.ErrorKindNotFound, models.ErrorKindOf(err))
	})

	t.Run(`approved section resubmission keeps campaign reviewable`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)
		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Nil(t, err)

		_, err = f.submission.SubmitForReview(f.campaign.ID, "user-1", approvalapimodels.SubmitRequest{
			Items: models.NewSubmittedItems(models.EntitySocials),
		})
		require.Equal(t, models.ErrorKindValidation, models.ErrorKindOf(err))
		pending, err := f.approvals.HasPendingApproval(f.campaign.ID)
		require.Nil(t, err)
		require.False(t, pending)

		f.addCampaignInfo(t)
		f.submit(t, models.EntityCampaignInfo)
		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntityCampaignInfo}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.True(t, result.Success)
	})

	t.Run(`stale pending approval is closed`, func(t *testing.T) {
		f := newFixture(t, true)
		f.addSocials(t)
		f.submit(t, models.EntitySocials)
		_, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Nil(t, err)
		_, err = f.approvals.SubmitForApproval(f.campaign.ID, models.NewSubmittedItems(models.EntitySocials), "user-1")
		require.Nil(t, err)

		_, err = f.handler.ReviewSubmission(f.campaign.ID, "admin-1", []models.EntityType{models.EntitySocials}, models.ReviewActionApprove, "")
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))

		approval, err := f.approvals.GetByCampaign(f.campaign.ID)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalStatusRejected, approval.Status)

		f.addCampaignInfo(t)
		f.submit(t, models.EntityCampaignInfo)
	})

	t.Run(`concurrent review of the same sections check`, func(t *testing.T) {
		f := newFixture(t, true)
		owner, err := dbmodels.NewDashboardOwner(f.campaign.ID, dbmodels.OwnerPatch{FullName: strPtr("Jane Doe")})
		require.Nil(t, err)
		f.create(t, owner)
		f.submit(t, models.EntityOwners)

		h := f.handler.(impl)
		logger := log.NewEntry(log.StandardLogger())
		types := []models.EntityType{models.EntityOwners}
		stalePlan, err := h.plan(f.campaign.ID, types, map[models.EntityType]approvalapimodels.ItemReviewResult{}, logger)
		require.Nil(t, err)
		require.Len(t, stalePlan, 1)

		result, err := f.handler.ReviewSubmission(f.campaign.ID, "admin-1", types, models.ReviewActionApprove, "")
		require.Nil(t, err)
		require.True(t, result.Success)

		err = h.apply(f.campaign.ID, "admin-2", stalePlan, models.ReviewActionApprove, "", h.now(), logger)
		require.NotNil(t, err)
		require.Equal(t, models.ErrorKindConflict, models.ErrorKindOf(err))

		stored, err := f.store.GetOwner(f.campaign.ID, owner.ID)
		require.Nil(t, err)
		require.Equal(t, "admin-1", stored.ReviewedBy)
		owners, err := ownerstore.NewInstance(f.db).List(f.campaign.ID)
		require.Nil(t, err)
		require.Len(t, owners, 1)
		history, err := f.approvals.History(approvalapimodels.HistoryFilter{EntityID: owner.ID})
		require.Nil(t, err)
		require.Len(t, history, 2)
	})
}
