package submissionhandler

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	approvalhandler "dashboard-approval-backend/lib/approval"
	campaignstore "dashboard-approval-backend/lib/campaign/store"
	"dashboard-approval-backend/lib/dashboard/sections"
	"dashboard-approval-backend/lib/notify"
	submissionstore "dashboard-approval-backend/lib/submission/store"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
	dbmodels "dashboard-approval-backend/models/db"
)

// Provider sends the draft dashboard sections of a campaign to review.
type Provider interface {
	SubmitForReview(campaignID, submittedBy string, req approvalapimodels.SubmitRequest) (approvalapimodels.SubmitResult, error)
}

func NewHandler(DB *gorm.DB, approvals approvalhandler.Provider, notifier notify.Provider, now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	initchecker.CheckInit(
		"db", DB,
		"approvals", approvals,
	)
	return impl{
		db:            DB,
		campaignStore: campaignstore.NewInstance(DB),
		sections:      sections.NewRegistry(DB),
		approvals:     approvals,
		notifier:      notifier,
		now:           now,
	}
}

type impl struct {
	db            *gorm.DB
	campaignStore campaignstore.Provider
	sections      sections.Registry
	approvals     approvalhandler.Provider
	notifier      notify.Provider
	now           func() time.Time
}

func (i impl) GetLogger(campaignID, userID string) *log.Entry {
	return log.
		WithField("campaign_id", campaignID).
		WithField("user_id", userID)
}

func (i impl) SubmitForReview(campaignID, submittedBy string, req approvalapimodels.SubmitRequest) (result approvalapimodels.SubmitResult, err error) {
	logger := i.GetLogger(campaignID, submittedBy)
	result = approvalapimodels.SubmitResult{
		Status:         models.SubmissionStatusFailed,
		SubmittedItems: models.SubmittedItems{},
	}
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
			err = models.NewInternalError(fmt.Errorf("panic: %v", r), "dashboard submission failed")
		}
	}()

	campaign, err := i.campaignStore.GetByID(campaignID)
	if err != nil {
		logger.WithError(err).Error("campaign lookup failed")
		return result, models.NewInternalError(err, "campaign lookup failed")
	}
	if campaign == nil {
		return result, models.NewNotFoundError("Campaign not found")
	}

	pending, err := i.approvals.HasPendingApproval(campaignID)
	if err != nil {
		return result, err
	}
	if pending {
		return result, models.NewConflictError("campaign already has a pending review")
	}

	if err = req.Validate(); err != nil {
		return i.fail(result, campaignID, submittedBy, req, []string{err.Error()})
	}
	types, _ := req.Items.Types()

	matched, moved, violations, err := i.collect(campaignID, types)
	if err != nil {
		logger.WithError(err).Error("dashboard sections lookup failed")
		return result, models.NewInternalError(err, "dashboard sections lookup failed")
	}
	if len(violations) == 0 && len(matched) == 0 {
		violations = append(violations, "nothing to submit")
	}
	if len(violations) > 0 {
		return i.fail(result, campaignID, submittedBy, req, violations)
	}

	items := models.NewSubmittedItems(moved...)
	now := i.now()
	var submissionID, approvalID string
	err = i.db.Transaction(func(tx *gorm.DB) error {
		approvals := i.approvals.WithTx(tx)
		registry := sections.NewRegistry(tx)

		approvalID, err = approvals.SubmitIfNotPending(campaignID, items, submittedBy)
		if err != nil {
			return err
		}
		for _, rec := range matched {
			from := rec.GetStatus()
			if err := rec.Submit(submittedBy, now); err != nil {
				return err
			}
			if err := registry.Transition(rec, from); err != nil {
				return err
			}
			if err := approvals.Audit(rec, submittedBy, req.Note); err != nil {
				return err
			}
		}
		submissionID, err = submissionstore.NewInstance(tx).Create(dbmodels.DashboardSubmission{
			CampaignID:     campaignID,
			ApprovalID:     approvalID,
			SubmittedBy:    submittedBy,
			SubmittedItems: items,
			Note:           strings.TrimSpace(req.Note),
			Status:         models.SubmissionStatusCompleted,
		})
		if err != nil {
			return models.NewInternalError(err, "submission tracking failed")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("dashboard submission failed")
		return result, models.NewInternalError(err, "dashboard submission failed")
	}
	i.approvals.InvalidateStatistics()

	if i.notifier != nil {
		i.notifier.Publish(notify.NewDashboardItemSubmitted(campaignID, submittedBy, moved, now))
	}
	logger.
		WithField("approval_id", approvalID).
		WithField("transitioned", len(matched)).
		Info("dashboard submitted for review")

	return approvalapimodels.SubmitResult{
		SubmissionID:   submissionID,
		ApprovalID:     approvalID,
		Status:         models.SubmissionStatusCompleted,
		SubmittedItems: items,
	}, nil
}

// collect loads every requested section and returns the rows to move to PENDING
// together with the types they belong to.
// Every missing, empty or already handled section is reported, not only the first one.
func (i impl) collect(campaignID string, types []models.EntityType) (matched []dbmodels.SubmittableEntity, moved []models.EntityType, violations []string, err error) {
	for _, t := range types {
		list, err := i.sections.Load(t, campaignID)
		if err != nil {
			return nil, nil, nil, err
		}
		if len(list) == 0 {
			violations = append(violations, fmt.Sprintf("%s not found", t.ToHuman()))
			continue
		}
		hasContent, hasPending, count := false, false, 0
		for _, rec := range list {
			if rec.HasContent() {
				hasContent = true
			}
			if rec.GetStatus() == models.DashboardStatusPending {
				hasPending = true
			}
			if rec.GetStatus().AllowSubmit() && rec.HasContent() {
				matched = append(matched, rec)
				count++
			}
		}
		switch {
		case !hasContent:
			violations = append(violations, fmt.Sprintf("%s has no content to submit", t.ToHuman()))
		case count == 0 && hasPending:
			violations = append(violations, fmt.Sprintf("%s is already pending review", t.ToHuman()))
		case count == 0:
			violations = append(violations, fmt.Sprintf("%s is already approved", t.ToHuman()))
		default:
			moved = append(moved, t)
		}
	}
	return matched, moved, violations, nil
}

// fail records the rejected attempt and returns the violations as one validation error.
func (i impl) fail(result approvalapimodels.SubmitResult, campaignID, submittedBy string, req approvalapimodels.SubmitRequest, violations []string) (approvalapimodels.SubmitResult, error) {
	result.Errors = violations
	id, err := submissionstore.NewInstance(i.db).Create(dbmodels.DashboardSubmission{
		CampaignID:     campaignID,
		SubmittedBy:    submittedBy,
		SubmittedItems: req.Items,
		Note:           strings.TrimSpace(req.Note),
		Status:         models.SubmissionStatusFailed,
		Errors:         violations,
	})
	if err != nil {
		i.GetLogger(campaignID, submittedBy).WithError(err).Warn("failed submission tracking failed")
	} else {
		result.SubmissionID = id
	}
	return result, models.NewValidationError("%s", strings.Join(violations, "; "))
}
