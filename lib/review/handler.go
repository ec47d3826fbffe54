package reviewhandler

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
	promotionhandler "dashboard-approval-backend/lib/promotion"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
	dbmodels "dashboard-approval-backend/models/db"
)

// Provider approves or rejects the pending dashboard sections of a campaign.
type Provider interface {
	ReviewSubmission(campaignID, adminID string, entityTypes []models.EntityType, action models.ReviewAction, comment string) (approvalapimodels.ReviewResult, error)
}

func NewHandler(DB *gorm.DB, approvals approvalhandler.Provider, promotion promotionhandler.Provider, now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	initchecker.CheckInit(
		"db", DB,
		"approvals", approvals,
		"promotion", promotion,
	)
	return impl{
		db:            DB,
		campaignStore: campaignstore.NewInstance(DB),
		sections:      sections.NewRegistry(DB),
		approvals:     approvals,
		promotion:     promotion,
		now:           now,
	}
}

type impl struct {
	db            *gorm.DB
	campaignStore campaignstore.Provider
	sections      sections.Registry
	approvals     approvalhandler.Provider
	promotion     promotionhandler.Provider
	now           func() time.Time
}

type reviewItem struct {
	entityType models.EntityType
	list       []dbmodels.SubmittableEntity
}

func (i impl) GetLogger(campaignID, adminID string) *log.Entry {
	return log.
		WithField("campaign_id", campaignID).
		WithField("admin_id", adminID)
}

func (i impl) ReviewSubmission(campaignID, adminID string, entityTypes []models.EntityType, action models.ReviewAction, comment string) (result approvalapimodels.ReviewResult, err error) {
	logger := i.GetLogger(campaignID, adminID).WithField("action", action)
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
			result = approvalapimodels.ReviewResult{}
			err = models.NewInternalError(fmt.Errorf("panic: %v", r), "dashboard review failed")
		}
	}()

	if !action.IsValid() {
		return result, models.NewValidationError("unknown review action: %v", action)
	}
	comment = strings.TrimSpace(comment)
	if action == models.ReviewActionReject && comment == "" {
		return result, models.NewValidationError("Comment is required when rejecting")
	}
	types := uniqueTypes(entityTypes)
	if len(types) == 0 {
		return result, models.NewValidationError("no entity types selected for review")
	}
	for _, t := range types {
		if !t.IsValid() {
			return result, models.NewValidationError("unknown dashboard entity type: %v", t)
		}
	}

	campaign, err := i.campaignStore.GetByID(campaignID)
	if err != nil {
		logger.WithError(err).Error("campaign lookup failed")
		return result, models.NewInternalError(err, "campaign lookup failed")
	}
	if campaign == nil {
		return result, models.NewNotFoundError("Campaign not found")
	}

	result = approvalapimodels.ReviewResult{
		Items: map[models.EntityType]approvalapimodels.ItemReviewResult{},
	}
	plan, err := i.plan(campaignID, types, result.Items, logger)
	if err != nil {
		return approvalapimodels.ReviewResult{}, err
	}

	if err = i.apply(campaignID, adminID, plan, action, comment, i.now(), logger); err != nil {
		logger.WithError(err).Error("dashboard review failed")
		return approvalapimodels.ReviewResult{}, models.NewInternalError(err, "dashboard review failed")
	}
	i.approvals.InvalidateStatistics()

	result.Success = true
	for _, item := range plan {
		res := approvalapimodels.ItemReviewResult{
			Status: itemStatus(action),
			Count:  len(item.list),
		}
		if action == models.ReviewActionApprove {
			if err := i.promotion.Promote(item.list...); err != nil {
				logger.
					WithField("entity_type", item.entityType).
					WithError(err).
					Error("dashboard section promotion failed")
				res.Error = err.Error()
				result.Success = false
			} else {
				res.Promoted = true
			}
		}
		result.Items[item.entityType] = res
	}
	logger.Info("dashboard review completed")
	return result, nil
}

// plan loads the sections to review without writing anything.
// A missing section is skipped, a section with nothing pending fails the call.
func (i impl) plan(campaignID string, types []models.EntityType, items map[models.EntityType]approvalapimodels.ItemReviewResult, logger *log.Entry) ([]reviewItem, error) {
	plan := make([]reviewItem, 0, len(types))
	for _, t := range types {
		list, err := i.sections.Load(t, campaignID)
		if err != nil {
			logger.WithError(err).Error("dashboard sections lookup failed")
			return nil, models.NewInternalError(err, "dashboard sections lookup failed")
		}
		if len(list) == 0 {
			logger.WithField("entity_type", t).Warn("dashboard section not found, skipped")
			items[t] = approvalapimodels.ItemReviewResult{Status: approvalapimodels.ItemReviewSkipped}
			continue
		}
		pending := make([]dbmodels.SubmittableEntity, 0, len(list))
		for _, rec := range list {
			if rec.GetStatus().AllowReview() {
				pending = append(pending, rec)
			}
		}
		if len(pending) == 0 {
			i.closeStaleApproval(campaignID, adminID, logger)
			return nil, models.NewConflictError("%s is not pending review (status %s)", t.ToHuman(), list[0].GetStatus())
		}
		plan = append(plan, reviewItem{entityType: t, list: pending})
	}
	return plan, nil
}

// apply moves every planned section out of PENDING and closes the ledger row in one transaction.
// A section reviewed by a concurrent request fails the whole call.
func (i impl) apply(campaignID, adminID string, plan []reviewItem, action models.ReviewAction, comment string, now time.Time, logger *log.Entry) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		approvals := i.approvals.WithTx(tx)
		registry := sections.NewRegistry(tx)
		for _, item := range plan {
			for _, rec := range item.list {
				if err := transition(rec, action, adminID, comment, now); err != nil {
					return err
				}
				if err := registry.Transition(rec, models.DashboardStatusPending); err != nil {
					return err
				}
				if err := approvals.Audit(rec, adminID, comment); err != nil {
					return err
				}
			}
		}
		err := approvals.ReviewApproval(campaignID, action, adminID, comment)
		if models.ErrorKindOf(err) == models.ErrorKindNotFound {
			logger.Warn("campaign has no pending approval, ledger left unchanged")
			return nil
		}
		return err
	})
}

// closeStaleApproval rejects a pending ledger row that no longer has any PENDING section behind it,
// so the campaign can be submitted again.
func (i impl) closeStaleApproval(campaignID, adminID string, logger *log.Entry) {
	pending, err := i.approvals.HasPendingApproval(campaignID)
	if err != nil || !pending {
		return
	}
	for _, t := range models.EntityTypes {
		list, err := i.sections.Load(t, campaignID)
		if err != nil {
			logger.WithError(err).Warn("stale approval check failed")
			return
		}
		for _, rec := range list {
			if rec.GetStatus() == models.DashboardStatusPending {
				return
			}
		}
	}
	err = i.approvals.ReviewApproval(campaignID, models.ReviewActionReject, adminID, "nothing left to review")
	if err != nil {
		logger.WithError(err).Warn("stale approval close failed")
		return
	}
	logger.Warn("pending approval without pending sections closed")
}

func transition(rec dbmodels.SubmittableEntity, action models.ReviewAction, adminID, comment string, now time.Time) error {
	if action == models.ReviewActionApprove {
		return rec.Approve(adminID, comment, now)
	}
	return rec.Reject(adminID, comment, now)
}

func itemStatus(action models.ReviewAction) approvalapimodels.ItemReviewStatus {
	if action == models.ReviewActionApprove {
		return approvalapimodels.ItemReviewApproved
	}
	return approvalapimodels.ItemReviewRejected
}

func uniqueTypes(types []models.EntityType) []models.EntityType {
	seen := map[models.EntityType]bool{}
	result := make([]models.EntityType, 0, len(types))
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}
