package approvalhandler

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	approvalhistorystore "dashboard-approval-backend/lib/approval/history-store"
	statscache "dashboard-approval-backend/lib/approval/stats-cache"
	approvalstore "dashboard-approval-backend/lib/approval/store"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
	dbmodels "dashboard-approval-backend/models/db"
)

// Provider is the approval ledger together with its history log.
type Provider interface {
	SubmitForApproval(campaignID string, items models.SubmittedItems, submittedBy string) (id string, err error)
	// SubmitIfNotPending writes the ledger row unless a pending one exists, which is reported as a conflict.
	SubmitIfNotPending(campaignID string, items models.SubmittedItems, submittedBy string) (id string, err error)
	HasPendingApproval(campaignID string) (bool, error)
	ReviewApproval(campaignID string, action models.ReviewAction, reviewedBy, comment string) error
	GetStatistics(entityType models.EntityType) (approvalapimodels.Statistics, error)
	GetByCampaign(campaignID string) (approvalapimodels.ApprovalView, error)
	List(filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, rowCount int64, err error)
	History(filter approvalapimodels.HistoryFilter) ([]approvalapimodels.ApprovalHistoryView, error)
	Audit(rec dbmodels.SubmittableEntity, userID, comment string) error
	InvalidateStatistics()
	WithTx(tx *gorm.DB) Provider
}

func NewHandler(DB *gorm.DB, cache statscache.Provider, now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	initchecker.CheckInit("db", DB)
	return impl{
		store:        approvalstore.NewInstance(DB),
		historyStore: approvalhistorystore.NewInstance(DB),
		cache:        cache,
		now:          now,
	}
}

type impl struct {
	store        approvalstore.Provider
	historyStore approvalhistorystore.Provider
	cache        statscache.Provider
	now          func() time.Time
}

func (i impl) WithTx(tx *gorm.DB) Provider {
	return impl{
		store:        approvalstore.NewInstance(tx),
		historyStore: approvalhistorystore.NewInstance(tx),
		cache:        i.cache,
		now:          i.now,
	}
}

func (i impl) GetLogger(campaignID string) *log.Entry {
	return log.WithField("campaign_id", campaignID)
}

func (i impl) SubmitForApproval(campaignID string, items models.SubmittedItems, submittedBy string) (id string, err error) {
	id, err = i.store.SubmitForApproval(campaignID, items, submittedBy, i.now())
	if err != nil {
		i.GetLogger(campaignID).WithError(err).Error("approval submission failed")
		return "", models.NewInternalError(err, "approval submission failed")
	}
	i.InvalidateStatistics()
	return id, nil
}

func (i impl) SubmitIfNotPending(campaignID string, items models.SubmittedItems, submittedBy string) (id string, err error) {
	id, ok, err := i.store.SubmitIfNotPending(campaignID, items, submittedBy, i.now())
	if err != nil {
		i.GetLogger(campaignID).WithError(err).Error("approval submission failed")
		return "", models.NewInternalError(err, "approval submission failed")
	}
	if !ok {
		return "", models.NewConflictError("campaign already has a pending review")
	}
	i.InvalidateStatistics()
	return id, nil
}

func (i impl) HasPendingApproval(campaignID string) (bool, error) {
	pending, err := i.store.HasPendingApproval(campaignID)
	if err != nil {
		return false, models.NewInternalError(err, "approval lookup failed")
	}
	return pending, nil
}

func (i impl) ReviewApproval(campaignID string, action models.ReviewAction, reviewedBy, comment string) error {
	if !action.IsValid() {
		return models.NewValidationError("unknown review action: %v", action)
	}
	ok, err := i.store.Review(campaignID, action.ApprovalStatus(), reviewedBy, strings.TrimSpace(comment), i.now())
	if err != nil {
		i.GetLogger(campaignID).WithError(err).Error("approval review update failed")
		return models.NewInternalError(err, "approval review failed")
	}
	if !ok {
		return models.NewNotFoundError("Approval not found")
	}
	i.InvalidateStatistics()
	return nil
}

func (i impl) GetStatistics(entityType models.EntityType) (approvalapimodels.Statistics, error) {
	if entityType != "" && !entityType.IsValid() {
		return approvalapimodels.Statistics{}, models.NewValidationError("unknown dashboard entity type: %v", entityType)
	}
	scope := string(entityType)
	if scope == "" {
		scope = "all"
	}
	ctx := context.Background()
	if i.cache != nil {
		if stats, ok := i.cache.Get(ctx, scope); ok {
			return *stats, nil
		}
	}
	list, err := i.store.ListForStatistics()
	if err != nil {
		return approvalapimodels.Statistics{}, models.NewInternalError(err, "statistics lookup failed")
	}
	stats := approvalapimodels.Statistics{}
	for _, rec := range list {
		if entityType != "" && !rec.SubmittedItems.Has(entityType) {
			continue
		}
		stats.Add(rec.Status)
	}
	if i.cache != nil {
		i.cache.Set(ctx, scope, stats)
	}
	return stats, nil
}

func (i impl) GetByCampaign(campaignID string) (approvalapimodels.ApprovalView, error) {
	rec, err := i.store.GetByCampaign(campaignID)
	if err != nil {
		return approvalapimodels.ApprovalView{}, models.NewInternalError(err, "approval lookup failed")
	}
	if rec == nil {
		return approvalapimodels.ApprovalView{}, models.NewNotFoundError("Approval not found")
	}
	return approvalapimodels.ApprovalConvert(*rec), nil
}

func (i impl) List(filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(approvalstore.Filter{
		Status: filter.Status,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		log.WithError(err).Error("approval list failed")
		return nil, 0, models.NewInternalError(err, "approval list failed")
	}
	result := make([]approvalapimodels.ApprovalView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.ApprovalConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) History(filter approvalapimodels.HistoryFilter) ([]approvalapimodels.ApprovalHistoryView, error) {
	list, err := i.historyStore.List(approvalhistorystore.Filter{
		EntityID:   filter.EntityID,
		UserID:     filter.UserID,
		CampaignID: filter.CampaignID,
	})
	if err != nil {
		return nil, models.NewInternalError(err, "approval history lookup failed")
	}
	result := make([]approvalapimodels.ApprovalHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, approvalapimodels.ApprovalHistoryConvert(rec))
	}
	return result, nil
}

// Audit appends the current state of the section to the history log.
func (i impl) Audit(data dbmodels.SubmittableEntity, userID, comment string) error {
	rec := dbmodels.ApprovalHistory{
		EntityID:   data.GetID(),
		EntityType: data.EntityType(),
		CampaignID: data.GetCampaignID(),
		Status:     strings.ToLower(string(data.GetStatus())),
		UserID:     userID,
		Comment:    strings.TrimSpace(comment),
	}
	_, err := i.historyStore.Create(rec)
	if err != nil {
		i.GetLogger(data.GetCampaignID()).
			WithField("entity_id", data.GetID()).
			WithError(err).
			Error("approval history append failed")
		return models.NewInternalError(err, "approval history append failed")
	}
	return nil
}

func (i impl) InvalidateStatistics() {
	if i.cache != nil {
		i.cache.Invalidate(context.Background())
	}
}
