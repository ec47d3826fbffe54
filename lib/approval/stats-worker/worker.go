package statsworker

import (
	"context"
	"time"

	approvalhandler "dashboard-approval-backend/lib/approval"
	baseworker "dashboard-approval-backend/lib/utils/base-worker"
	initchecker "dashboard-approval-backend/lib/utils/init-checker"
	"dashboard-approval-backend/models"
)

const (
	firstRunDelay = 10 * time.Second
)

// Provider keeps the approval statistics cache warm for the admin overview.
type Provider interface {
	Run(ctx context.Context)
}

func StartWorker(ctx context.Context, approvals approvalhandler.Provider, interval time.Duration) {
	i := NewWorker(approvals, firstRunDelay, interval)
	go i.Run(ctx)
}

func NewWorker(approvals approvalhandler.Provider, delay, interval time.Duration) Provider {
	initchecker.CheckInit("approvals", approvals)
	return &impl{
		BaseImpl:  *baseworker.NewInstance("ApprovalStatsWorker", delay, interval),
		approvals: approvals,
	}
}

type impl struct {
	baseworker.BaseImpl
	approvals approvalhandler.Provider
}

func (w *impl) Run(ctx context.Context) {
	w.BaseImpl.Run(ctx, w.handle)
}

func (w *impl) handle(ctx context.Context) {
	scopes := append([]models.EntityType{""}, models.EntityTypes...)
	for _, entityType := range scopes {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.approvals.GetStatistics(entityType); err != nil {
			w.GetLogger().
				WithField("entity_type", entityType).
				WithError(err).
				Warn("approval statistics refresh failed")
		}
	}
}
