package statsworker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	approvalhandler "dashboard-approval-backend/lib/approval"
	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

type recordingApprovals struct {
	approvalhandler.Provider
	mu     sync.Mutex
	scopes []models.EntityType
}

func (r *recordingApprovals) GetStatistics(entityType models.EntityType) (approvalapimodels.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scopes = append(r.scopes, entityType)
	return approvalapimodels.Statistics{}, nil
}

func (r *recordingApprovals) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scopes)
}

func TestStatsWorker(t *testing.T) {
	t.Run(`refresh every scope check`, func(t *testing.T) {
		approvals := &recordingApprovals{}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go NewWorker(approvals, time.Millisecond, time.Hour).Run(ctx)

		require.Eventually(t, func() bool { return approvals.count() == 5 }, time.Second, time.Millisecond)
		approvals.mu.Lock()
		defer approvals.mu.Unlock()
		require.Equal(t, models.EntityType(""), approvals.scopes[0])
		require.Equal(t, models.EntityTypes, approvals.scopes[1:])
	})
	t.Run(`missing dependency check`, func(t *testing.T) {
		require.Panics(t, func() { NewWorker(nil, time.Second, time.Second) })
	})
}
