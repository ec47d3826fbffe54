package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"dashboard-approval-backend/config"
	"dashboard-approval-backend/db"
	"dashboard-approval-backend/fiberlog"
	approvalhandler "dashboard-approval-backend/lib/approval"
	statscache "dashboard-approval-backend/lib/approval/stats-cache"
	statsworker "dashboard-approval-backend/lib/approval/stats-worker"
	dashboardhandler "dashboard-approval-backend/lib/dashboard"
	xlsexport "dashboard-approval-backend/lib/export/xls"
	"dashboard-approval-backend/lib/notify"
	promotionhandler "dashboard-approval-backend/lib/promotion"
	reviewhandler "dashboard-approval-backend/lib/review"
	submissionhandler "dashboard-approval-backend/lib/submission"
)

var LoggerConfig *fiberlog.Config

// Services holds the handlers the routers are built from.
type Services struct {
	Dashboard  dashboardhandler.Provider
	Submission submissionhandler.Provider
	Review     reviewhandler.Provider
	Approvals  approvalhandler.Provider
	Export     xlsexport.Provider
	Dispatcher *notify.Dispatcher
	Redis      *redis.Client
}

func InitAllServices(ctx context.Context) *Services {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	mailer := InitSmtp()
	rdb := InitRedis(ctx)
	dispatcher := InitNotify(mailer, rdb)

	var cache statscache.Provider
	if rdb != nil {
		cache = statscache.NewInstance(rdb, time.Duration(config.Conf.Redis.StatsCacheInSec)*time.Second)
	}
	approvals := approvalhandler.NewHandler(db.DB, cache, time.Now)
	if cache != nil {
		statsworker.StartWorker(ctx, approvals, time.Duration(config.Conf.Redis.StatsWarmInSec)*time.Second)
	}
	return &Services{
		Dashboard:  dashboardhandler.NewHandler(db.DB, time.Now),
		Submission: submissionhandler.NewHandler(db.DB, approvals, dispatcher, time.Now),
		Review:     reviewhandler.NewHandler(db.DB, approvals, promotionhandler.NewHandler(db.DB), time.Now),
		Approvals:  approvals,
		Export:     xlsexport.NewHandler(),
		Dispatcher: dispatcher,
		Redis:      rdb,
	}
}
