package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"dashboard-approval-backend/config"
	apiv1 "dashboard-approval-backend/controllers/v1"
	_ "dashboard-approval-backend/docs"
	"dashboard-approval-backend/fiberlog"
	"dashboard-approval-backend/initializers"
	"dashboard-approval-backend/middleware"
)

// @title Dashboard approval API
// @version 1.0
// @description Campaign dashboard drafts and their approval workflow
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(middleware.ErrNotify(config.Conf.Slack.WebhookURL))
	apiV1.Use(middleware.WithBodyLimit(1024 * 1024))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//dashboard drafts
	dashboard := fiber.New()
	apiV1.Mount("/dashboard", dashboard)
	dashboard.Use(middleware.AuthorizationRequired())
	dashboard.Use(middleware.UserRequired())
	apiv1.InitDashboardApiRouters(dashboard, services.Dashboard)
	apiv1.InitSubmissionApiRouters(dashboard, services.Submission)

	//admin
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.UserRequired())
	admin.Use(middleware.AdminRequired())
	apiv1.InitAdminApiRouters(admin, services.Review, services.Approvals, services.Export)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		services.Dispatcher.Wait()
		if services.Redis != nil {
			if err := services.Redis.Close(); err != nil {
				log.WithError(err).Warn("redis close failed")
			}
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
