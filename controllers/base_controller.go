package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"dashboard-approval-backend/middleware"
	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("request body parse failed")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("user_id", middleware.GetUserID(ctx))
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := strings.TrimSpace(ctx.Params(key))
	if id == "" {
		return "", errors.Errorf("%v is required", key)
	}
	return id, nil
}

// SendError writes a workflow error with the status matching its kind. Other errors are logged and hidden behind msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	we, ok := models.AsWorkflowError(err)
	if !ok {
		logger.WithError(err).Error(msg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
	}
	switch we.Kind {
	case models.ErrorKindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(we.Message))
	case models.ErrorKindConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(we.Message))
	case models.ErrorKindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(we.Message))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
