package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"dashboard-approval-backend/controllers"
	submissionhandler "dashboard-approval-backend/lib/submission"
	"dashboard-approval-backend/middleware"
	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

type submissionApiController struct {
	controllers.BaseAPIController
	handler submissionhandler.Provider
}

func InitSubmissionApiRouters(app fiber.Router, handler submissionhandler.Provider) {
	controller := submissionApiController{handler: handler}
	app.Post(":campaignId/submit", controller.submit)
}

// @Summary Submit dashboard for review
// @Tags Dashboard
// @Description Moves the selected draft sections to review and opens the campaign approval
// @Param   Authorization	header	string							true	"Authorization token"
// @Param   campaignId		path	string							true	"campaign ID"
// @Param	body			body	approvalapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response{data=approvalapimodels.SubmitResult}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/submit [post]
func (c *submissionApiController) submit(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.SubmitForReview(campaignID, middleware.GetUserID(ctx), payload)
	if err != nil {
		if models.ErrorKindOf(err) == models.ErrorKindValidation {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithData(err.Error(), result))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit dashboard for review")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
