package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"dashboard-approval-backend/controllers"
	approvalhandler "dashboard-approval-backend/lib/approval"
	xlsexport "dashboard-approval-backend/lib/export/xls"
	reviewhandler "dashboard-approval-backend/lib/review"
	"dashboard-approval-backend/middleware"
	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

type adminApiController struct {
	controllers.BaseAPIController
	review    reviewhandler.Provider
	approvals approvalhandler.Provider
	export    xlsexport.Provider
}

func InitAdminApiRouters(app fiber.Router, review reviewhandler.Provider, approvals approvalhandler.Provider, export xlsexport.Provider) {
	controller := adminApiController{
		review:    review,
		approvals: approvals,
		export:    export,
	}
	app.Post("dashboard/:campaignId/review", controller.reviewDashboard)
	app.Route("approvals", func(router fiber.Router) {
		router.Get("", controller.listApprovals)
		router.Get("statistics", controller.statistics)
		router.Get(":campaignId", controller.getApproval)
	})
	app.Route("history", func(router fiber.Router) {
		router.Get("", controller.history)
		router.Get("export", controller.historyExport)
	})
}

// @Summary Review dashboard
// @Tags Dashboard administration
// @Description Approves or rejects the pending sections of a campaign dashboard
// @Param   Authorization	header	string							true	"Authorization token"
// @Param   campaignId		path	string							true	"campaign ID"
// @Param	body			body	approvalapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ReviewResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/dashboard/{campaignId}/review [post]
func (c *adminApiController) reviewDashboard(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	types, err := payload.Types()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.review.ReviewSubmission(campaignID, middleware.GetUserID(ctx), types, payload.Action, payload.Comment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to review dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Approvals
// @Tags Dashboard administration
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   status			query	string	false	"pending, approved or rejected"
// @Param   page			query	int		false	"page"
// @Param   limit			query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/approvals [get]
func (c *adminApiController) listApprovals(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ApprovalFilter
	if err := ctx.QueryParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := c.approvals.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load approvals")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Approval statistics
// @Tags Dashboard administration
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   entity_type		query	string	false	"dashboard entity type"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.Statistics}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/approvals/statistics [get]
func (c *adminApiController) statistics(ctx *fiber.Ctx) error {
	var entityType models.EntityType
	if value := ctx.Query("entity_type"); value != "" {
		t, err := models.ParseEntityType(value)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		entityType = t
	}
	result, err := c.approvals.GetStatistics(entityType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load approval statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Campaign approval
// @Tags Dashboard administration
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/approvals/{campaignId} [get]
func (c *adminApiController) getApproval(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.approvals.GetByCampaign(campaignID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load approval")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Approval history
// @Tags Dashboard administration
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   entity_id		query	string	false	"dashboard section ID"
// @Param   user_id			query	string	false	"user ID"
// @Param   campaign_id		query	string	false	"campaign ID"
// @Success 200 {object} apimodels.Response{data=[]approvalapimodels.ApprovalHistoryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/history [get]
func (c *adminApiController) history(ctx *fiber.Ctx) error {
	var payload approvalapimodels.HistoryFilter
	if err := ctx.QueryParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.approvals.History(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load approval history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Approval history. Export to Excel
// @Tags Dashboard administration
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   entity_id		query	string	false	"dashboard section ID"
// @Param   user_id			query	string	false	"user ID"
// @Param   campaign_id		query	string	false	"campaign ID"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/history/export [get]
func (c *adminApiController) historyExport(ctx *fiber.Ctx) error {
	var payload approvalapimodels.HistoryFilter
	if err := ctx.QueryParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.approvals.History(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load approval history")
	}
	data, err := c.export.ExportApprovalHistory(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export approval history")
	}
	fileName := fmt.Sprintf("approval-history-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
