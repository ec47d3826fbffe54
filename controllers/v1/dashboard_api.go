package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"dashboard-approval-backend/controllers"
	dashboardhandler "dashboard-approval-backend/lib/dashboard"
	"dashboard-approval-backend/middleware"
	apimodels "dashboard-approval-backend/models/api"
	dashboardapimodels "dashboard-approval-backend/models/api/dashboard"
)

type dashboardApiController struct {
	controllers.BaseAPIController
	handler dashboardhandler.Provider
}

func InitDashboardApiRouters(app fiber.Router, handler dashboardhandler.Provider) {
	controller := dashboardApiController{handler: handler}
	app.Route(":campaignId", func(router fiber.Router) {
		router.Get("campaign_info", controller.getCampaignInfo)
		router.Put("campaign_info", controller.saveCampaignInfo)
		router.Get("campaign_summary", controller.getCampaignSummary)
		router.Put("campaign_summary", controller.saveCampaignSummary)
		router.Get("socials", controller.getSocials)
		router.Put("socials", controller.saveSocials)
		router.Route("owners", func(ownerRoute fiber.Router) {
			ownerRoute.Get("", controller.listOwners)
			ownerRoute.Post("", controller.createOwner)
			ownerRoute.Put(":id", controller.updateOwner)
			ownerRoute.Delete(":id", controller.deleteOwner)
		})
	})
}

// @Summary Campaign info draft
// @Tags Dashboard
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.CampaignInfoView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/campaign_info [get]
func (c *dashboardApiController) getCampaignInfo(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.GetCampaignInfo(campaignID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load campaign info")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Save campaign info draft
// @Tags Dashboard
// @Param   Authorization	header	string								true	"Authorization token"
// @Param   campaignId		path	string								true	"campaign ID"
// @Param	body			body	dashboardapimodels.CampaignInfoData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.CampaignInfoView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/campaign_info [put]
func (c *dashboardApiController) saveCampaignInfo(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dashboardapimodels.CampaignInfoData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.SaveCampaignInfo(campaignID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save campaign info")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Campaign summary draft
// @Tags Dashboard
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.CampaignSummaryView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/campaign_summary [get]
func (c *dashboardApiController) getCampaignSummary(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.GetCampaignSummary(campaignID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load campaign summary")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Save campaign summary draft
// @Tags Dashboard
// @Param   Authorization	header	string									true	"Authorization token"
// @Param   campaignId		path	string									true	"campaign ID"
// @Param	body			body	dashboardapimodels.CampaignSummaryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.CampaignSummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/campaign_summary [put]
func (c *dashboardApiController) saveCampaignSummary(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dashboardapimodels.CampaignSummaryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.SaveCampaignSummary(campaignID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save campaign summary")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Socials draft
// @Tags Dashboard
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.SocialsView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/socials [get]
func (c *dashboardApiController) getSocials(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.GetSocials(campaignID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load socials")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Save socials draft
// @Tags Dashboard
// @Param   Authorization	header	string							true	"Authorization token"
// @Param   campaignId		path	string							true	"campaign ID"
// @Param	body			body	dashboardapimodels.SocialsData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.SocialsView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/socials [put]
func (c *dashboardApiController) saveSocials(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dashboardapimodels.SocialsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.SaveSocials(campaignID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save socials")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Owner drafts
// @Tags Dashboard
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.OwnerView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/owners [get]
func (c *dashboardApiController) listOwners(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.ListOwners(campaignID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load owners")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Add owner draft
// @Tags Dashboard
// @Param   Authorization	header	string						true	"Authorization token"
// @Param   campaignId		path	string						true	"campaign ID"
// @Param	body			body	dashboardapimodels.OwnerData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.OwnerView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/owners [post]
func (c *dashboardApiController) createOwner(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dashboardapimodels.OwnerData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.CreateOwner(campaignID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to add owner")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Update owner draft
// @Tags Dashboard
// @Param   Authorization	header	string						true	"Authorization token"
// @Param   campaignId		path	string						true	"campaign ID"
// @Param   id				path	string						true	"owner ID"
// @Param	body			body	dashboardapimodels.OwnerData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.OwnerView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/owners/{id} [put]
func (c *dashboardApiController) updateOwner(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dashboardapimodels.OwnerData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := c.handler.UpdateOwner(campaignID, middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update owner")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Delete owner draft
// @Tags Dashboard
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   campaignId		path	string	true	"campaign ID"
// @Param   id				path	string	true	"owner ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/{campaignId}/owners/{id} [delete]
func (c *dashboardApiController) deleteOwner(ctx *fiber.Ctx) error {
	campaignID, err := c.GetIDByKey(ctx, "campaignId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = c.handler.DeleteOwner(campaignID, middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete owner")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
