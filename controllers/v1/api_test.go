package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"dashboard-approval-backend/config"
	"dashboard-approval-backend/db/dbtest"
	approvalhandler "dashboard-approval-backend/lib/approval"
	dashboardhandler "dashboard-approval-backend/lib/dashboard"
	xlsexport "dashboard-approval-backend/lib/export/xls"
	promotionhandler "dashboard-approval-backend/lib/promotion"
	reviewhandler "dashboard-approval-backend/lib/review"
	submissionhandler "dashboard-approval-backend/lib/submission"
	authutils "dashboard-approval-backend/lib/utils/auth-utils"
	"dashboard-approval-backend/middleware"
	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, string) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret

	DB := dbtest.New(t)
	campaign := dbtest.SeedCampaign(t, DB, true)
	approvals := approvalhandler.NewHandler(DB, nil, nil)

	app := fiber.New()
	dashboard := fiber.New()
	app.Mount("/dashboard", dashboard)
	dashboard.Use(middleware.AuthorizationRequired())
	dashboard.Use(middleware.UserRequired())
	InitDashboardApiRouters(dashboard, dashboardhandler.NewHandler(DB, nil))
	InitSubmissionApiRouters(dashboard, submissionhandler.NewHandler(DB, approvals, nil, nil))

	admin := fiber.New()
	app.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.UserRequired())
	admin.Use(middleware.AdminRequired())
	InitAdminApiRouters(admin, reviewhandler.NewHandler(DB, approvals, promotionhandler.NewHandler(DB), nil), approvals, xlsexport.NewHandler())
	return app, campaign.ID
}

func token(t *testing.T, userID string, role models.UserRole) string {
	tokenString, err := authutils.GetToken(testSecret, userID, role, time.Hour)
	require.Nil(t, err)
	return tokenString
}

func doRequest(t *testing.T, app *fiber.App, method, path, tokenString string, body interface{}) (int, apimodels.Response) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.Nil(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if tokenString != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)
	}
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	defer resp.Body.Close()
	result := apimodels.Response{}
	if resp.Header.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

func TestDashboardApi(t *testing.T) {
	t.Run(`auth check`, func(t *testing.T) {
		app, campaignID := newTestApp(t)
		status, _ := doRequest(t, app, http.MethodGet, "/dashboard/"+campaignID+"/socials", "", nil)
		require.Equal(t, fiber.StatusUnauthorized, status)

		status, _ = doRequest(t, app, http.MethodGet, "/admin/approvals", token(t, "user-1", models.UserRoleSubmitter), nil)
		require.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run(`submit and review flow`, func(t *testing.T) {
		app, campaignID := newTestApp(t)
		userToken := token(t, "user-1", models.UserRoleSubmitter)
		adminToken := token(t, "admin-1", models.UserRoleAdmin)

		status, _ := doRequest(t, app, http.MethodPut, "/dashboard/"+campaignID+"/socials", userToken, map[string]string{
			"website": "not a link",
		})
		require.Equal(t, fiber.StatusBadRequest, status)

		status, resp := doRequest(t, app, http.MethodPut, "/dashboard/"+campaignID+"/socials", userToken, map[string]string{
			"website": "https://solar.example.com",
		})
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)

		submit := map[string]interface{}{"items": map[string]bool{"socials": true}}
		status, _ = doRequest(t, app, http.MethodPost, "/dashboard/"+campaignID+"/submit", userToken, submit)
		require.Equal(t, fiber.StatusOK, status)

		status, resp = doRequest(t, app, http.MethodPost, "/dashboard/"+campaignID+"/submit", userToken, submit)
		require.Equal(t, fiber.StatusConflict, status)
		require.Equal(t, "campaign already has a pending review", resp.Message)

		review := map[string]interface{}{"entity_types": []string{"socials"}, "action": "reject"}
		status, resp = doRequest(t, app, http.MethodPost, "/admin/dashboard/"+campaignID+"/review", adminToken, review)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "Comment is required when rejecting", resp.Message)

		review["action"] = "approve"
		status, resp = doRequest(t, app, http.MethodPost, "/admin/dashboard/"+campaignID+"/review", adminToken, review)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)

		status, resp = doRequest(t, app, http.MethodGet, "/admin/approvals/statistics?entity_type=socials", adminToken, nil)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, map[string]interface{}{"pending": float64(0), "approved": float64(1), "rejected": float64(0)}, resp.Data)

		status, _ = doRequest(t, app, http.MethodGet, "/admin/approvals/missing-campaign", adminToken, nil)
		require.Equal(t, fiber.StatusNotFound, status)

		status, resp = doRequest(t, app, http.MethodGet, "/admin/history?campaign_id="+campaignID, adminToken, nil)
		require.Equal(t, fiber.StatusOK, status)
		require.Len(t, resp.Data, 2)
	})
}
