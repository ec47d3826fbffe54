package middleware

import (
	"github.com/gofiber/fiber/v2"

	"dashboard-approval-backend/fiberlog"
	authutils "dashboard-approval-backend/lib/utils/auth-utils"
	"dashboard-approval-backend/models"
	apimodels "dashboard-approval-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// UserRequired rejects tokens without a subject and exposes the user id to the access log.
func UserRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("user is not identified"))
		}
		ctx.Locals(fiberlog.TagUserID, userID)
		return ctx.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not allowed"))
		}
		return ctx.Next()
	}
}
