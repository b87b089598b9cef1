package controller

import (
	"video-search-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUser resolves the authenticated caller set by the JWT middleware.
// A validly signed token can still lack a usable user_id claim; that is an
// auth failure, not a panic.
func currentUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	}
	return userId, nil
}
