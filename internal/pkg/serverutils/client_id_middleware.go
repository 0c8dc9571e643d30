package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientIDMiddleware resolves the per-browser workspace identifier. The app
// has no accounts; each browser generates its identity once via the workspace
// session endpoint and replays it on every request.
func ClientIDMiddleware(ctx *fiber.Ctx) error {
	clientIDStr := ctx.Get("X-Client-ID")
	if clientIDStr == "" {
		clientIDStr = ctx.Query("client_id")
	}
	if clientIDStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing client id"})
	}

	clientID, err := uuid.Parse(clientIDStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid client id"})
	}

	ctx.Locals("client_id", clientID.String())
	return ctx.Next()
}
