package controller

import (
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type workspaceController struct {
	workspaceService service.IWorkspaceService
}

func NewWorkspaceController(workspaceService service.IWorkspaceService) IWorkspaceController {
	return &workspaceController{
		workspaceService: workspaceService,
	}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1")
	// Session creation has no client id yet, so it stays unauthenticated.
	h.Post("session", c.Create)
	h.Post("reset", serverutils.ClientIDMiddleware, c.Reset)
}

func (c *workspaceController) Create(ctx *fiber.Ctx) error {
	res, err := c.workspaceService.Create(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Workspace created", res))
}

func (c *workspaceController) Reset(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.workspaceService.Reset(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Workspace reset", res))
}
