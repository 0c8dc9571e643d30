package controller

import (
	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type editorController struct {
	editorService service.IEditorService
}

func NewEditorController(editorService service.IEditorService) IEditorController {
	return &editorController{
		editorService: editorService,
	}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor/v1")
	h.Use(serverutils.ClientIDMiddleware)
	h.Put("", c.Save)
	h.Get("", c.Show)
}

func (c *editorController) Save(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.SaveEditorDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.editorService.Save(ctx.Context(), clientId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document saved", struct{}{}))
}

func (c *editorController) Show(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.editorService.Show(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show document", res))
}
